package sickl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProgram struct {
	body func()
}

func (s stubProgram) Parse() { s.body() }

func validStubProgram() stubProgram {
	return stubProgram{body: func() {
		ConstData(func() {})
		var out Float
		OutData(func() { out = OutFloat("result") })
		Main(func() { out.Assign(FloatLit(1)) })
	}}
}

func TestParse_ValidProgramHasThreeTopLevelBlocks(t *testing.T) {
	root := Parse(validStubProgram())

	require.Len(t, root.Children, 3)
	kinds := []NodeKind{root.Children[0].Kind, root.Children[1].Kind, root.Children[2].Kind}
	assert.ElementsMatch(t, []NodeKind{KindConstData, KindOutData, KindMain}, kinds)
}

func TestParse_MissingBlockPanics(t *testing.T) {
	incomplete := stubProgram{body: func() {
		ConstData(func() {})
		OutData(func() {})
		// Main missing
	}}

	assert.Panics(t, func() { Parse(incomplete) })
}

func TestParse_DuplicateBlockPanics(t *testing.T) {
	duplicate := stubProgram{body: func() {
		ConstData(func() {})
		ConstData(func() {})
		OutData(func() {})
		Main(func() {})
	}}

	assert.Panics(t, func() { Parse(duplicate) })
}

func TestTopLevelBlock_RejectsNesting(t *testing.T) {
	nested := stubProgram{body: func() {
		ConstData(func() {})
		OutData(func() {})
		Main(func() {
			ConstData(func() {}) // not allowed inside Main
		})
	}}

	assert.Panics(t, func() { Parse(nested) })
	// The panic above unwinds out of Main's still-open block before Parse
	// reaches EndCapture, so the ambient capture is left dangling; reset it
	// directly so later tests see no active capture, same as a clean Parse.
	activeCapture = nil
}

func TestParse_UnbindsActiveCaptureEvenAfterSuccess(t *testing.T) {
	Parse(validStubProgram())
	assert.Panics(t, func() { current() }, "Parse must leave no capture active once it returns")
}
