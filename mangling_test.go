package sickl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSymbolName_KnownMappings pins the first few symbol ids to their
// expected mangled names (spec.md §8 property 3): 0->a, ..., 25->z,
// 26->aa, 27->ab, 51->az, 52->ba.
func TestSymbolName_KnownMappings(t *testing.T) {
	tests := []struct {
		id       SymbolID
		expected string
	}{
		{0, "a"},
		{1, "b"},
		{25, "z"},
		{26, "aa"},
		{27, "ab"},
		{51, "az"},
		{52, "ba"},
		{701, "zz"},
		{702, "aaa"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, symbolName(tt.id))
	}
}

// TestSymbolName_IsBijectiveOverRange checks injectivity (no two distinct
// ids collide on the same name) across a wide enough range to catch an
// off-by-one in the "subtract 1 before each divide" step.
func TestSymbolName_IsBijectiveOverRange(t *testing.T) {
	const n = 10000
	seen := make(map[string]SymbolID, n)
	for id := SymbolID(0); id < n; id++ {
		name := symbolName(id)
		if other, ok := seen[name]; ok {
			t.Fatalf("symbolName collision: ids %d and %d both mangle to %q", other, id, name)
		}
		seen[name] = id
	}
}

func TestSymbolName_MonotonicLength(t *testing.T) {
	assert.Len(t, symbolName(0), 1)
	assert.Len(t, symbolName(25), 1)
	assert.Len(t, symbolName(26), 2)
	assert.Len(t, symbolName(701), 2)
	assert.Len(t, symbolName(702), 3)
}
