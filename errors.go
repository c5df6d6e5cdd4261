package sickl

import "fmt"

// ErrorKind classifies the programmer-error taxonomy this package detects.
// These are never returned as `error` values — they panic, since they
// signal a misuse of the capture API rather than a recoverable runtime
// condition.
type ErrorKind int

const (
	// CaptureMisuse covers: declaring an input/output wrapper outside its
	// matching block, closing more blocks than were opened, reusing a
	// finished program without restarting capture, reusing a non-Invalid
	// iterator in ForInRange, and attaching the wrong child kind under
	// Program.
	CaptureMisuse ErrorKind = iota
	// NodeShapeViolation covers a binary node built with other than two
	// children, a Member node without exactly two children, etc. This
	// indicates a library bug rather than a user mistake.
	NodeShapeViolation
)

func (k ErrorKind) String() string {
	switch k {
	case CaptureMisuse:
		return "capture misuse"
	case NodeShapeViolation:
		return "node shape violation"
	default:
		return "unknown error"
	}
}

// CaptureError is the panic value raised for programmer errors inside the
// capture context or AST construction. CompileGLSL/CompileOpenCL also raise
// it (as NodeShapeViolation) when they meet a malformed node; their other
// failures (missing blocks, unsupported types, nodes invalid in their
// position) are returned as error values.
type CaptureError struct {
	Kind    ErrorKind
	Message string
}

func (e CaptureError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func abortf(kind ErrorKind, format string, args ...any) {
	panic(CaptureError{Kind: kind, Message: fmt.Sprintf(format, args...)})
}
