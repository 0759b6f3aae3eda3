// Released under an MIT license. See LICENSE.

// Package fault provides the abnormal-outcome type shared by the lash
// reader, engine, and session.
package fault

import (
	"github.com/lash-lang/lash/internal/common/interface/cell"
	"github.com/lash-lang/lash/internal/common/interface/literal"
	"github.com/lash-lang/lash/internal/common/struct/loc"
)

const name = "fault"

// Kind classifies a fault.
type Kind int

// Fault kinds.
const (
	Parse Kind = iota
	Expand
	Eval
	Slurp
	ScriptRead
)

// T (fault) is the abnormal outcome of an evaluation step.
type T struct {
	kind    Kind
	message string
	payload cell.I
	source  *loc.T
}

type fault = T

// New creates a new fault.
func New(kind Kind, message string) *fault {
	return &fault{kind: kind, message: message}
}

// With attaches the payload cell c to the fault f.
func (f *fault) With(c cell.I) *fault {
	f.payload = c

	return f
}

// At attaches the location source to the fault f.
func (f *fault) At(source *loc.T) *fault {
	f.source = source

	return f
}

// Equal returns true if c is a fault with the same kind and message.
func (f *fault) Equal(c cell.I) bool {
	return Is(c) && f.kind == To(c).kind && f.message == To(c).message
}

// Error makes a fault usable wherever a Go error is expected.
func (f *fault) Error() string {
	return f.String()
}

// Kind returns the kind of the fault f.
func (f *fault) Kind() Kind {
	return f.kind
}

// Message returns the message of the fault f.
func (f *fault) Message() string {
	return f.message
}

// Name returns the type name for the fault f.
func (f *fault) Name() string {
	return name
}

// Payload returns the payload of the fault f, or nil.
func (f *fault) Payload() cell.I {
	return f.payload
}

// Source returns the location of the fault f, or nil.
func (f *fault) Source() *loc.T {
	return f.source
}

// String returns the text of the fault f.
func (f *fault) String() string {
	s := f.kind.String() + ": " + f.message

	if f.payload != nil {
		s += ": " + literal.String(f.payload)
	}

	return s
}

// String returns a label for the kind k.
func (k Kind) String() string {
	switch k {
	case Parse:
		return "parse error"
	case Expand:
		return "expansion error"
	case Eval:
		return "evaluation error"
	case Slurp:
		return "slurp error"
	case ScriptRead:
		return "script error"
	}

	return "error"
}

// Is returns true if c is a fault.
func Is(c cell.I) bool {
	_, ok := c.(*fault)

	return ok
}

// To returns a fault if c is a fault; Otherwise it panics.
func To(c cell.I) *fault {
	if t, ok := c.(*fault); ok {
		return t
	}

	panic(c.Name() + " cannot be used in a fault context")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t fault

	// The fault type is a cell.
	_ = cell.I(&t)

	// The fault type is an error.
	_ = error(&t)
}
