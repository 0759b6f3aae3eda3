// Released under an MIT license. See LICENSE.

// Package tuple provides lash's fixed-size tuple type.
package tuple

import (
	"github.com/lash-lang/lash/internal/common/interface/cell"
	"github.com/lash-lang/lash/internal/common/interface/literal"
)

const name = "tuple"

// T (tuple) is a fixed-size sequence of cells.
type T []cell.I

type tuple = T

// New creates a new tuple from elements.
func New(elements ...cell.I) cell.I {
	t := tuple(elements)

	return &t
}

// Equal returns true if c is a tuple with members that are equal to t's.
func (t *tuple) Equal(c cell.I) bool {
	if !Is(c) {
		return false
	}

	o := *To(c)
	if len(*t) != len(o) {
		return false
	}

	for i, v := range *t {
		if !v.Equal(o[i]) {
			return false
		}
	}

	return true
}

// Literal returns the literal representation of the tuple t.
func (t *tuple) Literal() string {
	s := "#("

	for i, v := range *t {
		if i > 0 {
			s += " "
		}

		s += literal.String(v)
	}

	return s + ")"
}

// Name returns the type name for the tuple t.
func (t *tuple) Name() string {
	return name
}

// Size returns the number of members in the tuple t.
func (t *tuple) Size() int {
	return len(*t)
}

// Slice returns the members of the tuple t.
func (t *tuple) Slice() []cell.I {
	return *t
}

// String returns the text of the tuple t.
func (t *tuple) String() string {
	return t.Literal()
}

// Is returns true if c is a tuple.
func Is(c cell.I) bool {
	_, ok := c.(*tuple)

	return ok
}

// To returns a tuple if c is a tuple; Otherwise it panics.
func To(c cell.I) *tuple {
	if t, ok := c.(*tuple); ok {
		return t
	}

	panic(c.Name() + " cannot be used in a tuple context")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t tuple

	// The tuple type is a cell.
	_ = cell.I(&t)

	// The tuple type has a literal representation.
	_ = literal.I(&t)
}
