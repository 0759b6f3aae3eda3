// Released under an MIT license. See LICENSE.

// Package str provides lash's string type.
package str

import (
	"strconv"

	"github.com/lash-lang/lash/internal/common"
	"github.com/lash-lang/lash/internal/common/interface/cell"
	"github.com/lash-lang/lash/internal/common/interface/literal"
	"github.com/lash-lang/lash/internal/common/interface/truth"
)

const name = "string"

// T (str) wraps Go's string type.
type T string

type str = T

// New creates a new str cell.
func New(v string) cell.I {
	s := str(v)

	return &s
}

// Bool returns the boolean value of the str s.
func (s *str) Bool() bool {
	return s.String() != ""
}

// Equal returns true if the cell c wraps the same string and false otherwise.
func (s *str) Equal(c cell.I) bool {
	return Is(c) && s.String() == To(c).String()
}

// Literal returns the literal representation of the str s. The escapes
// used are the ones the parser decodes, so a literal always reads back.
func (s *str) Literal() string {
	return strconv.Quote(string(*s))
}

// Name returns the name of the str type.
func (s *str) Name() string {
	return name
}

// String returns the text of the str s.
func (s *str) String() string {
	return string(*s)
}

// Is returns true if c is a str.
func Is(c cell.I) bool {
	_, ok := c.(*str)

	return ok
}

// To returns a str if c is a str; Otherwise it panics.
func To(c cell.I) *str {
	if t, ok := c.(*str); ok {
		return t
	}

	panic(c.Name() + " cannot be used in a string context")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t str

	// The str type is a cell.
	_ = cell.I(&t)

	// The str type has a literal representation.
	_ = literal.I(&t)

	// The str type is a stringer.
	_ = common.Stringer(&t)

	// The str type has a truth value.
	_ = truth.I(&t)
}
