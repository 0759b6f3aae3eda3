// Released under an MIT license. See LICENSE.

// Package token is shared by the lash lexer and parser.
package token

import (
	"strconv"
	"unicode"

	"github.com/lash-lang/lash/internal/common/struct/loc"
)

// Class is a token's type.
type Class rune

// T (token) is a lexical item returned by the scanner.
type T struct {
	class  Class
	source *loc.T
	value  string
}

type token = T

// Token classes.
const (
	Error Class = iota

	DoubleQuoted Class = unicode.MaxRune + iota
	Symbol
)

// New creates a new token.
func New(class Class, value string, source *loc.T) *token {
	return &token{
		class:  class,
		source: source,
		value:  value,
	}
}

// String returns a string representation of Class. Useful for debugging.
func (c Class) String() string {
	switch c {
	case Error:
		return "Error"
	case DoubleQuoted:
		return "DoubleQuoted"
	case Symbol:
		return "Symbol"
	}

	return strconv.QuoteRune(rune(c))
}

// Is returns true if the token t is a member of the class c.
func (t *token) Is(c Class) bool {
	return t.class == c
}

// Source returns the location where the token t was found.
func (t *token) Source() *loc.T {
	return t.source
}

// String returns a string representation of the token t.
func (t *token) String() string {
	return t.class.String() + "(" + t.value + ")"
}

// Value returns the text of the token t.
func (t *token) Value() string {
	return t.value
}
