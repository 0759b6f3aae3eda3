// Released under an MIT license. See LICENSE.

// Package pair provides lash's cons cell type.
package pair

import (
	"github.com/lash-lang/lash/internal/common/interface/cell"
	"github.com/lash-lang/lash/internal/common/interface/literal"
)

const name = "cons"

//nolint:gochecknoglobals
var (
	// Null is the empty list. It is also used to mark the end of a list.
	Null cell.I
)

// T (pair) is a cons cell.
type T struct {
	car cell.I
	cdr cell.I
}

type pair = T

// Cons conses h onto t.
func Cons(h, t cell.I) cell.I {
	return &pair{car: h, cdr: t}
}

// Car returns the car/head/first member of the pair c.
func Car(c cell.I) cell.I {
	return To(c).car
}

// Cdr returns the cdr/tail/rest of the pair c.
func Cdr(c cell.I) cell.I {
	return To(c).cdr
}

// Caar returns the car of the car of the pair c.
func Caar(c cell.I) cell.I {
	return Car(Car(c))
}

// Cadr returns the car of the cdr of the pair c.
func Cadr(c cell.I) cell.I {
	return Car(Cdr(c))
}

// Caddr returns the car of the cdr of the cdr of the pair c.
func Caddr(c cell.I) cell.I {
	return Car(Cdr(Cdr(c)))
}

// Cddr returns the cdr of the cdr of the pair c.
func Cddr(c cell.I) cell.I {
	return Cdr(Cdr(c))
}

// SetCar sets the car/head/first member of the pair c to value.
func SetCar(c, value cell.I) {
	To(c).car = value
}

// SetCdr sets the cdr/tail/rest of the pair c to value.
func SetCdr(c, value cell.I) {
	To(c).cdr = value
}

// Bool returns the boolean value of the pair p.
func (p *pair) Bool() bool {
	return p != Null
}

// Equal returns true if c is a pair with elements that are equal to p's.
func (p *pair) Equal(c cell.I) bool {
	if p == Null || c == Null {
		return p == Null && c == Null
	}

	if !Is(c) {
		return false
	}

	return p.car.Equal(Car(c)) && p.cdr.Equal(Cdr(c))
}

// Literal returns the literal representation of the pair p.
func (p *pair) Literal() string {
	s := "("

	var c cell.I = p
	for c != Null {
		if c != cell.I(p) {
			s += " "
		}

		if !Is(c) {
			// An improper list ends with a dotted pair.
			s += ". " + literal.String(c)

			break
		}

		head := Car(c)
		if head == Null {
			s += "()"
		} else {
			s += literal.String(head)
		}

		c = Cdr(c)
	}

	return s + ")"
}

// Name returns the type name for the pair p.
func (p *pair) Name() string {
	return name
}

// String returns the text of the pair p.
func (p *pair) String() string {
	return p.Literal()
}

// Is returns true if c is a pair.
func Is(c cell.I) bool {
	_, ok := c.(*pair)

	return ok
}

// To returns a pair if c is a pair; Otherwise it panics.
func To(c cell.I) *pair {
	if t, ok := c.(*pair); ok {
		return t
	}

	panic(c.Name() + " cannot be used in a cons context")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t pair

	// The pair type is a cell.
	_ = cell.I(&t)

	// The pair type has a literal representation.
	_ = literal.I(&t)
}

func init() { //nolint:gochecknoinits
	pair := &pair{}
	pair.car = pair
	pair.cdr = pair

	Null = cell.I(pair)
}
