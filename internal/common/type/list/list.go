// Released under an MIT license. See LICENSE.

// Package list provides common list operations. A list is not a true type.
// Lists are more of a type by convention. They are composed of cons cells.
package list

import (
	"github.com/lash-lang/lash/internal/common/interface/cell"
	"github.com/lash-lang/lash/internal/common/type/pair"
)

// Append appends each element in elements to list.
// If list is Null, a new list is created.
// A non-pair value where a pair is expected will cause a panic.
// The list must be non-circular.
func Append(start cell.I, elements ...cell.I) cell.I {
	if start == nil {
		panic("cannot append to non-existent list")
	}

	if len(elements) == 0 {
		return start
	}

	if start == pair.Null {
		start = pair.Cons(elements[0], pair.Null)
		elements = elements[1:]
	}

	var end cell.I
	for list := start; list != pair.Null; list = pair.Cdr(list) {
		end = list
	}

	for _, e := range elements {
		p := pair.Cons(e, pair.Null)
		pair.SetCdr(end, p)
		end = p
	}

	return start
}

// Length returns the number of elements in the list c.
func Length(c cell.I) int {
	n := 0

	for c != pair.Null {
		n++

		c = pair.Cdr(c)
	}

	return n
}

// New creates a list out of elements.
func New(elements ...cell.I) cell.I {
	if len(elements) == 0 {
		return pair.Null
	}

	return pair.Cons(elements[0], New(elements[1:]...))
}

// Reverse returns the list c reversed.
func Reverse(c cell.I) cell.I {
	r := pair.Null

	for c != pair.Null {
		r = pair.Cons(pair.Car(c), r)

		c = pair.Cdr(c)
	}

	return r
}

// Slice returns the elements of the list c as a slice.
func Slice(c cell.I) []cell.I {
	s := []cell.I{}

	for c != pair.Null {
		s = append(s, pair.Car(c))

		c = pair.Cdr(c)
	}

	return s
}
