// Released under an MIT license. See LICENSE.

// Package commands provides the built-in functions reachable from any
// lash environment.
package commands

import (
	"github.com/lash-lang/lash/internal/common/interface/cell"
)

// Functions returns the table of built-in functions.
// Built-ins receive their arguments already evaluated, as a list.
func Functions() map[string]func(cell.I) cell.I {
	return map[string]func(cell.I) cell.I{
		"*":       mul,
		"+":       add,
		"-":       sub,
		"/":       div,
		"<":       lt,
		"<=":      le,
		"=/=":     ne,
		"==":      eq,
		">":       gt,
		">=":      ge,
		"car":     car,
		"cdr":     cdr,
		"cons":    cons,
		"element": element,
		"is-list": isList,
		"is-null": isNull,
		"length":  length,
		"list":    makeList,
		"not":     not,
		"rem":     rem,
		"tuple":   makeTuple,
	}
}
