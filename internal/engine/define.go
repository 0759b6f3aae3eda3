// Released under an MIT license. See LICENSE.

package engine

import (
	"github.com/lash-lang/lash/internal/common"
	"github.com/lash-lang/lash/internal/common/interface/cell"
	"github.com/lash-lang/lash/internal/common/type/pair"
	"github.com/lash-lang/lash/internal/common/type/sym"
	"github.com/lash-lang/lash/internal/env"
)

// Define registers a definition form in a new version of the env e.
// It recognizes defun, defmacro, and defrecord. The returned signature
// names the binding (for defrecord, Arity is the field count). Forms
// that are not definitions are returned unchanged with ok false.
func Define(c cell.I, e *env.T) (n *env.T, sig env.Signature, ok bool) {
	if !pair.Is(c) || c == pair.Null || !sym.Is(pair.Car(c)) {
		return e, sig, false
	}

	switch common.String(pair.Car(c)) {
	case "defun":
		name := common.String(pair.Cadr(c))
		cl := closure(pair.Cddr(c))

		return e.AddFunction(name, cl.Arity(), cl), env.Signature{Name: name, Arity: cl.Arity()}, true
	case "defmacro":
		name := common.String(pair.Cadr(c))
		cl := closure(pair.Cddr(c))

		return e.AddMacro(name, cl), env.Signature{Name: name, Arity: cl.Arity()}, true
	case "defrecord":
		name := common.String(pair.Cadr(c))

		fields := []string{}
		for f := pair.Cddr(c); f != pair.Null; f = pair.Cdr(f) {
			fields = append(fields, common.String(pair.Car(f)))
		}

		return e.AddRecord(name, fields), env.Signature{Name: name, Arity: len(fields)}, true
	}

	return e, sig, false
}

// closure builds the body of a definition: either a plain parameter
// list followed by body forms, or a series of pattern-matching clauses.
func closure(c cell.I) *Closure {
	if multiclause(c) {
		clauses := []Clause{}

		for ; c != pair.Null; c = pair.Cdr(c) {
			clauses = append(clauses, clause(pair.Car(c)))
		}

		return NewClauses(clauses)
	}

	return NewClosure(Params(pair.Car(c)), pair.Cdr(c), nil)
}

// clause parses one ((patterns...) [(when guard)] body...) alternative.
func clause(c cell.I) Clause {
	patterns := []cell.I{}
	for p := pair.Car(c); p != pair.Null; p = pair.Cdr(p) {
		patterns = append(patterns, pair.Car(p))
	}

	body := pair.Cdr(c)

	var guard cell.I

	if body != pair.Null {
		head := pair.Car(body)
		if pair.Is(head) && head != pair.Null && sym.Is(pair.Car(head)) &&
			common.String(pair.Car(head)) == "when" {
			guard = pair.Cadr(head)
			body = pair.Cdr(body)
		}
	}

	return Clause{Patterns: patterns, Guard: guard, Body: body}
}

// multiclause reports whether a definition body is a series of
// pattern-matching clauses rather than a single parameter list.
func multiclause(c cell.I) bool {
	head := pair.Car(c)
	if !pair.Is(head) || head == pair.Null {
		return false
	}

	first := pair.Car(head)

	return pair.Is(first)
}
