// Released under an MIT license. See LICENSE.

package engine

import (
	"strconv"

	"github.com/lash-lang/lash/internal/common/interface/cell"
	"github.com/lash-lang/lash/internal/env"
)

const closureName = "closure"

// Clause is one (patterns [guard] body) alternative of a pattern-matching
// definition.
type Clause struct {
	Patterns []cell.I
	Guard    cell.I // nil when the clause has no guard.
	Body     cell.I // A list of forms.
}

// Closure is a function or macro body with its parameter labels.
//
// A closure created by lambda captures its defining environment; a
// closure registered by a definition form leaves Scope nil and is
// evaluated against the environment in effect at the call site. A
// multi-clause definition has Clauses instead of Params/Body.
type Closure struct {
	Body    cell.I // A list of forms.
	Clauses []Clause
	Params  []string
	Scope   *env.T
}

// NewClosure creates a new single-body closure.
func NewClosure(params []string, body cell.I, scope *env.T) *Closure {
	return &Closure{Body: body, Params: params, Scope: scope}
}

// NewClauses creates a new multi-clause closure.
func NewClauses(clauses []Clause) *Closure {
	return &Closure{Clauses: clauses}
}

// Arity returns the number of arguments the closure l accepts.
// For a multi-clause closure this is the first clause's pattern count.
func (l *Closure) Arity() int {
	if len(l.Clauses) > 0 {
		return len(l.Clauses[0].Patterns)
	}

	return len(l.Params)
}

// Equal returns true if c is a closure with the same parameters, body,
// and captured environment. Bodies compare structurally so that two
// sessions that evaluated the same definitions compare as equal.
func (l *Closure) Equal(c cell.I) bool {
	o, ok := c.(*Closure)
	if !ok || len(l.Params) != len(o.Params) || len(l.Clauses) != len(o.Clauses) {
		return false
	}

	for i, p := range l.Params {
		if p != o.Params[i] {
			return false
		}
	}

	for i, x := range l.Clauses {
		if !x.equal(o.Clauses[i]) {
			return false
		}
	}

	if l.Body != nil && o.Body != nil && !l.Body.Equal(o.Body) {
		return false
	}

	if (l.Body == nil) != (o.Body == nil) {
		return false
	}

	if l.Scope == nil || o.Scope == nil {
		return l.Scope == o.Scope
	}

	return l.Scope.Equal(o.Scope)
}

// Literal returns the literal representation of the closure l.
func (l *Closure) Literal() string {
	return "#fn/" + strconv.Itoa(l.Arity())
}

// Name returns the type name for the closure l.
func (l *Closure) Name() string {
	return closureName
}

// String returns the text of the closure l.
func (l *Closure) String() string {
	return l.Literal()
}

func (x Clause) equal(o Clause) bool {
	if len(x.Patterns) != len(o.Patterns) {
		return false
	}

	for i, p := range x.Patterns {
		if !p.Equal(o.Patterns[i]) {
			return false
		}
	}

	if (x.Guard == nil) != (o.Guard == nil) {
		return false
	}

	if x.Guard != nil && !x.Guard.Equal(o.Guard) {
		return false
	}

	return x.Body.Equal(o.Body)
}
