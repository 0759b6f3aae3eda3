// Released under an MIT license. See LICENSE.

package engine

import (
	"strconv"
	"strings"

	"github.com/lash-lang/lash/internal/common"
	"github.com/lash-lang/lash/internal/common/interface/cell"
	"github.com/lash-lang/lash/internal/common/interface/truth"
	"github.com/lash-lang/lash/internal/common/type/list"
	"github.com/lash-lang/lash/internal/common/type/pair"
	"github.com/lash-lang/lash/internal/common/type/sym"
	"github.com/lash-lang/lash/internal/common/type/tuple"
	"github.com/lash-lang/lash/internal/engine/commands"
	"github.com/lash-lang/lash/internal/env"
)

//nolint:gochecknoglobals
var builtins = commands.Functions()

func evaluate(c cell.I, e *env.T) cell.I {
	switch {
	case c == pair.Null:
		return c
	case sym.Is(c):
		name := common.String(c)

		v, ok := e.FetchVariable(name)
		if !ok {
			panic("symbol " + name + " is unbound")
		}

		return v
	case pair.Is(c):
		return combination(c, e)
	}

	// Everything else is self-evaluating.
	return c
}

func combination(c cell.I, e *env.T) cell.I {
	op := pair.Car(c)

	if sym.Is(op) {
		name := common.String(op)

		switch name {
		case "quote":
			return pair.Cadr(c)
		case "if":
			return conditional(pair.Cdr(c), e)
		case "lambda":
			return lambda(pair.Cdr(c), e)
		case "let":
			return local(pair.Cdr(c), e)
		case "progn":
			return sequence(pair.Cdr(c), e)
		}

		args := evaluateEach(pair.Cdr(c), e)

		return call(name, args, e)
	}

	// The operator position holds an expression, e.g. ((lambda (x) x) 1).
	f := evaluate(op, e)

	cl, ok := f.(*Closure)
	if !ok {
		panic(f.Name() + " is not applicable")
	}

	return apply(cl, list.Slice(evaluateEach(pair.Cdr(c), e)), e)
}

// call dispatches the already-evaluated args to the function bound to
// (name, arity). Environment bindings shadow built-ins; imports are
// consulted between the two.
func call(name string, args cell.I, e *env.T) cell.I {
	arity := list.Length(args)

	if body, ok := e.FetchFunction(name, arity); ok {
		cl, ok := body.(*Closure)
		if !ok {
			panic(name + "/" + strconv.Itoa(arity) + " is not applicable")
		}

		return apply(cl, list.Slice(args), e)
	}

	if imp, ok := e.FetchImport(name, arity); ok {
		qualified := imp.Module + ":" + imp.Name

		if body, ok := e.FetchFunction(qualified, arity); ok {
			return apply(body.(*Closure), list.Slice(args), e)
		}

		panic("function " + qualified + "/" + strconv.Itoa(arity) + " is undefined")
	}

	if f, ok := builtins[name]; ok {
		return f(args)
	}

	if v, ok := record(name, list.Slice(args), e); ok {
		return v
	}

	panic("function " + name + "/" + strconv.Itoa(arity) + " is undefined")
}

// record synthesizes constructor and accessor functions for declared
// record shapes. Nothing is registered ahead of time; a record's
// functions exist from the moment the shape is declared and are
// generated here on first use.
func record(name string, args []cell.I, e *env.T) (cell.I, bool) {
	if rec, ok := strings.CutPrefix(name, "make-"); ok {
		fields, declared := e.FetchRecord(rec)
		if declared && len(args) == len(fields) {
			return tuple.New(append([]cell.I{sym.New(rec)}, args...)...), true
		}
	}

	if len(args) != 1 || !tuple.Is(args[0]) {
		return nil, false
	}

	members := tuple.To(args[0]).Slice()
	if len(members) == 0 || !sym.Is(members[0]) {
		return nil, false
	}

	rec := common.String(members[0])

	field, ok := strings.CutPrefix(name, rec+"-")
	if !ok {
		return nil, false
	}

	fields, declared := e.FetchRecord(rec)
	if !declared || len(members) != len(fields)+1 {
		return nil, false
	}

	for i, f := range fields {
		if f == field {
			return members[i+1], true
		}
	}

	return nil, false
}

// apply evaluates a closure's body with its parameters bound.
// A closure that captured no environment runs against the caller's.
func apply(cl *Closure, args []cell.I, e *env.T) cell.I {
	if len(cl.Clauses) > 0 {
		return applyClauses(cl, args, e)
	}

	if len(args) != len(cl.Params) {
		panic("expected " + strconv.Itoa(len(cl.Params)) +
			" arguments, passed " + strconv.Itoa(len(args)))
	}

	scope := cl.Scope
	if scope == nil {
		scope = e
	}

	for i, p := range cl.Params {
		scope = scope.AddVariable(p, args[i])
	}

	return sequence(cl.Body, scope)
}

func applyClauses(cl *Closure, args []cell.I, e *env.T) cell.I {
clause:
	for _, x := range cl.Clauses {
		if len(x.Patterns) != len(args) {
			continue
		}

		b := map[string]cell.I{}

		for i, p := range x.Patterns {
			if !match(p, args[i], b) {
				continue clause
			}
		}

		if !guardHolds(x.Guard, b, e) {
			continue
		}

		scope := e
		for k, v := range b {
			scope = scope.AddVariable(k, v)
		}

		return sequence(x.Body, scope)
	}

	panic("no matching clause")
}

func conditional(c cell.I, e *env.T) cell.I {
	if truth.Value(evaluate(pair.Car(c), e)) {
		return evaluate(pair.Cadr(c), e)
	}

	if pair.Cddr(c) == pair.Null {
		return pair.Null
	}

	return evaluate(pair.Caddr(c), e)
}

func evaluateEach(c cell.I, e *env.T) cell.I {
	args := pair.Null

	for ; c != pair.Null; c = pair.Cdr(c) {
		args = list.Append(args, evaluate(pair.Car(c), e))
	}

	return args
}

func lambda(c cell.I, e *env.T) cell.I {
	return NewClosure(Params(pair.Car(c)), pair.Cdr(c), e)
}

func local(c cell.I, e *env.T) cell.I {
	scope := e

	for b := pair.Car(c); b != pair.Null; b = pair.Cdr(b) {
		binding := pair.Car(b)

		name := common.String(pair.Car(binding))
		scope = scope.AddVariable(name, evaluate(pair.Cadr(binding), scope))
	}

	return sequence(pair.Cdr(c), scope)
}

func sequence(c cell.I, e *env.T) cell.I {
	v := pair.Null

	for ; c != pair.Null; c = pair.Cdr(c) {
		v = evaluate(pair.Car(c), e)
	}

	return v
}

// Params converts a parameter list form into parameter labels.
func Params(c cell.I) []string {
	params := []string{}

	for ; c != pair.Null; c = pair.Cdr(c) {
		params = append(params, common.String(pair.Car(c)))
	}

	return params
}
