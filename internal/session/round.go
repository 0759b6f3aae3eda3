// Released under an MIT license. See LICENSE.

package session

import (
	"github.com/lash-lang/lash/internal/common"
	"github.com/lash-lang/lash/internal/common/interface/cell"
	"github.com/lash-lang/lash/internal/common/type/list"
	"github.com/lash-lang/lash/internal/common/type/pair"
	"github.com/lash-lang/lash/internal/common/type/sym"
	"github.com/lash-lang/lash/internal/engine"
	"github.com/lash-lang/lash/internal/env"
	"github.com/lash-lang/lash/internal/fault"
	"github.com/lash-lang/lash/internal/slurp"
)

//nolint:gochecknoglobals
var ok = sym.New("ok")

// Round evaluates one top-level form against the state s and returns
// the value and the state to commit. The state s itself is never
// modified: a fault leaves the caller free to continue from s as if
// the round never happened.
func Round(c cell.I, s State) (cell.I, State, error) {
	st := s
	st.current = st.current.AddVariable("-", c)

	forms, err := engine.Expand(c, st.current)
	if err != nil {
		return nil, s, err
	}

	var v cell.I = pair.Null

	for _, f := range forms {
		v, st, err = step(f, st)
		if err != nil {
			return nil, s, err
		}
	}

	st.current = rotate(st.current, c, v)

	return v, st, nil
}

// step evaluates one expanded form, handling the forms that read or
// replace session state outside the generic expression path.
func step(c cell.I, st State) (cell.I, State, error) {
	if !pair.Is(c) || c == pair.Null || !sym.Is(pair.Car(c)) {
		return evaluate(c, st)
	}

	switch common.String(pair.Car(c)) {
	case "set":
		return bind(pair.Cdr(c), st)
	case "slurp":
		return load(pair.Cdr(c), st)
	case "unslurp":
		// With no active slurp this is a successful no-op.
		return ok, st.unslurped(), nil
	case "run":
		return script(pair.Cdr(c), st)
	case "reset-environment":
		// An active slurp's save layer is deliberately left in
		// place; a later unslurp still restores it.
		st.current = st.base

		return ok, st, nil
	case "extend-module", "eval-when-compile":
		// Compiler-expansion artifacts. Nothing to do at the REPL.
		return pair.Car(c), st, nil
	case "progn":
		return sequence(pair.Cdr(c), st)
	case "defun", "defmacro", "defrecord":
		n, sig, defined := engine.Define(c, st.current)
		if defined {
			st.current = n

			return sym.New(sig.Name), st, nil
		}
	}

	return evaluate(c, st)
}

func evaluate(c cell.I, st State) (cell.I, State, error) {
	v, err := engine.Evaluate(c, st.current)
	if err != nil {
		return nil, st, err
	}

	return v, st, nil
}

func sequence(c cell.I, st State) (cell.I, State, error) {
	var v cell.I = pair.Null

	var err error

	for ; c != pair.Null; c = pair.Cdr(c) {
		v, st, err = step(pair.Car(c), st)
		if err != nil {
			return nil, st, err
		}
	}

	return v, st, nil
}

// bind implements set: evaluate, pattern-match, and on success commit
// every pattern variable to the current environment.
func bind(args cell.I, st State) (cell.I, State, error) {
	pattern := pair.Car(args)
	rest := pair.Cdr(args)

	var guard cell.I

	if list.Length(rest) == 2 {
		w := pair.Car(rest)
		if pair.Is(w) && w != pair.Null && sym.Is(pair.Car(w)) &&
			common.String(pair.Car(w)) == "when" {
			guard = pair.Cadr(w)
			rest = pair.Cdr(rest)
		}
	}

	if list.Length(rest) != 1 {
		return nil, st, fault.New(fault.Eval, "set: expected (set pattern [(when guard)] expression)")
	}

	value, err := engine.Evaluate(pair.Car(rest), st.current)
	if err != nil {
		return nil, st, err
	}

	matched, bindings, err := engine.Match(pattern, value, guard, st.current)
	if err != nil {
		return nil, st, err
	}

	if !matched {
		return nil, st, fault.New(fault.Eval, "no match of right hand side value").With(value)
	}

	for k, v := range bindings {
		st.current = st.current.AddVariable(k, v)
	}

	return value, st, nil
}

// load implements slurp. The implicit unslurp happens first, so slurps
// never stack; a failed load leaves the caller's state untouched.
func load(args cell.I, st State) (cell.I, State, error) {
	st = st.unslurped()

	name, err := engine.Evaluate(pair.Car(args), st.current)
	if err != nil {
		return nil, st, err
	}

	loaded, err := slurp.Load(common.String(name))
	if err != nil {
		return nil, st, err
	}

	st.save = st.current
	st.slurp = true
	st.current = env.Merge(st.current, loaded.Env)

	modules := []cell.I{ok}
	for _, m := range loaded.Modules {
		modules = append(modules, sym.New(m))
	}

	return list.New(modules...), st, nil
}

// script implements run: every form goes through the same Round used
// interactively, threading state and pseudo-variable history.
func script(args cell.I, st State) (cell.I, State, error) {
	name, err := engine.Evaluate(pair.Car(args), st.current)
	if err != nil {
		return nil, st, err
	}

	forms, err := slurp.Script(common.String(name))
	if err != nil {
		return nil, st, err
	}

	return run(forms, st)
}

// run threads a sequence of forms through Round.
func run(forms []cell.I, st State) (cell.I, State, error) {
	var v cell.I = pair.Null

	var err error

	for _, c := range forms {
		v, st, err = Round(c, st)
		if err != nil {
			return nil, st, err
		}
	}

	return v, st, nil
}

// unslurped returns the state with any active slurp undone.
func (s State) unslurped() State {
	if !s.slurp {
		return s
	}

	s.current = s.save
	s.save = nil
	s.slurp = false

	return s
}
