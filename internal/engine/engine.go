// Released under an MIT license. See LICENSE.

// Package engine provides the macro expander, evaluator, and pattern
// matcher for parsed lash forms.
//
// The engine never mutates an environment: evaluation extends local
// scopes by creating new env versions, and any binding that should
// outlive a form is the session's to commit. A failure anywhere in the
// engine surfaces as a tagged fault at these package boundaries, never
// as a raw panic.
package engine

import (
	"github.com/lash-lang/lash/internal/common/interface/cell"
	"github.com/lash-lang/lash/internal/env"
	"github.com/lash-lang/lash/internal/fault"
)

// Evaluate evaluates the expression c against the environment e.
func Evaluate(c cell.I, e *env.T) (v cell.I, err error) {
	defer func() {
		err = caught(recover(), fault.Eval, err)
	}()

	return evaluate(c, e), nil
}

// Expand macro-expands the top-level form c against the environment e.
// Expansion may flatten the form into an implicit sequence.
func Expand(c cell.I, e *env.T) (forms []cell.I, err error) {
	defer func() {
		err = caught(recover(), fault.Expand, err)
	}()

	return expand(c, e), nil
}

// Match destructures value against pattern under the optional guard.
// On success the returned map holds every pattern variable's binding.
func Match(pattern, value, guard cell.I, e *env.T) (ok bool, bindings map[string]cell.I, err error) {
	defer func() {
		err = caught(recover(), fault.Eval, err)
	}()

	b := map[string]cell.I{}

	if !match(pattern, value, b) {
		return false, nil, nil
	}

	if !guardHolds(guard, b, e) {
		return false, nil, nil
	}

	return true, b, nil
}

func caught(r interface{}, kind fault.Kind, err error) error {
	if r == nil {
		return err
	}

	switch r := r.(type) {
	case *fault.T:
		return r
	case error:
		return fault.New(kind, r.Error())
	case string:
		return fault.New(kind, r)
	}

	return fault.New(kind, "unexpected error")
}
