// Released under an MIT license. See LICENSE.

package session

import (
	"github.com/lash-lang/lash/internal/common/interface/cell"
	"github.com/lash-lang/lash/internal/common/type/list"
	"github.com/lash-lang/lash/internal/common/type/pair"
	"github.com/lash-lang/lash/internal/common/type/str"
	"github.com/lash-lang/lash/internal/env"
)

// The pseudo-variables a session maintains in its environment.
//
//nolint:gochecknoglobals
var pseudo = []string{
	"+", "++", "+++", "*", "**", "***", "-", "$ENV",
}

// State is one session's state across evaluation rounds.
//
// State is a value: a round receives a copy, and only the state
// returned by a fully successful round is ever committed. The base
// environment never changes after construction; current is replaced
// wholesale, never edited in place; save is set exactly when a slurp
// is active.
type State struct {
	current *env.T
	save    *env.T
	base    *env.T
	slurp   bool
}

// NewState creates the state for a new session. A nil base environment
// is replaced with the built-in shell environment for scriptName and
// args.
func NewState(scriptName string, args []string, base *env.T) State {
	if base == nil {
		base = Base(scriptName, args)
	}

	return State{current: base, base: base}
}

// Base builds the built-in shell environment seeded into a new session.
func Base(scriptName string, args []string) *env.T {
	e := env.New()

	e = e.AddVariable("script-name", str.New(scriptName))

	argv := []cell.I{}
	for _, a := range args {
		argv = append(argv, str.New(a))
	}

	e = e.AddVariable("script-args", list.New(argv...))

	for _, k := range pseudo {
		e = e.AddVariable(k, pair.Null)
	}

	return e
}

// Current returns the session's current environment.
func (s State) Current() *env.T {
	return s.current
}

// Slurping returns true if a slurp is active.
func (s State) Slurping() bool {
	return s.slurp
}

// Equal returns true if o is structurally equal to the state s.
func (s State) Equal(o State) bool {
	if s.slurp != o.slurp {
		return false
	}

	if (s.save == nil) != (o.save == nil) {
		return false
	}

	if s.save != nil && !s.save.Equal(o.save) {
		return false
	}

	return s.current.Equal(o.current) && s.base.Equal(o.base)
}

// rotate updates the pseudo-variable history after a successful round
// with input form and result value. The stored $ENV snapshot is pruned
// of any prior self-reference so that it is never nested.
func rotate(e *env.T, form, value cell.I) *env.T {
	e = e.AddVariable("+++", variable(e, "++"))
	e = e.AddVariable("++", variable(e, "+"))
	e = e.AddVariable("+", form)

	e = e.AddVariable("***", variable(e, "**"))
	e = e.AddVariable("**", variable(e, "*"))
	e = e.AddVariable("*", value)

	return e.AddVariable("$ENV", e.DeleteVariable("$ENV"))
}

func variable(e *env.T, k string) cell.I {
	v, ok := e.FetchVariable(k)
	if !ok {
		return pair.Null
	}

	return v
}
