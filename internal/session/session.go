// Released under an MIT license. See LICENSE.

// Package session provides the controller for one lash session.
//
// The controller owns the session state and orchestrates two disposable
// workers: a reader, which blocks on input and reports one parsed form
// or a parse fault, and an evaluator, which runs one round against a
// copy of the state. Neither worker can corrupt the session: a crashed
// round is discarded, the fault is reported, a fresh worker is spawned,
// and the pre-round state is retained untouched.
package session

import (
	"fmt"
	"io"

	"github.com/lash-lang/lash/internal/common/interface/cell"
	"github.com/lash-lang/lash/internal/common/interface/literal"
	"github.com/lash-lang/lash/internal/diag"
	"github.com/lash-lang/lash/internal/fault"
	"github.com/lash-lang/lash/internal/reader"
	"github.com/lash-lang/lash/internal/slurp"
)

// T (session) coordinates one interactive session.
type T struct {
	d     diag.I
	input reader.Input
	out   io.Writer
	st    State
}

type session = T

// New creates a new session with the state st, pulling input lines
// from input, printing values to out, and reporting diagnostics to d.
func New(st State, input reader.Input, out io.Writer, d diag.I) *T {
	return &session{d: d, input: input, out: out, st: st}
}

// State returns the session's current state.
func (s *session) State() State {
	return s.st
}

// Loop runs evaluation rounds until input is exhausted.
//
// Idle -> AwaitingInput: spawn (or reuse) the reader and block for a
// form. Idle -> Evaluating: dispatch the form to an evaluator worker
// and block for its reply. Only a successful reply commits state.
func (s *session) Loop() {
	r := reader.New("lash", s.input)
	defer func() {
		r.Close()
	}()

	for {
		c, err := r.Read()
		if err == io.EOF {
			return
		}

		if err != nil {
			// The reader died with a parse fault. Report and
			// respawn; the failed round left no mark on state.
			s.report(err)

			r.Close()
			r = reader.New("lash", s.input)

			continue
		}

		v, st, err := s.evaluator(c)
		if err != nil {
			s.report(err)

			continue
		}

		s.st = st

		fmt.Fprintln(s.out, literal.String(v))
	}
}

// evaluator runs one round on a worker goroutine and blocks for its
// reply. A worker that faults reports the fault over the result
// channel; a worker that dies without reporting is observed as a
// closed channel. Both are recoverable round failures.
func (s *session) evaluator(c cell.I) (cell.I, State, error) {
	type result struct {
		value cell.I
		st    State
		err   error
	}

	res := make(chan *result, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				res <- &result{err: fault.New(fault.Eval, message(r))}
			}

			close(res)
		}()

		v, st, err := Round(c, s.st)
		res <- &result{value: v, st: st, err: err}
	}()

	r, open := <-res
	if !open || r == nil {
		return nil, s.st, fault.New(fault.Eval, "evaluator terminated unexpectedly")
	}

	return r.value, r.st, r.err
}

func (s *session) report(err error) {
	if f, is := err.(*fault.T); is {
		s.d.Print(f.Source(), "lash", f.Error())

		return
	}

	s.d.Print(nil, "lash", err.Error())
}

// RunFile executes the script at path: forms are read up front and then
// evaluated synchronously in-process, bypassing the reader worker.
func RunFile(st State, path string) (cell.I, State, error) {
	forms, err := slurp.Script(path)
	if err != nil {
		return nil, st, err
	}

	return run(forms, st)
}

// RunStrings evaluates each in-memory source in order.
func RunStrings(st State, sources []string) (cell.I, State, error) {
	forms, err := slurp.Strings(sources)
	if err != nil {
		return nil, st, err
	}

	return run(forms, st)
}

func message(r interface{}) string {
	switch r := r.(type) {
	case error:
		return r.Error()
	case string:
		return r
	}

	return "unexpected error"
}
