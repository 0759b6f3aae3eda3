// Released under an MIT license. See LICENSE.

// Package reader provides the disposable worker that turns input text
// into parsed forms.
//
// A reader owns its lexer and parser and runs them on a separate
// goroutine. Blocking on input or failing to parse can only ever kill
// the worker; the session that spawned it observes the failure on a
// channel and spawns a replacement.
package reader

import (
	"io"

	"github.com/lash-lang/lash/internal/common/interface/cell"
	"github.com/lash-lang/lash/internal/fault"
	"github.com/lash-lang/lash/internal/reader/lexer"
	"github.com/lash-lang/lash/internal/reader/parser"
	"github.com/lash-lang/lash/internal/reader/token"
)

// Input supplies one line of text. The continuation flag is true when
// the line continues a form that is already being parsed.
type Input func(continuation bool) (string, error)

// T (reader) encapsulates the lash lexer and parser.
type T struct {
	e chan error
	o chan cell.I
	q chan struct{}

	input Input
	p     *parser.T
	s     *lexer.T

	continuation bool
}

type reader = T

// New creates a new reader for name, pulling text from input.
func New(name string, input Input) *T {
	r := &reader{
		e:     make(chan error, 1),
		o:     make(chan cell.I),
		q:     make(chan struct{}),
		input: input,
		s:     lexer.New(name),
	}

	r.p = parser.New(r.emit, r.next)

	go r.start()

	return r
}

// Close terminates the reader. The worker goroutine exits the next time
// it looks for input.
func (r *reader) Close() {
	close(r.q)
}

// Read blocks until the worker produces one complete form, a parse
// fault, or runs out of input (io.EOF).
func (r *reader) Read() (cell.I, error) {
	select {
	case c, ok := <-r.o:
		if !ok {
			// The worker is gone. Any fault it reported on the
			// way out takes precedence over plain end of input.
			select {
			case err := <-r.e:
				return nil, err
			default:
				return nil, io.EOF
			}
		}

		return c, nil
	case err := <-r.e:
		return nil, err
	}
}

func (r *reader) closed() bool {
	select {
	case <-r.q:
		return true
	default:
		return false
	}
}

func (r *reader) emit(c cell.I) {
	select {
	case r.o <- c:
		r.continuation = false
	case <-r.q:
	}
}

func (r *reader) next() *token.T {
	for {
		t := r.s.Token()
		if t != nil {
			return t
		}

		if r.closed() {
			return nil
		}

		line, err := r.input(r.continuation)
		if err != nil {
			if err != io.EOF {
				// Interrupted input. The partial form dies
				// with this worker.
				panic(err)
			}

			return nil
		}

		r.continuation = true

		r.s.Scan(line + "\n")
	}
}

func (r *reader) start() {
	defer func() {
		p := recover()
		if p != nil {
			r.e <- fault.New(fault.Parse, message(p))
		}

		close(r.o)
	}()

	err := r.p.Parse()
	if err != nil {
		r.e <- err
	}
}

func message(p interface{}) string {
	switch p := p.(type) {
	case error:
		return p.Error()
	case string:
		return p
	}

	return "unexpected error"
}
