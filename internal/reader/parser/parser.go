// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for the lash language.
package parser

import (
	"math/big"

	"github.com/michaelmacinnis/adapted"

	"github.com/lash-lang/lash/internal/common/interface/cell"
	"github.com/lash-lang/lash/internal/common/struct/loc"
	"github.com/lash-lang/lash/internal/common/type/boolean"
	"github.com/lash-lang/lash/internal/common/type/num"
	"github.com/lash-lang/lash/internal/common/type/pair"
	"github.com/lash-lang/lash/internal/common/type/str"
	"github.com/lash-lang/lash/internal/common/type/sym"
	"github.com/lash-lang/lash/internal/fault"
	"github.com/lash-lang/lash/internal/reader/token"
)

// T holds the state of the parser.
type T struct {
	emit func(cell.I)    // Function to call to emit a parsed form.
	item func() *token.T // Function to call to get another token.
	last *loc.T          // Location of the most recent token.

	token *token.T // Token lookahead.
}

type parser = T

// New creates a new parser.
// It connects a producer of tokens with a consumer of cells.
func New(emit func(cell.I), item func() *token.T) *T {
	return &T{emit: emit, item: item}
}

// Parse consumes tokens and emits cells until there are no more tokens.
// A malformed form surfaces as a parse fault; nothing after it is parsed.
func (p *parser) Parse() (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		if f, ok := r.(*fault.T); ok {
			err = f

			return
		}

		err = p.fault(message(r))
	}()

	for t := p.peek(); t != nil; t = p.peek() {
		p.emit(p.form())
	}

	return nil
}

func (p *parser) consume() *token.T {
	t := p.token
	if t == nil {
		t = p.item()
	}

	p.token = nil

	if t != nil {
		p.last = t.Source()
	}

	return t
}

func (p *parser) fault(s string) *fault.T {
	return fault.New(fault.Parse, s).At(p.last)
}

// form parses one expression: an atom, a quoted form, or a list.
func (p *parser) form() cell.I {
	t := p.consume()
	if t == nil {
		panic(p.fault("unexpected end of input"))
	}

	switch {
	case t.Is('('):
		return p.rest()
	case t.Is(')'):
		panic(p.fault("unexpected ')'"))
	case t.Is('\''):
		return pair.Cons(sym.New("quote"), pair.Cons(p.form(), pair.Null))
	case t.Is(token.DoubleQuoted):
		text := t.Value()

		s, err := adapted.ActualBytes(text[1 : len(text)-1])
		if err != nil {
			panic(p.fault(err.Error()))
		}

		return str.New(s)
	case t.Is(token.Symbol):
		return atom(t.Value())
	}

	panic(p.fault("unexpected " + t.String()))
}

func (p *parser) peek() *token.T {
	if p.token == nil {
		p.token = p.item()
	}

	return p.token
}

// rest parses list members up to and including the closing paren.
func (p *parser) rest() cell.I {
	t := p.peek()
	if t == nil {
		panic(p.fault("unexpected end of input"))
	}

	if t.Is(')') {
		p.consume()

		return pair.Null
	}

	head := p.form()

	return pair.Cons(head, p.rest())
}

func atom(text string) cell.I {
	switch text {
	case "true":
		return boolean.True
	case "false":
		return boolean.False
	}

	v := &big.Rat{}
	if _, ok := v.SetString(text); ok {
		return num.Rat(v)
	}

	return sym.New(text)
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
