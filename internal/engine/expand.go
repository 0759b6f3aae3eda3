// Released under an MIT license. See LICENSE.

package engine

import (
	"github.com/lash-lang/lash/internal/common"
	"github.com/lash-lang/lash/internal/common/interface/cell"
	"github.com/lash-lang/lash/internal/common/type/list"
	"github.com/lash-lang/lash/internal/common/type/pair"
	"github.com/lash-lang/lash/internal/common/type/sym"
	"github.com/lash-lang/lash/internal/env"
)

// A runaway macro gives up after this many rewrites.
const expansionLimit = 1000

// expand rewrites the top-level form c and every subform until no macro
// applies. A macro may expand into (progn ...), which flattens into an
// implicit sequence of forms, each of which is expanded in turn.
func expand(c cell.I, e *env.T) []cell.I {
	c = rewrite(c, e)

	if pair.Is(c) && c != pair.Null && sym.Is(pair.Car(c)) &&
		common.String(pair.Car(c)) == "progn" {
		return flatten(pair.Cdr(c), e)
	}

	return []cell.I{expandAll(c, e)}
}

// expandAll rewrites a form and then each of its members, so that a
// macro call is replaced wherever it appears, including inside function
// bodies. Quoted forms are left alone.
func expandAll(c cell.I, e *env.T) cell.I {
	c = rewrite(c, e)

	if !pair.Is(c) || c == pair.Null {
		return c
	}

	if sym.Is(pair.Car(c)) && common.String(pair.Car(c)) == "quote" {
		return c
	}

	members := []cell.I{}
	for x := c; x != pair.Null; x = pair.Cdr(x) {
		members = append(members, expandAll(pair.Car(x), e))
	}

	return list.New(members...)
}

// rewrite applies macros to the form c while its head names one.
func rewrite(c cell.I, e *env.T) cell.I {
	for steps := 0; ; steps++ {
		if !pair.Is(c) || c == pair.Null || !sym.Is(pair.Car(c)) {
			return c
		}

		name := common.String(pair.Car(c))

		if name == "progn" {
			return c
		}

		body, ok := e.FetchMacro(name)
		if !ok {
			return c
		}

		cl, applicable := body.(*Closure)
		if !applicable {
			panic("macro " + name + " is not applicable")
		}

		if steps >= expansionLimit {
			panic("expansion of " + name + " does not terminate")
		}

		// Macro arguments are the unevaluated forms.
		c = apply(cl, list.Slice(pair.Cdr(c)), e)
	}
}

func flatten(c cell.I, e *env.T) []cell.I {
	forms := []cell.I{}

	for ; c != pair.Null; c = pair.Cdr(c) {
		forms = append(forms, expand(pair.Car(c), e)...)
	}

	if len(forms) == 0 {
		forms = append(forms, pair.Null)
	}

	return forms
}
