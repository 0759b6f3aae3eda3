// Released under an MIT license. See LICENSE.

package engine

import (
	"github.com/lash-lang/lash/internal/common"
	"github.com/lash-lang/lash/internal/common/interface/cell"
	"github.com/lash-lang/lash/internal/common/interface/truth"
	"github.com/lash-lang/lash/internal/common/type/pair"
	"github.com/lash-lang/lash/internal/common/type/sym"
	"github.com/lash-lang/lash/internal/common/type/tuple"
	"github.com/lash-lang/lash/internal/env"
)

// match destructures value against pattern, accumulating variable
// bindings in b. A variable that appears more than once must match
// equal values each time.
func match(pattern, value cell.I, b map[string]cell.I) bool {
	switch {
	case sym.Is(pattern):
		name := common.String(pattern)

		if name == "_" {
			return true
		}

		prev, bound := b[name]
		if bound {
			return prev.Equal(value)
		}

		b[name] = value

		return true
	case pattern == pair.Null:
		return value == pair.Null
	case pair.Is(pattern):
		return compound(pattern, value, b)
	}

	return pattern.Equal(value)
}

func compound(pattern, value cell.I, b map[string]cell.I) bool {
	head := pair.Car(pattern)

	if sym.Is(head) {
		switch common.String(head) {
		case "quote":
			return pair.Cadr(pattern).Equal(value)
		case "tuple":
			return matchTuple(pair.Cdr(pattern), value, b)
		case "cons":
			if !pair.Is(value) || value == pair.Null {
				return false
			}

			return match(pair.Cadr(pattern), pair.Car(value), b) &&
				match(pair.Caddr(pattern), pair.Cdr(value), b)
		case "list":
			return matchList(pair.Cdr(pattern), value, b)
		}
	}

	panic("malformed pattern " + common.String(pattern))
}

func matchList(patterns, value cell.I, b map[string]cell.I) bool {
	for ; patterns != pair.Null; patterns = pair.Cdr(patterns) {
		if !pair.Is(value) || value == pair.Null {
			return false
		}

		if !match(pair.Car(patterns), pair.Car(value), b) {
			return false
		}

		value = pair.Cdr(value)
	}

	return value == pair.Null
}

func matchTuple(patterns, value cell.I, b map[string]cell.I) bool {
	if !tuple.Is(value) {
		return false
	}

	members := tuple.To(value).Slice()

	i := 0
	for ; patterns != pair.Null; patterns = pair.Cdr(patterns) {
		if i >= len(members) {
			return false
		}

		if !match(pair.Car(patterns), members[i], b) {
			return false
		}

		i++
	}

	return i == len(members)
}

// guardHolds evaluates the optional guard with the pattern's bindings
// in scope. A nil guard always holds.
func guardHolds(guard cell.I, b map[string]cell.I, e *env.T) bool {
	if guard == nil {
		return true
	}

	scope := e
	for k, v := range b {
		scope = scope.AddVariable(k, v)
	}

	return truth.Value(evaluate(guard, scope))
}
