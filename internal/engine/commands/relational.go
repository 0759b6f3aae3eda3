// Released under an MIT license. See LICENSE.

package commands

import (
	"math/big"

	"github.com/lash-lang/lash/internal/common/interface/cell"
	"github.com/lash-lang/lash/internal/common/interface/rational"
	"github.com/lash-lang/lash/internal/common/type/boolean"
	"github.com/lash-lang/lash/internal/common/type/pair"
	"github.com/lash-lang/lash/internal/common/validate"
)

func eq(args cell.I) cell.I {
	v, rest := validate.Variadic(args, 2, 2)

	if !v[0].Equal(v[1]) {
		return boolean.False
	}

	for rest != pair.Null {
		if !v[0].Equal(pair.Car(rest)) {
			return boolean.False
		}

		rest = pair.Cdr(rest)
	}

	return boolean.True
}

func ne(args cell.I) cell.I {
	return boolean.Bool(eq(args) == boolean.False)
}

func ge(args cell.I) cell.I {
	return ordered(args, func(a, b *big.Rat) bool { return a.Cmp(b) >= 0 })
}

func gt(args cell.I) cell.I {
	return ordered(args, func(a, b *big.Rat) bool { return a.Cmp(b) > 0 })
}

func le(args cell.I) cell.I {
	return ordered(args, func(a, b *big.Rat) bool { return a.Cmp(b) <= 0 })
}

func lt(args cell.I) cell.I {
	return ordered(args, func(a, b *big.Rat) bool { return a.Cmp(b) < 0 })
}

func ordered(args cell.I, ok func(a, b *big.Rat) bool) cell.I {
	prev := rational.Number(pair.Car(args))

	for args = pair.Cdr(args); args != pair.Null; args = pair.Cdr(args) {
		curr := rational.Number(pair.Car(args))

		if !ok(prev, curr) {
			return boolean.False
		}

		prev = curr
	}

	return boolean.True
}
