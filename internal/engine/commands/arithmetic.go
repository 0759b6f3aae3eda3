// Released under an MIT license. See LICENSE.

package commands

import (
	"math/big"

	"github.com/lash-lang/lash/internal/common/interface/cell"
	"github.com/lash-lang/lash/internal/common/interface/rational"
	"github.com/lash-lang/lash/internal/common/type/num"
	"github.com/lash-lang/lash/internal/common/type/pair"
	"github.com/lash-lang/lash/internal/common/validate"
)

func add(args cell.I) cell.I {
	sum := &big.Rat{}

	for args != pair.Null {
		sum.Add(sum, rational.Number(pair.Car(args)))

		args = pair.Cdr(args)
	}

	return num.Rat(sum)
}

func div(args cell.I) cell.I {
	v, args := validate.Variadic(args, 1, 1)

	quotient := &big.Rat{}
	quotient.Set(rational.Number(v[0]))

	for args != pair.Null {
		d := rational.Number(pair.Car(args))
		if d.Sign() == 0 {
			panic("division by zero")
		}

		quotient.Quo(quotient, d)

		args = pair.Cdr(args)
	}

	return num.Rat(quotient)
}

func mul(args cell.I) cell.I {
	product := big.NewRat(1, 1)

	for args != pair.Null {
		product.Mul(product, rational.Number(pair.Car(args)))

		args = pair.Cdr(args)
	}

	return num.Rat(product)
}

func rem(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	remainder := rational.Number(v[0])
	divisor := rational.Number(v[1])

	if !remainder.IsInt() {
		panic("dividend must be an integer")
	}

	if !divisor.IsInt() {
		panic("divisor must be an integer")
	}

	if divisor.Sign() == 0 {
		panic("division by zero")
	}

	dividend := &big.Int{}
	dividend.Set(remainder.Num())

	dividend.Rem(dividend, divisor.Num())

	remainder = &big.Rat{}
	remainder.SetInt(dividend)

	return num.Rat(remainder)
}

func sub(args cell.I) cell.I {
	v, args := validate.Variadic(args, 1, 1)

	difference := &big.Rat{}
	difference.Set(rational.Number(v[0]))

	if args == pair.Null {
		return num.Rat(difference.Neg(difference))
	}

	for args != pair.Null {
		difference.Sub(difference, rational.Number(pair.Car(args)))

		args = pair.Cdr(args)
	}

	return num.Rat(difference)
}
