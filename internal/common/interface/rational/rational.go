// Released under an MIT license. See LICENSE.

// Package rational defines the interface for lash types that can be a big.Rat.
package rational

import (
	"math/big"

	"github.com/lash-lang/lash/internal/common/interface/cell"
)

// I (rational) is any type that can be expressed as a big.Rat.
type I interface {
	Rat() *big.Rat
}

// Number returns the value of the cell c as a big.Rat, if possible.
func Number(c cell.I) *big.Rat {
	r, ok := c.(I)
	if !ok {
		panic(c.Name() + " cannot be used in a numeric context")
	}

	return r.Rat()
}
