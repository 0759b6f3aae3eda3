// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/lash-lang/lash/internal/common/interface/cell"
	"github.com/lash-lang/lash/internal/common/interface/rational"
	"github.com/lash-lang/lash/internal/common/type/list"
	"github.com/lash-lang/lash/internal/common/type/tuple"
	"github.com/lash-lang/lash/internal/common/validate"
)

func element(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	n := rational.Number(v[0])
	if !n.IsInt() {
		panic("index must be an integer")
	}

	t := tuple.To(v[1])

	i := int(n.Num().Int64())
	if i < 1 || i > t.Size() {
		panic("index out of range")
	}

	// Tuple indexing is 1-based.
	return t.Slice()[i-1]
}

func makeTuple(args cell.I) cell.I {
	return tuple.New(list.Slice(args)...)
}
