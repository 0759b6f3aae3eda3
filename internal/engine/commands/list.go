// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/lash-lang/lash/internal/common/interface/cell"
	"github.com/lash-lang/lash/internal/common/interface/truth"
	"github.com/lash-lang/lash/internal/common/type/boolean"
	"github.com/lash-lang/lash/internal/common/type/list"
	"github.com/lash-lang/lash/internal/common/type/num"
	"github.com/lash-lang/lash/internal/common/type/pair"
	"github.com/lash-lang/lash/internal/common/validate"
)

func car(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return pair.Car(v[0])
}

func cdr(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return pair.Cdr(v[0])
}

func cons(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return pair.Cons(v[0], v[1])
}

func isList(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(pair.Is(v[0]))
}

func isNull(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(v[0] == pair.Null)
}

func length(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return num.Int(list.Length(v[0]))
}

func makeList(args cell.I) cell.I {
	return args
}

func not(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(!truth.Value(v[0]))
}
