// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package forcomp_test

import (
	"code.hybscloud.com/forcomp"
)

// Test monads. Concrete monad implementations are outside the package's
// scope, so the suite carries its own: seq, an eager list monad (unit
// wraps one element, flatMap concatenates, filter keeps matches), and
// opt, a single-valued optional monad.

// seq is an eager list-like monad over type-erased elements.
type seq struct {
	elems []any
}

func seqOf(elems ...any) seq {
	return seq{elems: elems}
}

func (seq) Unit(v any) forcomp.Monad {
	return seqOf(v)
}

func (s seq) Map(f func(any) any) forcomp.Monad {
	out := make([]any, 0, len(s.elems))
	for _, e := range s.elems {
		out = append(out, f(e))
	}
	return seq{elems: out}
}

func (s seq) FlatMap(f func(any) forcomp.Monad) forcomp.Monad {
	var out []any
	for _, e := range s.elems {
		out = append(out, f(e).(seq).elems...)
	}
	return seq{elems: out}
}

func (s seq) Filter(pred func(any) bool) forcomp.Monad {
	var out []any
	for _, e := range s.elems {
		if pred(e) {
			out = append(out, e)
		}
	}
	return seq{elems: out}
}

// opt is an optional-value monad: at most one element.
type opt struct {
	v  any
	ok bool
}

func some(v any) opt {
	return opt{v: v, ok: true}
}

func none() opt {
	return opt{}
}

func (opt) Unit(v any) forcomp.Monad {
	return some(v)
}

func (o opt) Map(f func(any) any) forcomp.Monad {
	if !o.ok {
		return o
	}
	return some(f(o.v))
}

func (o opt) FlatMap(f func(any) forcomp.Monad) forcomp.Monad {
	if !o.ok {
		return o
	}
	return f(o.v)
}

func (o opt) Filter(pred func(any) bool) forcomp.Monad {
	if o.ok && pred(o.v) {
		return o
	}
	return none()
}
