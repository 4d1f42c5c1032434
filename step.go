// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package forcomp

// Builder context and DSL entry points.
//
// A Builder is the mutable step sequence open while one description block
// executes. The block receives its Builder explicitly — there is no
// process-global handler slot to rebind, so nested [For] invocations are
// structurally independent: each owns its own context and cannot corrupt
// an enclosing one.

// step is one registered binding: the capture target, the generator that
// produces the step's monadic value, and the optional terminal transform.
// Satisfy and Let rewrap gen in place. The rewrapping closures capture the
// previous generator and target, never the step itself, so no step keeps
// itself alive through its own closure.
type step struct {
	target    Target
	gen       func() Monad
	transform func(values ...any) any
}

// Builder is the context open while a description block executes. Its
// methods are the DSL entry points; they mutate only the receiver. A
// Builder lives for the duration of one [For] invocation's block and is
// consumed by the composer afterward.
//
// A Builder is exclusively owned by the single synchronous call stack
// executing the block; it is not safe for concurrent use and never needs
// to be.
type Builder struct {
	steps []*step
}

// Pick appends a binding step: when composed, gen produces a monadic
// value and each produced element is written into target before any later
// step's generator runs. A nil target discards produced values.
func (b *Builder) Pick(target Target, gen func() Monad) {
	if target == nil {
		target = Discard
	}
	b.steps = append(b.steps, &step{target: target, gen: gen})
}

// Satisfy constrains the last registered step to elements satisfying
// pred. The step's generator is rewrapped: it filters its monadic value,
// and the filter first writes the just-produced raw values into the
// step's target so that the zero-argument pred reads the bound names.
// Filtered-out elements never reach later steps' generators.
//
// Panics with [ErrOrder] when no step has been registered yet; the
// context is left unmodified.
func (b *Builder) Satisfy(pred func() bool) {
	s := b.open()
	gen, target := s.gen, s.target
	s.gen = func() Monad {
		return gen().Filter(func(v any) bool {
			target.Write(components(v)...)
			return pred()
		})
	}
}

// Let binds an auxiliary value derived from earlier bound names.
//
// With no step registered yet there is no enclosing monadic bind: thunk
// is evaluated immediately and synchronously into target, with no lifting.
//
// Otherwise the last step is rewritten: its target becomes a tuple of the
// original target and target, and its generator maps each produced
// element to a (element, thunk result) pair — writing the element into
// the original target first, so thunk reads the just-bound names. Later
// steps see both the bind value and the auxiliary value under their own
// names.
func (b *Builder) Let(target Target, thunk func() any) {
	if target == nil {
		target = Discard
	}
	if len(b.steps) == 0 {
		target.Write(thunk())
		return
	}
	s := b.steps[len(b.steps)-1]
	gen, orig := s.gen, s.target
	s.target = TupleOf(orig, target)
	s.gen = func() Monad {
		return gen().Map(func(v any) any {
			orig.Write(components(v)...)
			return Tuple{v, thunk()}
		})
	}
}

// Yield attaches transform as the terminal transform of the last
// registered step. The transform receives the step's raw produced values
// (after they have been written into the step's target) and its result is
// the plain element the composed monad wraps. At most one terminal
// transform exists; a second Yield overwrites the first.
//
// Panics with [ErrOrder] when no step has been registered yet.
func (b *Builder) Yield(transform func(values ...any) any) {
	b.open().transform = transform
}

// open returns the last registered step, panicking with [ErrOrder] when
// the context has none.
func (b *Builder) open() *step {
	if len(b.steps) == 0 {
		panic(ErrOrder)
	}
	return b.steps[len(b.steps)-1]
}
