// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package forcomp

// The composer folds a finished step sequence into one composed monadic
// value. Desugaring is the classic comprehension translation: every
// non-terminal step becomes a FlatMap, the terminal transform becomes a
// Map, and a last step without a transform passes its raw monadic value
// through.

// For runs block with a fresh builder context and composes the registered
// steps into a single monadic value.
//
// Capture-then-continue ordering is strict: a later step's generator is
// only invoked after the current step's produced element has been written
// into its target, so generators, predicates, and transforms may read
// earlier bound names. Whether that evaluation happens during For or
// later is up to the monad's own strictness.
//
// Panics with [ErrEmptyPipeline] when the block registers zero steps, and
// with [ErrOrder] from misordered DSL calls inside the block. Failures in
// caller-supplied functions are not caught. See [TryFor] for the
// non-panicking variant.
func For(block func(*Builder)) Monad {
	b := &Builder{}
	block(b)
	steps := b.steps
	b.steps = nil // the composer owns the sequence from here
	if len(steps) == 0 {
		panic(ErrEmptyPipeline)
	}
	return compose(steps)
}

// TryFor is the non-panicking variant of [For]. It recovers the package's
// contract sentinels ([ErrOrder], [ErrEmptyPipeline], [ErrTupleArity])
// and returns them; any other panic value propagates unchanged.
//
// A lazy monad may defer the fold past TryFor's return — contract panics
// raised during that later evaluation are outside TryFor's reach.
func TryFor(block func(*Builder)) (m Monad, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		e, ok := isContract(r)
		if !ok {
			panic(r)
		}
		m, err = nil, e
	}()
	return For(block), nil
}

// compose folds steps left to right, consuming the sequence. Recursion
// happens inside the FlatMap continuation, so the tail is re-composed per
// produced element — exactly the dependent-bind semantics a comprehension
// desugars to.
func compose(steps []*step) Monad {
	head, rest := steps[0], steps[1:]
	m := head.gen()
	target := head.target
	switch {
	case head.transform != nil:
		transform := head.transform
		return m.Map(func(v any) any {
			values := components(v)
			target.Write(values...)
			return transform(values...)
		})
	case len(rest) > 0:
		return m.FlatMap(func(v any) Monad {
			target.Write(components(v)...)
			return compose(rest)
		})
	default:
		return m
	}
}
