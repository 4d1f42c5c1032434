// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package forcomp

import "errors"

// Contract-violation sentinels.
//
// The package signals caller-contract and internal-invariant violations by
// panicking with one of these sentinel errors. [TryFor] recovers exactly
// this set and returns the sentinel; any other panic value, including
// failures raised by caller-supplied generator, predicate, thunk, or
// transform functions, propagates unchanged.
var (
	// ErrOrder reports a Satisfy or Yield call with no preceding Pick in
	// the open builder context. There is no step to rewrite, so the
	// description block is malformed.
	ErrOrder = errors.New("forcomp: operation requires a preceding pick")

	// ErrEmptyPipeline reports a description block that registered zero
	// steps. Composition has nothing to fold.
	ErrEmptyPipeline = errors.New("forcomp: description block registered no steps")

	// ErrTupleArity reports a tuple fan-out whose produced component count
	// disagrees with the number of nested targets. This is an internal
	// invariant of the composer, not caller misuse; correct DSL usage can
	// never trigger it.
	ErrTupleArity = errors.New("forcomp: tuple capture arity mismatch")
)

// isContract reports whether a recovered panic value is one of the
// package's contract sentinels.
func isContract(r any) (error, bool) {
	e, ok := r.(error)
	if !ok {
		return nil, false
	}
	switch {
	case errors.Is(e, ErrOrder), errors.Is(e, ErrEmptyPipeline), errors.Is(e, ErrTupleArity):
		return e, true
	}
	return nil, false
}
