// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package forcomp provides generic monadic comprehensions in Go.
//
// A comprehension describes a sequence of dependent binding steps over any
// container type supporting {unit, map, flatMap, filter}, and [For]
// compiles that description into a single composed value of that type —
// the caller never writes the nested flatMap chains by hand.
//
// # Design Philosophy
//
// forcomp provides:
//   - A minimal capability boundary: the composer calls only [Monad.Map],
//     [Monad.FlatMap], and [Monad.Filter] on caller-supplied values
//   - Explicit context passing: the description block receives its
//     [Builder], so nested invocations are structurally independent —
//     no dynamic scoping, no global handler slot
//   - Ownership transfer: the composer consumes the step sequence, and
//     step rewrites capture prior generators rather than the step itself,
//     so no step is kept alive through its own closure
//
// # Capability Boundary
//
// [Monad] is the only external interface. Elements cross it type-erased as
// any; concrete monads decide strictness and cardinality. [Tuple] is the
// multi-component element convention: a Tuple element fans out into
// multiple positional capture values, and the splat lives entirely on the
// comprehension side of the boundary.
//
// # DSL Entry Points
//
// The description block assembles binding steps through its [Builder]:
//
//   - [Builder.Pick]: register a step — bind a generator's produced
//     elements to a capture target
//   - [Builder.Satisfy]: constrain the last step with a predicate over the
//     bound names
//   - [Builder.Let]: bind an auxiliary value derived from earlier names,
//     or evaluate immediately when no step is open
//   - [Builder.Yield]: attach the terminal transform applied to the last
//     step's output
//
// # Capture Targets
//
// [Target] is a uniform write protocol with these variants:
//
//   - [To]: single typed slot
//   - [Slice]: ordered collection of a variadic bind result
//   - [TupleOf]: positional fan-out, nested targets per component
//   - [TargetFunc]: custom capture protocol from a plain function
//   - [Discard]: drop produced values (also the meaning of a nil target)
//
// # Composition
//
//   - [For]: run a description block and fold the steps; panics on
//     contract violations
//   - [TryFor]: non-panicking variant returning the contract sentinel
//
// Non-terminal steps desugar to FlatMap, the terminal transform to Map,
// and a final step without a transform passes its monadic value through
// unchanged. Capture-then-continue ordering is strict: produced values
// are fully written before any later generator runs.
//
// # Contract Errors
//
//   - [ErrOrder]: Satisfy or Yield before any Pick
//   - [ErrEmptyPipeline]: description block registered zero steps
//   - [ErrTupleArity]: tuple fan-out component count mismatch (an internal
//     composer invariant, never correct-usage reachable)
//
// Failures inside caller-supplied generators, predicates, thunks, and
// transforms are never caught or transformed.
//
// # Example
//
// Over a list-like monad (unit wraps one element, flatMap concatenates,
// filter keeps matches), distinct ordered pairs:
//
//	var x, y int
//	pairs := forcomp.For(func(c *forcomp.Builder) {
//	    c.Pick(forcomp.To(&x), func() forcomp.Monad { return list(1, 2, 3) })
//	    c.Pick(forcomp.To(&y), func() forcomp.Monad { return list(1, 2, 3) })
//	    c.Satisfy(func() bool { return x != y })
//	    c.Yield(func(...any) any { return [2]int{x, y} })
//	})
//	// pairs == list([1 2] [1 3] [2 1] [2 3] [3 1] [3 2])
package forcomp
