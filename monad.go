// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package forcomp

// Monad capability boundary.
//
// The composer is polymorphic over any container type implementing this
// set. Go generics cannot express higher-kinded polymorphism (a type
// parameter M such that M[A] and M[B] are related), so the boundary is
// type-erased: elements cross it as any, and concrete types are recovered
// by the caller's own generators, predicates, and transforms.

// Monad is the capability set the composer requires from an external
// container type: unit, map, flatMap, filter. The composer imposes no
// further requirements — no ordering, cardinality, or strictness
// assumptions. A Monad's operations may be eager or lazy, list-like or
// single-valued; composition simply propagates that behavior.
//
// Unit is never invoked by the composer itself. It completes the
// capability set so that caller code holding a Monad value can lift plain
// values into the same container kind without naming the concrete type.
type Monad interface {
	// Unit lifts a plain value into the container kind of the receiver.
	Unit(v any) Monad

	// Map transforms the contained element(s).
	Map(f func(any) any) Monad

	// FlatMap sequences a dependent computation.
	FlatMap(f func(any) Monad) Monad

	// Filter constrains the container to elements satisfying pred.
	Filter(pred func(any) bool) Monad
}

// Tuple is the multi-component element convention. An element of type
// Tuple crosses the capture boundary as multiple positional values, one
// per component; any other element crosses as a single value. The
// convention lives entirely on this side of the [Monad] boundary —
// concrete monads treat Tuple elements like any other element.
//
// [Builder.Let] produces Tuple elements to carry a bind value and an
// auxiliary value through one step; components may themselves be Tuples
// (nested fan-out).
type Tuple []any

// components splits an element into its positional capture values.
func components(v any) []any {
	if t, ok := v.(Tuple); ok {
		return t
	}
	return []any{v}
}
