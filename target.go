// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package forcomp

// Capture targets are the destinations that receive produced values from
// binding steps. Writes happen strictly before any later step's generator
// runs, so generators and predicates can read earlier bound names.

// Target receives one or more produced values and deposits them into
// caller-visible storage. Write never fails except for the tuple fan-out
// arity violation, which panics with [ErrTupleArity].
//
// Any type implementing Target defines its own capture protocol; the
// built-in variants are [To] (single slot), [Slice] (ordered collection),
// [TupleOf] (positional fan-out), and [Discard].
type Target interface {
	Write(values ...any)
}

// TargetFunc adapts a plain function to a custom capture [Target].
//
// Example:
//
//	seen := TargetFunc(func(values ...any) {
//	    log = append(log, values...)
//	})
type TargetFunc func(values ...any)

// Write implements Target by calling the function.
func (f TargetFunc) Write(values ...any) { f(values...) }

// singleTarget captures one produced value into a typed slot.
type singleTarget[T any] struct {
	slot *T
}

// Write implements Target. A single slot captures the first produced
// value; composite elements belong in TupleOf or Slice targets.
func (t singleTarget[T]) Write(values ...any) {
	if len(values) == 0 {
		return
	}
	*t.slot = values[0].(T)
}

// To creates a single-slot target that writes the produced value into *p.
// The produced value must be assignable to T; a mismatch panics with the
// runtime's type assertion failure, which propagates like any other
// caller-side failure.
func To[T any](p *T) Target {
	return singleTarget[T]{slot: p}
}

// sliceTarget captures the ordered collection of produced values.
type sliceTarget[T any] struct {
	slot *[]T
}

// Write implements Target. Each write replaces the previous contents.
func (t sliceTarget[T]) Write(values ...any) {
	out := make([]T, len(values))
	for i, v := range values {
		out[i] = v.(T)
	}
	*t.slot = out
}

// Slice creates a sequence target that writes all produced values of a
// variadic bind result into *p, in production order.
func Slice[T any](p *[]T) Target {
	return sliceTarget[T]{slot: p}
}

// tupleTarget fans produced values out positionally, one nested target
// per component.
type tupleTarget struct {
	targets []Target
}

// Write implements Target. The produced component count must equal the
// nested target count; a mismatch is a composer defect and panics with
// [ErrTupleArity]. A component that is itself a [Tuple] splats into its
// nested target, so tuples-of-tuples fan out recursively.
func (t tupleTarget) Write(values ...any) {
	if len(values) != len(t.targets) {
		panic(ErrTupleArity)
	}
	for i, v := range values {
		t.targets[i].Write(components(v)...)
	}
}

// TupleOf creates a composite target fanning values out positionally to
// the given nested targets. [Builder.Let] builds these internally; callers
// need TupleOf only when a step's monad produces [Tuple] elements directly.
func TupleOf(targets ...Target) Target {
	return tupleTarget{targets: targets}
}

// discard drops produced values.
type discard struct{}

// Write implements Target by doing nothing.
func (discard) Write(...any) {}

// Discard is the target that drops produced values. A nil target passed
// to [Builder.Pick] or [Builder.Let] behaves the same.
var Discard Target = discard{}
