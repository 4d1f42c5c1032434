// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package forcomp_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/forcomp"
)

func TestForPanicsOnEmptyPipeline(t *testing.T) {
	defer func() {
		r := recover()
		e, ok := r.(error)
		if !ok || !errors.Is(e, forcomp.ErrEmptyPipeline) {
			t.Fatalf("recovered %v, want ErrEmptyPipeline", r)
		}
	}()
	forcomp.For(func(c *forcomp.Builder) {})
}

func TestForPanicsOnOrderViolation(t *testing.T) {
	defer func() {
		r := recover()
		e, ok := r.(error)
		if !ok || !errors.Is(e, forcomp.ErrOrder) {
			t.Fatalf("recovered %v, want ErrOrder", r)
		}
	}()
	forcomp.For(func(c *forcomp.Builder) {
		c.Satisfy(func() bool { return true })
	})
}

func TestTryForSuccess(t *testing.T) {
	var x int
	m, err := forcomp.TryFor(func(c *forcomp.Builder) {
		c.Pick(forcomp.To(&x), func() forcomp.Monad { return seqOf(1) })
	})
	if err != nil {
		t.Fatalf("err = %v, want nil", err)
	}
	if m == nil {
		t.Fatal("m = nil, want composed monad")
	}
}

func TestTryForReturnsSentinels(t *testing.T) {
	m, err := forcomp.TryFor(func(c *forcomp.Builder) {
		c.Yield(func(...any) any { return nil })
	})
	if m != nil || !errors.Is(err, forcomp.ErrOrder) {
		t.Fatalf("got (%v, %v), want (nil, ErrOrder)", m, err)
	}

	m, err = forcomp.TryFor(func(c *forcomp.Builder) {})
	if m != nil || !errors.Is(err, forcomp.ErrEmptyPipeline) {
		t.Fatalf("got (%v, %v), want (nil, ErrEmptyPipeline)", m, err)
	}
}

func TestTryForReraisesForeignPanic(t *testing.T) {
	defer func() {
		if r := recover(); r != "boom" {
			t.Fatalf("recovered %v, want boom", r)
		}
	}()
	_, _ = forcomp.TryFor(func(c *forcomp.Builder) {
		panic("boom")
	})
}

func TestCallerGeneratorFailurePropagates(t *testing.T) {
	// Failures in caller-supplied functions pass through For unchanged.
	defer func() {
		if r := recover(); r != "generator failed" {
			t.Fatalf("recovered %v, want generator failure", r)
		}
	}()
	var x int
	forcomp.For(func(c *forcomp.Builder) {
		c.Pick(forcomp.To(&x), func() forcomp.Monad {
			panic("generator failed")
		})
	})
}

func TestCallerPredicateFailurePropagates(t *testing.T) {
	defer func() {
		if r := recover(); r != "predicate failed" {
			t.Fatalf("recovered %v, want predicate failure", r)
		}
	}()
	var x int
	forcomp.For(func(c *forcomp.Builder) {
		c.Pick(forcomp.To(&x), func() forcomp.Monad { return seqOf(1) })
		c.Satisfy(func() bool { panic("predicate failed") })
	})
}
