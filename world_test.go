// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package apix_test

import (
	"testing"

	"code.hybscloud.com/apix"
	"code.hybscloud.com/kont"
)

// testWorldLaws exercises the algebraic contract every world must
// satisfy: left identity, identity, and error short-circuiting.
// obs resolves a context value at the world's observation boundary.
func testWorldLaws[W apix.World[C, string], C any](t *testing.T, w W, obs func(C) kont.Either[string, apix.Elem]) {
	t.Helper()

	// Left identity: FlatMap(f)(Pure(a)) == f(a)
	double := func(v apix.Elem) C {
		return w.Pure(v.(int) * 2)
	}
	got := obs(w.FlatMap(w.Pure(21), double))
	want := obs(double(21))
	if got != want {
		t.Fatalf("left identity: got %v, want %v", got, want)
	}

	// Identity: FlatMap(Pure)(ma) == ma, on both branches
	if got, want := obs(w.FlatMap(w.Pure(7), w.Pure)), obs(w.Pure(7)); got != want {
		t.Fatalf("identity on value: got %v, want %v", got, want)
	}
	if got, want := obs(w.FlatMap(w.RaiseError("boom"), w.Pure)), obs(w.RaiseError("boom")); got != want {
		t.Fatalf("identity on error: got %v, want %v", got, want)
	}

	// Error short-circuit: Map and FlatMap over a raised error
	// propagate it unchanged and never invoke f.
	invoked := false
	r := obs(w.FlatMap(w.RaiseError("halt"), func(v apix.Elem) C {
		invoked = true
		return w.Pure(v)
	}))
	errVal, isErr := r.GetLeft()
	if !isErr || errVal != "halt" {
		t.Fatalf("flatMap short-circuit: got %v, want Left(halt)", r)
	}
	r = obs(w.Map(w.RaiseError("halt"), func(v apix.Elem) apix.Elem {
		invoked = true
		return v
	}))
	errVal, isErr = r.GetLeft()
	if !isErr || errVal != "halt" {
		t.Fatalf("map short-circuit: got %v, want Left(halt)", r)
	}
	if invoked {
		t.Fatal("short-circuit invoked f on an error context")
	}

	// Map transforms the value branch only.
	r = obs(w.Map(w.Pure(5), func(v apix.Elem) apix.Elem {
		return v.(int) + 1
	}))
	v, ok := r.GetRight()
	if !ok || v != 6 {
		t.Fatalf("map on value: got %v, want Right(6)", r)
	}
}

func TestSyncWorldLaws(t *testing.T) {
	testWorldLaws(t, apix.SyncWorld[string]{}, apix.Result[apix.Elem, string])
}

func TestFutureWorldLaws(t *testing.T) {
	testWorldLaws(t, apix.FutureWorld[string]{}, apix.Await[apix.Elem, string])
}

func TestEffWorldLaws(t *testing.T) {
	testWorldLaws(t, apix.EffWorld[string]{}, apix.RunDeferred[apix.Elem, string])
}

func TestDeferredDefersEvaluation(t *testing.T) {
	w := apix.EffWorld[string]{}
	ran := false
	m := w.FlatMap(w.Pure(1), func(v apix.Elem) apix.Deferred {
		ran = true
		return w.Pure(v)
	})
	if ran {
		t.Fatal("continuation ran before RunDeferred")
	}
	r := apix.RunDeferred[int, string](m)
	v, ok := r.GetRight()
	if !ok || v != 1 {
		t.Fatalf("got %v, want Right(1)", r)
	}
	if !ran {
		t.Fatal("continuation did not run during RunDeferred")
	}
}

func TestRunDeferredUnhandledPanics(t *testing.T) {
	type bogus struct{ kont.Phantom[apix.Elem] }

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for unhandled effect")
		}
		msg, ok := r.(string)
		if !ok || msg != "apix: unhandled effect in deferredHandler" {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	apix.RunDeferred[int, string](kont.Perform(bogus{}))
}
