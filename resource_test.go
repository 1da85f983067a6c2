// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nemo_test

import (
	"testing"

	"github.com/ebfull/nemo"
)

func TestBracketSuccess(t *testing.T) {
	var acquired, released bool

	// Build a bracketed computation
	comp := nemo.Bracket[string, int, int](
		// acquire
		nemo.Return[nemo.Resumed](42),
		// release
		func(r int) nemo.Cont[nemo.Resumed, struct{}] {
			released = true
			return nemo.Return[nemo.Resumed](struct{}{})
		},
		// use
		func(r int) nemo.Cont[nemo.Resumed, int] {
			acquired = true
			return nemo.Return[nemo.Resumed](r * 2)
		},
	)

	result := nemo.Handle(comp, nemo.HandleFunc[nemo.Either[string, int]](func(op nemo.Operation) (nemo.Resumed, bool) {
		panic("no effects expected")
	}))

	if !result.IsRight() {
		t.Fatalf("expected Right, got Left")
	}
	val, _ := result.GetRight()
	if val != 84 {
		t.Fatalf("got %d, want 84", val)
	}
	if !acquired {
		t.Fatal("resource not acquired")
	}
	if !released {
		t.Fatal("resource not released")
	}
}

func TestBracketReleasesOnError(t *testing.T) {
	var released bool

	// Build a bracketed computation that throws an error
	comp := nemo.Bracket[string, int, int](
		// acquire
		nemo.Return[nemo.Resumed](42),
		// release
		func(r int) nemo.Cont[nemo.Resumed, struct{}] {
			released = true
			return nemo.Return[nemo.Resumed](struct{}{})
		},
		// use - throws error
		func(r int) nemo.Cont[nemo.Resumed, int] {
			return nemo.ThrowError[string, int]("intentional error")
		},
	)

	result := nemo.Handle(comp, nemo.HandleFunc[nemo.Either[string, int]](func(op nemo.Operation) (nemo.Resumed, bool) {
		// Handle error effect
		switch o := op.(type) {
		case nemo.Throw[string]:
			return nemo.Left[string, int](o.Err), false
		}
		panic("unexpected effect")
	}))

	if result.IsRight() {
		t.Fatal("expected Left (error), got Right")
	}
	errVal, _ := result.GetLeft()
	if errVal != "intentional error" {
		t.Fatalf("got error %q, want %q", errVal, "intentional error")
	}
	if !released {
		t.Fatal("resource not released after error")
	}
}

func TestOnErrorRunsOnError(t *testing.T) {
	var cleanedUp bool
	var capturedError string

	comp := nemo.OnError[string, int](
		nemo.ThrowError[string, int]("test error"),
		func(e string) nemo.Cont[nemo.Resumed, struct{}] {
			cleanedUp = true
			capturedError = e
			return nemo.Return[nemo.Resumed](struct{}{})
		},
	)

	result := nemo.RunError[string, int](comp)

	if result.IsRight() {
		t.Fatal("expected Left (error), got Right")
	}
	errVal, _ := result.GetLeft()
	if errVal != "test error" {
		t.Fatalf("got error %q, want %q", errVal, "test error")
	}
	if !cleanedUp {
		t.Fatal("cleanup not called on error")
	}
	if capturedError != "test error" {
		t.Fatalf("captured error %q, want %q", capturedError, "test error")
	}
}

func TestOnErrorSkippedOnSuccess(t *testing.T) {
	var cleanedUp bool

	comp := nemo.OnError[string, int](
		nemo.Return[nemo.Resumed](42),
		func(e string) nemo.Cont[nemo.Resumed, struct{}] {
			cleanedUp = true
			return nemo.Return[nemo.Resumed](struct{}{})
		},
	)

	result := nemo.RunError[string, int](comp)

	if !result.IsRight() {
		t.Fatal("expected Right, got Left")
	}
	val, _ := result.GetRight()
	if val != 42 {
		t.Fatalf("got %d, want 42", val)
	}
	if cleanedUp {
		t.Fatal("cleanup should not be called on success")
	}
}
