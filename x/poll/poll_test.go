package poll

import (
	"errors"
	"testing"

	"l4hal-go/errcode"
)

func TestForeverReturnsOnceReady(t *testing.T) {
	n := 0
	err := Forever.Wait(func() bool { n++; return n == 5 })
	if err != nil || n != 5 {
		t.Fatalf("got err=%v polls=%d", err, n)
	}
}

func TestBoundedTimesOut(t *testing.T) {
	n := 0
	err := Bounded(3).Wait(func() bool { n++; return false })
	if !errors.Is(err, errcode.Timeout) {
		t.Fatalf("want timeout, got %v", err)
	}
	if n != 4 {
		t.Fatalf("polls=%d, want 4", n)
	}
}

func TestBoundedSucceedsWithinBudget(t *testing.T) {
	n := 0
	if err := Bounded(10).Wait(func() bool { n++; return n == 3 }); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
}

func TestFuncAdapter(t *testing.T) {
	called := false
	var w Waiter = Func(func(ready func() bool) error {
		called = true
		return nil
	})
	_ = w.Wait(func() bool { return false })
	if !called {
		t.Fatal("adapter not invoked")
	}
}
