// Package poll is the wait-until-ready abstraction used wherever firmware spins
// on a hardware status flag.
package poll

import "l4hal-go/errcode"

// Waiter blocks until ready reports true.
type Waiter interface {
	Wait(ready func() bool) error
}

// Forever spins with no bound. This is what the hardware contract assumes: a
// flag that never sets hangs the caller.
var Forever Waiter = forever{}

type forever struct{}

func (forever) Wait(ready func() bool) error {
	for !ready() {
	}
	return nil
}

// Bounded gives up after n polls and returns errcode.Timeout. n == 0 polls once.
func Bounded(n uint32) Waiter { return bounded(n) }

type bounded uint32

func (b bounded) Wait(ready func() bool) error {
	for i := uint32(0); ; i++ {
		if ready() {
			return nil
		}
		if i >= uint32(b) {
			return errcode.Timeout
		}
	}
}

// Func adapts a plain function, e.g. one that yields to a scheduler between polls.
type Func func(ready func() bool) error

func (f Func) Wait(ready func() bool) error { return f(ready) }
