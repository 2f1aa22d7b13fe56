// Package periph holds the peripheral-side collaborators of the clock core:
// timer period factorisation, the ADC sampling contract and input re-selection
// after low-power modes.
package periph

import (
	"errors"
	"math"

	"l4hal-go/clocks"
	"l4hal-go/errcode"
)

// TimerBus is the APB bus a general-purpose timer hangs off.
type TimerBus uint8

const (
	APB1 TimerBus = iota // TIM2..7
	APB2                 // TIM1, TIM8, TIM15..17
)

func (b TimerBus) String() string {
	if b == APB2 {
		return "apb2"
	}
	return "apb1"
}

// ClockMHz picks the timer kernel clock for the bus out of sp.
func (b TimerBus) ClockMHz(sp clocks.Speeds) float32 {
	if b == APB2 {
		return sp.Timer2
	}
	return sp.Timer1
}

var ErrTimerRange = errors.New("timer period does not fit PSC/ARR")

// PeriodValues factors timer_clk * period into (PSC+1)(ARR+1) with PSC == ARR.
// The result is coarse but covers the whole range a 16-bit pair can reach.
func PeriodValues(period float32, sp clocks.Speeds, bus TimerBus) (psc, arr uint16, err error) {
	rhs := float64(bus.ClockMHz(sp)) * 1_000_000 * float64(period)
	root := math.Round(math.Sqrt(rhs))
	// NaN fails both comparisons.
	if !(root >= 1 && root <= 1<<16) {
		return 0, 0, &errcode.E{C: errcode.TimerOutOfRange, Op: "periph.PeriodValues", Err: ErrTimerRange}
	}
	arr = uint16(root - 1)
	return arr, arr, nil
}

// Period is the update period psc/arr actually produce, in seconds.
func Period(psc, arr uint16, sp clocks.Speeds, bus TimerBus) float32 {
	clk := bus.ClockMHz(sp) * 1_000_000
	if clk == 0 {
		return 0
	}
	return (float32(psc) + 1) * (float32(arr) + 1) / clk
}
