package periph

import (
	"errors"
	"math"
	"testing"

	"l4hal-go/clocks"
	"l4hal-go/errcode"
)

func TestPeriodValues(t *testing.T) {
	sp := clocks.Default().Speeds() // 80 MHz timers on both buses
	cases := []struct {
		period float32
		want   uint16
	}{
		{1, 8943},     // sqrt(80e6) = 8944.27
		{0.001, 282},  // sqrt(80e3) = 282.84
		{50e-9, 1},    // 4 ticks
		{53, 65114},   // sqrt(4.24e9) = 65115.3
		{0.00001, 27}, // sqrt(800) = 28.28
	}
	for _, c := range cases {
		psc, arr, err := PeriodValues(c.period, sp, APB1)
		if err != nil {
			t.Errorf("%v s: %v", c.period, err)
			continue
		}
		if psc != arr || arr != c.want {
			t.Errorf("%v s: psc=%d arr=%d, want %d", c.period, psc, arr, c.want)
		}
	}
}

func TestPeriodValuesOutOfRange(t *testing.T) {
	sp := clocks.Default().Speeds()
	for _, p := range []float32{60, 0, -1, 1e-12, float32(math.NaN())} {
		_, _, err := PeriodValues(p, sp, APB1)
		if !errors.Is(err, ErrTimerRange) || errcode.Of(err) != errcode.TimerOutOfRange {
			t.Errorf("%v s: err = %v", p, err)
		}
	}
}

func TestPeriodValuesUsesBusTimerClock(t *testing.T) {
	c := clocks.Default()
	c.Apb2Prescaler = clocks.ApbDiv4 // PCLK2 20 MHz, timers 40 MHz
	sp := c.Speeds()

	_, a1, _ := PeriodValues(1, sp, APB1)
	_, a2, _ := PeriodValues(1, sp, APB2)
	if a1 != 8943 || a2 != 6324 { // sqrt(40e6) = 6324.56
		t.Fatalf("apb1 arr=%d apb2 arr=%d", a1, a2)
	}
	if got := Period(a2, a2, sp, APB2); got < 0.999 || got > 1.001 {
		t.Fatalf("apb2 period = %v", got)
	}
}
