// Package rtc computes RTC wakeup-timer settings (AN4759 section 2.4, RM0351
// section 38.3.6).
//
// A requested period falls into one of three WUCKSEL regimes:
//
//	[122.07 µs, 32 s)   RTCCLK/16../2, reload = round(t*f/div) - 1
//	[32 s, 65536 s)     ck_spre (1 Hz), reload = t
//	[65536 s, 131072 s) ck_spre + 2^16, reload = t - 65537
//
// Where regimes overlap the finer one is used. A reload that does not fit in
// 16 bits for the chosen band is an error, never a shorter period.
package rtc

import (
	"errors"
	"math"

	"l4hal-go/errcode"
	"l4hal-go/x/mathx"
)

// ClockSource is the RTCSEL clock feeding the RTC. The value is the field
// encoding.
type ClockSource uint8

const (
	LSE ClockSource = 0b01
	LSI ClockSource = 0b10
	// HSE assumes an 8 MHz crystal divided by 32.
	HSE ClockSource = 0b11
)

// Hz is the RTCCLK frequency for the source.
func (s ClockSource) Hz() float32 {
	switch s {
	case LSE:
		return 32_768
	case HSE:
		return 250_000
	}
	return 32_000
}

func (s ClockSource) String() string {
	switch s {
	case LSE:
		return "lse"
	case HSE:
		return "hse"
	}
	return "lsi"
}

// WakeupClock is the WUCKSEL[2:0] selector.
type WakeupClock uint8

const (
	WakeupDiv16     WakeupClock = 0b000
	WakeupDiv8      WakeupClock = 0b001
	WakeupDiv4      WakeupClock = 0b010
	WakeupDiv2      WakeupClock = 0b011
	WakeupSpre      WakeupClock = 0b100 // ck_spre, 1 s to ~18 h
	WakeupSpreExt16 WakeupClock = 0b110 // ck_spre with 2^16 added, ~18 h to ~36 h
)

// Divider returns the RTCCLK divider for the sub-32 s selectors, 0 otherwise.
func (w WakeupClock) Divider() uint8 {
	switch w {
	case WakeupDiv16:
		return 16
	case WakeupDiv8:
		return 8
	case WakeupDiv4:
		return 4
	case WakeupDiv2:
		return 2
	}
	return 0
}

func (w WakeupClock) Bits() uint8 { return uint8(w) & 0x7 }

// Encoding is what the wakeup timer registers need for one period.
type Encoding struct {
	Clock  WakeupClock
	Reload uint16 // WUT[15:0]
}

const (
	MinWakeupSeconds = 0.00012207
	MaxWakeupSeconds = 131_072
)

var ErrWakeupRange = errors.New("wakeup period must be between 122.07 µs and 36 h")

// Encode picks the WUCKSEL mode and reload value for a period in seconds.
func Encode(seconds float32, src ClockSource) (Encoding, error) {
	switch {
	case mathx.HalfOpen(seconds, MinWakeupSeconds, 32):
		clk, div := subsecondClock(seconds)
		reload := float32(math.Round(float64(seconds*src.Hz()/float32(div)))) - 1
		if reload > math.MaxUint16 {
			break // only HSE/32 overflows WUT within its band
		}
		return Encoding{Clock: clk, Reload: uint16(mathx.Clamp(reload, 0, math.MaxUint16))}, nil
	case mathx.HalfOpen(seconds, 32, 65_536):
		return Encoding{Clock: WakeupSpre, Reload: uint16(seconds)}, nil
	case mathx.HalfOpen(seconds, 65_536, MaxWakeupSeconds):
		return Encoding{Clock: WakeupSpreExt16, Reload: uint16(mathx.Clamp(seconds-65_537, 0, math.MaxUint16))}, nil
	}
	return Encoding{}, &errcode.E{C: errcode.WakeupOutOfRange, Op: "rtc.Encode", Err: ErrWakeupRange}
}

// subsecondClock chooses the finest RTCCLK divider that still fits the period
// into 16 bits.
func subsecondClock(seconds float32) (WakeupClock, uint8) {
	switch {
	case seconds < 4:
		return WakeupDiv2, 2 // 61.035 µs resolution with LSE
	case seconds < 8:
		return WakeupDiv4, 4
	case seconds < 16:
		return WakeupDiv8, 8
	}
	return WakeupDiv16, 16
}

// Period is the wakeup period e actually programs, in seconds.
func (e Encoding) Period(src ClockSource) float32 {
	switch e.Clock {
	case WakeupSpre:
		return float32(e.Reload)
	case WakeupSpreExt16:
		return float32(e.Reload) + 65_537
	}
	if div := e.Clock.Divider(); div != 0 {
		return float32(div) * (float32(e.Reload) + 1) / src.Hz()
	}
	return 0
}

// CountdownEncoding is the whole-second count-down form: 1 <= delay <= 2^17,
// counting delay-1 with bit 16 carried by WUCKSEL.
func CountdownEncoding(delay uint32) (Encoding, error) {
	if delay < 1 || delay > 1<<17 {
		return Encoding{}, &errcode.E{C: errcode.WakeupOutOfRange, Op: "rtc.CountdownEncoding", Err: ErrWakeupRange}
	}
	d := delay - 1
	clk := WakeupSpre
	if d&0x1_0000 != 0 {
		clk = WakeupSpreExt16
	}
	return Encoding{Clock: clk, Reload: uint16(d)}, nil
}
