package clocks

import (
	"errors"

	"l4hal-go/errcode"
	"l4hal-go/x/mathx"
)

// Operating limits (range 1, RM0351 section 6.2).
const (
	MaxBusMHz = 80
	USBMHz    = 48
	MinPllMul = 7
	MaxPllMul = 86
)

var (
	// Sentinel errors (TinyGo-safe; no fmt)
	ErrInvalidConfig = errors.New("clock configuration outside operating limits")
	ErrUSBClock      = errors.New("48 MHz clock is not 48 MHz")
)

// Validation is a single pass/fail outcome.
type Validation uint8

const (
	Valid Validation = iota
	NotValid
)

func (v Validation) String() string {
	if v == Valid {
		return "valid"
	}
	return "not_valid"
}

// Verdict holds the independent outcomes of validation. USB failures never
// block Setup; callers that do not use USB may ignore them.
type Verdict struct {
	Primary Validation
	USB     Validation

	// Diagnostics: which primary rules failed.
	MulOutOfRange bool
	SysclkOver    bool
	HCLKOver      bool
	PCLK1Over     bool
	PCLK2Over     bool
}

// OK reports a primary-valid verdict.
func (v Verdict) OK() bool { return v.Primary == Valid }

// Err maps the verdict onto the package sentinels, primary first.
func (v Verdict) Err() error {
	if v.Primary != Valid {
		return &errcode.E{C: errcode.InvalidClockConfig, Op: "clocks.Validate", Msg: v.reason(), Err: ErrInvalidConfig}
	}
	if v.USB != Valid {
		return &errcode.E{C: errcode.USBClockMismatch, Op: "clocks.Validate", Err: ErrUSBClock}
	}
	return nil
}

func (v Verdict) reason() string {
	switch {
	case v.MulOutOfRange:
		return "pll multiplier outside 7..86"
	case v.SysclkOver:
		return "sysclk"
	case v.HCLKOver:
		return "hclk"
	case v.PCLK1Over:
		return "pclk1"
	case v.PCLK2Over:
		return "pclk2"
	}
	return ""
}

// Validate checks derived speeds and PLL multipliers against the hardware
// limits. Every rule is evaluated; none short-circuits another.
func Validate(sp Speeds, vcoMul, sai1Mul, sai2Mul uint8) Verdict {
	var v Verdict

	v.MulOutOfRange = !mulInRange(vcoMul) || !mulInRange(sai1Mul) || !mulInRange(sai2Mul)
	v.SysclkOver = !busInRange(sp.Sysclk)
	v.HCLKOver = !busInRange(sp.HCLK)
	v.PCLK1Over = !busInRange(sp.PCLK1)
	v.PCLK2Over = !busInRange(sp.PCLK2)

	if v.MulOutOfRange || v.SysclkOver || v.HCLKOver || v.PCLK1Over || v.PCLK2Over {
		v.Primary = NotValid
	}
	// Compared in whole MHz.
	if !mathx.HalfOpen(sp.USB, USBMHz, USBMHz+1) {
		v.USB = NotValid
	}
	return v
}

// Validate derives c's speeds and checks them.
func (c Config) Validate() Verdict {
	return Validate(c.Speeds(), c.PllVcoMul, c.PllSai1Mul, c.PllSai2Mul)
}

// ValidateUSB is shorthand for the USB half of Validate.
func (c Config) ValidateUSB() Validation { return c.Validate().USB }

func mulInRange(m uint8) bool { return mathx.Between(m, MinPllMul, MaxPllMul) }

func busInRange(mhz float32) bool { return mathx.AboveUpTo(mhz, 0, MaxBusMHz) }
