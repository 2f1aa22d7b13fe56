package clocks

import (
	"errors"
	"testing"

	"l4hal-go/errcode"
)

func TestMultiplierBoundaries(t *testing.T) {
	fields := []struct {
		name string
		set  func(*Config, uint8)
	}{
		{"vco", func(c *Config, m uint8) { c.PllVcoMul = m }},
		{"sai1", func(c *Config, m uint8) { c.PllSai1Mul = m }},
		{"sai2", func(c *Config, m uint8) { c.PllSai2Mul = m }},
	}
	cases := []struct {
		mul  uint8
		want Validation
	}{
		{6, NotValid}, {7, Valid}, {86, Valid}, {87, NotValid},
	}
	for _, f := range fields {
		for _, c := range cases {
			cfg := Default()
			// Keep sysclk inside the ceiling whatever the VCO multiplier.
			cfg.Pllm = PllmDiv8
			cfg.Pllr = PllrDiv2
			f.set(&cfg, c.mul)
			v := cfg.Validate()
			if v.Primary != c.want {
				t.Errorf("%s=%d: primary %v want %v", f.name, c.mul, v.Primary, c.want)
			}
			if (c.want == NotValid) != v.MulOutOfRange {
				t.Errorf("%s=%d: MulOutOfRange=%v", f.name, c.mul, v.MulOutOfRange)
			}
		}
	}
}

func TestCeiling(t *testing.T) {
	c := Default()
	c.PllVcoMul = 24 // 96 MHz
	v := c.Validate()
	if v.Primary != NotValid || !v.SysclkOver || !v.HCLKOver || !v.PCLK1Over || !v.PCLK2Over {
		t.Fatalf("96 MHz everywhere should fail every ceiling: %+v", v)
	}

	// Dividing the buses does not rescue an over-limit SYSCLK.
	c.HclkPrescaler = HclkDiv2
	v = c.Validate()
	if v.Primary != NotValid || !v.SysclkOver || v.HCLKOver {
		t.Fatalf("got %+v", v)
	}
}

func TestAllRulesEvaluated(t *testing.T) {
	c := Default()
	c.PllVcoMul = 90 // out of range and 90 MHz
	c.PllSai1Mul = 12
	v := c.Validate()
	if !v.MulOutOfRange || !v.SysclkOver {
		t.Fatalf("rules short-circuited: %+v", v)
	}
	if v.USB != Valid {
		t.Fatal("usb verdict must be independent of primary")
	}
}

func TestUSBIndependentOfPrimary(t *testing.T) {
	c := Default() // SAI1 N=8 -> 32 MHz
	v := c.Validate()
	if v.Primary != Valid || v.USB != NotValid {
		t.Fatalf("got %+v", v)
	}
	if c.ValidateUSB() != NotValid {
		t.Fatal("ValidateUSB disagrees")
	}
	err := v.Err()
	if !errors.Is(err, ErrUSBClock) || errcode.Of(err) != errcode.USBClockMismatch {
		t.Fatalf("err = %v", err)
	}

	c.PllSai1Mul = 12
	if v := c.Validate(); v.USB != Valid || v.Err() != nil {
		t.Fatalf("48 MHz should pass: %+v", v)
	}
}

func TestUSBTruncatesToWholeMHz(t *testing.T) {
	sp := Speeds{Sysclk: 80, HCLK: 80, PCLK1: 80, PCLK2: 80, USB: 48.9}
	if Validate(sp, 20, 12, 8).USB != Valid {
		t.Fatal("48.9 truncates to 48")
	}
	sp.USB = 47.99
	if Validate(sp, 20, 12, 8).USB != NotValid {
		t.Fatal("47.99 truncates to 47")
	}
}

func TestPrimaryErr(t *testing.T) {
	c := Default()
	c.PllVcoMul = 6
	err := c.Validate().Err()
	if !errors.Is(err, ErrInvalidConfig) || errcode.Of(err) != errcode.InvalidClockConfig {
		t.Fatalf("err = %v", err)
	}
}

func TestPresets(t *testing.T) {
	for _, name := range PresetNames() {
		c, err := Preset(name)
		if err != nil {
			t.Fatal(err)
		}
		if sp := c.Speeds(); sp.Sysclk != 80 {
			t.Errorf("%s: sysclk %v", name, sp.Sysclk)
		}
		if !c.Validate().OK() {
			t.Errorf("%s: preset invalid", name)
		}
	}
	if _, err := Preset("turbo"); errcode.Of(err) != errcode.UnknownPreset {
		t.Fatalf("err = %v", err)
	}
}
