// Package clocks configures the STM32L4 clock tree by choosing scalers first and
// deriving the resulting frequencies, rather than solving for scalers that hit
// requested frequencies.
//
// Design notes (RM0351 section 6, figure 15):
// • Every derived speed is a pure function of Config, recomputed on each call.
// • Validation runs before any register write; a rejected Config leaves the hardware untouched.
// • Ready-flag waits go through poll.Waiter. The default waits forever.
// • SysTick is always treated as HCLK/1; the /8 option is not modelled.
package clocks

import "l4hal-go/errcode"

// Config is the full clock-tree selection. It is a value; the package never
// modifies one it is given.
type Config struct {
	InputSrc      InputSrc
	Pllm          Pllm
	PllVcoMul     uint8 // PLLN, 7..86
	PllSai1Mul    uint8 // PLLSAI1N, 7..86
	PllSai2Mul    uint8 // PLLSAI2N, 7..86
	Pllr          Pllr
	HclkPrescaler HclkPrescaler
	Apb1Prescaler ApbPrescaler
	Apb2Prescaler ApbPrescaler
	Clk48Src      Clk48Src
	Sai1Enabled   bool
	Sai2Enabled   bool
	// HseBypass uses an external clock on OSC_IN instead of a crystal.
	HseBypass      bool
	SecuritySystem bool
}

// Default runs SYSCLK at 80 MHz from the PLL fed by an 8 MHz HSE. All bus
// clocks are 80 MHz and HSE is not bypassed.
func Default() Config {
	return Config{
		InputSrc:      PLL(PllHSE(8)),
		Pllm:          PllmDiv1,
		PllVcoMul:     20,
		PllSai1Mul:    8,
		PllSai2Mul:    8,
		Pllr:          PllrDiv2,
		HclkPrescaler: HclkDiv1,
		Apb1Prescaler: ApbDiv1,
		Apb2Prescaler: ApbDiv1,
		Clk48Src:      Clk48PllSai1,
	}
}

// HSIPreset runs SYSCLK at 80 MHz from the PLL fed by HSI16.
func HSIPreset() Config {
	c := Default()
	c.InputSrc = PLL(PllHSI)
	c.Pllm = PllmDiv2
	return c
}

// Preset returns a named configuration: "default" or "hsi".
func Preset(name string) (Config, error) {
	switch name {
	case "", "default":
		return Default(), nil
	case "hsi":
		return HSIPreset(), nil
	}
	return Config{}, &errcode.E{C: errcode.UnknownPreset, Op: "clocks.Preset", Msg: name}
}

// PresetNames lists the names Preset accepts.
func PresetNames() []string { return []string{"default", "hsi"} }
