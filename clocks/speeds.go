package clocks

// Speeds are the derived clock frequencies, all in MHz.
type Speeds struct {
	Sysclk  float32
	HCLK    float32 // AHB bus, core, memory and DMA
	Systick float32 // Cortex system timer
	FCLK    float32 // Cortex free-running clock
	PCLK1   float32 // APB1 peripherals
	Timer1  float32 // APB1 timers
	PCLK2   float32 // APB2 peripherals
	Timer2  float32 // APB2 timers
	USB     float32 // 48 MHz domain via PLLSAI1
}

// Speeds derives the bus and peripheral frequencies for c. It never fails;
// out-of-range multipliers are reported by Validate.
func (c Config) Speeds() Speeds {
	input, sysclk := c.sysclock()

	hclk := sysclk / float32(c.HclkPrescaler.Value())
	pclk1 := hclk / float32(c.Apb1Prescaler.Value())
	pclk2 := hclk / float32(c.Apb2Prescaler.Value())

	return Speeds{
		Sysclk:  sysclk,
		HCLK:    hclk,
		Systick: hclk,
		FCLK:    hclk,
		PCLK1:   pclk1,
		Timer1:  timerClock(pclk1, c.Apb1Prescaler),
		PCLK2:   pclk2,
		Timer2:  timerClock(pclk2, c.Apb2Prescaler),
		// The PLLSAI1 Q divider is fixed at /2 here.
		USB: input / float32(c.Pllm.Value()) * float32(c.PllSai1Mul) / 2,
	}
}

// InputMHz is the frequency of the root oscillator.
func (c Config) InputMHz() float32 { return c.InputSrc.inputMHz() }

// sysclock returns the root oscillator frequency and SYSCLK.
func (c Config) sysclock() (input, sysclk float32) {
	input = c.InputSrc.inputMHz()
	if c.InputSrc.kind != KindPLL {
		return input, input
	}
	sysclk = input / float32(c.Pllm.Value()) * float32(c.PllVcoMul) / float32(c.Pllr.Value())
	return input, sysclk
}

// timerClock applies the APB timer rule: timers run at twice PCLK whenever the
// bus is divided.
func timerClock(pclk float32, p ApbPrescaler) float32 {
	if p.Value() == 1 {
		return pclk
	}
	return pclk * 2
}

// FlashLatency is the number of flash wait states needed at hclk MHz in range 1
// (RM0351 section 3.3.3).
func FlashLatency(hclk float32) uint8 {
	switch {
	case hclk <= 16:
		return 0
	case hclk <= 32:
		return 1
	case hclk <= 48:
		return 2
	case hclk <= 64:
		return 3
	}
	return 4
}
