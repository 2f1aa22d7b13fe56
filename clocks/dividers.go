package clocks

// Pllm divides the PLL input (PLLM). The value is the field encoding.
type Pllm uint8

const (
	PllmDiv1 Pllm = iota
	PllmDiv2
	PllmDiv3
	PllmDiv4
	PllmDiv5
	PllmDiv6
	PllmDiv7
	PllmDiv8
)

func (m Pllm) Value() uint8 { return uint8(m&0x7) + 1 }
func (m Pllm) Bits() uint8  { return uint8(m) & 0x7 }

// Pllr divides the VCO output feeding SYSCLK (PLLR).
type Pllr uint8

const (
	PllrDiv2 Pllr = 0b00
	PllrDiv4 Pllr = 0b01
	PllrDiv6 Pllr = 0b10
	PllrDiv8 Pllr = 0b11
)

func (r Pllr) Value() uint8 {
	switch r {
	case PllrDiv4:
		return 4
	case PllrDiv6:
		return 6
	case PllrDiv8:
		return 8
	}
	return 2
}

func (r Pllr) Bits() uint8 { return uint8(r) & 0x3 }

// HclkPrescaler is the AHB prescaler (HPRE). The value is the field encoding.
type HclkPrescaler uint8

const (
	HclkDiv1   HclkPrescaler = 0b0000
	HclkDiv2   HclkPrescaler = 0b1000
	HclkDiv4   HclkPrescaler = 0b1001
	HclkDiv8   HclkPrescaler = 0b1010
	HclkDiv16  HclkPrescaler = 0b1011
	HclkDiv64  HclkPrescaler = 0b1100
	HclkDiv128 HclkPrescaler = 0b1101
	HclkDiv256 HclkPrescaler = 0b1110
	HclkDiv512 HclkPrescaler = 0b1111
)

func (p HclkPrescaler) Value() uint16 {
	switch p {
	case HclkDiv2:
		return 2
	case HclkDiv4:
		return 4
	case HclkDiv8:
		return 8
	case HclkDiv16:
		return 16
	case HclkDiv64:
		return 64
	case HclkDiv128:
		return 128
	case HclkDiv256:
		return 256
	case HclkDiv512:
		return 512
	}
	return 1
}

// Bits folds the reserved 0b0xxx encodings onto Div1, as the hardware does.
func (p HclkPrescaler) Bits() uint8 {
	if p&0b1000 == 0 {
		return 0
	}
	return uint8(p) & 0xF
}

// ApbPrescaler is PPRE1/PPRE2. The value is the field encoding.
type ApbPrescaler uint8

const (
	ApbDiv1  ApbPrescaler = 0b000
	ApbDiv2  ApbPrescaler = 0b100
	ApbDiv4  ApbPrescaler = 0b101
	ApbDiv8  ApbPrescaler = 0b110
	ApbDiv16 ApbPrescaler = 0b111
)

func (p ApbPrescaler) Value() uint8 {
	switch p {
	case ApbDiv2:
		return 2
	case ApbDiv4:
		return 4
	case ApbDiv8:
		return 8
	case ApbDiv16:
		return 16
	}
	return 1
}

func (p ApbPrescaler) Bits() uint8 {
	if p&0b100 == 0 {
		return 0
	}
	return uint8(p) & 0x7
}

// Clk48Src feeds the 48 MHz domain (USB, RNG, SDMMC). CLK48SEL encoding.
type Clk48Src uint8

const (
	Clk48HSI48   Clk48Src = 0b00 // STM32L49x/L4Ax only
	Clk48PllSai1 Clk48Src = 0b01
	Clk48Pll     Clk48Src = 0b10
	Clk48MSI     Clk48Src = 0b11
)

func (c Clk48Src) Bits() uint8 { return uint8(c) & 0x3 }

func (c Clk48Src) String() string {
	switch c {
	case Clk48HSI48:
		return "hsi48"
	case Clk48PllSai1:
		return "pllsai1"
	case Clk48Pll:
		return "pll"
	}
	return "msi"
}
