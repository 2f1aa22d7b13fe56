package clocks

// MsiRange selects one of the twelve MSI frequencies. The value is the
// MSIRANGE field encoding.
type MsiRange uint8

const (
	MsiRange0  MsiRange = iota // 100 kHz
	MsiRange1                  // 200 kHz
	MsiRange2                  // 400 kHz
	MsiRange3                  // 800 kHz
	MsiRange4                  // 1 MHz
	MsiRange5                  // 2 MHz
	MsiRange6                  // 4 MHz
	MsiRange7                  // 8 MHz
	MsiRange8                  // 16 MHz
	MsiRange9                  // 24 MHz
	MsiRange10                 // 32 MHz
	MsiRange11                 // 48 MHz
)

// Hz is the nominal MSI frequency. Out-of-range values read as 0.
func (r MsiRange) Hz() uint32 {
	switch r {
	case MsiRange0:
		return 100_000
	case MsiRange1:
		return 200_000
	case MsiRange2:
		return 400_000
	case MsiRange3:
		return 800_000
	case MsiRange4:
		return 1_000_000
	case MsiRange5:
		return 2_000_000
	case MsiRange6:
		return 4_000_000
	case MsiRange7:
		return 8_000_000
	case MsiRange8:
		return 16_000_000
	case MsiRange9:
		return 24_000_000
	case MsiRange10:
		return 32_000_000
	case MsiRange11:
		return 48_000_000
	}
	return 0
}

func (r MsiRange) MHz() float32 { return float32(r.Hz()) / 1_000_000 }

func (r MsiRange) Bits() uint8 { return uint8(r) & 0xF }

// HSIFreqMHz is the fixed HSI16 frequency.
const HSIFreqMHz = 16

// ---------------- PLL source ----------------

type PllKind uint8

const (
	PllKindNone PllKind = iota
	PllKindMSI
	PllKindHSI
	PllKindHSE
)

// PllSrc is the oscillator feeding the PLLs. It cannot name a PLL, so a PLL is
// never fed by another PLL.
type PllSrc struct {
	kind PllKind
	msi  MsiRange
	hse  uint8 // MHz
}

var (
	PllNone = PllSrc{kind: PllKindNone}
	PllHSI  = PllSrc{kind: PllKindHSI}
)

func PllMSI(r MsiRange) PllSrc { return PllSrc{kind: PllKindMSI, msi: r} }

// PllHSE takes the crystal/oscillator frequency in MHz.
func PllHSE(mhz uint8) PllSrc { return PllSrc{kind: PllKindHSE, hse: mhz} }

func (p PllSrc) Kind() PllKind { return p.kind }

// Bits is the PLLSRC field encoding.
func (p PllSrc) Bits() uint8 {
	switch p.kind {
	case PllKindMSI:
		return 0b01
	case PllKindHSI:
		return 0b10
	case PllKindHSE:
		return 0b11
	}
	return 0b00
}

// MHz is the PLL input frequency before the M divider. None yields 0.
func (p PllSrc) MHz() float32 {
	switch p.kind {
	case PllKindMSI:
		return p.msi.MHz()
	case PllKindHSI:
		return HSIFreqMHz
	case PllKindHSE:
		return float32(p.hse)
	}
	return 0
}

func (p PllSrc) String() string {
	switch p.kind {
	case PllKindMSI:
		return "msi"
	case PllKindHSI:
		return "hsi"
	case PllKindHSE:
		return "hse"
	}
	return "none"
}

// ---------------- System clock source ----------------

type InputKind uint8

const (
	KindMSI InputKind = iota
	KindHSI
	KindHSE
	KindPLL
)

// InputSrc selects SYSCLK: an oscillator directly, or the main PLL.
type InputSrc struct {
	kind InputKind
	msi  MsiRange
	hse  uint8
	pll  PllSrc
}

func MSI(r MsiRange) InputSrc { return InputSrc{kind: KindMSI, msi: r} }
func HSI() InputSrc           { return InputSrc{kind: KindHSI} }
func HSE(mhz uint8) InputSrc  { return InputSrc{kind: KindHSE, hse: mhz} }
func PLL(src PllSrc) InputSrc { return InputSrc{kind: KindPLL, pll: src} }

func (s InputSrc) Kind() InputKind { return s.kind }

// PLLSource returns the PLL input when SYSCLK comes from the PLL.
func (s InputSrc) PLLSource() (PllSrc, bool) { return s.pll, s.kind == KindPLL }

// MSIRange returns the MSI range used by this source, directly or via the PLL.
func (s InputSrc) MSIRange() (MsiRange, bool) {
	switch {
	case s.kind == KindMSI:
		return s.msi, true
	case s.kind == KindPLL && s.pll.kind == PllKindMSI:
		return s.pll.msi, true
	}
	return 0, false
}

// Bits is the CFGR SW field encoding.
func (s InputSrc) Bits() uint8 {
	switch s.kind {
	case KindHSI:
		return 0b01
	case KindHSE:
		return 0b10
	case KindPLL:
		return 0b11
	}
	return 0b00
}

// inputMHz is the oscillator frequency at the root of the tree: the SYSCLK
// source itself, or the PLL's input.
func (s InputSrc) inputMHz() float32 {
	switch s.kind {
	case KindMSI:
		return s.msi.MHz()
	case KindHSI:
		return HSIFreqMHz
	case KindHSE:
		return float32(s.hse)
	case KindPLL:
		return s.pll.MHz()
	}
	return 0
}

func (s InputSrc) String() string {
	switch s.kind {
	case KindMSI:
		return "msi"
	case KindHSI:
		return "hsi"
	case KindHSE:
		return "hse"
	case KindPLL:
		return "pll(" + s.pll.String() + ")"
	}
	return "unknown"
}
