// Package rcc provides a minimal register adapter for the STM32L4 reset and
// clock control block.
//
// Design notes (RM0351 references):
// • PLLCFGR/PLLSAIxCFGR fields are only writable while the PLL is off and PLLRDY has cleared; the clocks sequencer enforces this, not the adapter.
// • Output taps (P/Q/R enable bits) must be set after the PLL has locked.
// • CFGR carries SW and all bus prescalers; SetBusClocks writes them in one store.
// • Field values arrive already encoded; callers own the enum → bits mapping.
package rcc

// Regs is the set of registers the adapter owns. It is granted once at start-up
// and handed to New; nothing else should write these registers afterwards.
type Regs struct {
	CR          Register
	CFGR        Register
	PLLCFGR     Register
	PLLSAI1CFGR Register
	PLLSAI2CFGR Register
	CCIPR       Register
	CRRCR       Register
	FlashACR    Register
}

type Device struct {
	r Regs
}

func New(r Regs) *Device {
	return &Device{r: r}
}

// PLLFields are the encoded main PLL configuration fields.
type PLLFields struct {
	Src uint8 // PLLSRC[1:0]
	M   uint8 // PLLM[2:0], divider minus one
	N   uint8 // PLLN[6:0], VCO multiplier
	R   uint8 // PLLR[1:0]
}

// BusFields are the encoded CFGR fields written together at switchover.
type BusFields struct {
	SW    uint8 // system clock switch
	HPRE  uint8 // AHB prescaler
	PPRE1 uint8 // APB1 prescaler
	PPRE2 uint8 // APB2 prescaler
}

// ---------------- Flash ----------------

func (d *Device) SetFlashLatency(waitStates uint8) {
	replaceField(d.r.FlashACR, uint32(waitStates), acrLATENCYM, acrLATENCYP)
}

func (d *Device) FlashLatency() uint8 {
	return uint8(field(d.r.FlashACR, acrLATENCYM, acrLATENCYP))
}

// ---------------- Oscillators (RCC_CR) ----------------

// EnableMSI selects the MSI range from CR (MSIRGSEL) and turns the MSI on.
func (d *Device) EnableMSI(rangeBits uint8) {
	set := (uint32(rangeBits)<<crMSIRANGEP)&crMSIRANGEM | crMSIRGSEL | crMSION
	modify(d.r.CR, set, crMSIRANGEM)
}

func (d *Device) EnableHSI() { modify(d.r.CR, crHSION, 0) }
func (d *Device) EnableHSE() { modify(d.r.CR, crHSEON, 0) }

func (d *Device) SetHSEBypass(on bool) { d.setCR(crHSEBYP, on) }

// SetSecuritySystem controls the clock security system (CSSON).
func (d *Device) SetSecuritySystem(on bool) { d.setCR(crCSSON, on) }

func (d *Device) DisablePLL()     { modify(d.r.CR, 0, crPLLON) }
func (d *Device) EnablePLL()      { modify(d.r.CR, crPLLON, 0) }
func (d *Device) EnablePLLSAI1()  { modify(d.r.CR, crPLLSAI1ON, 0) }
func (d *Device) EnablePLLSAI2()  { modify(d.r.CR, crPLLSAI2ON, 0) }
func (d *Device) MSIReady() bool  { return hasBits(d.r.CR, crMSIRDY) }
func (d *Device) HSIReady() bool  { return hasBits(d.r.CR, crHSIRDY) }
func (d *Device) HSEReady() bool  { return hasBits(d.r.CR, crHSERDY) }
func (d *Device) PLLReady() bool  { return hasBits(d.r.CR, crPLLRDY) }
func (d *Device) SAI1Ready() bool { return hasBits(d.r.CR, crPLLSAI1RDY) }
func (d *Device) SAI2Ready() bool { return hasBits(d.r.CR, crPLLSAI2RDY) }

// PLLStopped reports PLLRDY clear, the precondition for PLLCFGR writes.
func (d *Device) PLLStopped() bool { return !d.PLLReady() }

func (d *Device) setCR(bit uint32, on bool) {
	if on {
		modify(d.r.CR, bit, 0)
		return
	}
	modify(d.r.CR, 0, bit)
}

// ---------------- PLLs ----------------

// ConfigurePLL writes source, M, N and R in one store. Output enables are left
// untouched.
func (d *Device) ConfigurePLL(f PLLFields) {
	set := uint32(f.Src)<<pllSRCP&pllSRCM |
		uint32(f.M)<<pllMP&pllMM |
		uint32(f.N)<<pllNP&pllNM |
		uint32(f.R)<<pllRP&pllRM
	modify(d.r.PLLCFGR, set, pllSRCM|pllMM|pllNM|pllRM)
}

// EnablePLLOutputs sets PLLPEN, PLLQEN and PLLREN.
func (d *Device) EnablePLLOutputs() { modify(d.r.PLLCFGR, pllAllEN, 0) }

func (d *Device) SetPLLSAI1N(n uint8) { replaceField(d.r.PLLSAI1CFGR, uint32(n), saiNM, saiNP) }
func (d *Device) SetPLLSAI2N(n uint8) { replaceField(d.r.PLLSAI2CFGR, uint32(n), saiNM, saiNP) }

func (d *Device) EnablePLLSAI1Outputs() { modify(d.r.PLLSAI1CFGR, saiPEN|saiQEN|saiREN, 0) }

// EnablePLLSAI2Outputs sets P and R; PLLSAI2 has no Q tap.
func (d *Device) EnablePLLSAI2Outputs() { modify(d.r.PLLSAI2CFGR, saiPEN|saiREN, 0) }

// ---------------- Bus clocks (RCC_CFGR) ----------------

func (d *Device) SetBusClocks(f BusFields) {
	set := uint32(f.SW)<<cfgrSWP&cfgrSWM |
		uint32(f.HPRE)<<cfgrHPREP&cfgrHPREM |
		uint32(f.PPRE1)<<cfgrPPRE1P&cfgrPPRE1M |
		uint32(f.PPRE2)<<cfgrPPRE2P&cfgrPPRE2M
	modify(d.r.CFGR, set, cfgrSWM|cfgrHPREM|cfgrPPRE1M|cfgrPPRE2M)
}

// SetSysClkSwitch rewrites only SW, leaving the prescalers as programmed.
func (d *Device) SetSysClkSwitch(sw uint8) {
	replaceField(d.r.CFGR, uint32(sw), cfgrSWM, cfgrSWP)
}

// SysClkStatus returns SWS, the source the hardware actually switched to.
func (d *Device) SysClkStatus() uint8 {
	return uint8(field(d.r.CFGR, cfgrSWSM, cfgrSWSP))
}

// ---------------- 48 MHz domain ----------------

func (d *Device) SetClk48Source(bits uint8) {
	replaceField(d.r.CCIPR, uint32(bits), ccipr48SELM, ccipr48SELP)
}

func (d *Device) EnableHSI48()     { modify(d.r.CRRCR, crrcrHSI48ON, 0) }
func (d *Device) HSI48Ready() bool { return hasBits(d.r.CRRCR, crrcrHSI48RDY) }
