// Package rcctest provides a register-level fake of the RCC block for host
// tests. Ready flags follow their enable bits unless the oscillator is marked
// dead, and writes that real hardware would drop are recorded as violations.
package rcctest

import "l4hal-go/drivers/rcc"

// Bit positions mirrored from RM0351; the fake needs them to emulate ready flags.
const (
	crMSION      = 1 << 0
	crMSIRDY     = 1 << 1
	crHSION      = 1 << 8
	crHSIRDY     = 1 << 10
	crHSEON      = 1 << 16
	crHSERDY     = 1 << 17
	crPLLON      = 1 << 24
	crPLLRDY     = 1 << 25
	crPLLSAI1ON  = 1 << 26
	crPLLSAI1RDY = 1 << 27
	crPLLSAI2ON  = 1 << 28
	crPLLSAI2RDY = 1 << 29
	crReadyMask  = crMSIRDY | crHSIRDY | crHSERDY | crPLLRDY | crPLLSAI1RDY | crPLLSAI2RDY

	pllCfgMask = 0x3 | 0x7<<4 | 0x7F<<8 | 0x3<<25
	pllTaps    = 1<<16 | 1<<20 | 1<<24
	saiNMask   = 0x7F << 8

	cfgrSWM  = 0x3
	cfgrSWSM = 0x3 << 2

	hsi48ON  = 1 << 0
	hsi48RDY = 1 << 1
)

// Write is one register store, in program order.
type Write struct {
	Reg   string
	Value uint32
}

// Reg is a fake 32-bit register.
type Reg struct {
	name  string
	v     uint32
	f     *Fake
	onSet func(old, v uint32) uint32
}

func (r *Reg) Get() uint32 { return r.v }

func (r *Reg) Set(v uint32) {
	if r.onSet != nil {
		v = r.onSet(r.v, v)
	}
	r.v = v
	r.f.Log = append(r.f.Log, Write{Reg: r.name, Value: v})
}

// Fake is an RCC + FLASH_ACR register file.
type Fake struct {
	CR, CFGR, PLLCFGR, PLLSAI1CFGR, PLLSAI2CFGR, CCIPR, CRRCR, ACR *Reg

	// Dead oscillators never report ready.
	DeadMSI, DeadHSI, DeadHSE, DeadPLL, DeadSAI1, DeadSAI2, DeadHSI48 bool

	Log        []Write
	Violations []string
}

func New() *Fake {
	f := &Fake{}
	mk := func(name string) *Reg { return &Reg{name: name, f: f} }
	f.CR = mk("CR")
	f.CFGR = mk("CFGR")
	f.PLLCFGR = mk("PLLCFGR")
	f.PLLSAI1CFGR = mk("PLLSAI1CFGR")
	f.PLLSAI2CFGR = mk("PLLSAI2CFGR")
	f.CCIPR = mk("CCIPR")
	f.CRRCR = mk("CRRCR")
	f.ACR = mk("FLASH_ACR")

	f.CR.onSet = f.crSet
	f.CFGR.onSet = func(_, v uint32) uint32 {
		return v&^cfgrSWSM | (v&cfgrSWM)<<2
	}
	f.PLLCFGR.onSet = f.pllSet
	f.PLLSAI1CFGR.onSet = f.saiSet("PLLSAI1", crPLLSAI1RDY)
	f.PLLSAI2CFGR.onSet = f.saiSet("PLLSAI2", crPLLSAI2RDY)
	f.CRRCR.onSet = func(_, v uint32) uint32 {
		v &^= hsi48RDY
		if v&hsi48ON != 0 && !f.DeadHSI48 {
			v |= hsi48RDY
		}
		return v
	}
	return f
}

// Regs hands the fake to rcc.New.
func (f *Fake) Regs() rcc.Regs {
	return rcc.Regs{
		CR:          f.CR,
		CFGR:        f.CFGR,
		PLLCFGR:     f.PLLCFGR,
		PLLSAI1CFGR: f.PLLSAI1CFGR,
		PLLSAI2CFGR: f.PLLSAI2CFGR,
		CCIPR:       f.CCIPR,
		CRRCR:       f.CRRCR,
		FlashACR:    f.ACR,
	}
}

// Writes is the number of register stores seen so far.
func (f *Fake) Writes() int { return len(f.Log) }

// Reset clears the write log and violations, keeping register contents.
func (f *Fake) Reset() {
	f.Log = nil
	f.Violations = nil
}

func (f *Fake) crSet(_, v uint32) uint32 {
	v &^= crReadyMask
	follow := func(on, rdy uint32, dead bool) {
		if v&on != 0 && !dead {
			v |= rdy
		}
	}
	follow(crMSION, crMSIRDY, f.DeadMSI)
	follow(crHSION, crHSIRDY, f.DeadHSI)
	follow(crHSEON, crHSERDY, f.DeadHSE)
	follow(crPLLON, crPLLRDY, f.DeadPLL)
	follow(crPLLSAI1ON, crPLLSAI1RDY, f.DeadSAI1)
	follow(crPLLSAI2ON, crPLLSAI2RDY, f.DeadSAI2)
	return v
}

// pllSet drops configuration changes made while the PLL runs, as the hardware
// does, and flags taps enabled before lock.
func (f *Fake) pllSet(old, v uint32) uint32 {
	locked := f.CR.v&crPLLRDY != 0
	if locked && (old^v)&pllCfgMask != 0 {
		f.Violations = append(f.Violations, "PLLCFGR written while PLL running")
		v = v&^pllCfgMask | old&pllCfgMask
	}
	if !locked && (v&^old)&pllTaps != 0 {
		f.Violations = append(f.Violations, "PLL outputs enabled before lock")
	}
	return v
}

func (f *Fake) saiSet(name string, rdy uint32) func(old, v uint32) uint32 {
	return func(old, v uint32) uint32 {
		if f.CR.v&rdy != 0 && (old^v)&saiNMask != 0 {
			f.Violations = append(f.Violations, name+"CFGR written while running")
			v = v&^saiNMask | old&saiNMask
		}
		return v
	}
}
