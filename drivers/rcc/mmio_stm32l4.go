//go:build stm32l4

package rcc

import (
	"runtime/volatile"
	"unsafe"
)

func reg(addr uintptr) *volatile.Register32 {
	return (*volatile.Register32)(unsafe.Pointer(addr))
}

// MMIO returns the live RCC and FLASH_ACR registers.
func MMIO() Regs {
	return Regs{
		CR:          reg(BaseRCC + offCR),
		CFGR:        reg(BaseRCC + offCFGR),
		PLLCFGR:     reg(BaseRCC + offPLLCFGR),
		PLLSAI1CFGR: reg(BaseRCC + offPLLSAI1CFGR),
		PLLSAI2CFGR: reg(BaseRCC + offPLLSAI2CFGR),
		CCIPR:       reg(BaseRCC + offCCIPR),
		CRRCR:       reg(BaseRCC + offCRRCR),
		FlashACR:    reg(BaseFLASH + offACR),
	}
}
