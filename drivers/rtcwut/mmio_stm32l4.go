//go:build stm32l4

package rtcwut

import (
	"runtime/volatile"
	"unsafe"
)

func reg(addr uintptr) *volatile.Register32 {
	return (*volatile.Register32)(unsafe.Pointer(addr))
}

// MMIO returns the live RTC wakeup-timer registers.
func MMIO() Regs {
	return Regs{
		CR:   reg(BaseRTC + offCR),
		ISR:  reg(BaseRTC + offISR),
		WUTR: reg(BaseRTC + offWUTR),
		WPR:  reg(BaseRTC + offWPR),
	}
}
