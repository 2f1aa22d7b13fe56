//go:build stm32l4

package main

import (
	"runtime/volatile"
	"time"
	"unsafe"

	"l4hal-go/drivers/rcc"
	"l4hal-go/drivers/rtcwut"
	"l4hal-go/rtc"
	"l4hal-go/x/poll"
)

const (
	rccAPB1ENR1 = rcc.BaseRCC + 0x58
	rccBDCR     = rcc.BaseRCC + 0x90
	rccCSR      = rcc.BaseRCC + 0x94
	pwrCR1      = 0x4000_7000

	apb1enr1PWREN = 1 << 28
	pwrDBP        = 1 << 8
	csrLSION      = 1 << 0
	csrLSIRDY     = 1 << 1
	bdcrRTCSELP   = 8
	bdcrRTCSELM   = 0x3 << bdcrRTCSELP
	bdcrRTCEN     = 1 << 15
)

func reg(addr uintptr) *volatile.Register32 {
	return (*volatile.Register32)(unsafe.Pointer(addr))
}

// enableRTCClock runs the RTC from LSI. The backup domain has to be unlocked
// through PWR first.
func enableRTCClock() {
	reg(rccAPB1ENR1).SetBits(apb1enr1PWREN)
	reg(pwrCR1).SetBits(pwrDBP)
	reg(rccCSR).SetBits(csrLSION)
	poll.Forever.Wait(func() bool { return reg(rccCSR).HasBits(csrLSIRDY) })
	bdcr := reg(rccBDCR)
	bdcr.Set(bdcr.Get()&^bdcrRTCSELM | uint32(rtc.LSI)<<bdcrRTCSELP | bdcrRTCEN)
}

func main() {
	time.Sleep(2 * time.Second)
	enableRTCClock()

	wut, err := bringUp(board{
		rcc:    rcc.MMIO(),
		rtc:    rtcwut.MMIO(),
		rtcSrc: rtc.LSI,
		wait:   poll.Forever,
	})
	if err != nil {
		for {
			time.Sleep(time.Second)
		}
	}
	for n := 0; ; {
		if wut.Pending() {
			wut.ClearPending()
			n++
			println("[rtc] wakeup", n)
		}
		time.Sleep(100 * time.Millisecond)
	}
}
