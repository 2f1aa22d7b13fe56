//go:build !stm32l4

package main

import (
	"os"

	"l4hal-go/drivers/rcc/rcctest"
	"l4hal-go/drivers/rtcwut"
	"l4hal-go/rtc"
	"l4hal-go/x/poll"
)

// memReg is plain memory standing in for a register.
type memReg struct{ v uint32 }

func (r *memReg) Get() uint32  { return r.v }
func (r *memReg) Set(v uint32) { r.v = v }

// isrReg reports WUTWF whenever the timer is disabled, as the RTC does once
// the APB and RTC clock domains have synchronised.
type isrReg struct {
	memReg
	cr *memReg
}

func (r *isrReg) Get() uint32 {
	const wutwf, wute = 1 << 2, 1 << 10
	if r.cr.v&wute == 0 {
		return r.v | wutwf
	}
	return r.v &^ wutwf
}

func simulatedRTC() rtcwut.Regs {
	cr := &memReg{}
	return rtcwut.Regs{CR: cr, ISR: &isrReg{cr: cr}, WUTR: &memReg{}, WPR: &memReg{}}
}

func main() {
	f := rcctest.New()
	_, err := bringUp(board{
		rcc:    f.Regs(),
		rtc:    simulatedRTC(),
		rtcSrc: rtc.LSI,
		wait:   poll.Bounded(64),
	})
	for _, v := range f.Violations {
		println("[clocks] violation:", v)
	}
	if err != nil || len(f.Violations) != 0 {
		os.Exit(1)
	}
	println("[clocks] simulated:", f.Writes(), "register writes")
}
