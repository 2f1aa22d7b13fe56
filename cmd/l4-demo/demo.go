// Command l4-demo brings an STM32L4 up to a preset clock configuration and
// arms a periodic RTC wakeup.
//
// Build/flash (TinyGo):
//
//	tinygo flash -target nucleo-l476rg ./cmd/l4-demo
//
// On the host the same sequence runs against simulated registers.
package main

import (
	"l4hal-go/clocks"
	"l4hal-go/drivers/rcc"
	"l4hal-go/drivers/rtcwut"
	"l4hal-go/errcode"
	"l4hal-go/rtc"
	"l4hal-go/x/conv"
	"l4hal-go/x/poll"
)

const (
	presetName    = "default"
	wakeupSeconds = 5
)

type board struct {
	rcc    rcc.Regs
	rtc    rtcwut.Regs
	rtcSrc rtc.ClockSource
	wait   poll.Waiter
}

// bringUp applies the preset and arms the wakeup timer. It returns the wakeup
// device so the caller can service the flag.
func bringUp(b board) (*rtcwut.Device, error) {
	cfg, err := clocks.Preset(presetName)
	if err != nil {
		return nil, err
	}
	if v := cfg.Validate(); v.USB != clocks.Valid {
		println("[clocks] usb clock not 48 MHz, usb disabled")
	}

	seq := clocks.NewSequencer(rcc.New(b.rcc), clocks.WithWaiter(b.wait), clocks.WithTrace(func(s clocks.Step) {
		if s.Name == "" {
			println("[clocks]", s.State.String())
		}
	}))
	if err := seq.Setup(cfg); err != nil {
		println("[clocks] setup failed:", string(errcode.Of(err)), err.Error())
		return nil, err
	}
	sp := cfg.Speeds()
	println("[clocks] sysclk MHz:", int(sp.Sysclk), "hclk:", int(sp.HCLK), "pclk1:", int(sp.PCLK1), "pclk2:", int(sp.PCLK2))
	dumpRCC(b.rcc)

	enc, err := rtc.Encode(wakeupSeconds, b.rtcSrc)
	if err != nil {
		return nil, err
	}
	wut := rtcwut.New(b.rtc, b.wait)
	if err := wut.SetWakeup(enc); err != nil {
		println("[rtc] wakeup setup failed:", err.Error())
		return nil, err
	}
	var bits [3]byte
	println("[rtc] wakeup every", wakeupSeconds, "s, WUCKSEL", string(conv.Bin(bits[:], uint32(enc.Clock.Bits()), 3)), "WUT", enc.Reload)
	return wut, nil
}

func dumpRCC(r rcc.Regs) {
	println("[rcc]", conv.Field("CR", r.CR.Get()), conv.Field("CFGR", r.CFGR.Get()), conv.Field("PLLCFGR", r.PLLCFGR.Get()))
	println("[rcc]", conv.Field("CCIPR", r.CCIPR.Get()), conv.Field("ACR", r.FlashACR.Get()))
}
