// Package rtcwut programs the RTC wakeup timer from an rtc.Encoding.
//
// Every entry point brackets its writes with the WPR unlock/relock keys. The
// reload value and WUCKSEL may only change while WUTE is clear and WUTWF is
// set; SetWakeup and SetInterval wait for that through a poll.Waiter.
package rtcwut

import (
	"l4hal-go/errcode"
	"l4hal-go/rtc"
	"l4hal-go/x/poll"
)

type Regs struct {
	CR   Register
	ISR  Register
	WUTR Register
	WPR  Register
}

type Device struct {
	r    Regs
	wait poll.Waiter
}

// New returns a device that waits on WUTWF with w; nil means poll.Forever.
func New(r Regs, w poll.Waiter) *Device {
	if w == nil {
		w = poll.Forever
	}
	return &Device{r: r, wait: w}
}

// SetWakeup programs a periodic wakeup and enables its interrupt. The EXTI
// line routing is the caller's.
func (d *Device) SetWakeup(enc rtc.Encoding) error {
	d.unlock()
	defer d.lock()
	if err := d.program(enc, "rtcwut.SetWakeup"); err != nil {
		return err
	}
	modify(d.r.CR, crWUTE, 0)
	modify(d.r.CR, crWUTIE, 0)
	modify(d.r.ISR, 0, isrWUTF)
	return nil
}

// SetInterval changes the period of an already configured wakeup timer,
// leaving the interrupt enable untouched.
func (d *Device) SetInterval(enc rtc.Encoding) error {
	d.unlock()
	defer d.lock()
	if err := d.program(enc, "rtcwut.SetInterval"); err != nil {
		return err
	}
	modify(d.r.CR, crWUTE, 0)
	return nil
}

func (d *Device) EnableWakeup() {
	d.unlock()
	modify(d.r.CR, crWUTE, 0)
	d.lock()
}

func (d *Device) DisableWakeup() {
	d.unlock()
	modify(d.r.CR, 0, crWUTE)
	d.lock()
}

// Pending reports WUTF.
func (d *Device) Pending() bool { return d.r.ISR.Get()&isrWUTF != 0 }

// ClearPending clears WUTF; call it from the wakeup handler.
func (d *Device) ClearPending() { modify(d.r.ISR, 0, isrWUTF) }

// Programmed reads back the encoding currently in WUTR/WUCKSEL.
func (d *Device) Programmed() rtc.Encoding {
	return rtc.Encoding{
		Clock:  rtc.WakeupClock((d.r.CR.Get() & crWUCKSELM) >> crWUCKSELP),
		Reload: uint16(d.r.WUTR.Get() & wutrWUTM),
	}
}

// program disables the timer, waits for write access and stores the reload
// value then the clock selector. The registers must already be unlocked.
func (d *Device) program(enc rtc.Encoding, op string) error {
	modify(d.r.CR, 0, crWUTE)
	if err := d.wait.Wait(d.writeAllowed); err != nil {
		return errcode.Wrap(errcode.Timeout, op, "WUTWF", err)
	}
	modify(d.r.WUTR, uint32(enc.Reload), wutrWUTM)
	modify(d.r.CR, uint32(enc.Clock.Bits())<<crWUCKSELP, crWUCKSELM)
	return nil
}

func (d *Device) writeAllowed() bool { return d.r.ISR.Get()&isrWUTWF != 0 }

func (d *Device) unlock() {
	d.r.WPR.Set(wprKey1)
	d.r.WPR.Set(wprKey2)
}

func (d *Device) lock() { d.r.WPR.Set(wprLock) }
