package periph

import (
	"l4hal-go/clocks"
	"l4hal-go/drivers/rcc"
	"l4hal-go/errcode"
	"l4hal-go/x/poll"
)

// Reselect restores the system clock input after Stop or Standby, where the
// hardware falls back to MSI or HSI. PLL configuration registers survive Stop,
// so only the oscillators are cycled.
func Reselect(dev *rcc.Device, src clocks.InputSrc, w poll.Waiter) error {
	if w == nil {
		w = poll.Forever
	}
	switch src.Kind() {
	case clocks.KindMSI:
		r, _ := src.MSIRange()
		dev.EnableMSI(r.Bits())
		if err := await(w, dev.MSIReady, "MSIRDY"); err != nil {
			return err
		}
	case clocks.KindHSI:
		dev.EnableHSI()
		if err := await(w, dev.HSIReady, "HSIRDY"); err != nil {
			return err
		}
	case clocks.KindHSE:
		dev.EnableHSE()
		if err := await(w, dev.HSEReady, "HSERDY"); err != nil {
			return err
		}
	case clocks.KindPLL:
		if err := enablePLLInput(dev, src, w); err != nil {
			return err
		}
		dev.DisablePLL()
		if err := await(w, dev.PLLStopped, "PLLRDY clear"); err != nil {
			return err
		}
		dev.EnablePLL()
		if err := await(w, dev.PLLReady, "PLLRDY"); err != nil {
			return err
		}
	}
	dev.SetSysClkSwitch(src.Bits())
	return nil
}

func enablePLLInput(dev *rcc.Device, src clocks.InputSrc, w poll.Waiter) error {
	pll, _ := src.PLLSource()
	switch pll.Kind() {
	case clocks.PllKindHSE:
		dev.EnableHSE()
		return await(w, dev.HSEReady, "HSERDY")
	case clocks.PllKindHSI:
		dev.EnableHSI()
		return await(w, dev.HSIReady, "HSIRDY")
	case clocks.PllKindMSI:
		r, _ := src.MSIRange()
		dev.EnableMSI(r.Bits())
		return await(w, dev.MSIReady, "MSIRDY")
	}
	return nil
}

func await(w poll.Waiter, ready func() bool, flag string) error {
	if err := w.Wait(ready); err != nil {
		return errcode.Wrap(errcode.Timeout, "periph.Reselect", flag, err)
	}
	return nil
}
