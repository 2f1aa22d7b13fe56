package clocks

import (
	"l4hal-go/drivers/rcc"
	"l4hal-go/errcode"
	"l4hal-go/x/poll"
)

// State is the sequencer's progress through one Setup call.
type State uint8

const (
	StateIdle State = iota
	StateValidate
	StateRejected
	StateOscEnable
	StatePllReconfigure
	StateSwitchover
	StateDone
	StateFailed // only reachable with a bounded Waiter
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidate:
		return "validate"
	case StateRejected:
		return "rejected"
	case StateOscEnable:
		return "osc_enable"
	case StatePllReconfigure:
		return "pll_reconfigure"
	case StateSwitchover:
		return "switchover"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Step is one traced action inside a state.
type Step struct {
	State State
	Name  string
}

type Option func(*Sequencer)

// WithWaiter replaces the unbounded ready-flag wait.
func WithWaiter(w poll.Waiter) Option {
	return func(s *Sequencer) {
		if w != nil {
			s.wait = w
		}
	}
}

// WithTrace reports every state entry and register action.
func WithTrace(fn func(Step)) Option {
	return func(s *Sequencer) { s.trace = fn }
}

// Sequencer applies a Config to the RCC in the order the hardware requires.
// It is not safe for concurrent use; one caller owns the RCC.
type Sequencer struct {
	dev   *rcc.Device
	wait  poll.Waiter
	trace func(Step)
	state State
}

func NewSequencer(dev *rcc.Device, opts ...Option) *Sequencer {
	s := &Sequencer{dev: dev, wait: poll.Forever}
	for _, o := range opts {
		o(s)
	}
	return s
}

// State reports where the last Setup ended.
func (s *Sequencer) State() State { return s.state }

// Setup validates c and, only if it is primary-valid, programs the clock tree.
// A rejected Config performs no register access at all. Past validation the
// only possible error is a timeout from a bounded Waiter.
func (s *Sequencer) Setup(c Config) error {
	s.enter(StateValidate)
	sp := c.Speeds()
	v := Validate(sp, c.PllVcoMul, c.PllSai1Mul, c.PllSai2Mul)
	if !v.OK() {
		s.enter(StateRejected)
		return v.Err()
	}

	// Wait states must cover the faster of the old and new HCLK at every
	// point: raise them before the tree speeds up, lower them after SW.
	lat := FlashLatency(sp.HCLK)
	lowerLatency := lat < s.dev.FlashLatency()
	if !lowerLatency {
		s.step("flash_latency")
		s.dev.SetFlashLatency(lat)
	}

	s.enter(StateOscEnable)
	// HSEBYP is only writable while HSE is off.
	s.step("hse_bypass")
	s.dev.SetHSEBypass(c.HseBypass)
	if err := s.enableRoot(c.InputSrc); err != nil {
		return s.fail(err)
	}

	if src, ok := c.InputSrc.PLLSource(); ok {
		s.enter(StatePllReconfigure)
		if err := s.reconfigurePLL(c, src); err != nil {
			return s.fail(err)
		}
	}

	s.enter(StateSwitchover)
	s.step("cfgr")
	s.dev.SetBusClocks(rcc.BusFields{
		SW:    c.InputSrc.Bits(),
		HPRE:  c.HclkPrescaler.Bits(),
		PPRE1: c.Apb1Prescaler.Bits(),
		PPRE2: c.Apb2Prescaler.Bits(),
	})
	if lowerLatency {
		s.step("flash_latency")
		s.dev.SetFlashLatency(lat)
	}
	s.step("css")
	s.dev.SetSecuritySystem(c.SecuritySystem)
	s.step("clk48sel")
	s.dev.SetClk48Source(c.Clk48Src.Bits())
	if c.Clk48Src == Clk48HSI48 {
		s.step("hsi48_on")
		s.dev.EnableHSI48()
		if err := s.await("HSI48RDY", s.dev.HSI48Ready); err != nil {
			return s.fail(err)
		}
	}

	s.enter(StateDone)
	return nil
}

// enableRoot turns on the oscillator at the root of the tree and waits for it.
func (s *Sequencer) enableRoot(src InputSrc) error {
	switch src.kind {
	case KindMSI:
		return s.enableMSI(src.msi)
	case KindHSI:
		return s.enableHSI()
	case KindHSE:
		return s.enableHSE()
	case KindPLL:
		switch src.pll.kind {
		case PllKindMSI:
			return s.enableMSI(src.pll.msi)
		case PllKindHSI:
			return s.enableHSI()
		case PllKindHSE:
			return s.enableHSE()
		}
	}
	return nil
}

func (s *Sequencer) enableMSI(r MsiRange) error {
	s.step("msi_on")
	s.dev.EnableMSI(r.Bits())
	return s.await("MSIRDY", s.dev.MSIReady)
}

func (s *Sequencer) enableHSI() error {
	s.step("hsi_on")
	s.dev.EnableHSI()
	return s.await("HSIRDY", s.dev.HSIReady)
}

func (s *Sequencer) enableHSE() error {
	s.step("hse_on")
	s.dev.EnableHSE()
	return s.await("HSERDY", s.dev.HSEReady)
}

// reconfigurePLL follows RM0351 6.2.5: stop, wait for PLLRDY to clear, write the
// dividers, restart, wait for lock, then open the output taps.
func (s *Sequencer) reconfigurePLL(c Config, src PllSrc) error {
	s.step("pll_off")
	s.dev.DisablePLL()
	if err := s.await("PLLRDY clear", s.dev.PLLStopped); err != nil {
		return err
	}

	s.step("pllcfgr")
	s.dev.ConfigurePLL(rcc.PLLFields{
		Src: src.Bits(),
		M:   c.Pllm.Bits(),
		N:   c.PllVcoMul,
		R:   c.Pllr.Bits(),
	})
	if c.Sai1Enabled {
		s.step("pllsai1n")
		s.dev.SetPLLSAI1N(c.PllSai1Mul)
	}
	if c.Sai2Enabled {
		s.step("pllsai2n")
		s.dev.SetPLLSAI2N(c.PllSai2Mul)
	}

	s.step("pll_on")
	s.dev.EnablePLL()
	if c.Sai1Enabled {
		s.step("pllsai1_on")
		s.dev.EnablePLLSAI1()
		if err := s.await("PLLSAI1RDY", s.dev.SAI1Ready); err != nil {
			return err
		}
	}
	if c.Sai2Enabled {
		s.step("pllsai2_on")
		s.dev.EnablePLLSAI2()
		if err := s.await("PLLSAI2RDY", s.dev.SAI2Ready); err != nil {
			return err
		}
	}
	if err := s.await("PLLRDY", s.dev.PLLReady); err != nil {
		return err
	}

	s.step("pll_taps")
	s.dev.EnablePLLOutputs()
	if c.Sai1Enabled {
		s.step("pllsai1_taps")
		s.dev.EnablePLLSAI1Outputs()
	}
	if c.Sai2Enabled {
		s.step("pllsai2_taps")
		s.dev.EnablePLLSAI2Outputs()
	}
	return nil
}

func (s *Sequencer) await(flag string, ready func() bool) error {
	s.step("wait " + flag)
	if err := s.wait.Wait(ready); err != nil {
		return &errcode.E{C: errcode.Timeout, Op: "clocks.Setup", Msg: flag, Err: err}
	}
	return nil
}

func (s *Sequencer) enter(st State) {
	s.state = st
	if s.trace != nil {
		s.trace(Step{State: st})
	}
}

func (s *Sequencer) step(name string) {
	if s.trace != nil {
		s.trace(Step{State: s.state, Name: name})
	}
}

func (s *Sequencer) fail(err error) error {
	s.enter(StateFailed)
	return err
}

// Setup is shorthand for NewSequencer(dev).Setup(c) with the unbounded wait.
func (c Config) Setup(dev *rcc.Device) error {
	return NewSequencer(dev).Setup(c)
}
