package profile

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"l4hal-go/clocks"
	"l4hal-go/errcode"
	"l4hal-go/rtc"
)

func TestEmbeddedProfilesMatchPresets(t *testing.T) {
	ps := Default()
	for _, name := range clocks.PresetNames() {
		p, err := ps.Find(name)
		if err != nil {
			t.Fatal(err)
		}
		got, err := p.Config()
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		want, _ := clocks.Preset(name)
		if got != want {
			t.Fatalf("%s:\n got %+v\nwant %+v", name, got, want)
		}
	}
}

func TestEmbeddedProfilesValidate(t *testing.T) {
	for _, p := range Default() {
		c, err := p.Config()
		if err != nil {
			t.Fatalf("%s: %v", p.Name, err)
		}
		v := c.Validate()
		if v.Primary != clocks.Valid {
			t.Errorf("%s: primary verdict %+v (speeds %+v)", p.Name, v, c.Speeds())
		}
		if c.Sai1Enabled && v.USB != clocks.Valid {
			t.Errorf("%s: SAI1 enabled but USB clock %.1f MHz", p.Name, c.Speeds().USB)
		}
		if _, _, _, err := p.Wakeup(); err != nil {
			t.Errorf("%s: %v", p.Name, err)
		}
	}
}

func TestLowPowerProfile(t *testing.T) {
	p, err := Default().Find("LOW-POWER")
	if err != nil {
		t.Fatal(err)
	}
	c, err := p.Config()
	if err != nil {
		t.Fatal(err)
	}
	if c.InputSrc != clocks.MSI(clocks.MsiRange6) || c.Speeds().Sysclk != 4 {
		t.Fatalf("input %v sysclk %v", c.InputSrc, c.Speeds().Sysclk)
	}
	src, enc, ok, err := p.Wakeup()
	if err != nil || !ok {
		t.Fatalf("wakeup: ok=%v err=%v", ok, err)
	}
	if src != rtc.LSE || enc != (rtc.Encoding{Clock: rtc.WakeupSpre, Reload: 300}) {
		t.Fatalf("src %v enc %+v", src, enc)
	}
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"syntax":    "profiles: [",
		"no name":   "profiles:\n  - board: x\n",
		"duplicate": "profiles:\n  - name: a\n  - name: a\n",
	}
	for name, doc := range cases {
		if _, err := Parse([]byte(doc)); err == nil {
			t.Errorf("%s: accepted", name)
		}
	}
}

func TestConfigRejectsUnknownValues(t *testing.T) {
	cases := []Profile{
		{Name: "a", Input: "lse"},
		{Name: "b", PLLSource: "pll"},
		{Name: "c", PLLR: 3},
		{Name: "d", HCLKDiv: 32},
		{Name: "e", APB1Div: 3},
		{Name: "f", APB2Div: 32},
		{Name: "g", Clk48: "hse"},
		{Name: "h", PLLM: 9},
		{Name: "i", MSIRange: 12},
	}
	for _, p := range cases {
		_, err := p.Config()
		if errcode.Of(err) != errcode.InvalidParams {
			t.Errorf("%s: err = %v", p.Name, err)
		}
	}
}

func TestWakeupErrors(t *testing.T) {
	p := Profile{Name: "x", RTC: &RTC{Source: "lse", Wakeup: 200000}}
	if _, _, _, err := p.Wakeup(); !errors.Is(err, rtc.ErrWakeupRange) {
		t.Fatalf("err = %v", err)
	}
	p.RTC = &RTC{Source: "xtal", Wakeup: 1}
	if _, _, _, err := p.Wakeup(); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("err = %v", err)
	}
	p.RTC = nil
	if _, _, ok, err := p.Wakeup(); ok || err != nil {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	out, err := Default().Marshal()
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	if err := os.WriteFile(path, out, 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, Default()) {
		t.Fatalf("round trip changed profiles:\n%s", out)
	}
	if _, err := got.Find("nope"); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("err = %v", err)
	}
}
