// Package profile loads named board clock profiles from YAML and turns them
// into clocks.Config values. A default set is embedded.
package profile

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"l4hal-go/clocks"
	"l4hal-go/errcode"
	"l4hal-go/rtc"
)

//go:embed profiles.yaml
var rawProfiles []byte

var ErrProfileNotFound = errors.New("profile not found")

type Profiles []Profile

type Profile struct {
	Name      string `yaml:"name"`
	Board     string `yaml:"board"`
	Input     string `yaml:"input"`     // msi, hsi, hse, pll
	PLLSource string `yaml:"pllSource"` // none, msi, hsi, hse
	HSEMHz    uint8  `yaml:"hseMHz"`
	MSIRange  uint8  `yaml:"msiRange"`
	PLLM      uint8  `yaml:"pllm"`
	PLLN      uint8  `yaml:"plln"`
	PLLR      uint8  `yaml:"pllr"`
	SAI1N     uint8  `yaml:"sai1n"`
	SAI2N     uint8  `yaml:"sai2n"`
	HCLKDiv   uint16 `yaml:"hclkDiv"`
	APB1Div   uint8  `yaml:"apb1Div"`
	APB2Div   uint8  `yaml:"apb2Div"`
	Clk48     string `yaml:"clk48"`
	SAI1      bool   `yaml:"sai1"`
	SAI2      bool   `yaml:"sai2"`
	HSEBypass bool   `yaml:"hseBypass"`
	CSS       bool   `yaml:"css"`
	RTC       *RTC   `yaml:"rtc,omitempty"`
}

// RTC describes the wakeup timer a board runs with.
type RTC struct {
	Source string  `yaml:"source"` // lse, lsi, hse
	Wakeup float32 `yaml:"wakeup"` // seconds
}

var defaults Profiles

// Default returns the embedded profile set.
func Default() Profiles {
	return slices.Clone(defaults)
}

// Parse decodes a YAML document with a top-level "profiles" list.
func Parse(data []byte) (Profiles, error) {
	var doc struct {
		Elements Profiles `yaml:"profiles"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	for i, p := range doc.Elements {
		if p.Name == "" {
			return nil, fmt.Errorf("profile: entry %d has no name", i)
		}
		if slices.IndexFunc(doc.Elements[:i], func(q Profile) bool { return q.Name == p.Name }) >= 0 {
			return nil, fmt.Errorf("profile: duplicate name %q", p.Name)
		}
	}
	return doc.Elements, nil
}

// Load reads and parses a profile file.
func Load(path string) (Profiles, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

// Find looks a profile up by name, case-insensitively.
func (ps Profiles) Find(name string) (Profile, error) {
	i := slices.IndexFunc(ps, func(p Profile) bool { return strings.EqualFold(p.Name, name) })
	if i < 0 {
		return Profile{}, fmt.Errorf("%w: %q", ErrProfileNotFound, name)
	}
	return ps[i], nil
}

// Names lists the profile names in file order.
func (ps Profiles) Names() []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Name
	}
	return out
}

// Marshal renders the set back to YAML.
func (ps Profiles) Marshal() ([]byte, error) {
	return yaml.Marshal(struct {
		Elements Profiles `yaml:"profiles"`
	}{ps})
}

var (
	inputKinds = map[string]func(p Profile, pll clocks.PllSrc) clocks.InputSrc{
		"msi": func(p Profile, _ clocks.PllSrc) clocks.InputSrc { return clocks.MSI(clocks.MsiRange(p.MSIRange)) },
		"hsi": func(Profile, clocks.PllSrc) clocks.InputSrc { return clocks.HSI() },
		"hse": func(p Profile, _ clocks.PllSrc) clocks.InputSrc { return clocks.HSE(p.HSEMHz) },
		"pll": func(_ Profile, pll clocks.PllSrc) clocks.InputSrc { return clocks.PLL(pll) },
	}
	pllrs = map[uint8]clocks.Pllr{2: clocks.PllrDiv2, 4: clocks.PllrDiv4, 6: clocks.PllrDiv6, 8: clocks.PllrDiv8}
	hclks = map[uint16]clocks.HclkPrescaler{
		1: clocks.HclkDiv1, 2: clocks.HclkDiv2, 4: clocks.HclkDiv4, 8: clocks.HclkDiv8,
		16: clocks.HclkDiv16, 64: clocks.HclkDiv64, 128: clocks.HclkDiv128,
		256: clocks.HclkDiv256, 512: clocks.HclkDiv512,
	}
	apbs = map[uint8]clocks.ApbPrescaler{
		1: clocks.ApbDiv1, 2: clocks.ApbDiv2, 4: clocks.ApbDiv4, 8: clocks.ApbDiv8, 16: clocks.ApbDiv16,
	}
	clk48s = map[string]clocks.Clk48Src{
		"hsi48": clocks.Clk48HSI48, "pllsai1": clocks.Clk48PllSai1, "pll": clocks.Clk48Pll, "msi": clocks.Clk48MSI,
	}
	rtcSources = map[string]rtc.ClockSource{"lse": rtc.LSE, "lsi": rtc.LSI, "hse": rtc.HSE}
)

// Config converts the profile. Input defaults to the PLL and missing divider
// fields take the default preset's value; unknown names and values are errors.
// The result is not validated.
func (p Profile) Config() (clocks.Config, error) {
	c := clocks.Default()

	pll, err := p.pllSource()
	if err != nil {
		return c, err
	}
	input := strings.ToLower(p.Input)
	if input == "" {
		input = "pll"
	}
	mk, ok := inputKinds[input]
	if !ok {
		return c, p.badValue("input", p.Input, maps.Keys(inputKinds))
	}
	c.InputSrc = mk(p, pll)
	if p.MSIRange > uint8(clocks.MsiRange11) {
		return c, p.badValue("msiRange", p.MSIRange, []uint8{0, 11})
	}
	if p.PLLM != 0 {
		if p.PLLM > 8 {
			return c, p.badValue("pllm", p.PLLM, []uint8{1, 8})
		}
		c.Pllm = clocks.Pllm(p.PLLM - 1)
	}
	if p.PLLN != 0 {
		c.PllVcoMul = p.PLLN
	}
	if p.SAI1N != 0 {
		c.PllSai1Mul = p.SAI1N
	}
	if p.SAI2N != 0 {
		c.PllSai2Mul = p.SAI2N
	}
	if c.Pllr, err = lookup(p, "pllr", pllrs, p.PLLR, c.Pllr); err != nil {
		return c, err
	}
	if c.HclkPrescaler, err = lookup(p, "hclkDiv", hclks, p.HCLKDiv, c.HclkPrescaler); err != nil {
		return c, err
	}
	if c.Apb1Prescaler, err = lookup(p, "apb1Div", apbs, p.APB1Div, c.Apb1Prescaler); err != nil {
		return c, err
	}
	if c.Apb2Prescaler, err = lookup(p, "apb2Div", apbs, p.APB2Div, c.Apb2Prescaler); err != nil {
		return c, err
	}
	if c.Clk48Src, err = lookup(p, "clk48", clk48s, strings.ToLower(p.Clk48), c.Clk48Src); err != nil {
		return c, err
	}
	c.Sai1Enabled = p.SAI1
	c.Sai2Enabled = p.SAI2
	c.HseBypass = p.HSEBypass
	c.SecuritySystem = p.CSS
	return c, nil
}

func (p Profile) pllSource() (clocks.PllSrc, error) {
	switch strings.ToLower(p.PLLSource) {
	case "", "hse":
		mhz := p.HSEMHz
		if mhz == 0 {
			mhz = 8
		}
		return clocks.PllHSE(mhz), nil
	case "hsi":
		return clocks.PllHSI, nil
	case "msi":
		return clocks.PllMSI(clocks.MsiRange(p.MSIRange)), nil
	case "none":
		return clocks.PllNone, nil
	}
	return clocks.PllNone, p.badValue("pllSource", p.PLLSource, []string{"hse", "hsi", "msi", "none"})
}

// Wakeup returns the profile's RTC source and encoded wakeup period. ok is
// false when the profile has no rtc section.
func (p Profile) Wakeup() (src rtc.ClockSource, enc rtc.Encoding, ok bool, err error) {
	if p.RTC == nil {
		return 0, rtc.Encoding{}, false, nil
	}
	src, err = lookup(p, "rtc.source", rtcSources, strings.ToLower(p.RTC.Source), rtc.LSI)
	if err != nil {
		return 0, rtc.Encoding{}, true, err
	}
	enc, err = rtc.Encode(p.RTC.Wakeup, src)
	if err != nil {
		return src, enc, true, fmt.Errorf("profile %q: %w", p.Name, err)
	}
	return src, enc, true, nil
}

// lookup maps a YAML value onto its enum; the zero value keeps def.
func lookup[K comparable, V any](p Profile, field string, table map[K]V, key K, def V) (V, error) {
	var zero K
	if key == zero {
		return def, nil
	}
	v, ok := table[key]
	if !ok {
		return def, p.badValue(field, key, maps.Keys(table))
	}
	return v, nil
}

func (p Profile) badValue(field string, got any, allowed any) error {
	return &errcode.E{
		C:   errcode.InvalidParams,
		Op:  "profile." + p.Name,
		Msg: fmt.Sprintf("%s: %v not in %v", field, got, sorted(allowed)),
	}
}

func sorted(v any) any {
	switch s := v.(type) {
	case []string:
		slices.Sort(s)
	case []uint8:
		slices.Sort(s)
	case []uint16:
		slices.Sort(s)
	}
	return v
}

func init() {
	ps, err := Parse(rawProfiles)
	if err != nil {
		panic(err)
	}
	defaults = ps
}
