package periph

import (
	"errors"
	"testing"

	"tinygo.org/x/drivers"
)

type fakeADC struct {
	uv      int32
	err     error
	updates []drivers.Measurement
}

func (f *fakeADC) Update(which drivers.Measurement) error {
	f.updates = append(f.updates, which)
	return f.err
}

func (f *fakeADC) Voltage() int32 { return f.uv }

func TestReadMilliVolts(t *testing.T) {
	a := &fakeADC{uv: 1_650_400}
	mv, err := ReadMilliVolts(a)
	if err != nil || mv != 1650 {
		t.Fatalf("mv=%d err=%v", mv, err)
	}
	if len(a.updates) != 1 || a.updates[0] != drivers.Voltage {
		t.Fatalf("updates = %v", a.updates)
	}

	a.err = errors.New("adc busy")
	if _, err := ReadMilliVolts(a); !errors.Is(err, a.err) {
		t.Fatalf("err = %v", err)
	}
}

func TestResolutionScale(t *testing.T) {
	cases := []struct {
		r    Resolution
		raw  uint16
		want int32
	}{
		{Res12, 4095, 3_300_000},
		{Res12, 0, 0},
		{Res12, 2048, 1_650_402},
		{Res10, 1023, 3_300_000},
		{Res8, 128, 1_656_470},
		{Res6, 100, 3_300_000}, // clamps to full scale
	}
	for _, c := range cases {
		if got := c.r.MicroVolts(c.raw, 3300); got != c.want {
			t.Errorf("%v raw %d: %d µV, want %d", c.r.Bits(), c.raw, got, c.want)
		}
	}
}
