package rtc

import (
	"errors"
	"math"
	"testing"

	"l4hal-go/errcode"
)

func TestEncode(t *testing.T) {
	cases := []struct {
		name    string
		seconds float32
		src     ClockSource
		want    Encoding
	}{
		{"1s lse", 1.0, LSE, Encoding{WakeupDiv2, 16383}},
		{"1s lsi", 1.0, LSI, Encoding{WakeupDiv2, 15999}},
		{"0.5s hse", 0.5, HSE, Encoding{WakeupDiv2, 62499}},
		{"hse band top", 0.524, HSE, Encoding{WakeupDiv2, 65499}},
		{"minimum", MinWakeupSeconds, LSE, Encoding{WakeupDiv2, 1}},
		{"4s uses /4", 4, LSE, Encoding{WakeupDiv4, 32767}},
		{"8s uses /8", 8, LSE, Encoding{WakeupDiv8, 32767}},
		{"16s uses /16", 16, LSE, Encoding{WakeupDiv16, 32767}},
		{"31.9s", 31.9, LSE, Encoding{WakeupDiv16, 65330}},
		{"32s switches to ck_spre", 32, LSE, Encoding{WakeupSpre, 32}},
		{"40s", 40, LSE, Encoding{WakeupSpre, 40}},
		{"40.7s truncates", 40.7, LSI, Encoding{WakeupSpre, 40}},
		{"18h edge", 65535, LSE, Encoding{WakeupSpre, 65535}},
		{"extended starts at 2^16", 65536, LSE, Encoding{WakeupSpreExt16, 0}},
		{"extended", 70000, LSE, Encoding{WakeupSpreExt16, 4463}},
		{"extended top", 131071, LSE, Encoding{WakeupSpreExt16, 65534}},
	}
	for _, c := range cases {
		got, err := Encode(c.seconds, c.src)
		if err != nil {
			t.Errorf("%s: %v", c.name, err)
			continue
		}
		if got != c.want {
			t.Errorf("%s: got %+v want %+v", c.name, got, c.want)
		}
	}
}

func TestEncodeRange(t *testing.T) {
	for _, s := range []float32{0.00005, 0, -1, 131072, 200000, float32(math.NaN()), float32(math.Inf(1))} {
		_, err := Encode(s, LSE)
		if !errors.Is(err, ErrWakeupRange) || errcode.Of(err) != errcode.WakeupOutOfRange {
			t.Errorf("%v: err = %v", s, err)
		}
	}
}

func TestEncodeHSEOverflowIsRangeError(t *testing.T) {
	// At 250 kHz every sub-32 s band overflows WUT above about 0.524 s.
	for _, s := range []float32{0.53, 1, 3.9, 5, 20, 31.9} {
		enc, err := Encode(s, HSE)
		if !errors.Is(err, ErrWakeupRange) || errcode.Of(err) != errcode.WakeupOutOfRange {
			t.Errorf("%v s: got %+v, err = %v", s, enc, err)
		}
	}
	// ck_spre does not depend on RTCCLK.
	if enc, err := Encode(40, HSE); err != nil || enc != (Encoding{WakeupSpre, 40}) {
		t.Fatalf("40 s: %+v, %v", enc, err)
	}
}

func TestPeriodRoundTrip(t *testing.T) {
	for _, s := range []float32{0.001, 0.25, 3.5, 12, 30, 100, 3600, 100000} {
		e, err := Encode(s, LSE)
		if err != nil {
			t.Fatal(err)
		}
		got := e.Period(LSE)
		res := float32(1)
		if d := e.Clock.Divider(); d != 0 {
			res = float32(d) / LSE.Hz()
		}
		if diff := got - s; diff > res || diff < -res {
			t.Errorf("%v s: programmed %v s (resolution %v)", s, got, res)
		}
	}
}

func TestCountdownEncoding(t *testing.T) {
	cases := []struct {
		delay uint32
		want  Encoding
	}{
		{1, Encoding{WakeupSpre, 0}},
		{65536, Encoding{WakeupSpre, 65535}},
		{65537, Encoding{WakeupSpreExt16, 0}},
		{1 << 17, Encoding{WakeupSpreExt16, 65535}},
	}
	for _, c := range cases {
		got, err := CountdownEncoding(c.delay)
		if err != nil || got != c.want {
			t.Errorf("delay %d: got %+v, %v", c.delay, got, err)
		}
	}
	for _, d := range []uint32{0, 1<<17 + 1} {
		if _, err := CountdownEncoding(d); !errors.Is(err, ErrWakeupRange) {
			t.Errorf("delay %d accepted", d)
		}
	}
}
