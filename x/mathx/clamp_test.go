package mathx

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(2, 3, 0) != 2 {
		t.Fatal("clamp mismatch")
	}
}

func TestRanges(t *testing.T) {
	cases := []struct {
		name string
		got  bool
		want bool
	}{
		{"between low edge", Between(uint8(7), 7, 86), true},
		{"between high edge", Between(uint8(86), 7, 86), true},
		{"between below", Between(uint8(6), 7, 86), false},
		{"between above", Between(uint8(87), 7, 86), false},
		{"halfopen low edge", HalfOpen(float32(32), 32, 65536), true},
		{"halfopen high edge", HalfOpen(float32(65536), 32, 65536), false},
		{"halfopen nan", HalfOpen(float32(math.NaN()), 0, 1), false},
		{"aboveupto zero", AboveUpTo(float32(0), 0, 80), false},
		{"aboveupto ceiling", AboveUpTo(float32(80), 0, 80), true},
		{"aboveupto over", AboveUpTo(float32(80.5), 0, 80), false},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("%s: got %v want %v", c.name, c.got, c.want)
		}
	}
}
