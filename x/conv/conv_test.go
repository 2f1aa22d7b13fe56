package conv

import "testing"

func TestHex32(t *testing.T) {
	var b [16]byte
	cases := []struct {
		n    uint32
		want string
	}{
		{0, "0x00000000"},
		{0x2000_080F, "0x2000080F"},
		{0xFFFF_FFFF, "0xFFFFFFFF"},
	}
	for _, c := range cases {
		if got := string(Hex32(b[:], c.n)); got != c.want {
			t.Fatalf("Hex32(%#x) = %q, want %q", c.n, got, c.want)
		}
	}
	if got := Hex32(b[:9], 1); len(got) != 0 {
		t.Fatalf("short buffer gave %q", got)
	}
}

func TestBin(t *testing.T) {
	var b [32]byte
	if got := string(Bin(b[:], 0b110, 3)); got != "110" {
		t.Fatalf("got %q", got)
	}
	if got := string(Bin(b[:], 0b11, 5)); got != "00011" {
		t.Fatalf("got %q", got)
	}
	if got := Bin(b[:2], 1, 3); len(got) != 0 {
		t.Fatalf("short buffer gave %q", got)
	}
}

func TestField(t *testing.T) {
	if got := Field("CFGR", 0xF); got != "CFGR=0x0000000F" {
		t.Fatalf("got %q", got)
	}
}
