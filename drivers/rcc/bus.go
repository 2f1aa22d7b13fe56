package rcc

// Register is one 32-bit memory-mapped register. *volatile.Register32 from the
// TinyGo runtime satisfies it; host tests use a fake.
type Register interface {
	Get() uint32
	Set(value uint32)
}

// modify is the read-modify-write used by every field write in this package.
// Exactly one Set per call.
func modify(r Register, set, clear uint32) {
	r.Set((r.Get() &^ clear) | set)
}

// replaceField writes v into the field described by mask/pos.
func replaceField(r Register, v uint32, mask uint32, pos uint8) {
	modify(r, (v<<pos)&mask, mask)
}

func hasBits(r Register, bits uint32) bool { return r.Get()&bits == bits }

func field(r Register, mask uint32, pos uint8) uint32 { return (r.Get() & mask) >> pos }
