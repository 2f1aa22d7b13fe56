package rtcwut

// Register is one 32-bit memory-mapped register.
type Register interface {
	Get() uint32
	Set(value uint32)
}

func modify(r Register, set, clear uint32) {
	r.Set((r.Get() &^ clear) | set)
}
