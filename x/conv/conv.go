// Package conv formats register values without fmt or strconv, for MCU
// logging through println.
package conv

const hexd = "0123456789ABCDEF"

// Hex32 writes n as 0x-prefixed, 8-digit uppercase hex into the tail of buf
// and returns the used slice. buf needs 10 bytes.
func Hex32(buf []byte, n uint32) []byte {
	if len(buf) < 10 {
		return buf[:0]
	}
	i := len(buf)
	for j := 0; j < 8; j++ {
		i--
		buf[i] = hexd[n&0xF]
		n >>= 4
	}
	i -= 2
	buf[i], buf[i+1] = '0', 'x'
	return buf[i:]
}

// Bin writes the low width bits of n, most significant first.
func Bin(buf []byte, n uint32, width int) []byte {
	if width <= 0 || width > 32 || len(buf) < width {
		return buf[:0]
	}
	i := len(buf)
	for j := 0; j < width; j++ {
		i--
		buf[i] = '0' + byte(n&1)
		n >>= 1
	}
	return buf[i:]
}

// Field is "name=value" with the value in hex, for register dumps.
func Field(name string, v uint32) string {
	var b [10]byte
	return name + "=" + string(Hex32(b[:], v))
}
