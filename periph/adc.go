package periph

import "tinygo.org/x/drivers"

// Sampler is a one-shot ADC channel. Update(drivers.Voltage) performs the
// conversion; Voltage returns the last result in microvolts.
type Sampler interface {
	drivers.Sensor
	Voltage() int32
}

// ReadMilliVolts triggers one conversion and returns it in millivolts.
func ReadMilliVolts(s Sampler) (int32, error) {
	if err := s.Update(drivers.Voltage); err != nil {
		return 0, err
	}
	return s.Voltage() / 1000, nil
}

// Resolution is the ADC_CFGR RES field.
type Resolution uint8

const (
	Res12 Resolution = 0b00
	Res10 Resolution = 0b01
	Res8  Resolution = 0b10
	Res6  Resolution = 0b11
)

func (r Resolution) Bits() uint8 { return uint8(r) & 0x3 }

// Full is the largest code the resolution produces.
func (r Resolution) Full() uint16 {
	return 1<<(12-2*uint(r.Bits())) - 1
}

// MicroVolts scales a raw conversion against a reference voltage in millivolts.
func (r Resolution) MicroVolts(raw uint16, vrefMilli uint32) int32 {
	full := uint64(r.Full())
	if uint64(raw) > full {
		raw = uint16(full)
	}
	return int32(uint64(raw) * uint64(vrefMilli) * 1000 / full)
}
