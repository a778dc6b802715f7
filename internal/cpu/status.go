package cpu

import "strings"

type Flag uint8

const (
	FlagC Flag = 1 << iota // Carry
	FlagZ                  // Zero
	_                      // Interrupt Disable, not emulated
	_                      // Decimal Mode, not emulated
	_                      // Break Command, not emulated
	_                      // Unused
	FlagV                  // Overflow
	FlagN                  // Negative (sign)
)

// Status is the processor status register.
type Status uint8

func (s Status) Has(flag Flag) bool {
	return uint8(s)&uint8(flag) > 0
}

func (s *Status) Set(flag Flag, v bool) {
	if v {
		*s |= Status(flag)
		return
	}
	*s &= ^Status(flag)
}

// SetZN updates Zero and Negative from value.
func (s *Status) SetZN(value uint8) {
	s.Set(FlagZ, value == 0)
	s.Set(FlagN, value&0x80 > 0)
}

// String renders the register as NV----ZC, lowercase for clear bits
// and '-' for bits the core does not use.
func (s Status) String() string {
	var sb strings.Builder
	for _, bit := range []struct {
		flag Flag
		name byte
	}{
		{FlagN, 'N'},
		{FlagV, 'V'},
		{0, '-'},
		{0, '-'},
		{0, '-'},
		{0, '-'},
		{FlagZ, 'Z'},
		{FlagC, 'C'},
	} {
		switch {
		case bit.flag == 0:
			sb.WriteByte(bit.name)
		case s.Has(bit.flag):
			sb.WriteByte(bit.name)
		default:
			sb.WriteByte(bit.name + 'a' - 'A')
		}
	}
	return sb.String()
}
