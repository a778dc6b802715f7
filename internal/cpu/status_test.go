package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_Set(t *testing.T) {
	var s Status

	s.Set(FlagC, true)
	assert.True(t, s.Has(FlagC), "carry set")

	s.Set(FlagC, false)
	assert.False(t, s.Has(FlagC), "carry cleared")

	s.Set(FlagC, true)
	s.Set(FlagZ, true)
	s.Set(FlagN, true)
	assert.True(t, s.Has(FlagC) && s.Has(FlagZ) && s.Has(FlagN))
	assert.False(t, s.Has(FlagV))
	assert.Equal(t, Status(0b1000_0011), s)
}

func TestStatus_BitLayout(t *testing.T) {
	assert.Equal(t, Flag(1<<0), FlagC)
	assert.Equal(t, Flag(1<<1), FlagZ)
	assert.Equal(t, Flag(1<<6), FlagV)
	assert.Equal(t, Flag(1<<7), FlagN)
}

func TestStatus_SetZN(t *testing.T) {
	for v := 0; v <= 0xff; v++ {
		s := Status(FlagC | FlagV)
		s.SetZN(uint8(v))

		assert.Equal(t, v == 0, s.Has(FlagZ), "Z for %02X", v)
		assert.Equal(t, v&0x80 != 0, s.Has(FlagN), "N for %02X", v)
		assert.True(t, s.Has(FlagC) && s.Has(FlagV), "C and V untouched for %02X", v)
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "nv----zc", Status(0).String())
	assert.Equal(t, "NV----ZC", Status(FlagN|FlagV|FlagZ|FlagC).String())
	assert.Equal(t, "Nv----zC", Status(FlagN|FlagC).String())
}
