package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Bus_ReadWrite8(t *testing.T) {
	b := New()

	assert.Equal(t, uint8(0), b.Read8(0x1234), "unwritten memory reads as zero")

	b.Write8(0x1234, 0xab)
	assert.Equal(t, uint8(0xab), b.Read8(0x1234))
	assert.Equal(t, uint8(0), b.Read8(0x1235))
}

func Test_Bus_ReadWrite16(t *testing.T) {
	t.Run("little endian", func(t *testing.T) {
		b := New()
		b.Write16(0xfffc, 0x8000)

		assert.Equal(t, uint8(0x00), b.Read8(0xfffc), "low byte first")
		assert.Equal(t, uint8(0x80), b.Read8(0xfffd), "high byte second")
		assert.Equal(t, uint16(0x8000), b.Read16(0xfffc))
	})

	t.Run("compose two byte writes", func(t *testing.T) {
		b := New()
		b.Write8(0x10, 0x34)
		b.Write8(0x11, 0x12)

		assert.Equal(t, uint16(0x1234), b.Read16(0x10))
	})
}

// The highest address is backed by real storage: a 65535-byte memory
// would lose $FFFF.
func Test_Bus_TopOfMemory(t *testing.T) {
	b := New()

	b.Write8(0xffff, 0x42)
	assert.Equal(t, uint8(0x42), b.Read8(0xffff))

	b.Write8(0x0000, 0x24)
	assert.Equal(t, uint16(0x2442), b.Read16(0xffff), "high byte wraps to $0000")

	b.Write16(0xffff, 0xbeef)
	assert.Equal(t, uint8(0xef), b.Read8(0xffff))
	assert.Equal(t, uint8(0xbe), b.Read8(0x0000))
}
