package bus

const (
	// Memory map used by the core:
	//
	// $0000-$00FF: Zero page
	//   Addressable with a single byte. ZPX/ZPY and the indirect
	//   modes keep their pointer arithmetic inside this page.
	//
	// $0100-$7FFF: General purpose RAM
	//
	// $8000-$FFFB: Program space
	//   Load copies programs here. The offset is a convention only.
	//
	// $FFFC-$FFFD: Reset vector (little endian)
	//
	// The whole 16-bit space is backed, $FFFF included.
	SizeBytes = 0x10000
)

type Reader interface {
	Read8(addr uint16) uint8
}

type ReadWriter interface {
	Reader
	Write8(addr uint16, data uint8)
}

// Bus is a flat 64 KiB memory. The zero value is ready to use.
type Bus struct {
	ram [SizeBytes]uint8
}

func New() *Bus {
	return &Bus{}
}

func (b *Bus) Read8(addr uint16) uint8 {
	return b.ram[addr]
}

func (b *Bus) Write8(addr uint16, data uint8) {
	b.ram[addr] = data
}

// Read16 reads a little endian word. addr+1 wraps at $FFFF.
func (b *Bus) Read16(addr uint16) uint16 {
	return Read16(b, addr)
}

func (b *Bus) Write16(addr uint16, data uint16) {
	Write16(b, addr, data)
}

// Read16 reads a little endian word through r: low byte at addr,
// high byte at addr+1.
func Read16(r Reader, addr uint16) uint16 {
	lo := uint16(r.Read8(addr))
	hi := uint16(r.Read8(addr + 1))
	return lo | hi<<8
}

func Write16(w ReadWriter, addr uint16, data uint16) {
	w.Write8(addr, uint8(data&0xff))
	w.Write8(addr+1, uint8(data>>8))
}
