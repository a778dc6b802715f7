package cpu

import "github.com/nevisdale/nestic/internal/bus"

type addrMode uint8

const (
	// Immediate
	// Operand is the byte following the opcode.
	// Example: LDA #$10
	addrModeIMM addrMode = iota + 1

	// Zero Page
	// Operand is located in the first 256 bytes of memory.
	// Example: LDA $10
	addrModeZP

	// Zero Page, X
	// Zero page address plus X, wrapping inside the zero page.
	// Example: LDA $10,X
	addrModeZPX

	// Zero Page, Y
	// Zero page address plus Y, wrapping inside the zero page.
	// Example: LDX $10,Y
	addrModeZPY

	// Absolute
	// Full 16-bit little endian address.
	// Example: LDA $1234
	addrModeABS

	// Absolute, X
	// Full 16-bit address plus X. May cross a page.
	// Example: LDA $1234,X
	addrModeABSX

	// Absolute, Y
	// Full 16-bit address plus Y. May cross a page.
	// Example: LDA $1234,Y
	addrModeABSY

	// Indexed Indirect (X)
	// X is added to the zero page operand first, the result is a
	// zero page pointer to the operand address.
	// Example: LDA ($10,X)
	addrModeINDX

	// Indirect Indexed (Y)
	// The zero page operand is a pointer to a base address,
	// Y is added to that base.
	// Example: LDA ($10),Y
	addrModeINDY

	// Implied
	// No memory operand.
	// Example: TAX
	addrModeIMP
)

func (mode addrMode) String() string {
	switch mode {
	case addrModeIMM:
		return "IMM"
	case addrModeZP:
		return "ZP"
	case addrModeZPX:
		return "ZPX"
	case addrModeZPY:
		return "ZPY"
	case addrModeABS:
		return "ABS"
	case addrModeABSX:
		return "ABSX"
	case addrModeABSY:
		return "ABSY"
	case addrModeINDX:
		return "INDX"
	case addrModeINDY:
		return "INDY"
	case addrModeIMP:
		return "IMP"
	}
	return "???"
}

// operandBytes returns how many bytes follow the opcode in this mode.
func (mode addrMode) operandBytes() int {
	switch mode {
	case addrModeIMM, addrModeZP, addrModeZPX, addrModeZPY, addrModeINDX, addrModeINDY:
		return 1
	case addrModeABS, addrModeABSX, addrModeABSY:
		return 2
	}
	return 0
}

// zpRead16 reads a little endian pointer from the zero page.
// The high byte of a pointer at $FF comes from $00.
func zpRead16(mem bus.Reader, addr uint8) uint16 {
	lo := uint16(mem.Read8(uint16(addr)))
	hi := uint16(mem.Read8(uint16(addr + 1)))
	return lo | hi<<8
}

// resolve returns the effective address of the operand that starts at pc.
// It only reads memory and never moves pc.
func resolve(mode addrMode, pc uint16, x, y uint8, mem bus.Reader) (uint16, error) {
	switch mode {
	case addrModeIMM:
		return pc, nil

	case addrModeZP:
		return uint16(mem.Read8(pc)), nil

	case addrModeZPX:
		return uint16(mem.Read8(pc) + x), nil

	case addrModeZPY:
		return uint16(mem.Read8(pc) + y), nil

	case addrModeABS:
		return bus.Read16(mem, pc), nil

	case addrModeABSX:
		return bus.Read16(mem, pc) + uint16(x), nil

	case addrModeABSY:
		return bus.Read16(mem, pc) + uint16(y), nil

	case addrModeINDX:
		ptr := mem.Read8(pc) + x
		return zpRead16(mem, ptr), nil

	case addrModeINDY:
		base := zpRead16(mem, mem.Read8(pc))
		return base + uint16(y), nil
	}

	return 0, &AddrModeError{Mode: mode}
}
