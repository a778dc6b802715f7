package cpu

import "fmt"

// Disassemble returns the instruction at addr in "$8000: LDA #$C0 {IMM}" form
// and the address of the next instruction. Unknown bytes render as "???".
func (c CPU) Disassemble(addr uint16) (string, uint16) {
	op := opcodes[c.read8(addr)]
	if !op.valid() {
		return fmt.Sprintf("$%04X: ???", addr), addr + 1
	}

	next := addr + uint16(op.bytes)
	pc := addr + 1
	switch op.mode {
	case addrModeIMM:
		return fmt.Sprintf("$%04X: %s #$%02X {%s}", addr, op.name, c.read8(pc), op.mode), next
	case addrModeZP:
		return fmt.Sprintf("$%04X: %s $%02X {%s}", addr, op.name, c.read8(pc), op.mode), next
	case addrModeZPX:
		return fmt.Sprintf("$%04X: %s $%02X,X {%s}", addr, op.name, c.read8(pc), op.mode), next
	case addrModeZPY:
		return fmt.Sprintf("$%04X: %s $%02X,Y {%s}", addr, op.name, c.read8(pc), op.mode), next
	case addrModeABS:
		return fmt.Sprintf("$%04X: %s $%04X {%s}", addr, op.name, c.read16(pc), op.mode), next
	case addrModeABSX:
		return fmt.Sprintf("$%04X: %s $%04X,X {%s}", addr, op.name, c.read16(pc), op.mode), next
	case addrModeABSY:
		return fmt.Sprintf("$%04X: %s $%04X,Y {%s}", addr, op.name, c.read16(pc), op.mode), next
	case addrModeINDX:
		return fmt.Sprintf("$%04X: %s ($%02X,X) {%s}", addr, op.name, c.read8(pc), op.mode), next
	case addrModeINDY:
		return fmt.Sprintf("$%04X: %s ($%02X),Y {%s}", addr, op.name, c.read8(pc), op.mode), next
	}
	return fmt.Sprintf("$%04X: %s {%s}", addr, op.name, op.mode), next
}
