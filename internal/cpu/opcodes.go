package cpu

import "fmt"

type mnemonic uint8

const (
	mnemonicADC mnemonic = iota + 1 // Add with Carry
	mnemonicBRK                     // Break (halt)
	mnemonicINX                     // Increment X
	mnemonicLDA                     // Load Accumulator
	mnemonicSTA                     // Store Accumulator
	mnemonicTAX                     // Transfer A to X
)

func (m mnemonic) String() string {
	switch m {
	case mnemonicADC:
		return "ADC"
	case mnemonicBRK:
		return "BRK"
	case mnemonicINX:
		return "INX"
	case mnemonicLDA:
		return "LDA"
	case mnemonicSTA:
		return "STA"
	case mnemonicTAX:
		return "TAX"
	}
	return "???"
}

type opcode struct {
	name   mnemonic
	mode   addrMode
	bytes  uint8 // instruction length, opcode included
	cycles uint8 // base cycles, page crossing penalties not counted
}

func (op opcode) valid() bool {
	return op.name != 0
}

// opcodes maps a raw byte to its instruction.
// Zero entries are unassigned bytes.
var opcodes = [0x100]opcode{
	0x00: {name: mnemonicBRK, mode: addrModeIMP, bytes: 1, cycles: 7},

	0x61: {name: mnemonicADC, mode: addrModeINDX, bytes: 2, cycles: 6},
	0x65: {name: mnemonicADC, mode: addrModeZP, bytes: 2, cycles: 3},
	0x69: {name: mnemonicADC, mode: addrModeIMM, bytes: 2, cycles: 2},
	0x6d: {name: mnemonicADC, mode: addrModeABS, bytes: 3, cycles: 4},
	0x71: {name: mnemonicADC, mode: addrModeINDY, bytes: 2, cycles: 5},
	0x75: {name: mnemonicADC, mode: addrModeZPX, bytes: 2, cycles: 4},
	0x79: {name: mnemonicADC, mode: addrModeABSY, bytes: 3, cycles: 4},
	0x7d: {name: mnemonicADC, mode: addrModeABSX, bytes: 3, cycles: 4},

	0x81: {name: mnemonicSTA, mode: addrModeINDX, bytes: 2, cycles: 6},
	0x85: {name: mnemonicSTA, mode: addrModeZP, bytes: 2, cycles: 3},
	0x8d: {name: mnemonicSTA, mode: addrModeABS, bytes: 3, cycles: 4},
	0x91: {name: mnemonicSTA, mode: addrModeINDY, bytes: 2, cycles: 6},
	0x95: {name: mnemonicSTA, mode: addrModeZPX, bytes: 2, cycles: 4},
	0x99: {name: mnemonicSTA, mode: addrModeABSY, bytes: 3, cycles: 5},
	0x9d: {name: mnemonicSTA, mode: addrModeABSX, bytes: 3, cycles: 5},

	0xa1: {name: mnemonicLDA, mode: addrModeINDX, bytes: 2, cycles: 6},
	0xa5: {name: mnemonicLDA, mode: addrModeZP, bytes: 2, cycles: 3},
	0xa9: {name: mnemonicLDA, mode: addrModeIMM, bytes: 2, cycles: 2},
	0xaa: {name: mnemonicTAX, mode: addrModeIMP, bytes: 1, cycles: 2},
	0xad: {name: mnemonicLDA, mode: addrModeABS, bytes: 3, cycles: 4},
	0xb1: {name: mnemonicLDA, mode: addrModeINDY, bytes: 2, cycles: 5},
	0xb5: {name: mnemonicLDA, mode: addrModeZPX, bytes: 2, cycles: 4},
	0xb9: {name: mnemonicLDA, mode: addrModeABSY, bytes: 3, cycles: 4},
	0xbd: {name: mnemonicLDA, mode: addrModeABSX, bytes: 3, cycles: 4},

	0xe8: {name: mnemonicINX, mode: addrModeIMP, bytes: 1, cycles: 2},
}

func init() {
	if err := validateOpcodes(&opcodes); err != nil {
		panic(err)
	}
}

// validateOpcodes checks that every entry's length matches its mode.
func validateOpcodes(table *[0x100]opcode) error {
	for b, op := range table {
		if !op.valid() {
			continue
		}
		if op.name.String() == "???" {
			return fmt.Errorf("opcode %02X: unknown mnemonic %d", b, op.name)
		}
		if op.mode == 0 {
			return fmt.Errorf("opcode %02X %s: no addressing mode", b, op.name)
		}
		if want := 1 + op.mode.operandBytes(); int(op.bytes) != want {
			return fmt.Errorf("opcode %02X %s {%s}: length %d, mode needs %d", b, op.name, op.mode, op.bytes, want)
		}
		if op.cycles == 0 {
			return fmt.Errorf("opcode %02X %s: zero cycles", b, op.name)
		}
	}
	return nil
}

// Opcode describes one entry of the opcode table.
type Opcode struct {
	Code     uint8
	Mnemonic string
	Mode     string
	Bytes    uint8
	Cycles   uint8
}

// LookupOpcode returns the table entry for b.
func LookupOpcode(b uint8) (Opcode, bool) {
	op := opcodes[b]
	if !op.valid() {
		return Opcode{}, false
	}
	return Opcode{
		Code:     b,
		Mnemonic: op.name.String(),
		Mode:     op.mode.String(),
		Bytes:    op.bytes,
		Cycles:   op.cycles,
	}, true
}

func opcodeIsSupported(b uint8) bool {
	return opcodes[b].valid()
}
