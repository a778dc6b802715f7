package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Opcodes_Valid(t *testing.T) {
	require.NoError(t, validateOpcodes(&opcodes))
}

func Test_Opcodes_Coverage(t *testing.T) {
	count := make(map[mnemonic]int)
	for _, op := range opcodes {
		if op.valid() {
			count[op.name]++
		}
	}

	assert.Equal(t, map[mnemonic]int{
		mnemonicADC: 8,
		mnemonicBRK: 1,
		mnemonicINX: 1,
		mnemonicLDA: 8,
		mnemonicSTA: 7,
		mnemonicTAX: 1,
	}, count)
}

func Test_ValidateOpcodes(t *testing.T) {
	t.Run("length does not match mode", func(t *testing.T) {
		var table [0x100]opcode
		table[0xa9] = opcode{name: mnemonicLDA, mode: addrModeIMM, bytes: 3, cycles: 2}
		assert.ErrorContains(t, validateOpcodes(&table), "opcode A9 LDA {IMM}: length 3, mode needs 2")
	})

	t.Run("implied with operand bytes", func(t *testing.T) {
		var table [0x100]opcode
		table[0xaa] = opcode{name: mnemonicTAX, mode: addrModeIMP, bytes: 2, cycles: 2}
		assert.Error(t, validateOpcodes(&table))
	})

	t.Run("missing mode", func(t *testing.T) {
		var table [0x100]opcode
		table[0xe8] = opcode{name: mnemonicINX, bytes: 1, cycles: 2}
		assert.ErrorContains(t, validateOpcodes(&table), "no addressing mode")
	})

	t.Run("unknown mnemonic", func(t *testing.T) {
		var table [0x100]opcode
		table[0x02] = opcode{name: mnemonic(0xff), mode: addrModeIMP, bytes: 1, cycles: 2}
		assert.ErrorContains(t, validateOpcodes(&table), "unknown mnemonic")
	})

	t.Run("zero cycles", func(t *testing.T) {
		var table [0x100]opcode
		table[0x00] = opcode{name: mnemonicBRK, mode: addrModeIMP, bytes: 1}
		assert.ErrorContains(t, validateOpcodes(&table), "zero cycles")
	})

	t.Run("empty table", func(t *testing.T) {
		var table [0x100]opcode
		assert.NoError(t, validateOpcodes(&table))
	})
}

func Test_LookupOpcode(t *testing.T) {
	op, ok := LookupOpcode(0x7d)
	require.True(t, ok)
	assert.Equal(t, Opcode{Code: 0x7d, Mnemonic: "ADC", Mode: "ABSX", Bytes: 3, Cycles: 4}, op)

	op, ok = LookupOpcode(0x00)
	require.True(t, ok)
	assert.Equal(t, "BRK", op.Mnemonic)
	assert.Equal(t, "IMP", op.Mode)

	_, ok = LookupOpcode(0x02)
	assert.False(t, ok)
	assert.False(t, opcodeIsSupported(0xff))
}
