package cpu

import (
	"errors"

	"github.com/nevisdale/nestic/internal/translate"
)

var f = translate.From

var (
	ErrDecode          = errors.New(f("decode"))
	ErrAddrMode        = errors.New(f("addressing mode"))
	ErrProgramTooLarge = errors.New(f("program too large"))
	ErrStepBudget      = errors.New(f("step budget exhausted"))
)

// DecodeError reports a byte with no opcode table entry.
// PC is the address the byte was fetched from.
type DecodeError struct {
	Opcode uint8
	PC     uint16
}

func (e *DecodeError) Error() string {
	return f("decode: unknown opcode $%02X at $%04X", e.Opcode, e.PC)
}

func (e *DecodeError) Unwrap() error {
	return ErrDecode
}

// AddrModeError reports an attempt to resolve an operand address
// for a mode that has none.
type AddrModeError struct {
	Mode addrMode
}

func (e *AddrModeError) Error() string {
	return f("addressing mode %v has no operand address", e.Mode)
}

func (e *AddrModeError) Unwrap() error {
	return ErrAddrMode
}
