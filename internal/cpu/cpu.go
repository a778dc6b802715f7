package cpu

import (
	"fmt"
	"log"

	"github.com/nevisdale/nestic/internal/bus"
)

const (
	// Load copies programs here and points the reset vector at it.
	ProgramStartAddr = uint16(0x8000)
	resetVectorAddr  = uint16(0xfffc)
)

type CPU struct {
	a           uint8  // accumulator
	x           uint8  // index register X
	y           uint8  // index register Y
	p           Status // processor status
	pc          uint16 // program counter
	mem         bus.ReadWriter
	totalCycles uint64
	operandAddr uint16 // effective address of the current instruction
	halted      bool
	tracer      *log.Logger
}

// New returns a CPU with zeroed registers and its own zeroed 64 KiB memory.
func New() *CPU {
	return newCPU(bus.New())
}

func newCPU(mem bus.ReadWriter) *CPU {
	return &CPU{
		mem: mem,
	}
}

func (c CPU) read8(addr uint16) uint8 {
	return c.mem.Read8(addr)
}

func (c CPU) read16(addr uint16) uint16 {
	return bus.Read16(c.mem, addr)
}

func (c *CPU) write8(addr uint16, data uint8) {
	c.mem.Write8(addr, data)
}

func (c *CPU) write16(addr uint16, data uint16) {
	bus.Write16(c.mem, addr, data)
}

func (c CPU) A() uint8 { return c.a }
func (c CPU) X() uint8 { return c.x }
func (c CPU) Y() uint8 { return c.y }
func (c CPU) P() Status { return c.p }
func (c CPU) PC() uint16 { return c.pc }
func (c CPU) Halted() bool { return c.halted }
func (c CPU) Cycles() uint64 { return c.totalCycles }
func (c CPU) Flag(f Flag) bool { return c.p.Has(f) }

// MemRead returns the byte at addr.
func (c CPU) MemRead(addr uint16) uint8 {
	return c.read8(addr)
}

// MemWrite stores a byte at addr.
func (c *CPU) MemWrite(addr uint16, data uint8) {
	c.write8(addr, data)
}

func (c CPU) MemRead16(addr uint16) uint16 {
	return c.read16(addr)
}

func (c *CPU) MemWrite16(addr uint16, data uint16) {
	c.write16(addr, data)
}

// SetTracer enables per instruction logging. nil disables it.
func (c *CPU) SetTracer(l *log.Logger) {
	c.tracer = l
}

// State is a snapshot of the register file.
type State struct {
	PC uint16
	A  uint8
	X  uint8
	Y  uint8
	P  Status
}

func (s State) StatusString() string {
	return s.P.String()
}

func (s State) String() string {
	return fmt.Sprintf("PC:%04X A:%02X X:%02X Y:%02X P:%s", s.PC, s.A, s.X, s.Y, s.P)
}

func (c CPU) State() State {
	return State{
		PC: c.pc,
		A:  c.a,
		X:  c.x,
		Y:  c.y,
		P:  c.p,
	}
}

// Load copies program to ProgramStartAddr and writes the reset vector.
func (c *CPU) Load(program []uint8) error {
	if len(program) > bus.SizeBytes-int(ProgramStartAddr) {
		return fmt.Errorf("%w: %d bytes at $%04X", ErrProgramTooLarge, len(program), ProgramStartAddr)
	}
	for i, data := range program {
		c.write8(ProgramStartAddr+uint16(i), data)
	}
	c.write16(resetVectorAddr, ProgramStartAddr)
	return nil
}

// Reset the CPU to its initial state.
// A, X, Y and every status flag are cleared, PC comes from the reset vector.
func (c *CPU) Reset() {
	c.a = 0
	c.x = 0
	c.y = 0
	c.p = 0
	c.pc = c.read16(resetVectorAddr)
	c.totalCycles = 0
	c.operandAddr = 0
	c.halted = false
}

// Run executes instructions until BRK or a decode error.
// A program without BRK never returns; use RunSteps to bound it.
func (c *CPU) Run() error {
	c.halted = false
	for !c.halted {
		if err := c.Step(); err != nil {
			return err
		}
	}
	return nil
}

// RunSteps is Run with a budget of limit instructions.
// It returns the number of instructions executed.
func (c *CPU) RunSteps(limit int) (int, error) {
	c.halted = false
	steps := 0
	for ; !c.halted; steps++ {
		if steps == limit {
			return steps, fmt.Errorf("%w: %d instructions, PC: $%04X", ErrStepBudget, limit, c.pc)
		}
		if err := c.Step(); err != nil {
			return steps, err
		}
	}
	return steps, nil
}

// LoadAndRun loads program, resets the CPU and runs it.
func (c *CPU) LoadAndRun(program []uint8) error {
	if err := c.Load(program); err != nil {
		return err
	}
	c.Reset()
	return c.Run()
}

// Step executes one instruction. It is a no-op once the CPU is halted.
//
// On a decode error the CPU halts with PC left on the offending byte
// and no register changed.
func (c *CPU) Step() error {
	if c.halted {
		return nil
	}

	code := c.read8(c.pc)
	op := opcodes[code]
	if !op.valid() {
		c.halted = true
		err := &DecodeError{Opcode: code, PC: c.pc}
		if c.tracer != nil {
			c.tracer.Printf("%v. halting...", err)
		}
		return err
	}

	var line string
	if c.tracer != nil {
		line, _ = c.Disassemble(c.pc)
	}

	c.pc++
	c.operandAddr = 0
	if op.mode != addrModeIMP {
		addr, err := resolve(op.mode, c.pc, c.x, c.y, c.mem)
		if err != nil {
			c.pc--
			c.halted = true
			return err
		}
		c.operandAddr = addr
	}
	c.execute(op)
	c.pc += uint16(op.bytes) - 1
	c.totalCycles += uint64(op.cycles)

	if c.tracer != nil {
		c.tracer.Printf("%-28s A:%02X X:%02X Y:%02X P:%s", line, c.a, c.x, c.y, c.p)
	}
	return nil
}

func (c *CPU) execute(op opcode) {
	switch op.name {
	case mnemonicADC:
		c.adc()
	case mnemonicBRK:
		c.brk()
	case mnemonicINX:
		c.inx()
	case mnemonicLDA:
		c.lda()
	case mnemonicSTA:
		c.sta()
	case mnemonicTAX:
		c.tax()
	default:
		panic(fmt.Sprintf("unreachable. mnemonic %d has no handler", op.name))
	}
}
