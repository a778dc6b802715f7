package cpu

func isSameSign(a, b uint8) bool {
	return (a^b)&0x80 == 0
}

// Add with Carry
// A = A + M + C
//
// Flags affected: C, Z, N, V
func (c *CPU) adc() {
	m := c.read8(c.operandAddr)
	r16 := uint16(c.a) + uint16(m)
	if c.p.Has(FlagC) {
		r16++
	}
	r8 := uint8(r16)
	c.p.Set(FlagC, r16 > 0xff)
	c.p.SetZN(r8)
	// both operands share a sign the result does not have
	c.p.Set(FlagV, isSameSign(c.a, m) && !isSameSign(c.a, r8))
	c.a = r8
}

// Break, halts the CPU.
//
// Flags affected: None
func (c *CPU) brk() {
	c.halted = true
}

// Increment X
// X = X + 1
//
// Flags affected: Z, N
func (c *CPU) inx() {
	c.x++
	c.p.SetZN(c.x)
}

// Load Accumulator
// A = M
//
// Flags affected: Z, N
func (c *CPU) lda() {
	c.a = c.read8(c.operandAddr)
	c.p.SetZN(c.a)
}

// Store Accumulator
// M = A
//
// Flags affected: None
func (c *CPU) sta() {
	c.write8(c.operandAddr, c.a)
}

// Transfer Accumulator to X
// X = A
//
// Flags affected: Z, N
func (c *CPU) tax() {
	c.x = c.a
	c.p.SetZN(c.x)
}
