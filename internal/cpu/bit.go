package cpu

// setBit sets bit n of value. Used by SET n,r; no flags affected.
func (c *CPU) setBit(value, n uint8) uint8 {
	return value | (1 << n)
}

// resBit clears bit n of value. Used by RES n,r; no flags affected.
func (c *CPU) resBit(value, n uint8) uint8 {
	return value &^ (1 << n)
}

// testBit implements BIT n,r: Z reflects the bit, N=0, H=1, C unaffected.
func (c *CPU) testBit(value, n uint8) {
	c.setFlag(FlagZero, (value>>n)&1 == 0)
	c.setFlag(FlagSubtract, false)
	c.setFlag(FlagHalfCarry, true)
}
