package cpu

// loadSPFromHL implements LD SP,HL, which costs one extra internal cycle
// beyond the opcode fetch.
func (c *CPU) loadSPFromHL() {
	c.SP = c.HL.Uint16()
	c.tickN(4)
}

// loadHLFromSPOffset implements LD HL,SP+e, sharing addSPSigned's flag rule.
func (c *CPU) loadHLFromSPOffset() {
	e := c.readOperand()
	c.HL.SetUint16(c.addSPSigned(e))
	c.tickN(4)
}

// addSPOffset implements ADD SP,e, sharing addSPSigned's flag rule.
func (c *CPU) addSPOffset() {
	e := c.readOperand()
	c.SP = c.addSPSigned(e)
	c.tickN(8) // two internal cycles: one for the add, one for the 16-bit SP write
}
