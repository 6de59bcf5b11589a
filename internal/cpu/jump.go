package cpu

import "github.com/mna/godmg/internal/types"

// jumpAbsolute always consumes the 16-bit immediate; it only moves PC and
// pays the internal-delay cycle when condition holds.
//
//	JP cc, nn
//	JP nn
func (c *CPU) jumpAbsolute(condition bool) {
	lo := c.readOperand()
	hi := c.readOperand()
	if condition {
		c.PC = uint16(hi)<<8 | uint16(lo)
		c.tickN(4)
	}
}

// jumpRelative always consumes the signed displacement byte; it only
// applies it to PC when condition holds.
//
//	JR cc, e
//	JR e
func (c *CPU) jumpRelative(condition bool) {
	e := int8(c.readOperand())
	if condition {
		c.PC = uint16(int32(c.PC) + int32(e))
		c.tickN(4)
	}
}

// call always consumes the 16-bit immediate; only on condition does it pay
// the internal delay and push the return address.
//
//	CALL cc, nn
//	CALL nn
func (c *CPU) call(condition bool) {
	lo := c.readOperand()
	hi := c.readOperand()
	if condition {
		target := uint16(hi)<<8 | uint16(lo)
		c.tickN(4)
		c.writeByte(c.SP-1, uint8(c.PC>>8))
		c.writeByte(c.SP-2, uint8(c.PC))
		c.SP -= 2
		c.PC = target
	}
}

// ret pops the return address unconditionally, for RET and RETI.
func (c *CPU) ret() {
	lo := c.readByte(c.SP)
	hi := c.readByte(c.SP + 1)
	c.SP += 2
	c.PC = uint16(hi)<<8 | uint16(lo)
	c.tickN(4)
}

// retCond pays a condition-check cycle before testing condition; RET cc
// with the condition false costs only that cycle plus the fetch.
func (c *CPU) retCond(condition bool) {
	c.tickN(4)
	if condition {
		c.ret()
	}
}

// rst pushes the current PC and jumps to one of the eight fixed vectors.
func (c *CPU) rst(vector uint16) {
	c.tickN(4)
	c.writeByte(c.SP-1, uint8(c.PC>>8))
	c.writeByte(c.SP-2, uint8(c.PC))
	c.SP -= 2
	c.PC = vector
}

// pushReg pushes a 16-bit register pair onto the stack.
//
//	PUSH nn
func (c *CPU) pushReg(pair *types.RegisterPair) {
	c.tickN(4)
	c.writeByte(c.SP-1, *pair.High)
	c.writeByte(c.SP-2, *pair.Low)
	c.SP -= 2
}

// popReg pops the top of the stack into a 16-bit register pair. Callers
// popping AF must mask F's low nibble themselves afterward.
//
//	POP nn
func (c *CPU) popReg(pair *types.RegisterPair) {
	lo := c.readByte(c.SP)
	hi := c.readByte(c.SP + 1)
	c.SP += 2
	*pair.Low = lo
	*pair.High = hi
}
