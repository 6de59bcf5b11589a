package cpu

// add8 implements ADD A,n. Flags: Z N=0 H C.
func (c *CPU) add8(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	result := uint8(sum)
	c.setFlags(result == 0, false, (a&0xF)+(b&0xF) > 0xF, sum > 0xFF)
	return result
}

// adc8 implements ADC A,n: add with incoming carry folded into both the
// value and the flag computation.
func (c *CPU) adc8(a, b uint8) uint8 {
	carry := uint16(0)
	if c.isFlagSet(FlagCarry) {
		carry = 1
	}
	sum := uint16(a) + uint16(b) + carry
	result := uint8(sum)
	c.setFlags(result == 0, false, (a&0xF)+(b&0xF)+uint8(carry) > 0xF, sum > 0xFF)
	return result
}

// sub8 implements SUB n. Flags: Z N=1 H C.
func (c *CPU) sub8(a, b uint8) uint8 {
	result := a - b
	c.setFlags(result == 0, true, a&0xF < b&0xF, a < b)
	return result
}

// sbc8 implements SBC A,n.
func (c *CPU) sbc8(a, b uint8) uint8 {
	carry := uint8(0)
	if c.isFlagSet(FlagCarry) {
		carry = 1
	}
	result := a - b - carry
	halfCarry := (a & 0xF) < (b&0xF)+carry
	fullCarry := uint16(a) < uint16(b)+uint16(carry)
	c.setFlags(result == 0, true, halfCarry, fullCarry)
	return result
}

// and8 implements AND n. Flags: Z N=0 H=1 C=0.
func (c *CPU) and8(a, b uint8) uint8 {
	result := a & b
	c.setFlags(result == 0, false, true, false)
	return result
}

// or8 implements OR n. Flags: Z N=0 H=0 C=0.
func (c *CPU) or8(a, b uint8) uint8 {
	result := a | b
	c.setFlags(result == 0, false, false, false)
	return result
}

// xor8 implements XOR n. Flags: Z N=0 H=0 C=0.
func (c *CPU) xor8(a, b uint8) uint8 {
	result := a ^ b
	c.setFlags(result == 0, false, false, false)
	return result
}

// cp8 implements CP n: SUB discarding the result.
func (c *CPU) cp8(a, b uint8) {
	c.sub8(a, b)
}

// addHL implements ADD HL,rr. Flags: Z unaffected; N=0; H bit-11 carry; C bit-15 carry.
func (c *CPU) addHL(value uint16) {
	hl := c.HL.Uint16()
	sum := uint32(hl) + uint32(value)
	c.setFlags(c.isFlagSet(FlagZero), false, (hl&0xFFF)+(value&0xFFF) > 0xFFF, sum > 0xFFFF)
	c.HL.SetUint16(uint16(sum))
}

// addSPSigned implements both ADD SP,e and LD HL,SP+e: flags are computed on
// the low byte of SP against the unsigned immediate, using the XOR trick to
// recover the carries out of an operation done in 16 bits.
func (c *CPU) addSPSigned(e uint8) uint16 {
	result := uint16(int32(c.SP) + int32(int8(e)))
	carries := c.SP ^ uint16(e) ^ result
	c.setFlags(false, false, carries&0x10 != 0, carries&0x100 != 0)
	return result
}
