package cpu

// registerIrregularInstructions fills in every opcode that doesn't fit one
// of the regular families generated by registerRegularFamilies.
func registerIrregularInstructions() {
	define(0x00, "NOP", func(c *CPU) {})

	define(0x10, "STOP", func(c *CPU) {
		c.readOperand() // STOP is followed by an ignored padding byte
	})

	define(0x76, "HALT", func(c *CPU) {
		if c.Ime == ImeEnabled {
			c.Ime = ImeHalt
		} else {
			c.Ime = ImeHaltNoInterrupt
		}
	})

	define(0xF3, "DI", func(c *CPU) { c.Ime = ImeDisabled })
	define(0xFB, "EI", func(c *CPU) { c.Ime = ImeEnableAfterNext })

	// 0x02/0x12/0x22/0x32: LD (BC/DE/HL+/HL-),A.
	define(0x02, "LD (BC),A", func(c *CPU) { c.writeByte(c.BC.Uint16(), c.A) })
	define(0x12, "LD (DE),A", func(c *CPU) { c.writeByte(c.DE.Uint16(), c.A) })
	define(0x22, "LD (HL+),A", func(c *CPU) {
		c.writeByte(c.HL.Uint16(), c.A)
		c.HL.SetUint16(c.HL.Uint16() + 1)
	})
	define(0x32, "LD (HL-),A", func(c *CPU) {
		c.writeByte(c.HL.Uint16(), c.A)
		c.HL.SetUint16(c.HL.Uint16() - 1)
	})

	// 0x0A/0x1A/0x2A/0x3A: LD A,(BC/DE/HL+/HL-).
	define(0x0A, "LD A,(BC)", func(c *CPU) { c.A = c.readByte(c.BC.Uint16()) })
	define(0x1A, "LD A,(DE)", func(c *CPU) { c.A = c.readByte(c.DE.Uint16()) })
	define(0x2A, "LD A,(HL+)", func(c *CPU) {
		c.A = c.readByte(c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() + 1)
	})
	define(0x3A, "LD A,(HL-)", func(c *CPU) {
		c.A = c.readByte(c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() - 1)
	})

	define(0x07, "RLCA", func(c *CPU) { c.rlca() })
	define(0x0F, "RRCA", func(c *CPU) { c.rrca() })
	define(0x17, "RLA", func(c *CPU) { c.rla() })
	define(0x1F, "RRA", func(c *CPU) { c.rra() })

	define(0x27, "DAA", func(c *CPU) { c.daa() })
	define(0x2F, "CPL", func(c *CPU) {
		c.A = ^c.A
		c.setFlag(FlagSubtract, true)
		c.setFlag(FlagHalfCarry, true)
	})
	define(0x37, "SCF", func(c *CPU) {
		c.setFlag(FlagSubtract, false)
		c.setFlag(FlagHalfCarry, false)
		c.setFlag(FlagCarry, true)
	})
	define(0x3F, "CCF", func(c *CPU) {
		c.setFlag(FlagSubtract, false)
		c.setFlag(FlagHalfCarry, false)
		c.setFlag(FlagCarry, !c.isFlagSet(FlagCarry))
	})

	// 0x08: LD (nn),SP, little-endian.
	define(0x08, "LD (a16),SP", func(c *CPU) {
		addr := c.readOperand16()
		c.writeByte(addr, uint8(c.SP))
		c.writeByte(addr+1, uint8(c.SP>>8))
	})

	define(0xC3, "JP nn", func(c *CPU) { c.jumpAbsolute(true) })
	define(0xE9, "JP HL", func(c *CPU) { c.PC = c.HL.Uint16() })
	define(0xCD, "CALL nn", func(c *CPU) { c.call(true) })
	define(0xC9, "RET", func(c *CPU) { c.ret() })
	define(0xD9, "RETI", func(c *CPU) {
		c.ret()
		c.Ime = ImeEnabled
	})

	// 0xE0/0xF0: high-page load via immediate offset.
	define(0xE0, "LDH (a8),A", func(c *CPU) {
		c.writeByte(0xFF00+uint16(c.readOperand()), c.A)
	})
	define(0xF0, "LDH A,(a8)", func(c *CPU) {
		c.A = c.readByte(0xFF00 + uint16(c.readOperand()))
	})
	// 0xE2/0xF2: high-page load via C.
	define(0xE2, "LD (C),A", func(c *CPU) { c.writeByte(0xFF00+uint16(c.C), c.A) })
	define(0xF2, "LD A,(C)", func(c *CPU) { c.A = c.readByte(0xFF00 + uint16(c.C)) })

	// 0xEA/0xFA: absolute 16-bit load.
	define(0xEA, "LD (a16),A", func(c *CPU) { c.writeByte(c.readOperand16(), c.A) })
	define(0xFA, "LD A,(a16)", func(c *CPU) { c.A = c.readByte(c.readOperand16()) })

	define(0xE8, "ADD SP,e", func(c *CPU) { c.addSPOffset() })
	define(0xF8, "LD HL,SP+e", func(c *CPU) { c.loadHLFromSPOffset() })
	define(0xF9, "LD SP,HL", func(c *CPU) { c.loadSPFromHL() })
}
