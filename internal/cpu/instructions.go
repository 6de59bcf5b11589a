package cpu

import "github.com/mna/godmg/internal/types"

// Instruction pairs an opcode's mnemonic with the function that executes it.
type Instruction struct {
	Name string
	Fn   func(*CPU)
}

// InstructionSet is the primary 256-entry opcode table.
var InstructionSet [256]Instruction

// InstructionSetCB is the CB-prefixed 256-entry opcode table.
var InstructionSetCB [256]Instruction

var regNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}
var pairNames1 = [4]string{"BC", "DE", "HL", "SP"}
var pairNames2 = [4]string{"BC", "DE", "HL", "AF"}
var condNames = [4]string{"NZ", "Z", "NC", "C"}

// regAt returns a pointer to the 8-bit register at encoding index, or nil
// for index 6, which callers must special-case as (HL).
func (c *CPU) regAt(index uint8) *types.Register {
	switch index {
	case 0:
		return &c.B
	case 1:
		return &c.C
	case 2:
		return &c.D
	case 3:
		return &c.E
	case 4:
		return &c.H
	case 5:
		return &c.L
	case 7:
		return &c.A
	}
	return nil
}

// readRegOrHL returns the value at encoding index, reading (HL) through the
// bus (and ticking) when index is 6.
func (c *CPU) readRegOrHL(index uint8) uint8 {
	if index == 6 {
		return c.readByte(c.HL.Uint16())
	}
	return *c.regAt(index)
}

// writeRegOrHL writes value to the register at encoding index, or to (HL)
// through the bus when index is 6.
func (c *CPU) writeRegOrHL(index uint8, value uint8) {
	if index == 6 {
		c.writeByte(c.HL.Uint16(), value)
		return
	}
	*c.regAt(index) = value
}

func (c *CPU) pairGroup1(index uint8) uint16 {
	switch index {
	case 0:
		return c.BC.Uint16()
	case 1:
		return c.DE.Uint16()
	case 2:
		return c.HL.Uint16()
	default:
		return c.SP
	}
}

func (c *CPU) setPairGroup1(index uint8, v uint16) {
	switch index {
	case 0:
		c.BC.SetUint16(v)
	case 1:
		c.DE.SetUint16(v)
	case 2:
		c.HL.SetUint16(v)
	default:
		c.SP = v
	}
}

func (c *CPU) pairGroup2(index uint8) *types.RegisterPair {
	switch index {
	case 0:
		return c.BC
	case 1:
		return c.DE
	case 2:
		return c.HL
	default:
		return c.AF
	}
}

func (c *CPU) condition(index uint8) bool {
	switch index {
	case 0:
		return !c.isFlagSet(FlagZero)
	case 1:
		return c.isFlagSet(FlagZero)
	case 2:
		return !c.isFlagSet(FlagCarry)
	default:
		return c.isFlagSet(FlagCarry)
	}
}

func define(opcode uint8, name string, fn func(*CPU)) {
	InstructionSet[opcode] = Instruction{Name: name, Fn: fn}
}

func defineCB(opcode uint8, name string, fn func(*CPU)) {
	InstructionSetCB[opcode] = Instruction{Name: name, Fn: fn}
}

// execute dispatches a fetched opcode, reading the CB-prefix's second byte
// itself when needed.
func (c *CPU) execute(opcode uint8) {
	if opcode == 0xCB {
		cbOpcode := c.readOperand()
		InstructionSetCB[cbOpcode].Fn(c)
		return
	}
	instr := InstructionSet[opcode]
	if instr.Fn == nil {
		// Unrecognized opcode: the handful of slots real DMG hardware never
		// defines. Tolerate it rather than abort, so homebrew that pokes at
		// undefined opcodes still runs.
		c.bus.Log.Debugf("unknown opcode %#02x at %#04x", opcode, c.PC-1)
		return
	}
	instr.Fn(c)
}

func init() {
	registerIrregularInstructions()
	registerRegularFamilies()
	registerCBTable()
}

// registerRegularFamilies generates the opcode blocks that follow a uniform
// 3-bit register-index encoding.
func registerRegularFamilies() {
	for idx := uint8(0); idx < 8; idx++ {
		idx := idx

		// 0x04/0x0C/.../0x3C: INC r (and (HL)); 0x05/.../0x3D: DEC r.
		define(0x04|idx<<3, "INC "+regNames[idx], func(c *CPU) {
			if idx == 6 {
				v := c.readByte(c.HL.Uint16())
				c.writeByte(c.HL.Uint16(), c.inc8(v))
				return
			}
			r := c.regAt(idx)
			*r = c.inc8(*r)
		})
		define(0x05|idx<<3, "DEC "+regNames[idx], func(c *CPU) {
			if idx == 6 {
				v := c.readByte(c.HL.Uint16())
				c.writeByte(c.HL.Uint16(), c.dec8(v))
				return
			}
			r := c.regAt(idx)
			*r = c.dec8(*r)
		})

		// 0x06/0x0E/.../0x3E: LD r,d8.
		define(0x06|idx<<3, "LD "+regNames[idx]+",d8", func(c *CPU) {
			v := c.readOperand()
			c.writeRegOrHL(idx, v)
		})
	}

	// 0x40-0x7F: LD r,r', with 0x76 carved out as HALT by the irregular pass.
	for dst := uint8(0); dst < 8; dst++ {
		for src := uint8(0); src < 8; src++ {
			dst, src := dst, src
			opcode := 0x40 | dst<<3 | src
			if opcode == 0x76 {
				continue
			}
			define(opcode, "LD "+regNames[dst]+","+regNames[src], func(c *CPU) {
				c.writeRegOrHL(dst, c.readRegOrHL(src))
			})
		}
	}

	// 0x80-0xBF: 8-bit ALU with A, operand from register or (HL).
	aluOps := [8]func(c *CPU, v uint8){
		func(c *CPU, v uint8) { c.A = c.add8(c.A, v) },
		func(c *CPU, v uint8) { c.A = c.adc8(c.A, v) },
		func(c *CPU, v uint8) { c.A = c.sub8(c.A, v) },
		func(c *CPU, v uint8) { c.A = c.sbc8(c.A, v) },
		func(c *CPU, v uint8) { c.A = c.and8(c.A, v) },
		func(c *CPU, v uint8) { c.A = c.xor8(c.A, v) },
		func(c *CPU, v uint8) { c.A = c.or8(c.A, v) },
		func(c *CPU, v uint8) { c.cp8(c.A, v) },
	}
	aluNames := [8]string{"ADD A,", "ADC A,", "SUB ", "SBC A,", "AND ", "XOR ", "OR ", "CP "}
	for op := uint8(0); op < 8; op++ {
		for src := uint8(0); src < 8; src++ {
			op, src := op, src
			define(0x80|op<<3|src, aluNames[op]+regNames[src], func(c *CPU) {
				aluOps[op](c, c.readRegOrHL(src))
			})
		}
	}
	// 0xC6/0xCE/.../0xFE: same ALU family with an immediate operand.
	for op := uint8(0); op < 8; op++ {
		op := op
		define(0xC6|op<<3, aluNames[op]+"d8", func(c *CPU) {
			aluOps[op](c, c.readOperand())
		})
	}

	for idx := uint8(0); idx < 4; idx++ {
		idx := idx

		// 0x01/0x11/0x21/0x31: LD rr,d16.
		define(0x01|idx<<4, "LD "+pairNames1[idx]+",d16", func(c *CPU) {
			c.setPairGroup1(idx, c.readOperand16())
		})
		// 0x03/0x13/0x23/0x33: INC rr (no flags).
		define(0x03|idx<<4, "INC "+pairNames1[idx], func(c *CPU) {
			c.setPairGroup1(idx, c.pairGroup1(idx)+1)
			c.tickN(4)
		})
		// 0x0B/0x1B/0x2B/0x3B: DEC rr (no flags).
		define(0x0B|idx<<4, "DEC "+pairNames1[idx], func(c *CPU) {
			c.setPairGroup1(idx, c.pairGroup1(idx)-1)
			c.tickN(4)
		})
		// 0x09/0x19/0x29/0x39: ADD HL,rr.
		define(0x09|idx<<4, "ADD HL,"+pairNames1[idx], func(c *CPU) {
			c.addHL(c.pairGroup1(idx))
			c.tickN(4)
		})

		// 0xC1/0xD1/0xE1/0xF1: POP rr2 (BC/DE/HL/AF).
		define(0xC1|idx<<4, "POP "+pairNames2[idx], func(c *CPU) {
			c.popReg(c.pairGroup2(idx))
			if idx == 3 {
				c.F &= 0xF0
			}
		})
		// 0xC5/0xD5/0xE5/0xF5: PUSH rr2.
		define(0xC5|idx<<4, "PUSH "+pairNames2[idx], func(c *CPU) {
			c.pushReg(c.pairGroup2(idx))
		})

		// 0xC2/0xCA/0xD2/0xDA: JP cc,nn.
		define(0xC2|idx<<3, "JP "+condNames[idx]+",nn", func(c *CPU) {
			c.jumpAbsolute(c.condition(idx))
		})
		// 0xC4/0xCC/0xD4/0xDC: CALL cc,nn.
		define(0xC4|idx<<3, "CALL "+condNames[idx]+",nn", func(c *CPU) {
			c.call(c.condition(idx))
		})
		// 0xC0/0xC8/0xD0/0xD8: RET cc.
		define(0xC0|idx<<3, "RET "+condNames[idx], func(c *CPU) {
			c.retCond(c.condition(idx))
		})
	}

	// 0x18/0x20/0x28/0x30/0x38: relative jumps. 0x18 is unconditional; the
	// other four use the same 2-bit condition encoding as JP/CALL/RET cc.
	define(0x18, "JR e", func(c *CPU) { c.jumpRelative(true) })
	condJR := [4]uint8{0x20, 0x28, 0x30, 0x38}
	for i, opcode := range condJR {
		i, opcode := uint8(i), opcode
		define(opcode, "JR "+condNames[i]+",e", func(c *CPU) {
			c.jumpRelative(c.condition(i))
		})
	}

	// 0xC7/0xCF/.../0xFF: RST to the eight fixed page-zero vectors.
	for i := uint8(0); i < 8; i++ {
		i := i
		vector := uint16(i) * 8
		define(0xC7|i<<3, "RST", func(c *CPU) { c.rst(vector) })
	}
}
