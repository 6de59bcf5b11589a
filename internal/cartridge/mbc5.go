package cartridge

// mbc5 implements the MBC5 bank controller: a full 9-bit ROM bank register
// split across two write ports, and a 4-bit RAM bank register. Unlike
// MBC1/MBC3, bank 0 is a valid ROM bank selection.
type mbc5 struct {
	rom []byte
	ram [][0x2000]byte

	ramEnabled bool
	romBank    uint16 // 9 bits
	ramBank    uint8
}

func newMBC5(rom []byte, header Header) *mbc5 {
	m := &mbc5{rom: rom, romBank: 1}
	if header.RAMBanks > 0 {
		m.ram = make([][0x2000]byte, header.RAMBanks)
	}
	return m
}

func (m *mbc5) Read(addr uint16) uint8 {
	switch {
	case addr < 0x4000:
		return m.readROM(0, addr)
	case addr < 0x8000:
		return m.readROM(int(m.romBank), addr-0x4000)
	case addr >= 0xA000 && addr < 0xC000:
		if !m.ramEnabled || int(m.ramBank) >= len(m.ram) {
			return 0xFF
		}
		return m.ram[m.ramBank][addr-0xA000]
	}
	return 0xFF
}

func (m *mbc5) readROM(bank int, offset uint16) uint8 {
	idx := bank*0x4000 + int(offset)
	if idx < 0 || idx >= len(m.rom) {
		return 0xFF
	}
	return m.rom[idx]
}

func (m *mbc5) Write(addr uint16, value uint8) {
	switch {
	case addr < 0x2000:
		m.ramEnabled = value&0x0F == 0x0A
	case addr < 0x3000:
		m.romBank = m.romBank&0x100 | uint16(value)
	case addr < 0x4000:
		m.romBank = m.romBank&0x0FF | uint16(value&0x01)<<8
	case addr < 0x6000:
		m.ramBank = value & 0x0F
	case addr >= 0xA000 && addr < 0xC000:
		if m.ramEnabled && int(m.ramBank) < len(m.ram) {
			m.ram[m.ramBank][addr-0xA000] = value
		}
	}
}

func (m *mbc5) SaveRAM() []byte {
	if len(m.ram) == 0 {
		return nil
	}
	out := make([]byte, 0, len(m.ram)*0x2000)
	for _, bank := range m.ram {
		out = append(out, bank[:]...)
	}
	return out
}

func (m *mbc5) LoadRAM(data []byte) {
	for i := range m.ram {
		start := i * 0x2000
		if start >= len(data) {
			break
		}
		copy(m.ram[i][:], data[start:])
	}
}
