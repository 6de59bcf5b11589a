package cartridge

// mbc3 implements the MBC3 bank controller: a 7-bit ROM bank register and a
// bank-select register that picks either a RAM bank (0x00-0x03) or one of
// five RTC registers (0x08-0x0C). The RTC clock source is stubbed to zero
// per spec; only the latch mechanics are implemented, so games that latch
// before reading don't desync even though wall-clock time isn't modeled.
type mbc3 struct {
	rom []byte
	ram [][0x2000]byte
	rtc [5]uint8

	ramEnabled bool
	romBank    uint8
	bankSelect uint8 // 0x00-0x03 RAM bank, 0x08-0x0C RTC register
	latchState uint8 // tracks the 0x00 then 0x01 write sequence
}

func newMBC3(rom []byte, header Header) *mbc3 {
	m := &mbc3{rom: rom, romBank: 1}
	if header.RAMBanks > 0 {
		m.ram = make([][0x2000]byte, header.RAMBanks)
	}
	return m
}

func (m *mbc3) Read(addr uint16) uint8 {
	switch {
	case addr < 0x4000:
		return m.readROM(0, addr)
	case addr < 0x8000:
		return m.readROM(int(m.romBank), addr-0x4000)
	case addr >= 0xA000 && addr < 0xC000:
		if !m.ramEnabled {
			return 0xFF
		}
		if m.bankSelect >= 0x08 && m.bankSelect <= 0x0C {
			return m.rtc[m.bankSelect-0x08]
		}
		if int(m.bankSelect) < len(m.ram) {
			return m.ram[m.bankSelect][addr-0xA000]
		}
		return 0xFF
	}
	return 0xFF
}

func (m *mbc3) readROM(bank int, offset uint16) uint8 {
	idx := bank*0x4000 + int(offset)
	if idx < 0 || idx >= len(m.rom) {
		return 0xFF
	}
	return m.rom[idx]
}

func (m *mbc3) Write(addr uint16, value uint8) {
	switch {
	case addr < 0x2000:
		m.ramEnabled = value&0x0F == 0x0A
	case addr < 0x4000:
		bank := value & 0x7F
		if bank == 0 {
			bank = 1
		}
		m.romBank = bank
	case addr < 0x6000:
		m.bankSelect = value
	case addr < 0x8000:
		if m.latchState == 0x00 && value == 0x01 {
			// latch the (stubbed, always-zero) live clock into the
			// read-back registers
			m.rtc = [5]uint8{}
		}
		m.latchState = value
	case addr >= 0xA000 && addr < 0xC000:
		if !m.ramEnabled {
			return
		}
		if m.bankSelect >= 0x08 && m.bankSelect <= 0x0C {
			m.rtc[m.bankSelect-0x08] = value
			return
		}
		if int(m.bankSelect) < len(m.ram) {
			m.ram[m.bankSelect][addr-0xA000] = value
		}
	}
}

func (m *mbc3) SaveRAM() []byte {
	if len(m.ram) == 0 {
		return nil
	}
	out := make([]byte, 0, len(m.ram)*0x2000)
	for _, bank := range m.ram {
		out = append(out, bank[:]...)
	}
	return out
}

func (m *mbc3) LoadRAM(data []byte) {
	for i := range m.ram {
		start := i * 0x2000
		if start >= len(data) {
			break
		}
		copy(m.ram[i][:], data[start:])
	}
}
