package mu51

// load reads the byte named by mode, following the 8051 memory map
// described in the specification's operand resolver table.
func (c *CPU) load(mode AddressingMode) (uint8, error) {
	switch mode.kind {
	case modeImmediate:
		return mode.value, nil

	case modeRegister:
		switch mode.reg {
		case A:
			return c.Accumulator, nil
		case C:
			return c.CarryFlag & 1, nil
		default:
			if !isBankRegister(mode.reg) {
				return 0, &UnsupportedModeError{Mode: mode, Op: "load"}
			}
			return c.Mem.ReadMemory(InternalAddr(c.bankBase() + uint8(mode.reg)))
		}

	case modeDirect:
		return c.loadDirect(mode.value)

	case modeIndirect:
		if !isIndirectBaseRegister(mode.reg) {
			return 0, &UnsupportedModeError{Mode: mode, Op: "load"}
		}
		ptr, err := c.Mem.ReadMemory(InternalAddr(c.bankBase() + uint8(mode.reg)))
		if err != nil {
			return 0, err
		}
		return c.Mem.ReadMemory(InternalAddr(ptr))

	case modeIndirectExternal:
		addr, err := c.externalIndirectAddress(mode.reg)
		if err != nil {
			return 0, err
		}
		return c.Mem.ReadMemory(ExternalAddr(addr))

	case modeIndirectCode:
		addr, err := c.codeIndirectAddress(mode.reg)
		if err != nil {
			return 0, err
		}
		return c.Mem.ReadMemory(CodeAddr(addr))

	case modeBit:
		return c.loadBit(mode.value)

	case modeNotBit:
		v, err := c.loadBit(mode.value)
		if err != nil {
			return 0, err
		}
		return 1 - v, nil
	}
	return 0, &UnsupportedModeError{Mode: mode, Op: "load"}
}

// store writes data to the location named by mode. Immediate, IndirectCode
// and NotBit are load-only and report *UnsupportedModeError.
func (c *CPU) store(mode AddressingMode, data uint8) error {
	switch mode.kind {
	case modeRegister:
		switch mode.reg {
		case A:
			c.Accumulator = data
			return nil
		case C:
			c.CarryFlag = data & 1
			return nil
		default:
			if !isBankRegister(mode.reg) {
				return &UnsupportedModeError{Mode: mode, Op: "store"}
			}
			return c.Mem.WriteMemory(InternalAddr(c.bankBase()+uint8(mode.reg)), data)
		}

	case modeDirect:
		return c.storeDirect(mode.value, data)

	case modeIndirect:
		if !isIndirectBaseRegister(mode.reg) {
			return &UnsupportedModeError{Mode: mode, Op: "store"}
		}
		ptr, err := c.Mem.ReadMemory(InternalAddr(c.bankBase() + uint8(mode.reg)))
		if err != nil {
			return err
		}
		return c.Mem.WriteMemory(InternalAddr(ptr), data)

	case modeIndirectExternal:
		addr, err := c.externalIndirectAddress(mode.reg)
		if err != nil {
			return err
		}
		return c.Mem.WriteMemory(ExternalAddr(addr), data)

	case modeBit:
		return c.storeBit(mode.value, data)
	}
	return &UnsupportedModeError{Mode: mode, Op: "store"}
}

func isBankRegister(r Register) bool {
	return r >= R0 && r <= R7
}

// isIndirectBaseRegister reports whether r is one of the two registers the
// 8051 permits as an indirect-addressing base (@R0/@R1); any other
// register used this way is an UnsupportedMode error.
func isIndirectBaseRegister(r Register) bool {
	return r == R0 || r == R1
}

func (c *CPU) externalIndirectAddress(r Register) (uint16, error) {
	if r == DPTR {
		return c.DataPointer, nil
	}
	if !isIndirectBaseRegister(r) {
		return 0, &UnsupportedModeError{Mode: IndirectExternal(r), Op: "load"}
	}
	ptr, err := c.Mem.ReadMemory(InternalAddr(c.bankBase() + uint8(r)))
	if err != nil {
		return 0, err
	}
	return uint16(ptr), nil
}

func (c *CPU) codeIndirectAddress(r Register) (uint16, error) {
	switch r {
	case DPTR:
		return c.DataPointer + uint16(c.Accumulator), nil
	case PC:
		return c.ProgramCounter + uint16(c.Accumulator) + 1, nil
	default:
		return 0, &UnsupportedModeError{Mode: IndirectCode(r), Op: "load"}
	}
}

// loadDirect implements the Direct(a) load rules, including the SFR
// addresses with dedicated architectural state backing them.
func (c *CPU) loadDirect(addr uint8) (uint8, error) {
	switch {
	case addr < 0x80:
		return c.Mem.ReadMemory(InternalAddr(addr))
	case addr == 0x81:
		return c.StackPointer, nil
	case addr == 0x82:
		return uint8(c.DataPointer), nil
	case addr == 0x83:
		return uint8(c.DataPointer >> 8), nil
	case addr == 0xD0:
		return c.psw(), nil
	case addr == 0xE0:
		return c.Accumulator, nil
	case addr == 0xF0:
		return c.BReg, nil
	default:
		return c.Mem.ReadMemory(SFRAddr(addr))
	}
}

// storeDirect implements the Direct(a) store rules, the symmetric dual of
// loadDirect.
func (c *CPU) storeDirect(addr, data uint8) error {
	switch {
	case addr < 0x80:
		return c.Mem.WriteMemory(InternalAddr(addr), data)
	case addr == 0x81:
		c.StackPointer = data
		return nil
	case addr == 0x82:
		c.DataPointer = (c.DataPointer & 0xFF00) | uint16(data)
		return nil
	case addr == 0x83:
		c.DataPointer = (c.DataPointer & 0x00FF) | uint16(data)<<8
		return nil
	case addr == 0xD0:
		c.setPSW(data)
		return nil
	case addr == 0xE0:
		c.Accumulator = data
		return nil
	case addr == 0xF0:
		c.BReg = data
		return nil
	default:
		return c.Mem.WriteMemory(SFRAddr(addr), data)
	}
}

// loadBit implements the Bit(b) load rules: the bit-addressable internal
// RAM overlay, the accumulator/B-register overlays, and the SFR overlay
// delegated to the Memory collaborator.
func (c *CPU) loadBit(bit uint8) (uint8, error) {
	switch {
	case bit < 0x80:
		b, err := c.Mem.ReadMemory(InternalAddr(0x20 + bit>>3))
		if err != nil {
			return 0, err
		}
		return (b >> (bit & 7)) & 1, nil
	case bit >= 0xE0 && bit <= 0xE7:
		return (c.Accumulator >> (bit & 7)) & 1, nil
	case bit >= 0xF0 && bit <= 0xF7:
		return (c.BReg >> (bit & 7)) & 1, nil
	default:
		v, err := c.Mem.ReadMemory(BitAddr(bit))
		if err != nil {
			return 0, err
		}
		return v & 1, nil
	}
}

// storeBit implements the Bit(b) store rules: a nonzero data argument sets
// the bit, zero clears it.
func (c *CPU) storeBit(bit, data uint8) error {
	set := data != 0
	switch {
	case bit < 0x80:
		byteAddr := InternalAddr(0x20 + bit>>3)
		b, err := c.Mem.ReadMemory(byteAddr)
		if err != nil {
			return err
		}
		mask := uint8(1) << (bit & 7)
		if set {
			b |= mask
		} else {
			b &^= mask
		}
		return c.Mem.WriteMemory(byteAddr, b)
	case bit >= 0xE0 && bit <= 0xE7:
		mask := uint8(1) << (bit & 7)
		if set {
			c.Accumulator |= mask
		} else {
			c.Accumulator &^= mask
		}
		return nil
	case bit >= 0xF0 && bit <= 0xF7:
		mask := uint8(1) << (bit & 7)
		if set {
			c.BReg |= mask
		} else {
			c.BReg &^= mask
		}
		return nil
	default:
		var v uint8
		if set {
			v = 1
		}
		return c.Mem.WriteMemory(BitAddr(bit), v)
	}
}
