package mu51

// Decode reads one instruction from code memory starting at pc. It fetches
// the opcode byte and however many immediate bytes that opcode requires
// (zero to two more), and returns the decoded Instruction. Unknown opcodes
// report a *DecodeError and the returned length is meaningless.
func Decode(mem Memory, pc uint16) (Instruction, error) {
	op, err := mem.ReadMemory(CodeAddr(pc))
	if err != nil {
		return Instruction{}, err
	}

	// arg reads the nth immediate byte following the opcode, fetched
	// lazily so single-byte instructions never touch code memory they
	// don't need.
	arg := func(n uint16) (uint8, error) {
		return mem.ReadMemory(CodeAddr(pc + n))
	}

	switch {
	case op == 0x00: // NOP
		return Instruction{Op: NOP, Length: 1}, nil

	case op&0x1F == 0x01: // AJMP addr11
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: AJMP, Addr11: ajmpAddr11(op, a1), Length: 2}, nil

	case op == 0x02: // LJMP addr16
		hi, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		lo, err := arg(2)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: LJMP, Addr16: be16(hi, lo), Length: 3}, nil

	case op == 0x03:
		return Instruction{Op: RR, Dst: RegMode(A), Length: 1}, nil

	case op == 0x04:
		return Instruction{Op: INC, Dst: RegMode(A), Length: 1}, nil

	case op == 0x05:
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: INC, Dst: Direct(a1), Length: 2}, nil

	case op == 0x06:
		return Instruction{Op: INC, Dst: Indirect(R0), Length: 1}, nil

	case op == 0x07:
		return Instruction{Op: INC, Dst: Indirect(R1), Length: 1}, nil

	case op&0xF8 == 0x08: // INC Rn
		return Instruction{Op: INC, Dst: RegMode(regLow3(op)), Length: 1}, nil

	case op == 0x10: // JBC bit,rel
		bit, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		rel, err := arg(2)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: JBC, Dst: BitMode(bit), Rel: int8(rel), Length: 3}, nil

	case op&0x1F == 0x11: // ACALL addr11
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: ACALL, Addr11: ajmpAddr11(op, a1), Length: 2}, nil

	case op == 0x12: // LCALL addr16
		hi, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		lo, err := arg(2)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: LCALL, Addr16: be16(hi, lo), Length: 3}, nil

	case op == 0x13:
		return Instruction{Op: RRC, Dst: RegMode(A), Length: 1}, nil

	case op == 0x14:
		return Instruction{Op: DEC, Dst: RegMode(A), Length: 1}, nil

	case op == 0x15:
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: DEC, Dst: Direct(a1), Length: 2}, nil

	case op == 0x16:
		return Instruction{Op: DEC, Dst: Indirect(R0), Length: 1}, nil

	case op == 0x17:
		return Instruction{Op: DEC, Dst: Indirect(R1), Length: 1}, nil

	case op&0xF8 == 0x18: // DEC Rn
		return Instruction{Op: DEC, Dst: RegMode(regLow3(op)), Length: 1}, nil

	case op == 0x20: // JB bit,rel
		bit, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		rel, err := arg(2)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: JB, Dst: BitMode(bit), Rel: int8(rel), Length: 3}, nil

	case op == 0x22:
		return Instruction{Op: RET, Length: 1}, nil

	case op == 0x23:
		return Instruction{Op: RL, Dst: RegMode(A), Length: 1}, nil

	case op == 0x24:
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: ADD, Dst: RegMode(A), Src: Immediate(a1), Length: 2}, nil

	case op == 0x25:
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: ADD, Dst: RegMode(A), Src: Direct(a1), Length: 2}, nil

	case op == 0x26:
		return Instruction{Op: ADD, Dst: RegMode(A), Src: Indirect(R0), Length: 1}, nil

	case op == 0x27:
		return Instruction{Op: ADD, Dst: RegMode(A), Src: Indirect(R1), Length: 1}, nil

	case op&0xF8 == 0x28: // ADD A,Rn
		return Instruction{Op: ADD, Dst: RegMode(A), Src: RegMode(regLow3(op)), Length: 1}, nil

	case op == 0x30: // JNB bit,rel
		bit, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		rel, err := arg(2)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: JNB, Dst: BitMode(bit), Rel: int8(rel), Length: 3}, nil

	case op == 0x32:
		return Instruction{Op: RETI, Length: 1}, nil

	case op == 0x33:
		return Instruction{Op: RLC, Dst: RegMode(A), Length: 1}, nil

	case op == 0x34:
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: ADDC, Dst: RegMode(A), Src: Immediate(a1), Length: 2}, nil

	case op == 0x35:
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: ADDC, Dst: RegMode(A), Src: Direct(a1), Length: 2}, nil

	case op == 0x36:
		return Instruction{Op: ADDC, Dst: RegMode(A), Src: Indirect(R0), Length: 1}, nil

	case op == 0x37:
		return Instruction{Op: ADDC, Dst: RegMode(A), Src: Indirect(R1), Length: 1}, nil

	case op&0xF8 == 0x38: // ADDC A,Rn
		return Instruction{Op: ADDC, Dst: RegMode(A), Src: RegMode(regLow3(op)), Length: 1}, nil

	case op == 0x40: // JC rel
		rel, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: JC, Rel: int8(rel), Length: 2}, nil

	case op == 0x42:
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: ORL, Dst: Direct(a1), Src: RegMode(A), Length: 2}, nil

	case op == 0x43:
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		a2, err := arg(2)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: ORL, Dst: Direct(a1), Src: Immediate(a2), Length: 3}, nil

	case op == 0x44:
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: ORL, Dst: RegMode(A), Src: Immediate(a1), Length: 2}, nil

	case op == 0x45:
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: ORL, Dst: RegMode(A), Src: Direct(a1), Length: 2}, nil

	case op == 0x46:
		return Instruction{Op: ORL, Dst: RegMode(A), Src: Indirect(R0), Length: 1}, nil

	case op == 0x47:
		return Instruction{Op: ORL, Dst: RegMode(A), Src: Indirect(R1), Length: 1}, nil

	case op&0xF8 == 0x48: // ORL A,Rn
		return Instruction{Op: ORL, Dst: RegMode(A), Src: RegMode(regLow3(op)), Length: 1}, nil

	case op == 0x50: // JNC rel
		rel, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: JNC, Rel: int8(rel), Length: 2}, nil

	case op == 0x52:
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: ANL, Dst: Direct(a1), Src: RegMode(A), Length: 2}, nil

	case op == 0x53:
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		a2, err := arg(2)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: ANL, Dst: Direct(a1), Src: Immediate(a2), Length: 3}, nil

	case op == 0x54:
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: ANL, Dst: RegMode(A), Src: Immediate(a1), Length: 2}, nil

	case op == 0x55:
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: ANL, Dst: RegMode(A), Src: Direct(a1), Length: 2}, nil

	case op == 0x56:
		return Instruction{Op: ANL, Dst: RegMode(A), Src: Indirect(R0), Length: 1}, nil

	case op == 0x57:
		return Instruction{Op: ANL, Dst: RegMode(A), Src: Indirect(R1), Length: 1}, nil

	case op&0xF8 == 0x58: // ANL A,Rn
		return Instruction{Op: ANL, Dst: RegMode(A), Src: RegMode(regLow3(op)), Length: 1}, nil

	case op == 0x60: // JZ rel
		rel, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: JZ, Rel: int8(rel), Length: 2}, nil

	case op == 0x62:
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: XRL, Dst: Direct(a1), Src: RegMode(A), Length: 2}, nil

	case op == 0x63:
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		a2, err := arg(2)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: XRL, Dst: Direct(a1), Src: Immediate(a2), Length: 3}, nil

	case op == 0x64:
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: XRL, Dst: RegMode(A), Src: Immediate(a1), Length: 2}, nil

	case op == 0x65:
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: XRL, Dst: RegMode(A), Src: Direct(a1), Length: 2}, nil

	case op == 0x66:
		return Instruction{Op: XRL, Dst: RegMode(A), Src: Indirect(R0), Length: 1}, nil

	case op == 0x67:
		return Instruction{Op: XRL, Dst: RegMode(A), Src: Indirect(R1), Length: 1}, nil

	case op&0xF8 == 0x68: // XRL A,Rn
		return Instruction{Op: XRL, Dst: RegMode(A), Src: RegMode(regLow3(op)), Length: 1}, nil

	case op == 0x70: // JNZ rel
		rel, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: JNZ, Rel: int8(rel), Length: 2}, nil

	case op == 0x72: // ORL C,bit
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: ORL, Dst: RegMode(C), Src: BitMode(a1), Length: 2}, nil

	case op == 0x73: // JMP @A+DPTR
		return Instruction{Op: JMP, Src: IndirectCode(DPTR), Length: 1}, nil

	case op == 0x74:
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: MOV, Dst: RegMode(A), Src: Immediate(a1), Length: 2}, nil

	case op == 0x75:
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		a2, err := arg(2)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: MOV, Dst: Direct(a1), Src: Immediate(a2), Length: 3}, nil

	case op == 0x76:
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: MOV, Dst: Indirect(R0), Src: Immediate(a1), Length: 2}, nil

	case op == 0x77:
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: MOV, Dst: Indirect(R1), Src: Immediate(a1), Length: 2}, nil

	case op&0xF8 == 0x78: // MOV Rn,#data
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: MOV, Dst: RegMode(regLow3(op)), Src: Immediate(a1), Length: 2}, nil

	case op == 0x80: // SJMP rel
		rel, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: SJMP, Rel: int8(rel), Length: 2}, nil

	case op == 0x82: // ANL C,bit
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: ANL, Dst: RegMode(C), Src: BitMode(a1), Length: 2}, nil

	case op == 0x83: // MOVC A,@A+PC
		return Instruction{Op: MOVC, Dst: RegMode(A), Src: IndirectCode(PC), Length: 1}, nil

	case op == 0x84:
		return Instruction{Op: DIV, Length: 1}, nil

	case op == 0x85: // MOV direct,direct -- encoded source-address-first
		src, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		dst, err := arg(2)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: MOV, Dst: Direct(dst), Src: Direct(src), Length: 3}, nil

	case op == 0x86: // MOV direct,@R0
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: MOV, Dst: Direct(a1), Src: Indirect(R0), Length: 2}, nil

	case op == 0x87: // MOV direct,@R1
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: MOV, Dst: Direct(a1), Src: Indirect(R1), Length: 2}, nil

	case op&0xF8 == 0x88: // MOV direct,Rn
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: MOV, Dst: Direct(a1), Src: RegMode(regLow3(op)), Length: 2}, nil

	case op == 0x90: // MOV DPTR,#data16
		hi, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		lo, err := arg(2)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: LoadDptr, Addr16: be16(hi, lo), Length: 3}, nil

	case op == 0x92: // MOV bit,C
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: MOV, Dst: BitMode(a1), Src: RegMode(C), Length: 2}, nil

	case op == 0x93: // MOVC A,@A+DPTR
		return Instruction{Op: MOVC, Dst: RegMode(A), Src: IndirectCode(DPTR), Length: 1}, nil

	case op == 0x94:
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: SUBB, Dst: RegMode(A), Src: Immediate(a1), Length: 2}, nil

	case op == 0x95:
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: SUBB, Dst: RegMode(A), Src: Direct(a1), Length: 2}, nil

	case op == 0x96:
		return Instruction{Op: SUBB, Dst: RegMode(A), Src: Indirect(R0), Length: 1}, nil

	case op == 0x97:
		return Instruction{Op: SUBB, Dst: RegMode(A), Src: Indirect(R1), Length: 1}, nil

	case op&0xF8 == 0x98: // SUBB A,Rn
		return Instruction{Op: SUBB, Dst: RegMode(A), Src: RegMode(regLow3(op)), Length: 1}, nil

	case op == 0xA0: // ORL C,/bit
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: ORL, Dst: RegMode(C), Src: NotBitMode(a1), Length: 2}, nil

	case op == 0xA2: // MOV C,bit
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: MOV, Dst: RegMode(C), Src: BitMode(a1), Length: 2}, nil

	case op == 0xA3: // INC DPTR
		return Instruction{Op: INC, Dst: RegMode(DPTR), Length: 1}, nil

	case op == 0xA4:
		return Instruction{Op: MUL, Length: 1}, nil

	case op == 0xA5: // reserved opcode, never assigned
		return Instruction{}, &DecodeError{PC: pc, Opcode: op}

	case op == 0xA6: // MOV @R0,direct
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: MOV, Dst: Indirect(R0), Src: Direct(a1), Length: 2}, nil

	case op == 0xA7: // MOV @R1,direct
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: MOV, Dst: Indirect(R1), Src: Direct(a1), Length: 2}, nil

	case op&0xF8 == 0xA8: // MOV Rn,direct
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: MOV, Dst: RegMode(regLow3(op)), Src: Direct(a1), Length: 2}, nil

	case op == 0xB0: // ANL C,/bit
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: ANL, Dst: RegMode(C), Src: NotBitMode(a1), Length: 2}, nil

	case op == 0xB2: // CPL bit
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: CPL, Dst: BitMode(a1), Length: 2}, nil

	case op == 0xB3:
		return Instruction{Op: CPL, Dst: RegMode(C), Length: 1}, nil

	case op == 0xB4: // CJNE A,#data,rel
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		rel, err := arg(2)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: CJNE, Dst: RegMode(A), Src: Immediate(a1), Rel: int8(rel), Length: 3}, nil

	case op == 0xB5: // CJNE A,direct,rel
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		rel, err := arg(2)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: CJNE, Dst: RegMode(A), Src: Direct(a1), Rel: int8(rel), Length: 3}, nil

	case op == 0xB6: // CJNE @R0,#data,rel
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		rel, err := arg(2)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: CJNE, Dst: Indirect(R0), Src: Immediate(a1), Rel: int8(rel), Length: 3}, nil

	case op == 0xB7: // CJNE @R1,#data,rel
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		rel, err := arg(2)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: CJNE, Dst: Indirect(R1), Src: Immediate(a1), Rel: int8(rel), Length: 3}, nil

	case op&0xF8 == 0xB8: // CJNE Rn,#data,rel
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		rel, err := arg(2)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: CJNE, Dst: RegMode(regLow3(op)), Src: Immediate(a1), Rel: int8(rel), Length: 3}, nil

	case op == 0xC0: // PUSH direct
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: PUSH, Dst: Direct(a1), Length: 2}, nil

	case op == 0xC2: // CLR bit
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: CLR, Dst: BitMode(a1), Length: 2}, nil

	case op == 0xC3:
		return Instruction{Op: CLR, Dst: RegMode(C), Length: 1}, nil

	case op == 0xC4:
		return Instruction{Op: SWAP, Dst: RegMode(A), Length: 1}, nil

	case op == 0xC5:
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: XCH, Dst: RegMode(A), Src: Direct(a1), Length: 2}, nil

	case op == 0xC6:
		return Instruction{Op: XCH, Dst: RegMode(A), Src: Indirect(R0), Length: 1}, nil

	case op == 0xC7:
		return Instruction{Op: XCH, Dst: RegMode(A), Src: Indirect(R1), Length: 1}, nil

	case op&0xF8 == 0xC8: // XCH A,Rn
		return Instruction{Op: XCH, Dst: RegMode(A), Src: RegMode(regLow3(op)), Length: 1}, nil

	case op == 0xD0: // POP direct
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: POP, Dst: Direct(a1), Length: 2}, nil

	case op == 0xD2: // SETB bit
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: SETB, Dst: BitMode(a1), Length: 2}, nil

	case op == 0xD3:
		return Instruction{Op: SETB, Dst: RegMode(C), Length: 1}, nil

	case op == 0xD4:
		return Instruction{Op: DA, Dst: RegMode(A), Length: 1}, nil

	case op == 0xD5: // DJNZ direct,rel
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		rel, err := arg(2)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: DJNZ, Dst: Direct(a1), Rel: int8(rel), Length: 3}, nil

	case op == 0xD6:
		return Instruction{Op: XCHD, Dst: RegMode(A), Src: Indirect(R0), Length: 1}, nil

	case op == 0xD7:
		return Instruction{Op: XCHD, Dst: RegMode(A), Src: Indirect(R1), Length: 1}, nil

	case op&0xF8 == 0xD8: // DJNZ Rn,rel
		rel, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: DJNZ, Dst: RegMode(regLow3(op)), Rel: int8(rel), Length: 2}, nil

	case op == 0xE0: // MOVX A,@DPTR
		return Instruction{Op: MOVX, Dst: RegMode(A), Src: IndirectExternal(DPTR), Length: 1}, nil

	case op == 0xE2:
		return Instruction{Op: MOVX, Dst: RegMode(A), Src: IndirectExternal(R0), Length: 1}, nil

	case op == 0xE3:
		return Instruction{Op: MOVX, Dst: RegMode(A), Src: IndirectExternal(R1), Length: 1}, nil

	case op == 0xE4:
		return Instruction{Op: CLR, Dst: RegMode(A), Length: 1}, nil

	case op == 0xE5:
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: MOV, Dst: RegMode(A), Src: Direct(a1), Length: 2}, nil

	case op == 0xE6:
		return Instruction{Op: MOV, Dst: RegMode(A), Src: Indirect(R0), Length: 1}, nil

	case op == 0xE7:
		return Instruction{Op: MOV, Dst: RegMode(A), Src: Indirect(R1), Length: 1}, nil

	case op&0xF8 == 0xE8: // MOV A,Rn
		return Instruction{Op: MOV, Dst: RegMode(A), Src: RegMode(regLow3(op)), Length: 1}, nil

	case op == 0xF0: // MOVX @DPTR,A
		return Instruction{Op: MOVX, Dst: IndirectExternal(DPTR), Src: RegMode(A), Length: 1}, nil

	case op == 0xF2:
		return Instruction{Op: MOVX, Dst: IndirectExternal(R0), Src: RegMode(A), Length: 1}, nil

	case op == 0xF3:
		return Instruction{Op: MOVX, Dst: IndirectExternal(R1), Src: RegMode(A), Length: 1}, nil

	case op == 0xF4:
		return Instruction{Op: CPL, Dst: RegMode(A), Length: 1}, nil

	case op == 0xF5:
		a1, err := arg(1)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: MOV, Dst: Direct(a1), Src: RegMode(A), Length: 2}, nil

	case op == 0xF6:
		return Instruction{Op: MOV, Dst: Indirect(R0), Src: RegMode(A), Length: 1}, nil

	case op == 0xF7:
		return Instruction{Op: MOV, Dst: Indirect(R1), Src: RegMode(A), Length: 1}, nil

	case op&0xF8 == 0xF8: // MOV Rn,A
		return Instruction{Op: MOV, Dst: RegMode(regLow3(op)), Src: RegMode(A), Length: 1}, nil

	default:
		return Instruction{}, &DecodeError{PC: pc, Opcode: op}
	}
}
