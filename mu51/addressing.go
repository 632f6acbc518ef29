package mu51

import "fmt"

// Register names one of the architectural registers. R0..R7 are storage
// aliases into the current bank of internal RAM; A, C, PC and DPTR are
// architectural state fields on CPU itself.
type Register uint8

const (
	R0 Register = iota
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	A
	C
	PC
	DPTR
)

func (r Register) String() string {
	names := [...]string{"R0", "R1", "R2", "R3", "R4", "R5", "R6", "R7", "A", "C", "PC", "DPTR"}
	if int(r) < len(names) {
		return names[r]
	}
	return fmt.Sprintf("reg(%d)", uint8(r))
}

// modeKind tags which of the 8051's operand forms an AddressingMode holds.
type modeKind uint8

const (
	modeImmediate modeKind = iota
	modeRegister
	modeDirect
	modeIndirect
	modeIndirectExternal
	modeIndirectCode
	modeBit
	modeNotBit
)

// AddressingMode is a closed sum of the 8051's operand forms. Construct one
// with the Immediate/RegMode/Direct/... helpers below rather than building
// the struct literal directly.
type AddressingMode struct {
	kind  modeKind
	reg   Register
	value uint8
}

// Immediate is a literal operand byte encoded in the instruction stream.
func Immediate(v uint8) AddressingMode { return AddressingMode{kind: modeImmediate, value: v} }

// RegMode names an architectural register operand (A, C, or R0..R7).
func RegMode(r Register) AddressingMode { return AddressingMode{kind: modeRegister, reg: r} }

// Direct addresses internal RAM or an SFR by its byte address.
func Direct(addr uint8) AddressingMode { return AddressingMode{kind: modeDirect, value: addr} }

// Indirect addresses internal RAM through @R0/@R1.
func Indirect(r Register) AddressingMode { return AddressingMode{kind: modeIndirect, reg: r} }

// IndirectExternal addresses XRAM through @R0/@R1/@DPTR.
func IndirectExternal(r Register) AddressingMode {
	return AddressingMode{kind: modeIndirectExternal, reg: r}
}

// IndirectCode addresses code space through @A+DPTR or @A+PC.
func IndirectCode(r Register) AddressingMode { return AddressingMode{kind: modeIndirectCode, reg: r} }

// BitMode addresses a single bit by its 8051 bit number.
func BitMode(bit uint8) AddressingMode { return AddressingMode{kind: modeBit, value: bit} }

// NotBitMode is the load-only 1's complement of a bit operand.
func NotBitMode(bit uint8) AddressingMode { return AddressingMode{kind: modeNotBit, value: bit} }

func (m AddressingMode) String() string {
	switch m.kind {
	case modeImmediate:
		return fmt.Sprintf("#0x%02X", m.value)
	case modeRegister:
		return m.reg.String()
	case modeDirect:
		return fmt.Sprintf("0x%02X", m.value)
	case modeIndirect:
		return fmt.Sprintf("@%s", m.reg)
	case modeIndirectExternal:
		return fmt.Sprintf("@%s(xram)", m.reg)
	case modeIndirectCode:
		return fmt.Sprintf("@A+%s", m.reg)
	case modeBit:
		return fmt.Sprintf("bit(0x%02X)", m.value)
	case modeNotBit:
		return fmt.Sprintf("/bit(0x%02X)", m.value)
	default:
		return "mode(?)"
	}
}
