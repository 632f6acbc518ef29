package mu51

// PSW bit masks, used when the program status word is read or written as a
// single byte through Direct(0xD0). The core keeps carry, auxiliary carry
// and overflow as separate fields day to day and only packs/unpacks them
// into this layout at the PSW address itself.
const (
	//ParityBit is a mask for the Parity bit in the PSW
	ParityBit uint8 = (0x01 << iota)

	//UserBit is a mask for the user-available bit in the PSW
	UserBit

	//OverFlowBit is a mask for the Overflow bit in the PSW
	OverFlowBit

	//RS0Bit is a mask for the lower bit of the register bank select in the PSW
	RS0Bit

	//RS1Bit is a mask for the upper bit of the register bank select in the PSW
	RS1Bit

	//FlagBit is a mask for the user available Flag bit in the PSW
	FlagBit

	//AuxCarryBit is a mask for the Auxiliary carry bit used in arithmetic instructions
	AuxCarryBit

	//CarryBit is a mask for the Carry bit used in arithmetic instructions
	CarryBit
)

// stackTop is the highest internal-RAM index the core will push into
// before declaring a stack overflow, per the specification's "stack_pointer
// >= 127" rule checked before a push/call actually writes.
const stackTop = 127

// CPU is the complete architectural state of one 8051 core plus a handle
// to its Memory collaborator. The zero value, aside from Mem, is a valid
// power-on reset state.
type CPU struct {
	Bank uint8 // 0..3, selects the active register-bank window in InternalData

	CarryFlag    uint8 // 0 or 1
	AuxCarryFlag uint8 // 0 or 1
	OverflowFlag uint8 // 0 or 1

	Accumulator uint8
	BReg        uint8

	StackPointer   uint8
	DataPointer    uint16
	ProgramCounter uint16

	Mem Memory
}

// New constructs a CPU with all architectural state zeroed, bound to mem.
func New(mem Memory) *CPU {
	return &CPU{Mem: mem}
}

// Registers is a read-only snapshot of the architectural register file,
// useful to callers (tests, a debugger, the demonstration CLI) that want
// to inspect state without reaching into CPU's exported fields directly.
type Registers struct {
	Bank                        uint8
	Carry, AuxCarry, Overflow   uint8
	Accumulator, B              uint8
	StackPointer                uint8
	DataPointer, ProgramCounter uint16
}

// Registers returns a snapshot of the current register file.
func (c *CPU) Registers() Registers {
	return Registers{
		Bank:           c.Bank,
		Carry:          c.CarryFlag,
		AuxCarry:       c.AuxCarryFlag,
		Overflow:       c.OverflowFlag,
		Accumulator:    c.Accumulator,
		B:              c.BReg,
		StackPointer:   c.StackPointer,
		DataPointer:    c.DataPointer,
		ProgramCounter: c.ProgramCounter,
	}
}

// bankBase returns the internal-RAM offset of R0 in the currently selected
// register bank.
func (c *CPU) bankBase() uint8 {
	return c.Bank << 3
}

// psw packs the three tracked flags plus the bank-select bits into a
// single Program Status Word byte, the representation Direct(0xD0) exposes
// to instructions that address the PSW as a whole.
func (c *CPU) psw() uint8 {
	var p uint8
	if c.CarryFlag != 0 {
		p |= CarryBit
	}
	if c.AuxCarryFlag != 0 {
		p |= AuxCarryBit
	}
	if c.OverflowFlag != 0 {
		p |= OverFlowBit
	}
	p |= (c.Bank & 0x03) << 3
	return p
}

// setPSW unpacks a Program Status Word byte back into the tracked flags
// and the active register bank.
func (c *CPU) setPSW(p uint8) {
	c.CarryFlag = boolToFlag(p&CarryBit != 0)
	c.AuxCarryFlag = boolToFlag(p&AuxCarryBit != 0)
	c.OverflowFlag = boolToFlag(p&OverFlowBit != 0)
	c.Bank = (p >> 3) & 0x03
}

func boolToFlag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// pushByte writes data at the next stack slot, pre-incrementing the stack
// pointer first, and reports a *StackOverflowError if there is no room.
func (c *CPU) pushByte(data uint8) error {
	if c.StackPointer >= stackTop {
		return &StackOverflowError{StackPointer: c.StackPointer}
	}
	c.StackPointer++
	return c.Mem.WriteMemory(InternalAddr(c.StackPointer), data)
}

// popByte reads the byte at the current stack pointer, then
// post-decrements it.
func (c *CPU) popByte() (uint8, error) {
	v, err := c.Mem.ReadMemory(InternalAddr(c.StackPointer))
	if err != nil {
		return 0, err
	}
	c.StackPointer--
	return v, nil
}

// pushReturnAddress pushes a 16 bit return address low-byte-first, then
// high-byte, matching LCALL/ACALL and the specification's push order
// (testable property 5 requires RET to be this push's exact mirror).
func (c *CPU) pushReturnAddress(addr uint16) error {
	if c.StackPointer >= stackTop-1 {
		return &StackOverflowError{StackPointer: c.StackPointer}
	}
	if err := c.pushByte(uint8(addr)); err != nil {
		return err
	}
	return c.pushByte(uint8(addr >> 8))
}

// popReturnAddress pops a 16 bit return address high-byte first, then
// low-byte: the exact mirror of pushReturnAddress.
func (c *CPU) popReturnAddress() (uint16, error) {
	hi, err := c.popByte()
	if err != nil {
		return 0, err
	}
	lo, err := c.popByte()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}
