package mu51

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is matching, one per error kind in the
// specification. Concrete error values wrap one of these.
var (
	// ErrDecode means Step encountered a byte at the program counter that
	// does not correspond to any known 8051 opcode. The program counter is
	// left unchanged.
	ErrDecode = errors.New("mu51: unknown opcode")

	// ErrBadAddress means the Memory collaborator rejected an address.
	ErrBadAddress = errors.New("mu51: bad address")

	// ErrUnsupportedMode means the operand resolver was asked to load or
	// store using a mode the 8051 does not permit in that position (for
	// example storing to an Immediate, or indirecting through a register
	// other than R0/R1).
	ErrUnsupportedMode = errors.New("mu51: unsupported addressing mode")

	// ErrStackOverflow means a push or call was attempted with no room
	// left below stackTop (127), the top of the lower half of internal RAM.
	ErrStackOverflow = errors.New("mu51: stack overflow")
)

// DecodeError reports an unrecognized opcode byte at a given address.
type DecodeError struct {
	PC     uint16
	Opcode uint8
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("mu51: unknown opcode 0x%02X at 0x%04X", e.Opcode, e.PC)
}

func (e *DecodeError) Unwrap() error { return ErrDecode }

// BadAddressError reports a Memory access that the collaborator refused.
type BadAddressError struct {
	Addr Address
	Op   string // "read" or "write"
	Err  error  // underlying reason, if the collaborator gave one
}

func (e *BadAddressError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("mu51: %s %s: %s", e.Op, e.Addr, e.Err)
	}
	return fmt.Sprintf("mu51: %s %s: bad address", e.Op, e.Addr)
}

func (e *BadAddressError) Unwrap() error { return ErrBadAddress }

// UnsupportedModeError reports a resolver operation attempted against a
// mode that does not support it.
type UnsupportedModeError struct {
	Mode AddressingMode
	Op   string // "load" or "store"
}

func (e *UnsupportedModeError) Error() string {
	return fmt.Sprintf("mu51: %s unsupported for mode %s", e.Op, e.Mode)
}

func (e *UnsupportedModeError) Unwrap() error { return ErrUnsupportedMode }

// StackOverflowError reports a push or call that would write past
// stackTop (127) in internal RAM.
type StackOverflowError struct {
	StackPointer uint8
}

func (e *StackOverflowError) Error() string {
	return fmt.Sprintf("mu51: stack overflow at sp=0x%02X", e.StackPointer)
}

func (e *StackOverflowError) Unwrap() error { return ErrStackOverflow }
