// Package mu51 implements the decode-execute core of an 8051 (MCS-51)
// compatible processor. It decodes one opcode at a time from a caller
// supplied code image, resolves operands across the 8051's four address
// spaces, and mutates an architectural register file accordingly.
//
// The package owns no memory of its own beyond the register file: all
// bytes it reads or writes pass through the Memory interface, so a caller
// is free to back the core with a flat array, a sparse map, or something
// that simulates real peripherals.
package mu51

import "fmt"

// Space identifies one of the 8051's four independently addressed memory
// regions plus the bit-addressable overlay.
type Space uint8

const (
	// Code is the 64 KiB program ROM. The core never writes to it.
	Code Space = iota
	// ExternalData is the 64 KiB external data space (XRAM), reached via MOVX.
	ExternalData
	// InternalData is the 256 byte internal RAM. The lower 128 bytes are
	// directly addressable; the upper 128 are reachable only by indirect
	// addressing on 8052-class parts.
	InternalData
	// SpecialFunctionRegister is the 128 byte SFR page, overlapping the
	// upper half of the direct internal-RAM address range.
	SpecialFunctionRegister
	// Bit is a single bit addressed by its 8051 bit number. 0x00-0x7F
	// overlay internal RAM bytes 0x20-0x2F; 0x80-0xFF overlay
	// bit-addressable SFRs.
	Bit
)

func (s Space) String() string {
	switch s {
	case Code:
		return "code"
	case ExternalData:
		return "external-data"
	case InternalData:
		return "internal-data"
	case SpecialFunctionRegister:
		return "sfr"
	case Bit:
		return "bit"
	default:
		return fmt.Sprintf("space(%d)", uint8(s))
	}
}

// Address is a tagged address into one of the 8051's memory spaces. Offset
// holds the address within that space; for Code and ExternalData the full
// 16 bits are significant, for InternalData/SpecialFunctionRegister/Bit
// only the low 8 bits are.
type Address struct {
	Space  Space
	Offset uint16
}

// CodeAddr builds an Address into program ROM.
func CodeAddr(off uint16) Address { return Address{Space: Code, Offset: off} }

// ExternalAddr builds an Address into external data memory (XRAM).
func ExternalAddr(off uint16) Address { return Address{Space: ExternalData, Offset: off} }

// InternalAddr builds an Address into internal RAM.
func InternalAddr(off uint8) Address { return Address{Space: InternalData, Offset: uint16(off)} }

// SFRAddr builds an Address into the special function register page.
func SFRAddr(off uint8) Address {
	return Address{Space: SpecialFunctionRegister, Offset: uint16(off)}
}

// BitAddr builds an Address to a single bit by its 8051 bit number.
func BitAddr(off uint8) Address { return Address{Space: Bit, Offset: uint16(off)} }

func (a Address) String() string {
	return fmt.Sprintf("%s:0x%02X", a.Space, a.Offset)
}

// Memory is the one external collaborator the core depends on. An
// implementation backs the four address spaces described by Space and is
// expected to support sequential, single-threaded access from one CPU at
// a time; the core never issues overlapping operations.
type Memory interface {
	// ReadMemory resolves addr to a byte, failing with a *BadAddressError
	// when the space/offset is not backed.
	ReadMemory(addr Address) (uint8, error)
	// WriteMemory persists data at addr, failing with a *BadAddressError
	// when the space/offset is not backed or not writable. Writing Code is
	// undefined behavior left to the implementation (memory.Flat rejects it
	// with a *BadAddressError).
	WriteMemory(addr Address, data uint8) error
}
