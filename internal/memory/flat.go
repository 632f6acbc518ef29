// Package memory provides a reference implementation of mu51.Memory backed
// by flat byte slices, one per address space, plus an optional hook table
// for special function registers that need to observe writes (a UART
// transmit register, a timer reload value, and so on).
package memory

import (
	"fmt"

	"github.com/teknoman117/p80c550-emulator/mu51"
)

// WriteHook observes a write to a special function register before it is
// stored. Returning an error aborts the write.
type WriteHook func(data uint8) error

// Flat backs all four of the 8051's address spaces with plain byte slices.
// Internal RAM is 256 bytes so indirect addressing can reach the upper
// half; direct addressing only ever presents the lower 128 through
// mu51's resolver.
type Flat struct {
	code     []byte
	external []byte
	internal [256]byte
	sfr      [128]byte

	hooks map[uint8]WriteHook
}

// NewFlat allocates a Flat with the given code and external-data space
// sizes. Both must be no larger than 64 KiB.
func NewFlat(codeSize, externalSize int) *Flat {
	return &Flat{
		code:     make([]byte, codeSize),
		external: make([]byte, externalSize),
		hooks:    make(map[uint8]WriteHook),
	}
}

// LoadCode copies image into code memory starting at offset 0, failing if
// it does not fit.
func (f *Flat) LoadCode(image []byte) error {
	if len(image) > len(f.code) {
		return fmt.Errorf("memory: image of %d bytes exceeds %d byte code space", len(image), len(f.code))
	}
	copy(f.code, image)
	return nil
}

// SetWriteHook registers a callback invoked whenever direct address addr
// (0x80-0xFF) is written through the SFR space. Only one hook may be
// registered per address; registering again replaces it.
func (f *Flat) SetWriteHook(addr uint8, hook WriteHook) {
	f.hooks[addr] = hook
}

// ReadMemory implements mu51.Memory.
func (f *Flat) ReadMemory(addr mu51.Address) (uint8, error) {
	switch addr.Space {
	case mu51.Code:
		return f.readSlice(f.code, addr)
	case mu51.ExternalData:
		return f.readSlice(f.external, addr)
	case mu51.InternalData:
		if addr.Offset >= uint16(len(f.internal)) {
			return 0, &mu51.BadAddressError{Addr: addr, Op: "read"}
		}
		return f.internal[addr.Offset], nil
	case mu51.SpecialFunctionRegister:
		off := addr.Offset & 0x7F
		return f.sfr[off], nil
	case mu51.Bit:
		return f.readBit(addr.Offset)
	default:
		return 0, &mu51.BadAddressError{Addr: addr, Op: "read"}
	}
}

// WriteMemory implements mu51.Memory.
func (f *Flat) WriteMemory(addr mu51.Address, data uint8) error {
	switch addr.Space {
	case mu51.Code:
		return &mu51.BadAddressError{Addr: addr, Op: "write", Err: fmt.Errorf("memory: code space is read-only")}
	case mu51.ExternalData:
		return f.writeSlice(f.external, addr, data)
	case mu51.InternalData:
		if addr.Offset >= uint16(len(f.internal)) {
			return &mu51.BadAddressError{Addr: addr, Op: "write"}
		}
		f.internal[addr.Offset] = data
		return nil
	case mu51.SpecialFunctionRegister:
		sfrAddr := uint8(addr.Offset&0x7F) | 0x80
		if hook, ok := f.hooks[sfrAddr]; ok {
			if err := hook(data); err != nil {
				return err
			}
		}
		f.sfr[addr.Offset&0x7F] = data
		return nil
	case mu51.Bit:
		return f.writeBit(addr.Offset, data)
	default:
		return &mu51.BadAddressError{Addr: addr, Op: "write"}
	}
}

func (f *Flat) readSlice(s []byte, addr mu51.Address) (uint8, error) {
	if int(addr.Offset) >= len(s) {
		return 0, &mu51.BadAddressError{Addr: addr, Op: "read"}
	}
	return s[addr.Offset], nil
}

func (f *Flat) writeSlice(s []byte, addr mu51.Address, data uint8) error {
	if int(addr.Offset) >= len(s) {
		return &mu51.BadAddressError{Addr: addr, Op: "write"}
	}
	s[addr.Offset] = data
	return nil
}

// readBit/writeBit implement the SFR-overlay bit addresses (0x80-0xFF)
// that mu51's resolver delegates straight through to the collaborator;
// internal-RAM bit addresses and the A/B overlays are handled inside the
// CPU core itself and never reach here. Bit b is bit (b & 7) of the SFR
// byte at direct address (b & 0xF8); writes go through the SFR write path,
// so a write hook on that address observes them.
func (f *Flat) readBit(bit uint16) (uint8, error) {
	if bit < 0x80 || bit > 0xFF {
		return 0, &mu51.BadAddressError{Addr: mu51.BitAddr(uint8(bit)), Op: "read"}
	}
	return (f.sfr[bit&0x78] >> (bit % 8)) & 1, nil
}

func (f *Flat) writeBit(bit uint16, data uint8) error {
	if bit < 0x80 || bit > 0xFF {
		return &mu51.BadAddressError{Addr: mu51.BitAddr(uint8(bit)), Op: "write"}
	}
	b := f.sfr[bit&0x78]
	mask := uint8(1) << (bit % 8)
	if data != 0 {
		b |= mask
	} else {
		b &^= mask
	}
	return f.WriteMemory(mu51.SFRAddr(uint8(bit&0xF8)), b)
}
