package mu51

// fakeMemory is a minimal Memory implementation for unit tests: five plain
// maps, one per Space value, with no bounds checking beyond what the
// resolver itself enforces.
type fakeMemory struct {
	code     map[uint16]uint8
	external map[uint16]uint8
	internal map[uint16]uint8
	sfr      map[uint16]uint8
	bit      map[uint16]uint8
}

func newFakeMemory() *fakeMemory {
	return &fakeMemory{
		code:     make(map[uint16]uint8),
		external: make(map[uint16]uint8),
		internal: make(map[uint16]uint8),
		sfr:      make(map[uint16]uint8),
		bit:      make(map[uint16]uint8),
	}
}

func (m *fakeMemory) loadCode(base uint16, bytes ...uint8) {
	for i, b := range bytes {
		m.code[base+uint16(i)] = b
	}
}

func (m *fakeMemory) spaceFor(s Space) map[uint16]uint8 {
	switch s {
	case Code:
		return m.code
	case ExternalData:
		return m.external
	case InternalData:
		return m.internal
	case SpecialFunctionRegister:
		return m.sfr
	case Bit:
		return m.bit
	default:
		return nil
	}
}

func (m *fakeMemory) ReadMemory(addr Address) (uint8, error) {
	space := m.spaceFor(addr.Space)
	if space == nil {
		return 0, &BadAddressError{Addr: addr, Op: "read"}
	}
	return space[addr.Offset], nil
}

func (m *fakeMemory) WriteMemory(addr Address, data uint8) error {
	space := m.spaceFor(addr.Space)
	if space == nil {
		return &BadAddressError{Addr: addr, Op: "write"}
	}
	space[addr.Offset] = data
	return nil
}
