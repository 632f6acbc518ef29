package mu51

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCPUIsZeroed(t *testing.T) {
	c := New(newFakeMemory())
	r := c.Registers()
	assert.Zero(t, r.Bank)
	assert.Zero(t, r.Accumulator)
	assert.Zero(t, r.ProgramCounter)
}

func TestPSWRoundTrip(t *testing.T) {
	c := New(newFakeMemory())
	c.CarryFlag = 1
	c.AuxCarryFlag = 1
	c.OverflowFlag = 1
	c.Bank = 2

	packed := c.psw()
	assert.NotZero(t, packed&CarryBit)
	assert.NotZero(t, packed&AuxCarryBit)
	assert.NotZero(t, packed&OverFlowBit)

	var restored CPU
	restored.setPSW(packed)
	assert.Equal(t, uint8(1), restored.CarryFlag)
	assert.Equal(t, uint8(1), restored.AuxCarryFlag)
	assert.Equal(t, uint8(1), restored.OverflowFlag)
	assert.Equal(t, uint8(2), restored.Bank)
}

func TestPushPopByteRoundTrip(t *testing.T) {
	c := New(newFakeMemory())
	c.StackPointer = 0x07

	require.NoError(t, c.pushByte(0x42))
	assert.Equal(t, uint8(0x08), c.StackPointer)

	v, err := c.popByte()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x42), v)
	assert.Equal(t, uint8(0x07), c.StackPointer)
}

func TestPushByteOverflow(t *testing.T) {
	c := New(newFakeMemory())
	c.StackPointer = stackTop

	err := c.pushByte(0x01)
	var overflow *StackOverflowError
	require.ErrorAs(t, err, &overflow)
}

// TestReturnAddressRoundTrip exercises property 5: LCALL then RET restores
// the program counter to the instruction following the LCALL, which
// requires push and pop to be exact mirrors of each other.
func TestReturnAddressRoundTrip(t *testing.T) {
	c := New(newFakeMemory())
	c.StackPointer = 0x20

	require.NoError(t, c.pushReturnAddress(0x1234))
	addr, err := c.popReturnAddress()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), addr)
	assert.Equal(t, uint8(0x20), c.StackPointer)
}

func TestBankBase(t *testing.T) {
	c := New(newFakeMemory())
	c.Bank = 3
	assert.Equal(t, uint8(24), c.bankBase())
}
