package mu51

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAJMP(t *testing.T) {
	m := newFakeMemory()
	m.loadCode(0x0800, 0x01, 0x23)

	inst, err := Decode(m, 0x0800)
	require.NoError(t, err)
	assert.Equal(t, AJMP, inst.Op)
	assert.Equal(t, uint16(0x23), inst.Addr11)
	assert.EqualValues(t, 2, inst.Length)
}

func TestDecodeLJMP(t *testing.T) {
	m := newFakeMemory()
	m.loadCode(0, 0x02, 0x12, 0x34)

	inst, err := Decode(m, 0)
	require.NoError(t, err)
	assert.Equal(t, LJMP, inst.Op)
	assert.Equal(t, uint16(0x1234), inst.Addr16)
	assert.EqualValues(t, 3, inst.Length)
}

func TestDecodeMovDirectDirectByteOrder(t *testing.T) {
	// MOV direct,direct encodes the source byte before the destination
	// byte, the inverse of assembly operand order.
	m := newFakeMemory()
	m.loadCode(0, 0x85, 0xAA, 0xBB)

	inst, err := Decode(m, 0)
	require.NoError(t, err)
	assert.Equal(t, MOV, inst.Op)
	assert.Equal(t, Direct(0xAA), inst.Src)
	assert.Equal(t, Direct(0xBB), inst.Dst)
}

func TestDecodeMovDirectIndirectDirection(t *testing.T) {
	// MOV direct,@Ri (0x86/0x87) and MOV @Ri,direct (0xA6/0xA7) are
	// mirror-image opcodes; mixing up their Dst/Src assignment silently
	// reverses which side is read and which is written.
	m := newFakeMemory()
	m.loadCode(0, 0x86, 0x30) // MOV 0x30,@R0
	inst, err := Decode(m, 0)
	require.NoError(t, err)
	assert.Equal(t, MOV, inst.Op)
	assert.Equal(t, Direct(0x30), inst.Dst)
	assert.Equal(t, Indirect(R0), inst.Src)

	m.loadCode(2, 0xA6, 0x30) // MOV @R0,0x30
	inst, err = Decode(m, 2)
	require.NoError(t, err)
	assert.Equal(t, MOV, inst.Op)
	assert.Equal(t, Indirect(R0), inst.Dst)
	assert.Equal(t, Direct(0x30), inst.Src)
}

func TestDecodeRnFamily(t *testing.T) {
	m := newFakeMemory()
	m.loadCode(0, 0x2D) // ADD A,R5
	inst, err := Decode(m, 0)
	require.NoError(t, err)
	assert.Equal(t, ADD, inst.Op)
	assert.Equal(t, RegMode(R5), inst.Src)
}

func TestDecodeUnknownOpcode(t *testing.T) {
	m := newFakeMemory()
	m.loadCode(0, 0xA5)
	_, err := Decode(m, 0)
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, uint8(0xA5), decodeErr.Opcode)
}

func TestDecodeMOVCAndLoadDptr(t *testing.T) {
	m := newFakeMemory()
	m.loadCode(0, 0x90, 0x04, 0x00) // MOV DPTR,#0x0400
	inst, err := Decode(m, 0)
	require.NoError(t, err)
	assert.Equal(t, LoadDptr, inst.Op)
	assert.Equal(t, uint16(0x0400), inst.Addr16)

	m.loadCode(3, 0x93) // MOVC A,@A+DPTR
	inst, err = Decode(m, 3)
	require.NoError(t, err)
	assert.Equal(t, MOVC, inst.Op)
	assert.Equal(t, RegMode(A), inst.Dst)
}
