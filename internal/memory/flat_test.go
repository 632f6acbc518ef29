package memory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teknoman117/p80c550-emulator/mu51"
)

func TestFlatCodeRoundTripAndReadOnly(t *testing.T) {
	f := NewFlat(16, 16)
	require.NoError(t, f.LoadCode([]byte{0x01, 0x02, 0x03}))

	v, err := f.ReadMemory(mu51.CodeAddr(1))
	require.NoError(t, err)
	assert.Equal(t, uint8(0x02), v)

	err = f.WriteMemory(mu51.CodeAddr(0), 0xFF)
	var bad *mu51.BadAddressError
	assert.ErrorAs(t, err, &bad)
}

func TestFlatInternalAndExternalRoundTrip(t *testing.T) {
	f := NewFlat(4, 4)
	require.NoError(t, f.WriteMemory(mu51.InternalAddr(5), 0x42))
	v, err := f.ReadMemory(mu51.InternalAddr(5))
	require.NoError(t, err)
	assert.Equal(t, uint8(0x42), v)

	require.NoError(t, f.WriteMemory(mu51.ExternalAddr(2), 0x99))
	v, err = f.ReadMemory(mu51.ExternalAddr(2))
	require.NoError(t, err)
	assert.Equal(t, uint8(0x99), v)
}

func TestFlatOutOfRangeIsBadAddress(t *testing.T) {
	f := NewFlat(4, 4)
	_, err := f.ReadMemory(mu51.ExternalAddr(10))
	assert.ErrorIs(t, err, mu51.ErrBadAddress)
}

func TestFlatSFRWriteHook(t *testing.T) {
	f := NewFlat(4, 4)
	var observed uint8
	f.SetWriteHook(0x99, func(data uint8) error {
		observed = data
		return nil
	})

	require.NoError(t, f.WriteMemory(mu51.SFRAddr(0x99), 0x07))
	assert.Equal(t, uint8(0x07), observed)

	v, err := f.ReadMemory(mu51.SFRAddr(0x99))
	require.NoError(t, err)
	assert.Equal(t, uint8(0x07), v)
}

func TestFlatSFRWriteHookCanReject(t *testing.T) {
	f := NewFlat(4, 4)
	boom := errors.New("boom")
	f.SetWriteHook(0x98, func(data uint8) error { return boom })

	err := f.WriteMemory(mu51.SFRAddr(0x98), 0x01)
	assert.ErrorIs(t, err, boom)
}

func TestFlatBitOverlay(t *testing.T) {
	f := NewFlat(4, 4)
	require.NoError(t, f.WriteMemory(mu51.BitAddr(0x88), 1))
	v, err := f.ReadMemory(mu51.BitAddr(0x88))
	require.NoError(t, err)
	assert.Equal(t, uint8(1), v)

	require.NoError(t, f.WriteMemory(mu51.BitAddr(0x88), 0))
	v, err = f.ReadMemory(mu51.BitAddr(0x88))
	require.NoError(t, err)
	assert.Equal(t, uint8(0), v)
}

func TestFlatBitOverlayRejectsLowAddress(t *testing.T) {
	f := NewFlat(4, 4)
	_, err := f.ReadMemory(mu51.BitAddr(0x10))
	assert.Error(t, err)
}
