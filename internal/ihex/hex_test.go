package ihex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBlankIsError(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoEOF)
}

func TestParseJustEOF(t *testing.T) {
	img, err := Parse(strings.NewReader(":00000001FF\n"))
	require.NoError(t, err)
	assert.Empty(t, img.Segments)
}

func TestParseDataRecord(t *testing.T) {
	// ":03000000AABBCCCC" -- 3 bytes AA BB CC at offset 0x0000
	src := ":03000000AABBCCCC\n:00000001FF\n"
	img, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, img.Segments, 1)
	assert.Equal(t, uint32(0), img.Segments[0].Offset)
	assert.Equal(t, []byte{0xAA, 0xBB, 0xCC}, img.Segments[0].Data)
}

func TestParseRejectsBadChecksum(t *testing.T) {
	src := ":03000000AABBCC00\n:00000001FF\n"
	_, err := Parse(strings.NewReader(src))
	var perr ParseError
	require.ErrorAs(t, err, &perr)
	assert.ErrorIs(t, perr.Err, ErrChecksum)
}

func TestParseRejectsOverlap(t *testing.T) {
	src := ":02000000AABB99\n:02000100445564\n:00000001FF\n"
	_, err := Parse(strings.NewReader(src))
	assert.ErrorIs(t, err, ErrSegmentOverlap)
}

func TestFlattenInto(t *testing.T) {
	src := ":03000200AABBCCCA\n:00000001FF\n"
	img, err := Parse(strings.NewReader(src))
	require.NoError(t, err)

	dst := make([]byte, 8)
	require.NoError(t, img.FlattenInto(dst))
	assert.Equal(t, []byte{0, 0, 0xAA, 0xBB, 0xCC, 0, 0, 0}, dst)
}

func TestFlattenIntoRejectsOverrun(t *testing.T) {
	src := ":03000600AABBCCC6\n:00000001FF\n"
	img, err := Parse(strings.NewReader(src))
	require.NoError(t, err)

	err = img.FlattenInto(make([]byte, 4))
	assert.Error(t, err)
}
