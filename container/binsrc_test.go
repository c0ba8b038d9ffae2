package container

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBinsrc(t *testing.T) {
	file := buildBinsrcFixture()
	l, err := Parse(file, []uint8{4, 8})
	require.NoError(t, err)

	require.Equal(t, uint64(40), l.DataOffset)
	require.Equal(t, uint64(132), l.DataLength)
	require.Equal(t, uint64(11), l.NRows)
	require.Equal(t, 2, l.NCols())
	require.Equal(t, []uint8{4, 8}, l.ColBytes)
	require.Equal(t, []uint64{40, 84}, l.ColOffsets)
}

func TestParseBinsrcWidthMismatch(t *testing.T) {
	file := buildBinsrcFixture()

	// Wrong column count.
	_, err := Parse(file, []uint8{4})
	require.ErrorIs(t, err, ErrWidthMismatch)
	var wm *WidthMismatchError
	require.ErrorAs(t, err, &wm)
	require.Equal(t, -1, wm.Col)

	// Empty widths: binsrc does not describe its own columns.
	_, err = Parse(file, nil)
	require.ErrorIs(t, err, ErrWidthMismatch)

	// Unsupported width.
	_, err = Parse(file, []uint8{4, 3})
	require.ErrorIs(t, err, ErrWidthMismatch)
}

func TestParseBinsrcBadHeader(t *testing.T) {
	file := buildBinsrcFixture()

	// Truncated prologue.
	_, err := Parse(file[:12], []uint8{4, 8})
	require.ErrorIs(t, err, ErrBadContainer)

	// Data offset inside the prologue.
	bad := append([]byte(nil), file...)
	p32(bad, 8, 12)
	_, err = Parse(bad, []uint8{4, 8})
	require.ErrorIs(t, err, ErrBadContainer)

	// No columns.
	bad = append([]byte(nil), file...)
	bad[16] = 0
	_, err = Parse(bad, nil)
	require.ErrorIs(t, err, ErrBadContainer)

	// Row count pushing the data block past the end of the file.
	bad = append([]byte(nil), file...)
	p32(bad, 12, 1000)
	_, err = Parse(bad, []uint8{4, 8})
	require.ErrorIs(t, err, ErrBadContainer)
}
