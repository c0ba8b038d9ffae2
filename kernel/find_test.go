package kernel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// The fixture block holds 100 records of 20 bytes. Bytes 0..4 carry the
// record number as a big-endian uint32; bytes 4..12 carry a big-endian
// uint64 key whose high half doubles as the 32 bit key at offset 4. The
// 32 bit key 0x27F3 occurs at records 13 and 14 and nowhere else; the
// 64 bit key 0x27F35FB6E591 occurs at record 13 only.

const (
	recLen  = 20
	keyPos  = 4
	recRows = 100
)

func recHi(i int) uint32 {
	switch {
	case i == 13 || i == 14:
		return 0x27F3
	case i < 13:
		return uint32(i)
	default:
		return 0x10000 + uint32(i)
	}
}

func recLo(i int) uint32 {
	switch i {
	case 13:
		return 0x5FB6E591
	case 14:
		return 0x5FB6E592
	default:
		return uint32(i) * 0x10
	}
}

func recKey64(i int) uint64 {
	return uint64(recHi(i))<<32 | uint64(recLo(i))
}

func buildRecordBlock() []byte {
	data := make([]byte, recLen*recRows)
	for i := 0; i < recRows; i++ {
		off := uint64(recLen * i)
		putBE[uint32](data, off, uint32(i))
		putBE[uint64](data, off+keyPos, recKey64(i))
	}
	return data
}

func putBE[T Uint](b []byte, off uint64, v T) {
	w := width[T]()
	for i := w; i > 0; i-- {
		b[off+i-1] = byte(v)
		v >>= 8
	}
}

func putLE[T Uint](b []byte, off uint64, v T) {
	w := width[T]()
	for i := uint64(0); i < w; i++ {
		b[off+i] = byte(v)
		v >>= 8
	}
}

func TestFindFirstUint32Duplicates(t *testing.T) {
	data := buildRecordBlock()

	pos, _, _ := FindFirst[uint32, BE[uint32]](data, recLen, keyPos, 0, recRows-1, 0x27F3)
	require.Equal(t, uint64(13), pos)

	pos, _, _ = FindLast[uint32, BE[uint32]](data, recLen, keyPos, 0, recRows-1, 0x27F3)
	require.Equal(t, uint64(14), pos)
}

func TestFindFirstUint32SubWindows(t *testing.T) {
	data := buildRecordBlock()

	pos, _, _ := FindFirst[uint32, BE[uint32]](data, recLen, keyPos, 13, recRows-1, 0x27F3)
	require.Equal(t, uint64(13), pos)

	pos, _, _ = FindFirst[uint32, BE[uint32]](data, recLen, keyPos, 14, recRows-1, 0x27F3)
	require.Equal(t, uint64(14), pos)
}

func TestFindFirstUint32Absent(t *testing.T) {
	data := buildRecordBlock()

	pos, _, _ := FindFirst[uint32, BE[uint32]](data, recLen, keyPos, 0, recRows-1, 0xF00027F3)
	require.Equal(t, uint64(recRows), pos)

	pos, _, _ = FindLast[uint32, BE[uint32]](data, recLen, keyPos, 0, recRows-1, 0xF00027F3)
	require.Equal(t, uint64(recRows), pos)
}

func TestFindFirstUint32AtZero(t *testing.T) {
	data := buildRecordBlock()

	// The first record matches, terminating through the middle == 0 path
	// with first still at 0 and last narrowed.
	pos, first, last := FindFirst[uint32, BE[uint32]](data, recLen, keyPos, 0, recRows-1, 0)
	require.Equal(t, uint64(0), pos)
	require.Equal(t, uint64(0), first)
	require.LessOrEqual(t, last, uint64(recRows-1))
}

func TestHasNextUint32Run(t *testing.T) {
	data := buildRecordBlock()

	pos, _, _ := FindFirst[uint32, BE[uint32]](data, recLen, keyPos, 0, recRows-1, 0x27F3)
	require.Equal(t, uint64(13), pos)

	ok, pos := HasNext[uint32, BE[uint32]](data, recLen, keyPos, pos, recRows-1, 0x27F3)
	require.True(t, ok)
	require.Equal(t, uint64(14), pos)

	ok, pos = HasNext[uint32, BE[uint32]](data, recLen, keyPos, pos, recRows-1, 0x27F3)
	require.False(t, ok)
	require.Equal(t, uint64(14), pos)
}

func TestHasPrevUint32Run(t *testing.T) {
	data := buildRecordBlock()

	pos, _, _ := FindLast[uint32, BE[uint32]](data, recLen, keyPos, 0, recRows-1, 0x27F3)
	require.Equal(t, uint64(14), pos)

	ok, pos := HasPrev[uint32, BE[uint32]](data, recLen, keyPos, 0, pos, 0x27F3)
	require.True(t, ok)
	require.Equal(t, uint64(13), pos)

	ok, pos = HasPrev[uint32, BE[uint32]](data, recLen, keyPos, 0, pos, 0x27F3)
	require.False(t, ok)
	require.Equal(t, uint64(13), pos)
}

func TestFindUint64SingleMatch(t *testing.T) {
	data := buildRecordBlock()

	first, nf, nl := FindFirst[uint64, BE[uint64]](data, recLen, keyPos, 0, recRows-1, 0x27F35FB6E591)
	require.Equal(t, uint64(13), first)

	last, _, _ := FindLast[uint64, BE[uint64]](data, recLen, keyPos, 0, recRows-1, 0x27F35FB6E591)
	require.Equal(t, uint64(13), last)

	// A unique match leaves a window whose FindLast resolves to the same
	// item without further probing.
	resumed, _, _ := FindLast[uint64, BE[uint64]](data, recLen, keyPos, nf, nl, 0x27F35FB6E591)
	require.Equal(t, uint64(13), resumed)
}

func TestFindEmptyWindow(t *testing.T) {
	data := buildRecordBlock()

	pos, first, last := FindFirst[uint32, BE[uint32]](data, recLen, keyPos, 5, 4, 0x27F3)
	require.Equal(t, uint64(5), pos)
	require.Equal(t, uint64(5), first)
	require.Equal(t, uint64(4), last)

	pos, _, _ = FindLast[uint32, BE[uint32]](data, recLen, keyPos, 5, 4, 0x27F3)
	require.Equal(t, uint64(5), pos)

	ok, _ := HasNext[uint32, BE[uint32]](data, recLen, keyPos, 5, 4, 0x27F3)
	require.False(t, ok)
}

func TestFindSingletonWindow(t *testing.T) {
	data := buildRecordBlock()

	pos, _, _ := FindFirst[uint32, BE[uint32]](data, recLen, keyPos, 13, 13, 0x27F3)
	require.Equal(t, uint64(13), pos)

	pos, _, _ = FindLast[uint32, BE[uint32]](data, recLen, keyPos, 13, 13, 0x27F3)
	require.Equal(t, uint64(13), pos)

	pos, _, _ = FindFirst[uint32, BE[uint32]](data, recLen, keyPos, 13, 13, 0x27F4)
	require.Equal(t, uint64(14), pos)
}

func TestFindOutOfRangeValues(t *testing.T) {
	data := buildRecordBlock()

	// Smaller than every key in the window.
	pos, _, _ := FindFirst[uint32, BE[uint32]](data, recLen, keyPos, 1, recRows-1, 0)
	require.Equal(t, uint64(recRows), pos)

	// Larger than every key.
	pos, _, _ = FindLast[uint32, BE[uint32]](data, recLen, keyPos, 0, recRows-1, 0xFFFFFFFF)
	require.Equal(t, uint64(recRows), pos)
}

func TestFindNarrowedWindowResume(t *testing.T) {
	data := buildRecordBlock()

	// After FindFirst, the narrowed first bound never passes the first
	// match, so FindLast restarted from it over the rest of the original
	// window lands on the same item as a full search.
	for _, hi := range []uint32{0, 5, 0x27F3, 0x10020, 0x10063, 0xDEAD} {
		pos, nf, _ := FindFirst[uint32, BE[uint32]](data, recLen, keyPos, 0, recRows-1, hi)
		want, _, _ := FindLast[uint32, BE[uint32]](data, recLen, keyPos, 0, recRows-1, hi)
		got, _, _ := FindLast[uint32, BE[uint32]](data, recLen, keyPos, nf, recRows-1, hi)
		require.Equal(t, want, got)
		if pos == recRows {
			require.Equal(t, want, pos, "miss must be reported by both ends")
		}
	}
}
