// Package container detects and parses the on-disk containers that hold a
// sorted columnar data block: the native binsrc prologue, the Arrow IPC
// file format, Feather v1, and bare raw blocks. Parsing yields a validated
// Layout describing where each column lives inside the mapping; it never
// copies data.
package container

import "fmt"

// Layout describes the sorted data block inside a mapped file.
type Layout struct {
	// DataOffset is the absolute byte offset of the data block.
	DataOffset uint64
	// DataLength is the byte length of the data block.
	DataLength uint64
	// NRows is the number of records in the data block.
	NRows uint64
	// ColBytes holds the byte width of each column.
	ColBytes []uint8
	// ColOffsets holds the absolute byte offset of the first element of
	// each column.
	ColOffsets []uint64
}

// NCols returns the number of indexed columns.
func (l *Layout) NCols() int {
	return len(l.ColBytes)
}

// MaxCols bounds the number of indexed columns in any container.
const MaxCols = 255

// Parse identifies the container held in data by its leading bytes and
// returns the validated layout of the sorted data block. ctbytes declares
// the per-column byte widths; it may be empty for containers that carry
// their own column metadata (Arrow, Feather) and is required for binsrc
// and raw blocks.
func Parse(data []byte, ctbytes []uint8) (*Layout, error) {
	var (
		l   *Layout
		err error
	)
	switch {
	case isBinsrc(data):
		l, err = parseBinsrc(data, ctbytes)
	case isArrowFile(data):
		l, err = parseArrow(data, ctbytes)
	case isFeather(data):
		l, err = parseFeather(data, ctbytes)
	default:
		l, err = parseRaw(data, ctbytes)
	}
	if err != nil {
		return nil, err
	}
	if err := l.validate(uint64(len(data))); err != nil {
		return nil, err
	}
	return l, nil
}

// parseRaw maps a file with no recognised magic as a bare concatenation of
// column buffers described entirely by ctbytes. Raw column widths are not
// restricted to the machine word sizes: a single "column" as wide as a
// whole record is how row-strided blocks without a container are mapped.
func parseRaw(data []byte, ctbytes []uint8) (*Layout, error) {
	if len(ctbytes) == 0 {
		return nil, &WidthMismatchError{Col: -1, Want: 1, Got: 0}
	}
	if len(ctbytes) > MaxCols {
		return nil, &WidthMismatchError{Col: -1, Want: MaxCols, Got: uint64(len(ctbytes))}
	}
	rowlen := uint64(0)
	for i, w := range ctbytes {
		if w == 0 {
			return nil, &WidthMismatchError{Col: i, Want: 1, Got: 0}
		}
		rowlen += uint64(w)
	}
	size := uint64(len(data))
	if size%rowlen != 0 {
		return nil, fmt.Errorf("%w: size %d is not a multiple of the %d-byte row", ErrBadContainer, size, rowlen)
	}
	nrows := size / rowlen
	offsets := make([]uint64, len(ctbytes))
	off := uint64(0)
	for i, w := range ctbytes {
		offsets[i] = off
		off += nrows * uint64(w)
	}
	return &Layout{
		DataOffset: 0,
		DataLength: size,
		NRows:      nrows,
		ColBytes:   append([]uint8(nil), ctbytes...),
		ColOffsets: offsets,
	}, nil
}

// validate enforces the containment invariants every layout must satisfy
// before it is handed to the search kernels.
func (l *Layout) validate(size uint64) error {
	if len(l.ColBytes) == 0 || len(l.ColBytes) != len(l.ColOffsets) {
		return fmt.Errorf("%w: inconsistent column metadata", ErrBadContainer)
	}
	if len(l.ColBytes) > MaxCols {
		return fmt.Errorf("%w: %d columns exceed the %d column limit", ErrBadContainer, len(l.ColBytes), MaxCols)
	}
	if l.DataOffset > size || l.DataLength > size-l.DataOffset {
		return fmt.Errorf("%w: data block [%d, %d) exceeds the %d-byte mapping", ErrBadContainer, l.DataOffset, l.DataOffset+l.DataLength, size)
	}
	end := l.DataOffset + l.DataLength
	for i, off := range l.ColOffsets {
		span := l.NRows * uint64(l.ColBytes[i])
		if off < l.DataOffset || off > end || span > end-off {
			return fmt.Errorf("%w: column %d [%d, %d) escapes the data block [%d, %d)", ErrBadContainer, i, off, off+span, l.DataOffset, end)
		}
	}
	return nil
}

// pad8 rounds n up to the next multiple of 8.
func pad8(n uint64) uint64 {
	return (n + 7) &^ 7
}

// validWidth reports whether w is a supported machine word size.
func validWidth(w uint8) bool {
	return w == 1 || w == 2 || w == 4 || w == 8
}
