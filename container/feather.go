package container

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Feather v1 parsing. The file is framed by a 4-byte magic at both ends;
// the metadata flatbuffer sits before the trailing length word. Only the
// per-column buffer coordinates are read from the CTable:
// CTable{description, num_rows, columns, version, metadata},
// Column{name, values, metadata_type, metadata, user_metadata},
// PrimitiveArray{type, encoding, offset, length, null_count, total_bytes}.
//
// Columns carrying nulls are rejected: a validity bitmap in front of the
// values would break the dense sorted-array contract the kernels rely on.

var featherMagic = []byte("FEA1")

func isFeather(data []byte) bool {
	return len(data) >= len(featherMagic) && bytes.Equal(data[:len(featherMagic)], featherMagic)
}

func parseFeather(data []byte, ctbytes []uint8) (*Layout, error) {
	size := uint64(len(data))
	if size < 12 || !bytes.Equal(data[size-4:], featherMagic) {
		return nil, fmt.Errorf("%w: missing trailing feather magic", ErrBadContainer)
	}
	metaLen := uint64(binary.LittleEndian.Uint32(data[size-8:]))
	if metaLen == 0 || metaLen > size-8-uint64(len(featherMagic)) {
		return nil, fmt.Errorf("%w: feather metadata length %d out of range", ErrBadContainer, metaLen)
	}
	metaStart := size - 8 - metaLen
	ctable, ok := fbRoot(data[metaStart : size-8])
	if !ok {
		return nil, fmt.Errorf("%w: unreadable feather metadata", ErrBadContainer)
	}
	nrows := ctable.int64Field(1, -1)
	if nrows <= 0 {
		return nil, fmt.Errorf("%w: feather table declares %d rows", ErrBadContainer, nrows)
	}
	cols, ncols, ok := ctable.vectorField(2, 4)
	if !ok || ncols == 0 {
		return nil, fmt.Errorf("%w: feather table lists no columns", ErrBadContainer)
	}
	if ncols > MaxCols {
		return nil, fmt.Errorf("%w: %d columns exceed the %d column limit", ErrBadContainer, ncols, MaxCols)
	}
	if len(ctbytes) != 0 && len(ctbytes) != int(ncols) {
		return nil, &WidthMismatchError{Col: -1, Want: uint64(ncols), Got: uint64(len(ctbytes))}
	}

	colBytes := make([]uint8, ncols)
	colOffsets := make([]uint64, ncols)
	end := uint64(0)
	for i := uint32(0); i < ncols; i++ {
		col, ok := ctable.vectorTable(cols, i)
		if !ok {
			return nil, fmt.Errorf("%w: unreadable feather column %d", ErrBadContainer, i)
		}
		values, ok := col.tableField(1)
		if !ok {
			return nil, fmt.Errorf("%w: feather column %d has no values array", ErrBadContainer, i)
		}
		offset := values.int64Field(2, -1)
		length := values.int64Field(3, -1)
		nulls := values.int64Field(4, 0)
		total := values.int64Field(5, -1)
		if offset < 0 || length < 0 || total < 0 {
			return nil, fmt.Errorf("%w: feather column %d has incomplete buffer coordinates", ErrBadContainer, i)
		}
		if nulls != 0 {
			return nil, fmt.Errorf("%w: feather column %d carries %d nulls", ErrBadContainer, i, nulls)
		}
		if length != nrows {
			return nil, fmt.Errorf("%w: feather column %d holds %d values for %d rows", ErrBadContainer, i, length, nrows)
		}
		if uint64(offset)+uint64(total) > metaStart {
			return nil, fmt.Errorf("%w: feather column %d overlaps the metadata", ErrBadContainer, i)
		}
		if i > 0 && uint64(offset) < end {
			return nil, fmt.Errorf("%w: feather columns out of order", ErrBadContainer)
		}
		got := uint64(total) / uint64(nrows)
		if got == 0 || uint64(total)%uint64(nrows) != 0 || !validWidth(uint8(got)) {
			return nil, fmt.Errorf("%w: feather column %d holds %d bytes for %d rows", ErrBadContainer, i, total, nrows)
		}
		if len(ctbytes) != 0 && uint64(ctbytes[i]) != got {
			return nil, &WidthMismatchError{Col: int(i), Want: got, Got: uint64(ctbytes[i])}
		}
		colBytes[i] = uint8(got)
		colOffsets[i] = uint64(offset)
		end = uint64(offset) + uint64(total)
	}
	return &Layout{
		DataOffset: colOffsets[0],
		DataLength: end - colOffsets[0],
		NRows:      uint64(nrows),
		ColBytes:   colBytes,
		ColOffsets: colOffsets,
	}, nil
}
