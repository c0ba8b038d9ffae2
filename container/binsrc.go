package container

import (
	"bytes"
	"fmt"

	bin "github.com/gagliardetto/binary"
)

// The native binsrc container is a 20-byte little-endian prologue followed
// by the column buffers laid out contiguously:
//
//	magic       u64   0x63736E6962524448 ("HDRbinsc")
//	data_offset u32   absolute offset of the data block
//	n_rows      u32
//	n_cols      u8
//	reserved    u8[3]
//
// The stored data_offset governs where the data block begins; writers may
// align it past the prologue. Column widths are not recorded in the file
// and must be supplied by the caller.

const binsrcHeaderLen = 20

// binsrcMagic is the little-endian byte image of 0x63736E6962524448.
var binsrcMagic = []byte("HDRbinsc")

func isBinsrc(data []byte) bool {
	return len(data) >= len(binsrcMagic) && bytes.Equal(data[:len(binsrcMagic)], binsrcMagic)
}

func parseBinsrc(data []byte, ctbytes []uint8) (*Layout, error) {
	if len(data) < binsrcHeaderLen {
		return nil, fmt.Errorf("%w: truncated binsrc prologue", ErrBadContainer)
	}
	dec := bin.NewBorshDecoder(data[:binsrcHeaderLen])
	if _, err := dec.ReadUint64(bin.LE); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadContainer, err)
	}
	doffset, err := dec.ReadUint32(bin.LE)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadContainer, err)
	}
	nrows, err := dec.ReadUint32(bin.LE)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadContainer, err)
	}
	ncols, err := dec.ReadUint8()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadContainer, err)
	}
	if ncols == 0 {
		return nil, fmt.Errorf("%w: binsrc prologue declares no columns", ErrBadContainer)
	}
	if uint64(doffset) < binsrcHeaderLen {
		return nil, fmt.Errorf("%w: data offset %d overlaps the binsrc prologue", ErrBadContainer, doffset)
	}
	if len(ctbytes) != int(ncols) {
		return nil, &WidthMismatchError{Col: -1, Want: uint64(ncols), Got: uint64(len(ctbytes))}
	}
	offsets := make([]uint64, len(ctbytes))
	off := uint64(doffset)
	for i, w := range ctbytes {
		if !validWidth(w) {
			return nil, &WidthMismatchError{Col: i, Want: 8, Got: uint64(w)}
		}
		offsets[i] = off
		off += uint64(nrows) * uint64(w)
	}
	return &Layout{
		DataOffset: uint64(doffset),
		DataLength: off - uint64(doffset),
		NRows:      uint64(nrows),
		ColBytes:   append([]uint8(nil), ctbytes...),
		ColOffsets: offsets,
	}, nil
}
