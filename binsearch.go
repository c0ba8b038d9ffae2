// Package binsearch provides fast lookups over large, immutable, columnar
// binary files sorted in ascending order.
//
// # Design
//
// A consumer memory-maps a file once with MmapBinFile and then issues
// point queries against it. Given a sorted fixed-width unsigned integer
// key column, or a contiguous bitfield within each record, the search
// entry points locate the first and last matching record by binary search
// in O(log n) probes, with zero allocations per query, reading the mapped
// bytes in the natural word endianness of the stored data.
//
// Three container layouts are recognised when a file is mapped: the
// native binsrc prologue, the Arrow IPC file format and Feather v1.
// Files with no recognised magic are treated as a bare data block whose
// column widths the caller declares. Parsing yields the Mapping value:
// the data block offset and length, the row count, and the byte width and
// absolute offset of every column.
//
// # Searching
//
// The row-strided entry points (FindFirstUint32 and friends) address
// records of blklen bytes with a big-endian key starting blkpos bytes
// into each record. The column entry points (ColFindFirstUint32 and
// friends) address one little-endian column of the mapping by number.
// The Sub variants compare only an MSB-relative bit range of each key,
// which must itself be stored in ascending order. Row-strided
// little-endian access, and any other combination, is available through
// the generic kernel package the named entry points are built on.
//
// A miss is reported as last+1, never as an error; the find entry points
// also return a narrowed [first, last] window. The first bound left by a
// FindFirst call can start the paired FindLast (with the original last),
// and the last bound left by a FindLast call can end the paired
// FindFirst; the narrowed window as a whole is normally empty. The
// kernels validate nothing on the
// hot path: windows, offsets and bit ranges are the caller's contract,
// established once from the validated Mapping fields.
//
// # Concurrency
//
// A Mapping is immutable after MmapBinFile returns and the kernels take
// their search window by value, so any number of goroutines may query
// the same Mapping concurrently. Close releases the mapping and the
// descriptor exactly once; a closed Mapping must not be queried.
//
// # Errors
//
// Failures surface only when a file is opened or closed: *mmapfile.OpenError
// and *mmapfile.CloseError for the mapping itself, ErrBadContainer for a
// recognised but inconsistent container, and ErrWidthMismatch (usually a
// *container.WidthMismatchError) when the declared column widths
// contradict the container metadata.
package binsearch

import (
	"fmt"

	"github.com/tecnickcom/binsearch/container"
	"github.com/tecnickcom/binsearch/mmapfile"
)

// Error kinds reported while establishing a Mapping.
var (
	ErrBadContainer  = container.ErrBadContainer
	ErrWidthMismatch = container.ErrWidthMismatch
)

// Mapping is a handle to a read-only memory-mapped columnar file and the
// layout metadata derived from its container. It is immutable after
// MmapBinFile and safe for concurrent readers.
type Mapping struct {
	file *mmapfile.File

	// Fd is the descriptor backing the mapping.
	Fd int
	// Size is the total number of mapped bytes.
	Size uint64
	// DOffset is the absolute byte offset where the sorted data block begins.
	DOffset uint64
	// DLength is the byte length of the data block.
	DLength uint64
	// NRows is the number of records in the data block.
	NRows uint64
	// NCols is the number of indexed columns.
	NCols uint8
	// CTBytes holds the byte width of each column.
	CTBytes []uint8
	// Index holds the absolute byte offset of the first element of each column.
	Index []uint64
}

// MmapBinFile maps the specified file in memory and parses its container
// to locate the sorted data block. ctbytes declares the per-column byte
// widths; it may be empty for containers that describe their own columns
// (Arrow, Feather) and is required for binsrc and raw files.
func MmapBinFile(file string, ctbytes []uint8) (*Mapping, error) {
	mf, err := mmapfile.Open(file)
	if err != nil {
		return nil, err
	}
	layout, err := container.Parse(mf.Data, ctbytes)
	if err != nil {
		mf.Close()
		return nil, fmt.Errorf("parse %s: %w", file, err)
	}
	return &Mapping{
		file:    mf,
		Fd:      mf.Fd(),
		Size:    mf.Size,
		DOffset: layout.DataOffset,
		DLength: layout.DataLength,
		NRows:   layout.NRows,
		NCols:   uint8(layout.NCols()),
		CTBytes: layout.ColBytes,
		Index:   layout.ColOffsets,
	}, nil
}

// Data exposes the mapped bytes for use with the generic kernel package.
// The slice is valid until Close.
func (m *Mapping) Data() []byte {
	return m.file.Data
}

// Close unmaps and closes the file. Closing an already-closed Mapping is
// a no-op; closing a Mapping that was never mapped is an error.
func (m *Mapping) Close() error {
	if m.file == nil {
		return &mmapfile.CloseError{Err: fmt.Errorf("not mapped")}
	}
	return m.file.Close()
}

// GetAddress returns the absolute file position of the key belonging to
// the given item: blklen*item + blkpos.
func GetAddress(blklen, blkpos, item uint64) uint64 {
	return blklen*item + blkpos
}
