package mmapfile

import "encoding/binary"

// The readers below reconstruct fixed-width unsigned integers from the
// mapped bytes at an absolute offset, with no alignment assumption.
// The caller guarantees off + width <= Size.

// Uint8 reads the byte at off.
func (f *File) Uint8(off uint64) uint8 {
	return f.Data[off]
}

// Uint16BE reads 2 bytes at off, most-significant byte first.
func (f *File) Uint16BE(off uint64) uint16 {
	return binary.BigEndian.Uint16(f.Data[off:])
}

// Uint32BE reads 4 bytes at off, most-significant byte first.
func (f *File) Uint32BE(off uint64) uint32 {
	return binary.BigEndian.Uint32(f.Data[off:])
}

// Uint64BE reads 8 bytes at off, most-significant byte first.
func (f *File) Uint64BE(off uint64) uint64 {
	return binary.BigEndian.Uint64(f.Data[off:])
}

// Uint16LE reads 2 bytes at off, least-significant byte first.
func (f *File) Uint16LE(off uint64) uint16 {
	return binary.LittleEndian.Uint16(f.Data[off:])
}

// Uint32LE reads 4 bytes at off, least-significant byte first.
func (f *File) Uint32LE(off uint64) uint32 {
	return binary.LittleEndian.Uint32(f.Data[off:])
}

// Uint64LE reads 8 bytes at off, least-significant byte first.
func (f *File) Uint64LE(off uint64) uint64 {
	return binary.LittleEndian.Uint64(f.Data[off:])
}
