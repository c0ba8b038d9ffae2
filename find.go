package binsearch

import "github.com/tecnickcom/binsearch/kernel"

// Row-strided entry points over big-endian keys. Each searches the mapped
// file's adjacent blocks of sorted binary data: blklen is the record
// length in bytes, blkpos the offset of the key inside each record, and
// [first, last] the inclusive window of item numbers to consider. The
// find calls return the item number if found or (last + 1) if not, plus
// the narrowed first and last positions.

// FindFirstUint8 searches for the first occurrence of an 8 bit unsigned
// integer, which must be sorted in ascending order.
func (m *Mapping) FindFirstUint8(blklen, blkpos, first, last uint64, search uint8) (uint64, uint64, uint64) {
	return kernel.FindFirst[uint8, kernel.BE[uint8]](m.file.Data, blklen, blkpos, first, last, search)
}

// FindFirstUint16 searches for the first occurrence of a 16 bit unsigned
// big-endian integer, which must be sorted in ascending order.
func (m *Mapping) FindFirstUint16(blklen, blkpos, first, last uint64, search uint16) (uint64, uint64, uint64) {
	return kernel.FindFirst[uint16, kernel.BE[uint16]](m.file.Data, blklen, blkpos, first, last, search)
}

// FindFirstUint32 searches for the first occurrence of a 32 bit unsigned
// big-endian integer, which must be sorted in ascending order.
func (m *Mapping) FindFirstUint32(blklen, blkpos, first, last uint64, search uint32) (uint64, uint64, uint64) {
	return kernel.FindFirst[uint32, kernel.BE[uint32]](m.file.Data, blklen, blkpos, first, last, search)
}

// FindFirstUint64 searches for the first occurrence of a 64 bit unsigned
// big-endian integer, which must be sorted in ascending order.
func (m *Mapping) FindFirstUint64(blklen, blkpos, first, last uint64, search uint64) (uint64, uint64, uint64) {
	return kernel.FindFirst[uint64, kernel.BE[uint64]](m.file.Data, blklen, blkpos, first, last, search)
}

// FindLastUint8 searches for the last occurrence of an 8 bit unsigned
// integer, which must be sorted in ascending order.
func (m *Mapping) FindLastUint8(blklen, blkpos, first, last uint64, search uint8) (uint64, uint64, uint64) {
	return kernel.FindLast[uint8, kernel.BE[uint8]](m.file.Data, blklen, blkpos, first, last, search)
}

// FindLastUint16 searches for the last occurrence of a 16 bit unsigned
// big-endian integer, which must be sorted in ascending order.
func (m *Mapping) FindLastUint16(blklen, blkpos, first, last uint64, search uint16) (uint64, uint64, uint64) {
	return kernel.FindLast[uint16, kernel.BE[uint16]](m.file.Data, blklen, blkpos, first, last, search)
}

// FindLastUint32 searches for the last occurrence of a 32 bit unsigned
// big-endian integer, which must be sorted in ascending order.
func (m *Mapping) FindLastUint32(blklen, blkpos, first, last uint64, search uint32) (uint64, uint64, uint64) {
	return kernel.FindLast[uint32, kernel.BE[uint32]](m.file.Data, blklen, blkpos, first, last, search)
}

// FindLastUint64 searches for the last occurrence of a 64 bit unsigned
// big-endian integer, which must be sorted in ascending order.
func (m *Mapping) FindLastUint64(blklen, blkpos, first, last uint64, search uint64) (uint64, uint64, uint64) {
	return kernel.FindLast[uint64, kernel.BE[uint64]](m.file.Data, blklen, blkpos, first, last, search)
}

// The Sub variants compare only the MSB-relative inclusive bit range
// [bitstart, bitend] of each key; the masked values must be sorted in
// ascending order.

// FindFirstSubUint8 searches for the first occurrence of a bit range of an
// 8 bit unsigned integer.
func (m *Mapping) FindFirstSubUint8(blklen, blkpos uint64, bitstart, bitend uint8, first, last uint64, search uint8) (uint64, uint64, uint64) {
	return kernel.FindFirstSub[uint8, kernel.BE[uint8]](m.file.Data, blklen, blkpos, bitstart, bitend, first, last, search)
}

// FindFirstSubUint16 searches for the first occurrence of a bit range of a
// 16 bit unsigned big-endian integer.
func (m *Mapping) FindFirstSubUint16(blklen, blkpos uint64, bitstart, bitend uint8, first, last uint64, search uint16) (uint64, uint64, uint64) {
	return kernel.FindFirstSub[uint16, kernel.BE[uint16]](m.file.Data, blklen, blkpos, bitstart, bitend, first, last, search)
}

// FindFirstSubUint32 searches for the first occurrence of a bit range of a
// 32 bit unsigned big-endian integer.
func (m *Mapping) FindFirstSubUint32(blklen, blkpos uint64, bitstart, bitend uint8, first, last uint64, search uint32) (uint64, uint64, uint64) {
	return kernel.FindFirstSub[uint32, kernel.BE[uint32]](m.file.Data, blklen, blkpos, bitstart, bitend, first, last, search)
}

// FindFirstSubUint64 searches for the first occurrence of a bit range of a
// 64 bit unsigned big-endian integer.
func (m *Mapping) FindFirstSubUint64(blklen, blkpos uint64, bitstart, bitend uint8, first, last uint64, search uint64) (uint64, uint64, uint64) {
	return kernel.FindFirstSub[uint64, kernel.BE[uint64]](m.file.Data, blklen, blkpos, bitstart, bitend, first, last, search)
}

// FindLastSubUint8 searches for the last occurrence of a bit range of an
// 8 bit unsigned integer.
func (m *Mapping) FindLastSubUint8(blklen, blkpos uint64, bitstart, bitend uint8, first, last uint64, search uint8) (uint64, uint64, uint64) {
	return kernel.FindLastSub[uint8, kernel.BE[uint8]](m.file.Data, blklen, blkpos, bitstart, bitend, first, last, search)
}

// FindLastSubUint16 searches for the last occurrence of a bit range of a
// 16 bit unsigned big-endian integer.
func (m *Mapping) FindLastSubUint16(blklen, blkpos uint64, bitstart, bitend uint8, first, last uint64, search uint16) (uint64, uint64, uint64) {
	return kernel.FindLastSub[uint16, kernel.BE[uint16]](m.file.Data, blklen, blkpos, bitstart, bitend, first, last, search)
}

// FindLastSubUint32 searches for the last occurrence of a bit range of a
// 32 bit unsigned big-endian integer.
func (m *Mapping) FindLastSubUint32(blklen, blkpos uint64, bitstart, bitend uint8, first, last uint64, search uint32) (uint64, uint64, uint64) {
	return kernel.FindLastSub[uint32, kernel.BE[uint32]](m.file.Data, blklen, blkpos, bitstart, bitend, first, last, search)
}

// FindLastSubUint64 searches for the last occurrence of a bit range of a
// 64 bit unsigned big-endian integer.
func (m *Mapping) FindLastSubUint64(blklen, blkpos uint64, bitstart, bitend uint8, first, last uint64, search uint64) (uint64, uint64, uint64) {
	return kernel.FindLastSub[uint64, kernel.BE[uint64]](m.file.Data, blklen, blkpos, bitstart, bitend, first, last, search)
}
