package binsearch

import "github.com/tecnickcom/binsearch/kernel"

// Column entry points. Each addresses one column of the mapping by
// number: a packed array of same-width little-endian values, as produced
// by Arrow and Feather writers on little-endian platforms. The column
// number must be below NCols and the column's element width must match
// the entry point; both are established once from the Mapping fields.

// col returns the mapped bytes starting at the first element of column c.
func (m *Mapping) col(c uint8) []byte {
	return m.file.Data[m.Index[c]:]
}

// ColFindFirstUint8 searches column c for the first occurrence of an
// 8 bit unsigned integer.
func (m *Mapping) ColFindFirstUint8(c uint8, first, last uint64, search uint8) (uint64, uint64, uint64) {
	return kernel.ColFindFirst[uint8, kernel.LE[uint8]](m.col(c), first, last, search)
}

// ColFindFirstUint16 searches column c for the first occurrence of a
// 16 bit unsigned little-endian integer.
func (m *Mapping) ColFindFirstUint16(c uint8, first, last uint64, search uint16) (uint64, uint64, uint64) {
	return kernel.ColFindFirst[uint16, kernel.LE[uint16]](m.col(c), first, last, search)
}

// ColFindFirstUint32 searches column c for the first occurrence of a
// 32 bit unsigned little-endian integer.
func (m *Mapping) ColFindFirstUint32(c uint8, first, last uint64, search uint32) (uint64, uint64, uint64) {
	return kernel.ColFindFirst[uint32, kernel.LE[uint32]](m.col(c), first, last, search)
}

// ColFindFirstUint64 searches column c for the first occurrence of a
// 64 bit unsigned little-endian integer.
func (m *Mapping) ColFindFirstUint64(c uint8, first, last uint64, search uint64) (uint64, uint64, uint64) {
	return kernel.ColFindFirst[uint64, kernel.LE[uint64]](m.col(c), first, last, search)
}

// ColFindLastUint8 searches column c for the last occurrence of an
// 8 bit unsigned integer.
func (m *Mapping) ColFindLastUint8(c uint8, first, last uint64, search uint8) (uint64, uint64, uint64) {
	return kernel.ColFindLast[uint8, kernel.LE[uint8]](m.col(c), first, last, search)
}

// ColFindLastUint16 searches column c for the last occurrence of a
// 16 bit unsigned little-endian integer.
func (m *Mapping) ColFindLastUint16(c uint8, first, last uint64, search uint16) (uint64, uint64, uint64) {
	return kernel.ColFindLast[uint16, kernel.LE[uint16]](m.col(c), first, last, search)
}

// ColFindLastUint32 searches column c for the last occurrence of a
// 32 bit unsigned little-endian integer.
func (m *Mapping) ColFindLastUint32(c uint8, first, last uint64, search uint32) (uint64, uint64, uint64) {
	return kernel.ColFindLast[uint32, kernel.LE[uint32]](m.col(c), first, last, search)
}

// ColFindLastUint64 searches column c for the last occurrence of a
// 64 bit unsigned little-endian integer.
func (m *Mapping) ColFindLastUint64(c uint8, first, last uint64, search uint64) (uint64, uint64, uint64) {
	return kernel.ColFindLast[uint64, kernel.LE[uint64]](m.col(c), first, last, search)
}

// ColHasNextUint8 checks if the element after pos in column c still
// matches search, advancing pos on a match.
func (m *Mapping) ColHasNextUint8(c uint8, pos, last uint64, search uint8) (bool, uint64) {
	return kernel.ColHasNext[uint8, kernel.LE[uint8]](m.col(c), pos, last, search)
}

// ColHasNextUint16 checks if the element after pos in column c still
// matches search, advancing pos on a match.
func (m *Mapping) ColHasNextUint16(c uint8, pos, last uint64, search uint16) (bool, uint64) {
	return kernel.ColHasNext[uint16, kernel.LE[uint16]](m.col(c), pos, last, search)
}

// ColHasNextUint32 checks if the element after pos in column c still
// matches search, advancing pos on a match.
func (m *Mapping) ColHasNextUint32(c uint8, pos, last uint64, search uint32) (bool, uint64) {
	return kernel.ColHasNext[uint32, kernel.LE[uint32]](m.col(c), pos, last, search)
}

// ColHasNextUint64 checks if the element after pos in column c still
// matches search, advancing pos on a match.
func (m *Mapping) ColHasNextUint64(c uint8, pos, last uint64, search uint64) (bool, uint64) {
	return kernel.ColHasNext[uint64, kernel.LE[uint64]](m.col(c), pos, last, search)
}

// ColHasPrevUint8 checks if the element before pos in column c still
// matches search, moving pos back on a match.
func (m *Mapping) ColHasPrevUint8(c uint8, first, pos uint64, search uint8) (bool, uint64) {
	return kernel.ColHasPrev[uint8, kernel.LE[uint8]](m.col(c), first, pos, search)
}

// ColHasPrevUint16 checks if the element before pos in column c still
// matches search, moving pos back on a match.
func (m *Mapping) ColHasPrevUint16(c uint8, first, pos uint64, search uint16) (bool, uint64) {
	return kernel.ColHasPrev[uint16, kernel.LE[uint16]](m.col(c), first, pos, search)
}

// ColHasPrevUint32 checks if the element before pos in column c still
// matches search, moving pos back on a match.
func (m *Mapping) ColHasPrevUint32(c uint8, first, pos uint64, search uint32) (bool, uint64) {
	return kernel.ColHasPrev[uint32, kernel.LE[uint32]](m.col(c), first, pos, search)
}

// ColHasPrevUint64 checks if the element before pos in column c still
// matches search, moving pos back on a match.
func (m *Mapping) ColHasPrevUint64(c uint8, first, pos uint64, search uint64) (bool, uint64) {
	return kernel.ColHasPrev[uint64, kernel.LE[uint64]](m.col(c), first, pos, search)
}

// ColFindFirstSubUint8 searches column c for the first occurrence of a
// bit range of an 8 bit unsigned integer.
func (m *Mapping) ColFindFirstSubUint8(c uint8, bitstart, bitend uint8, first, last uint64, search uint8) (uint64, uint64, uint64) {
	return kernel.ColFindFirstSub[uint8, kernel.LE[uint8]](m.col(c), bitstart, bitend, first, last, search)
}

// ColFindFirstSubUint16 searches column c for the first occurrence of a
// bit range of a 16 bit unsigned little-endian integer.
func (m *Mapping) ColFindFirstSubUint16(c uint8, bitstart, bitend uint8, first, last uint64, search uint16) (uint64, uint64, uint64) {
	return kernel.ColFindFirstSub[uint16, kernel.LE[uint16]](m.col(c), bitstart, bitend, first, last, search)
}

// ColFindFirstSubUint32 searches column c for the first occurrence of a
// bit range of a 32 bit unsigned little-endian integer.
func (m *Mapping) ColFindFirstSubUint32(c uint8, bitstart, bitend uint8, first, last uint64, search uint32) (uint64, uint64, uint64) {
	return kernel.ColFindFirstSub[uint32, kernel.LE[uint32]](m.col(c), bitstart, bitend, first, last, search)
}

// ColFindFirstSubUint64 searches column c for the first occurrence of a
// bit range of a 64 bit unsigned little-endian integer.
func (m *Mapping) ColFindFirstSubUint64(c uint8, bitstart, bitend uint8, first, last uint64, search uint64) (uint64, uint64, uint64) {
	return kernel.ColFindFirstSub[uint64, kernel.LE[uint64]](m.col(c), bitstart, bitend, first, last, search)
}

// ColFindLastSubUint8 searches column c for the last occurrence of a bit
// range of an 8 bit unsigned integer.
func (m *Mapping) ColFindLastSubUint8(c uint8, bitstart, bitend uint8, first, last uint64, search uint8) (uint64, uint64, uint64) {
	return kernel.ColFindLastSub[uint8, kernel.LE[uint8]](m.col(c), bitstart, bitend, first, last, search)
}

// ColFindLastSubUint16 searches column c for the last occurrence of a bit
// range of a 16 bit unsigned little-endian integer.
func (m *Mapping) ColFindLastSubUint16(c uint8, bitstart, bitend uint8, first, last uint64, search uint16) (uint64, uint64, uint64) {
	return kernel.ColFindLastSub[uint16, kernel.LE[uint16]](m.col(c), bitstart, bitend, first, last, search)
}

// ColFindLastSubUint32 searches column c for the last occurrence of a bit
// range of a 32 bit unsigned little-endian integer.
func (m *Mapping) ColFindLastSubUint32(c uint8, bitstart, bitend uint8, first, last uint64, search uint32) (uint64, uint64, uint64) {
	return kernel.ColFindLastSub[uint32, kernel.LE[uint32]](m.col(c), bitstart, bitend, first, last, search)
}

// ColFindLastSubUint64 searches column c for the last occurrence of a bit
// range of a 64 bit unsigned little-endian integer.
func (m *Mapping) ColFindLastSubUint64(c uint8, bitstart, bitend uint8, first, last uint64, search uint64) (uint64, uint64, uint64) {
	return kernel.ColFindLastSub[uint64, kernel.LE[uint64]](m.col(c), bitstart, bitend, first, last, search)
}

// ColHasNextSubUint8 checks if the bit range of the element after pos in
// column c still matches search, advancing pos on a match.
func (m *Mapping) ColHasNextSubUint8(c uint8, bitstart, bitend uint8, pos, last uint64, search uint8) (bool, uint64) {
	return kernel.ColHasNextSub[uint8, kernel.LE[uint8]](m.col(c), bitstart, bitend, pos, last, search)
}

// ColHasNextSubUint16 checks if the bit range of the element after pos in
// column c still matches search, advancing pos on a match.
func (m *Mapping) ColHasNextSubUint16(c uint8, bitstart, bitend uint8, pos, last uint64, search uint16) (bool, uint64) {
	return kernel.ColHasNextSub[uint16, kernel.LE[uint16]](m.col(c), bitstart, bitend, pos, last, search)
}

// ColHasNextSubUint32 checks if the bit range of the element after pos in
// column c still matches search, advancing pos on a match.
func (m *Mapping) ColHasNextSubUint32(c uint8, bitstart, bitend uint8, pos, last uint64, search uint32) (bool, uint64) {
	return kernel.ColHasNextSub[uint32, kernel.LE[uint32]](m.col(c), bitstart, bitend, pos, last, search)
}

// ColHasNextSubUint64 checks if the bit range of the element after pos in
// column c still matches search, advancing pos on a match.
func (m *Mapping) ColHasNextSubUint64(c uint8, bitstart, bitend uint8, pos, last uint64, search uint64) (bool, uint64) {
	return kernel.ColHasNextSub[uint64, kernel.LE[uint64]](m.col(c), bitstart, bitend, pos, last, search)
}

// ColHasPrevSubUint8 checks if the bit range of the element before pos in
// column c still matches search, moving pos back on a match.
func (m *Mapping) ColHasPrevSubUint8(c uint8, bitstart, bitend uint8, first, pos uint64, search uint8) (bool, uint64) {
	return kernel.ColHasPrevSub[uint8, kernel.LE[uint8]](m.col(c), bitstart, bitend, first, pos, search)
}

// ColHasPrevSubUint16 checks if the bit range of the element before pos in
// column c still matches search, moving pos back on a match.
func (m *Mapping) ColHasPrevSubUint16(c uint8, bitstart, bitend uint8, first, pos uint64, search uint16) (bool, uint64) {
	return kernel.ColHasPrevSub[uint16, kernel.LE[uint16]](m.col(c), bitstart, bitend, first, pos, search)
}

// ColHasPrevSubUint32 checks if the bit range of the element before pos in
// column c still matches search, moving pos back on a match.
func (m *Mapping) ColHasPrevSubUint32(c uint8, bitstart, bitend uint8, first, pos uint64, search uint32) (bool, uint64) {
	return kernel.ColHasPrevSub[uint32, kernel.LE[uint32]](m.col(c), bitstart, bitend, first, pos, search)
}

// ColHasPrevSubUint64 checks if the bit range of the element before pos in
// column c still matches search, moving pos back on a match.
func (m *Mapping) ColHasPrevSubUint64(c uint8, bitstart, bitend uint8, first, pos uint64, search uint64) (bool, uint64) {
	return kernel.ColHasPrevSub[uint64, kernel.LE[uint64]](m.col(c), bitstart, bitend, first, pos, search)
}
