package binsearch

import "github.com/tecnickcom/binsearch/kernel"

// The Has entry points walk the run of matches around a found item one
// step at a time. HasNext is seeded with the result of FindFirst and
// HasPrev with the result of FindLast; each reports whether the
// neighbouring item still matches and, only then, moves pos onto it.

// HasNextUint8 checks if the item after pos still matches search,
// advancing pos on a match.
func (m *Mapping) HasNextUint8(blklen, blkpos, pos, last uint64, search uint8) (bool, uint64) {
	return kernel.HasNext[uint8, kernel.BE[uint8]](m.file.Data, blklen, blkpos, pos, last, search)
}

// HasNextUint16 checks if the item after pos still matches search,
// advancing pos on a match.
func (m *Mapping) HasNextUint16(blklen, blkpos, pos, last uint64, search uint16) (bool, uint64) {
	return kernel.HasNext[uint16, kernel.BE[uint16]](m.file.Data, blklen, blkpos, pos, last, search)
}

// HasNextUint32 checks if the item after pos still matches search,
// advancing pos on a match.
func (m *Mapping) HasNextUint32(blklen, blkpos, pos, last uint64, search uint32) (bool, uint64) {
	return kernel.HasNext[uint32, kernel.BE[uint32]](m.file.Data, blklen, blkpos, pos, last, search)
}

// HasNextUint64 checks if the item after pos still matches search,
// advancing pos on a match.
func (m *Mapping) HasNextUint64(blklen, blkpos, pos, last uint64, search uint64) (bool, uint64) {
	return kernel.HasNext[uint64, kernel.BE[uint64]](m.file.Data, blklen, blkpos, pos, last, search)
}

// HasPrevUint8 checks if the item before pos still matches search,
// moving pos back on a match.
func (m *Mapping) HasPrevUint8(blklen, blkpos, first, pos uint64, search uint8) (bool, uint64) {
	return kernel.HasPrev[uint8, kernel.BE[uint8]](m.file.Data, blklen, blkpos, first, pos, search)
}

// HasPrevUint16 checks if the item before pos still matches search,
// moving pos back on a match.
func (m *Mapping) HasPrevUint16(blklen, blkpos, first, pos uint64, search uint16) (bool, uint64) {
	return kernel.HasPrev[uint16, kernel.BE[uint16]](m.file.Data, blklen, blkpos, first, pos, search)
}

// HasPrevUint32 checks if the item before pos still matches search,
// moving pos back on a match.
func (m *Mapping) HasPrevUint32(blklen, blkpos, first, pos uint64, search uint32) (bool, uint64) {
	return kernel.HasPrev[uint32, kernel.BE[uint32]](m.file.Data, blklen, blkpos, first, pos, search)
}

// HasPrevUint64 checks if the item before pos still matches search,
// moving pos back on a match.
func (m *Mapping) HasPrevUint64(blklen, blkpos, first, pos uint64, search uint64) (bool, uint64) {
	return kernel.HasPrev[uint64, kernel.BE[uint64]](m.file.Data, blklen, blkpos, first, pos, search)
}

// HasNextSubUint8 checks if the bit range of the item after pos still
// matches search, advancing pos on a match.
func (m *Mapping) HasNextSubUint8(blklen, blkpos uint64, bitstart, bitend uint8, pos, last uint64, search uint8) (bool, uint64) {
	return kernel.HasNextSub[uint8, kernel.BE[uint8]](m.file.Data, blklen, blkpos, bitstart, bitend, pos, last, search)
}

// HasNextSubUint16 checks if the bit range of the item after pos still
// matches search, advancing pos on a match.
func (m *Mapping) HasNextSubUint16(blklen, blkpos uint64, bitstart, bitend uint8, pos, last uint64, search uint16) (bool, uint64) {
	return kernel.HasNextSub[uint16, kernel.BE[uint16]](m.file.Data, blklen, blkpos, bitstart, bitend, pos, last, search)
}

// HasNextSubUint32 checks if the bit range of the item after pos still
// matches search, advancing pos on a match.
func (m *Mapping) HasNextSubUint32(blklen, blkpos uint64, bitstart, bitend uint8, pos, last uint64, search uint32) (bool, uint64) {
	return kernel.HasNextSub[uint32, kernel.BE[uint32]](m.file.Data, blklen, blkpos, bitstart, bitend, pos, last, search)
}

// HasNextSubUint64 checks if the bit range of the item after pos still
// matches search, advancing pos on a match.
func (m *Mapping) HasNextSubUint64(blklen, blkpos uint64, bitstart, bitend uint8, pos, last uint64, search uint64) (bool, uint64) {
	return kernel.HasNextSub[uint64, kernel.BE[uint64]](m.file.Data, blklen, blkpos, bitstart, bitend, pos, last, search)
}

// HasPrevSubUint8 checks if the bit range of the item before pos still
// matches search, moving pos back on a match.
func (m *Mapping) HasPrevSubUint8(blklen, blkpos uint64, bitstart, bitend uint8, first, pos uint64, search uint8) (bool, uint64) {
	return kernel.HasPrevSub[uint8, kernel.BE[uint8]](m.file.Data, blklen, blkpos, bitstart, bitend, first, pos, search)
}

// HasPrevSubUint16 checks if the bit range of the item before pos still
// matches search, moving pos back on a match.
func (m *Mapping) HasPrevSubUint16(blklen, blkpos uint64, bitstart, bitend uint8, first, pos uint64, search uint16) (bool, uint64) {
	return kernel.HasPrevSub[uint16, kernel.BE[uint16]](m.file.Data, blklen, blkpos, bitstart, bitend, first, pos, search)
}

// HasPrevSubUint32 checks if the bit range of the item before pos still
// matches search, moving pos back on a match.
func (m *Mapping) HasPrevSubUint32(blklen, blkpos uint64, bitstart, bitend uint8, first, pos uint64, search uint32) (bool, uint64) {
	return kernel.HasPrevSub[uint32, kernel.BE[uint32]](m.file.Data, blklen, blkpos, bitstart, bitend, first, pos, search)
}

// HasPrevSubUint64 checks if the bit range of the item before pos still
// matches search, moving pos back on a match.
func (m *Mapping) HasPrevSubUint64(blklen, blkpos uint64, bitstart, bitend uint8, first, pos uint64, search uint64) (bool, uint64) {
	return kernel.HasPrevSub[uint64, kernel.BE[uint64]](m.file.Data, blklen, blkpos, bitstart, bitend, first, pos, search)
}
