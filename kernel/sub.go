package kernel

// Bit ranges are zero-based and counted from the most-significant bit of
// the decoded integer, so bitStart=0 selects the top bit. The selected
// subfield [bitStart, bitEnd] is masked out of the decoded value and
// right-aligned before comparison. The shift and mask are derived once per
// call; a full-width range yields the identity transform.

// subShiftMask derives the right shift and the low-bit mask that extract
// the inclusive MSB-relative bit range [bitStart, bitEnd].
func subShiftMask[T Uint](bitStart, bitEnd uint8) (uint8, T) {
	nbits := uint8(width[T]()) * 8
	rshift := nbits - 1 - bitEnd
	// A shift count equal to the width wraps to zero, which makes the
	// subtraction produce an all-ones mask for full-width ranges.
	mask := T(1)<<(bitEnd-bitStart+1) - 1
	return rshift, mask
}

// FindFirstSub is FindFirst restricted to the MSB-relative bit range
// [bitStart, bitEnd] of each key. The masked values in the block must be
// sorted in ascending order.
func FindFirstSub[T Uint, O ByteOrder[T]](data []byte, blklen, blkpos uint64, bitStart, bitEnd uint8, first, last uint64, search T) (uint64, uint64, uint64) {
	rshift, mask := subShiftMask[T](bitStart, bitEnd)
	var o O
	found := last + 1
	for first <= last {
		middle := first + ((last - first) >> 1)
		x := (o.Decode(data, blklen*middle+blkpos) >> rshift) & mask
		switch {
		case x == search:
			if middle == 0 {
				return middle, first, last
			}
			found = middle
			last = middle - 1
		case x < search:
			first = middle + 1
		default:
			if middle == 0 {
				return found, first, last
			}
			last = middle - 1
		}
	}
	return found, first, last
}

// FindLastSub is FindLast restricted to the MSB-relative bit range
// [bitStart, bitEnd] of each key. The masked values in the block must be
// sorted in ascending order.
func FindLastSub[T Uint, O ByteOrder[T]](data []byte, blklen, blkpos uint64, bitStart, bitEnd uint8, first, last uint64, search T) (uint64, uint64, uint64) {
	rshift, mask := subShiftMask[T](bitStart, bitEnd)
	var o O
	found := last + 1
	for first <= last {
		middle := first + ((last - first) >> 1)
		x := (o.Decode(data, blklen*middle+blkpos) >> rshift) & mask
		switch {
		case x == search:
			found = middle
			first = middle + 1
		case x < search:
			first = middle + 1
		default:
			if middle == 0 {
				return found, first, last
			}
			last = middle - 1
		}
	}
	return found, first, last
}

// HasNextSub is HasNext restricted to the MSB-relative bit range
// [bitStart, bitEnd] of each key.
func HasNextSub[T Uint, O ByteOrder[T]](data []byte, blklen, blkpos uint64, bitStart, bitEnd uint8, pos, last uint64, search T) (bool, uint64) {
	if pos >= last {
		return false, pos
	}
	rshift, mask := subShiftMask[T](bitStart, bitEnd)
	var o O
	if (o.Decode(data, blklen*(pos+1)+blkpos)>>rshift)&mask != search {
		return false, pos
	}
	return true, pos + 1
}

// HasPrevSub is HasPrev restricted to the MSB-relative bit range
// [bitStart, bitEnd] of each key.
func HasPrevSub[T Uint, O ByteOrder[T]](data []byte, blklen, blkpos uint64, bitStart, bitEnd uint8, first, pos uint64, search T) (bool, uint64) {
	if pos <= first {
		return false, pos
	}
	rshift, mask := subShiftMask[T](bitStart, bitEnd)
	var o O
	if (o.Decode(data, blklen*(pos-1)+blkpos)>>rshift)&mask != search {
		return false, pos
	}
	return true, pos - 1
}
