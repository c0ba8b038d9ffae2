package kernel

// The Col kernels specialise the row-strided family for a packed array of
// same-width values: the stride is the key width and the key sits at the
// start of each element, so the per-probe address is a single shift. The
// slice passed in must begin at the first element of the column.

// ColFindFirst searches the packed column col for the first occurrence of
// search among items [first, last]. Returns and narrows like FindFirst.
func ColFindFirst[T Uint, O ByteOrder[T]](col []byte, first, last uint64, search T) (uint64, uint64, uint64) {
	var o O
	w := width[T]()
	found := last + 1
	for first <= last {
		middle := first + ((last - first) >> 1)
		x := o.Decode(col, middle*w)
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

// ColFindLast searches the packed column col for the last occurrence of
// search among items [first, last]. Returns and narrows like FindLast.
func ColFindLast[T Uint, O ByteOrder[T]](col []byte, first, last uint64, search T) (uint64, uint64, uint64) {
	var o O
	w := width[T]()
	found := last + 1
	for first <= last {
		middle := first + ((last - first) >> 1)
		x := o.Decode(col, middle*w)
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

// ColHasNext reports whether the element after pos still equals search,
// advancing pos on a match.
func ColHasNext[T Uint, O ByteOrder[T]](col []byte, pos, last uint64, search T) (bool, uint64) {
	if pos >= last {
		return false, pos
	}
	var o O
	if o.Decode(col, (pos+1)*width[T]()) != search {
		return false, pos
	}
	return true, pos + 1
}

// ColHasPrev reports whether the element before pos still equals search,
// moving pos back on a match.
func ColHasPrev[T Uint, O ByteOrder[T]](col []byte, first, pos uint64, search T) (bool, uint64) {
	if pos <= first {
		return false, pos
	}
	var o O
	if o.Decode(col, (pos-1)*width[T]()) != search {
		return false, pos
	}
	return true, pos - 1
}

// ColFindFirstSub is ColFindFirst restricted to the MSB-relative bit range
// [bitStart, bitEnd] of each element.
func ColFindFirstSub[T Uint, O ByteOrder[T]](col []byte, bitStart, bitEnd uint8, first, last uint64, search T) (uint64, uint64, uint64) {
	rshift, mask := subShiftMask[T](bitStart, bitEnd)
	var o O
	w := width[T]()
	found := last + 1
	for first <= last {
		middle := first + ((last - first) >> 1)
		x := (o.Decode(col, middle*w) >> rshift) & mask
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

// ColFindLastSub is ColFindLast restricted to the MSB-relative bit range
// [bitStart, bitEnd] of each element.
func ColFindLastSub[T Uint, O ByteOrder[T]](col []byte, bitStart, bitEnd uint8, first, last uint64, search T) (uint64, uint64, uint64) {
	rshift, mask := subShiftMask[T](bitStart, bitEnd)
	var o O
	w := width[T]()
	found := last + 1
	for first <= last {
		middle := first + ((last - first) >> 1)
		x := (o.Decode(col, middle*w) >> rshift) & mask
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

// ColHasNextSub is ColHasNext restricted to the MSB-relative bit range
// [bitStart, bitEnd] of each element.
func ColHasNextSub[T Uint, O ByteOrder[T]](col []byte, bitStart, bitEnd uint8, pos, last uint64, search T) (bool, uint64) {
	if pos >= last {
		return false, pos
	}
	rshift, mask := subShiftMask[T](bitStart, bitEnd)
	var o O
	if (o.Decode(col, (pos+1)*width[T]())>>rshift)&mask != search {
		return false, pos
	}
	return true, pos + 1
}

// ColHasPrevSub is ColHasPrev restricted to the MSB-relative bit range
// [bitStart, bitEnd] of each element.
func ColHasPrevSub[T Uint, O ByteOrder[T]](col []byte, bitStart, bitEnd uint8, first, pos uint64, search T) (bool, uint64) {
	if pos <= first {
		return false, pos
	}
	rshift, mask := subShiftMask[T](bitStart, bitEnd)
	var o O
	if (o.Decode(col, (pos-1)*width[T]())>>rshift)&mask != search {
		return false, pos
	}
	return true, pos - 1
}
