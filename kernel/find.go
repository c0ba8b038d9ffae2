package kernel

// FindFirst searches for the first occurrence of search in the sorted
// row-strided block, restricted to items in [first, last]. It returns the
// item number of the least match, or last+1 if there is none, plus the
// narrowed first and last positions of the final probing window.
func FindFirst[T Uint, O ByteOrder[T]](data []byte, blklen, blkpos, first, last uint64, search T) (uint64, uint64, uint64) {
	var o O
	found := last + 1
	for first <= last {
		middle := first + ((last - first) >> 1)
		x := o.Decode(data, blklen*middle+blkpos)
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

// FindLast searches for the last occurrence of search in the sorted
// row-strided block, restricted to items in [first, last]. It returns the
// item number of the greatest match, or last+1 if there is none, plus the
// narrowed first and last positions of the final probing window.
func FindLast[T Uint, O ByteOrder[T]](data []byte, blklen, blkpos, first, last uint64, search T) (uint64, uint64, uint64) {
	var o O
	found := last + 1
	for first <= last {
		middle := first + ((last - first) >> 1)
		x := o.Decode(data, blklen*middle+blkpos)
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

// HasNext reports whether the item after pos still matches search, given
// that pos itself matches (typically the result of FindFirst). On a match
// pos advances by one; otherwise pos is returned unchanged. Repeated calls
// enumerate the whole run of matches up to last in O(1) per step.
func HasNext[T Uint, O ByteOrder[T]](data []byte, blklen, blkpos, pos, last uint64, search T) (bool, uint64) {
	if pos >= last {
		return false, pos
	}
	var o O
	if o.Decode(data, blklen*(pos+1)+blkpos) != search {
		return false, pos
	}
	return true, pos + 1
}

// HasPrev reports whether the item before pos still matches search, given
// that pos itself matches (typically the result of FindLast). On a match
// pos moves back by one; otherwise pos is returned unchanged.
func HasPrev[T Uint, O ByteOrder[T]](data []byte, blklen, blkpos, first, pos uint64, search T) (bool, uint64) {
	if pos <= first {
		return false, pos
	}
	var o O
	if o.Decode(data, blklen*(pos-1)+blkpos) != search {
		return false, pos
	}
	return true, pos - 1
}
