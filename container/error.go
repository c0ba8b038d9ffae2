package container

import (
	"errors"
	"fmt"
)

// ErrBadContainer marks a file whose magic was recognised but whose
// structure is inconsistent, and raw blocks whose size does not divide
// into whole rows.
var ErrBadContainer = errors.New("malformed container")

// ErrWidthMismatch marks a conflict between the caller-declared column
// widths and the container metadata.
var ErrWidthMismatch = errors.New("column widths contradict container metadata")

var _ error = &WidthMismatchError{}

// WidthMismatchError carries the column and the disagreeing widths.
// Col is -1 when the column count itself disagrees, in which case Want
// and Got are counts rather than byte widths.
type WidthMismatchError struct {
	Col  int
	Want uint64
	Got  uint64
}

func (e *WidthMismatchError) Error() string {
	if e == nil {
		return "nil"
	}
	if e.Col < 0 {
		return fmt.Sprintf("container declares %d columns, caller supplied %d", e.Want, e.Got)
	}
	return fmt.Sprintf("column %d is %d bytes wide in the container, caller declared %d", e.Col, e.Want, e.Got)
}

func (e *WidthMismatchError) Is(target error) bool {
	if target == ErrWidthMismatch {
		return true
	}
	_, ok := target.(*WidthMismatchError)
	return ok
}
