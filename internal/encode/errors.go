package encode

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrInvalidDimension = errors.New("dimension must be a positive integer")
	ErrIndexOutOfRange  = errors.New("category index out of range")
	ErrInvalidRows      = errors.New("row count must be non-negative")
	ErrRaggedRows       = errors.New("input rows have differing widths")
	ErrUnknownWidth     = errors.New("cannot infer row width from empty input")
	ErrSplitOutOfRange  = errors.New("split point outside row range")
)

// IndexError reports the offending category index when an encoder runs
// under the Fail policy. The reported position is deterministic: the
// smallest row, then the smallest position within that row.
type IndexError struct {
	Row       int // Sequence (row) containing the offending index.
	Pos       int // Position within the sequence.
	Index     int // The offending category index.
	Dimension int // Vocabulary size for the call.
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("sequence %d, position %d: index %d outside [0, %d)",
		e.Row, e.Pos, e.Index, e.Dimension)
}

// Unwrap allows errors.Is(err, ErrIndexOutOfRange) to match.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
