package city

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRow matches every row that could not be turned into a Record.
	ErrMalformedRow = errors.New("malformed row")

	// ErrEmptyDataset is returned when there are no rows to take a maximum over.
	ErrEmptyDataset = errors.New("no data")
)

// RowError describes a single malformed input row.
type RowError struct {
	Line   int
	Cells  int
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %s: %s", e.Line, ErrMalformedRow, e.Reason)
}

// Unwrap lets errors.Is(err, ErrMalformedRow) match.
func (e *RowError) Unwrap() error {
	return ErrMalformedRow
}
