package auditor

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPopulation is returned when the population has no records.
	ErrInvalidPopulation = errors.New("population must contain at least one record")

	// ErrIndexOutOfRange is the sentinel wrapped by IndexError; use
	// errors.Is against it to detect out-of-range draws.
	ErrIndexOutOfRange = errors.New("draw index out of range")
)

// IndexError reports a draw that does not resolve to a population record.
// Index is the offending value, Position its offset within the draw
// sequence, Size the population size it was checked against.
type IndexError struct {
	Index    int
	Position int
	Size     int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("draw %d at position %d out of range [0, %d)", e.Index, e.Position, e.Size)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
