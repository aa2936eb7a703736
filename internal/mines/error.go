package mines

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrOutOfBounds          = errors.New("cell out of bounds")
)

type PositionError struct {
	Row, Col, Size int
}

// [PositionError] implements [error]
func (e PositionError) Error() string {
	return fmt.Sprintf("%s: (%d, %d) not in [0, %d)",
		ErrOutOfBounds, e.Row, e.Col, e.Size)
}

func (e PositionError) Unwrap() error {
	return ErrOutOfBounds
}
