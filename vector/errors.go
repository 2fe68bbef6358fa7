// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is raised when a scalar divisor or any divisor
	// component is zero.
	ErrDivisionByZero = errors.New("vector: division by zero")

	// ErrZeroLength is raised when a direction is required from a vector
	// whose length is zero (Normalize, Perpendicular of the zero vector).
	ErrZeroLength = errors.New("vector: zero-length vector")

	// ErrIndexOutOfRange is raised by At when the component index is not in [0, N).
	ErrIndexOutOfRange = errors.New("vector: index out of range")
)

// Operation tags used in panic values.
const (
	opDiv           = "Div"
	opDivScalar     = "DivScalar"
	opNormalize     = "Normalize"
	opPerpendicular = "Perpendicular"
	opAt            = "At"
)

// vectorPanic aborts with err tagged by op. The panic value is an error
// wrapping err so callers that recover can match it with errors.Is.
func vectorPanic(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
