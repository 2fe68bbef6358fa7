// SPDX-License-Identifier: MIT

package color

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is raised when a scalar divisor or any divisor channel is zero.
	ErrDivisionByZero = errors.New("color: division by zero")

	// ErrIndexOutOfRange is raised by At when the channel index is not in [0, 4).
	ErrIndexOutOfRange = errors.New("color: index out of range")
)

const (
	opDiv       = "Div"
	opDivScalar = "DivScalar"
	opAt        = "At"
)

func colorPanic(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
