// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." so recovered panics are easy
// to grep. Panic values wrap these sentinels with the operation tag below
// ("DivScalar: matrix: division by zero"); match them with errors.Is.
var (
	// ErrDivisionByZero is raised by Div/DivScalar when a divisor entry is zero.
	ErrDivisionByZero = errors.New("matrix: division by zero")

	// ErrIndexOutOfRange is raised when a column or row index is outside [0, N).
	ErrIndexOutOfRange = errors.New("matrix: index out of range")
)

// Operation name constants for panic tagging.
const (
	opDiv       = "Div"
	opDivScalar = "DivScalar"
	opAt        = "At"
	opSet       = "Set"
	opCol       = "Col"
	opRow       = "Row"
)

// matrixPanic aborts with err wrapped under the operation tag, keeping the
// "Op: underlying" shape used across the package.
func matrixPanic(tag string, err error) {
	panic(fmt.Errorf("%s: %w", tag, err))
}

// checkIndex panics with ErrIndexOutOfRange unless 0 <= c, r < n.
func checkIndex(tag string, n, c, r int) {
	if c < 0 || c >= n || r < 0 || r >= n {
		matrixPanic(tag, ErrIndexOutOfRange)
	}
}
