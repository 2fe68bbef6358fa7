// SPDX-License-Identifier: MIT

package random

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange is raised when max < min, or when a count is not positive.
	ErrInvalidRange = errors.New("random: invalid range")

	// ErrEmptyList is raised by Pick on an empty slice.
	ErrEmptyList = errors.New("random: empty list")

	// ErrBadVariance is raised by WithVariance for a non-positive variance.
	ErrBadVariance = errors.New("random: variance must be positive")

	// ErrBadMaxRejections is raised by WithMaxRejections for a non-positive cap.
	ErrBadMaxRejections = errors.New("random: MaxRejections must be positive")
)

const (
	opBetween = "Between"
	opIntn    = "Intn"
	opPick    = "Pick"
	opRange   = "NewRange"
)

func randomPanic(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
