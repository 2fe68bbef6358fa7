// SPDX-License-Identifier: MIT

package scalar

import "golang.org/x/exp/constraints"

// Number is the scalar type set accepted by vectors, matrices and colors:
// every built-in integer and floating-point kind.
type Number interface {
	constraints.Integer | constraints.Float
}

// Float restricts a type parameter to floating-point kinds. Used where the
// result is only meaningful with a fractional part (planes, cameras, angles).
type Float interface {
	constraints.Float
}

// Signed is the set of kinds for which negation is meaningful.
type Signed interface {
	constraints.Signed | constraints.Float
}
