package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// eps is the tolerance for float comparisons.
const eps = 1e-6

// requirePanicIs runs fn and fails unless it panics with an error matching target.
func requirePanicIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic wrapping %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value must be an error, got %T", r)
		require.ErrorIs(t, err, target)
	}()
	fn()
}
