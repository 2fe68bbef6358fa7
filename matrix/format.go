// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlgeom/scalar"
)

// formatRows renders an n×n column-major matrix row by row:
// "[[m00, m10], [m01, m11]]".
func formatRows[T scalar.Number](m []T, n int) string {
	var b strings.Builder
	b.WriteByte('[')
	for r := 0; r < n; r++ {
		if r > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('[')
		for c := 0; c < n; c++ {
			if c > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%v", m[c*n+r])
		}
		b.WriteByte(']')
	}
	b.WriteByte(']')
	return b.String()
}
