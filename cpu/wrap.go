package cpu

import (
	"math"
)

// Wrap16 folds the exact result of adding or subtracting two signed 16-bit
// values back into signed 16-bit range, as two's complement hardware would.
// One correction is always enough, as such a result lies in [-65536, 65534].
func Wrap16(x int32) int16 {
	if x > math.MaxInt16 {
		x -= 1 << 16
	} else if x < math.MinInt16 {
		x += 1 << 16
	}

	return int16(x)
}
