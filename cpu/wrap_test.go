package cpu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap16(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		name     string
		input    int32
		expected int16
	}{
		{"zero", 0, 0},
		{"max", 32767, 32767},
		{"min", -32768, -32768},
		{"max+1", 32767 + 1, -32768},
		{"min-1", -32768 - 1, 32767},
		{"max+max", 32767 + 32767, -2},
		{"min+min", -32768 + -32768, 0},
		{"min-max", -32768 - 32767, 1},
		{"max-min", 32767 - -32768, -1},
	}

	for _, entry := range table {
		assert.Equal(entry.expected, Wrap16(entry.input), entry.name)
	}
}

func TestWrap16_TwosComplement(t *testing.T) {
	assert := assert.New(t)

	samples := []int16{math.MinInt16, math.MinInt16 + 1, -1000, -2, -1, 0, 1, 2, 999, math.MaxInt16 - 1, math.MaxInt16}
	for _, a := range samples {
		for _, b := range samples {
			sum := Wrap16(int32(a) + int32(b))
			diff := Wrap16(int32(a) - int32(b))
			// Go's own int16 arithmetic wraps in two's complement.
			assert.Equal(a+b, sum, "%d + %d", a, b)
			assert.Equal(a-b, diff, "%d - %d", a, b)
		}
	}
}

func FuzzWrap16(f *testing.F) {
	f.Add(int16(32767), int16(1))
	f.Add(int16(-32768), int16(-1))

	f.Fuzz(func(t *testing.T, a, b int16) {
		sum := Wrap16(int32(a) + int32(b))
		if sum != a+b {
			t.Fatalf("%d + %d: got %d, want %d", a, b, sum, a+b)
		}
		diff := Wrap16(int32(a) - int32(b))
		if diff != a-b {
			t.Fatalf("%d - %d: got %d, want %d", a, b, diff, a-b)
		}
	})
}
