package monitor

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEval(t *testing.T) {
	assert := assert.New(t)

	defines := map[string]string{
		"MEMORY_SIZE":  "256",
		"DATA_ADDRESS": "0x10",
		"PC":           "4",
		"NAME":         "not a number",
	}

	table := []struct {
		expr     string
		expected int
	}{
		{"0", 0},
		{"10", 0x10},
		{"ff", 0xff},
		{" A0 ", 0xa0},
		{"0x20", 0x20},
		{"16", 0x16},
		{"MEMORY_SIZE - 1", 255},
		{"DATA_ADDRESS + 1", 0x11},
		{"PC * 2", 8},
		{"(1 << 4) | 3", 0x13},
	}

	for _, entry := range table {
		value, err := Eval(entry.expr, maps.All(defines))
		assert.NoError(err, entry.expr)
		assert.Equal(entry.expected, value, entry.expr)
	}
}

func TestEval_Errors(t *testing.T) {
	assert := assert.New(t)

	defines := maps.All(map[string]string{"NAME": "not a number"})

	_, err := Eval("   ", defines)
	assert.ErrorIs(err, ErrExpressionEmpty)

	_, err = Eval("'text'", defines)
	assert.Equal(ErrParseExpression("'text'"), err)

	_, err = Eval("NAME + 1", defines)
	assert.Error(err)

	_, err = Eval("1 +", defines)
	assert.Error(err)
}
