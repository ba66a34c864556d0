package cpu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(nil)
	cpu.Register[0xf] = -1
	cpu.Memory[0xff] = 0x5a5a

	st := cpu.Status()

	// Status is a copy.
	cpu.Register[0xf] = 3
	cpu.Memory[0xff] = 0
	assert.Equal(int16(-1), st.Register[0xf])
	assert.Equal(int16(0x5a5a), st.Memory[0xff])
}

func TestStatus_String(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(nil)
	cpu.Register[1] = 5
	cpu.Register[0xf] = -32768
	cpu.Memory[0x00] = 0x2105
	cpu.Memory[0x11] = -1
	cpu.Pc = 0x12
	cpu.Ir = 0x3100

	text := cpu.String()
	lines := strings.Split(text, "\n")

	assert.Equal("registers:", lines[0])
	assert.Equal(" r0:      0 r1:      5 r2:      0 r3:      0", lines[1])
	assert.Equal(" rC:      0 rD:      0 rE:      0 rF: -32768", lines[4])
	assert.Equal("pc: 0x12", lines[5])
	assert.Equal("ir: 0x3100", lines[6])
	assert.Equal("memory:", lines[7])
	assert.Equal("       0    1    2    3    4    5    6    7    8    9    A    B    C    D    E    F", lines[8])
	assert.Equal("00: 2105 0000 0000 0000 0000 0000 0000 0000 0000 0000 0000 0000 0000 0000 0000 0000", lines[9])
	assert.Equal("10: 0000 ffff 0000 0000 0000 0000 0000 0000 0000 0000 0000 0000 0000 0000 0000 0000", lines[10])
	assert.Equal(9+16+1, len(lines))
	assert.Equal("", lines[len(lines)-1])

	var buf bytes.Buffer
	n, err := cpu.Status().WriteTo(&buf)
	assert.NoError(err)
	assert.Equal(int64(len(text)), n)
	assert.Equal(text, buf.String())
}
