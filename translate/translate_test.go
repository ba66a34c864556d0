package translate

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("r1 = 5", From("r%d = %d", 1, 5))
	assert.Equal("pc 0x1f", From("pc %#02x", 0x1f))
}

func TestFprintf(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	n, err := Fprintf(&buf, "screen: %04x\n", uint16(0xbeef))
	assert.NoError(err)
	assert.Equal(buf.Len(), n)
	assert.Equal("screen: beef\n", buf.String())
}
