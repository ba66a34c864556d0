package cpu

import (
	"fmt"
	stdio "io"
	"strings"

	"github.com/ezrec/vole/internal"
)

const (
	STATUS_REGISTER_COLUMNS = 4
	STATUS_MEMORY_COLUMNS   = 16
)

// Status is a snapshot of the machine state.
type Status struct {
	Register [REGISTER_COUNT]int16
	Memory   [MEMORY_SIZE]int16
	Pc       uint16
	Ir       uint16
}

// Status returns a copy of the current machine state.
func (cpu *Cpu) Status() Status {
	return Status{
		Register: cpu.Register,
		Memory:   cpu.Memory,
		Pc:       cpu.Pc,
		Ir:       cpu.Ir,
	}
}

// String returns the current machine state as a status report.
func (cpu *Cpu) String() string {
	return cpu.Status().String()
}

// Words returns memory as raw 16-bit instruction words.
func (st Status) Words() (words []uint16) {
	words = make([]uint16, len(st.Memory))
	for n, value := range st.Memory {
		words[n] = uint16(value)
	}
	return
}

// String renders the registers four to a row, PC and IR, and memory as a
// 16x16 matrix of hexadecimal words.
func (st Status) String() string {
	var sb strings.Builder

	sb.WriteString(f("registers:") + "\n")
	for start, row := range internal.Rows(st.Register[:], STATUS_REGISTER_COLUMNS) {
		for n, value := range row {
			fmt.Fprintf(&sb, " r%X: %6d", start+n, value)
		}
		sb.WriteString("\n")
	}

	sb.WriteString(f("pc: %v", fmt.Sprintf("0x%02x", st.Pc)) + "\n")
	sb.WriteString(f("ir: %v", fmt.Sprintf("0x%04x", st.Ir)) + "\n")

	sb.WriteString(f("memory:") + "\n")
	sb.WriteString("   ")
	for col := range STATUS_MEMORY_COLUMNS {
		fmt.Fprintf(&sb, "    %X", col)
	}
	sb.WriteString("\n")
	for start, row := range internal.Rows(st.Memory[:], STATUS_MEMORY_COLUMNS) {
		fmt.Fprintf(&sb, "%02x:", start)
		for _, value := range row {
			fmt.Fprintf(&sb, " %04x", uint16(value))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// WriteTo writes the status report to w.
func (st Status) WriteTo(w stdio.Writer) (n int64, err error) {
	m, err := stdio.WriteString(w, st.String())
	n = int64(m)
	return
}
