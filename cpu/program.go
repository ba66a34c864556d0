package cpu

import (
	"bufio"
	"iter"
	"log"
	"strconv"
	"strings"

	stdio "io"
)

// COMMENT_MARKER starts a comment in program text.
const COMMENT_MARKER = ";"

// Word is a single instruction word parsed from program text.
type Word struct {
	LineNo int    // Source line number.
	Text   string // Source token.
	Value  uint16 // Parsed word.
}

// Program is a flat list of instruction words, loaded into consecutive
// memory cells.
type Program struct {
	Words []Word
}

// ParseProgram reads program text: one hexadecimal word per line, with
// empty lines and lines starting with ';' skipped. A ';' after the word
// starts a comment. An optional 0x prefix is accepted.
func ParseProgram(in stdio.Reader) (prog *Program, err error) {
	prog = &Program{}

	scanner := bufio.NewScanner(in)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()

		text, _, _ := strings.Cut(line, COMMENT_MARKER)
		words := strings.Fields(text)
		if len(words) == 0 {
			continue
		}
		if len(words) > 1 {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: ErrWordExtra}
			return
		}

		token := words[0]
		digits := token
		if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
			digits = digits[2:]
		}

		var value uint64
		value, err = strconv.ParseUint(digits, 16, 16)
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: ErrParseNumber(token)}
			return
		}

		prog.Words = append(prog.Words, Word{LineNo: lineno, Text: token, Value: uint16(value)})
	}

	err = scanner.Err()
	return
}

// Codes iterates over the program's instructions, with their offset from
// the load address.
func (prog *Program) Codes() iter.Seq2[int, Code] {
	return func(yield func(offset int, code Code) bool) {
		for n, word := range prog.Words {
			if !yield(n, Code{Word: word.Value}) {
				return
			}
		}
	}
}

// Load writes the program into memory starting at start, stopping at the
// end of memory. Returns the number of words written.
func (cpu *Cpu) Load(prog *Program, start int) (loaded int, err error) {
	if start < 0 || start >= MEMORY_SIZE {
		err = ErrAddressRange
		return
	}

	addr := start
	for n, code := range prog.Codes() {
		if addr >= MEMORY_SIZE {
			if cpu.Verbose {
				log.Printf("cpu: memory full, %d of %d words loaded", n, len(prog.Words))
			}
			break
		}
		cpu.Memory[addr] = int16(code.Word)
		if cpu.Verbose {
			log.Printf("cpu: loaded %04x at 0x%02x (line %d)", code.Word, addr, prog.Words[n].LineNo)
		}
		addr++
		loaded++
	}

	if cpu.Verbose {
		log.Printf("cpu: program loaded at 0x%02x", start)
	}

	return
}
