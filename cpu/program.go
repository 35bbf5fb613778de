package cpu

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/cespare/xxhash"
)

// Line is a line of source text and the bytes it generated.
type Line struct {
	LineNo    int      // Source line number.
	Addr      int      // Memory address of the first generated byte.
	Words     []string // Source words.
	Bytes     []byte   // Generated bytes.
	LinkLabel string   // Label to resolve into Bytes[LinkIndex].
	LinkIndex int
}

// Program is an assembled or loaded memory image with its source listing.
type Program struct {
	Lines []Line
}

// Debug locates the source line containing a memory address.
type Debug struct {
	*Line
	Index int
}

func (prog *Program) Debug(addr byte) (dbg Debug) {
	for n, line := range prog.Lines {
		if int(addr) >= line.Addr && int(addr) < line.Addr+len(line.Bytes) {
			dbg = Debug{
				Line:  &prog.Lines[n],
				Index: int(addr) - line.Addr,
			}
			break
		}
	}

	return
}

// Bytes iterates over every generated byte and its address.
func (prog *Program) Bytes() iter.Seq2[int, byte] {
	return func(yield func(addr int, value byte) bool) {
		for _, line := range prog.Lines {
			for n, value := range line.Bytes {
				if !yield(line.Addr+n, value) {
					return
				}
			}
		}
	}
}

// Binary returns the memory image, starting at address 0.
func (prog *Program) Binary() (bins []byte) {
	for addr, value := range prog.Bytes() {
		if addr >= len(bins) {
			bins = append(bins, make([]byte, addr+1-len(bins))...)
		}
		bins[addr] = value
	}

	return
}

// Sum returns the xxhash fingerprint of the memory image.
func (prog *Program) Sum() uint64 {
	return xxhash.Sum64(prog.Binary())
}

// Listing writes the program in the .ls8 text format: one binary byte per
// line, the first byte of each source line commented with its source words.
func (prog *Program) Listing(w io.Writer) (err error) {
	out := bufio.NewWriter(w)

	for _, line := range prog.Lines {
		for n, value := range line.Bytes {
			if n == 0 && len(line.Words) > 0 {
				_, err = fmt.Fprintf(out, "%08b # %v\n", value, strings.Join(line.Words, " "))
			} else {
				_, err = fmt.Fprintf(out, "%08b\n", value)
			}
			if err != nil {
				return
			}
		}
	}

	err = out.Flush()

	return
}
