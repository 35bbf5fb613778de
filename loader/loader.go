// Package loader reads LS-8 program images in the .ls8 text format.
//
// Each line holds one byte as an 8-character binary literal, optionally
// followed by a '#' comment. Blank and comment-only lines are skipped, and
// bytes are placed sequentially from address 0.
package loader

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ezrec/ls8/cpu"
)

const (
	LITERAL_WIDTH = 8 // Characters in a binary literal.
)

// Parse reads an .ls8 image into a Program, one line per byte.
func Parse(input io.Reader) (prog *cpu.Program, err error) {
	scanner := bufio.NewScanner(input)

	var text string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: text, Err: err}
		}
	}()

	prog = &cpu.Program{}
	addr := 0

	for scanner.Scan() {
		text = scanner.Text()
		lineno += 1

		literal, comment, _ := strings.Cut(text, "#")
		literal = strings.TrimSpace(literal)
		if len(literal) == 0 {
			continue
		}

		var value byte
		value, err = parseLiteral(literal)
		if err != nil {
			prog = nil
			return
		}

		if addr >= cpu.MEMORY_SIZE {
			err = cpu.ErrImageTooLarge
			prog = nil
			return
		}

		words := []string{literal}
		comment = strings.TrimSpace(comment)
		if len(comment) > 0 {
			words = append(words, comment)
		}

		prog.Lines = append(prog.Lines, cpu.Line{
			LineNo: lineno,
			Addr:   addr,
			Words:  words,
			Bytes:  []byte{value},
		})
		addr++
	}

	err = scanner.Err()
	if err != nil {
		prog = nil
	}

	return
}

// Open reads the .ls8 image at path.
func Open(path string) (prog *cpu.Program, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	prog, err = Parse(inf)
	return
}

// parseLiteral parses exactly LITERAL_WIDTH binary digits.
func parseLiteral(literal string) (value byte, err error) {
	if len(literal) != LITERAL_WIDTH {
		err = ErrBinaryLiteral(literal)
		return
	}

	v64, err := strconv.ParseUint(literal, 2, LITERAL_WIDTH)
	if err != nil {
		err = ErrBinaryLiteral(literal)
		return
	}

	value = byte(v64)
	return
}
