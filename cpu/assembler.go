// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

// Assembler is a single pass assembler for the LS-8 instruction set.
type Assembler struct {
	Verbose bool   // If set, verbosely logs the assembler actions.
	Line    []Line // List of generated lines.

	predefine map[string]string // Predefines
	Label     map[string]int    // Map of labels to memory addresses.
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// mnemonicMap maps every named opcode to its value.
var mnemonicMap = func() map[string]Opcode {
	mnemonics := make(map[string]Opcode)
	for n := range MEMORY_SIZE {
		op := Opcode(n)
		if op.Known() {
			mnemonics[op.String()] = op
		}
	}
	return mnemonics
}()

var (
	reCharacter  = regexp.MustCompile(`'\\?[^']'`)
	reExpression = regexp.MustCompile(`\$\([^\$]*\)`)
	reIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// valueOf returns the byte value of a simple word. Negative values down to
// -128 are stored as two's complement.
func (asm *Assembler) valueOf(word string) (value byte, err error) {
	v64, err := strconv.ParseInt(word, 0, 16)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	if v64 < -0x80 || v64 > 0xff {
		err = ErrValueRange
		return
	}

	value = byte(v64)
	return
}

// registerOf returns the register index named by word, R0 through R7.
func (asm *Assembler) registerOf(word string) (index byte, err error) {
	if len(word) != 2 || (word[0] != 'R' && word[0] != 'r') {
		err = ErrParseRegister(word)
		return
	}

	n := word[1] - '0'
	if n >= REGISTER_COUNT {
		err = ErrParseRegister(word)
		return
	}

	index = n
	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		v64, _err := strconv.ParseInt(str, 0, 64)
		if _err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	for key, addr := range asm.Label {
		pred[key] = starlark.MakeInt(addr)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// evaluate replaces character literals and $() expressions with numbers.
func (asm *Assembler) evaluate(line string) (out string, err error) {
	// Do 'x' evaluations
	out = reCharacter.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			str = str[1:]
			switch str {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "t":
				str = "\t"
			case "0":
				str = "\000"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return fmt.Sprintf("%v", str[0])
	})

	// Do $() evaluations
	out = reExpression.ReplaceAllStringFunc(out, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%v", value)
	})

	return
}

// parseLine parses a single line into words, recording any labels.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	line = strings.TrimSpace(strings.ReplaceAll(line, "\t", " "))

	// Leading labels.
	for {
		head, rest, _ := strings.Cut(line, " ")
		if !strings.HasSuffix(head, ":") {
			break
		}
		label := head[:len(head)-1]
		if !reIdentifier.MatchString(label) {
			err = ErrLabelInvalid
			return
		}
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}
		asm.Label[label] = asm.currentAddr()
		line = strings.TrimSpace(rest)
	}

	// .ds TEXT is taken verbatim.
	if head, rest, _ := strings.Cut(line, " "); head == ".ds" {
		words = []string{".ds", rest}
		return
	}

	line, err = asm.evaluate(line)
	if err != nil {
		return
	}

	words = strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words[1:] {
		// Check for equate next
		equate, ok := asm.Equate[word]
		if ok {
			words[1+n] = equate
		}
	}

	return
}

// currentAddr gets the address of the next generated byte.
func (asm *Assembler) currentAddr() int {
	if len(asm.Line) == 0 {
		return 0
	}

	last := asm.Line[len(asm.Line)-1]

	return last.Addr + len(last.Bytes)
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Line = asm.Line[:0]
	asm.Label = make(map[string]int)
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line, _, _ = strings.Cut(text, ";")
		line = strings.TrimSpace(line)

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if asm.currentAddr() > MEMORY_SIZE {
		err = ErrProgramTooLarge
		return
	}

	// Final linking of labels.
	for n := range asm.Line {
		op := &asm.Line[n]

		if len(op.LinkLabel) == 0 {
			continue
		}
		lineno = op.LineNo
		line = strings.Join(op.Words, " ")

		addr, ok := asm.Label[op.LinkLabel]
		if !ok {
			err = ErrLabelMissing(op.LinkLabel)
			return
		}
		if addr >= MEMORY_SIZE {
			err = ErrValueRange
			return
		}
		op.Bytes[op.LinkIndex] = byte(addr)
	}

	prog = &Program{
		Lines: slices.Clone(asm.Line),
	}

	return
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	var bytes []byte
	var label string
	var index int

	// no-op
	if len(words) == 0 {
		return
	}

	initial_words := words

	defer func() {
		if len(bytes) == 0 {
			return
		}
		line := Line{LineNo: lineno, Addr: asm.currentAddr(), Words: initial_words, Bytes: bytes, LinkLabel: label, LinkIndex: index}
		asm.Line = append(asm.Line, line)
	}()

	switch words[0] {
	case ".ds":
		if len(words[1]) == 0 {
			err = ErrDataMissing
			return
		}
		bytes = []byte(words[1])
		return
	case ".db":
		if len(words) < 2 {
			err = ErrDataMissing
			return
		}
		for _, word := range words[1:] {
			var value byte
			value, err = asm.valueOf(word)
			if err != nil {
				bytes = nil
				return
			}
			bytes = append(bytes, value)
		}
		return
	}

	op, ok := mnemonicMap[strings.ToUpper(words[0])]
	if !ok {
		err = ErrOpcodeInvalid
		return
	}
	if !op.Supported() {
		err = ErrOpcodeUnsupported
		return
	}

	_, operands, _ := op.Decode()
	args := words[1:]
	if len(args) < operands {
		err = ErrOpcodeValueMissing
		return
	}
	if len(args) > operands {
		err = ErrOpcodeExtraArgs
		return
	}

	code := []byte{byte(op)}
	for n, arg := range args {
		var value byte
		switch {
		case n == 1 && op.Immediate() && reIdentifier.MatchString(arg):
			label = arg
			index = 1 + n
		case n == 1 && op.Immediate():
			value, err = asm.valueOf(arg)
		default:
			value, err = asm.registerOf(arg)
		}
		if err != nil {
			return
		}
		code = append(code, value)
	}
	bytes = code

	return
}
