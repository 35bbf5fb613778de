package io

import (
	"fmt"
	"io"
	"iter"
	"maps"
	"strconv"
)

// Terminal is a Console writing to an io.Writer, one unbuffered write per
// emitted value.
type Terminal struct {
	Output io.Writer
}

var _ Console = (*Terminal)(nil)

// Defines returns an iter of defines for the terminal.
func (tc *Terminal) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"NEWLINE": fmt.Sprintf("%v", '\n'),
	})
}

// PrintNumber writes value in decimal followed by a newline.
func (tc *Terminal) PrintNumber(value byte) (err error) {
	if tc.Output == nil {
		err = ErrOutputMissing
		return
	}

	line := strconv.AppendUint(nil, uint64(value), 10)
	line = append(line, '\n')
	_, err = tc.Output.Write(line)

	return
}

// PrintChar writes value as a single byte.
func (tc *Terminal) PrintChar(value byte) (err error) {
	if tc.Output == nil {
		err = ErrOutputMissing
		return
	}

	_, err = tc.Output.Write([]byte{value})

	return
}
