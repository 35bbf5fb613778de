package cpu

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ls8/io"
)

func FuzzCpu(f *testing.F) {
	for n := range 256 {
		f.Add(byte(n), byte(0), byte(1), byte(0x30), byte(0x05))
		f.Add(byte(n), byte(7), byte(2), byte(0xff), byte(0x00))
	}

	f.Fuzz(func(t *testing.T, opcode byte, a byte, b byte, x byte, y byte) {
		assert := assert.New(t)

		op := Opcode(opcode)
		output := &bytes.Buffer{}
		cpu := NewCpu(&io.Terminal{Output: output})

		pc := byte(0x40)
		cpu.Pc = pc
		cpu.Memory[pc] = opcode
		cpu.Memory[pc+1] = a
		cpu.Memory[pc+2] = b
		for n := range 7 {
			cpu.Register[n] = x + byte(n)*y
		}
		cpu.Flags = FLAG_GT

		pre := *cpu

		err := cpu.Tick()

		family, operands, setsPc := op.Decode()
		if !op.Known() {
			assert.ErrorIs(err, ErrOpcodeUnknown)
		}
		if unsupportedOps[op] {
			assert.ErrorIs(err, ErrOpcodeUnsupported)
		}
		if err != nil {
			// Failed instructions never advance.
			assert.Equal(pc, cpu.Pc)
			assert.Equal(pre.Ticks, cpu.Ticks)
			assert.True(errors.Is(err, ErrOpcode{}))
			return
		}

		assert.Equal(1, cpu.Ticks)
		if !setsPc {
			assert.Equal(pc+byte(1+operands), cpu.Pc, op.String())
		}

		if family == FAMILY_ALU {
			// ALU instructions only touch registers and flags.
			assert.Equal(pre.Memory, cpu.Memory, op.String())
			assert.Empty(output.Bytes(), op.String())
			for n := range REGISTER_COUNT {
				if byte(n) != a {
					assert.Equal(pre.Register[n], cpu.Register[n], op.String())
				}
			}
			if op != OP_CMP {
				assert.Equal(pre.Flags, cpu.Flags, op.String())
			}
		}
	})
}
