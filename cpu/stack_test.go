package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(nil)

	assert.NoError(cpu.Push(0x12))
	assert.Equal(byte(STACK_TOP-1), cpu.Register[REG_SP])
	assert.Equal(byte(0x12), cpu.Memory[STACK_TOP-1])
	assert.Equal(byte(0x12), cpu.Peek())
}

func TestStack_Pop(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(nil)
	assert.NoError(cpu.Push(0x12))
	assert.NoError(cpu.Push(0xab))

	val, err := cpu.Pop()
	assert.NoError(err)
	assert.Equal(byte(0xab), val)
	assert.Equal(byte(STACK_TOP-1), cpu.Register[REG_SP])

	val, err = cpu.Pop()
	assert.NoError(err)
	assert.Equal(byte(0x12), val)
	assert.Equal(byte(STACK_TOP), cpu.Register[REG_SP])
}

func TestStack_Swap(t *testing.T) {
	assert := assert.New(t)

	cpu, _ := newTestCpu(t,
		byte(OP_LDI), 0, 0x11,
		byte(OP_LDI), 1, 0x22,
		byte(OP_PUSH), 0,
		byte(OP_PUSH), 1,
		byte(OP_POP), 0,
		byte(OP_POP), 1,
		byte(OP_HLT),
	)

	assert.NoError(cpu.Run())
	assert.Equal(byte(0x22), cpu.Register[0])
	assert.Equal(byte(0x11), cpu.Register[1])
	assert.Equal(byte(STACK_TOP), cpu.Register[REG_SP])
}

func TestStack_Overflow(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(nil)
	cpu.Register[REG_SP] = 1

	assert.NoError(cpu.Push(0x01))
	assert.Equal(byte(0), cpu.Register[REG_SP])

	assert.ErrorIs(cpu.Push(0x02), ErrStackOverflow)
	assert.Equal(byte(0), cpu.Register[REG_SP])
	assert.Equal(byte(0x01), cpu.Memory[0])
}

func TestStack_Underflow(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(nil)
	cpu.Register[REG_SP] = 0xfe
	cpu.Memory[0xfe] = 0x33

	val, err := cpu.Pop()
	assert.NoError(err)
	assert.Equal(byte(0x33), val)

	_, err = cpu.Pop()
	assert.ErrorIs(err, ErrStackUnderflow)
	assert.Equal(byte(0xff), cpu.Register[REG_SP])
}

func TestStack_Reserved(t *testing.T) {
	assert := assert.New(t)

	// Popping an empty stack reads the reserved region above STACK_TOP.
	cpu := NewCpu(nil)
	cpu.Memory[STACK_TOP] = 0x77

	val, err := cpu.Pop()
	assert.NoError(err)
	assert.Equal(byte(0x77), val)
	assert.Equal(byte(STACK_TOP+1), cpu.Register[REG_SP])
}
