package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlu(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		op     Opcode
		x, y   byte
		result byte
	}){
		{OP_ADD, 0x10, 0x20, 0x30},
		{OP_ADD, 0xff, 0x02, 0x01},
		{OP_SUB, 0x10, 0x01, 0x0f},
		{OP_SUB, 0x00, 0x01, 0xff},
		{OP_MUL, 0x10, 0x10, 0x00},
		{OP_MUL, 0x07, 0x06, 0x2a},
		{OP_DIV, 0x2a, 0x05, 0x08},
		{OP_MOD, 0x2a, 0x05, 0x02},
		{OP_AND, 0xf0, 0x3c, 0x30},
		{OP_OR, 0xf0, 0x0f, 0xff},
		{OP_XOR, 0xff, 0x0f, 0xf0},
		{OP_SHL, 0x81, 0x01, 0x02},
		{OP_SHL, 0x01, 0x08, 0x00},
		{OP_SHR, 0x81, 0x01, 0x40},
		{OP_SHR, 0x80, 0x09, 0x00},
		{OP_NOT, 0x0f, 0x00, 0xf0},
		{OP_INC, 0xff, 0x00, 0x00},
		{OP_DEC, 0x00, 0x00, 0xff},
	}

	for _, entry := range table {
		reg := &Register{}
		var fl Flags
		reg[2] = entry.x
		reg[3] = entry.y

		handler, ok := aluTable[entry.op]
		assert.True(ok, entry.op.String())
		err := handler(reg, &fl, 2, 3)
		assert.NoError(err, entry.op.String())
		assert.Equal(entry.result, reg[2], "%v 0x%02x 0x%02x", entry.op, entry.x, entry.y)
		assert.Equal(entry.y, reg[3], entry.op.String())
		assert.Equal(Flags(0), fl, entry.op.String())
	}
}

func TestAlu_Laws(t *testing.T) {
	assert := assert.New(t)

	laws := map[Opcode]func(x, y int) int{
		OP_ADD: func(x, y int) int { return (x + y) % 256 },
		OP_MUL: func(x, y int) int { return (x * y) % 256 },
		OP_AND: func(x, y int) int { return x & y },
		OP_OR:  func(x, y int) int { return x | y },
		OP_XOR: func(x, y int) int { return x ^ y },
		OP_NOT: func(x, y int) int { return ^x & 0xff },
		OP_SHL: func(x, y int) int { return (x << y) % 256 },
		OP_SHR: func(x, y int) int { return x >> y },
	}

	for op, law := range laws {
		for x := range 256 {
			for y := range 256 {
				reg := &Register{byte(x), byte(y)}
				var fl Flags
				err := aluTable[op](reg, &fl, 0, 1)
				if !assert.NoError(err) {
					return
				}
				if !assert.Equal(byte(law(x, y)), reg[0], "%v 0x%02x 0x%02x", op, x, y) {
					return
				}
			}
		}
	}
}

func TestAlu_AddImmediate(t *testing.T) {
	assert := assert.New(t)

	reg := &Register{}
	var fl Flags
	reg[4] = 0xfe

	assert.NoError(aluAddImmediate(reg, &fl, 4, 3))
	assert.Equal(byte(0x01), reg[4])

	assert.NoError(aluAddImmediate(reg, &fl, 4, 0xff))
	assert.Equal(byte(0x00), reg[4])

	// The immediate is never taken as a register index.
	assert.NoError(aluAddImmediate(reg, &fl, 4, 200))
	assert.Equal(byte(200), reg[4])
}

func TestAlu_Cmp(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		x, y  byte
		flags Flags
	}){
		{5, 5, FLAG_EQ},
		{6, 5, FLAG_GT},
		{4, 5, FLAG_LT},
		{0xff, 0x01, FLAG_GT}, // unsigned
		{0x00, 0xff, FLAG_LT},
	}

	for _, entry := range table {
		reg := &Register{entry.x, entry.y}
		fl := FLAG_EQ | FLAG_GT | FLAG_LT

		assert.NoError(aluCmp(reg, &fl, 0, 1))
		assert.Equal(entry.flags, fl, "0x%02x 0x%02x", entry.x, entry.y)
		assert.Equal(entry.x, reg[0])
		assert.Equal(entry.y, reg[1])
	}
}

func TestAlu_DivideByZero(t *testing.T) {
	assert := assert.New(t)

	for x := range 256 {
		reg := &Register{byte(x), 0}
		var fl Flags

		assert.ErrorIs(aluMod(reg, &fl, 0, 1), ErrDivideByZero)
		assert.ErrorIs(aluDiv(reg, &fl, 0, 1), ErrDivideByZero)
		assert.Equal(byte(x), reg[0])
	}
}

func TestAlu_Family(t *testing.T) {
	assert := assert.New(t)

	for op := range aluTable {
		family, _, setsPc := op.Decode()
		assert.Equal(FAMILY_ALU, family, op.String())
		assert.False(setsPc, op.String())
	}
}
