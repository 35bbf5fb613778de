package cpu

// aluHandler executes an ALU-family instruction. ALU handlers only see the
// register bank and the flags; memory and the program counter are out of
// their reach.
type aluHandler func(reg *Register, fl *Flags, a, b byte) error

var aluTable = map[Opcode]aluHandler{
	OP_ADD:  aluAdd,
	OP_ADDI: aluAddImmediate,
	OP_SUB:  aluSub,
	OP_MUL:  aluMul,
	OP_DIV:  aluDiv,
	OP_MOD:  aluMod,
	OP_INC:  aluInc,
	OP_DEC:  aluDec,
	OP_CMP:  aluCmp,
	OP_AND:  aluAnd,
	OP_OR:   aluOr,
	OP_XOR:  aluXor,
	OP_NOT:  aluNot,
	OP_SHL:  aluShl,
	OP_SHR:  aluShr,
}

// aluBinary adapts a two-register operation into an aluHandler.
func aluBinary(op func(x, y byte) byte) aluHandler {
	return func(reg *Register, _ *Flags, a, b byte) (err error) {
		ra, rb, err := reg.pair(a, b)
		if err != nil {
			return
		}
		*ra = op(*ra, *rb)
		return
	}
}

// aluUnary adapts a single-register operation into an aluHandler.
func aluUnary(op func(x byte) byte) aluHandler {
	return func(reg *Register, _ *Flags, a, _ byte) (err error) {
		ra, err := reg.Ref(a)
		if err != nil {
			return
		}
		*ra = op(*ra)
		return
	}
}

// Byte arithmetic wraps modulo 256. Shifts of 8 or more yield 0.
var (
	aluAdd = aluBinary(func(x, y byte) byte { return x + y })
	aluSub = aluBinary(func(x, y byte) byte { return x - y })
	aluMul = aluBinary(func(x, y byte) byte { return x * y })
	aluAnd = aluBinary(func(x, y byte) byte { return x & y })
	aluOr  = aluBinary(func(x, y byte) byte { return x | y })
	aluXor = aluBinary(func(x, y byte) byte { return x ^ y })
	aluShl = aluBinary(func(x, y byte) byte { return x << y })
	aluShr = aluBinary(func(x, y byte) byte { return x >> y })
	aluNot = aluUnary(func(x byte) byte { return ^x })
	aluInc = aluUnary(func(x byte) byte { return x + 1 })
	aluDec = aluUnary(func(x byte) byte { return x - 1 })
)

func aluAddImmediate(reg *Register, _ *Flags, a, imm byte) (err error) {
	ra, err := reg.Ref(a)
	if err != nil {
		return
	}
	*ra += imm
	return
}

func aluDiv(reg *Register, _ *Flags, a, b byte) (err error) {
	ra, rb, err := reg.pair(a, b)
	if err != nil {
		return
	}
	if *rb == 0 {
		err = ErrDivideByZero
		return
	}
	*ra /= *rb
	return
}

func aluMod(reg *Register, _ *Flags, a, b byte) (err error) {
	ra, rb, err := reg.pair(a, b)
	if err != nil {
		return
	}
	if *rb == 0 {
		err = ErrDivideByZero
		return
	}
	*ra %= *rb
	return
}

func aluCmp(reg *Register, fl *Flags, a, b byte) (err error) {
	ra, rb, err := reg.pair(a, b)
	if err != nil {
		return
	}
	fl.Compare(*ra, *rb)
	return
}
