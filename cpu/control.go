package cpu

// controlHandler executes a control-family instruction against the whole
// machine. Handlers for opcodes with the PC-control bit set must leave the
// program counter at the next instruction on every path.
type controlHandler func(cpu *Cpu, a, b byte) error

var controlTable = map[Opcode]controlHandler{
	OP_NOP:  ctlNop,
	OP_HLT:  ctlHlt,
	OP_LDI:  ctlLdi,
	OP_ST:   ctlSt,
	OP_PRN:  ctlPrn,
	OP_PRA:  ctlPra,
	OP_PUSH: ctlPush,
	OP_POP:  ctlPop,
	OP_CALL: ctlCall,
	OP_RET:  ctlRet,
	OP_JMP:  ctlJmp,
	OP_JEQ:  ctlJeq,
	OP_JNE:  ctlJne,
}

func ctlNop(cpu *Cpu, _, _ byte) error {
	return nil
}

func ctlHlt(cpu *Cpu, _, _ byte) error {
	cpu.Halted = true
	return nil
}

func ctlLdi(cpu *Cpu, a, imm byte) (err error) {
	ra, err := cpu.Register.Ref(a)
	if err != nil {
		return
	}
	*ra = imm
	return
}

func ctlSt(cpu *Cpu, a, b byte) (err error) {
	ra, rb, err := cpu.Register.pair(a, b)
	if err != nil {
		return
	}
	cpu.Memory.Write(*ra, *rb)
	return
}

func ctlPrn(cpu *Cpu, a, _ byte) (err error) {
	value, err := cpu.Register.Get(a)
	if err != nil {
		return
	}
	if cpu.Console == nil {
		err = ErrConsoleInvalid
		return
	}
	err = cpu.Console.PrintNumber(value)
	return
}

func ctlPra(cpu *Cpu, a, _ byte) (err error) {
	value, err := cpu.Register.Get(a)
	if err != nil {
		return
	}
	if cpu.Console == nil {
		err = ErrConsoleInvalid
		return
	}
	err = cpu.Console.PrintChar(value)
	return
}

// ctlPush reads the register before the stack pointer moves, so PUSH R7
// stores the pre-decrement stack pointer.
func ctlPush(cpu *Cpu, a, _ byte) (err error) {
	value, err := cpu.Register.Get(a)
	if err != nil {
		return
	}
	err = cpu.Push(value)
	return
}

// ctlPop writes the register after the stack pointer moves, so POP R7
// loads the popped value into the stack pointer.
func ctlPop(cpu *Cpu, a, _ byte) (err error) {
	ra, err := cpu.Register.Ref(a)
	if err != nil {
		return
	}
	value, err := cpu.Pop()
	if err != nil {
		return
	}
	*ra = value
	return
}

// ctlCall pushes the address following the CALL and jumps to reg[a].
// The target is read before the push, and reg[a] is left untouched.
func ctlCall(cpu *Cpu, a, _ byte) (err error) {
	target, err := cpu.Register.Get(a)
	if err != nil {
		return
	}
	err = cpu.Push(cpu.Pc + byte(OP_CALL.Size()))
	if err != nil {
		return
	}
	cpu.Pc = target
	return
}

func ctlRet(cpu *Cpu, _, _ byte) (err error) {
	pc, err := cpu.Pop()
	if err != nil {
		return
	}
	cpu.Pc = pc
	return
}

func ctlJmp(cpu *Cpu, a, _ byte) (err error) {
	target, err := cpu.Register.Get(a)
	if err != nil {
		return
	}
	cpu.Pc = target
	return
}

// ctlBranch jumps to reg[a] when taken, and otherwise steps over the
// two-byte branch instruction.
func ctlBranch(cpu *Cpu, a byte, taken bool) (err error) {
	target, err := cpu.Register.Get(a)
	if err != nil {
		return
	}
	if taken {
		cpu.Pc = target
	} else {
		cpu.Pc += 2
	}
	return
}

func ctlJeq(cpu *Cpu, a, _ byte) error {
	return ctlBranch(cpu, a, cpu.Flags.Equal())
}

func ctlJne(cpu *Cpu, a, _ byte) error {
	return ctlBranch(cpu, a, !cpu.Flags.Equal())
}
