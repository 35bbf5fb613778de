package cpu

// Push decrements the stack pointer and stores value at the new top of stack.
func (cpu *Cpu) Push(value byte) (err error) {
	sp := cpu.Register[REG_SP]
	if sp == 0 {
		err = ErrStackOverflow
		return
	}

	sp--
	cpu.Register[REG_SP] = sp
	cpu.Memory.Write(sp, value)

	return
}

// Pop reads the top of stack and increments the stack pointer.
func (cpu *Cpu) Pop() (value byte, err error) {
	sp := cpu.Register[REG_SP]
	if sp == MEMORY_SIZE-1 {
		err = ErrStackUnderflow
		return
	}

	value = cpu.Memory.Read(sp)
	cpu.Register[REG_SP] = sp + 1

	return
}

// Peek returns the top of stack without moving the stack pointer.
func (cpu *Cpu) Peek() (value byte) {
	return cpu.Memory.Read(cpu.Register[REG_SP])
}
