// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
	"strings"

	"github.com/ezrec/ls8/io"
)

// Console is the output collaborator used by PRN and PRA.
type Console io.Console

var _cpu_defines = map[string]string{
	"MEMORY_SIZE": fmt.Sprintf("%v", MEMORY_SIZE),
	"STACK_TOP":   fmt.Sprintf("%#x", STACK_TOP),
	"SP":          fmt.Sprintf("R%v", REG_SP),
	"FLAG_EQ":     fmt.Sprintf("%#x", byte(FLAG_EQ)),
	"FLAG_GT":     fmt.Sprintf("%#x", byte(FLAG_GT)),
	"FLAG_LT":     fmt.Sprintf("%#x", byte(FLAG_LT)),
}

// Cpu is the simulation context for the LS-8 processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory   Memory   // Flat address space.
	Register Register // Register bank, R7 is the stack pointer.
	Flags    Flags    // Condition flags from the last CMP.
	Pc       byte     // Address of the next instruction.
	Halted   bool     // Set by HLT.

	Console Console // Output for PRN and PRA.

	Ticks int // Instructions executed since reset.
}

// NewCpu creates a reset CPU writing to console.
func NewCpu(console Console) (cpu *Cpu) {
	cpu = &Cpu{
		Console: console,
	}
	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset the CPU state.
// - Clears memory, registers and flags.
// - Sets the stack pointer to STACK_TOP.
// - Sets the program counter to 0 and leaves the CPU running.
// - Zeros the tick counter.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Memory[:])
	clear(cpu.Register[:])
	cpu.Register[REG_SP] = STACK_TOP
	cpu.Flags = 0
	cpu.Pc = 0
	cpu.Halted = false
	cpu.Ticks = 0
}

// Load places a program image into memory at address 0.
func (cpu *Cpu) Load(image []byte) (err error) {
	err = cpu.Memory.Load(image)
	if err != nil {
		return
	}

	if cpu.Verbose {
		log.Printf("cpu: loaded %d bytes", len(image))
	}

	return
}

// Fetch returns the opcode at the program counter and the two bytes after it.
// Operand bytes are always read, whether or not the instruction uses them.
func (cpu *Cpu) Fetch() (op Opcode, a, b byte) {
	op = Opcode(cpu.Memory.Read(cpu.Pc))
	a = cpu.Memory.Read(cpu.Pc + 1)
	b = cpu.Memory.Read(cpu.Pc + 2)
	return
}

// Tick executes a single instruction cycle.
func (cpu *Cpu) Tick() (err error) {
	if cpu.Halted {
		err = ErrHalted
		return
	}

	pc := cpu.Pc
	op, a, b := cpu.Fetch()

	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode{Pc: pc, Opcode: op}, err)
		}
	}()

	if cpu.Verbose {
		log.Printf("cpu: %02x: %v %02x %02x", pc, op, a, b)
	}

	err = cpu.Execute(op, a, b)
	if err != nil {
		return
	}

	cpu.Ticks++

	return
}

// Execute dispatches a decoded instruction and advances the program counter
// unless the opcode is responsible for it.
func (cpu *Cpu) Execute(op Opcode, a, b byte) (err error) {
	family, operands, setsPc := op.Decode()

	switch family {
	case FAMILY_ALU:
		handler, ok := aluTable[op]
		if !ok {
			err = cpu.unhandled(op)
			return
		}
		err = handler(&cpu.Register, &cpu.Flags, a, b)
	case FAMILY_CONTROL:
		handler, ok := controlTable[op]
		if !ok {
			err = cpu.unhandled(op)
			return
		}
		err = handler(cpu, a, b)
	}
	if err != nil {
		return
	}

	if !setsPc {
		cpu.Pc += byte(1 + operands)
	}

	return
}

// unhandled classifies an opcode missing from the dispatch tables.
func (cpu *Cpu) unhandled(op Opcode) error {
	if unsupportedOps[op] {
		return ErrOpcodeUnsupported
	}
	return ErrOpcodeUnknown
}

// Run ticks the CPU until it halts, or an instruction fails.
func (cpu *Cpu) Run() (err error) {
	for !cpu.Halted {
		err = cpu.Tick()
		if err != nil {
			return
		}
	}

	return
}

// Trace returns a single line CPU state summary:
// PC | opcode operands | R0..R7
func (cpu *Cpu) Trace() string {
	op, a, b := cpu.Fetch()

	var sb strings.Builder
	fmt.Fprintf(&sb, "%02X | %02X %02X %02X |", cpu.Pc, byte(op), a, b)
	for _, val := range cpu.Register {
		fmt.Fprintf(&sb, " %02X", val)
	}

	return sb.String()
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{
		"pc",
		"fl",
		"r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7",
		"stack",
		"ticks",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			op, _, _ := cpu.Fetch()
			strval = fmt.Sprintf("%02X (%v)", cpu.Pc, op)
		case "fl":
			strval = cpu.Flags.String()
		case "r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7":
			strval = fmt.Sprintf("%02X", cpu.Register[reg[1]-'0'])
		case "stack":
			strval = fmt.Sprintf("%02X", cpu.Peek())
		case "ticks":
			strval = fmt.Sprintf("%d", cpu.Ticks)
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}
