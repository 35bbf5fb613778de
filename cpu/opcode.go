package cpu

// Family is the dispatch family of an opcode.
type Family int

//go:generate go tool stringer -linecomment -type=Family
const (
	FAMILY_CONTROL = Family(0) // control
	FAMILY_ALU     = Family(1) // alu
)

// Opcode is the first byte of an instruction.
//
// Bits 7-6 hold the operand count, bit 5 selects the ALU family and bit 4 is
// set when the handler is responsible for the program counter.
type Opcode byte

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_NOP  = Opcode(0b00000000) // NOP
	OP_HLT  = Opcode(0b00000001) // HLT
	OP_RET  = Opcode(0b00010001) // RET
	OP_IRET = Opcode(0b00010011) // IRET
	OP_PUSH = Opcode(0b01000101) // PUSH
	OP_POP  = Opcode(0b01000110) // POP
	OP_PRN  = Opcode(0b01000111) // PRN
	OP_PRA  = Opcode(0b01001000) // PRA
	OP_CALL = Opcode(0b01010000) // CALL
	OP_INT  = Opcode(0b01010010) // INT
	OP_JMP  = Opcode(0b01010100) // JMP
	OP_JEQ  = Opcode(0b01010101) // JEQ
	OP_JNE  = Opcode(0b01010110) // JNE
	OP_JGT  = Opcode(0b01010111) // JGT
	OP_JLT  = Opcode(0b01011000) // JLT
	OP_JLE  = Opcode(0b01011001) // JLE
	OP_JGE  = Opcode(0b01011010) // JGE
	OP_INC  = Opcode(0b01100101) // INC
	OP_DEC  = Opcode(0b01100110) // DEC
	OP_NOT  = Opcode(0b01101001) // NOT
	OP_LDI  = Opcode(0b10000010) // LDI
	OP_LD   = Opcode(0b10000011) // LD
	OP_ST   = Opcode(0b10000100) // ST
	OP_ADD  = Opcode(0b10100000) // ADD
	OP_SUB  = Opcode(0b10100001) // SUB
	OP_MUL  = Opcode(0b10100010) // MUL
	OP_DIV  = Opcode(0b10100011) // DIV
	OP_MOD  = Opcode(0b10100100) // MOD
	OP_CMP  = Opcode(0b10100111) // CMP
	OP_AND  = Opcode(0b10101000) // AND
	OP_OR   = Opcode(0b10101010) // OR
	OP_XOR  = Opcode(0b10101011) // XOR
	OP_SHL  = Opcode(0b10101100) // SHL
	OP_SHR  = Opcode(0b10101101) // SHR
	OP_ADDI = Opcode(0b10101110) // ADDI
)

const (
	opcodeOperandShift = 6
	opcodeOperandMask  = 0b11
	opcodeAluBit       = 0b00100000
	opcodeSetsPcBit    = 0b00010000
)

// unsupportedOps are named in the LS-8 opcode table but have no handler.
var unsupportedOps = map[Opcode]bool{
	OP_IRET: true,
	OP_INT:  true,
	OP_LD:   true,
	OP_JGT:  true,
	OP_JLT:  true,
	OP_JLE:  true,
	OP_JGE:  true,
}

// Decode returns the family, operand count, and PC-control bit of the opcode.
func (op Opcode) Decode() (family Family, operands int, setsPc bool) {
	family = FAMILY_CONTROL
	if op&opcodeAluBit != 0 {
		family = FAMILY_ALU
	}
	operands = int(op>>opcodeOperandShift) & opcodeOperandMask
	setsPc = op&opcodeSetsPcBit != 0
	return
}

// Size returns the instruction length in bytes, including the opcode.
func (op Opcode) Size() int {
	_, operands, _ := op.Decode()
	return 1 + operands
}

// Immediate returns true if the second operand is a literal, not a register.
func (op Opcode) Immediate() bool {
	return op == OP_LDI || op == OP_ADDI
}

// Supported returns true if the opcode has a handler in its family table.
func (op Opcode) Supported() bool {
	family, _, _ := op.Decode()
	switch family {
	case FAMILY_ALU:
		_, ok := aluTable[op]
		return ok
	default:
		_, ok := controlTable[op]
		return ok
	}
}

// Known returns true if the opcode is named in the LS-8 opcode table.
func (op Opcode) Known() bool {
	return op.Supported() || unsupportedOps[op]
}
