// Package cpu implements the LS-8 microprocessor and its assembler.
//
// The CPU consists of a program counter, 256 bytes of flat memory, eight
// 8-bit general-purpose registers (R0-R7, with R7 used as the stack pointer),
// and a flags register written by CMP. Instructions are one opcode byte
// followed by up to two operand bytes; the opcode itself encodes its operand
// count, its family (ALU or control) and whether it sets the program counter.
//
// The assembler translates LS-8 mnemonics into a Program, supporting labels,
// equates, data directives and compile-time expression evaluation.
package cpu
