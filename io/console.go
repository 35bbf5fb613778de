// Package io provides the output collaborators for the LS-8 emulator.
// PRN prints a register as a decimal line and PRA prints it as a raw
// character; a Console decides where those writes go.
package io

// Console receives the values emitted by the CPU, in program order.
type Console interface {
	// PrintNumber emits value as a newline-terminated decimal integer.
	PrintNumber(value byte) error
	// PrintChar emits value as a single raw byte.
	PrintChar(value byte) error
}
