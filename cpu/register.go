package cpu

import (
	"strings"
)

const (
	REGISTER_COUNT = 8    // General-purpose registers.
	REG_SP         = 7    // Register used as the stack pointer.
	STACK_TOP      = 0xf4 // Reset value of the stack pointer.
)

// Register is the LS-8 register bank.
type Register [REGISTER_COUNT]byte

// Ref returns a reference to register index, or ErrRegisterInvalid.
func (reg *Register) Ref(index byte) (ref *byte, err error) {
	if int(index) >= len(reg) {
		err = ErrRegisterInvalid
		return
	}

	ref = &reg[index]
	return
}

// Get returns the value of register index.
func (reg *Register) Get(index byte) (value byte, err error) {
	ref, err := reg.Ref(index)
	if err != nil {
		return
	}

	value = *ref
	return
}

// pair returns references to registers a and b.
func (reg *Register) pair(a, b byte) (ra, rb *byte, err error) {
	ra, err = reg.Ref(a)
	if err != nil {
		return
	}
	rb, err = reg.Ref(b)
	return
}

// Flags is the condition register written by CMP.
type Flags byte

// Flag bits, mutually exclusive after a CMP.
const (
	FLAG_EQ = Flags(1 << 0)
	FLAG_GT = Flags(1 << 1)
	FLAG_LT = Flags(1 << 2)
)

// Compare replaces all flags with the unsigned comparison of a and b.
func (fl *Flags) Compare(a, b byte) {
	switch {
	case a == b:
		*fl = FLAG_EQ
	case a > b:
		*fl = FLAG_GT
	default:
		*fl = FLAG_LT
	}
}

// Equal reports whether the Equal flag is set.
func (fl Flags) Equal() bool {
	return fl&FLAG_EQ != 0
}

// String returns the set flags as letters, e.g. "E", or "-" if none.
func (fl Flags) String() string {
	var sb strings.Builder
	if fl&FLAG_LT != 0 {
		sb.WriteByte('L')
	}
	if fl&FLAG_GT != 0 {
		sb.WriteByte('G')
	}
	if fl&FLAG_EQ != 0 {
		sb.WriteByte('E')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
