package cpu

const (
	MEMORY_SIZE = 256 // Bytes of addressable memory.
)

// Memory is the flat, unprotected LS-8 address space.
type Memory [MEMORY_SIZE]byte

// Read returns the byte at addr.
func (mem *Memory) Read(addr byte) byte {
	return mem[addr]
}

// Write stores value at addr.
func (mem *Memory) Write(addr byte, value byte) {
	mem[addr] = value
}

// Load copies image to address 0 and clears the remainder of memory.
func (mem *Memory) Load(image []byte) (err error) {
	if len(image) > len(mem) {
		err = ErrImageTooLarge
		return
	}

	n := copy(mem[:], image)
	clear(mem[n:])

	return
}
