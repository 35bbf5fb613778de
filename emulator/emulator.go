// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/internal"
	"github.com/ezrec/ls8/io"
)

const (
	DEFAULT_TICK_LIMIT = 1 << 20 // Default watchdog limit for Run.
)

var _emulator_defines = map[string]string{
	"TICK_LIMIT": fmt.Sprintf("%v", DEFAULT_TICK_LIMIT),
}

// Emulator state. CPU + program listing + console.
type Emulator struct {
	Verbose   bool         // If set, enables verbose logging.
	Trace     bool         // If set, logs the CPU state before every tick.
	TickLimit int          // Ticks allowed per Run, 0 for unlimited.
	*cpu.Cpu               // Reference to the CPU simulation.
	Program   *cpu.Program // Reference to the currently running program listing.

	Terminal io.Terminal // Console for PRN and PRA.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Program:   &cpu.Program{},
		TickLimit: DEFAULT_TICK_LIMIT,
	}

	emu.Cpu = cpu.NewCpu(&emu.Terminal)

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
		emu.Terminal.Defines(),
	)
}

// Reset the CPU and load the program image.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	emu.Cpu.Reset()

	image := emu.Program.Binary()
	err = emu.Cpu.Load(image)
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("emulator: image %d bytes, xxhash %016x", len(image), emu.Program.Sum())
	}

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// LineNo returns the source line number for the instruction at the program counter.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Cpu.Pc)
	if dbg.Line == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	if emu.Cpu.Halted {
		done = true
		return
	}

	lineno := emu.LineNo()
	addr := emu.Cpu.Pc
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Addr: addr, Err: err}
		}
	}()

	if emu.Trace {
		log.Printf("TRACE: %v", emu.Cpu.Trace())
	}

	err = emu.Cpu.Tick()
	if err != nil {
		return
	}

	done = emu.Cpu.Halted

	return
}

// Run ticks the emulator until the program halts, fails, or exceeds the
// tick limit.
func (emu *Emulator) Run() (err error) {
	start := emu.Cpu.Ticks

	for done := false; !done; {
		if emu.TickLimit > 0 && emu.Cpu.Ticks-start >= emu.TickLimit {
			err = &ErrRuntime{LineNo: emu.LineNo(), Addr: emu.Cpu.Pc, Err: ErrTickLimit}
			return
		}

		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	if emu.Verbose {
		log.Printf("emulator: halted after %d ticks", emu.Cpu.Ticks-start)
	}

	return
}
