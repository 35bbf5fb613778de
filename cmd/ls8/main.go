// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command ls8 assembles and runs LS-8 programs.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/emulator"
	"github.com/ezrec/ls8/loader"
)

func main() {
	log.SetPrefix("ls8: ")
	log.SetFlags(0)

	var listing string
	var save bool
	var verbose bool
	var trace bool
	var limit int

	flag.StringVar(&listing, "l", "", "Write .ls8 listing to `file`")
	flag.BoolVar(&save, "s", false, "Do not execute")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&trace, "t", false, "Trace every instruction")
	flag.IntVar(&limit, "n", emulator.DEFAULT_TICK_LIMIT, "Tick limit, 0 for unlimited")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <program.ls8 | program.asm>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.Trace = trace
	emu.TickLimit = limit
	emu.Terminal.Output = os.Stdout

	path := flag.Arg(0)

	var prog *cpu.Program
	var err error
	if filepath.Ext(path) == ".asm" {
		prog, err = assemble(path, emu, verbose)
	} else {
		prog, err = loader.Open(path)
	}
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}

	if len(listing) != 0 {
		ouf, err := os.Create(listing)
		if err != nil {
			log.Fatalf("%v: %v", listing, err)
		}
		err = prog.Listing(ouf)
		if err == nil {
			err = ouf.Close()
		}
		if err != nil {
			log.Fatalf("%v: %v", listing, err)
		}
	}

	if save {
		return
	}

	emu.Program = prog
	err = emu.Reset()
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}

	err = emu.Run()
	if err != nil {
		if verbose {
			log.Printf("cpu state:\n%v", emu.Cpu.String())
		}
		log.Fatalf("%v: %v", path, err)
	}
}

// assemble compiles an assembly source file with the emulator's defines.
func assemble(path string, emu *emulator.Emulator, verbose bool) (prog *cpu.Program, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	asm := &cpu.Assembler{Verbose: verbose}
	for key, value := range emu.Defines() {
		asm.Predefine(key, value)
	}

	prog, err = asm.Parse(inf)
	return
}
