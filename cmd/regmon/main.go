// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ezrec/zregs/emulator"
	"github.com/ezrec/zregs/translate"
)

// exprList collects repeated -e arguments.
type exprList []string

func (el *exprList) String() string {
	return strings.Join(*el, ",")
}

func (el *exprList) Set(value string) error {
	*el = append(*el, value)
	return nil
}

func main() {
	var exprs exprList
	var verbose bool
	var quiet bool

	flag.Var(&exprs, "e", "Watch expression to evaluate (repeatable)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&quiet, "q", false, "Do not dump CPU state")

	flag.Parse()

	if flag.NArg() > 1 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args()[1:])
	}

	if verbose {
		log.Printf("regmon: locale %v", translate.Language())
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.Output = os.Stdout
	emu.Reset()

	// Run a monitor script against the fresh CPU.
	if flag.NArg() == 1 {
		script := flag.Arg(0)
		src, err := os.ReadFile(script)
		if err != nil {
			log.Fatalf("%v: %v", script, err)
		}

		err = emu.Exec(script, src)
		if err != nil {
			log.Fatalf("%v: %v", script, err)
		}
	}

	err := watch(emu, exprs, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}

	if !quiet {
		fmt.Print(emu.Cpu.String())
	}
}
