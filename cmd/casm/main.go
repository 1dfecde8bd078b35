// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/ezrec/casm/compiler"
	"github.com/ezrec/casm/elf32"
	"github.com/ezrec/casm/launch"
)

func main() {
	progname := filepath.Base(os.Args[0])
	log.SetFlags(0)
	log.SetPrefix(progname + ": ")

	opts, err := parseArgs(progname, os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatalf("%v", err)
	}

	if opts.run > 1 {
		log.Print(f("warning: option -r is repeated"))
	}

	cfg := compiler.DefaultConfig()
	if len(opts.config) != 0 {
		cfg, err = compiler.LoadConfig(opts.config, nil)
		if err != nil {
			log.Fatalf("%v", err)
		}
	}
	cfg = opts.apply(cfg)

	c := &compiler.Compiler{Verbose: cfg.Verbose}
	prog, image, err := c.Compile(opts.input)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if cfg.Listing {
		err = prog.Listing(os.Stdout, elf32.ENTRY)
		if err != nil {
			log.Fatalf("%v", err)
		}
	}

	err = compiler.WriteImage(cfg.Output, image)
	if err != nil {
		log.Fatalf("%v", err)
	}

	err = launch.MakeExecutable(cfg.Output)
	if err != nil {
		log.Fatalf("%v: %v", cfg.Output, err)
	}

	fmt.Println(f("compilation successful"))

	if !cfg.Run {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	l := launch.NewLauncher()
	l.Verbose = cfg.Verbose

	status, err := l.Run(ctx, cfg.Output)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if status < 0 {
		status = 1
	}

	stop()
	os.Exit(status)
}
