// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"io"
	"strconv"

	"github.com/ezrec/casm/compiler"
	"github.com/ezrec/casm/translate"
)

var f = translate.From

var (
	ErrInputMissing   = errors.New(f("you have to specify an input file"))
	ErrInputMultiple  = errors.New(f("only a single input file is supported"))
	ErrOutputRepeated = errors.New(f("you can only specify one output file"))
)

// onceString is a string flag that may only be given once.
type onceString struct {
	value string
	set   bool
}

func (o *onceString) String() string {
	return o.value
}

func (o *onceString) Set(value string) error {
	if o.set {
		return ErrOutputRepeated
	}
	o.value = value
	o.set = true
	return nil
}

// countFlag is a boolean flag that counts how often it was given.
type countFlag int

func (c *countFlag) String() string {
	return strconv.Itoa(int(*c))
}

func (c *countFlag) Set(value string) error {
	on, err := strconv.ParseBool(value)
	if err != nil {
		return err
	}
	if on {
		*c++
	} else {
		*c = 0
	}
	return nil
}

func (c *countFlag) IsBoolFlag() bool {
	return true
}

// options are the parsed command line.
type options struct {
	input   string
	config  string
	output  onceString
	run     countFlag
	verbose bool
	listing bool
}

// parseArgs parses the command line. Flags may come before or after the
// input path.
func parseArgs(progname string, args []string, output io.Writer) (opts options, err error) {
	fs := flag.NewFlagSet(progname, flag.ContinueOnError)
	fs.SetOutput(output)

	fs.Var(&opts.output, "o", f("output file (default %v)", compiler.DEFAULT_OUTPUT))
	fs.Var(&opts.run, "r", f("run the output after a successful build"))
	fs.BoolVar(&opts.verbose, "v", false, f("verbose mode"))
	fs.BoolVar(&opts.listing, "l", false, f("print the program listing"))
	fs.StringVar(&opts.config, "config", "", f("Starlark configuration file"))

	var inputs []string
	for {
		err = fs.Parse(args)
		if err != nil {
			return
		}
		args = fs.Args()
		if len(args) == 0 {
			break
		}
		inputs = append(inputs, args[0])
		args = args[1:]
	}

	switch len(inputs) {
	case 0:
		err = ErrInputMissing
	case 1:
		opts.input = inputs[0]
	default:
		err = ErrInputMultiple
	}

	return
}

// apply overrides configured settings with the ones given on the command line.
func (opts *options) apply(cfg compiler.Config) compiler.Config {
	if opts.output.set {
		cfg.Output = opts.output.value
	}
	if opts.run > 0 {
		cfg.Run = true
	}
	if opts.verbose {
		cfg.Verbose = true
	}
	if opts.listing {
		cfg.Listing = true
	}
	return cfg
}
