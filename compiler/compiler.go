// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package compiler runs the casm pipeline: source text to tokens, tokens
// to machine code, machine code to an ELF image, and the image to disk.
package compiler

import (
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/ezrec/casm/elf32"
	"github.com/ezrec/casm/x86"
)

// Compiler assembles source files into executable images.
type Compiler struct {
	Verbose bool // If set, verbosely logs the lexer and encoder actions.
}

// Assemble assembles source text read from input. Path is only used for
// error locations.
func (c *Compiler) Assemble(path string, input io.Reader) (prog *x86.Program, image []byte, err error) {
	lex := &x86.Lexer{Path: path, Verbose: c.Verbose}
	tokens, err := lex.Tokenize(input)
	if err != nil {
		var lexErr *x86.ErrLex
		if !errors.As(err, &lexErr) {
			err = &ErrFile{Path: path, Err: err}
		}
		return
	}

	enc := &x86.Encoder{Verbose: c.Verbose}
	prog, err = enc.Encode(tokens)
	if err != nil {
		return
	}

	image, err = elf32.Build(prog.Binary())
	if err != nil {
		prog = nil
		return
	}

	if c.Verbose {
		log.Printf("%v: %d bytes of code, %d byte image", path, prog.Size(), len(image))
	}

	return
}

// Compile assembles the source file at path.
func (c *Compiler) Compile(path string) (prog *x86.Program, image []byte, err error) {
	inf, err := os.Open(path)
	if err != nil {
		err = &ErrFile{Path: path, Err: err}
		return
	}
	defer inf.Close()

	return c.Assemble(path, inf)
}

// WriteImage writes an image to path in a single step. The image goes to a
// temporary file next to path which is then renamed, so path never holds a
// partial image.
func WriteImage(path string, image []byte) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	ouf, err := os.CreateTemp(dir, "."+base+".*")
	if err != nil {
		return &ErrFile{Path: path, Err: err}
	}
	tmp := ouf.Name()

	defer func() {
		if err != nil {
			ouf.Close()
			os.Remove(tmp)
			err = &ErrFile{Path: path, Err: err}
		}
	}()

	_, err = ouf.Write(image)
	if err != nil {
		return
	}

	err = ouf.Chmod(0o644)
	if err != nil {
		return
	}

	err = ouf.Close()
	if err != nil {
		return
	}

	err = os.Rename(tmp, path)

	return
}
