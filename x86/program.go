package x86

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/ezrec/casm/internal"
)

// Instruction is one encoded instruction and its source.
type Instruction struct {
	Loc   Location // Location of the opcode.
	Ip    int      // Byte offset from the start of the code.
	Words []string // Opcode and operand text.
	Codes []byte   // Machine code.
}

// String returns the instruction as 'loc: ip: bytes words'.
func (inst Instruction) String() string {
	return fmt.Sprintf("%v: %04x: % x %v", inst.Loc, inst.Ip, inst.Codes, strings.Join(inst.Words, " "))
}

type Program struct {
	Instructions []Instruction
}

type Debug struct {
	*Instruction
	Index int
}

// Debug finds the instruction covering a code offset.
func (prog *Program) Debug(ip int) (dbg Debug) {
	for n, inst := range prog.Instructions {
		if ip >= inst.Ip && ip < inst.Ip+len(inst.Codes) {
			dbg = Debug{
				Instruction: &prog.Instructions[n],
				Index:       ip - inst.Ip,
			}
			break
		}
	}

	return
}

// Size returns the total machine code length.
func (prog *Program) Size() (size int) {
	for _, inst := range prog.Instructions {
		size += len(inst.Codes)
	}
	return
}

func (prog *Program) bytes() iter.Seq[byte] {
	seqs := make([]iter.Seq[byte], 0, len(prog.Instructions))
	for _, inst := range prog.Instructions {
		seqs = append(seqs, slices.Values(inst.Codes))
	}
	return internal.IterSeqConcat(seqs...)
}

// Codes iterates over the code offsets and bytes of the program.
func (prog *Program) Codes() iter.Seq2[int, byte] {
	return internal.IterSeqEnumerate(0, prog.bytes())
}

// Binary returns the concatenated machine code, without padding.
func (prog *Program) Binary() []byte {
	bins := make([]byte, 0, prog.Size())
	return slices.AppendSeq(bins, prog.bytes())
}

// Listing writes one line per instruction: load address, hex bytes, source
// text and location.
func (prog *Program) Listing(w io.Writer, origin uint32) (err error) {
	for _, inst := range prog.Instructions {
		_, err = fmt.Fprintf(w, "%08x  %-20s  %-24s ; %v\n",
			origin+uint32(inst.Ip),
			fmt.Sprintf("% x", inst.Codes),
			strings.Join(inst.Words, " "),
			inst.Loc)
		if err != nil {
			return
		}
	}

	return
}
