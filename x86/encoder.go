package x86

import (
	"log"
)

// Encoder turns a token list into machine code.
type Encoder struct {
	Verbose bool // If set, logs every encoded instruction.
}

// Encode walks the tokens one instruction at a time and returns the
// encoded program. The token at the cursor must always be an opcode; its
// operands are the next Arity tokens.
func (enc *Encoder) Encode(tokens []Token) (prog *Program, err error) {
	var insts []Instruction
	var offset int

	for ip := 0; ip < len(tokens); {
		tok := tokens[ip]

		if tok.Kind() != TOKEN_OP {
			err = &ErrEncode{Loc: tok.Loc, Token: tok, Err: ErrOperandStray}
			return
		}

		op, ok := tok.Op()
		if !ok {
			err = &ErrEncode{Loc: tok.Loc, Token: tok, Err: ErrOperandUnknown}
			return
		}

		desc := op.Descriptor()
		if ip+1+desc.Arity > len(tokens) {
			err = &ErrEncode{Loc: tok.Loc, Token: tok, Err: ErrOperandMissing}
			return
		}

		operands := tokens[ip+1 : ip+1+desc.Arity]

		var codes []byte
		var bad Token
		codes, bad, err = desc.Encode(desc, operands)
		if err != nil {
			err = &ErrEncode{Loc: tok.Loc, Token: bad, Err: err}
			return
		}

		words := make([]string, 0, 1+len(operands))
		words = append(words, tok.Text)
		for _, operand := range operands {
			words = append(words, operand.Text)
		}

		inst := Instruction{Loc: tok.Loc, Ip: offset, Words: words, Codes: codes}
		if enc.Verbose {
			log.Printf("%v", inst.String())
		}

		insts = append(insts, inst)
		offset += len(codes)
		ip += 1 + desc.Arity
	}

	prog = &Program{Instructions: insts}

	return
}
