package x86

import (
	"fmt"
)

// TokenKind is the lexical class of a token.
type TokenKind int

//go:generate go tool stringer -linecomment -type=TokenKind
const (
	TOKEN_OP  = TokenKind(0) // op
	TOKEN_REG = TokenKind(1) // reg
	TOKEN_IMM = TokenKind(2) // imm
)

// Location is a position in a source file. Line and Column count from 1.
type Location struct {
	Path   string
	Line   int
	Column int
}

func (loc Location) String() string {
	return fmt.Sprintf("%v:%d:%d", loc.Path, loc.Line, loc.Column)
}

// Token is a single classified word of source text.
//
// Operation and register tokens may be unresolved when the lexer did not
// recognise the word; the error is raised by the encoder when the token is
// used.
type Token struct {
	Text string   // Original source text.
	Loc  Location // Location of the first character.

	kind     TokenKind
	resolved bool
	op       Op
	reg      Register
	imm      int64
}

// MakeTokenOp creates an operation token. The token is unresolved when
// op is not ok.
func MakeTokenOp(text string, loc Location, op Op, ok bool) Token {
	return Token{Text: text, Loc: loc, kind: TOKEN_OP, resolved: ok, op: op}
}

// MakeTokenReg creates a register token. The token is unresolved when
// reg is not ok.
func MakeTokenReg(text string, loc Location, reg Register, ok bool) Token {
	return Token{Text: text, Loc: loc, kind: TOKEN_REG, resolved: ok, reg: reg}
}

// MakeTokenImm creates an immediate token.
func MakeTokenImm(text string, loc Location, value int64) Token {
	return Token{Text: text, Loc: loc, kind: TOKEN_IMM, resolved: true, imm: value}
}

// Kind returns the lexical class of the token.
func (tok Token) Kind() TokenKind {
	return tok.kind
}

// Resolved is false for operations and registers the lexer did not recognise.
func (tok Token) Resolved() bool {
	return tok.resolved
}

// Op returns the opcode of a resolved operation token.
func (tok Token) Op() (op Op, ok bool) {
	if tok.kind != TOKEN_OP || !tok.resolved {
		return
	}
	return tok.op, true
}

// Register returns the register of a resolved register token.
func (tok Token) Register() (reg Register, ok bool) {
	if tok.kind != TOKEN_REG || !tok.resolved {
		return
	}
	return tok.reg, true
}

// Immediate returns the value of an immediate token.
func (tok Token) Immediate() (value int64, ok bool) {
	if tok.kind != TOKEN_IMM {
		return
	}
	return tok.imm, true
}

// String returns a debug representation of the token.
func (tok Token) String() string {
	var value string
	switch {
	case !tok.resolved:
		value = "?"
	case tok.kind == TOKEN_OP:
		value = tok.op.String()
	case tok.kind == TOKEN_REG:
		value = fmt.Sprintf("%v/%d", tok.reg.String(), tok.reg.Width())
	case tok.kind == TOKEN_IMM:
		value = fmt.Sprintf("%#x", tok.imm)
	}
	return fmt.Sprintf("%v:%v(%v)", tok.Loc, tok.kind.String(), value)
}
