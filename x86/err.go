package x86

import (
	"errors"

	"github.com/ezrec/casm/translate"
)

var f = translate.From

var (
	// Encoder errors
	ErrOperandUnknown = errors.New(f("unknown operand"))
	ErrOperandKind    = errors.New(f("invalid combination of opcode and operands"))
	ErrOperandStray   = errors.New(f("stray operand where an opcode was expected"))
	ErrOperandMissing = errors.New(f("missing operand"))
	ErrOperandWidth   = errors.New(f("operand width not encodable"))
)

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("invalid immediate '%v'", string(err))
}

// ErrLex is a lexer failure at a source location.
type ErrLex struct {
	Loc  Location
	Text string
	Err  error
}

func (err *ErrLex) Error() string {
	return f("%v: %v", err.Loc, err.Err)
}

func (err *ErrLex) Unwrap() error {
	return err.Err
}

// ErrEncode is an encoder failure. Loc is the location of the instruction's
// opcode; Token is the offending token.
type ErrEncode struct {
	Loc   Location
	Token Token
	Err   error
}

func (err *ErrEncode) Error() string {
	if err.Token.Loc == err.Loc {
		return f("%v: '%v' %v", err.Loc, err.Token.Text, err.Err)
	}
	return f("%v: '%v' at column %d %v", err.Loc, err.Token.Text, err.Token.Loc.Column, err.Err)
}

func (err *ErrEncode) Unwrap() error {
	return err.Err
}
