package x86

import (
	"encoding/binary"
)

// Op is an instruction opcode identifier.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_MOV = Op(0) // mov
	OP_INT = Op(1) // int
	OP_ADD = Op(2) // add
)

const (
	MODRM_DIRECT = byte(0xc0) // mod=11, register direct addressing
	GROUP1_ADD   = byte(0)    // /0 sub-opcode of the 0x81 group
)

// Descriptor is the static description of one instruction.
type Descriptor struct {
	Mnemonic string
	Op       Op
	Arity    int          // Operand tokens consumed after the opcode.
	RegImm   map[int]byte // Register, immediate form base byte by destination width.
	Imm      byte         // Immediate only form base byte.
	Encode   encodeFunc   // Operand validation and encoding.
}

type encodeFunc func(desc *Descriptor, operands []Token) (codes []byte, bad Token, err error)

// Base returns the register, immediate form base byte for a destination width.
func (desc *Descriptor) Base(width int) (base byte, ok bool) {
	base, ok = desc.RegImm[width]
	return
}

var descriptors []Descriptor

func init() {
	// Only the imm32 form is encoded, whatever the destination width.
	descriptors = []Descriptor{
		OP_MOV: {
			Mnemonic: "mov",
			Op:       OP_MOV,
			Arity:    2,
			RegImm:   map[int]byte{1: 0xb8, 2: 0xb8, 4: 0xb8},
			Encode:   encodeMov,
		},
		OP_INT: {
			Mnemonic: "int",
			Op:       OP_INT,
			Arity:    1,
			Imm:      0xcd,
			Encode:   encodeInt,
		},
		OP_ADD: {
			Mnemonic: "add",
			Op:       OP_ADD,
			Arity:    2,
			RegImm:   map[int]byte{1: 0x81, 2: 0x81, 4: 0x81},
			Encode:   encodeAdd,
		},
	}
}

// LookupMnemonic finds the opcode for a mnemonic. Mnemonics are case sensitive.
func LookupMnemonic(word string) (op Op, ok bool) {
	for _, desc := range descriptors {
		if desc.Mnemonic == word {
			return desc.Op, true
		}
	}
	return
}

// Descriptor returns the table entry of the opcode.
func (op Op) Descriptor() *Descriptor {
	return &descriptors[op]
}

// Arity returns the number of operands of the opcode.
func (op Op) Arity() int {
	return descriptors[op].Arity
}

// MakeCodeMov encodes 'mov reg, imm32'.
func MakeCodeMov(base byte, reg Register, imm int64) []byte {
	return binary.LittleEndian.AppendUint32([]byte{base + reg.Index()}, uint32(imm))
}

// MakeCodeAdd encodes 'add reg, imm32'.
func MakeCodeAdd(base byte, reg Register, imm int64) []byte {
	modrm := MODRM_DIRECT | (GROUP1_ADD << 3) | reg.Index()
	return binary.LittleEndian.AppendUint32([]byte{base, modrm}, uint32(imm))
}

// MakeCodeInt encodes 'int imm8'.
func MakeCodeInt(base byte, n int64) []byte {
	return []byte{base, byte(n & 0xff)}
}

// regImm checks a register, immediate operand pair.
func regImm(desc *Descriptor, operands []Token) (base byte, reg Register, imm int64, bad Token, err error) {
	dst, src := operands[0], operands[1]

	if dst.Kind() != TOKEN_REG || src.Kind() != TOKEN_IMM {
		bad = dst
		if dst.Kind() == TOKEN_REG {
			bad = src
		}
		err = ErrOperandKind
		return
	}

	reg, ok := dst.Register()
	if !ok {
		bad = dst
		err = ErrOperandUnknown
		return
	}

	base, ok = desc.Base(reg.Width())
	if !ok {
		bad = dst
		err = ErrOperandWidth
		return
	}

	imm, _ = src.Immediate()
	return
}

func encodeMov(desc *Descriptor, operands []Token) (codes []byte, bad Token, err error) {
	base, reg, imm, bad, err := regImm(desc, operands)
	if err != nil {
		return
	}
	codes = MakeCodeMov(base, reg, imm)
	return
}

func encodeAdd(desc *Descriptor, operands []Token) (codes []byte, bad Token, err error) {
	base, reg, imm, bad, err := regImm(desc, operands)
	if err != nil {
		return
	}
	codes = MakeCodeAdd(base, reg, imm)
	return
}

func encodeInt(desc *Descriptor, operands []Token) (codes []byte, bad Token, err error) {
	n, ok := operands[0].Immediate()
	if !ok {
		bad = operands[0]
		err = ErrOperandKind
		return
	}
	codes = MakeCodeInt(desc.Imm, n)
	return
}
