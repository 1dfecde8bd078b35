package x86

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func encodeSource(t *testing.T, program ...string) (prog *Program, err error) {
	lex := &Lexer{Path: "test.asm"}
	tokens, err := lex.Tokenize(strings.NewReader(strings.Join(program, "\n")))
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	enc := &Encoder{}
	return enc.Encode(tokens)
}

func TestEncoderExample(t *testing.T) {
	assert := assert.New(t)

	prog, err := encodeSource(t,
		"mov %eax #1",
		"int #0x80",
	)
	assert.NoError(err)
	if err != nil {
		return
	}

	assert.Equal([]byte{0xb8, 0x01, 0x00, 0x00, 0x00, 0xcd, 0x80}, prog.Binary())
	assert.Equal(7, prog.Size())

	expected := []Instruction{
		{Location{"test.asm", 1, 1}, 0, []string{"mov", "%eax", "#1"}, []byte{0xb8, 1, 0, 0, 0}},
		{Location{"test.asm", 2, 1}, 5, []string{"int", "#0x80"}, []byte{0xcd, 0x80}},
	}
	assert.Equal(expected, prog.Instructions)
}

func TestEncoderEmpty(t *testing.T) {
	assert := assert.New(t)

	enc := &Encoder{}
	prog, err := enc.Encode(nil)
	assert.NoError(err)
	assert.Equal(0, len(prog.Instructions))
	assert.Equal([]byte{}, prog.Binary())
}

func TestEncoderMovAllRegisters(t *testing.T) {
	assert := assert.New(t)

	for reg := range Register(REG_COUNT) {
		prog, err := encodeSource(t, "mov %"+reg.String()+" #0x12345678")
		assert.NoError(err, reg.String())
		if err != nil {
			continue
		}
		expected := []byte{0xb8 + reg.Index(), 0x78, 0x56, 0x34, 0x12}
		assert.Equal(expected, prog.Binary(), reg.String())
	}
}

func TestEncoderAddAllRegisters(t *testing.T) {
	assert := assert.New(t)

	for reg := range Register(REG_COUNT) {
		prog, err := encodeSource(t, "add %"+reg.String()+" #0x12345678")
		assert.NoError(err, reg.String())
		if err != nil {
			continue
		}
		expected := []byte{0x81, 0xc0 + reg.Index(), 0x78, 0x56, 0x34, 0x12}
		assert.Equal(expected, prog.Binary(), reg.String())
	}
}

func TestEncoderImmediates(t *testing.T) {
	assert := assert.New(t)

	prog, err := encodeSource(t,
		"mov %ebx #-1",
		"add %dl #256",
		"int #0x180",
		"int #-128",
	)
	assert.NoError(err)
	if err != nil {
		return
	}

	expected := [][]byte{
		{0xbb, 0xff, 0xff, 0xff, 0xff},
		{0x81, 0xc2, 0x00, 0x01, 0x00, 0x00},
		{0xcd, 0x80},
		{0xcd, 0x80},
	}
	if assert.Equal(len(expected), len(prog.Instructions)) {
		for n, inst := range prog.Instructions {
			assert.Equal(expected[n], inst.Codes, inst.String())
		}
	}
}

func TestEncoderErrors(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		source string
		err    error
		loc    Location // Opcode location
		text   string   // Offending text
	}{
		{"%eax #1", ErrOperandStray, Location{"test.asm", 1, 1}, "%eax"},
		{"#5", ErrOperandStray, Location{"test.asm", 1, 1}, "#5"},
		{"mov %eax #1 #2", ErrOperandStray, Location{"test.asm", 1, 13}, "#2"},
		{"foo %eax #1", ErrOperandUnknown, Location{"test.asm", 1, 1}, "foo"},
		{"Mov %eax #1", ErrOperandUnknown, Location{"test.asm", 1, 1}, "Mov"},
		{"mov %zz #1", ErrOperandUnknown, Location{"test.asm", 1, 1}, "%zz"},
		{"add %zz #1", ErrOperandUnknown, Location{"test.asm", 1, 1}, "%zz"},
		{"mov #1 #2", ErrOperandKind, Location{"test.asm", 1, 1}, "#1"},
		{"mov %eax %ebx", ErrOperandKind, Location{"test.asm", 1, 1}, "%ebx"},
		{"add %eax %ebx", ErrOperandKind, Location{"test.asm", 1, 1}, "%ebx"},
		{"int %eax", ErrOperandKind, Location{"test.asm", 1, 1}, "%eax"},
		{"mov %eax\nint #1", ErrOperandKind, Location{"test.asm", 1, 1}, "int"},
		{"mov %eax", ErrOperandMissing, Location{"test.asm", 1, 1}, "mov"},
		{"int #1\nint", ErrOperandMissing, Location{"test.asm", 2, 1}, "int"},
	}

	for _, entry := range table {
		prog, err := encodeSource(t, entry.source)
		assert.Nil(prog, entry.source)
		assert.True(errors.Is(err, entry.err), "%v: %v", entry.source, err)

		var encErr *ErrEncode
		if !assert.True(errors.As(err, &encErr), entry.source) {
			continue
		}
		assert.Equal(entry.loc, encErr.Loc, entry.source)
		assert.Equal(entry.text, encErr.Token.Text, entry.source)
		assert.Contains(err.Error(), entry.loc.String(), entry.source)
		assert.Contains(err.Error(), entry.text, entry.source)
	}
}

func TestEncoderUnknownRegisterLocation(t *testing.T) {
	assert := assert.New(t)

	_, err := encodeSource(t, "int #1", "mov %zz #1")

	var encErr *ErrEncode
	if !assert.True(errors.As(err, &encErr)) {
		return
	}
	assert.Equal(Location{"test.asm", 2, 1}, encErr.Loc)
	assert.Equal(Location{"test.asm", 2, 5}, encErr.Token.Loc)
	assert.Contains(err.Error(), "column 5")
}

func TestEncoderDeterministic(t *testing.T) {
	assert := assert.New(t)

	source := []string{"mov %eax #4", "mov %ebx #1", "add %ebx #41", "int #0x80"}

	first, err := encodeSource(t, source...)
	assert.NoError(err)
	second, err := encodeSource(t, source...)
	assert.NoError(err)

	assert.Equal(first.Binary(), second.Binary())
	assert.Equal(first, second)
}
