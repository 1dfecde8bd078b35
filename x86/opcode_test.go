package x86

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupMnemonic(t *testing.T) {
	assert := assert.New(t)

	for _, op := range []Op{OP_MOV, OP_INT, OP_ADD} {
		found, ok := LookupMnemonic(op.String())
		assert.True(ok)
		assert.Equal(op, found)
		assert.Equal(op, op.Descriptor().Op)
	}

	assert.Equal(2, OP_MOV.Arity())
	assert.Equal(1, OP_INT.Arity())
	assert.Equal(2, OP_ADD.Arity())

	for _, word := range []string{"MOV", "Add", "nop", "", "jmp"} {
		_, ok := LookupMnemonic(word)
		assert.False(ok, word)
	}
}

func TestDescriptorBase(t *testing.T) {
	assert := assert.New(t)

	for _, width := range []int{1, 2, 4} {
		base, ok := OP_MOV.Descriptor().Base(width)
		assert.True(ok)
		assert.Equal(byte(0xb8), base)

		base, ok = OP_ADD.Descriptor().Base(width)
		assert.True(ok)
		assert.Equal(byte(0x81), base)
	}

	_, ok := OP_MOV.Descriptor().Base(8)
	assert.False(ok)

	_, ok = OP_INT.Descriptor().Base(4)
	assert.False(ok)
}

func TestMakeCode(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]byte{0xbf, 0xef, 0xbe, 0xad, 0xde}, MakeCodeMov(0xb8, REG_EDI, 0xdeadbeef))
	assert.Equal([]byte{0xbc, 0x00, 0x00, 0x00, 0x80}, MakeCodeMov(0xb8, REG_AH, -0x80000000))
	assert.Equal([]byte{0x81, 0xc7, 0x01, 0x00, 0x00, 0x00}, MakeCodeAdd(0x81, REG_DI, 1))
	assert.Equal([]byte{0x81, 0xc0, 0xff, 0xff, 0xff, 0xff}, MakeCodeAdd(0x81, REG_AL, -1))
	assert.Equal([]byte{0xcd, 0x03}, MakeCodeInt(0xcd, 3))
}

func TestRegister(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(4, REG_EDI.Width())
	assert.Equal(2, REG_AX.Width())
	assert.Equal(2, REG_DI.Width())
	assert.Equal(1, REG_AL.Width())
	assert.Equal(1, REG_BH.Width())

	assert.Equal(byte(0), REG_AX.Index())
	assert.Equal(byte(4), REG_AH.Index())
	assert.Equal(byte(7), REG_BH.Index())

	reg, ok := LookupRegister("esp")
	assert.True(ok)
	assert.Equal(REG_ESP, reg)

	_, ok = LookupRegister("EAX")
	assert.False(ok)
	_, ok = LookupRegister("rax")
	assert.False(ok)

	assert.Equal("Register(24)", Register(REG_COUNT).String())
}

func TestTokenString(t *testing.T) {
	assert := assert.New(t)

	loc := Location{"a.asm", 3, 7}

	assert.Equal("a.asm:3:7:op(add)", MakeTokenOp("add", loc, OP_ADD, true).String())
	assert.Equal("a.asm:3:7:op(?)", MakeTokenOp("sub", loc, 0, false).String())
	assert.Equal("a.asm:3:7:reg(cx/2)", MakeTokenReg("%cx", loc, REG_CX, true).String())
	assert.Equal("a.asm:3:7:reg(?)", MakeTokenReg("%zz", loc, 0, false).String())
	assert.Equal("a.asm:3:7:imm(0x80)", MakeTokenImm("#128", loc, 128).String())

	imm := MakeTokenImm("#1", loc, 1)
	_, ok := imm.Register()
	assert.False(ok)
	_, ok = imm.Op()
	assert.False(ok)

	_, ok = MakeTokenReg("%eax", loc, REG_EAX, true).Immediate()
	assert.False(ok)
}
