// Package x86 implements the lexer and instruction encoder of the casm
// assembler.
//
// Source text is a sequence of whitespace separated words. A word starting
// with '#' is an immediate (decimal, or hexadecimal after '#0x'), a word
// starting with '%' names a register, and any other word is a mnemonic.
// The lexer turns the words into a flat token list; the encoder walks that
// list one instruction at a time, consuming as many operand tokens as the
// opcode's arity, and emits i386 machine code:
//
//	mov %reg #imm   B8+r imm32
//	add %reg #imm   81 C0+r imm32
//	int #n          CD n
//
// Unknown mnemonics and register names are not lexer errors. They are kept
// as unresolved tokens and reported by the encoder at the instruction that
// uses them.
package x86
