// Package elf32 wraps i386 machine code in a minimal executable ELF image:
// an ELF header, one PT_LOAD program header and the code, loaded at a fixed
// address with no sections and no relocation.
package elf32

import (
	"debug/elf"
	"encoding/binary"
)

const (
	EHDR_SIZE     = 0x34                  // ELF header size.
	PHDR_SIZE     = 0x20                  // Program header size.
	SHDR_SIZE     = 0x28                  // Section header entry size.
	HEADER_SIZE   = EHDR_SIZE + PHDR_SIZE // Offset of the first code byte.
	ENTRY         = 0x08048054            // Load address of the first code byte.
	SEGMENT_ALIGN = 0x1000                // Segment alignment.

	FILESZ_OFFSET = EHDR_SIZE + 0x10 // p_filesz
	MEMSZ_OFFSET  = EHDR_SIZE + 0x14 // p_memsz
)

var order = binary.LittleEndian

// header returns the ELF header of an image.
func header() (hdr elf.Header32) {
	copy(hdr.Ident[:], elf.ELFMAG)
	hdr.Ident[elf.EI_CLASS] = byte(elf.ELFCLASS32)
	hdr.Ident[elf.EI_DATA] = byte(elf.ELFDATA2LSB)
	hdr.Ident[elf.EI_VERSION] = byte(elf.EV_CURRENT)
	hdr.Ident[elf.EI_OSABI] = byte(elf.ELFOSABI_NONE)
	hdr.Ident[elf.EI_ABIVERSION] = 0

	hdr.Type = uint16(elf.ET_EXEC)
	hdr.Machine = uint16(elf.EM_386)
	hdr.Version = uint32(elf.EV_CURRENT)
	hdr.Entry = ENTRY
	hdr.Phoff = EHDR_SIZE
	hdr.Shoff = 0
	hdr.Flags = 0
	hdr.Ehsize = EHDR_SIZE
	hdr.Phentsize = PHDR_SIZE
	hdr.Phnum = 1
	hdr.Shentsize = SHDR_SIZE
	hdr.Shnum = 0
	hdr.Shstrndx = 0

	return
}

// program returns the single loadable segment. The sizes are left zero
// until the code length is known.
func program() (prog elf.Prog32) {
	prog.Type = uint32(elf.PT_LOAD)
	prog.Off = HEADER_SIZE
	prog.Vaddr = ENTRY
	prog.Paddr = 0
	prog.Filesz = 0
	prog.Memsz = 0
	// No separate data segment, so the code is writable too.
	prog.Flags = uint32(elf.PF_R | elf.PF_W | elf.PF_X)
	prog.Align = SEGMENT_ALIGN

	return
}

// Size returns the image length for a code length.
func Size(codeSize int) int {
	return HEADER_SIZE + codeSize
}

// Build returns the executable image of code.
func Build(code []byte) (image []byte, err error) {
	image = make([]byte, 0, Size(len(code)))

	image, err = binary.Append(image, order, header())
	if err != nil {
		return
	}

	image, err = binary.Append(image, order, program())
	if err != nil {
		return
	}

	image = append(image, code...)

	size := uint32(len(image) - HEADER_SIZE)
	order.PutUint32(image[FILESZ_OFFSET:], size)
	order.PutUint32(image[MEMSZ_OFFSET:], size)

	return
}
