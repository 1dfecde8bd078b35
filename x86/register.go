package x86

// Register is one of the general purpose i386 registers.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_EAX = Register(0)  // eax
	REG_ECX = Register(1)  // ecx
	REG_EDX = Register(2)  // edx
	REG_EBX = Register(3)  // ebx
	REG_ESP = Register(4)  // esp
	REG_EBP = Register(5)  // ebp
	REG_ESI = Register(6)  // esi
	REG_EDI = Register(7)  // edi
	REG_AX  = Register(8)  // ax
	REG_CX  = Register(9)  // cx
	REG_DX  = Register(10) // dx
	REG_BX  = Register(11) // bx
	REG_SP  = Register(12) // sp
	REG_BP  = Register(13) // bp
	REG_SI  = Register(14) // si
	REG_DI  = Register(15) // di
	REG_AL  = Register(16) // al
	REG_CL  = Register(17) // cl
	REG_DL  = Register(18) // dl
	REG_BL  = Register(19) // bl
	REG_AH  = Register(20) // ah
	REG_CH  = Register(21) // ch
	REG_DH  = Register(22) // dh
	REG_BH  = Register(23) // bh
)

const (
	REG_COUNT = 24 // Number of registers.
)

// regMap maps lower case register names to registers.
var regMap = map[string]Register{
	"eax": REG_EAX,
	"ecx": REG_ECX,
	"edx": REG_EDX,
	"ebx": REG_EBX,
	"esp": REG_ESP,
	"ebp": REG_EBP,
	"esi": REG_ESI,
	"edi": REG_EDI,
	"ax":  REG_AX,
	"cx":  REG_CX,
	"dx":  REG_DX,
	"bx":  REG_BX,
	"sp":  REG_SP,
	"bp":  REG_BP,
	"si":  REG_SI,
	"di":  REG_DI,
	"al":  REG_AL,
	"cl":  REG_CL,
	"dl":  REG_DL,
	"bl":  REG_BL,
	"ah":  REG_AH,
	"ch":  REG_CH,
	"dh":  REG_DH,
	"bh":  REG_BH,
}

// LookupRegister finds a register by its lower case name.
func LookupRegister(name string) (reg Register, ok bool) {
	reg, ok = regMap[name]
	return
}

// Width returns the register size in bytes: 4, 2 or 1.
func (reg Register) Width() int {
	switch {
	case reg < REG_AX:
		return 4
	case reg < REG_AL:
		return 2
	default:
		return 1
	}
}

// Index returns the register number within its width class, as encoded
// in the low three bits of an opcode or ModRM byte.
func (reg Register) Index() byte {
	return byte(reg) & 7
}
