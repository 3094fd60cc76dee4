package asm

// Opcode is the 4-bit operation code of an instruction word.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_ADD  = Opcode(0) // add
	OP_NAND = Opcode(1) // nand
	OP_SUB  = Opcode(2) // sub
	OP_NOP  = Opcode(3) // nop
	OP_BEQ  = Opcode(4) // beq
	OP_JALR = Opcode(5) // jalr
	OP_ADDI = Opcode(6) // addi
	OP_SW   = Opcode(7) // sw
	OP_LW   = Opcode(8) // lw
	OP_LI   = Opcode(9) // li
)

// Mode is the operand shape of an opcode.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_NONE = Mode(0) // none
	MODE_RRR  = Mode(1) // rrr
	MODE_RRI  = Mode(2) // rri
	MODE_RR   = Mode(3) // rr
	MODE_RI   = Mode(4) // ri
)

// Register is a 2-bit register code.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_A = Register(0) // rA
	REG_B = Register(1) // rB
	REG_C = Register(2) // rC
	REG_D = Register(3) // rD
)

// opcodeMap maps mnemonics to opcodes.
var opcodeMap = map[string]Opcode{
	"add":  OP_ADD,
	"nand": OP_NAND,
	"sub":  OP_SUB,
	"nop":  OP_NOP,
	"beq":  OP_BEQ,
	"jalr": OP_JALR,
	"addi": OP_ADDI,
	"sw":   OP_SW,
	"lw":   OP_LW,
	"li":   OP_LI,
}

// registerMap maps register names to register codes.
var registerMap = map[string]Register{
	"rA": REG_A,
	"rB": REG_B,
	"rC": REG_C,
	"rD": REG_D,
}

// modeMap is indexed by Opcode.
var modeMap = [...]Mode{
	OP_ADD:  MODE_RRR,
	OP_NAND: MODE_RRR,
	OP_SUB:  MODE_RRR,
	OP_NOP:  MODE_NONE,
	OP_BEQ:  MODE_RRI,
	OP_JALR: MODE_RR,
	OP_ADDI: MODE_RRI,
	OP_SW:   MODE_RRI,
	OP_LW:   MODE_RRI,
	OP_LI:   MODE_RI,
}

// LookupOpcode returns the opcode for a mnemonic.
func LookupOpcode(mnemonic string) (op Opcode, ok bool) {
	op, ok = opcodeMap[mnemonic]
	return
}

// LookupRegister returns the register for a register name.
func LookupRegister(name string) (reg Register, ok bool) {
	reg, ok = registerMap[name]
	return
}

// Valid returns true if the opcode is one of the defined opcodes.
func (op Opcode) Valid() bool {
	return op >= OP_ADD && op <= OP_LI
}

// Mode returns the addressing mode of the opcode.
func (op Opcode) Mode() Mode {
	if !op.Valid() {
		return MODE_NONE
	}
	return modeMap[op]
}

// packed returns the opcode in the top nibble of the high byte.
func (op Opcode) packed() uint8 {
	return uint8(op) << 4
}

// Operands returns the number of operands taken by the mode.
func (mode Mode) Operands() int {
	switch mode {
	case MODE_RRR, MODE_RRI:
		return 3
	case MODE_RR, MODE_RI:
		return 2
	default:
		return 0
	}
}

// valueSlot returns the operand index holding an Immediate or LabelRef,
// or -1 if the mode has none.
func (mode Mode) valueSlot() int {
	switch mode {
	case MODE_RRI:
		return 2
	case MODE_RI:
		return 1
	default:
		return -1
	}
}

// packed returns the register code shifted into the first register field.
func (reg Register) packed() uint8 {
	return uint8(reg) << 2
}

// unpacked returns the raw register code.
func (reg Register) unpacked() uint8 {
	return uint8(reg)
}
