package asm

import (
	"strings"
)

// Operands is the operand shape of a Command, one type per addressing mode.
type Operands interface {
	// Mode returns the addressing mode of the shape.
	Mode() Mode
	// List returns the operands in source order.
	List() []Operand
}

// NoOperands is the shape of MODE_NONE.
type NoOperands struct{}

// ThreeReg is the shape of MODE_RRR.
type ThreeReg struct {
	A, B, C Register
}

// TwoRegValue is the shape of MODE_RRI.
type TwoRegValue struct {
	A, B  Register
	Value Value
}

// TwoReg is the shape of MODE_RR.
type TwoReg struct {
	A, B Register
}

// RegValue is the shape of MODE_RI.
type RegValue struct {
	A     Register
	Value Value
}

func (NoOperands) Mode() Mode  { return MODE_NONE }
func (ThreeReg) Mode() Mode    { return MODE_RRR }
func (TwoRegValue) Mode() Mode { return MODE_RRI }
func (TwoReg) Mode() Mode      { return MODE_RR }
func (RegValue) Mode() Mode    { return MODE_RI }

func (NoOperands) List() []Operand      { return nil }
func (ops ThreeReg) List() []Operand    { return []Operand{ops.A, ops.B, ops.C} }
func (ops TwoRegValue) List() []Operand { return []Operand{ops.A, ops.B, ops.Value} }
func (ops TwoReg) List() []Operand      { return []Operand{ops.A, ops.B} }
func (ops RegValue) List() []Operand    { return []Operand{ops.A, ops.Value} }

// Command is a single instruction ready for encoding.
type Command struct {
	Index    int      // Instruction index.
	Opcode   Opcode   // Operation.
	Operands Operands // Operands, shaped by the opcode's addressing mode.

	LineNo int    // Source line number, 0 if unknown.
	Line   string // Source line text.
}

// Mode returns the addressing mode of the command.
func (cmd *Command) Mode() Mode {
	return cmd.Opcode.Mode()
}

// String returns the assembly language representation of the command.
func (cmd *Command) String() string {
	words := []string{cmd.Opcode.String()}
	if cmd.Operands != nil {
		for _, op := range cmd.Operands.List() {
			words = append(words, op.String())
		}
	}

	return strings.Join(words, " ")
}
