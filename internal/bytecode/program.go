package bytecode

import (
	"github.com/cwbudde/go-brio/internal/errors"
	"github.com/cwbudde/go-brio/internal/runtime"
)

// patchSentinel marks a forward jump whose target is not yet known.
const patchSentinel = ^uint32(0)

// Program is a compiled brio program: the instruction stream, the
// deduplicated constants pool and the variable slot table. A Program is
// immutable once compilation finishes and can be run on any number of
// fresh VMs.
type Program struct {
	Code      []Instruction
	Constants []runtime.Value
	variables map[string]uint32
	slotNames []string
}

// NewProgram creates an empty program.
func NewProgram() *Program {
	return &Program{
		Code:      make([]Instruction, 0, 64),
		Constants: make([]runtime.Value, 0, 16),
		variables: make(map[string]uint32),
	}
}

// Emit appends an instruction and returns its index.
func (p *Program) Emit(inst Instruction) int {
	index := len(p.Code)
	p.Code = append(p.Code, inst)
	return index
}

// EmitJump appends a jump instruction with a placeholder operand and
// returns its index for later patching.
func (p *Program) EmitJump(op OpCode) int {
	return p.Emit(InstOp(op, patchSentinel))
}

// PatchJump rewrites the operand of the jump at the given index to the
// current end of the instruction stream.
func (p *Program) PatchJump(index int) {
	p.PatchJumpTo(index, len(p.Code))
}

// PatchJumpTo rewrites the operand of the jump at the given index to an
// absolute target.
func (p *Program) PatchJumpTo(index, target int) {
	p.Code[index].Operand = uint32(target)
}

// AddConstant adds a constant to the pool and returns its index. Adding
// an equal value of the same type twice returns the existing index;
// values of different types (such as 1 and 1.0) get separate entries.
func (p *Program) AddConstant(value runtime.Value) uint32 {
	for i, existing := range p.Constants {
		if existing.Type == value.Type && existing.Equal(value) {
			return uint32(i)
		}
	}
	p.Constants = append(p.Constants, value)
	return uint32(len(p.Constants) - 1)
}

// SlotFor returns the slot index for a variable name, assigning the next
// dense index on first sight.
func (p *Program) SlotFor(name string) uint32 {
	if slot, ok := p.variables[name]; ok {
		return slot
	}
	slot := uint32(len(p.variables))
	p.variables[name] = slot
	p.slotNames = append(p.slotNames, name)
	return slot
}

// SlotCount returns the number of variable slots.
func (p *Program) SlotCount() int {
	return len(p.variables)
}

// SlotName returns the variable name assigned to a slot, or "".
func (p *Program) SlotName(slot int) string {
	if slot < 0 || slot >= len(p.slotNames) {
		return ""
	}
	return p.slotNames[slot]
}

// Variables returns the name-to-slot table.
func (p *Program) Variables() map[string]uint32 {
	return p.variables
}

// Validate checks structural invariants: every constant reference is in
// range, every variable slot is allocated, every jump target lies in
// [0, len(Code)] and no patch sentinel survived compilation.
func (p *Program) Validate() error {
	for i, inst := range p.Code {
		switch inst.Op {
		case OpLoadConst:
			if int(inst.Operand) >= len(p.Constants) {
				return errors.Newf(errors.VMError, "instruction %d: constant index %d out of range (have %d)", i, inst.Operand, len(p.Constants))
			}
		case OpLoadVar, OpStoreVar:
			if int(inst.Operand) >= len(p.variables) {
				return errors.Newf(errors.VMError, "instruction %d: variable slot %d out of range (have %d)", i, inst.Operand, len(p.variables))
			}
		case OpJump, OpJumpIfFalse:
			if inst.Operand == patchSentinel {
				return errors.Newf(errors.VMError, "instruction %d: unpatched jump", i)
			}
			if int(inst.Operand) > len(p.Code) {
				return errors.Newf(errors.VMError, "instruction %d: jump target %d out of range (have %d)", i, inst.Operand, len(p.Code))
			}
		}
	}
	return nil
}
