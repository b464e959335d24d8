package bytecode

import (
	"fmt"
	"strings"
)

// Disassemble renders a compiled program as human-readable text: the
// instruction stream with operand annotations, the constants pool and
// the variable slot table.
func Disassemble(p *Program) string {
	var out strings.Builder

	out.WriteString("Instructions:\n")
	for i, inst := range p.Code {
		fmt.Fprintf(&out, "%4d: %s", i, inst.Op)
		if inst.Op.HasOperand() {
			fmt.Fprintf(&out, " %d", inst.Operand)
			switch inst.Op {
			case OpLoadConst:
				if int(inst.Operand) < len(p.Constants) {
					fmt.Fprintf(&out, "  ; %s", p.Constants[inst.Operand])
				}
			case OpLoadVar, OpStoreVar:
				if name := p.SlotName(int(inst.Operand)); name != "" {
					fmt.Fprintf(&out, "  ; %s", name)
				}
			}
		}
		out.WriteByte('\n')
	}

	out.WriteString("\nConstants:\n")
	for i, constant := range p.Constants {
		fmt.Fprintf(&out, "%4d: %s\n", i, constant)
	}

	out.WriteString("\nVariables:\n")
	for slot := 0; slot < p.SlotCount(); slot++ {
		fmt.Fprintf(&out, "%4d: %s\n", slot, p.SlotName(slot))
	}

	return out.String()
}
