package bytecode

import (
	"strings"
	"testing"
)

func TestDisassemble(t *testing.T) {
	p := compileSource(t, `var x = 42; print "x=${x}";`)

	out := Disassemble(p)

	for _, want := range []string{
		"Instructions:",
		"Constants:",
		"Variables:",
		"LOAD_CONST",
		"STORE_VAR",
		"TO_STRING",
		"CONCAT",
		"PRINT",
		"HALT",
		"; x",     // slot annotation
		"42",      // constant
		`"x="`,    // string constant stays quoted
		"   0: x", // slot table entry
	} {
		if !strings.Contains(out, want) {
			t.Errorf("disassembly missing %q:\n%s", want, out)
		}
	}
}

func TestDisassembleAnnotatesJumps(t *testing.T) {
	p := compileSource(t, "if (1) print 2; else print 3;")

	out := Disassemble(p)
	if !strings.Contains(out, "JUMP_IF_FALSE 5") {
		t.Errorf("expected patched JUMP_IF_FALSE target in disassembly:\n%s", out)
	}
	if !strings.Contains(out, "JUMP 7") {
		t.Errorf("expected patched JUMP target in disassembly:\n%s", out)
	}
}
