package bytecode

import (
	"github.com/cwbudde/go-brio/internal/ast"
	"github.com/cwbudde/go-brio/internal/errors"
	"github.com/cwbudde/go-brio/internal/runtime"
)

// Compiler lowers an AST into a Program. The compiler does not
// distinguish declaration from assignment: both compile to STORE_VAR.
// Declare-before-assign is an interpreter-only discipline.
type Compiler struct {
	program *Program
}

// NewCompiler creates a new Compiler with an empty program.
func NewCompiler() *Compiler {
	return &Compiler{program: NewProgram()}
}

// Compile lowers a whole program and terminates it with HALT. The AST is
// not mutated; the same tree can be compiled any number of times.
func Compile(program *ast.Program) (*Program, error) {
	c := NewCompiler()
	if program != nil && program.Body != nil {
		if err := c.compileStatement(program.Body); err != nil {
			return nil, err
		}
	}
	c.program.Emit(Inst(OpHalt))
	return c.program, nil
}

// compileStatement emits code for a single statement.
func (c *Compiler) compileStatement(stmt ast.Statement) error {
	switch node := stmt.(type) {
	case *ast.Compound:
		for _, s := range node.Statements {
			if err := c.compileStatement(s); err != nil {
				return err
			}
		}
		return nil

	case *ast.VarDecl:
		if err := c.compileExpression(node.Value); err != nil {
			return err
		}
		c.program.Emit(InstOp(OpStoreVar, c.program.SlotFor(node.Name)))
		return nil

	case *ast.Assign:
		if err := c.compileExpression(node.Value); err != nil {
			return err
		}
		c.program.Emit(InstOp(OpStoreVar, c.program.SlotFor(node.Name)))
		return nil

	case *ast.PrintStatement:
		if err := c.compileExpression(node.Value); err != nil {
			return err
		}
		c.program.Emit(Inst(OpPrint))
		return nil

	case *ast.IfStatement:
		return c.compileIf(node)

	case *ast.WhileStatement:
		return c.compileWhile(node)

	case *ast.NoOp:
		return nil

	default:
		return errors.Newf(errors.VMError, "unknown statement node %T", stmt)
	}
}

// compileIf emits the condition, a JUMP_IF_FALSE over the then-body and,
// when an else-body exists, a JUMP over it. Forward targets are patched
// once known.
func (c *Compiler) compileIf(node *ast.IfStatement) error {
	if err := c.compileExpression(node.Condition); err != nil {
		return err
	}
	jumpIfFalse := c.program.EmitJump(OpJumpIfFalse)

	if err := c.compileStatement(node.Then); err != nil {
		return err
	}

	if node.Else != nil {
		jump := c.program.EmitJump(OpJump)
		c.program.PatchJump(jumpIfFalse)
		if err := c.compileStatement(node.Else); err != nil {
			return err
		}
		c.program.PatchJump(jump)
		return nil
	}

	c.program.PatchJump(jumpIfFalse)
	return nil
}

// compileWhile emits condition / JUMP_IF_FALSE / body / JUMP back to the
// condition, then patches the exit jump.
func (c *Compiler) compileWhile(node *ast.WhileStatement) error {
	loopStart := len(c.program.Code)

	if err := c.compileExpression(node.Condition); err != nil {
		return err
	}
	jumpIfFalse := c.program.EmitJump(OpJumpIfFalse)

	if err := c.compileStatement(node.Body); err != nil {
		return err
	}
	c.program.Emit(InstOp(OpJump, uint32(loopStart)))

	c.program.PatchJump(jumpIfFalse)
	return nil
}

// binaryOpcodes maps AST binary operators to opcodes.
var binaryOpcodes = map[ast.Operator]OpCode{
	ast.OpAdd:          OpAdd,
	ast.OpSubtract:     OpSubtract,
	ast.OpMultiply:     OpMultiply,
	ast.OpDivide:       OpDivide,
	ast.OpEqual:        OpEquals,
	ast.OpNotEqual:     OpNotEquals,
	ast.OpLess:         OpLessThan,
	ast.OpGreater:      OpGreaterThan,
	ast.OpLessEqual:    OpLessEqual,
	ast.OpGreaterEqual: OpGreaterEqual,
	ast.OpAnd:          OpAnd,
	ast.OpOr:           OpOr,
}

// compileExpression emits code that leaves the expression's value on the
// stack.
func (c *Compiler) compileExpression(expr ast.Expression) error {
	switch node := expr.(type) {
	case *ast.NumberLiteral:
		c.emitConstant(runtime.IntValue(node.Value))
		return nil

	case *ast.FloatLiteral:
		c.emitConstant(runtime.FloatValue(node.Value))
		return nil

	case *ast.BooleanLiteral:
		c.emitConstant(runtime.BoolValue(node.Value))
		return nil

	case *ast.StringLiteral:
		c.emitConstant(runtime.StringValue(node.Value))
		return nil

	case *ast.StringInterpolation:
		return c.compileInterpolation(node)

	case *ast.Variable:
		c.program.Emit(InstOp(OpLoadVar, c.program.SlotFor(node.Name)))
		return nil

	case *ast.UnaryExpression:
		if err := c.compileExpression(node.Operand); err != nil {
			return err
		}
		switch node.Op {
		case ast.OpAdd:
			c.program.Emit(Inst(OpUnaryPlus))
		case ast.OpSubtract:
			c.program.Emit(Inst(OpUnaryMinus))
		case ast.OpNot:
			c.program.Emit(Inst(OpNot))
		default:
			return errors.Newf(errors.VMError, "unknown unary operator %s", node.Op)
		}
		return nil

	case *ast.BinaryExpression:
		if err := c.compileExpression(node.Left); err != nil {
			return err
		}
		if err := c.compileExpression(node.Right); err != nil {
			return err
		}
		op, ok := binaryOpcodes[node.Op]
		if !ok {
			return errors.Newf(errors.VMError, "unknown binary operator %s", node.Op)
		}
		c.program.Emit(Inst(op))
		return nil

	default:
		return errors.Newf(errors.VMError, "unknown expression node %T", expr)
	}
}

// compileInterpolation lowers a string interpolation: each part is
// compiled in order, converted with TO_STRING unless it is statically a
// string, and folded left with CONCAT. An empty interpolation loads "".
func (c *Compiler) compileInterpolation(node *ast.StringInterpolation) error {
	if len(node.Parts) == 0 {
		c.emitConstant(runtime.StringValue(""))
		return nil
	}

	for i, part := range node.Parts {
		if err := c.compileExpression(part); err != nil {
			return err
		}
		if !isStaticString(part) {
			c.program.Emit(Inst(OpToString))
		}
		if i > 0 {
			c.program.Emit(Inst(OpConcat))
		}
	}
	return nil
}

// isStaticString reports whether the expression always yields a string.
func isStaticString(expr ast.Expression) bool {
	switch expr.(type) {
	case *ast.StringLiteral, *ast.StringInterpolation:
		return true
	}
	return false
}

// emitConstant interns the value in the constants pool and emits a load.
func (c *Compiler) emitConstant(value runtime.Value) {
	c.program.Emit(InstOp(OpLoadConst, c.program.AddConstant(value)))
}
