// Package interp implements the tree-walking interpreter for brio.
//
// The interpreter evaluates the AST directly against a single flat
// name-to-value map: there are no nested scopes. Declaration order is
// enforced here (var declares, plain assignment requires an existing
// binding); the bytecode back-end does not distinguish the two.
package interp

import (
	"io"
	"os"
	"strings"

	"github.com/cwbudde/go-brio/internal/ast"
	"github.com/cwbudde/go-brio/internal/errors"
	"github.com/cwbudde/go-brio/internal/runtime"
)

// Interpreter executes brio programs by walking their AST.
type Interpreter struct {
	out     io.Writer
	globals map[string]runtime.Value
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithOutput directs print output to the given writer instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(i *Interpreter) {
		i.out = w
	}
}

// New creates a new Interpreter with an empty global scope.
func New(opts ...Option) *Interpreter {
	i := &Interpreter{
		out:     os.Stdout,
		globals: make(map[string]runtime.Value),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Interpret executes a parsed program. Execution stops at the first
// error; output already written stays written.
func (i *Interpreter) Interpret(program *ast.Program) error {
	if program == nil || program.Body == nil {
		return nil
	}
	return i.execStatement(program.Body)
}

// execStatement executes a single statement.
func (i *Interpreter) execStatement(stmt ast.Statement) error {
	switch node := stmt.(type) {
	case *ast.Compound:
		for _, s := range node.Statements {
			if err := i.execStatement(s); err != nil {
				return err
			}
		}
		return nil

	case *ast.VarDecl:
		value, err := i.evalExpression(node.Value)
		if err != nil {
			return err
		}
		i.globals[node.Name] = value
		return nil

	case *ast.Assign:
		if _, ok := i.globals[node.Name]; !ok {
			return errors.Newf(errors.NameError, "cannot assign to undeclared variable %q", node.Name)
		}
		value, err := i.evalExpression(node.Value)
		if err != nil {
			return err
		}
		i.globals[node.Name] = value
		return nil

	case *ast.PrintStatement:
		value, err := i.evalExpression(node.Value)
		if err != nil {
			return err
		}
		_, err = io.WriteString(i.out, value.Text()+"\n")
		return err

	case *ast.IfStatement:
		condition, err := i.evalExpression(node.Condition)
		if err != nil {
			return err
		}
		if condition.IsTruthy() {
			return i.execStatement(node.Then)
		}
		if node.Else != nil {
			return i.execStatement(node.Else)
		}
		return nil

	case *ast.WhileStatement:
		for {
			condition, err := i.evalExpression(node.Condition)
			if err != nil {
				return err
			}
			if !condition.IsTruthy() {
				return nil
			}
			if err := i.execStatement(node.Body); err != nil {
				return err
			}
		}

	case *ast.NoOp:
		return nil

	default:
		return errors.Newf(errors.VMError, "unknown statement node %T", stmt)
	}
}

// evalExpression evaluates an expression to a value. Operands evaluate
// left to right; both sides of '&&' and '||' are always evaluated.
func (i *Interpreter) evalExpression(expr ast.Expression) (runtime.Value, error) {
	switch node := expr.(type) {
	case *ast.NumberLiteral:
		return runtime.IntValue(node.Value), nil

	case *ast.FloatLiteral:
		return runtime.FloatValue(node.Value), nil

	case *ast.BooleanLiteral:
		return runtime.BoolValue(node.Value), nil

	case *ast.StringLiteral:
		return runtime.StringValue(node.Value), nil

	case *ast.StringInterpolation:
		var out strings.Builder
		for _, part := range node.Parts {
			value, err := i.evalExpression(part)
			if err != nil {
				return runtime.Value{}, err
			}
			out.WriteString(value.Text())
		}
		return runtime.StringValue(out.String()), nil

	case *ast.Variable:
		value, ok := i.globals[node.Name]
		if !ok {
			return runtime.Value{}, errors.Newf(errors.NameError, "variable %q not defined", node.Name)
		}
		return value, nil

	case *ast.UnaryExpression:
		operand, err := i.evalExpression(node.Operand)
		if err != nil {
			return runtime.Value{}, err
		}
		switch node.Op {
		case ast.OpAdd:
			return runtime.UnaryPlus(operand)
		case ast.OpSubtract:
			return runtime.UnaryMinus(operand)
		case ast.OpNot:
			return runtime.Not(operand), nil
		}
		return runtime.Value{}, errors.Newf(errors.VMError, "unknown unary operator %s", node.Op)

	case *ast.BinaryExpression:
		left, err := i.evalExpression(node.Left)
		if err != nil {
			return runtime.Value{}, err
		}
		right, err := i.evalExpression(node.Right)
		if err != nil {
			return runtime.Value{}, err
		}
		return applyBinary(node.Op, left, right)

	default:
		return runtime.Value{}, errors.Newf(errors.VMError, "unknown expression node %T", expr)
	}
}

// applyBinary dispatches a binary operator to the shared value model.
func applyBinary(op ast.Operator, left, right runtime.Value) (runtime.Value, error) {
	switch op {
	case ast.OpAdd:
		return runtime.Add(left, right)
	case ast.OpSubtract:
		return runtime.Subtract(left, right)
	case ast.OpMultiply:
		return runtime.Multiply(left, right)
	case ast.OpDivide:
		return runtime.Divide(left, right)
	case ast.OpEqual:
		return runtime.Equals(left, right), nil
	case ast.OpNotEqual:
		return runtime.NotEquals(left, right), nil
	case ast.OpLess:
		return runtime.Less(left, right)
	case ast.OpGreater:
		return runtime.Greater(left, right)
	case ast.OpLessEqual:
		return runtime.LessEqual(left, right)
	case ast.OpGreaterEqual:
		return runtime.GreaterEqual(left, right)
	case ast.OpAnd:
		return runtime.And(left, right), nil
	case ast.OpOr:
		return runtime.Or(left, right), nil
	}
	return runtime.Value{}, errors.Newf(errors.VMError, "unknown binary operator %s", op)
}
