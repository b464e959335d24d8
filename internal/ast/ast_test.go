package ast

import (
	"testing"

	"github.com/cwbudde/go-brio/pkg/token"
)

func ident(name string) token.Token {
	return token.NewToken(token.IDENT, name, token.Position{Line: 1, Column: 1})
}

func TestOperatorString(t *testing.T) {
	tests := []struct {
		op   Operator
		want string
	}{
		{OpAdd, "+"},
		{OpSubtract, "-"},
		{OpMultiply, "*"},
		{OpDivide, "/"},
		{OpEqual, "=="},
		{OpNotEqual, "!="},
		{OpLess, "<"},
		{OpGreater, ">"},
		{OpLessEqual, "<="},
		{OpGreaterEqual, ">="},
		{OpAnd, "&&"},
		{OpOr, "||"},
		{OpNot, "!"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("Operator(%d).String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestBinaryExpressionString(t *testing.T) {
	expr := &BinaryExpression{
		Token: token.NewToken(token.PLUS, "+", token.Position{}),
		Op:    OpAdd,
		Left:  &NumberLiteral{Token: token.NewToken(token.INT, "1", token.Position{}), Value: 1},
		Right: &NumberLiteral{Token: token.NewToken(token.INT, "2", token.Position{}), Value: 2},
	}
	if got := expr.String(); got != "(1 + 2)" {
		t.Errorf("String() = %q", got)
	}
}

func TestVarDeclString(t *testing.T) {
	decl := &VarDecl{
		Token: token.NewToken(token.VAR, "var", token.Position{}),
		Name:  "x",
		Value: &NumberLiteral{Token: token.NewToken(token.INT, "5", token.Position{}), Value: 5},
	}
	if got := decl.String(); got != "var x = 5; " {
		t.Errorf("String() = %q", got)
	}
}

func TestStringInterpolationString(t *testing.T) {
	interp := &StringInterpolation{
		Token: token.NewToken(token.STRING_INTERP, "", token.Position{}),
		Parts: []Expression{
			&StringLiteral{Token: token.NewToken(token.STRING, "Hello, ", token.Position{}), Value: "Hello, "},
			&Variable{Token: ident("name"), Name: "name"},
			&StringLiteral{Token: token.NewToken(token.STRING, "!", token.Position{}), Value: "!"},
		},
	}
	if got := interp.String(); got != `"Hello, ${name}!"` {
		t.Errorf("String() = %q", got)
	}
}

func TestIfStatementString(t *testing.T) {
	stmt := &IfStatement{
		Token:     token.NewToken(token.IF, "if", token.Position{}),
		Condition: &Variable{Token: ident("x"), Name: "x"},
		Then:      &PrintStatement{Token: token.NewToken(token.PRINT, "print", token.Position{}), Value: &Variable{Token: ident("x"), Name: "x"}},
		Else:      &NoOp{},
	}
	if got := stmt.String(); got != "if (x) print x; else " {
		t.Errorf("String() = %q", got)
	}
}

func TestCompoundString(t *testing.T) {
	compound := &Compound{
		Statements: []Statement{
			&PrintStatement{Token: token.NewToken(token.PRINT, "print", token.Position{}), Value: &BooleanLiteral{Token: token.NewToken(token.BOOLEAN, "true", token.Position{}), Value: true}},
		},
	}
	if got := compound.String(); got != "{ print true; } " {
		t.Errorf("String() = %q", got)
	}
}

func TestProgramString(t *testing.T) {
	program := &Program{}
	if got := program.String(); got != "" {
		t.Errorf("empty program String() = %q", got)
	}
}
