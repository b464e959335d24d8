package lexer

import (
	"testing"

	"github.com/cwbudde/go-brio/internal/errors"
	"github.com/cwbudde/go-brio/pkg/token"
)

func TestNextToken(t *testing.T) {
	input := `var x = 5;
	x = x + 10;
	`

	tests := []struct {
		expectedLiteral string
		expectedType    token.TokenType
	}{
		{"var", token.VAR},
		{"x", token.IDENT},
		{"=", token.ASSIGN},
		{"5", token.INT},
		{";", token.SEMICOLON},
		{"x", token.IDENT},
		{"=", token.ASSIGN},
		{"x", token.IDENT},
		{"+", token.PLUS},
		{"10", token.INT},
		{";", token.SEMICOLON},
		{"", token.EOF},
	}

	l := New(input)

	for i, tt := range tests {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("tests[%d] - unexpected error: %v", i, err)
		}

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q (literal=%q)",
				i, tt.expectedType, tok.Type, tok.Literal)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestKeywords(t *testing.T) {
	input := `print var if else while true false`

	tests := []struct {
		expectedLiteral string
		expectedType    token.TokenType
	}{
		{"print", token.PRINT},
		{"var", token.VAR},
		{"if", token.IF},
		{"else", token.ELSE},
		{"while", token.WHILE},
		{"true", token.BOOLEAN},
		{"false", token.BOOLEAN},
		{"", token.EOF},
	}

	l := New(input)

	for i, tt := range tests {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("tests[%d] - unexpected error: %v", i, err)
		}
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q", i, tt.expectedType, tok.Type)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestOperators(t *testing.T) {
	input := `+ - * / = == != < > <= >= ! && || ( ) { } ;`

	expected := []token.TokenType{
		token.PLUS, token.MINUS, token.ASTERISK, token.SLASH,
		token.ASSIGN, token.EQ, token.NOT_EQ,
		token.LESS, token.GREATER, token.LESS_EQ, token.GREATER_EQ,
		token.NOT, token.AND, token.OR,
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE,
		token.SEMICOLON, token.EOF,
	}

	l := New(input)
	for i, want := range expected {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("tokens[%d] - unexpected error: %v", i, err)
		}
		if tok.Type != want {
			t.Fatalf("tokens[%d] - tokentype wrong. expected=%q, got=%q", i, want, tok.Type)
		}
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input           string
		expectedLiteral string
		expectedType    token.TokenType
	}{
		{"0", "0", token.INT},
		{"123", "123", token.INT},
		{"123.45", "123.45", token.FLOAT},
		{"10.0", "10.0", token.FLOAT},
		{".5", ".5", token.FLOAT},
	}

	for _, tt := range tests {
		l := New(tt.input)
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("input %q - unexpected error: %v", tt.input, err)
		}
		if tok.Type != tt.expectedType {
			t.Errorf("input %q - tokentype wrong. expected=%q, got=%q", tt.input, tt.expectedType, tok.Type)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Errorf("input %q - literal wrong. expected=%q, got=%q", tt.input, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestSecondDotEndsNumber(t *testing.T) {
	// "1.2.3" lexes as FLOAT(1.2) followed by FLOAT(.3)
	l := New("1.2.3")

	tok, err := l.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Type != token.FLOAT || tok.Literal != "1.2" {
		t.Fatalf("first token wrong: got %s %q", tok.Type, tok.Literal)
	}

	tok, err = l.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Type != token.FLOAT || tok.Literal != ".3" {
		t.Fatalf("second token wrong: got %s %q", tok.Type, tok.Literal)
	}
}

func TestComments(t *testing.T) {
	input := `// line comment
	1 /* block
	comment */ 2 /* non-nesting /* still same comment */ 3`

	expected := []string{"1", "2", "3"}

	l := New(input)
	for i, want := range expected {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("tokens[%d] - unexpected error: %v", i, err)
		}
		if tok.Type != token.INT || tok.Literal != want {
			t.Fatalf("tokens[%d] - expected INT %q, got %s %q", i, want, tok.Type, tok.Literal)
		}
	}
}

func TestIdentifiers(t *testing.T) {
	tests := []string{"x", "_tmp", "camelCase", "with_underscores", "x2"}

	for _, input := range tests {
		l := New(input)
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("input %q - unexpected error: %v", input, err)
		}
		if tok.Type != token.IDENT {
			t.Errorf("input %q - expected IDENT, got %s", input, tok.Type)
		}
		if tok.Literal != input {
			t.Errorf("input %q - literal wrong, got %q", input, tok.Literal)
		}
	}
}

func TestLoneAmpersandIsError(t *testing.T) {
	l := New("1 & 2")
	if _, err := l.NextToken(); err != nil {
		t.Fatalf("unexpected error on first token: %v", err)
	}
	_, err := l.NextToken()
	if err == nil {
		t.Fatal("expected error for lone '&'")
	}
	if !errors.IsKind(err, errors.LexError) {
		t.Fatalf("expected LexError, got %v", err)
	}
}

func TestLonePipeIsError(t *testing.T) {
	l := New("|")
	_, err := l.NextToken()
	if err == nil {
		t.Fatal("expected error for lone '|'")
	}
	if !errors.IsKind(err, errors.LexError) {
		t.Fatalf("expected LexError, got %v", err)
	}
}

func TestInvalidCharacter(t *testing.T) {
	l := New("#")
	_, err := l.NextToken()
	if err == nil {
		t.Fatal("expected error for invalid character")
	}
	if !errors.IsKind(err, errors.LexError) {
		t.Fatalf("expected LexError, got %v", err)
	}
}
