// Package token defines the token types produced by the brio lexer.
package token

// TokenType represents the type of a token in brio source code.
type TokenType int

// Token type constants organized by category
const (
	// Special tokens
	ILLEGAL TokenType = iota // Unexpected character
	EOF                      // End of input

	// Identifiers and literals
	IDENT         // identifiers: x, myVar, _tmp
	INT           // integer literals: 123
	FLOAT         // float literals: 123.45, .5
	BOOLEAN       // boolean literals: true, false
	STRING        // string literals without interpolation: "hello"
	STRING_INTERP // string literals with ${...} segments

	// Keywords
	PRINT // print
	VAR   // var
	IF    // if
	ELSE  // else
	WHILE // while

	// Operators
	PLUS       // +
	MINUS      // -
	ASTERISK   // *
	SLASH      // /
	ASSIGN     // =
	EQ         // ==
	NOT_EQ     // !=
	LESS       // <
	GREATER    // >
	LESS_EQ    // <=
	GREATER_EQ // >=
	NOT        // !
	AND        // &&
	OR         // ||

	// Punctuation
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	SEMICOLON // ;
)

// tokenTypeNames maps token types to their display names.
var tokenTypeNames = map[TokenType]string{
	ILLEGAL:       "ILLEGAL",
	EOF:           "EOF",
	IDENT:         "IDENT",
	INT:           "INT",
	FLOAT:         "FLOAT",
	BOOLEAN:       "BOOLEAN",
	STRING:        "STRING",
	STRING_INTERP: "STRING_INTERP",
	PRINT:         "PRINT",
	VAR:           "VAR",
	IF:            "IF",
	ELSE:          "ELSE",
	WHILE:         "WHILE",
	PLUS:          "PLUS",
	MINUS:         "MINUS",
	ASTERISK:      "ASTERISK",
	SLASH:         "SLASH",
	ASSIGN:        "ASSIGN",
	EQ:            "EQ",
	NOT_EQ:        "NOT_EQ",
	LESS:          "LESS",
	GREATER:       "GREATER",
	LESS_EQ:       "LESS_EQ",
	GREATER_EQ:    "GREATER_EQ",
	NOT:           "NOT",
	AND:           "AND",
	OR:            "OR",
	LPAREN:        "LPAREN",
	RPAREN:        "RPAREN",
	LBRACE:        "LBRACE",
	RBRACE:        "RBRACE",
	SEMICOLON:     "SEMICOLON",
}

// String returns the display name of the token type.
func (tt TokenType) String() string {
	if name, ok := tokenTypeNames[tt]; ok {
		return name
	}
	return "UNKNOWN"
}

// Position describes a location in the source text.
// Column counts runes from the start of the line, starting at 1.
type Position struct {
	Line   int
	Column int
	Offset int
}

// SegmentKind discriminates the parts of an interpolated string literal.
type SegmentKind int

const (
	// SegmentLiteral is a raw text run between interpolations.
	SegmentLiteral SegmentKind = iota
	// SegmentExpr is the raw source text of a ${...} expression.
	SegmentExpr
)

// Segment is one piece of a STRING_INTERP token: either literal text or the
// raw text of an embedded expression, in source order.
type Segment struct {
	Kind SegmentKind
	Text string
}

// Token represents a single lexical token.
// Literal holds the token's source text (for STRING tokens, the decoded
// string contents). Segments is populated only for STRING_INTERP tokens.
type Token struct {
	Type     TokenType
	Literal  string
	Segments []Segment
	Pos      Position
}

// NewToken creates a new token with the given type, literal and position.
func NewToken(tokenType TokenType, literal string, pos Position) Token {
	return Token{Type: tokenType, Literal: literal, Pos: pos}
}

// keywords maps identifier spellings to keyword token types.
var keywords = map[string]TokenType{
	"print": PRINT,
	"var":   VAR,
	"if":    IF,
	"else":  ELSE,
	"while": WHILE,
	"true":  BOOLEAN,
	"false": BOOLEAN,
}

// LookupIdent returns the keyword type for an identifier spelling, or IDENT
// if the spelling is not a keyword.
func LookupIdent(ident string) TokenType {
	if tt, ok := keywords[ident]; ok {
		return tt
	}
	return IDENT
}

// IsKeyword reports whether the spelling is a reserved word.
func IsKeyword(ident string) bool {
	_, ok := keywords[ident]
	return ok
}
