// Package lexer implements the lexical scanner for brio source code.
//
// The lexer walks the input one rune at a time and produces tokens on
// demand via NextToken. Whitespace and comments are skipped. String
// literals are scanned with awareness of ${...} interpolation segments:
// the raw expression text of each segment is captured for the parser to
// re-lex, tracking nested braces so expressions may themselves contain
// balanced {}.
//
// Column positions are reported as rune counts from the start of the line.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cwbudde/go-brio/internal/errors"
	"github.com/cwbudde/go-brio/pkg/token"
)

// Lexer represents a lexical scanner for brio source code.
type Lexer struct {
	input        string
	position     int
	readPosition int
	line         int
	column       int
	ch           rune
}

// New creates a new Lexer for the given input string.
func New(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar() // Initialize first character
	return l
}

// readChar advances the lexer to the next character in the input.
// Properly handles UTF-8 multi-byte sequences.
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0 // EOF
		l.position = l.readPosition
		l.column++
	} else {
		r, size := utf8.DecodeRuneInString(l.input[l.readPosition:])
		l.ch = r
		l.position = l.readPosition
		l.readPosition += size
		l.column++
	}
}

// peekChar returns the next character without advancing the position.
func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

// matchAndConsume advances past the next character if it matches expected.
func (l *Lexer) matchAndConsume(expected rune) bool {
	if l.peekChar() != expected {
		return false
	}
	l.readChar()
	return true
}

// currentPos returns the current Position for token creation.
func (l *Lexer) currentPos() token.Position {
	return token.Position{
		Line:   l.line,
		Column: l.column,
		Offset: l.position,
	}
}

// skipWhitespace skips over whitespace characters.
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		if l.ch == '\n' {
			l.line++
			l.column = 0
		}
		l.readChar()
	}
}

// skipLineComment skips a // comment up to (but not past) the end of line.
func (l *Lexer) skipLineComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

// skipBlockComment skips a /* */ comment. Comments do not nest; the first
// */ terminates. An unterminated comment runs to EOF and is tolerated.
func (l *Lexer) skipBlockComment() {
	l.readChar() // skip /
	l.readChar() // skip *

	for l.ch != 0 {
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar() // skip *
			l.readChar() // skip /
			return
		}
		if l.ch == '\n' {
			l.line++
			l.column = 0
		}
		l.readChar()
	}
}

// readIdentifier reads an identifier or keyword from the input.
// Identifiers start with a letter or underscore and continue with letters,
// digits, or underscores.
func (l *Lexer) readIdentifier() string {
	position := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

// readNumber reads a numeric literal: a run of digits containing at most
// one '.'. A second '.' ends the run. A literal containing '.' is a FLOAT,
// otherwise an INT. A leading '.' starts a float.
func (l *Lexer) readNumber() (token.TokenType, string) {
	startPos := l.position
	hasDot := false

	for isDigit(l.ch) || l.ch == '.' {
		if l.ch == '.' {
			if hasDot {
				break // second dot is not part of the number
			}
			hasDot = true
		}
		l.readChar()
	}

	tokenType := token.INT
	if hasDot {
		tokenType = token.FLOAT
	}
	return tokenType, l.input[startPos:l.position]
}

// readString reads a double-quoted string literal, splitting it into
// literal and ${...} expression segments. Brace depth is tracked inside an
// interpolation so the expression text may contain balanced {}.
// There are no escape sequences.
func (l *Lexer) readString(pos token.Position) (token.Token, error) {
	l.readChar() // skip opening quote

	var segments []token.Segment
	var builder strings.Builder

	for l.ch != 0 && l.ch != '"' {
		if l.ch == '$' && l.peekChar() == '{' {
			// Flush the accumulated literal run.
			if builder.Len() > 0 {
				segments = append(segments, token.Segment{Kind: token.SegmentLiteral, Text: builder.String()})
				builder.Reset()
			}

			l.readChar() // skip $
			l.readChar() // skip {

			exprStart := l.position
			depth := 1
			for depth > 0 && l.ch != 0 {
				if l.ch == '{' {
					depth++
				} else if l.ch == '}' {
					depth--
				}
				if depth > 0 {
					if l.ch == '\n' {
						l.line++
						l.column = 0
					}
					l.readChar()
				}
			}
			if l.ch == 0 {
				return token.Token{}, errors.New(errors.LexError, "unterminated string interpolation")
			}

			segments = append(segments, token.Segment{Kind: token.SegmentExpr, Text: l.input[exprStart:l.position]})
			l.readChar() // skip closing brace
			continue
		}

		if l.ch == '\n' {
			l.line++
			l.column = 0
		}
		builder.WriteRune(l.ch)
		l.readChar()
	}

	if l.ch != '"' {
		return token.Token{}, errors.New(errors.LexError, "unterminated string literal")
	}
	l.readChar() // skip closing quote

	if builder.Len() > 0 {
		segments = append(segments, token.Segment{Kind: token.SegmentLiteral, Text: builder.String()})
	}

	// A single literal run and no interpolations is a plain string.
	if len(segments) == 0 {
		return token.NewToken(token.STRING, "", pos), nil
	}
	if len(segments) == 1 && segments[0].Kind == token.SegmentLiteral {
		return token.NewToken(token.STRING, segments[0].Text, pos), nil
	}

	tok := token.NewToken(token.STRING_INTERP, "", pos)
	tok.Segments = segments
	return tok, nil
}

// simpleToken creates a single-character token and advances the lexer.
func (l *Lexer) simpleToken(tokenType token.TokenType, literal string, pos token.Position) token.Token {
	tok := token.NewToken(tokenType, literal, pos)
	l.readChar()
	return tok
}

// twoCharToken emits either the two-character token (if the next character
// matches) or the one-character fallback.
func (l *Lexer) twoCharToken(next rune, two token.TokenType, twoLit string, one token.TokenType, oneLit string, pos token.Position) token.Token {
	if l.matchAndConsume(next) {
		tok := token.NewToken(two, twoLit, pos)
		l.readChar()
		return tok
	}
	tok := token.NewToken(one, oneLit, pos)
	l.readChar()
	return tok
}

// NextToken returns the next token from the input, or an error for invalid
// input. At end of input it returns an EOF token.
func (l *Lexer) NextToken() (token.Token, error) {
	for {
		l.skipWhitespace()

		if l.ch == '/' {
			switch l.peekChar() {
			case '/':
				l.skipLineComment()
				continue
			case '*':
				l.skipBlockComment()
				continue
			}
		}
		break
	}

	pos := l.currentPos()

	switch l.ch {
	case 0:
		return token.NewToken(token.EOF, "", pos), nil
	case '+':
		return l.simpleToken(token.PLUS, "+", pos), nil
	case '-':
		return l.simpleToken(token.MINUS, "-", pos), nil
	case '*':
		return l.simpleToken(token.ASTERISK, "*", pos), nil
	case '/':
		return l.simpleToken(token.SLASH, "/", pos), nil
	case '(':
		return l.simpleToken(token.LPAREN, "(", pos), nil
	case ')':
		return l.simpleToken(token.RPAREN, ")", pos), nil
	case '{':
		return l.simpleToken(token.LBRACE, "{", pos), nil
	case '}':
		return l.simpleToken(token.RBRACE, "}", pos), nil
	case ';':
		return l.simpleToken(token.SEMICOLON, ";", pos), nil
	case '=':
		return l.twoCharToken('=', token.EQ, "==", token.ASSIGN, "=", pos), nil
	case '!':
		return l.twoCharToken('=', token.NOT_EQ, "!=", token.NOT, "!", pos), nil
	case '<':
		return l.twoCharToken('=', token.LESS_EQ, "<=", token.LESS, "<", pos), nil
	case '>':
		return l.twoCharToken('=', token.GREATER_EQ, ">=", token.GREATER, ">", pos), nil
	case '&':
		if l.matchAndConsume('&') {
			tok := token.NewToken(token.AND, "&&", pos)
			l.readChar()
			return tok, nil
		}
		return token.Token{}, errors.New(errors.LexError, "expected '&' after '&'")
	case '|':
		if l.matchAndConsume('|') {
			tok := token.NewToken(token.OR, "||", pos)
			l.readChar()
			return tok, nil
		}
		return token.Token{}, errors.New(errors.LexError, "expected '|' after '|'")
	case '"':
		return l.readString(pos)
	default:
		switch {
		case isLetter(l.ch):
			literal := l.readIdentifier()
			return token.NewToken(token.LookupIdent(literal), literal, pos), nil
		case isDigit(l.ch) || l.ch == '.':
			tokenType, literal := l.readNumber()
			return token.NewToken(tokenType, literal, pos), nil
		default:
			return token.Token{}, errors.Newf(errors.LexError, "invalid character: %q", string(l.ch))
		}
	}
}

// Helper functions

func isLetter(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}
