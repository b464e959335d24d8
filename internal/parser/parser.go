// Package parser implements the brio parser.
//
// The parser is a recursive-descent parser with one token of lookahead.
// Expressions are parsed at two precedence levels only: term handles '*'
// and '/', and expr handles everything else ('+', '-', comparisons, '&&',
// '||') in a single left-associative loop. Comparison and logical
// operators therefore share precedence with addition; parenthesize where
// that matters.
//
// Interpolated strings are handled with a second pass: the raw expression
// text of each ${...} segment is run through a fresh lexer and parser, so
// the full expression grammar is available inside strings.
package parser

import (
	"strconv"

	"github.com/cwbudde/go-brio/internal/ast"
	"github.com/cwbudde/go-brio/internal/errors"
	"github.com/cwbudde/go-brio/internal/lexer"
	"github.com/cwbudde/go-brio/pkg/token"
)

// binaryOps maps token types handled by the expr level to operators.
var binaryOps = map[token.TokenType]ast.Operator{
	token.PLUS:       ast.OpAdd,
	token.MINUS:      ast.OpSubtract,
	token.EQ:         ast.OpEqual,
	token.NOT_EQ:     ast.OpNotEqual,
	token.LESS:       ast.OpLess,
	token.GREATER:    ast.OpGreater,
	token.LESS_EQ:    ast.OpLessEqual,
	token.GREATER_EQ: ast.OpGreaterEqual,
	token.AND:        ast.OpAnd,
	token.OR:         ast.OpOr,
}

// termOps maps token types handled by the term level to operators.
var termOps = map[token.TokenType]ast.Operator{
	token.ASTERISK: ast.OpMultiply,
	token.SLASH:    ast.OpDivide,
}

// Parser represents the brio parser.
type Parser struct {
	l        *lexer.Lexer
	curToken token.Token
}

// New creates a new Parser reading from the given lexer.
// The first token is fetched eagerly; a lexical error at the very start of
// the input surfaces here.
func New(l *lexer.Lexer) (*Parser, error) {
	p := &Parser{l: l}
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	return p, nil
}

// Parse parses a complete program. The whole input must be consumed; a
// trailing token that is not EOF is an error.
func Parse(source string) (*ast.Program, error) {
	p, err := New(lexer.New(source))
	if err != nil {
		return nil, err
	}
	return p.ParseProgram()
}

// nextToken advances to the next token.
func (p *Parser) nextToken() error {
	tok, err := p.l.NextToken()
	if err != nil {
		return err
	}
	p.curToken = tok
	return nil
}

// curTokenIs checks if the current token is of the given type.
func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curToken.Type == t
}

// expect consumes the current token if it matches the given type, or
// fails with a descriptive error.
func (p *Parser) expect(t token.TokenType) error {
	if !p.curTokenIs(t) {
		return errors.Newf(errors.ParseError, "expected %s, got %s", t, p.curToken.Type)
	}
	return p.nextToken()
}

// ParseProgram parses the token stream into a Program.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	var body ast.Statement
	var err error

	if p.curTokenIs(token.LBRACE) {
		body, err = p.parseCompoundStatement()
	} else {
		body, err = p.parseStatementList()
	}
	if err != nil {
		return nil, err
	}

	if !p.curTokenIs(token.EOF) {
		return nil, errors.Newf(errors.ParseError, "expected EOF, got %s", p.curToken.Type)
	}
	return &ast.Program{Body: body}, nil
}

// parseStatementList parses statements until RBRACE or EOF.
func (p *Parser) parseStatementList() (*ast.Compound, error) {
	compound := &ast.Compound{Token: p.curToken}

	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	compound.Statements = append(compound.Statements, stmt)

	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		compound.Statements = append(compound.Statements, stmt)
	}
	return compound, nil
}

// parseCompoundStatement parses '{' statement_list '}'.
func (p *Parser) parseCompoundStatement() (*ast.Compound, error) {
	if err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}
	compound, err := p.parseStatementList()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return compound, nil
}

// parseBody parses either a braced compound or a single statement, used
// for if/else and while bodies.
func (p *Parser) parseBody() (ast.Statement, error) {
	if p.curTokenIs(token.LBRACE) {
		return p.parseCompoundStatement()
	}
	return p.parseStatement()
}

// parseStatement parses a single statement.
func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.curToken.Type {
	case token.VAR:
		return p.parseVarDecl()
	case token.IDENT:
		return p.parseAssign()
	case token.PRINT:
		return p.parsePrint()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.LBRACE:
		return p.parseCompoundStatement()
	case token.RBRACE, token.EOF:
		return &ast.NoOp{}, nil
	default:
		return nil, errors.Newf(errors.ParseError, "unexpected token %s", p.curToken.Type)
	}
}

// parseVarDecl parses 'var' IDENT '=' expr ';'.
func (p *Parser) parseVarDecl() (ast.Statement, error) {
	declToken := p.curToken
	if err := p.expect(token.VAR); err != nil {
		return nil, err
	}
	name := p.curToken.Literal
	if err := p.expect(token.IDENT); err != nil {
		return nil, err
	}
	if err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.VarDecl{Token: declToken, Name: name, Value: value}, nil
}

// parseAssign parses IDENT '=' expr ';'.
func (p *Parser) parseAssign() (ast.Statement, error) {
	identToken := p.curToken
	if err := p.expect(token.IDENT); err != nil {
		return nil, err
	}
	if err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.Assign{Token: identToken, Name: identToken.Literal, Value: value}, nil
}

// parsePrint parses 'print' expr ';'.
func (p *Parser) parsePrint() (ast.Statement, error) {
	printToken := p.curToken
	if err := p.expect(token.PRINT); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.PrintStatement{Token: printToken, Value: value}, nil
}

// parseIf parses 'if' '(' expr ')' body ('else' body)?.
func (p *Parser) parseIf() (ast.Statement, error) {
	ifToken := p.curToken
	if err := p.expect(token.IF); err != nil {
		return nil, err
	}
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	condition, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	then, err := p.parseBody()
	if err != nil {
		return nil, err
	}

	var elseBody ast.Statement
	if p.curTokenIs(token.ELSE) {
		if err := p.expect(token.ELSE); err != nil {
			return nil, err
		}
		elseBody, err = p.parseBody()
		if err != nil {
			return nil, err
		}
	}
	return &ast.IfStatement{Token: ifToken, Condition: condition, Then: then, Else: elseBody}, nil
}

// parseWhile parses 'while' '(' expr ')' body.
func (p *Parser) parseWhile() (ast.Statement, error) {
	whileToken := p.curToken
	if err := p.expect(token.WHILE); err != nil {
		return nil, err
	}
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	condition, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStatement{Token: whileToken, Condition: condition, Body: body}, nil
}

// parseExpression parses the expr level: term (op term)* for '+', '-',
// comparisons, '&&' and '||', all left-associative at one level.
func (p *Parser) parseExpression() (ast.Expression, error) {
	node, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for {
		op, ok := binaryOps[p.curToken.Type]
		if !ok {
			return node, nil
		}
		opToken := p.curToken
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		node = &ast.BinaryExpression{Token: opToken, Op: op, Left: node, Right: right}
	}
}

// parseTerm parses the term level: factor (('*' | '/') factor)*.
func (p *Parser) parseTerm() (ast.Expression, error) {
	node, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for {
		op, ok := termOps[p.curToken.Type]
		if !ok {
			return node, nil
		}
		opToken := p.curToken
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		node = &ast.BinaryExpression{Token: opToken, Op: op, Left: node, Right: right}
	}
}

// parseFactor parses literals, variables, grouping and unary operators.
func (p *Parser) parseFactor() (ast.Expression, error) {
	tok := p.curToken

	switch tok.Type {
	case token.INT:
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		value, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			return nil, errors.Newf(errors.ParseError, "invalid integer literal %q", tok.Literal)
		}
		return &ast.NumberLiteral{Token: tok, Value: value}, nil

	case token.FLOAT:
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		value, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return nil, errors.Newf(errors.ParseError, "invalid float literal %q", tok.Literal)
		}
		return &ast.FloatLiteral{Token: tok, Value: value}, nil

	case token.BOOLEAN:
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		return &ast.BooleanLiteral{Token: tok, Value: tok.Literal == "true"}, nil

	case token.STRING:
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		return &ast.StringLiteral{Token: tok, Value: tok.Literal}, nil

	case token.STRING_INTERP:
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		return p.parseInterpolation(tok)

	case token.IDENT:
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		return &ast.Variable{Token: tok, Name: tok.Literal}, nil

	case token.LPAREN:
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		node, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return node, nil

	case token.PLUS, token.MINUS, token.NOT:
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		op := ast.OpNot
		switch tok.Type {
		case token.PLUS:
			op = ast.OpAdd
		case token.MINUS:
			op = ast.OpSubtract
		}
		return &ast.UnaryExpression{Token: tok, Op: op, Operand: operand}, nil

	default:
		return nil, errors.Newf(errors.ParseError, "unexpected token %s in expression", tok.Type)
	}
}

// parseInterpolation expands a STRING_INTERP token: literal segments
// become string nodes, and each expression segment's raw text is re-lexed
// and re-parsed as a fresh expression.
func (p *Parser) parseInterpolation(tok token.Token) (ast.Expression, error) {
	node := &ast.StringInterpolation{Token: tok}

	for _, segment := range tok.Segments {
		if segment.Kind == token.SegmentLiteral {
			node.Parts = append(node.Parts, &ast.StringLiteral{
				Token: token.NewToken(token.STRING, segment.Text, tok.Pos),
				Value: segment.Text,
			})
			continue
		}

		sub, err := New(lexer.New(segment.Text))
		if err != nil {
			return nil, err
		}
		expr, err := sub.parseExpression()
		if err != nil {
			return nil, err
		}
		if !sub.curTokenIs(token.EOF) {
			return nil, errors.Newf(errors.ParseError, "unexpected token %s in interpolation", sub.curToken.Type)
		}
		node.Parts = append(node.Parts, expr)
	}
	return node, nil
}
