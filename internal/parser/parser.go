package parser

import (
	"fmt"
	"unicode/utf8"

	ferrors "github.com/KimNorgaard/go-fcubed/errors"
	"github.com/KimNorgaard/go-fcubed/internal/ast"
	"github.com/KimNorgaard/go-fcubed/internal/lexer"
	"github.com/KimNorgaard/go-fcubed/internal/token"
)

type valueParseFn func() ast.Expression

// Parser holds the state of the parser.
type Parser struct {
	l      *lexer.Lexer
	errors ferrors.ParseErrors

	curToken  token.Token
	peekToken token.Token

	valueParseFns map[token.Type]valueParseFn
}

// New creates a new parser.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.valueParseFns = make(map[token.Type]valueParseFn)
	p.registerValue(token.STRING, p.parseStringLiteral)
	p.registerValue(token.TRUE, p.parseBooleanLiteral)
	p.registerValue(token.FALSE, p.parseBooleanLiteral)
	p.registerValue(token.CHAR, p.parseCharLiteral)
	p.registerValue(token.INT, p.parseIntegerLiteral)
	p.registerValue(token.NONE, p.parseNullLiteral)
	p.registerValue(token.BARE, p.parseNullLiteral)

	// Read two tokens, so curToken and peekToken are both set.
	p.nextToken()
	p.nextToken()

	return p
}

// Errors returns the errors encountered during parsing.
func (p *Parser) Errors() ferrors.ParseErrors {
	return p.errors
}

// Parse parses the FCubed document and returns the root AST node.
// Every line is parsed even after an error so that all malformed lines
// are reported at once.
func (p *Parser) Parse() *ast.Document {
	document := &ast.Document{Assignments: []*ast.Assignment{}}

	for !p.curTokenIs(token.EOF) {
		switch p.curToken.Type {
		case token.NEWLINE:
			p.nextToken()
		case token.KEY:
			if a := p.parseAssignment(); a != nil {
				document.Assignments = append(document.Assignments, a)
			}
		case token.ILLEGAL:
			p.addError(p.curToken, ferrors.ErrMalformedLine, p.curToken.Literal)
			p.skipLine()
		default:
			p.addError(p.curToken, nil, fmt.Sprintf("unexpected token %s (%q)", p.curToken.Type, p.curToken.Literal))
			p.skipLine()
		}
	}

	return document
}

func (p *Parser) registerValue(tokenType token.Type, fn valueParseFn) {
	p.valueParseFns[tokenType] = fn
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t token.Type) bool {
	return p.curToken.Type == t
}

func (p *Parser) skipLine() {
	for !p.curTokenIs(token.NEWLINE) && !p.curTokenIs(token.EOF) {
		p.nextToken()
	}
}

func (p *Parser) addError(tok token.Token, kind error, msg string) {
	p.errors = append(p.errors, ferrors.ParseError{
		Message: msg,
		Line:    tok.Line,
		Column:  tok.Column,
		Err:     kind,
	})
}

// The contract for all value parse functions is that they are entered with
// p.curToken being the value token, and they must return with p.curToken
// pointing to the token after it.

func (p *Parser) parseAssignment() *ast.Assignment {
	a := &ast.Assignment{Token: p.curToken, Key: p.curToken.Literal}

	if p.peekToken.Type != token.ASSIGN {
		p.addError(p.peekToken, ferrors.ErrMalformedLine, "expected '=' after key")
		p.skipLine()
		return nil
	}
	p.nextToken() // consume key
	p.nextToken() // consume '='

	fn := p.valueParseFns[p.curToken.Type]
	if fn == nil {
		p.addError(p.curToken, nil, fmt.Sprintf("no value parse function for %s found", p.curToken.Type))
		p.skipLine()
		return nil
	}
	a.Value = fn()

	if p.curTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	if !p.curTokenIs(token.NEWLINE) && !p.curTokenIs(token.EOF) {
		p.addError(p.curToken, nil, fmt.Sprintf("unexpected token after value: %s (%q)", p.curToken.Type, p.curToken.Literal))
		p.skipLine()
		return nil
	}
	if a.Value == nil {
		return nil
	}
	return a
}

func (p *Parser) parseStringLiteral() ast.Expression {
	lit := &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
	p.nextToken()
	return lit
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	lit := &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(token.TRUE)}
	p.nextToken()
	return lit
}

func (p *Parser) parseCharLiteral() ast.Expression {
	tok := p.curToken
	p.nextToken()

	if utf8.RuneCountInString(tok.Literal) != 1 {
		p.addError(tok, ferrors.ErrInvalidChar, fmt.Sprintf("character literal must hold exactly one character, got %q", tok.Literal))
		return nil
	}
	r, _ := utf8.DecodeRuneInString(tok.Literal)
	return &ast.CharLiteral{Token: tok, Value: r}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	tok := p.curToken
	p.nextToken()

	value, ok := lexer.ParseInt32(tok.Literal)
	if !ok {
		p.addError(tok, nil, fmt.Sprintf("could not parse %q as int32", tok.Literal))
		return nil
	}
	return &ast.IntegerLiteral{Token: tok, Value: value}
}

func (p *Parser) parseNullLiteral() ast.Expression {
	lit := &ast.NullLiteral{Token: p.curToken}
	p.nextToken()
	return lit
}
