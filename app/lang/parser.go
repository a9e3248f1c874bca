package lang

import (
	"errors"
	"strconv"
)

// Parser holds the state for parsing a token stream.
type Parser struct {
	tokens []Token
	pos    int
}

// Parse parses a token slice (as returned by Lex) into an AST node.
func Parse(tokens []Token) (Node, error) {
	if len(tokens) == 0 || (len(tokens) == 1 && tokens[0].Type == TOKEN_EOF) {
		return nil, malformed("empty expression")
	}

	p := &Parser{tokens: tokens, pos: 0}

	node, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	// Make sure we consumed everything (except EOF)
	if tok := p.peek(); tok.Type != TOKEN_EOF {
		return nil, malformed("unexpected " + describe(tok) + " at " + strconv.Itoa(tok.Pos))
	}

	return node, nil
}

func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TOKEN_EOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) advance() Token {
	t := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

// parseExpression: term ( ("+" | "-") term )*
func (p *Parser) parseExpression() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for p.peek().Type == TOKEN_PLUS || p.peek().Type == TOKEN_MINUS {
		op := p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Op: op.Type, Left: left, Right: right}
	}

	return left, nil
}

// parseTerm: number ( ("*" | "/") number )*
func (p *Parser) parseTerm() (Node, error) {
	left, err := p.parseNumber()
	if err != nil {
		return nil, err
	}

	for p.peek().Type == TOKEN_STAR || p.peek().Type == TOKEN_SLASH {
		op := p.advance()
		right, err := p.parseNumber()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Op: op.Type, Left: left, Right: right}
	}

	return left, nil
}

// parseNumber: NUMBER
// There is no unary minus, so an operator here is always malformed.
func (p *Parser) parseNumber() (Node, error) {
	tok := p.peek()
	switch tok.Type {
	case TOKEN_NUMBER:
		p.advance()
		v, err := strconv.ParseFloat(tok.Literal, 64)
		// Out-of-range literals round to ±Inf or 0 like any other IEEE value.
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, parseErr("invalid number: " + tok.Literal)
		}
		return &NumberLit{Value: v}, nil
	case TOKEN_EOF:
		if p.pos > 0 {
			prev := p.tokens[p.pos-1]
			return nil, malformed("expected number after '" + prev.Literal + "'")
		}
		return nil, malformed("empty expression")
	default:
		return nil, malformed("unexpected " + describe(tok) + " at " + strconv.Itoa(tok.Pos))
	}
}

func describe(tok Token) string {
	switch tok.Type {
	case TOKEN_NUMBER:
		return "number " + tok.Literal
	case TOKEN_EOF:
		return "end of input"
	default:
		return "operator '" + tok.Literal + "'"
	}
}
