package parser

import (
	"github.com/gosat/satlogic/ast"
	"github.com/gosat/satlogic/errs"
)

// ErrUnexpectedToken is returned (wrapped with position detail) when the
// token stream does not match the grammar — an unclosed paren, trailing
// input, or a missing operand.
var ErrUnexpectedToken = errs.New("parser", "parse", "unexpected token")

// Parse parses text into an ast.Formula. Precedence, tightest to loosest,
// is ¬, ∧, ∨, →, ↔; → is right-associative, ↔ is left-associative.
// Identifiers are alphanumeric starting with a letter. Both the Unicode
// operators ¬∧∨→↔ and the ASCII aliases not/and/or/->/<-> are accepted.
func Parse(text string) (ast.Formula, error) {
	tokens, err := lex(text)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	f, err := p.parseIff()
	if err != nil {
		return nil, err
	}
	if !p.atEOF() {
		tok := p.peek()
		return nil, errs.Wrap("parser", "Parse", ErrUnexpectedToken,
			"unexpected token %q at position %d", tok.value, tok.position)
	}
	return f, nil
}

type parser struct {
	tokens  []token
	current int
}

func (p *parser) peek() token { return p.tokens[p.current] }

func (p *parser) atEOF() bool { return p.peek().typ == tokEOF }

func (p *parser) advance() token {
	tok := p.tokens[p.current]
	if p.current < len(p.tokens)-1 {
		p.current++
	}
	return tok
}

func (p *parser) match(types ...tokenType) bool {
	if p.matchesAny(types...) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) matchesAny(types ...tokenType) bool {
	for _, t := range types {
		if p.peek().typ == t {
			return true
		}
	}
	return false
}

// parseIff parses ↔, left-associative, the loosest binding operator.
func (p *parser) parseIff() (ast.Formula, error) {
	left, err := p.parseImplies()
	if err != nil {
		return nil, err
	}
	for p.match(tokIff) {
		right, err := p.parseImplies()
		if err != nil {
			return nil, err
		}
		left = ast.Biconditional{Left: left, Right: right}
	}
	return left, nil
}

// parseImplies parses →, right-associative.
func (p *parser) parseImplies() (ast.Formula, error) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.match(tokImplies) {
		right, err := p.parseImplies() // right recursion: right-associative
		if err != nil {
			return nil, err
		}
		return ast.Implies{Left: left, Right: right}, nil
	}
	return left, nil
}

func (p *parser) parseOr() (ast.Formula, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.match(tokOr) {
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = ast.Or{Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseAnd() (ast.Formula, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.match(tokAnd) {
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = ast.And{Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseNot() (ast.Formula, error) {
	if p.match(tokNot) {
		child, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return ast.Not{Child: child}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (ast.Formula, error) {
	tok := p.peek()
	switch tok.typ {
	case tokIdent:
		p.advance()
		return ast.Var{Name: tok.value}, nil
	case tokLParen:
		p.advance()
		inner, err := p.parseIff()
		if err != nil {
			return nil, err
		}
		if !p.match(tokRParen) {
			got := p.peek()
			return nil, errs.Wrap("parser", "parsePrimary", ErrUnexpectedToken,
				"expected ')' at position %d, got %q", got.position, got.value)
		}
		return inner, nil
	default:
		return nil, errs.Wrap("parser", "parsePrimary", ErrUnexpectedToken,
			"expected an identifier or '(' at position %d, got %q", tok.position, tok.value)
	}
}
