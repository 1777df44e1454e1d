// Package parser tokenizes and parses human-readable propositional
// formulas into ast.Formula. It accepts both the Unicode operators
// ¬∧∨→↔ and the ASCII aliases not/and/or/->/<->; identifiers are
// alphanumeric strings starting with a letter. This package is external
// to the solving core (spec.md §1): it produces an ast.Formula and has no
// further dependency on preprocess, dpll, or cdcl.
package parser

import (
	"unicode"
	"unicode/utf8"

	"github.com/gosat/satlogic/errs"
)

type tokenType int

const (
	tokIdent tokenType = iota
	tokNot
	tokAnd
	tokOr
	tokImplies
	tokIff
	tokLParen
	tokRParen
	tokEOF
)

type token struct {
	typ      tokenType
	value    string
	position int
}

// ErrInvalidCharacter is returned (wrapped with position detail) when the
// input contains a character outside the supported grammar.
var ErrInvalidCharacter = errs.New("parser", "lex", "invalid character")

type lexer struct {
	input    string
	position int
}

func lex(input string) ([]token, error) {
	l := &lexer{input: input}
	var tokens []token
	for {
		l.skipWhitespace()
		if l.position >= len(l.input) {
			tokens = append(tokens, token{typ: tokEOF, position: l.position})
			return tokens, nil
		}
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
}

func (l *lexer) skipWhitespace() {
	for l.position < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.position:])
		if !unicode.IsSpace(r) {
			return
		}
		l.position += size
	}
}

func (l *lexer) next() (token, error) {
	start := l.position
	r, size := utf8.DecodeRuneInString(l.input[l.position:])

	switch r {
	case '(':
		l.position += size
		return token{typ: tokLParen, value: "(", position: start}, nil
	case ')':
		l.position += size
		return token{typ: tokRParen, value: ")", position: start}, nil
	case '¬':
		l.position += size
		return token{typ: tokNot, value: "¬", position: start}, nil
	case '∧':
		l.position += size
		return token{typ: tokAnd, value: "∧", position: start}, nil
	case '∨':
		l.position += size
		return token{typ: tokOr, value: "∨", position: start}, nil
	case '→':
		l.position += size
		return token{typ: tokImplies, value: "→", position: start}, nil
	case '↔':
		l.position += size
		return token{typ: tokIff, value: "↔", position: start}, nil
	case '-':
		if l.hasAt(start+size, ">") {
			l.position = start + size + 1
			return token{typ: tokImplies, value: "->", position: start}, nil
		}
		return token{}, errs.Wrap("parser", "lex", ErrInvalidCharacter, "invalid character '-' at position %d", start)
	case '<':
		if l.hasAt(start+size, "->") {
			l.position = start + size + 2
			return token{typ: tokIff, value: "<->", position: start}, nil
		}
		return token{}, errs.Wrap("parser", "lex", ErrInvalidCharacter, "invalid character '<' at position %d", start)
	default:
		if unicode.IsLetter(r) {
			return l.readIdentifier(start), nil
		}
		return token{}, errs.Wrap("parser", "lex", ErrInvalidCharacter, "invalid character %q at position %d", r, start)
	}
}

func (l *lexer) hasAt(pos int, s string) bool {
	return pos+len(s) <= len(l.input) && l.input[pos:pos+len(s)] == s
}

func (l *lexer) readIdentifier(start int) token {
	for l.position < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.position:])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			break
		}
		l.position += size
	}
	value := l.input[start:l.position]
	switch value {
	case "not":
		return token{typ: tokNot, value: value, position: start}
	case "and":
		return token{typ: tokAnd, value: value, position: start}
	case "or":
		return token{typ: tokOr, value: value, position: start}
	default:
		return token{typ: tokIdent, value: value, position: start}
	}
}
