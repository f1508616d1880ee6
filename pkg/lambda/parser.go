package lambda

import (
	"fmt"
	"strings"
	"unicode"
)

type TokenType int

const (
	TokenEOF TokenType = iota
	TokenIdent
	TokenColon
	TokenEqual
	TokenSemicolon
	TokenLParen
	TokenRParen
	TokenLet
	TokenIn
	TokenLambda
	TokenDot
)

type Token struct {
	Type    TokenType
	Literal string
	Pos     int
}

// Parser reads terms in two notations:
//
//	x: y: x y          (Nix style)
//	λx y. x y          (lambda style, '\' may stand for 'λ')
//
// plus let bindings: let k = x: y: x; in k a b
type Parser struct {
	input   string
	pos     int
	current Token
}

func NewParser(input string) *Parser {
	p := &Parser{input: input}
	p.next()
	return p
}

func (p *Parser) next() {
	p.skipWhitespace()
	if p.pos >= len(p.input) {
		p.current = Token{Type: TokenEOF, Pos: p.pos}
		return
	}

	start := p.pos
	if strings.HasPrefix(p.input[p.pos:], "λ") {
		p.pos += len("λ")
		p.current = Token{Type: TokenLambda, Literal: "λ", Pos: start}
		return
	}

	ch := p.input[p.pos]
	switch {
	case isLetter(ch):
		for p.pos < len(p.input) && isIdentChar(p.input[p.pos]) {
			p.pos++
		}
		lit := p.input[start:p.pos]
		switch lit {
		case "let":
			p.current = Token{Type: TokenLet, Literal: lit, Pos: start}
		case "in":
			p.current = Token{Type: TokenIn, Literal: lit, Pos: start}
		default:
			p.current = Token{Type: TokenIdent, Literal: lit, Pos: start}
		}
	case ch == '\\':
		p.current = Token{Type: TokenLambda, Literal: "\\", Pos: start}
		p.pos++
	case ch == '.':
		p.current = Token{Type: TokenDot, Literal: ".", Pos: start}
		p.pos++
	case ch == ':':
		p.current = Token{Type: TokenColon, Literal: ":", Pos: start}
		p.pos++
	case ch == '=':
		p.current = Token{Type: TokenEqual, Literal: "=", Pos: start}
		p.pos++
	case ch == ';':
		p.current = Token{Type: TokenSemicolon, Literal: ";", Pos: start}
		p.pos++
	case ch == '(':
		p.current = Token{Type: TokenLParen, Literal: "(", Pos: start}
		p.pos++
	case ch == ')':
		p.current = Token{Type: TokenRParen, Literal: ")", Pos: start}
		p.pos++
	default:
		// single unknown characters are identifiers, e.g. +
		p.current = Token{Type: TokenIdent, Literal: string(ch), Pos: start}
		p.pos++
	}
}

func (p *Parser) skipWhitespace() {
	for p.pos < len(p.input) && unicode.IsSpace(rune(p.input[p.pos])) {
		p.pos++
	}
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '\''
}

func (p *Parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at %d: %s", ErrParse, p.current.Pos, fmt.Sprintf(format, args...))
}

func (p *Parser) Parse() (Term, error) {
	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if p.current.Type != TokenEOF {
		return nil, p.errorf("unexpected %q", p.current.Literal)
	}
	return term, nil
}

// Term ::= Let | Lambda | Ident ':' Term | App
func (p *Parser) parseTerm() (Term, error) {
	switch p.current.Type {
	case TokenLet:
		return p.parseLet()
	case TokenLambda:
		return p.parseLambda()
	}
	if abs, ok, err := p.tryNixAbs(); ok || err != nil {
		return abs, err
	}
	return p.parseApp()
}

// tryNixAbs parses `x: body` when the current identifier is followed by a
// colon, and restores the position otherwise.
func (p *Parser) tryNixAbs() (Term, bool, error) {
	if p.current.Type != TokenIdent {
		return nil, false, nil
	}
	savePos := p.pos
	saveTok := p.current
	p.next()
	if p.current.Type != TokenColon {
		p.pos = savePos
		p.current = saveTok
		return nil, false, nil
	}
	p.next() // consume colon
	body, err := p.parseTerm()
	if err != nil {
		return nil, true, err
	}
	return Abs{Arg: saveTok.Literal, Body: body}, true, nil
}

// Lambda ::= 'λ' Ident+ '.' Term
func (p *Parser) parseLambda() (Term, error) {
	p.next() // consume λ
	var names []string
	for p.current.Type == TokenIdent {
		names = append(names, p.current.Literal)
		p.next()
	}
	if len(names) == 0 {
		return nil, p.errorf("expected identifier after lambda")
	}
	if p.current.Type != TokenDot {
		return nil, p.errorf("expected '.'")
	}
	p.next()
	body, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	return Lambdas(names, body), nil
}

func (p *Parser) parseApp() (Term, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	for {
		switch p.current.Type {
		case TokenEOF, TokenRParen, TokenSemicolon, TokenIn:
			return left, nil
		}

		// an abstraction in argument position extends as far right as
		// possible: x y: z a => x (y: z a)
		if p.current.Type == TokenLambda {
			abs, err := p.parseLambda()
			if err != nil {
				return nil, err
			}
			return App{Fun: left, Arg: abs}, nil
		}
		if abs, ok, err := p.tryNixAbs(); err != nil {
			return nil, err
		} else if ok {
			return App{Fun: left, Arg: abs}, nil
		}

		right, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		left = App{Fun: left, Arg: right}
	}
}

func (p *Parser) parseAtom() (Term, error) {
	switch p.current.Type {
	case TokenIdent:
		name := p.current.Literal
		p.next()
		return Var{Name: name}, nil
	case TokenLParen:
		p.next()
		term, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if p.current.Type != TokenRParen {
			return nil, p.errorf("expected ')'")
		}
		p.next()
		return term, nil
	case TokenEOF:
		return nil, p.errorf("unexpected end of input")
	default:
		return nil, p.errorf("unexpected token %q", p.current.Literal)
	}
}

func (p *Parser) parseLet() (Term, error) {
	p.next() // consume 'let'

	type binding struct {
		name string
		val  Term
	}
	var bindings []binding

	for {
		if p.current.Type != TokenIdent {
			return nil, p.errorf("expected identifier in let binding")
		}
		name := p.current.Literal
		p.next()

		if p.current.Type != TokenEqual {
			return nil, p.errorf("expected '='")
		}
		p.next()

		val, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, binding{name, val})

		if p.current.Type == TokenSemicolon {
			p.next()
			if p.current.Type == TokenIn {
				p.next()
				break
			}
		} else if p.current.Type == TokenIn {
			p.next()
			break
		} else {
			return nil, p.errorf("expected ';' or 'in'")
		}
	}

	body, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	// let x=M; y=N in B -> (x: (y: B) N) M
	term := body
	for i := len(bindings) - 1; i >= 0; i-- {
		b := bindings[i]
		term = App{
			Fun: Abs{Arg: b.name, Body: term},
			Arg: b.val,
		}
	}

	return term, nil
}

// Parse parses a lambda term from a string.
func Parse(input string) (Term, error) {
	p := NewParser(input)
	return p.Parse()
}

// MustParse is Parse for hand-written terms; it panics on error.
func MustParse(input string) Term {
	t, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return t
}
