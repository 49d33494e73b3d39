package parser

import (
	"strconv"

	"github.com/vaisto-lang/vaisto/internal/ast"
	"github.com/vaisto-lang/vaisto/internal/lexer"
)

// parsePattern parses one match pattern. Patterns share the lexical shape
// of expressions but never nest arbitrary forms: only literals, symbols,
// constructor applications, list patterns `[p1 p2 | tail]`, and explicit
// tuple patterns `(tuple p1 p2)`.
func (p *Parser) parsePattern() ast.Pattern {
	loc := p.curLoc()
	switch p.curToken.Type {
	case lexer.SYMBOL:
		name := p.curToken.Literal
		p.nextToken()
		if name == "_" {
			return &ast.PWildcard{Loc: loc}
		}
		if name[0] >= 'A' && name[0] <= 'Z' {
			// A bare capitalized symbol is a nullary constructor pattern.
			return &ast.PCtor{Ctor: name, Loc: loc}
		}
		return &ast.PVar{Name: name, Loc: loc}
	case lexer.INT:
		v, _ := strconv.ParseInt(p.curToken.Literal, 10, 64)
		p.nextToken()
		return &ast.PLiteral{Lit: &ast.Literal{Kind: ast.LitInt, Int: v, Loc: loc}, Loc: loc}
	case lexer.FLOAT:
		v, _ := strconv.ParseFloat(p.curToken.Literal, 64)
		p.nextToken()
		return &ast.PLiteral{Lit: &ast.Literal{Kind: ast.LitFloat, Float: v, Loc: loc}, Loc: loc}
	case lexer.STRING:
		v := p.curToken.Literal
		p.nextToken()
		return &ast.PLiteral{Lit: &ast.Literal{Kind: ast.LitString, Str: v, Loc: loc}, Loc: loc}
	case lexer.BOOL:
		v := p.curToken.Literal == "true"
		p.nextToken()
		return &ast.PLiteral{Lit: &ast.Literal{Kind: ast.LitBool, Bool: v, Loc: loc}, Loc: loc}
	case lexer.LBRACK:
		return p.parseListPattern()
	case lexer.LPAREN:
		return p.parseCompoundPattern()
	default:
		p.errors = append(p.errors, newError("E203", loc,
			"unexpected token %s %q in pattern position", p.curToken.Type, p.curToken.Literal))
		p.nextToken()
		return &ast.PWildcard{Loc: loc}
	}
}

// parseListPattern parses `[p1 p2 p3]` or the cons form `[head | tail]`.
func (p *Parser) parseListPattern() ast.Pattern {
	loc := p.curLoc()
	p.expect(lexer.LBRACK)

	var elems []ast.Pattern
	for !p.curIs(lexer.RBRACK) && !p.curIs(lexer.PIPE) && !p.curIs(lexer.EOF) {
		elems = append(elems, p.parsePattern())
	}

	if p.curIs(lexer.PIPE) {
		p.nextToken()
		tail := p.parsePattern()
		p.expect(lexer.RBRACK)

		// Desugar [a b | tail] into nested cons: a :: b :: tail
		result := tail
		for i := len(elems) - 1; i >= 0; i-- {
			result = &ast.PCons{Head: elems[i], Tail: result, Loc: loc}
		}
		return result
	}

	p.expect(lexer.RBRACK)
	return &ast.PList{Elems: elems, Loc: loc}
}

// parseCompoundPattern parses `(Ctor p1 p2)` or `(tuple p1 p2 ...)`.
func (p *Parser) parseCompoundPattern() ast.Pattern {
	loc := p.curLoc()
	p.expect(lexer.LPAREN)

	if p.curIsSymbol("tuple") {
		p.nextToken()
		var elems []ast.Pattern
		for !p.curIs(lexer.RPAREN) && !p.curIs(lexer.EOF) {
			elems = append(elems, p.parsePattern())
		}
		p.expect(lexer.RPAREN)
		return &ast.PTuple{Elems: elems, Loc: loc}
	}

	ctor := p.expect(lexer.SYMBOL).Literal
	var args []ast.Pattern
	for !p.curIs(lexer.RPAREN) && !p.curIs(lexer.EOF) {
		args = append(args, p.parsePattern())
	}
	p.expect(lexer.RPAREN)
	return &ast.PCtor{Ctor: ctor, Args: args, Loc: loc}
}
