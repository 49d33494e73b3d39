package parser

import (
	"strconv"

	"github.com/vaisto-lang/vaisto/internal/ast"
	"github.com/vaisto-lang/vaisto/internal/lexer"
)

var binOps = map[string]bool{
	"+": true, "-": true, "*": true, "/": true,
}

// parseExpr parses one vaisto expression. Every compound form is a
// parenthesized list whose head symbol selects the form; bare literals,
// symbols and atoms parse directly.
func (p *Parser) parseExpr() ast.Expr {
	switch p.curToken.Type {
	case lexer.INT:
		return p.parseIntLiteral()
	case lexer.FLOAT:
		return p.parseFloatLiteral()
	case lexer.STRING:
		return p.parseStringLiteral()
	case lexer.BOOL:
		return p.parseBoolLiteral()
	case lexer.KEYWORD:
		loc := p.curLoc()
		tag := p.curToken.Literal
		p.nextToken()
		return &ast.Atom{Tag: tag, Loc: loc}
	case lexer.SYMBOL:
		loc := p.curLoc()
		name := p.curToken.Literal
		p.nextToken()
		return &ast.Sym{Name: name, Loc: loc}
	case lexer.LBRACK:
		return p.parseListExpr()
	case lexer.LPAREN:
		return p.parseCompoundExpr()
	default:
		loc := p.curLoc()
		p.errors = append(p.errors, newError("E200", loc,
			"unexpected token %s %q in expression position", p.curToken.Type, p.curToken.Literal))
		p.nextToken()
		return &ast.Sym{Name: "<error>", Loc: loc}
	}
}

func (p *Parser) parseIntLiteral() ast.Expr {
	loc := p.curLoc()
	v, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.errors = append(p.errors, newError("E202", loc, "invalid integer literal %q", p.curToken.Literal))
	}
	p.nextToken()
	return &ast.Literal{Kind: ast.LitInt, Int: v, Loc: loc}
}

func (p *Parser) parseFloatLiteral() ast.Expr {
	loc := p.curLoc()
	v, err := strconv.ParseFloat(p.curToken.Literal, 64)
	if err != nil {
		p.errors = append(p.errors, newError("E202", loc, "invalid float literal %q", p.curToken.Literal))
	}
	p.nextToken()
	return &ast.Literal{Kind: ast.LitFloat, Float: v, Loc: loc}
}

func (p *Parser) parseStringLiteral() ast.Expr {
	loc := p.curLoc()
	v := p.curToken.Literal
	p.nextToken()
	return &ast.Literal{Kind: ast.LitString, Str: v, Loc: loc}
}

func (p *Parser) parseBoolLiteral() ast.Expr {
	loc := p.curLoc()
	v := p.curToken.Literal == "true"
	p.nextToken()
	return &ast.Literal{Kind: ast.LitBool, Bool: v, Loc: loc}
}

// parseListExpr parses a literal list [e1 e2 e3], sugar for a `list` call.
func (p *Parser) parseListExpr() ast.Expr {
	loc := p.curLoc()
	p.expect(lexer.LBRACK)
	var elems []ast.Expr
	for !p.curIs(lexer.RBRACK) && !p.curIs(lexer.EOF) {
		elems = append(elems, p.parseExpr())
	}
	p.expect(lexer.RBRACK)
	return &ast.Call{Fn: &ast.Sym{Name: "list", Loc: loc}, Args: elems, Loc: loc}
}

// parseCompoundExpr parses any parenthesized form: (if ...), (let ...),
// (fn ...), (do ...), (match ...), (. rec :field), (spawn ...),
// (! pid msg), (!! pid msg), (op a b), or a plain application (f a b).
func (p *Parser) parseCompoundExpr() ast.Expr {
	loc := p.curLoc()
	p.expect(lexer.LPAREN)

	if p.curIs(lexer.SYMBOL) {
		switch p.curToken.Literal {
		case "if":
			return p.finishIf(loc)
		case "let":
			return p.finishLet(loc)
		case "fn":
			return p.finishFn(loc)
		case "do":
			return p.finishDo(loc)
		case "match":
			return p.finishMatch(loc)
		case ".":
			return p.finishFieldAccess(loc)
		case "spawn":
			return p.finishSpawn(loc)
		case "!":
			return p.finishSend(loc, true)
		case "!!":
			return p.finishSend(loc, false)
		}
		if binOps[p.curToken.Literal] {
			return p.finishBinOp(loc)
		}
	}

	return p.finishCall(loc)
}

func (p *Parser) finishIf(loc ast.Loc) ast.Expr {
	p.nextToken() // 'if'
	cond := p.parseExpr()
	then := p.parseExpr()
	els := p.parseExpr()
	p.expect(lexer.RPAREN)
	return &ast.If{Cond: cond, Then: then, Else: els, Loc: loc}
}

// finishLet parses (let [name1 init1 name2 init2 ...] body).
func (p *Parser) finishLet(loc ast.Loc) ast.Expr {
	p.nextToken() // 'let'
	p.expect(lexer.LBRACK)
	var bindings []ast.Binding
	for !p.curIs(lexer.RBRACK) && !p.curIs(lexer.EOF) {
		name := p.expect(lexer.SYMBOL).Literal
		init := p.parseExpr()
		bindings = append(bindings, ast.Binding{Name: name, Init: init})
	}
	p.expect(lexer.RBRACK)
	body := p.parseExpr()
	p.expect(lexer.RPAREN)
	return &ast.Let{Bindings: bindings, Body: body, Loc: loc}
}

func (p *Parser) finishFn(loc ast.Loc) ast.Expr {
	p.nextToken() // 'fn'
	p.expect(lexer.LBRACK)
	var params []string
	for !p.curIs(lexer.RBRACK) && !p.curIs(lexer.EOF) {
		params = append(params, p.expect(lexer.SYMBOL).Literal)
	}
	p.expect(lexer.RBRACK)
	body := p.parseExpr()
	p.expect(lexer.RPAREN)
	return &ast.Fn{Params: params, Body: body, Loc: loc}
}

func (p *Parser) finishDo(loc ast.Loc) ast.Expr {
	p.nextToken() // 'do'
	var exprs []ast.Expr
	for !p.curIs(lexer.RPAREN) && !p.curIs(lexer.EOF) {
		exprs = append(exprs, p.parseExpr())
	}
	p.expect(lexer.RPAREN)
	return &ast.Do{Exprs: exprs, Loc: loc}
}

// finishMatch parses (match scrutinee [pattern body] [pattern body] ...).
func (p *Parser) finishMatch(loc ast.Loc) ast.Expr {
	p.nextToken() // 'match'
	scrutinee := p.parseExpr()
	var clauses []ast.MatchClause
	for p.curIs(lexer.LBRACK) {
		p.expect(lexer.LBRACK)
		pat := p.parsePattern()
		body := p.parseExpr()
		p.expect(lexer.RBRACK)
		clauses = append(clauses, ast.MatchClause{Pattern: pat, Body: body})
	}
	p.expect(lexer.RPAREN)
	return &ast.Match{Scrutinee: scrutinee, Clauses: clauses, Loc: loc}
}

func (p *Parser) finishFieldAccess(loc ast.Loc) ast.Expr {
	p.nextToken() // '.'
	rec := p.parseExpr()
	field := p.expect(lexer.KEYWORD).Literal
	p.expect(lexer.RPAREN)
	return &ast.FieldAccess{Record: rec, Field: field, Loc: loc}
}

func (p *Parser) finishSpawn(loc ast.Loc) ast.Expr {
	p.nextToken() // 'spawn'
	process := p.expect(lexer.SYMBOL).Literal
	init := p.parseExpr()
	p.expect(lexer.RPAREN)
	return &ast.Spawn{Process: process, Init: init, Loc: loc}
}

func (p *Parser) finishSend(loc ast.Loc, safe bool) ast.Expr {
	p.nextToken() // '!' or '!!'
	pid := p.parseExpr()
	msg := p.parseExpr()
	p.expect(lexer.RPAREN)
	return &ast.Send{Pid: pid, Msg: msg, Safe: safe, Loc: loc}
}

func (p *Parser) finishBinOp(loc ast.Loc) ast.Expr {
	op := p.curToken.Literal
	p.nextToken()
	left := p.parseExpr()
	right := p.parseExpr()
	p.expect(lexer.RPAREN)
	return &ast.BinOp{Op: op, Left: left, Right: right, Loc: loc}
}

func (p *Parser) finishCall(loc ast.Loc) ast.Expr {
	fn := p.parseExpr()
	var args []ast.Expr
	for !p.curIs(lexer.RPAREN) && !p.curIs(lexer.EOF) {
		args = append(args, p.parseExpr())
	}
	p.expect(lexer.RPAREN)
	return &ast.Call{Fn: fn, Args: args, Loc: loc}
}
