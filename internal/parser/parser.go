// Package parser implements a recursive-descent reader that turns a vaisto
// token stream into the untyped AST consumed by the elaborator. Like the
// lexer, it is an external collaborator of the type system, not part of it.
package parser

import (
	"fmt"
	"strconv"

	"github.com/vaisto-lang/vaisto/internal/ast"
	"github.com/vaisto-lang/vaisto/internal/lexer"
)

// ParserError is a structured parse error with enough context for the
// diagnostic renderer to point at the offending token.
type ParserError struct {
	Code    string
	Message string
	Loc     ast.Loc
}

func (e *ParserError) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.Code, e.Loc, e.Message)
}

func newError(code string, loc ast.Loc, format string, args ...interface{}) *ParserError {
	return &ParserError{Code: code, Message: fmt.Sprintf(format, args...), Loc: loc}
}

// Parser reads a vaisto S-expression token stream and builds an ast.File.
type Parser struct {
	file      string
	l         *lexer.Lexer
	curToken  lexer.Token
	peekToken lexer.Token
	errors    []error
}

// New creates a Parser reading from l. file is the source name recorded on
// every Loc produced while parsing.
func New(file string, l *lexer.Lexer) *Parser {
	p := &Parser{file: file, l: l}
	p.nextToken()
	p.nextToken()
	return p
}

// NewFromSource is a convenience constructor that lexes src directly.
func NewFromSource(file string, src []byte) *Parser {
	return New(file, lexer.New(file, lexer.Normalize(src)))
}

// Errors returns every parse error accumulated while reading the file.
func (p *Parser) Errors() []error {
	return p.errors
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.Next()
}

func (p *Parser) curIs(t lexer.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekIs(t lexer.TokenType) bool { return p.peekToken.Type == t }

func (p *Parser) curLoc() ast.Loc {
	return ast.Loc{File: p.file, Line: p.curToken.Line, Col: p.curToken.Col}
}

func (p *Parser) curIsSymbol(name string) bool {
	return p.curToken.Type == lexer.SYMBOL && p.curToken.Literal == name
}

// expect advances past the current token if it matches t, recording an error
// otherwise. It always advances to avoid infinite loops on malformed input.
func (p *Parser) expect(t lexer.TokenType) lexer.Token {
	tok := p.curToken
	if p.curToken.Type != t {
		p.errors = append(p.errors, newError("E201", p.curLoc(),
			"expected %s, got %s %q", t, p.curToken.Type, p.curToken.Literal))
	}
	p.nextToken()
	return tok
}

func (p *Parser) expectSymbol(name string) {
	if !p.curIsSymbol(name) {
		p.errors = append(p.errors, newError("E201", p.curLoc(),
			"expected %q, got %q", name, p.curToken.Literal))
		return
	}
	p.nextToken()
}

// Parse reads a complete file: an optional (ns ...), zero or more (import
// ...), then a mix of top-level declarations and (for REPL/--eval use)
// bare expressions.
func (p *Parser) Parse() (file *ast.File) {
	defer func() {
		if r := recover(); r != nil {
			p.errors = append(p.errors, newError("E299", p.curLoc(), "parser panic: %v", r))
			if file == nil {
				file = &ast.File{Name: p.file}
			}
		}
	}()

	file = &ast.File{Name: p.file, Loc: ast.Loc{File: p.file, Line: 1, Col: 1}}

	if p.curIs(lexer.LPAREN) && p.peekIs(lexer.SYMBOL) && p.peekToken.Literal == "ns" {
		file.NS = p.parseNSDecl()
	}

	for p.curIs(lexer.LPAREN) && p.peekIs(lexer.SYMBOL) && p.peekToken.Literal == "import" {
		file.Imports = append(file.Imports, p.parseImportDecl())
	}

	for !p.curIs(lexer.EOF) {
		if !p.curIs(lexer.LPAREN) {
			p.errors = append(p.errors, newError("E200", p.curLoc(),
				"expected top-level form, got %s %q", p.curToken.Type, p.curToken.Literal))
			p.nextToken()
			continue
		}

		head := p.peekToken.Literal
		switch {
		case p.peekIs(lexer.SYMBOL) && head == "defn":
			file.Decls = append(file.Decls, p.parseDefnDecl())
		case p.peekIs(lexer.SYMBOL) && head == "deftype":
			file.Decls = append(file.Decls, p.parseDeftypeDecl())
		case p.peekIs(lexer.SYMBOL) && head == "defclass":
			file.Decls = append(file.Decls, p.parseDefclassDecl())
		case p.peekIs(lexer.SYMBOL) && head == "instance":
			file.Decls = append(file.Decls, p.parseInstanceDecl())
		case p.peekIs(lexer.SYMBOL) && head == "process":
			file.Decls = append(file.Decls, p.parseProcessDecl())
		default:
			// Not a known declaration head: parse it as the file's eval
			// expression. Only the last such top-level expression survives.
			file.Eval = p.parseExpr()
		}
	}

	return file
}

func (p *Parser) parseNSDecl() *ast.NSDecl {
	loc := p.curLoc()
	p.expect(lexer.LPAREN)
	p.expectSymbol("ns")
	name := p.expect(lexer.SYMBOL).Literal
	p.expect(lexer.RPAREN)
	return &ast.NSDecl{Name: name, Loc: loc}
}

func (p *Parser) parseImportDecl() *ast.ImportDecl {
	loc := p.curLoc()
	p.expect(lexer.LPAREN)
	p.expectSymbol("import")
	module := p.expect(lexer.SYMBOL).Literal
	imp := &ast.ImportDecl{Module: module, Loc: loc}
	for p.curIs(lexer.KEYWORD) && p.curToken.Literal == "as" {
		p.nextToken()
		imp.Alias = p.expect(lexer.SYMBOL).Literal
	}
	p.expect(lexer.RPAREN)
	return imp
}

// parseDefnDecl parses (defn name [params...] body)
func (p *Parser) parseDefnDecl() *ast.DefnDecl {
	loc := p.curLoc()
	p.expect(lexer.LPAREN)
	p.expectSymbol("defn")
	name := p.expect(lexer.SYMBOL).Literal

	p.expect(lexer.LBRACK)
	var params []string
	for !p.curIs(lexer.RBRACK) && !p.curIs(lexer.EOF) {
		params = append(params, p.expect(lexer.SYMBOL).Literal)
	}
	p.expect(lexer.RBRACK)

	body := p.parseExpr()
	p.expect(lexer.RPAREN)

	return &ast.DefnDecl{Name: name, Params: params, Body: body, Loc: loc}
}

// parseDeftypeDecl parses
//
//	(deftype Name
//	  [Ctor1 field1 field2]
//	  [Point [x Int] [y Int]]
//	  [Ctor2]
//	  deriving [Eq Show])
//
// A bare field is positional (sum-type style); a `[name Type]` field is
// labeled (record style). A constructor may not mix the two.
func (p *Parser) parseDeftypeDecl() *ast.DeftypeDecl {
	loc := p.curLoc()
	p.expect(lexer.LPAREN)
	p.expectSymbol("deftype")
	name := p.expect(lexer.SYMBOL).Literal

	decl := &ast.DeftypeDecl{Name: name, Loc: loc}

	for p.curIs(lexer.LBRACK) {
		ctorLoc := p.curLoc()
		p.expect(lexer.LBRACK)
		ctorName := p.expect(lexer.SYMBOL).Literal
		var fields []*ast.FieldDecl
		for !p.curIs(lexer.RBRACK) && !p.curIs(lexer.EOF) {
			fields = append(fields, p.parseCtorField())
		}
		p.expect(lexer.RBRACK)
		decl.Ctors = append(decl.Ctors, &ast.CtorDecl{Name: ctorName, Fields: fields, Loc: ctorLoc})
	}

	if p.curIsSymbol("deriving") {
		p.nextToken()
		p.expect(lexer.LBRACK)
		for !p.curIs(lexer.RBRACK) && !p.curIs(lexer.EOF) {
			decl.Deriving = append(decl.Deriving, p.expect(lexer.SYMBOL).Literal)
		}
		p.expect(lexer.RBRACK)
	}

	p.expect(lexer.RPAREN)
	return decl
}

// parseCtorField parses one constructor field: a bare symbol naming a
// type (positional) or a bracketed `[name Type]` pair (labeled).
func (p *Parser) parseCtorField() *ast.FieldDecl {
	if p.curIs(lexer.LBRACK) {
		loc := p.curLoc()
		p.expect(lexer.LBRACK)
		label := p.expect(lexer.SYMBOL).Literal
		typeLoc := p.curLoc()
		typeName := p.expect(lexer.SYMBOL).Literal
		p.expect(lexer.RBRACK)
		return &ast.FieldDecl{Label: label, Type: &ast.TypeRef{Name: typeName, Loc: typeLoc}, Loc: loc}
	}
	loc := p.curLoc()
	typeName := p.expect(lexer.SYMBOL).Literal
	return &ast.FieldDecl{Type: &ast.TypeRef{Name: typeName, Loc: loc}, Loc: loc}
}

// parseDefclassDecl parses (defclass Name a [method sigs...])
// Each method sig is either (name arity) or (name [params...] body) for a
// default implementation.
func (p *Parser) parseDefclassDecl() *ast.DefclassDecl {
	loc := p.curLoc()
	p.expect(lexer.LPAREN)
	p.expectSymbol("defclass")
	name := p.expect(lexer.SYMBOL).Literal
	tyVar := p.expect(lexer.SYMBOL).Literal

	decl := &ast.DefclassDecl{Name: name, TyVar: tyVar, Loc: loc}

	p.expect(lexer.LBRACK)
	for !p.curIs(lexer.RBRACK) && !p.curIs(lexer.EOF) {
		decl.Methods = append(decl.Methods, p.parseMethodSig())
	}
	p.expect(lexer.RBRACK)

	p.expect(lexer.RPAREN)
	return decl
}

func (p *Parser) parseMethodSig() *ast.MethodSig {
	loc := p.curLoc()
	p.expect(lexer.LPAREN)
	name := p.expect(lexer.SYMBOL).Literal

	if p.curIs(lexer.INT) {
		arity, _ := strconv.Atoi(p.curToken.Literal)
		p.nextToken()
		p.expect(lexer.RPAREN)
		return &ast.MethodSig{Name: name, Arity: arity, Loc: loc}
	}

	// Default implementation: (name [params...] body)
	p.expect(lexer.LBRACK)
	var params []string
	for !p.curIs(lexer.RBRACK) && !p.curIs(lexer.EOF) {
		params = append(params, p.expect(lexer.SYMBOL).Literal)
	}
	p.expect(lexer.RBRACK)
	body := p.parseExpr()
	p.expect(lexer.RPAREN)

	return &ast.MethodSig{
		Name:    name,
		Arity:   len(params),
		Default: &ast.Fn{Params: params, Body: body, Loc: loc},
		Loc:     loc,
	}
}

// parseInstanceDecl parses
//
//	(instance Class Head
//	  (constraints [(Class2 param) ...])
//	  where
//	  [(method [params...] body) ...])
func (p *Parser) parseInstanceDecl() *ast.InstanceDecl {
	loc := p.curLoc()
	p.expect(lexer.LPAREN)
	p.expectSymbol("instance")
	class := p.expect(lexer.SYMBOL).Literal
	head := p.expect(lexer.SYMBOL).Literal

	decl := &ast.InstanceDecl{Class: class, Head: head, Loc: loc}

	for p.curIs(lexer.SYMBOL) {
		decl.HeadArgs = append(decl.HeadArgs, p.expect(lexer.SYMBOL).Literal)
	}

	if p.curIs(lexer.LPAREN) && p.peekIs(lexer.SYMBOL) && p.peekToken.Literal == "constraints" {
		p.expect(lexer.LPAREN)
		p.expectSymbol("constraints")
		p.expect(lexer.LBRACK)
		for p.curIs(lexer.LPAREN) {
			p.expect(lexer.LPAREN)
			cClass := p.expect(lexer.SYMBOL).Literal
			cParam := p.expect(lexer.SYMBOL).Literal
			p.expect(lexer.RPAREN)
			decl.Constraints = append(decl.Constraints, ast.ClassConstraintRef{Class: cClass, Param: cParam})
		}
		p.expect(lexer.RBRACK)
		p.expect(lexer.RPAREN)
	}

	p.expectSymbol("where")
	p.expect(lexer.LBRACK)
	for p.curIs(lexer.LPAREN) {
		decl.Methods = append(decl.Methods, p.parseMethodImpl())
	}
	p.expect(lexer.RBRACK)

	p.expect(lexer.RPAREN)
	return decl
}

func (p *Parser) parseMethodImpl() *ast.MethodImpl {
	p.expect(lexer.LPAREN)
	name := p.expect(lexer.SYMBOL).Literal
	p.expect(lexer.LBRACK)
	var params []string
	for !p.curIs(lexer.RBRACK) && !p.curIs(lexer.EOF) {
		params = append(params, p.expect(lexer.SYMBOL).Literal)
	}
	p.expect(lexer.RBRACK)
	body := p.parseExpr()
	p.expect(lexer.RPAREN)
	return &ast.MethodImpl{Name: name, Params: params, Body: body}
}

// parseProcessDecl parses
//
//	(process Name
//	  (init expr)
//	  (handlers
//	    [:tag (param) body]
//	    ...))
func (p *Parser) parseProcessDecl() *ast.ProcessDecl {
	loc := p.curLoc()
	p.expect(lexer.LPAREN)
	p.expectSymbol("process")
	name := p.expect(lexer.SYMBOL).Literal

	decl := &ast.ProcessDecl{Name: name, Loc: loc}

	if p.curIs(lexer.LPAREN) && p.peekIs(lexer.SYMBOL) && p.peekToken.Literal == "init" {
		p.expect(lexer.LPAREN)
		p.expectSymbol("init")
		decl.Init = p.parseExpr()
		p.expect(lexer.RPAREN)
	}

	if p.curIs(lexer.LPAREN) && p.peekIs(lexer.SYMBOL) && p.peekToken.Literal == "handlers" {
		p.expect(lexer.LPAREN)
		p.expectSymbol("handlers")
		for p.curIs(lexer.LBRACK) {
			p.expect(lexer.LBRACK)
			tag := p.expect(lexer.KEYWORD).Literal
			p.expect(lexer.LPAREN)
			param := p.expect(lexer.SYMBOL).Literal
			p.expect(lexer.RPAREN)
			body := p.parseExpr()
			p.expect(lexer.RBRACK)
			decl.Handlers = append(decl.Handlers, ast.ProcessHandler{Tag: tag, Param: param, Body: body})
		}
		p.expect(lexer.RPAREN)
	}

	p.expect(lexer.RPAREN)
	return decl
}
