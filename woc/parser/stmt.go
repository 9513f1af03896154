package parser

import (
	"github.com/woclang/woc/woc/ast"
	"github.com/woclang/woc/woc/token"
)

func (p *Parser) parseStmt() ast.Stmt {
	if p.panicMode {
		return nil
	}

	switch p.cur().Type {
	case token.LET:
		return p.parseLet()
	case token.RETURN:
		return p.parseReturn()
	case token.LBRACE:
		return p.parseBlock()
	case token.IF:
		return p.parseIfStmt()

	default:
		return p.parseExprStmt()
	}
}

// endStmt consumes the semicolon ending a statement. It may be left out
// before a closing brace or the end of input.
func (p *Parser) endStmt() {
	if p.panicMode {
		return
	}

	if p.match(token.SEMI) {
		p.next()
		return
	}

	if !p.matchMany(token.RBRACE, token.EOF) {
		p.errExpected(describeType(token.SEMI))
	}
}

func (p *Parser) parseLet() *ast.Let {
	let := p.consume() // Let keyword is guaranteed

	name := p.expect(token.IDENT)
	p.expect(token.EQ)
	value := p.parseExpr(LOWEST)
	p.endStmt()

	if p.panicMode {
		return nil
	}

	return &ast.Let{
		Let: let,
		Name: &ast.Ident{
			T:    name,
			Name: name.Lexeme,
		},
		Value: value,
	}
}

func (p *Parser) parseReturn() *ast.Return {
	ret := p.consume() // Return keyword is guaranteed

	if p.matchMany(token.SEMI, token.RBRACE, token.EOF) {
		p.endStmt()
		return &ast.Return{
			Ret: ret,
			E:   nil,
		}
	}

	expr := p.parseExpr(LOWEST)
	p.endStmt()

	if p.panicMode {
		return nil
	}

	return &ast.Return{
		Ret: ret,
		E:   expr,
	}
}

func (p *Parser) parseExprStmt() *ast.ExprStmt {
	expr := p.parseExpr(LOWEST)
	p.endStmt()

	if p.panicMode {
		return nil
	}

	return &ast.ExprStmt{
		E: expr,
	}
}

// parseIfStmt parses an if expression in statement position. The statement
// ends at the closing brace, so no operator may follow it and the semicolon
// is optional.
func (p *Parser) parseIfStmt() ast.Stmt {
	expr := p.parseIf()
	if expr == nil {
		return nil
	}

	if p.match(token.SEMI) {
		p.next()
	}

	return &ast.ExprStmt{
		E: expr,
	}
}

// parseBlock parses a braced list of statements. A broken statement inside
// the block is skipped up to the next statement boundary and parsing of the
// block continues.
func (p *Parser) parseBlock() *ast.Block {
	if p.panicMode {
		return nil
	}

	lbrace := p.expect(token.LBRACE)
	if p.panicMode {
		return nil
	}

	stmts := []ast.Stmt{}

	for !p.eof() && !p.match(token.RBRACE) {
		if p.match(token.SEMI) {
			p.next()
			continue
		}

		s := p.parseStmt()
		if p.panicMode {
			p.sync()
			continue
		}

		stmts = append(stmts, s)
	}

	rbrace := p.expect(token.RBRACE)
	if p.panicMode {
		return nil
	}

	return &ast.Block{
		LBrace: lbrace,
		Stmts:  stmts,
		RBrace: rbrace,
		Empty:  len(stmts) == 0,
	}
}
