package parser

import (
	"slices"
	"strconv"
	"strings"

	"github.com/woclang/woc/woc/ast"
	"github.com/woclang/woc/woc/token"
)

// Precedence is the binding power of an operator. Higher binds tighter.
type Precedence int

const (
	LOWEST Precedence = iota
	LOGIC_OR
	LOGIC_AND
	BIT_OR
	BIT_AND
	EQUALITY
	COMPARISON
	SUM
	PRODUCT
	PREFIX
	CALL
)

var precedences = map[token.TokenType]Precedence{
	token.OR_OR:      LOGIC_OR,
	token.AND_AND:    LOGIC_AND,
	token.OR:         BIT_OR,
	token.AND:        BIT_AND,
	token.EQ_EQ:      EQUALITY,
	token.NOT_EQ:     EQUALITY,
	token.LESS:       COMPARISON,
	token.GREATER:    COMPARISON,
	token.LESS_EQ:    COMPARISON,
	token.GREATER_EQ: COMPARISON,
	token.PLUS:       SUM,
	token.MINUS:      SUM,
	token.STAR:       PRODUCT,
	token.SLASH:      PRODUCT,
	token.LPAREN:     CALL,
}

// Tokens not in the table do not continue an expression and get LOWEST.
func precedenceOf(t token.TokenType) Precedence {
	return precedences[t]
}

// parseExpr parses an expression whose operators all bind tighter than prec.
// Operators of equal precedence nest to the left.
func (p *Parser) parseExpr(prec Precedence) ast.Expr {
	if p.panicMode {
		return nil
	}

	left := p.parsePrefix()

	for !p.panicMode {
		p.splitSigned()

		opPrec := precedenceOf(p.cur().Type)
		if opPrec <= prec {
			break
		}

		if p.match(token.LPAREN) {
			left = p.parseCall(left)
		} else {
			left = p.parseInfix(left)
		}
	}

	if p.panicMode {
		return nil
	}
	return left
}

// splitSigned turns a signed number literal in operator position back into
// a minus token followed by the unsigned literal, so that "5 -3" is parsed as
// a subtraction rather than two adjacent literals.
func (p *Parser) splitSigned() {
	t := p.cur()
	if !(t.Type == token.INTEGER || t.Type == token.FLOAT) || !strings.HasPrefix(t.Lexeme, "-") {
		return
	}

	minusEnd := t.Pos
	minusEnd.Col++
	minusEnd.Offset++

	minus := token.Token{
		Type:   token.MINUS,
		Pos:    t.Pos,
		EndPos: minusEnd,
		Lexeme: "-",
		Length: 1,
	}

	lit := t
	lit.Pos = minusEnd
	lit.Lexeme = t.Lexeme[1:]
	lit.Length = t.Length - 1

	p.toks[p.pos] = minus
	p.toks = slices.Insert(p.toks, p.pos+1, lit)
}

func (p *Parser) parsePrefix() ast.Expr {
	switch p.cur().Type {
	case token.IDENT:
		t := p.consume()
		return &ast.Ident{
			T:    t,
			Name: t.Lexeme,
		}

	case token.INTEGER:
		return p.parseInteger()

	case token.FLOAT:
		return p.parseFloat()

	case token.STRING:
		t := p.consume()
		return &ast.StringLit{
			T:     t,
			Value: t.Lexeme,
		}

	case token.TRUE, token.FALSE:
		t := p.consume()
		return &ast.BoolLit{
			T:     t,
			Value: t.Type == token.TRUE,
		}

	case token.LPAREN:
		return p.parseGroup()

	case token.NOT, token.MINUS:
		op := p.consume()
		right := p.parseExpr(PREFIX)
		if p.panicMode {
			return nil
		}
		return &ast.Prefix{
			Op:    op,
			Right: right,
		}

	case token.IF:
		if e := p.parseIf(); e != nil {
			return e
		}
		return nil
	}

	p.errExpected("expression")
	return nil
}

func (p *Parser) parseInteger() ast.Expr {
	t := p.cur()
	n, err := strconv.ParseInt(strings.ReplaceAll(t.Lexeme, "_", ""), 10, 64)
	if err != nil {
		p.report(&Error{Pos: t.Pos, Got: t, Msg: "integer literal out of range: " + t.Lexeme})
		return nil
	}

	p.next()
	return &ast.IntegerLit{
		T:     t,
		Value: n,
	}
}

func (p *Parser) parseFloat() ast.Expr {
	t := p.cur()
	f, err := strconv.ParseFloat(strings.ReplaceAll(t.Lexeme, "_", ""), 64)
	if err != nil {
		p.report(&Error{Pos: t.Pos, Got: t, Msg: "invalid float literal: " + t.Lexeme})
		return nil
	}

	p.next()
	return &ast.FloatLit{
		T:     t,
		Value: f,
	}
}

func (p *Parser) parseGroup() ast.Expr {
	p.next() // Left paren is guaranteed

	e := p.parseExpr(LOWEST)
	p.expect(token.RPAREN)
	if p.panicMode {
		return nil
	}
	return e
}

func (p *Parser) parseInfix(left ast.Expr) ast.Expr {
	op := p.consume()
	right := p.parseExpr(precedenceOf(op.Type))
	if p.panicMode {
		return nil
	}

	return &ast.Infix{
		Left:  left,
		Op:    op,
		Right: right,
	}
}

func (p *Parser) parseCall(callee ast.Expr) ast.Expr {
	lparen := p.consume()
	args := []ast.Expr{}

	for !p.eofOrPanic() && !p.match(token.RPAREN) {
		args = append(args, p.parseExpr(LOWEST))
		if !p.match(token.COMMA) {
			break
		}

		p.next() // Comma
	}

	rparen := p.expect(token.RPAREN)
	if p.panicMode {
		return nil
	}

	return &ast.Call{
		Callee: callee,
		LParen: lparen,
		Args:   args,
		RParen: rparen,
	}
}

// parseIf parses an if expression. An else branch is either a block or
// another if expression, which is how else-if chains are formed.
func (p *Parser) parseIf() *ast.If {
	ifTok := p.consume() // If keyword is guaranteed

	p.expect(token.LPAREN)
	cond := p.parseExpr(LOWEST)
	p.expect(token.RPAREN)
	then := p.parseBlock()
	if p.panicMode {
		return nil
	}

	node := &ast.If{
		If:   ifTok,
		Cond: cond,
		Then: then,
	}

	if !p.match(token.ELSE) {
		return node
	}

	p.next() // Else
	if p.match(token.IF) {
		elseIf := p.parseIf()
		if elseIf == nil {
			return nil
		}
		node.Else = elseIf
	} else {
		block := p.parseBlock()
		if p.panicMode {
			return nil
		}
		node.Else = block
	}

	return node
}
