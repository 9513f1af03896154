package ast

import (
	"fmt"
	"strings"
)

// printer prints the AST back as source in a canonical form where every
// prefix and infix expression is parenthesised. Used for testing the parser
// (by comparing AST to string) and for debugging.
type printer struct {
	sb *strings.Builder
}

// String returns the canonical source form of n, eg. "1 + 2 * 3;" is printed
// as "(1 + (2 * 3));".
func String(n Node) string {
	p := &printer{sb: &strings.Builder{}}
	n.Accept(p)
	return p.sb.String()
}

// String returns the canonical source form of all statements in the program,
// one per line.
func (p *Program) String() string {
	lines := make([]string, len(p.Stmts))
	for i, stmt := range p.Stmts {
		lines[i] = String(stmt)
	}
	return strings.Join(lines, "\n")
}

func (p *printer) write(f string, args ...any) {
	fmt.Fprintf(p.sb, f, args...)
}

func (p *printer) VisitIdent(node *Ident) {
	p.write("%s", node.Name)
}

func (p *printer) VisitIntegerLit(node *IntegerLit) {
	p.write("%s", node.T.Lexeme)
}

func (p *printer) VisitFloatLit(node *FloatLit) {
	p.write("%s", node.T.Lexeme)
}

func (p *printer) VisitBoolLit(node *BoolLit) {
	p.write("%s", node.T.Lexeme)
}

func (p *printer) VisitStringLit(node *StringLit) {
	p.write("\"%s\"", node.Value)
}

func (p *printer) VisitPrefix(node *Prefix) {
	p.write("(%s", node.Op.Lexeme)
	node.Right.Accept(p)
	p.write(")")
}

func (p *printer) VisitInfix(node *Infix) {
	p.write("(")
	node.Left.Accept(p)
	p.write(" %s ", node.Op.Lexeme)
	node.Right.Accept(p)
	p.write(")")
}

func (p *printer) VisitIf(node *If) {
	p.write("if (")
	node.Cond.Accept(p)
	p.write(") ")
	node.Then.Accept(p)
	if node.Else != nil {
		p.write(" else ")
		node.Else.Accept(p)
	}
}

func (p *printer) VisitCall(node *Call) {
	node.Callee.Accept(p)
	p.write("(")
	for i, arg := range node.Args {
		arg.Accept(p)
		if i < len(node.Args)-1 {
			p.write(", ")
		}
	}
	p.write(")")
}

func (p *printer) VisitLet(node *Let) {
	p.write("let %s = ", node.Name.Name)
	node.Value.Accept(p)
	p.write(";")
}

func (p *printer) VisitReturn(node *Return) {
	p.write("return")
	if node.E != nil {
		p.write(" ")
		node.E.Accept(p)
	}
	p.write(";")
}

func (p *printer) VisitBlock(node *Block) {
	if node.Empty {
		p.write("{}")
		return
	}

	p.write("{ ")
	for _, stmt := range node.Stmts {
		stmt.Accept(p)
		p.write(" ")
	}
	p.write("}")
}

func (p *printer) VisitExprStmt(node *ExprStmt) {
	node.E.Accept(p)
	if _, ok := node.E.(*If); !ok {
		p.write(";")
	}
}
