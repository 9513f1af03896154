package ast

import "strings"

type Visitor interface {
	VisitIdent(node *Ident)
	VisitIntegerLit(node *IntegerLit)
	VisitFloatLit(node *FloatLit)
	VisitBoolLit(node *BoolLit)
	VisitStringLit(node *StringLit)
	VisitPrefix(node *Prefix)
	VisitInfix(node *Infix)
	VisitIf(node *If)
	VisitCall(node *Call)
	VisitLet(node *Let)
	VisitReturn(node *Return)
	VisitBlock(node *Block)
	VisitExprStmt(node *ExprStmt)
}

func (n *Ident) Accept(v Visitor)      { v.VisitIdent(n) }
func (n *IntegerLit) Accept(v Visitor) { v.VisitIntegerLit(n) }
func (n *FloatLit) Accept(v Visitor)   { v.VisitFloatLit(n) }
func (n *BoolLit) Accept(v Visitor)    { v.VisitBoolLit(n) }
func (n *StringLit) Accept(v Visitor)  { v.VisitStringLit(n) }
func (n *Prefix) Accept(v Visitor)     { v.VisitPrefix(n) }
func (n *Infix) Accept(v Visitor)      { v.VisitInfix(n) }
func (n *If) Accept(v Visitor)         { v.VisitIf(n) }
func (n *Call) Accept(v Visitor)       { v.VisitCall(n) }
func (n *Let) Accept(v Visitor)        { v.VisitLet(n) }
func (n *Return) Accept(v Visitor)     { v.VisitReturn(n) }
func (n *Block) Accept(v Visitor)      { v.VisitBlock(n) }
func (n *ExprStmt) Accept(v Visitor)   { v.VisitExprStmt(n) }

// DebugVisitor implements the Visitor interface. It prints out each node as
// it visits it, forming an indented tree of the AST.
type DebugVisitor struct {
	sb     *strings.Builder
	indent int
}

func NewDebugVisitor() *DebugVisitor {
	return &DebugVisitor{
		sb:     &strings.Builder{},
		indent: 0,
	}
}

func (d *DebugVisitor) String() string {
	return d.sb.String()
}

func (d *DebugVisitor) write(s string) {
	d.sb.WriteString(strings.Repeat("  ", d.indent) + s + "\n")
}

// child visits n one indentation level deeper.
func (d *DebugVisitor) child(n Node) {
	d.indent++
	n.Accept(d)
	d.indent--
}

func (d *DebugVisitor) VisitIdent(node *Ident) {
	d.write("ident: " + node.Name)
}

func (d *DebugVisitor) VisitIntegerLit(node *IntegerLit) {
	d.write("integer: " + node.T.Lexeme)
}

func (d *DebugVisitor) VisitFloatLit(node *FloatLit) {
	d.write("float: " + node.T.Lexeme)
}

func (d *DebugVisitor) VisitBoolLit(node *BoolLit) {
	d.write("bool: " + node.T.Lexeme)
}

func (d *DebugVisitor) VisitStringLit(node *StringLit) {
	d.write("string: \"" + node.Value + "\"")
}

func (d *DebugVisitor) VisitPrefix(node *Prefix) {
	d.write("prefix: " + node.Op.Lexeme)
	d.child(node.Right)
}

func (d *DebugVisitor) VisitInfix(node *Infix) {
	d.write("infix: " + node.Op.Lexeme)
	d.child(node.Left)
	d.child(node.Right)
}

func (d *DebugVisitor) VisitIf(node *If) {
	d.write("if:")
	d.child(node.Cond)
	d.child(node.Then)
	if node.Else != nil {
		d.write("else:")
		d.child(node.Else)
	}
}

func (d *DebugVisitor) VisitCall(node *Call) {
	d.write("call:")
	d.child(node.Callee)
	for _, arg := range node.Args {
		d.child(arg)
	}
}

func (d *DebugVisitor) VisitLet(node *Let) {
	d.write("let: " + node.Name.Name)
	d.child(node.Value)
}

func (d *DebugVisitor) VisitReturn(node *Return) {
	d.write("return:")
	if node.E != nil {
		d.child(node.E)
	}
}

func (d *DebugVisitor) VisitBlock(node *Block) {
	d.write("block:")
	d.indent++

	for _, stmt := range node.Stmts {
		stmt.Accept(d)
	}

	d.indent--
}

func (d *DebugVisitor) VisitExprStmt(node *ExprStmt) {
	d.write("expr:")
	d.child(node.E)
}
