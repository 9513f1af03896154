package ast

import "github.com/woclang/woc/woc/token"

type (
	// A Program is the list of top level statements in a source file, in
	// source order.
	Program struct {
		Stmts []Stmt
	}

	Node interface {
		Pos() token.Pos // Position of first token in node segment
		End() token.Pos // Position of last token in node segment

		// Accept a visitor to inspect this node. Must call the appropriate
		// visit method on the visitor for this node.
		Accept(v Visitor)
	}

	// Expressions produce a value. The set of expressions is closed: only
	// types in this package implement Expr.
	Expr interface {
		Node
		exprNode()
	}

	// Statements produce an effect and optionally a value. The set of
	// statements is closed: only types in this package implement Stmt.
	Stmt interface {
		Node
		stmtNode()
	}

	// ElseBranch is the alternative of an if expression: either a *Block or
	// a nested *If for else-if chains.
	ElseBranch interface {
		Node
		elseNode()
	}
)

func (p *Program) Walk(v Visitor) {
	for _, stmt := range p.Stmts {
		stmt.Accept(v)
	}
}

type (
	// Single token identifier.
	Ident struct {
		T    token.Token
		Name string
	}

	IntegerLit struct {
		T     token.Token
		Value int64
	}

	FloatLit struct {
		T     token.Token
		Value float64
	}

	// true or false.
	BoolLit struct {
		T     token.Token
		Value bool
	}

	StringLit struct {
		T     token.Token
		Value string // Unquoted, escapes kept verbatim
	}

	// Unary operator expression, eg. "!ok" or "-(a + b)".
	Prefix struct {
		Op    token.Token
		Right Expr
	}

	// Binary operator expression.
	Infix struct {
		Left  Expr
		Op    token.Token
		Right Expr
	}

	If struct {
		If   token.Token
		Cond Expr
		Then *Block
		Else ElseBranch // Is nil when there is no else branch
	}

	Call struct {
		Callee Expr
		LParen token.Token
		Args   []Expr
		RParen token.Token
	}
)

type (
	Let struct {
		Let   token.Token
		Name  *Ident
		Value Expr
	}

	Return struct {
		Ret token.Token
		E   Expr // Is nil when no return value is specified
	}

	Block struct {
		Empty  bool // If the Stmts list is empty
		LBrace token.Token
		Stmts  []Stmt
		RBrace token.Token
	}

	// A bare expression used as a statement.
	ExprStmt struct {
		E Expr
	}
)

func (*Ident) exprNode()      {}
func (*IntegerLit) exprNode() {}
func (*FloatLit) exprNode()   {}
func (*BoolLit) exprNode()    {}
func (*StringLit) exprNode()  {}
func (*Prefix) exprNode()     {}
func (*Infix) exprNode()      {}
func (*If) exprNode()         {}
func (*Call) exprNode()       {}

func (*Let) stmtNode()      {}
func (*Return) stmtNode()   {}
func (*Block) stmtNode()    {}
func (*ExprStmt) stmtNode() {}

func (*Block) elseNode() {}
func (*If) elseNode()    {}

func (i *Ident) Pos() token.Pos { return i.T.Pos }
func (i *Ident) End() token.Pos { return i.T.EndPos }

func (l *IntegerLit) Pos() token.Pos { return l.T.Pos }
func (l *IntegerLit) End() token.Pos { return l.T.EndPos }

func (l *FloatLit) Pos() token.Pos { return l.T.Pos }
func (l *FloatLit) End() token.Pos { return l.T.EndPos }

func (l *BoolLit) Pos() token.Pos { return l.T.Pos }
func (l *BoolLit) End() token.Pos { return l.T.EndPos }

func (l *StringLit) Pos() token.Pos { return l.T.Pos }
func (l *StringLit) End() token.Pos { return l.T.EndPos }

func (p *Prefix) Pos() token.Pos { return p.Op.Pos }
func (p *Prefix) End() token.Pos { return p.Right.End() }

func (i *Infix) Pos() token.Pos { return i.Left.Pos() }
func (i *Infix) End() token.Pos { return i.Right.End() }

func (i *If) Pos() token.Pos { return i.If.Pos }
func (i *If) End() token.Pos {
	if i.Else != nil {
		return i.Else.End()
	}
	if i.Then == nil {
		return i.If.EndPos
	}
	return i.Then.End()
}

func (c *Call) Pos() token.Pos { return c.Callee.Pos() }
func (c *Call) End() token.Pos { return c.RParen.EndPos }

func (l *Let) Pos() token.Pos { return l.Let.Pos }
func (l *Let) End() token.Pos { return l.Value.End() }

func (r *Return) Pos() token.Pos { return r.Ret.Pos }
func (r *Return) End() token.Pos {
	if r.E != nil {
		return r.E.End()
	}
	return r.Ret.EndPos
}

func (b *Block) Pos() token.Pos { return b.LBrace.Pos }
func (b *Block) End() token.Pos { return b.RBrace.EndPos }

func (e *ExprStmt) Pos() token.Pos { return e.E.Pos() }
func (e *ExprStmt) End() token.Pos { return e.E.End() }
