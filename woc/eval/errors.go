package eval

import (
	"fmt"

	"github.com/woclang/woc/woc/ast"
	"github.com/woclang/woc/woc/object"
	"github.com/woclang/woc/woc/token"
)

// TypeError is returned when an operator is applied to operands it does not
// support. Left is INVALID for prefix operators.
type TypeError struct {
	Pos   token.Pos
	Op    string
	Left  object.Type
	Right object.Type
}

func (e *TypeError) Error() string {
	if e.Left == object.INVALID {
		return fmt.Sprintf("%s: invalid operation: %s%s", e.Pos, e.Op, e.Right)
	}
	return fmt.Sprintf("%s: invalid operation: %s %s %s", e.Pos, e.Left, e.Op, e.Right)
}

// UnsupportedError is returned for nodes the evaluator cannot execute.
type UnsupportedError struct {
	Node ast.Node
}

func (e *UnsupportedError) Error() string {
	if e.Node == nil {
		return "cannot evaluate nil node"
	}

	var what string
	switch n := e.Node.(type) {
	case *ast.Ident:
		what = fmt.Sprintf("identifier '%s'", n.Name)
	case *ast.Call:
		what = "call expression"
	default:
		what = fmt.Sprintf("node %T", n)
	}

	return fmt.Sprintf("%s: cannot evaluate %s", e.Node.Pos(), what)
}

type DivisionByZeroError struct {
	Pos token.Pos
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("%s: integer division by zero", e.Pos)
}
