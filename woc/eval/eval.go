package eval

import (
	"context"

	"github.com/golang/glog"
	"github.com/woclang/woc/woc/ast"
	"github.com/woclang/woc/woc/object"
)

// Binder receives the values of let statements. The evaluator has no
// environment of its own.
type Binder interface {
	Bind(name string, value object.Object)
}

type Option func(*Evaluator)

// WithBinder routes let values to b. Without a binder they are discarded.
func WithBinder(b Binder) Option {
	return func(e *Evaluator) {
		e.binder = b
	}
}

// WithContext makes EvalProgram stop between statements once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(e *Evaluator) {
		e.ctx = ctx
	}
}

type Evaluator struct {
	ctx    context.Context
	binder Binder
}

func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		ctx: context.Background(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Eval evaluates a single node. A value produced by a return statement is
// kept wrapped in object.Return.
func Eval(node ast.Node, opts ...Option) (object.Object, error) {
	return New(opts...).Eval(node)
}

// EvalProgram evaluates all statements in order and returns the value of the
// last one. A top level return ends the program and its value is unwrapped.
// On error the value of the last successful statement is returned along with
// the error.
func EvalProgram(prog *ast.Program, opts ...Option) (object.Object, error) {
	return New(opts...).EvalProgram(prog)
}

func (e *Evaluator) EvalProgram(prog *ast.Program) (object.Object, error) {
	result := object.NULL

	for i, stmt := range prog.Stmts {
		if err := e.ctx.Err(); err != nil {
			return result, err
		}

		v, err := e.Eval(stmt)
		if err != nil {
			glog.V(2).Infof("statement %d failed: %s", i, err)
			return result, err
		}

		if glog.V(2) {
			glog.Infof("statement %d at %s = %s", i, stmt.Pos(), v)
		}

		if r, ok := v.(object.Return); ok {
			return r.Value, nil
		}
		result = v
	}

	return result, nil
}

func (e *Evaluator) Eval(node ast.Node) (object.Object, error) {
	switch node := node.(type) {
	// Statements

	case *ast.ExprStmt:
		return e.Eval(node.E)

	case *ast.Block:
		return e.evalBlock(node)

	case *ast.Return:
		if node.E == nil {
			return object.NewReturn(object.NULL), nil
		}

		v, err := e.Eval(node.E)
		if err != nil {
			return nil, err
		}
		return object.NewReturn(v), nil

	case *ast.Let:
		v, err := e.Eval(node.Value)
		if err != nil || isReturn(v) {
			return v, err
		}

		if e.binder != nil {
			e.binder.Bind(node.Name.Name, v)
		}
		return object.NULL, nil

	// Expressions

	case *ast.IntegerLit:
		return object.Integer{Value: node.Value}, nil

	case *ast.FloatLit:
		return object.Float{Value: node.Value}, nil

	case *ast.BoolLit:
		return object.NativeBool(node.Value), nil

	case *ast.StringLit:
		return object.String{Value: node.Value}, nil

	case *ast.Prefix:
		right, err := e.Eval(node.Right)
		if err != nil || isReturn(right) {
			return right, err
		}
		return evalPrefix(node, right)

	case *ast.Infix:
		return e.evalInfix(node)

	case *ast.If:
		return e.evalIf(node)
	}

	// Identifiers and calls need an environment and functions.
	return nil, &UnsupportedError{Node: node}
}

// evalBlock evaluates statements in order. A return value stops the block
// and is passed on still wrapped so enclosing blocks stop too.
func (e *Evaluator) evalBlock(block *ast.Block) (object.Object, error) {
	if block == nil {
		return nil, &UnsupportedError{}
	}

	result := object.NULL

	for _, stmt := range block.Stmts {
		v, err := e.Eval(stmt)
		if err != nil {
			return nil, err
		}

		if isReturn(v) {
			return v, nil
		}
		result = v
	}

	return result, nil
}

func (e *Evaluator) evalIf(node *ast.If) (object.Object, error) {
	if node.Then == nil {
		return nil, &UnsupportedError{Node: node}
	}

	cond, err := e.Eval(node.Cond)
	if err != nil || isReturn(cond) {
		return cond, err
	}

	if object.Truthy(cond) {
		return e.evalBlock(node.Then)
	}

	switch alt := node.Else.(type) {
	case *ast.Block:
		return e.evalBlock(alt)
	case *ast.If:
		return e.evalIf(alt)
	}

	return object.NULL, nil
}

func isReturn(o object.Object) bool {
	_, ok := o.(object.Return)
	return ok
}
