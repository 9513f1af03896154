package eval

import (
	"github.com/woclang/woc/woc/ast"
	"github.com/woclang/woc/woc/object"
	"github.com/woclang/woc/woc/token"
)

func evalPrefix(node *ast.Prefix, right object.Object) (object.Object, error) {
	switch node.Op.Type {
	case token.NOT:
		return object.NativeBool(!object.Truthy(right)), nil

	case token.MINUS:
		switch r := right.(type) {
		case object.Integer:
			return object.Integer{Value: -r.Value}, nil
		case object.Float:
			return object.Float{Value: -r.Value}, nil
		}
	}

	return nil, &TypeError{
		Pos:   node.Op.Pos,
		Op:    node.Op.Lexeme,
		Right: right.Type(),
	}
}

func (e *Evaluator) evalInfix(node *ast.Infix) (object.Object, error) {
	left, err := e.Eval(node.Left)
	if err != nil || isReturn(left) {
		return left, err
	}

	// The left operand alone decides && and || when it can.
	switch node.Op.Type {
	case token.AND_AND:
		if !object.Truthy(left) {
			return object.FALSE, nil
		}
	case token.OR_OR:
		if object.Truthy(left) {
			return object.TRUE, nil
		}
	}

	right, err := e.Eval(node.Right)
	if err != nil || isReturn(right) {
		return right, err
	}

	switch node.Op.Type {
	case token.AND_AND, token.OR_OR:
		return object.NativeBool(object.Truthy(right)), nil
	case token.EQ_EQ:
		return object.NativeBool(equal(left, right)), nil
	case token.NOT_EQ:
		return object.NativeBool(!equal(left, right)), nil
	}

	l, lok := left.(object.Integer)
	r, rok := right.(object.Integer)
	if lok && rok {
		return integerInfix(node, l.Value, r.Value)
	}

	lf, lok := object.ToFloat(left)
	rf, rok := object.ToFloat(right)
	if lok && rok {
		if v, ok := floatInfix(node.Op.Type, lf, rf); ok {
			return v, nil
		}
	}

	return nil, typeError(node, left, right)
}

func integerInfix(node *ast.Infix, l, r int64) (object.Object, error) {
	switch node.Op.Type {
	case token.PLUS:
		return object.Integer{Value: l + r}, nil
	case token.MINUS:
		return object.Integer{Value: l - r}, nil
	case token.STAR:
		return object.Integer{Value: l * r}, nil
	case token.SLASH:
		if r == 0 {
			return nil, &DivisionByZeroError{Pos: node.Op.Pos}
		}
		return object.Integer{Value: l / r}, nil
	case token.AND:
		return object.Integer{Value: l & r}, nil
	case token.OR:
		return object.Integer{Value: l | r}, nil
	case token.LESS:
		return object.NativeBool(l < r), nil
	case token.GREATER:
		return object.NativeBool(l > r), nil
	case token.LESS_EQ:
		return object.NativeBool(l <= r), nil
	case token.GREATER_EQ:
		return object.NativeBool(l >= r), nil
	}

	return nil, typeError(node, object.Integer{Value: l}, object.Integer{Value: r})
}

// floatInfix applies op to two floats. Integers are widened before getting
// here. Bitwise operators are not defined for floats.
func floatInfix(op token.TokenType, l, r float64) (object.Object, bool) {
	switch op {
	case token.PLUS:
		return object.Float{Value: l + r}, true
	case token.MINUS:
		return object.Float{Value: l - r}, true
	case token.STAR:
		return object.Float{Value: l * r}, true
	case token.SLASH:
		return object.Float{Value: l / r}, true
	case token.LESS:
		return object.NativeBool(l < r), true
	case token.GREATER:
		return object.NativeBool(l > r), true
	case token.LESS_EQ:
		return object.NativeBool(l <= r), true
	case token.GREATER_EQ:
		return object.NativeBool(l >= r), true
	}

	return nil, false
}

// equal compares two values. Numbers compare by value across Integer and
// Float, any other mix of types is never equal.
func equal(left, right object.Object) bool {
	if left.Type() != right.Type() {
		lf, lok := object.ToFloat(left)
		rf, rok := object.ToFloat(right)
		return lok && rok && lf == rf
	}

	return left == right
}

func typeError(node *ast.Infix, left, right object.Object) *TypeError {
	return &TypeError{
		Pos:   node.Op.Pos,
		Op:    node.Op.Lexeme,
		Left:  left.Type(),
		Right: right.Type(),
	}
}
