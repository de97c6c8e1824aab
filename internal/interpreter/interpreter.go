package interpreter

import (
	"github.com/leonardinius/golox-expr/internal/loxerrors"
	"github.com/leonardinius/golox-expr/internal/parser"
	"github.com/leonardinius/golox-expr/internal/token"
)

type Interpreter interface {
	// Interpret interprets the given expression.
	// Returns the stringified result of the expression and an error if any.
	// The error is nil if the expression is valid.
	Interpret(expr parser.Expr) (string, error)

	// Evaluate evaluates the given expression.
	// Returns the result of the expression and an error if any.
	// The error is a *loxerrors.RuntimeError tagged with the failing operator.
	Evaluate(expr parser.Expr) (Value, error)
}

// interpreter keeps no state between calls, so it is safe for concurrent use
// as long as each caller owns its tree.
type interpreter struct{}

func NewInterpreter() Interpreter {
	return &interpreter{}
}

// Interpret implements Interpreter.
func (i *interpreter) Interpret(expr parser.Expr) (string, error) {
	if value, err := i.Evaluate(expr); err != nil {
		return "", err
	} else {
		return i.stringify(value), nil
	}
}

// Evaluate implements Interpreter.
func (i *interpreter) Evaluate(expr parser.Expr) (Value, error) {
	return i.evaluate(expr)
}

func (i *interpreter) stringify(v Value) string {
	return parser.Stringify(v)
}

// VisitBinary implements parser.Visitor.
func (i *interpreter) VisitBinary(expr *parser.Binary) (Value, error) {
	left, err := i.evaluate(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Type {
	case token.GREATER:
		l, r, err := i.checkNumberOperands(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ValueBool(l > r), nil
	case token.GREATER_EQUAL:
		l, r, err := i.checkNumberOperands(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ValueBool(l >= r), nil
	case token.LESS:
		l, r, err := i.checkNumberOperands(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ValueBool(l < r), nil
	case token.LESS_EQUAL:
		l, r, err := i.checkNumberOperands(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ValueBool(l <= r), nil
	case token.BANG_EQUAL:
		return ValueBool(!isEqual(left, right)), nil
	case token.EQUAL_EQUAL:
		return ValueBool(isEqual(left, right)), nil
	case token.MINUS:
		l, r, err := i.checkNumberOperands(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l - r, nil
	case token.PLUS:
		if l, ok := left.(ValueFloat); ok {
			if r, ok := right.(ValueFloat); ok {
				return l + r, nil
			}
		}
		if l, ok := left.(ValueString); ok {
			if r, ok := right.(ValueString); ok {
				return concat(l, r), nil
			}
		}
		return nil, loxerrors.NewRuntimeError(expr.Operator, loxerrors.ErrRuntimeOperandsMustNumbersOrStrings)
	case token.SLASH:
		l, r, err := i.checkNumberOperands(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l / r, nil
	case token.STAR:
		l, r, err := i.checkNumberOperands(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l * r, nil
	}

	return i.unreachable()
}

// VisitGrouping implements parser.Visitor.
func (i *interpreter) VisitGrouping(expr *parser.Grouping) (Value, error) {
	return i.evaluate(expr.Expression)
}

// VisitLiteral implements parser.Visitor.
func (i *interpreter) VisitLiteral(expr *parser.Literal) (Value, error) {
	if expr.Value == nil {
		return NilValue, nil
	}
	return expr.Value, nil
}

// VisitUnary implements parser.Visitor.
func (i *interpreter) VisitUnary(expr *parser.Unary) (Value, error) {
	right, err := i.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Type {
	case token.MINUS:
		r, err := i.checkNumberOperand(expr.Operator, right)
		if err != nil {
			return nil, err
		}
		return -r, nil
	case token.BANG:
		return ValueBool(!isTruthy(right)), nil
	}

	return i.unreachable()
}

func (i *interpreter) evaluate(expr parser.Expr) (Value, error) {
	return parser.Accept[Value](expr, i)
}

func (i *interpreter) unreachable() (Value, error) {
	panic("unreachable")
}

func (i *interpreter) checkNumberOperands(tok *token.Token, left, right Value) (ValueFloat, ValueFloat, error) {
	l, lok := left.(ValueFloat)
	r, rok := right.(ValueFloat)
	if !lok || !rok {
		return 0, 0, loxerrors.NewRuntimeError(tok, loxerrors.ErrRuntimeOperandsMustBeNumbers)
	}
	return l, r, nil
}

func (i *interpreter) checkNumberOperand(tok *token.Token, val Value) (ValueFloat, error) {
	v, ok := val.(ValueFloat)
	if !ok {
		return 0, loxerrors.NewRuntimeError(tok, loxerrors.ErrRuntimeOperandMustBeNumber)
	}
	return v, nil
}

var _ parser.Visitor[Value] = (*interpreter)(nil)
var _ Interpreter = (*interpreter)(nil)
