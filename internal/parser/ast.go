package parser

import (
	"fmt"

	"github.com/leonardinius/golox-expr/internal/token"
)

// Visitor is the interface that wraps the Visit methods.
//
// There is one method per expression variant; Accept calls the one matching
// the node.
type Visitor[R any] interface {
	VisitBinary(expr *Binary) (R, error)
	VisitGrouping(expr *Grouping) (R, error)
	VisitLiteral(expr *Literal) (R, error)
	VisitUnary(expr *Unary) (R, error)
}

// Expr is an expression node. The set of implementations is closed:
// Binary, Grouping, Literal and Unary.
type Expr interface {
	expr()
}

type Binary struct {
	Left     Expr
	Operator *token.Token
	Right    Expr
}

type Grouping struct {
	Expression Expr
}

type Literal struct {
	Value Value
}

type Unary struct {
	Operator *token.Token
	Right    Expr
}

func (*Binary) expr()   {}
func (*Grouping) expr() {}
func (*Literal) expr()  {}
func (*Unary) expr()    {}

// Accept dispatches expr to the visitor method of its variant.
func Accept[R any](expr Expr, v Visitor[R]) (R, error) {
	switch e := expr.(type) {
	case *Binary:
		return v.VisitBinary(e)
	case *Grouping:
		return v.VisitGrouping(e)
	case *Literal:
		return v.VisitLiteral(e)
	case *Unary:
		return v.VisitUnary(e)
	}
	panic(fmt.Sprintf("unreachable: unknown expression %T", expr))
}

// Depth returns the number of operator and group levels above the deepest
// literal. A lone literal has depth 0.
func Depth(expr Expr) int {
	switch e := expr.(type) {
	case *Binary:
		return 1 + max(Depth(e.Left), Depth(e.Right))
	case *Grouping:
		return 1 + Depth(e.Expression)
	case *Literal:
		return 0
	case *Unary:
		return 1 + Depth(e.Right)
	}
	panic(fmt.Sprintf("unreachable: unknown expression %T", expr))
}

var (
	_ Expr = (*Binary)(nil)
	_ Expr = (*Grouping)(nil)
	_ Expr = (*Literal)(nil)
	_ Expr = (*Unary)(nil)
)
