package parser

import (
	"strings"

	"github.com/leonardinius/golox-expr/internal/token"
)

// RPNPrinter renders an expression in reverse Polish notation,
// e.g. "(1 + 2) * -3" becomes "1 2 + 3 ~ *".
type RPNPrinter struct{}

func NewRPNPrinter() *RPNPrinter {
	return &RPNPrinter{}
}

// VisitBinary implements Visitor.
func (p *RPNPrinter) VisitBinary(expr *Binary) (string, error) {
	return p.reverse(expr.Operator.Lexeme, expr.Left, expr.Right), nil
}

// VisitGrouping implements Visitor.
func (p *RPNPrinter) VisitGrouping(expr *Grouping) (string, error) {
	return p.reverse("", expr.Expression), nil
}

// VisitLiteral implements Visitor.
func (p *RPNPrinter) VisitLiteral(expr *Literal) (string, error) {
	if expr.Value == nil {
		return NilValue.String(), nil
	}
	return expr.Value.String(), nil
}

// VisitUnary implements Visitor.
func (p *RPNPrinter) VisitUnary(expr *Unary) (string, error) {
	operator := expr.Operator.Lexeme
	if expr.Operator.Type == token.MINUS {
		operator = "~"
	}
	return p.reverse(operator, expr.Right), nil
}

func (p *RPNPrinter) reverse(name string, exprs ...Expr) string {
	out := new(strings.Builder)
	for _, expr := range exprs {
		_, _ = out.WriteString(p.Print(expr))
		_, _ = out.WriteString(" ")
	}
	_, _ = out.WriteString(name)
	v := out.String()
	return strings.TrimSuffix(v, " ")
}

func (p *RPNPrinter) Print(expr Expr) string {
	s, _ := Accept[string](expr, p)
	return s
}

var _ Visitor[string] = (*RPNPrinter)(nil)
