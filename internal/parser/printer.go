package parser

import (
	"strings"
)

// AstPrinter renders an expression as fully parenthesized prefix notation,
// e.g. "(* (- 123) (group 45.67))".
type AstPrinter struct{}

func NewAstPrinter() *AstPrinter {
	return &AstPrinter{}
}

// VisitBinary implements Visitor.
func (p *AstPrinter) VisitBinary(expr *Binary) (string, error) {
	return p.parenthesize(expr.Operator.Lexeme, expr.Left, expr.Right), nil
}

// VisitGrouping implements Visitor.
func (p *AstPrinter) VisitGrouping(expr *Grouping) (string, error) {
	return p.parenthesize("group", expr.Expression), nil
}

// VisitLiteral implements Visitor.
func (p *AstPrinter) VisitLiteral(expr *Literal) (string, error) {
	if expr.Value == nil {
		return NilValue.String(), nil
	}
	return expr.Value.String(), nil
}

// VisitUnary implements Visitor.
func (p *AstPrinter) VisitUnary(expr *Unary) (string, error) {
	return p.parenthesize(expr.Operator.Lexeme, expr.Right), nil
}

func (p *AstPrinter) parenthesize(name string, exprs ...Expr) string {
	out := new(strings.Builder)
	_, _ = out.WriteString("(")
	_, _ = out.WriteString(name)
	for _, expr := range exprs {
		_, _ = out.WriteString(" ")
		_, _ = out.WriteString(p.Print(expr))
	}
	_, _ = out.WriteString(")")
	return out.String()
}

func (p *AstPrinter) Print(expr Expr) string {
	// printing never fails
	s, _ := Accept[string](expr, p)
	return s
}

var _ Visitor[string] = (*AstPrinter)(nil)
