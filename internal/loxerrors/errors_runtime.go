package loxerrors

import (
	"errors"
	"fmt"

	"github.com/leonardinius/golox-expr/internal/token"
)

var (
	ErrRuntimeOperandMustBeNumber          = errors.New("Operand must be a number.")
	ErrRuntimeOperandsMustBeNumbers        = errors.New("Operands must be numbers.")
	ErrRuntimeOperandsMustNumbersOrStrings = errors.New("Operands must be numbers or strings.")
)

func NewRuntimeError(tok *token.Token, cause error) error {
	return &RuntimeError{tok, cause}
}

// RuntimeError is raised by the interpreter and tagged with the operator token.
type RuntimeError struct {
	tok   *token.Token
	cause error
}

// Token returns the operator the error is attached to.
func (r *RuntimeError) Token() *token.Token {
	return r.tok
}

// Line returns the line of the operator.
func (r *RuntimeError) Line() int {
	return r.tok.Line
}

// Error implements error.
func (r *RuntimeError) Error() string {
	return fmt.Sprintf("%v\n[line %d] at '%s'", r.cause, r.tok.Line, r.tok.Lexeme)
}

func (r *RuntimeError) Unwrap() error {
	return r.cause
}

var _ error = (*RuntimeError)(nil)
var _ unwrapInterface = (*RuntimeError)(nil)
