package loxerrors

import (
	"errors"
	"fmt"

	"github.com/leonardinius/golox-expr/internal/token"
)

var (
	ErrParseExpectedRightParenToken = errors.New("Expect ')' after expression.")
	ErrParseExpectedEndOfExpression = errors.New("Expect end of expression.")
)

// ErrParseUnexpectedToken reports a token no primary expression can start with.
func ErrParseUnexpectedToken(lexeme string) error {
	return fmt.Errorf("Unexpected token '%s'.", lexeme)
}

func NewParseError(tok *token.Token, cause error) error {
	return &ParserError{tok: tok, cause: cause}
}

// ParserError is a syntax error attached to the offending token.
type ParserError struct {
	tok   *token.Token
	cause error
}

// Token returns the offending token.
func (p *ParserError) Token() *token.Token {
	return p.tok
}

// Line returns the line of the offending token.
func (p *ParserError) Line() int {
	return p.tok.Line
}

// Error implements error.
func (p *ParserError) Error() string {
	where := "at end"
	if p.tok.Type != token.EOF {
		where = fmt.Sprintf("at '%s'", p.tok.Lexeme)
	}
	return fmt.Sprintf("[line %d] Error %s: %v", p.tok.Line, where, p.cause)
}

func (p *ParserError) Unwrap() error {
	return p.cause
}

var _ error = (*ParserError)(nil)
var _ unwrapInterface = (*ParserError)(nil)
