package loxerrors

import (
	"errors"
	"fmt"
)

var (
	ErrScanUnexpectedCharacter = errors.New("Unexpected character.")
	ErrScanUnterminatedString  = errors.New("Unterminated string.")
)

// ScannerError is a lexical error. It aborts scanning at the first occurrence.
type ScannerError struct {
	line    int
	cause   error
	details string
}

func NewScanError(line int, cause error, details string) error {
	return &ScannerError{line: line, cause: cause, details: details}
}

// Line returns the source line the scanner stopped at.
func (s *ScannerError) Line() int {
	return s.line
}

// Error implements error.
func (s *ScannerError) Error() string {
	details := s.details
	if details != "" {
		details = " " + details
	}
	return fmt.Sprintf("[line %d] Error: %v%s", s.line, s.cause, details)
}

func (s *ScannerError) Unwrap() error {
	return s.cause
}

var _ error = (*ScannerError)(nil)
var _ unwrapInterface = (*ScannerError)(nil)
