package loxerrors

import (
	"errors"
	"fmt"
	"io"
)

type ErrReporter interface {
	ReportPanic(err error)
	ReportError(err error)
}

type errReporter struct {
	w io.Writer
}

func NewErrReporter(w io.Writer) ErrReporter {
	return &errReporter{w: w}
}

// ReportPanic implements ErrReporter.
func (e *errReporter) ReportPanic(err error) {
	DefaultReportPanic(e.w, err)
}

// ReportError implements ErrReporter.
func (e *errReporter) ReportError(err error) {
	DefaultReportError(e.w, err)
}

// DefaultReportPanic is the default implementation of ErrReporter.ReportPanic.
func DefaultReportPanic(w io.Writer, err error) {
	fmt.Fprintf(w, "FATAL %v\n", err)
}

// DefaultReportError is the default implementation of ErrReporter.ReportError.
// The prefix names the pipeline stage that rejected the input.
func DefaultReportError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", Kind(err), err)
}

// Kind classifies err by the pipeline stage that produced it.
func Kind(err error) string {
	var (
		scanErr    *ScannerError
		parseErr   *ParserError
		runtimeErr *RuntimeError
	)
	switch {
	case errors.As(err, &scanErr):
		return "LEXICAL"
	case errors.As(err, &parseErr):
		return "SYNTAX"
	case errors.As(err, &runtimeErr):
		return "RUNTIME"
	}
	return "ERROR"
}

var _ ErrReporter = (*errReporter)(nil)
