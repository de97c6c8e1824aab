package cmd

import (
	"io"
	"os"

	"github.com/leonardinius/golox-expr/internal/interpreter"
	"github.com/leonardinius/golox-expr/internal/loxerrors"
)

// LineReader is the source of REPL input lines. Readline returns io.EOF once
// the input is exhausted.
type LineReader interface {
	Readline() (string, error)
	Close() error
}

type appOpts struct {
	stdout     io.Writer
	stderr     io.Writer
	reporter   loxerrors.ErrReporter
	lineReader func(prompt string) (LineReader, error)
	interp     interpreter.Interpreter
}

var defaultAppOpts = appOpts{
	stdout:     os.Stdout,
	stderr:     os.Stderr,
	lineReader: newReadline,
}

type AppOption func(*appOpts)

func WithStdout(stdout io.Writer) AppOption {
	return func(opts *appOpts) {
		opts.stdout = stdout
	}
}

func WithStderr(stderr io.Writer) AppOption {
	return func(opts *appOpts) {
		opts.stderr = stderr
	}
}

func WithErrorReporter(r loxerrors.ErrReporter) AppOption {
	return func(opts *appOpts) {
		opts.reporter = r
	}
}

// WithLineReader replaces the interactive readline prompt.
func WithLineReader(r LineReader) AppOption {
	return func(opts *appOpts) {
		opts.lineReader = func(string) (LineReader, error) { return r, nil }
	}
}

func WithInterpreter(i interpreter.Interpreter) AppOption {
	return func(opts *appOpts) {
		opts.interp = i
	}
}

func newAppOpts(options ...AppOption) *appOpts {
	opts := defaultAppOpts
	for _, opt := range options {
		opt(&opts)
	}

	if opts.reporter == nil {
		opts.reporter = loxerrors.NewErrReporter(opts.stderr)
	}
	if opts.interp == nil {
		opts.interp = interpreter.NewInterpreter()
	}

	return &opts
}
