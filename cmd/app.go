package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kr/pretty"

	"github.com/leonardinius/golox-expr/internal/loxerrors"
	"github.com/leonardinius/golox-expr/internal/parser"
	"github.com/leonardinius/golox-expr/internal/scanner"
	"github.com/leonardinius/golox-expr/internal/token"
)

// Exit codes, following sysexits(3).
const (
	ExitOK       = 0
	ExitUsage    = 64
	ExitDataErr  = 65
	ExitSoftware = 70
	ExitIOErr    = 74
)

const (
	PrintValue = "value"
	PrintAST   = "ast"
	PrintRPN   = "rpn"
)

var errUsage = errors.New("Usage: golox-expr [script]")

type LoxApp struct {
	*appOpts
	err       error
	printMode string
	verbose   bool
}

func NewLoxApp(options ...AppOption) *LoxApp {
	return &LoxApp{appOpts: newAppOpts(options...), printMode: PrintValue}
}

func (app *LoxApp) reportError(err error) {
	app.reporter.ReportError(err)
	app.err = err
}

// Main runs the command line and returns the process exit code.
// A panic escaping the pipeline is reported as fatal and exits with ExitSoftware.
func (app *LoxApp) Main(args []string) (code int) {
	defer func() {
		if r := recover(); r != nil {
			app.reporter.ReportPanic(fmt.Errorf("%v", r))
			code = ExitSoftware
		}
	}()

	root := app.rootCommand()
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		app.reportError(err)
	}

	return exitCode(app.err)
}

func (app *LoxApp) resetError() {
	app.err = nil
}

func (app *LoxApp) runPrompt() error {
	rl, err := app.lineReader("> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "exit") {
			return nil
		}

		err = app.run(line)
		if err != nil {
			app.reportError(err)
			app.resetError()
		}
	}
}

func (app *LoxApp) runFile(scriptPath string) error {
	bytes, err := os.ReadFile(scriptPath)
	if err != nil {
		return err
	}

	return app.run(string(bytes))
}

func (app *LoxApp) run(input string) error {
	s := scanner.NewScanner(input)

	tokens, err := s.Scan()
	if err != nil {
		return err
	}

	if app.verbose {
		app.dumpTokens(tokens)
	}

	p := parser.NewParser(tokens)
	expr, err := p.Parse()
	if err != nil {
		return err
	}

	if app.verbose {
		fmt.Fprintf(app.stderr, "ast: %s\n", parser.NewAstPrinter().Print(expr))
	}

	return app.output(expr)
}

func (app *LoxApp) output(expr parser.Expr) error {
	switch app.printMode {
	case PrintAST:
		fmt.Fprintln(app.stdout, parser.NewAstPrinter().Print(expr))
	case PrintRPN:
		fmt.Fprintln(app.stdout, parser.NewRPNPrinter().Print(expr))
	default:
		return app.interpret(expr)
	}
	return nil
}

func (app *LoxApp) interpret(expr parser.Expr) error {
	if out, err := app.interp.Interpret(expr); err != nil {
		return err
	} else {
		fmt.Fprintln(app.stdout, out)
	}

	return nil
}

func (app *LoxApp) dumpTokens(tokens []token.Token) {
	pretty.Fprintf(app.stderr, "tokens: %# v\n", tokens)
}

func (app *LoxApp) printTokens(scriptPath string) error {
	bytes, err := os.ReadFile(scriptPath)
	if err != nil {
		return err
	}

	tokens, err := scanner.NewScanner(string(bytes)).Scan()
	if err != nil {
		return err
	}

	keywords := scanner.Keywords()
	for _, tok := range tokens {
		if _, ok := keywords[tok.Lexeme]; ok {
			fmt.Fprintf(app.stdout, "%d: %s keyword\n", tok.Line, tok)
			continue
		}
		fmt.Fprintf(app.stdout, "%d: %s\n", tok.Line, tok)
	}
	return nil
}

func exitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var (
		scanErr    *loxerrors.ScannerError
		parseErr   *loxerrors.ParserError
		runtimeErr *loxerrors.RuntimeError
	)
	switch {
	case errors.Is(err, errUsage):
		return ExitUsage
	case errors.As(err, &scanErr), errors.As(err, &parseErr):
		return ExitDataErr
	case errors.As(err, &runtimeErr):
		return ExitSoftware
	}
	return ExitIOErr
}

func newReadline(prompt string) (LineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}
	return rl, nil
}
