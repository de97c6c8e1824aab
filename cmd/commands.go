package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0"
	GitCommit = "development"
)

func (app *LoxApp) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "golox-expr [script]",
		Short: "Evaluate Lox expressions",
		Long: `golox-expr scans, parses and evaluates a single Lox expression.

Without a script it starts an interactive prompt, one expression per line.

A script named like a subcommand ("tokens", "version") runs that command;
pass it with a path instead, e.g. golox-expr ./version.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errUsage
			}
			return nil
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			switch app.printMode {
			case PrintValue, PrintAST, PrintRPN:
				return nil
			}
			return fmt.Errorf("%w: unknown --print mode %q", errUsage, app.printMode)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return app.runFile(args[0])
			}
			return app.runPrompt()
		},
	}
	root.SetOut(app.stdout)
	root.SetErr(app.stderr)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", errUsage, err)
	})

	root.Flags().StringVar(&app.printMode, "print", PrintValue, "output: value, ast (prefix tree) or rpn")
	root.Flags().BoolVarP(&app.verbose, "verbose", "v", false, "dump tokens and tree to stderr")

	root.AddCommand(app.tokensCommand(), app.versionCommand())
	return root
}

func (app *LoxApp) tokensCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <script>",
		Short: "Print the tokens of a script, one per line",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("%w: tokens takes exactly one script", errUsage)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.printTokens(args[0])
		},
	}
}

func (app *LoxApp) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(app.stdout, "golox-expr v%s\n", Version)
			fmt.Fprintf(app.stdout, "  Git Commit: %s\n", GitCommit)
			fmt.Fprintf(app.stdout, "  Go Version: %s\n", runtime.Version())
		},
	}
}
