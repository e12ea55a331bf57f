package cmd

import (
	"fmt"
	"os"

	"github.com/rgwbasic/gwbasic/internal/console"
	"github.com/rgwbasic/gwbasic/internal/core"
	"github.com/rgwbasic/gwbasic/internal/gwerrors"
	"github.com/rgwbasic/gwbasic/internal/miniparser"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Load and execute a saved BASIC program",
	Long: `Load a program file and run it to completion against a blocking
terminal console (§6, §8 scenarios S1-S6).`,
	Args: cobra.ExactArgs(1),
	RunE: runFile,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runFile(_ *cobra.Command, args []string) error {
	term := console.NewStdio(verbose)

	parser := miniparser.New()
	program := core.NewProgram()

	lines, err := term.ReadFileLines(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	for i, text := range lines {
		parsed := parser.ParseProgramLine(text)
		switch parsed.Outcome {
		case core.ParseSuccess:
			program.AddLine(parsed.Line)
		case core.ParseError:
			parseErr := &gwerrors.ParseError{Line: i + 1, Message: parsed.Err, Source: text}
			fmt.Fprintln(os.Stderr, parseErr.Format())
			return fmt.Errorf("failed to load %s", args[0])
		case core.ParseNothing:
		}
	}

	ctx := core.NewContext(program, term)
	ctx.Parser = parser
	if err := core.RunSync(ctx); err != nil {
		return err
	}
	return nil
}
