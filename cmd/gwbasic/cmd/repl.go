package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rgwbasic/gwbasic/internal/ast"
	"github.com/rgwbasic/gwbasic/internal/console"
	"github.com/rgwbasic/gwbasic/internal/core"
	"github.com/rgwbasic/gwbasic/internal/miniparser"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive line-dispatch shell",
	Long: `Read one line at a time: a line starting with a number is stored
into the program (replacing any existing line with that label); any
other line is parsed and executed immediately, the way direct-mode
input is dispatched in the original console (§6).`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(_ *cobra.Command, _ []string) error {
	term := console.NewStdio(verbose)
	parser := miniparser.New()
	program := core.NewProgram()
	ctx := core.NewContext(program, term)
	ctx.Parser = parser

	stdin := bufio.NewScanner(os.Stdin)
	for {
		term.Print("] ")
		if !stdin.Scan() {
			return nil
		}
		text := stdin.Text()
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			continue
		}

		if c := trimmed[0]; c >= '0' && c <= '9' {
			dispatchLine(term, parser, program, text)
			continue
		}
		dispatchImmediate(ctx, parser, text)
	}
}

func dispatchLine(term *console.Terminal, parser miniparser.Parser, program *core.Program, text string) {
	parsed := parser.ParseProgramLine(text)
	switch parsed.Outcome {
	case core.ParseSuccess:
		program.AddLine(parsed.Line)
	case core.ParseError:
		term.PrintLine("Syntax error: " + parsed.Err)
	case core.ParseNothing:
	}
}

// dispatchImmediate parses and runs one direct-mode statement.
// RUN re-executes the stored program to completion; everything else
// runs as a single untracked instruction against the shared context
// (§6: immediate-mode statements share the program's variables).
func dispatchImmediate(ctx *core.Context, parser miniparser.Parser, text string) {
	parsed := parser.ParseImmediate(text)
	switch parsed.Outcome {
	case core.ParseError:
		ctx.Console.PrintLine("Syntax error: " + parsed.Err)
		return
	case core.ParseNothing:
		return
	}

	switch parsed.Instruction.(type) {
	case ast.RunStmt:
		ctx.Program.Flatten()
		ctx.Reset()
		if err := core.RunSync(ctx); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		return
	case ast.ListStmt:
		for _, line := range ctx.Program.List() {
			ctx.Console.PrintLine(line)
		}
		return
	case ast.SystemStmt:
		ctx.Console.ExitProgram()
		return
	}

	ephemeral := core.NewProgram()
	ephemeral.AddLine(core.ProgramLine{Label: 0, Primary: parsed.Instruction})
	ephemeral.Flatten()
	saved := ctx.Program
	ctx.Program = ephemeral
	ctx.CurrentLine = 0
	if err := core.RunSync(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	ctx.Program = saved
}
