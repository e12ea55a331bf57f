package core_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/rgwbasic/gwbasic/internal/console"
	"github.com/rgwbasic/gwbasic/internal/core"
	"github.com/rgwbasic/gwbasic/internal/miniparser"
)

// runProgram loads source through the real tokenizer/parser and the real
// terminal console (backed by in-memory buffers), then runs it to
// completion, returning everything the program printed.
func runProgram(t *testing.T, input string, source ...string) string {
	t.Helper()
	var out bytes.Buffer
	term := console.New(&out, strings.NewReader(input), false)
	parser := miniparser.New()
	program := core.NewProgram()
	for _, line := range source {
		parsed := parser.ParseProgramLine(line)
		if parsed.Outcome == core.ParseError {
			t.Fatalf("parse error on %q: %s", line, parsed.Err)
		}
		if parsed.Outcome == core.ParseSuccess {
			program.AddLine(parsed.Line)
		}
	}
	ctx := core.NewContext(program, term)
	ctx.Parser = parser
	if err := core.RunSync(ctx); err != nil {
		t.Fatalf("unexpected run error: %v", err)
	}
	return out.String()
}

func TestScenarioFahrenheitToCelsiusLoop(t *testing.T) {
	got := runProgram(t, "",
		`10 FOR F = 32 TO 212 STEP 180`,
		`20 C = (F - 32) * 5 / 9`,
		`30 PRINT F; C`,
		`40 NEXT F`,
		`50 END`,
	)
	snaps.MatchSnapshot(t, "fahrenheit_loop_output", got)
}

func TestScenarioGosubAccumulator(t *testing.T) {
	got := runProgram(t, "",
		`10 TOTAL = 0`,
		`20 FOR I = 1 TO 3`,
		`30 GOSUB 100`,
		`40 NEXT I`,
		`50 PRINT TOTAL`,
		`60 END`,
		`100 TOTAL = TOTAL + I`,
		`110 RETURN`,
	)
	snaps.MatchSnapshot(t, "gosub_accumulator_output", got)
}

func TestScenarioWhileWendCountdown(t *testing.T) {
	got := runProgram(t, "",
		`10 N = 3`,
		`20 WHILE N > 0`,
		`30 PRINT N`,
		`40 N = N - 1`,
		`50 WEND`,
		`60 END`,
	)
	snaps.MatchSnapshot(t, "while_countdown_output", got)
}

func TestScenarioReadDataIntoArray(t *testing.T) {
	got := runProgram(t, "",
		`10 DIM A(3)`,
		`20 FOR I = 1 TO 3`,
		`30 READ A(I)`,
		`40 NEXT I`,
		`50 FOR I = 1 TO 3`,
		`60 PRINT A(I)`,
		`70 NEXT I`,
		`80 END`,
		`90 DATA 10, 20, 30`,
	)
	snaps.MatchSnapshot(t, "read_data_array_output", got)
}

func TestScenarioPrintUsingCurrency(t *testing.T) {
	got := runProgram(t, "",
		`10 AMOUNT = 27749.479`,
		`20 PRINT USING "$###,###,###.##"; AMOUNT`,
		`30 END`,
	)
	snaps.MatchSnapshot(t, "print_using_currency_output", got)
}

func TestScenarioInputDrivenGreeting(t *testing.T) {
	got := runProgram(t, "WORLD\n",
		`10 INPUT "Name"; N$`,
		`20 PRINT "HELLO "; N$`,
		`30 END`,
	)
	snaps.MatchSnapshot(t, "input_greeting_output", got)
}

func TestScenarioOnGotoComputedDispatch(t *testing.T) {
	got := runProgram(t, "",
		`10 FOR CHOICE = 1 TO 3`,
		`20 ON CHOICE GOTO 100, 200, 300`,
		`90 GOTO 400`,
		`100 PRINT "ONE" : GOTO 400`,
		`200 PRINT "TWO" : GOTO 400`,
		`300 PRINT "THREE" : GOTO 400`,
		`400 NEXT CHOICE`,
		`410 END`,
	)
	snaps.MatchSnapshot(t, "on_goto_dispatch_output", got)
}
