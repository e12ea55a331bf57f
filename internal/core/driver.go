// Driver implements the execution driver (§4.5): a synchronous loop and
// a stepped/async loop sharing the same dispatch table and state
// machine.
//
// Grounded on original_source/src/eval/context.rs's GwProgram::eval (the
// synchronous loop) and rgwbasic/src/eval/context.rs's
// eval_fragment_async (the stepped loop with RequestAsyncAction
// suspension).
package core

import (
	"fmt"

	"github.com/rgwbasic/gwbasic/internal/gwerrors"
)

// Driver drives one Context's program execution, either to completion
// (RunSync) or one instruction at a time (Step/Resume).
type Driver struct {
	Ctx        *Context
	pendingArg LineExecutionArgument
	started    bool
}

// NewDriver creates a driver bound to ctx. Its program is flattened the
// first time Step or RunSync is called; the context's variables, arrays
// and other mutable state are left as they are (call Context.Reset for a
// cold start).
func NewDriver(ctx *Context) *Driver {
	return &Driver{Ctx: ctx}
}

// Start flattens the bound program and resets execution to its first
// real line (§4.5: "Sets current real-line index to 0 and arg to
// Empty").
func (d *Driver) Start() {
	d.Ctx.Program.Flatten()
	d.Ctx.CurrentLine = 0
	d.pendingArg = ArgEmptyValue
	d.started = true
}

// Step executes exactly one instruction and returns its result,
// advancing the driver's internal state machine (§4.5 Stepped/async
// run). When the result is RequestAsyncAction, the driver does not
// advance: the host must call Resume with the user's input to re-invoke
// the same instruction.
func (d *Driver) Step() InstructionResult {
	if !d.started {
		d.Start()
	}
	ctx := d.Ctx
	if ctx.CurrentLine < 0 || ctx.CurrentLine >= len(ctx.Program.RealLines) {
		return End()
	}

	stmt := ctx.Program.RealLines[ctx.CurrentLine]
	ctx.Console.Log(fmt.Sprintf("line %d: %s", ctx.CurrentLine, stmt.String()))
	result := EvalStmt(ctx, ctx.CurrentLine, d.pendingArg, stmt)

	switch result.Kind {
	case ResultNext:
		ctx.CurrentLine++
		d.pendingArg = ArgEmptyValue
	case ResultLine:
		ctx.CurrentLine = result.Line
		d.pendingArg = ArgEmptyValue
	case ResultLineWithArg:
		ctx.CurrentLine = result.Line
		d.pendingArg = result.Arg
	case ResultAsync:
		// Current line is left untouched; Resume re-invokes it.
	case ResultEnd, ResultError:
		// Terminal for this driver; CurrentLine is left where it was.
	}
	return result
}

// Resume supplies the host's answer to a pending RequestAsyncAction
// read and re-invokes the same instruction (§4.5, §5).
func (d *Driver) Resume(text string) InstructionResult {
	d.pendingArg = LineExecutionArgument{Kind: ArgSupplyPendingResult, Text: text}
	return d.Step()
}

// RunSync executes the bound program to completion, synchronously
// (§4.5 Synchronous run). A RequestAsyncAction result from any
// instruction is a programmer error (the console in use must report
// RequiresAsyncReadLine() == false for RunSync to be valid).
func RunSync(ctx *Context) error {
	d := NewDriver(ctx)
	d.Start()
	for {
		result := d.Step()
		switch result.Kind {
		case ResultEnd:
			return nil
		case ResultError:
			rtErr := &gwerrors.RuntimeError{Message: result.Message, Label: -1}
			ctx.Console.PrintLine(rtErr.Format())
			return rtErr
		case ResultAsync:
			return fmt.Errorf("RequestAsyncAction is illegal in synchronous run mode")
		}
	}
}
