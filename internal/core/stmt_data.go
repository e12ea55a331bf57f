// DIM, DEFtype, SWAP, READ, INPUT and LOAD instructions (§4.3).
//
// Grounded on original_source/rgwbasic/src/eval/dim_instr.rs (DIM),
// original_source/rgwbasic/src/eval/def_instr.rs (DEFtype),
// original_source/rgwbasic/src/eval/swap_instr.rs (SWAP),
// original_source/src/eval/data_instr.rs (READ), the GwInputStat found
// in original_source/rgwbasic/src/eval/mod.rs (INPUT), and
// original_source/rgwbasic/src/eval/context.rs's GwProgram::load_from
// (LOAD).
package core

import (
	"strings"

	"github.com/rgwbasic/gwbasic/internal/ast"
	"github.com/rgwbasic/gwbasic/internal/gwerrors"
	"github.com/rgwbasic/gwbasic/internal/values"
)

// evalDim implements DIM name(e1,...) (§4.3): the core supports a
// single dimension, so only the first subscript expression is used as
// the array's size.
func evalDim(ctx *Context, s ast.DimStmt) InstructionResult {
	if len(s.Dims) == 0 {
		return ErrorResult(gwerrors.DimensionsRequired)
	}
	sizeVal, err := EvalExpr(ctx, s.Dims[0])
	if err != nil {
		return ErrorResult(err.Error())
	}
	n, err := values.ToIndex(sizeVal, gwerrors.InvalidDimension)
	if err != nil {
		return ErrorResult(err.Error())
	}
	kind := ctx.creationKind(s.Name)
	ctx.Arrays.Declare(s.Name, kind, n)
	return Next()
}

// evalDefType implements DEFINT/DEFSNG/DEFDBL/DEFSTR (§4.3): each
// letter range sets the default creation type for identifiers
// beginning with those letters, inclusive of both endpoints.
func evalDefType(ctx *Context, s ast.DefTypeStmt) InstructionResult {
	kind, ok := defTypeKind(s.KindName)
	if !ok {
		return ErrorResult(gwerrors.InvalidFunctionCall)
	}
	for _, r := range s.Ranges {
		from, to := r.From, r.To
		if to < from {
			from, to = to, from
		}
		for letter := from; letter <= to; letter++ {
			ctx.SetDefaultType(letter, kind)
		}
	}
	return Next()
}

func defTypeKind(name string) (values.Kind, bool) {
	switch name {
	case "INTEGER":
		return values.Integer, true
	case "SINGLE":
		return values.Single, true
	case "DOUBLE":
		return values.Double, true
	case "STRING":
		return values.String, true
	default:
		return values.Integer, false
	}
}

// evalSwap implements SWAP a,b (§4.3): both sides are evaluated before
// either is written, so a failing second evaluation never leaves the
// first mutated.
func evalSwap(ctx *Context, s ast.SwapStmt) InstructionResult {
	va, err := EvalExpr(ctx, s.A)
	if err != nil {
		return ErrorResult(err.Error())
	}
	vb, err := EvalExpr(ctx, s.B)
	if err != nil {
		return ErrorResult(err.Error())
	}
	if err := AssignTo(ctx, s.A, vb); err != nil {
		return ErrorResult(err.Error())
	}
	if err := AssignTo(ctx, s.B, va); err != nil {
		return ErrorResult(err.Error())
	}
	return Next()
}

// evalRead implements READ target,... (§4.3): each target consumes the
// next data-pool item, converted according to the target's declared
// type (string: as-is; numeric: trimmed and parsed as a double, then
// narrowed).
func evalRead(ctx *Context, s ast.ReadStmt) InstructionResult {
	for _, name := range s.Targets {
		text, ok := ctx.NextData()
		if !ok {
			return ErrorResult(gwerrors.OutOfData)
		}
		kind := ctx.VariableKind(name)
		var v values.Value
		if kind == values.String {
			v = values.NewString(text)
		} else {
			parsed, err := values.ParseNumericData(text, kind)
			if err != nil {
				return ErrorResult(err.Error())
			}
			v = parsed
		}
		if err := ctx.AssignVariable(name, v); err != nil {
			return ErrorResult(err.Error())
		}
	}
	return Next()
}

// evalInput implements INPUT [prompt,] targets (§4.3, §5). On a
// console that requires the async read protocol, a fresh entry prints
// the prompt and yields RequestAsyncAction(ReadLine); the driver must
// re-invoke this same instruction with ArgSupplyPendingResult carrying
// the user's line.
func evalInput(ctx *Context, line int, arg LineExecutionArgument, s ast.InputStmt) InstructionResult {
	prompt := "?"
	if s.HasText {
		prompt = s.Prompt
	}

	var text string
	if arg.Kind == ArgSupplyPendingResult {
		text = arg.Text
	} else {
		ctx.Console.Print(prompt)
		if ctx.Console.RequiresAsyncReadLine() {
			return RequestAsync(AsyncReadLine)
		}
		t, err := ctx.Console.ReadLine()
		if err != nil {
			return ErrorResult(err.Error())
		}
		text = t
	}

	parts := strings.Split(text, ",")
	if len(parts) < len(s.Targets) {
		return ErrorResult(gwerrors.RedoFromStart)
	}
	for i, name := range s.Targets {
		field := strings.TrimSpace(parts[i])
		kind := ctx.VariableKind(name)
		var v values.Value
		if kind == values.String {
			v = values.NewString(field)
		} else {
			parsed, err := values.ParseNumericData(field, kind)
			if err != nil {
				return ErrorResult(err.Error())
			}
			v = parsed
		}
		if err := ctx.AssignVariable(name, v); err != nil {
			return ErrorResult(err.Error())
		}
	}
	return Next()
}

// evalLoad implements LOAD "filename" (§4.3, §6): the console's file
// reader supplies text lines, each parsed via the Parser collaborator
// and merged into the program by label. A parse error on any one line
// aborts the load without terminating the host shell (§4.6).
func evalLoad(ctx *Context, s ast.LoadStmt) InstructionResult {
	if ctx.Parser == nil {
		return ErrorResult(gwerrors.InvalidFunctionCall)
	}
	lines, err := ctx.Console.ReadFileLines(s.Filename)
	if err != nil {
		return ErrorResult(err.Error())
	}
	for i, text := range lines {
		parsed := ctx.Parser.ParseProgramLine(text)
		switch parsed.Outcome {
		case ParseSuccess:
			ctx.Program.AddLine(parsed.Line)
		case ParseError:
			ctx.Console.PrintLine((&gwerrors.ParseError{Line: i + 1, Message: parsed.Err, Source: text}).Format())
			return Next()
		case ParseNothing:
			// blank/comment-only line; contributes nothing.
		}
	}
	return Next()
}
