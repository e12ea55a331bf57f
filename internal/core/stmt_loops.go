// FOR/NEXT and WHILE/WEND loop instructions (§4.3).
//
// The FOR/NEXT termination check deliberately departs from
// original_source/rgwbasic/src/eval/for_instr.rs's check-then-increment
// order (which leaves the loop variable one step short of the bound on
// exit): per spec.md §9's explicit instruction to treat proper step
// semantics as "deliberate design here", and §8 testable property 2
// ("on program exit v equals b+1"), the increment is committed before
// the termination check, so the loop variable always lands one step
// past the bound when the loop completes normally.
package core

import (
	"github.com/rgwbasic/gwbasic/internal/ast"
	"github.com/rgwbasic/gwbasic/internal/gwerrors"
	"github.com/rgwbasic/gwbasic/internal/values"
)

func evalFor(ctx *Context, line int, arg LineExecutionArgument, s ast.ForStmt) InstructionResult {
	nextIdx, ok := pairPartner(ctx, line, isFor, isNext)
	if !ok {
		return ErrorResult(gwerrors.ForWithoutNext)
	}

	toVal, err := EvalExpr(ctx, s.To)
	if err != nil {
		return ErrorResult(err.Error())
	}
	if !values.IsNumeric(toVal) {
		return ErrorResult(gwerrors.TypeMismatch)
	}
	to := values.ToFloat64(toVal)

	step := 1.0
	if s.Step != nil {
		stepVal, err := EvalExpr(ctx, s.Step)
		if err != nil {
			return ErrorResult(err.Error())
		}
		if !values.IsNumeric(stepVal) {
			return ErrorResult(gwerrors.TypeMismatch)
		}
		step = values.ToFloat64(stepVal)
	}

	if arg.Kind == ArgNextIteration {
		cur := values.ToFloat64(ctx.LookupVariable(s.Var))
		next := cur + step
		if err := ctx.AssignVariable(s.Var, values.Narrow(next, ctx.LookupVariable(s.Var).Kind())); err != nil {
			return ErrorResult(err.Error())
		}
		if forDone(next, to, step) {
			return GotoLine(nextIdx + 1)
		}
		return Next()
	}

	fromVal, err := EvalExpr(ctx, s.From)
	if err != nil {
		return ErrorResult(err.Error())
	}
	if err := ctx.AssignVariable(s.Var, fromVal); err != nil {
		return ErrorResult(err.Error())
	}
	start := values.ToFloat64(ctx.LookupVariable(s.Var))
	if forDone(start, to, step) {
		return GotoLine(nextIdx + 1)
	}
	return Next()
}

func forDone(v, to, step float64) bool {
	if step >= 0 {
		return v > to
	}
	return v < to
}

func evalNext(ctx *Context, line int) InstructionResult {
	partner, ok := pairPartner(ctx, line, isFor, isNext)
	if !ok {
		return ErrorResult(gwerrors.NextWithoutFor)
	}
	return GotoLineWithArg(partner, LineExecutionArgument{Kind: ArgNextIteration})
}

func evalWhile(ctx *Context, line int, s ast.WhileStmt) InstructionResult {
	wendIdx, ok := pairPartner(ctx, line, isWhile, isWend)
	if !ok {
		return ErrorResult(gwerrors.WhileWithoutWend)
	}
	cond, err := EvalExpr(ctx, s.Cond)
	if err != nil {
		return ErrorResult(err.Error())
	}
	if !values.IsNumeric(cond) || values.ToFloat64(cond) == 0 {
		return GotoLine(wendIdx + 1)
	}
	return Next()
}

func evalWend(ctx *Context, line int) InstructionResult {
	partner, ok := pairPartner(ctx, line, isWhile, isWend)
	if !ok {
		return ErrorResult(gwerrors.WendWithoutWhile)
	}
	return GotoLine(partner)
}
