// PRINT and PRINT USING (§4.3 PRINT, §4.4 numeric formatter).
package core

import (
	"github.com/rgwbasic/gwbasic/internal/ast"
	"github.com/rgwbasic/gwbasic/internal/format"
	"github.com/rgwbasic/gwbasic/internal/gwerrors"
	"github.com/rgwbasic/gwbasic/internal/values"
)

// printValueText applies the value-to-string rule for a PRINT item: a
// numeric value carries a trailing space (the classic zone reserved for
// a sign/separator), a string prints verbatim.
func printValueText(v values.Value) string {
	if values.IsNumeric(v) {
		return v.String() + " "
	}
	return v.String()
}

func evalPrint(ctx *Context, s ast.PrintStmt) InstructionResult {
	for _, item := range s.Items {
		if item.Tab != nil {
			tv, err := EvalExpr(ctx, item.Tab)
			if err != nil {
				return ErrorResult(err.Error())
			}
			if !values.IsNumeric(tv) {
				return ErrorResult(gwerrors.TypeMismatch)
			}
			ctx.Console.AdjustToPosition(int(values.ToFloat64(tv)))
		}
		if item.Expr != nil {
			v, err := EvalExpr(ctx, item.Expr)
			if err != nil {
				return ErrorResult(err.Error())
			}
			ctx.Console.Print(printValueText(v))
		}
		if item.HasSep && item.Sep == ',' {
			ctx.Console.Print(" ")
		}
	}
	if len(s.Items) == 0 || !(s.Items[len(s.Items)-1].HasSep && s.Items[len(s.Items)-1].Sep == ';') {
		ctx.Console.PrintLine("")
	}
	return Next()
}

func evalPrintUsing(ctx *Context, s ast.PrintUsingStmt) InstructionResult {
	fv, err := EvalExpr(ctx, s.Format)
	if err != nil {
		return ErrorResult(err.Error())
	}
	fs, ok := fv.(*values.StringValue)
	if !ok {
		return ErrorResult(gwerrors.InvalidFunctionCall)
	}

	argVals := make([]float64, 0, len(s.Args))
	for _, a := range s.Args {
		v, err := EvalExpr(ctx, a)
		if err != nil {
			return ErrorResult(err.Error())
		}
		if !values.IsNumeric(v) {
			return ErrorResult(gwerrors.TypeMismatch)
		}
		argVals = append(argVals, values.ToFloat64(v))
	}

	idx := 0
	emit := func(text string) { ctx.Console.Print(text) }
	nextArg := func() (float64, bool) {
		if idx >= len(argVals) {
			return 0, false
		}
		v := argVals[idx]
		idx++
		return v, true
	}
	if err := format.Apply(fs.Val, len(argVals), emit, nextArg); err != nil {
		return ErrorResult(gwerrors.InvalidValue)
	}
	if !s.TrailingSemicolon {
		ctx.Console.PrintLine("")
	}
	return Next()
}
