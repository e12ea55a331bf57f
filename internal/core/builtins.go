// Built-in function resolution for ParenAccessExpr (§4.2): NAME(args) is
// first tried against the recognised built-in functions, then against
// arrays; if neither resolves, it is a Subscript out of range error.
//
// Grounded on original_source/rgwbasic/src/eval/leftstr_func.rs (LEFT$)
// and original_source/src/eval/mod.rs's GwParenthesizedAccessExpr, which
// resolves a name against a fixed function table before falling back to
// array indexing.
package core

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/rgwbasic/gwbasic/internal/ast"
	"github.com/rgwbasic/gwbasic/internal/gwerrors"
	"github.com/rgwbasic/gwbasic/internal/ident"
	"github.com/rgwbasic/gwbasic/internal/values"
)

// builtinUnary is the set of single-argument math builtins (§4.2).
var builtinUnary = map[string]func(float64) float64{
	"ABS": math.Abs,
	"LOG": math.Log,
	"INT": math.Floor,
	"COS": math.Cos,
	"SIN": math.Sin,
}

func evalParenAccess(ctx *Context, n ast.ParenAccessExpr) (values.Value, error) {
	name := ident.Normalize(n.Name)

	if name == "RND" {
		return values.NewSingle(float32(rand.Float64())), nil
	}
	if fn, ok := builtinUnary[name]; ok {
		if len(n.Args) != 1 {
			return nil, fmt.Errorf("%s", gwerrors.IllegalFunctionCall)
		}
		arg, err := EvalExpr(ctx, n.Args[0])
		if err != nil {
			return nil, err
		}
		if !values.IsNumeric(arg) {
			return nil, fmt.Errorf("%s", gwerrors.TypeMismatch)
		}
		return values.Narrow(fn(values.ToFloat64(arg)), widenUnaryResult(arg.Kind(), name)), nil
	}
	if name == "LEFT$" {
		return evalLeftStr(ctx, n)
	}

	return evalArrayAccess(ctx, n)
}

// widenUnaryResult picks the result kind for a unary math builtin:
// INT/ABS preserve the argument's own numeric kind, the transcendental
// functions always produce a double (matching how the original source's
// GwLog/GwInt nodes wrap the evaluated argument's own numeric width vs.
// always widening through f64 math).
func widenUnaryResult(argKind values.Kind, name string) values.Kind {
	switch name {
	case "INT", "ABS":
		return argKind
	default:
		return values.Double
	}
}

// evalLeftStr implements LEFT$(s, n): the leftmost n characters of s.
// A negative n is an Illegal function call (§4.2, §7).
func evalLeftStr(ctx *Context, n ast.ParenAccessExpr) (values.Value, error) {
	if len(n.Args) != 2 {
		return nil, fmt.Errorf("%s", gwerrors.IllegalFunctionCall)
	}
	sv, err := EvalExpr(ctx, n.Args[0])
	if err != nil {
		return nil, err
	}
	s, ok := sv.(*values.StringValue)
	if !ok {
		return nil, fmt.Errorf("%s", gwerrors.TypeMismatch)
	}
	cv, err := EvalExpr(ctx, n.Args[1])
	if err != nil {
		return nil, err
	}
	count, err := values.ToIndex(cv, gwerrors.IllegalFunctionCall)
	if err != nil {
		return nil, err
	}
	runes := []rune(s.Val)
	if count > len(runes) {
		count = len(runes)
	}
	return values.NewString(string(runes[:count])), nil
}

// evalArrayAccess reads one element out of an existing array (§4.2):
// indices are converted to nonnegative integers, then the array lookup
// enforces its own 1..n bound.
func evalArrayAccess(ctx *Context, n ast.ParenAccessExpr) (values.Value, error) {
	arr, ok := ctx.Arrays.Lookup(n.Name)
	if !ok {
		return nil, fmt.Errorf("%s", gwerrors.SubscriptOutOfRange)
	}
	if len(n.Args) != 1 {
		return nil, fmt.Errorf("%s", gwerrors.SubscriptOutOfRange)
	}
	idxVal, err := EvalExpr(ctx, n.Args[0])
	if err != nil {
		return nil, err
	}
	idx, err := values.ToIndex(idxVal, gwerrors.TypeMismatch)
	if err != nil {
		return nil, err
	}
	return arr.Get(idx)
}
