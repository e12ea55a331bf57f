// EvalExpr implements the expression-node public contract (§4.2): every
// expression evaluates in a context to a value or an error string.
//
// Grounded on the design note in spec.md §9 ("tagged variants plus free
// functions for evaluation") and on original_source/src/eval/mod.rs's
// GwExpression::eval / GwParenthesizedAccessExpr dispatch and
// original_source/src/eval/binary.rs's widening rules.
package core

import (
	"fmt"
	"math"

	"github.com/rgwbasic/gwbasic/internal/ast"
	"github.com/rgwbasic/gwbasic/internal/gwerrors"
	"github.com/rgwbasic/gwbasic/internal/values"
)

// EvalExpr evaluates e in ctx, returning a Type mismatch or Subscript
// out of range error (among others) on failure.
func EvalExpr(ctx *Context, e ast.Expr) (values.Value, error) {
	switch n := e.(type) {
	case ast.IntLiteral:
		return values.NewInteger(n.Value), nil
	case ast.SingleLiteral:
		return values.NewSingle(n.Value), nil
	case ast.DoubleLiteral:
		return values.NewDouble(n.Value), nil
	case ast.StringLiteral:
		return values.NewString(n.Value), nil
	case ast.VariableExpr:
		return ctx.LookupVariable(n.Name), nil
	case ast.UnaryMinusExpr:
		return evalUnaryMinus(ctx, n)
	case ast.BinaryExpr:
		return evalBinary(ctx, n)
	case ast.ParenAccessExpr:
		return evalParenAccess(ctx, n)
	case ast.InKeyExpr:
		return values.NewString(""), nil
	default:
		return nil, fmt.Errorf("%s", gwerrors.TypeMismatch)
	}
}

func evalUnaryMinus(ctx *Context, n ast.UnaryMinusExpr) (values.Value, error) {
	v, err := EvalExpr(ctx, n.X)
	if err != nil {
		return nil, err
	}
	if !values.IsNumeric(v) {
		return nil, fmt.Errorf("%s", gwerrors.TypeMismatch)
	}
	return values.Narrow(-values.ToFloat64(v), v.Kind()), nil
}

func evalBinary(ctx *Context, n ast.BinaryExpr) (values.Value, error) {
	left, err := EvalExpr(ctx, n.Left)
	if err != nil {
		return nil, err
	}
	right, err := EvalExpr(ctx, n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case "=", "<>", "<", ">", "<=", ">=":
		return values.Compare(left, right, n.Op)
	case "+":
		// `+` is the one operator that is also string-defined
		// (concatenation), per BASIC convention; everything else
		// numeric-only per §4.1.
		if ls, ok := left.(*values.StringValue); ok {
			rs, ok2 := right.(*values.StringValue)
			if !ok2 {
				return nil, fmt.Errorf("%s", gwerrors.TypeMismatch)
			}
			return values.NewString(ls.Val + rs.Val), nil
		}
		return values.BinaryNumeric(left, right, func(a, b float64) float64 { return a + b })
	case "-":
		return values.BinaryNumeric(left, right, func(a, b float64) float64 { return a - b })
	case "*":
		return values.BinaryNumeric(left, right, func(a, b float64) float64 { return a * b })
	case "/":
		// Division always yields a double (§4.1).
		if !values.IsNumeric(left) || !values.IsNumeric(right) {
			return nil, fmt.Errorf("%s", gwerrors.TypeMismatch)
		}
		return values.NewDouble(values.ToFloat64(left) / values.ToFloat64(right)), nil
	case "^":
		return evalPow(left, right)
	default:
		return nil, fmt.Errorf("%s", gwerrors.TypeMismatch)
	}
}

// evalPow implements exponentiation (§4.1): integer bases with a
// nonnegative integer exponent use repeated multiplication; anything
// else widens to float and uses math.Pow.
func evalPow(left, right values.Value) (values.Value, error) {
	if !values.IsNumeric(left) || !values.IsNumeric(right) {
		return nil, fmt.Errorf("%s", gwerrors.TypeMismatch)
	}
	li, lok := left.(*values.IntegerValue)
	ri, rok := right.(*values.IntegerValue)
	if lok && rok && ri.Val >= 0 {
		result := int64(1)
		base := int64(li.Val)
		for i := int16(0); i < ri.Val; i++ {
			result *= base
		}
		return values.NewInteger(int16(result)), nil
	}
	target := values.Widen(left.Kind(), right.Kind())
	result := math.Pow(values.ToFloat64(left), values.ToFloat64(right))
	return values.Narrow(result, target), nil
}
