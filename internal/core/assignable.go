// AssignTo writes a value through an assignable expression (§4.3
// Array assignment, SWAP): a scalar VariableExpr or an array-element
// ParenAccessExpr.
package core

import (
	"fmt"

	"github.com/rgwbasic/gwbasic/internal/ast"
	"github.com/rgwbasic/gwbasic/internal/gwerrors"
	"github.com/rgwbasic/gwbasic/internal/values"
)

// AssignTo implements the "assignable expression" contract used by SWAP
// and array assignment. Plain assignment calls Context.AssignVariable
// directly.
func AssignTo(ctx *Context, target ast.Expr, value values.Value) error {
	switch t := target.(type) {
	case ast.VariableExpr:
		return ctx.AssignVariable(t.Name, value)
	case ast.ParenAccessExpr:
		arr, ok := ctx.Arrays.Lookup(t.Name)
		if !ok {
			return fmt.Errorf("%s", gwerrors.SubscriptOutOfRange)
		}
		if len(t.Args) != 1 {
			return fmt.Errorf("%s", gwerrors.SubscriptOutOfRange)
		}
		idxVal, err := EvalExpr(ctx, t.Args[0])
		if err != nil {
			return err
		}
		idx, err := values.ToIndex(idxVal, gwerrors.TypeMismatch)
		if err != nil {
			return err
		}
		return arr.Set(idx, value)
	default:
		return fmt.Errorf("%s", gwerrors.TypeMismatch)
	}
}
