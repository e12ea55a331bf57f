package core_test

import (
	"testing"

	"github.com/rgwbasic/gwbasic/internal/ast"
	"github.com/rgwbasic/gwbasic/internal/core"
	"github.com/rgwbasic/gwbasic/internal/values"
)

func TestBuiltinAbsPreservesArgumentKind(t *testing.T) {
	ctx := core.NewContext(core.NewProgram(), newMemConsole())
	v, err := core.EvalExpr(ctx, ast.ParenAccessExpr{
		Name: "ABS", Args: []ast.Expr{ast.IntLiteral{Value: -5}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Kind() != values.Integer || v.String() != "5" {
		t.Errorf("expected Integer(5), got %v %s", v.Kind(), v.String())
	}
}

func TestBuiltinLogAlwaysProducesDouble(t *testing.T) {
	ctx := core.NewContext(core.NewProgram(), newMemConsole())
	v, err := core.EvalExpr(ctx, ast.ParenAccessExpr{
		Name: "LOG", Args: []ast.Expr{ast.IntLiteral{Value: 1}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Kind() != values.Double {
		t.Errorf("expected LOG to widen to Double, got %v", v.Kind())
	}
}

func TestBuiltinLeftStrTruncatesToRuneCount(t *testing.T) {
	ctx := core.NewContext(core.NewProgram(), newMemConsole())
	v, err := core.EvalExpr(ctx, ast.ParenAccessExpr{
		Name: "LEFT$",
		Args: []ast.Expr{ast.StringLiteral{Value: "HELLO"}, ast.IntLiteral{Value: 3}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.String() != "HEL" {
		t.Errorf("expected HEL, got %s", v.String())
	}
}

func TestBuiltinLeftStrClampsCountPastLength(t *testing.T) {
	ctx := core.NewContext(core.NewProgram(), newMemConsole())
	v, err := core.EvalExpr(ctx, ast.ParenAccessExpr{
		Name: "LEFT$",
		Args: []ast.Expr{ast.StringLiteral{Value: "HI"}, ast.IntLiteral{Value: 10}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.String() != "HI" {
		t.Errorf("expected HI unchanged, got %s", v.String())
	}
}

func TestArrayAccessUndeclaredNameIsSubscriptError(t *testing.T) {
	ctx := core.NewContext(core.NewProgram(), newMemConsole())
	_, err := core.EvalExpr(ctx, ast.ParenAccessExpr{
		Name: "Q", Args: []ast.Expr{ast.IntLiteral{Value: 1}},
	})
	if err == nil {
		t.Errorf("expected an error accessing an undeclared array")
	}
}

func TestRndProducesSingleInZeroToOneRange(t *testing.T) {
	ctx := core.NewContext(core.NewProgram(), newMemConsole())
	v, err := core.EvalExpr(ctx, ast.ParenAccessExpr{Name: "RND"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Kind() != values.Single {
		t.Errorf("expected RND to produce a Single, got %v", v.Kind())
	}
	f := values.ToFloat64(v)
	if f < 0 || f >= 1 {
		t.Errorf("expected RND in [0,1), got %v", f)
	}
}
