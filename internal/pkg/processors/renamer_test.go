package processors

import (
	"errors"
	"github.com/chrisdone/redex/internal/pkg/ast"
	"github.com/chrisdone/redex/internal/pkg/common"
	"github.com/chrisdone/redex/internal/pkg/examples"
	"github.com/hashicorp/go-set/v2"
	"math"
	"testing"
)

func TestRenameGivesEveryBinderAFreshName(t *testing.T) {
	// (\1 -> \1 -> 1 10) (\2 -> 11 2), with 10 and 11 free
	expr := ast.NewApply(
		ast.NewLambda(1, ast.NewLambda(1, ast.NewApply(ast.NewVar(1), ast.NewVar(10)))),
		ast.NewLambda(2, ast.NewApply(ast.NewVar(11), ast.NewVar(2))),
	)
	scope, fresh := RootScope(expr, FreshSeed)
	renamed, err := Rename(scope, expr, fresh)
	if err != nil {
		t.Fatalf("Rename: %v", err)
	}

	binders := ast.Binders(renamed)
	if len(binders) != 3 {
		t.Fatalf("expected 3 binders, got %v in %s", binders, renamed)
	}
	unique := set.From(binders)
	if unique.Size() != len(binders) {
		t.Errorf("binders are not pairwise distinct: %v", binders)
	}
	for _, outer := range scope {
		if unique.Contains(outer) {
			t.Errorf("fresh binder clashes with scope name %s", outer)
		}
	}
	before, after := ast.FreeNames(expr), ast.FreeNames(renamed)
	if before.Size() != after.Size() {
		t.Errorf("free names changed: %v -> %v", before.Slice(), after.Slice())
	}
	for _, n := range before.Slice() {
		if !after.Contains(n) {
			t.Errorf("free name %s lost after renaming", n)
		}
	}
}

func TestRenameClosedTerms(t *testing.T) {
	tests := []struct {
		name string
		expr ast.Expression
		want string
	}{
		{"literal", ast.NewInt(4), "4"},
		{"constructor", ast.NewConstructor("Nothing"), "Nothing"},
		{"shadowing", ast.NewLambda(7, ast.NewLambda(7, ast.NewVar(7))), `\v1 -> \v2 -> v2`},
		{"outer reference", ast.NewLambda(7, ast.NewLambda(8, ast.NewVar(7))), `\v1 -> \v2 -> v1`},
		{
			"counter shared across siblings",
			ast.NewApply(examples.Identity(), examples.Identity()),
			`(\v1 -> v1) (\v2 -> v2)`,
		},
		{
			"y combinator",
			examples.YCombinator(),
			`\v1 -> (\v2 -> v1 (v2 v2)) (\v3 -> v1 (v3 v3))`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			renamed, err := Rename(Scope{}, tt.expr, NewFresh(FreshSeed))
			if err != nil {
				t.Fatalf("Rename: %v", err)
			}
			if renamed.String() != tt.want {
				t.Errorf("Rename() = %s, want %s", renamed, tt.want)
			}
		})
	}
}

func TestRenameUnboundVariable(t *testing.T) {
	_, err := Rename(Scope{}, ast.NewVar(42), NewFresh(FreshSeed))
	var missing common.MissingNameError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingNameError, got %v", err)
	}
	if missing.Name != 42 {
		t.Errorf("missing name = %s, want v42", missing.Name)
	}
}

func TestRenameScopeDoesNotLeakToSiblings(t *testing.T) {
	// (\1 -> 1) 1: the argument is outside the lambda and 1 is unbound there.
	expr := ast.NewApply(ast.NewLambda(1, ast.NewVar(1)), ast.NewVar(1))
	_, err := Rename(Scope{}, expr, NewFresh(FreshSeed))
	var missing common.MissingNameError
	if !errors.As(err, &missing) || missing.Name != 1 {
		t.Fatalf("expected MissingNameError for v1, got %v", err)
	}

	scope := Scope{}
	if _, err := Rename(scope, ast.NewLambda(5, ast.NewVar(5)), NewFresh(FreshSeed)); err != nil {
		t.Fatalf("Rename: %v", err)
	}
	if len(scope) != 0 {
		t.Errorf("caller scope was mutated: %v", scope)
	}
}

func TestRenameSelect(t *testing.T) {
	body := ast.NewVar(9)
	cases := []ast.SelectCase{ast.NewSelectCase(ast.NewPDataOption("Just", ast.NewPNamed(9)), body)}
	expr := ast.NewLambda(1, ast.NewSelect(ast.NewVar(1), cases...))

	renamed, err := Rename(Scope{}, expr, NewFresh(FreshSeed))
	if err != nil {
		t.Fatalf("Rename: %v", err)
	}
	want := `\v1 -> case v1 of { Just v9 -> v9 }`
	if renamed.String() != want {
		t.Errorf("Rename() = %s, want %s", renamed, want)
	}

	_, err = Rename(Scope{}, ast.NewSelect(ast.NewVar(3), cases...), NewFresh(FreshSeed))
	var missing common.MissingNameError
	if !errors.As(err, &missing) || missing.Name != 3 {
		t.Errorf("expected MissingNameError for the condition, got %v", err)
	}
}

func TestFreshNamesDoNotWrapAround(t *testing.T) {
	fresh := NewFresh(math.MaxUint64 - 1)
	if name, err := fresh.Next(); err != nil || name != math.MaxUint64 {
		t.Fatalf("Next() = %s, %v", name, err)
	}
	if _, err := fresh.Next(); !errors.Is(err, common.ErrNamesExhausted) {
		t.Fatalf("expected ErrNamesExhausted, got %v", err)
	}

	// (\v1 -> v1 v0) vMAX: the largest free name leaves no room for a fresh binder.
	expr := ast.NewApply(
		ast.NewLambda(1, ast.NewApply(ast.NewVar(1), ast.NewVar(0))),
		ast.NewVar(math.MaxUint64),
	)
	scope, fresh := RootScope(expr, FreshSeed)
	if renamed, err := Rename(scope, expr, fresh); !errors.Is(err, common.ErrNamesExhausted) {
		t.Errorf("Rename() = %v, %v", renamed, err)
	}
}
