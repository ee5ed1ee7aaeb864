package calculus

import (
	"reflect"
	"testing"

	"github.com/iotalang/iotacheck/internal/config"
)

// Property 4 (spec §8): substitute(x, e, E) leaves every Ref(y) untouched
// whenever y is in a different namespace than x, even when the two
// share the same identifier string.
func TestSubstituteNamespaceIsolation(t *testing.T) {
	x := TermName("v")
	y := TypeName("v") // same Ident, different namespace
	e := OfTerm(TmRef{Name: TermName("replacement")})
	target := OfType(TyRef{Name: y})

	got := Substitute(x, e, target)

	if !reflect.DeepEqual(got.Type, TyRef{Name: y}) {
		t.Errorf("Substitute crossed namespaces: got %s, want %s", got.Type, TyRef{Name: y})
	}
}

// Property 5: substitute(x, e, B(x, …)) is a no-op on the body of a
// binder B(x, …) when B's binder is in the namespace of x — the binder
// shadows every occurrence it governs.
func TestSubstituteShadowing(t *testing.T) {
	x := TermName("x")
	e := OfTerm(TmRef{Name: TermName("replacement")})
	target := TmAbsTm{Var: x, Ann: TyRef{Name: TypeName("T")}, Body: TmRef{Name: x}}

	got := Substitute(x, e, OfTerm(target))

	if !reflect.DeepEqual(got.Term, target) {
		t.Errorf("substitution descended under a shadowing binder: got %s, want %s", got.Term, target)
	}
}

// A binder in a different namespace never shadows; substitution must
// still recurse into its body.
func TestSubstituteNoShadowAcrossNamespaces(t *testing.T) {
	x := TermName("v")
	e := OfTerm(TmRef{Name: TermName("replacement")})
	// /\V::*. v   -- V is a type-binder, so the term-name v inside is free.
	target := TmAbsTy{Var: TypeName("V"), Kind: Star, Body: TmRef{Name: x}}

	got := Substitute(x, e, OfTerm(target))

	want := TmAbsTy{Var: TypeName("V"), Kind: Star, Body: TmRef{Name: TermName("replacement")}}
	if !reflect.DeepEqual(got.Term, want) {
		t.Errorf("substitution failed to recurse under a non-shadowing binder: got %s, want %s", got.Term, want)
	}
}

// Under config.IsTestMode, SubstituteFresh's capture-avoiding renaming
// uses a deterministic counter instead of a random uuid, so resetting
// the counter between two otherwise-identical calls reproduces the same
// fresh name both times.
func TestSubstituteFreshDeterministicUnderTestMode(t *testing.T) {
	config.IsTestMode = true
	defer func() { config.IsTestMode = false }()

	x := TermName("x")
	bound := TermName("y")
	e := OfTerm(TmRef{Name: bound}) // replacement mentions the binder, forcing capture avoidance
	target := TmAbsTm{Var: bound, Ann: TyRef{Name: TypeName("T")}, Body: TmRef{Name: x}}

	freshenCounter = 0
	got1 := SubstituteFresh(x, e, OfTerm(target)).Term.(TmAbsTm)
	freshenCounter = 0
	got2 := SubstituteFresh(x, e, OfTerm(target)).Term.(TmAbsTm)

	if got1.Var == bound {
		t.Fatal("expected capture avoidance to rename the binder")
	}
	if got1.Var != got2.Var {
		t.Errorf("test-mode freshening was not deterministic: %s vs %s", got1.Var, got2.Var)
	}
}
