package calculus

import "testing"

// Property 6: unify(λx.a, λy.[x↦y]a) succeeds — α-equivalent terms
// (here, two renderings of the identity function) unify.
func TestUnifyAlphaEquivalence(t *testing.T) {
	ann := TyRef{Name: TypeName("T")}
	left := OfTerm(TmAbsTm{Var: TermName("x"), Ann: ann, Body: TmRef{Name: TermName("x")}})
	right := OfTerm(TmAbsTm{Var: TermName("y"), Ann: ann, Body: TmRef{Name: TermName("y")}})

	if err := Unify(left, right, Empty); err != nil {
		t.Errorf("alpha-equivalent abstractions failed to unify: %v", err)
	}
}

// Property 7: unify((λx.body) arg, [x↦arg]body) succeeds.
func TestUnifyBetaConvertibility(t *testing.T) {
	x := TermName("x")
	arg := TermName("arg")
	ann := TyRef{Name: TypeName("T")}
	abs := TmAbsTm{Var: x, Ann: ann, Body: TmRef{Name: x}}
	app := OfTerm(TmAppTm{Fun: abs, Arg: TmRef{Name: arg}})
	reduced := Substitute(x, OfTerm(TmRef{Name: arg}), OfTerm(TmRef{Name: x}))

	if err := Unify(app, reduced, Empty); err != nil {
		t.Errorf("beta-redex failed to unify with its reduct: %v", err)
	}
}

// A genuine mismatch must fail, carrying the offending subexpressions.
func TestUnifyMismatch(t *testing.T) {
	left := OfType(TyRef{Name: TypeName("A")})
	right := OfType(TyRef{Name: TypeName("B")})

	err := Unify(left, right, Empty)
	if err == nil {
		t.Fatal("expected unify of two distinct type names to fail")
	}
	if _, ok := err.(*UnifyError); !ok {
		t.Errorf("expected a *UnifyError, got %T: %v", err, err)
	}
}

// Beta-convertibility through a type-level application, the shape S4
// exercises end to end: (ΛX:*.X) A unifies with A when A is a free
// (non-closure) type name, since evaluating the application substitutes
// and then stops — A itself has no definition to further delta-expand.
func TestUnifyTypeLevelBetaConvertibility(t *testing.T) {
	X := TypeName("X")
	A := TypeName("A")
	wrap := TyAbsTy{Var: X, Kind: Star, Body: TyRef{Name: X}}
	applied := OfType(TyAppTy{Fun: wrap, Arg: TyRef{Name: A}})
	plain := OfType(TyRef{Name: A})

	if err := Unify(applied, plain, Empty); err != nil {
		t.Errorf("type-level beta-redex failed to unify with its reduct: %v", err)
	}
}
