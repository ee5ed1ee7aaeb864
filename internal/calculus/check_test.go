package calculus

import "testing"

// identity builds the polymorphic identity function ∀A:*.(x:A)->A and
// its type, the same shape spec §8's S1 scenario uses.
func identity() (Term, Type) {
	A := TypeName("A")
	x := TermName("x")
	typ := TyAbsTy{Var: A, Kind: Star, Body: TyAbsTm{Var: x, Ann: TyRef{Name: A}, Body: TyRef{Name: A}}}
	body := TmAbsTy{Var: A, Kind: Star, Body: TmAbsTm{Var: x, Ann: TyRef{Name: A}, Body: TmRef{Name: x}}}
	return body, typ
}

// Property 1: if synthesizeType(a, ctx) = T, then checkType(a, T, ctx)
// succeeds.
func TestSoundnessOfSynthesis(t *testing.T) {
	a, _ := identity()
	synthesized, err := SynthesizeType(a, Empty)
	if err != nil {
		t.Fatalf("SynthesizeType: %v", err)
	}
	if err := CheckType(a, synthesized, Empty); err != nil {
		t.Errorf("CheckType against the just-synthesized type failed: %v", err)
	}
}

// Property 2: if checkType(a, T, ctx) succeeds and synthesizeType(a,
// ctx) = T' with T' not an Iota, then unify(T, T') succeeds.
func TestCheckSynthAgreement(t *testing.T) {
	a, declared := identity()
	if err := CheckType(a, declared, Empty); err != nil {
		t.Fatalf("CheckType: %v", err)
	}
	synthesized, err := SynthesizeType(a, Empty)
	if err != nil {
		t.Fatalf("SynthesizeType: %v", err)
	}
	if _, ok := synthesized.(TyIota); ok {
		t.Fatalf("identity's synthesized type should not be an Iota")
	}
	if err := UnifyType(declared, synthesized, Empty); err != nil {
		t.Errorf("declared and synthesized types failed to unify: %v", err)
	}
}

// Property 3: checkType(a, Iota(x, T0), ctx) succeeds iff checkType(a,
// [x↦a] T0, ctx) succeeds and Iota(x, T0) has kind ⋆. T0 here does not
// mention the self variable, a degenerate but well-formed case that
// keeps the test clear of the self-referential-closure non-termination
// hazard recorded in DESIGN.md.
func TestSelfTypeIntroduction(t *testing.T) {
	A := TypeName("A")
	v := TermName("v")
	self := TermName("self")

	ctx := Empty.Kinding(A, Star).Typing(v, TyRef{Name: A})
	iotaType := TyIota{Var: self, Body: TyRef{Name: A}}

	if err := CheckType(TmRef{Name: v}, iotaType, ctx); err != nil {
		t.Errorf("self-type introduction failed: %v", err)
	}

	// A term of an unrelated type must fail: v : A, but A and the iota's
	// unfolded body B are different names.
	B := TypeName("B")
	ctx2 := ctx.Kinding(B, Star)
	otherIota := TyIota{Var: self, Body: TyRef{Name: B}}
	if err := CheckType(TmRef{Name: v}, otherIota, ctx2); err == nil {
		t.Error("expected self-type introduction to fail for a mismatched body")
	}
}

// S5: applying a term that does not synthesize a function-at-the-
// term-level classifier (id's type is a type abstraction, ∀A:*.…, not a
// term abstraction) is an invalid term-term applicant.
func TestSynthesizeTypeInvalidApplicant(t *testing.T) {
	a, _ := identity()
	idName := TermName("id")
	ctx := Empty.Typing(idName, mustSynthesize(t, a))

	_, err := SynthesizeType(TmAppTm{Fun: TmRef{Name: idName}, Arg: TmRef{Name: idName}}, ctx)
	if err == nil {
		t.Fatal("expected an invalid-applicant error")
	}
	if _, ok := err.(*InvalidApplicantError); !ok {
		t.Errorf("expected *InvalidApplicantError, got %T: %v", err, err)
	}
}

func mustSynthesize(t *testing.T, a Term) Type {
	t.Helper()
	typ, err := SynthesizeType(a, Empty)
	if err != nil {
		t.Fatalf("SynthesizeType: %v", err)
	}
	return typ
}

// S2: a body that returns a type where a term was expected fails with
// an undeclared term name, since the name only exists in TypeNS.
func TestSynthesizeTypeUndeclaredTermName(t *testing.T) {
	A := TypeName("A")
	x := TermName("x")
	body := TmAbsTy{Var: A, Kind: Star, Body: TmAbsTm{
		Var: x, Ann: TyRef{Name: A}, Body: TmRef{Name: TermName("A")},
	}}

	_, err := SynthesizeType(body, Empty)
	if err == nil {
		t.Fatal("expected an undeclared-name error")
	}
	undeclared, ok := err.(*UndeclaredNameError)
	if !ok {
		t.Fatalf("expected *UndeclaredNameError, got %T: %v", err, err)
	}
	if undeclared.NS != TermNS {
		t.Errorf("expected the undeclared name to be in TermNS, got %s", undeclared.NS)
	}
}
