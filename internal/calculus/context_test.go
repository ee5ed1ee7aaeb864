package calculus

import "testing"

func TestWellformedContextTyping(t *testing.T) {
	ctx := Empty.Kinding(TypeName("A"), Star).Typing(TermName("v"), TyRef{Name: TypeName("A")})
	if err := WellformedContext(ctx); err != nil {
		t.Errorf("WellformedContext: %v", err)
	}
}

func TestWellformedContextRejectsIllKindedTyping(t *testing.T) {
	// v : A, but A was never declared -- the typing frame's annotation
	// must check against ⋆ under its tail and fails.
	ctx := Empty.Typing(TermName("v"), TyRef{Name: TypeName("A")})
	if err := WellformedContext(ctx); err == nil {
		t.Error("expected an ill-kinded typing frame to be rejected")
	}
}

func TestWellformedClosureIntraClosureReference(t *testing.T) {
	// A term binding referencing a name declared earlier in the same
	// closure must see it.
	a, typ := identity()
	clo := (&Closure{}).WithTerm(TermName("id"), a, typ).WithTerm(TermName("id2"), TmRef{Name: TermName("id")}, typ)
	if err := WellformedClosure(clo, Empty); err != nil {
		t.Errorf("WellformedClosure: %v", err)
	}
}

func TestWellformedClosureRejectsIllTypedTermBinding(t *testing.T) {
	// v's body references a name nothing declares -- WellformedClosure's
	// CheckType over the closure's own term bindings must reject it.
	clo := (&Closure{}).WithTerm(TermName("v"), TmRef{Name: TermName("missing")}, TyRef{Name: TypeName("B")})
	if err := WellformedClosure(clo, Empty); err == nil {
		t.Error("expected an ill-typed closure term binding to be rejected")
	}
}
