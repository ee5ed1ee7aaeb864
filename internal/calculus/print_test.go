package calculus

import "testing"

func TestAlphaEquivalent(t *testing.T) {
	ann := TyRef{Name: TypeName("T")}
	left := TyAbsTm{Var: TermName("x"), Ann: ann, Body: TyRef{Name: TypeName("T")}}
	right := TyAbsTm{Var: TermName("y"), Ann: ann, Body: TyRef{Name: TypeName("T")}}

	if !AlphaEquivalent(left, right) {
		t.Errorf("expected %s and %s to be alpha-equivalent", left, right)
	}
}

func TestAlphaEquivalentDistinguishesStructure(t *testing.T) {
	a := TyRef{Name: TypeName("A")}
	b := TyRef{Name: TypeName("B")}

	if AlphaEquivalent(a, b) {
		t.Errorf("distinct type names must not be alpha-equivalent")
	}
}

// Print never renames: a Ref prints as exactly the source name it
// carries.
func TestPrintEchoesSourceNames(t *testing.T) {
	ref := TyRef{Name: TypeName("Widget")}
	if got, want := Print(OfType(ref)), "Widget"; got != want {
		t.Errorf("Print(%v) = %q, want %q", ref, got, want)
	}
}
