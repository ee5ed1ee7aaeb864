package calculus

import "testing"

// ElaborateProgram on the polymorphic identity function, S1's shape,
// elaborates OK.
func TestElaborateProgramIdentity(t *testing.T) {
	a, typ := identity()
	prgm := Prgm{DefnTm{Name: TermName("id"), Type: typ, Body: a}}

	if _, err := ElaborateProgram(prgm); err != nil {
		t.Errorf("ElaborateProgram: %v", err)
	}
}

// A later statement can reference an earlier one's definition through
// the accumulated closure.
func TestElaborateProgramLaterStatementUsesEarlier(t *testing.T) {
	a, typ := identity()
	prgm := Prgm{
		DefnTm{Name: TermName("id"), Type: typ, Body: a},
		DefnTm{Name: TermName("id2"), Type: typ, Body: TmRef{Name: TermName("id")}},
	}

	if _, err := ElaborateProgram(prgm); err != nil {
		t.Errorf("ElaborateProgram: %v", err)
	}
}

// The first failing statement aborts elaboration of the rest.
func TestElaborateProgramAbortsOnFirstError(t *testing.T) {
	a, typ := identity()
	prgm := Prgm{
		DefnTm{Name: TermName("bad"), Type: typ, Body: TmRef{Name: TermName("nowhere")}},
		DefnTm{Name: TermName("id"), Type: typ, Body: a},
	}

	_, err := ElaborateProgram(prgm)
	if err == nil {
		t.Fatal("expected the program to fail on its first statement")
	}
	if _, ok := err.(*UndeclaredNameError); !ok {
		t.Errorf("expected *UndeclaredNameError, got %T: %v", err, err)
	}
}

// Property 9: elaboration is a pure function of its input — running it
// twice on the same program yields the same outcome.
func TestElaborateProgramDeterministic(t *testing.T) {
	a, typ := identity()
	prgm := Prgm{DefnTm{Name: TermName("id"), Type: typ, Body: a}}

	_, err1 := ElaborateProgram(prgm)
	_, err2 := ElaborateProgram(prgm)
	if (err1 == nil) != (err2 == nil) {
		t.Fatalf("non-deterministic outcome: err1=%v err2=%v", err1, err2)
	}
}
