package calculus

import (
	"reflect"
	"testing"
)

func TestFreeTermNamesRemovesBoundVar(t *testing.T) {
	x := TermName("x")
	e := OfTerm(TmAbsTm{Var: x, Ann: TyRef{Name: TypeName("T")}, Body: TmRef{Name: x}})

	got := FreeTermNames(e)
	if len(got) != 0 {
		t.Errorf("expected no free term names, got %v", got)
	}
}

func TestFreeTermNamesCrossesTypeBinder(t *testing.T) {
	x := TermName("x")
	// /\A::*. x -- a type-binder never removes a term-name.
	e := OfTerm(TmAbsTy{Var: TypeName("A"), Kind: Star, Body: TmRef{Name: x}})

	got := FreeTermNames(e)
	if !reflect.DeepEqual(got, []Name{x}) {
		t.Errorf("expected [%s] free, got %v", x, got)
	}
}

func TestFreeTypeNamesNotRemovedByIota(t *testing.T) {
	self := TermName("self")
	A := TypeName("A")
	// iota self. A -- the self binder is a term-name; A stays free.
	e := OfType(TyIota{Var: self, Body: TyRef{Name: A}})

	got := FreeTypeNames(e)
	if !reflect.DeepEqual(got, []Name{A}) {
		t.Errorf("expected [%s] free, got %v", A, got)
	}
}
