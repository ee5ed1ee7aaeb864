package iota

import "github.com/iotalang/iotacheck/internal/calculus"

// Scenarios returns the six literal end-to-end programs spec §8
// enumerates (S1–S6), keyed by the same names internal/fixture's YAML
// bank uses (fixture.Scenario.Name), so a test can join the two: the
// YAML carries the human-readable expectation, this file carries the
// calculus.Prgm value that is supposed to produce it.
//
// Spec's own S1, S4, S5, and S6 shapes are each closed over an outer
// ∀A:⋆ rather than a bare free type name, since every DefnTm/DefnTy here must elaborate as a complete,
// closed program — there is no parser or surface syntax to leave
// anything implicitly free (spec.md §6). This closing-over is also
// deliberately shaped to avoid a real non-termination hazard in Unify
// (see DESIGN.md "A known, accepted non-termination hazard"): whichever
// type name an application or unification touches is always either a
// bound, non-closure type variable or a term bound by an enclosing
// abstraction, never a closure-backed type whose own definition
// mentions its own name — that shape is exercised in isolation by S3
// instead, where it is never subsequently unified against anything.
func Scenarios() map[string]Prgm {
	A := TypeName("A")
	X := TypeName("X")
	x := TermName("x")
	y := TermName("y")

	// S1: the polymorphic identity function, ∀A:*.(x:A)->A, elaborates
	// OK with no concrete instantiation needed — A stays a bound type
	// variable throughout, so nothing here ever reaches a closure-backed
	// Ref during unification.
	idType := calculus.TyAbsTy{Var: A, Kind: Star, Body: calculus.TyAbsTm{Var: x, Ann: calculus.TyRef{Name: A}, Body: calculus.TyRef{Name: A}}}
	idBody := calculus.TmAbsTy{Var: A, Kind: Star, Body: calculus.TmAbsTm{Var: x, Ann: calculus.TyRef{Name: A}, Body: calculus.TmRef{Name: x}}}
	s1 := Prgm{DefnTm{Name: TermName("id"), Type: idType, Body: idBody}}

	// S2: same signature, a body that returns the type A itself where a
	// term was expected. synthesizeType's Ref case looks up `A` in
	// TermNS — but the only A in scope was bound in TypeNS by the outer
	// AbsTy, so the term-level Ref(A) is simply undeclared.
	s2Body := calculus.TmAbsTy{Var: A, Kind: Star, Body: calculus.TmAbsTm{
		Var: x, Ann: calculus.TyRef{Name: A},
		Body: calculus.TmRef{Name: TermName("A")},
	}}
	s2 := Prgm{DefnTm{Name: TermName("id"), Type: idType, Body: s2Body}}

	// S3: a type definition built from ι referencing its own name,
	// resolved through the eagerly-pushed Kinding frame — well-formed,
	// kind *. Standalone: nothing downstream unifies against it, so the
	// non-terminating unify hazard a self-referential closure-backed Ref
	// would otherwise create (see DESIGN.md) never triggers.
	self := TermName("self")
	T := TypeName("T")
	s3 := Prgm{DefnTy{Name: T, Kind: Star, Type: calculus.TyIota{Var: self, Body: calculus.TyRef{Name: T}}}}

	// S4: a type-level identity constructor Wrap : (X:*)->* := ΛX:*.X,
	// then a term whose declared type's domain is (Wrap A) while its
	// synthesized type's domain is plain A — beta-equal, not
	// syntactically equal. Because A is a bound (non-closure) type
	// variable, evaluating (Wrap A) reduces to Ref(A) and stops (A has
	// no definition to further delta-expand), so Unify terminates and
	// succeeds via the plain Ref/Ref name-equality case.
	wrapKind := calculus.KdAbsTy{Var: X, Ann: Star, Body: Star}
	wrapType := calculus.TyAbsTy{Var: X, Kind: Star, Body: calculus.TyRef{Name: X}}
	wrap := TypeName("Wrap")
	declared := calculus.TyAbsTy{Var: A, Kind: Star, Body: calculus.TyAbsTm{
		Var: y, Ann: calculus.TyAppTy{Fun: calculus.TyRef{Name: wrap}, Arg: calculus.TyRef{Name: A}},
		Body: calculus.TyRef{Name: A},
	}}
	synthed := calculus.TmAbsTy{Var: A, Kind: Star, Body: calculus.TmAbsTm{
		Var: y, Ann: calculus.TyRef{Name: A}, Body: calculus.TmRef{Name: y},
	}}
	s4 := Prgm{
		DefnTy{Name: wrap, Kind: wrapKind, Type: wrapType},
		DefnTm{Name: TermName("useWrap"), Type: declared, Body: synthed},
	}

	// S5: id's own type is a type abstraction (∀A:*. …), not a term
	// function type, so applying it term-to-term (AppTm(id, id)) does
	// not synthesize a Type.AbsTm at all — invalid term-term applicant.
	s5 := Prgm{
		DefnTm{Name: TermName("id"), Type: idType, Body: idBody},
		DefnTm{Name: TermName("bad"), Type: idType, Body: calculus.TmAppTm{Fun: calculus.TmRef{Name: TermName("id")}, Arg: calculus.TmRef{Name: TermName("id")}}},
	}

	// S6: shadowing. AbsTm(x,T,AbsTm(x,T,Ref(x))) synthesizes to
	// AbsTm(x,T,AbsTm(x,T,T)) — the inner Ref(x) resolves via the
	// innermost x:T binding LookupTerm sees first, not the outer one, so
	// the synthesized type's innermost slot is T itself rather than some
	// stale outer classifier. T here is a bound ∀-quantified type
	// variable (A), the same closing-over S1/S4 use, so both occurrences
	// of the shadowed name stay identical by construction.
	shadowBody := calculus.TmAbsTy{Var: A, Kind: Star, Body: calculus.TmAbsTm{
		Var: x, Ann: calculus.TyRef{Name: A},
		Body: calculus.TmAbsTm{Var: x, Ann: calculus.TyRef{Name: A}, Body: calculus.TmRef{Name: x}},
	}}
	shadowType := calculus.TyAbsTy{Var: A, Kind: Star, Body: calculus.TyAbsTm{
		Var: x, Ann: calculus.TyRef{Name: A},
		Body: calculus.TyAbsTm{Var: x, Ann: calculus.TyRef{Name: A}, Body: calculus.TyRef{Name: A}},
	}}
	s6 := Prgm{DefnTm{Name: TermName("shadow"), Type: shadowType, Body: shadowBody}}

	return map[string]Prgm{
		"S1-identity":              s1,
		"S2-identity-misapplied":   s2,
		"S3-self-referential-type": s3,
		"S4-beta-equal-types":      s4,
		"S5-invalid-applicant":     s5,
		"S6-shadowing":             s6,
	}
}
