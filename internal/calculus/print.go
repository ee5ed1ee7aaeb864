package calculus

// Print renders e using its String() method. It exists as a named entry
// point (spec §6's "printer" external interface) distinct from Go's
// fmt.Stringer convention: distinct constructs always print distinctly
// (Ref prints bare; term-level AbsTm "\x:T.", AbsTy "/\X::K."; type-level
// AbsTm "Pi x:S.", AbsTy "\X::K."; kind-level "Pi x:T." and "Pi X::K.";
// Iota "iota"; an application juxtaposes a term argument and brackets a
// type argument, "(f a)" versus "(f [T])"), and two α-equivalent
// expressions built from the same source names print identically, since
// String() never renames a bound variable — it just echoes whichever
// Name each AST node actually carries.
func Print(e Expr) string { return e.String() }

// AlphaEquivalent reports whether t1 and t2 are equal up to consistent
// renaming of bound variables, without consulting any context (so it
// never reduces — it is a purely syntactic check, unlike Unify). It
// mirrors unify.go's rename-the-right-side-to-the-left-side trick but
// stops short of whnf reduction, making it the right tool for tests that
// want to assert two ASTs are "the same program" without also asserting
// they are β/δ-convertible.
func AlphaEquivalent(t1, t2 Type) bool {
	return alphaEqType(t1, t2)
}

func alphaEqTerm(t1, t2 Term) bool {
	switch a := t1.(type) {
	case TmRef:
		b, ok := t2.(TmRef)
		return ok && a.Name.Equal(b.Name)
	case TmAbsTm:
		b, ok := t2.(TmAbsTm)
		if !ok {
			return false
		}
		return alphaEqType(a.Ann, renameType(b.Var, a.Var, b.Ann)) &&
			alphaEqTerm(a.Body, renameTerm(b.Var, a.Var, b.Body))
	case TmAppTm:
		b, ok := t2.(TmAppTm)
		return ok && alphaEqTerm(a.Fun, b.Fun) && alphaEqTerm(a.Arg, b.Arg)
	case TmAbsTy:
		b, ok := t2.(TmAbsTy)
		if !ok {
			return false
		}
		return alphaEqKind(a.Kind, renameKind(b.Var, a.Var, b.Kind)) &&
			alphaEqTerm(a.Body, renameTerm(b.Var, a.Var, b.Body))
	case TmAppTy:
		b, ok := t2.(TmAppTy)
		return ok && alphaEqTerm(a.Fun, b.Fun) && alphaEqType(a.Arg, b.Arg)
	default:
		return false
	}
}

func alphaEqType(t1, t2 Type) bool {
	switch a := t1.(type) {
	case TyRef:
		b, ok := t2.(TyRef)
		return ok && a.Name.Equal(b.Name)
	case TyAbsTm:
		b, ok := t2.(TyAbsTm)
		if !ok {
			return false
		}
		return alphaEqType(a.Ann, renameType(b.Var, a.Var, b.Ann)) &&
			alphaEqType(a.Body, renameType(b.Var, a.Var, b.Body))
	case TyAppTm:
		b, ok := t2.(TyAppTm)
		return ok && alphaEqType(a.Fun, b.Fun) && alphaEqTerm(a.Arg, b.Arg)
	case TyAbsTy:
		b, ok := t2.(TyAbsTy)
		if !ok {
			return false
		}
		return alphaEqKind(a.Kind, renameKind(b.Var, a.Var, b.Kind)) &&
			alphaEqType(a.Body, renameType(b.Var, a.Var, b.Body))
	case TyAppTy:
		b, ok := t2.(TyAppTy)
		return ok && alphaEqType(a.Fun, b.Fun) && alphaEqType(a.Arg, b.Arg)
	case TyIota:
		b, ok := t2.(TyIota)
		return ok && alphaEqType(a.Body, renameType(b.Var, a.Var, b.Body))
	default:
		return false
	}
}

func alphaEqKind(k1, k2 Kind) bool {
	switch a := k1.(type) {
	case KdUnit:
		_, ok := k2.(KdUnit)
		return ok
	case KdAbsTm:
		b, ok := k2.(KdAbsTm)
		if !ok {
			return false
		}
		return alphaEqType(a.Ann, renameType(b.Var, a.Var, b.Ann)) &&
			alphaEqKind(a.Body, renameKind(b.Var, a.Var, b.Body))
	case KdAbsTy:
		b, ok := k2.(KdAbsTy)
		if !ok {
			return false
		}
		return alphaEqKind(a.Ann, renameKind(b.Var, a.Var, b.Ann)) &&
			alphaEqKind(a.Body, renameKind(b.Var, a.Var, b.Body))
	default:
		return false
	}
}
