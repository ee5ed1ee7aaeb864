package calculus

// Unify decides equality per spec §4.8: it holds exactly when e1 and e2
// have a common β/δ-reduct up to α-equivalence. At every level it first
// reduces both operands to whnf (congruence closure of β/δ), then
// matches heads structurally, renaming the right operand's binder to
// the left operand's binder (rather than generating fresh names) to
// realize α-equivalence, per the procedure in spec §4.8.
func Unify(e1, e2 Expr, ctx *Context) error {
	return unifyAt(e1, e2, ctx, e1, e2)
}

// UnifyType and UnifyKind are sort-specific convenience wrappers; the
// bidirectional checker only ever unifies like-sorted pairs (two Types
// or two Kinds), never raw Exprs.
func UnifyType(t1, t2 Type, ctx *Context) error {
	return Unify(OfType(t1), OfType(t2), ctx)
}

func UnifyKind(k1, k2 Kind, ctx *Context) error {
	return Unify(OfKind(k1), OfKind(k2), ctx)
}

func mismatch(inner1, inner2, outer1, outer2 Expr) error {
	return &UnifyError{Inner1: inner1, Inner2: inner2, Outer1: outer1, Outer2: outer2}
}

func unifyAt(e1, e2 Expr, ctx *Context, outer1, outer2 Expr) error {
	w1, err := Evaluate(e1, ctx)
	if err != nil {
		return err
	}
	w2, err := Evaluate(e2, ctx)
	if err != nil {
		return err
	}
	if w1.Sort != w2.Sort {
		return mismatch(w1, w2, outer1, outer2)
	}
	switch w1.Sort {
	case SortTerm:
		return unifyTerm(w1.Term, w2.Term, ctx, outer1, outer2)
	case SortType:
		return unifyType(w1.Type, w2.Type, ctx, outer1, outer2)
	case SortKind:
		return unifyKind(w1.Kind, w2.Kind, ctx, outer1, outer2)
	default:
		return nil
	}
}

func unifyTerm(t1, t2 Term, ctx *Context, outer1, outer2 Expr) error {
	switch a := t1.(type) {
	case TmRef:
		b, ok := t2.(TmRef)
		if !ok || !a.Name.Equal(b.Name) {
			return mismatch(OfTerm(t1), OfTerm(t2), outer1, outer2)
		}
		return nil
	case TmAbsTm:
		b, ok := t2.(TmAbsTm)
		if !ok {
			return mismatch(OfTerm(t1), OfTerm(t2), outer1, outer2)
		}
		rAnn := renameType(b.Var, a.Var, b.Ann)
		rBody := renameTerm(b.Var, a.Var, b.Body)
		if err := unifyAt(OfType(a.Ann), OfType(rAnn), ctx, outer1, outer2); err != nil {
			return err
		}
		return unifyAt(OfTerm(a.Body), OfTerm(rBody), ctx, outer1, outer2)
	case TmAppTm:
		b, ok := t2.(TmAppTm)
		if !ok {
			return mismatch(OfTerm(t1), OfTerm(t2), outer1, outer2)
		}
		if err := unifyAt(OfTerm(a.Fun), OfTerm(b.Fun), ctx, outer1, outer2); err != nil {
			return err
		}
		return unifyAt(OfTerm(a.Arg), OfTerm(b.Arg), ctx, outer1, outer2)
	case TmAbsTy:
		b, ok := t2.(TmAbsTy)
		if !ok {
			return mismatch(OfTerm(t1), OfTerm(t2), outer1, outer2)
		}
		rKind := renameKind(b.Var, a.Var, b.Kind)
		rBody := renameTerm(b.Var, a.Var, b.Body)
		if err := unifyAt(OfKind(a.Kind), OfKind(rKind), ctx, outer1, outer2); err != nil {
			return err
		}
		return unifyAt(OfTerm(a.Body), OfTerm(rBody), ctx, outer1, outer2)
	case TmAppTy:
		b, ok := t2.(TmAppTy)
		if !ok {
			return mismatch(OfTerm(t1), OfTerm(t2), outer1, outer2)
		}
		if err := unifyAt(OfTerm(a.Fun), OfTerm(b.Fun), ctx, outer1, outer2); err != nil {
			return err
		}
		return unifyAt(OfType(a.Arg), OfType(b.Arg), ctx, outer1, outer2)
	default:
		return mismatch(OfTerm(t1), OfTerm(t2), outer1, outer2)
	}
}

func unifyType(t1, t2 Type, ctx *Context, outer1, outer2 Expr) error {
	switch a := t1.(type) {
	case TyRef:
		b, ok := t2.(TyRef)
		if !ok || !a.Name.Equal(b.Name) {
			return mismatch(OfType(t1), OfType(t2), outer1, outer2)
		}
		return nil
	case TyAbsTm:
		b, ok := t2.(TyAbsTm)
		if !ok {
			return mismatch(OfType(t1), OfType(t2), outer1, outer2)
		}
		rAnn := renameType(b.Var, a.Var, b.Ann)
		rBody := renameType(b.Var, a.Var, b.Body)
		if err := unifyAt(OfType(a.Ann), OfType(rAnn), ctx, outer1, outer2); err != nil {
			return err
		}
		return unifyAt(OfType(a.Body), OfType(rBody), ctx, outer1, outer2)
	case TyAppTm:
		b, ok := t2.(TyAppTm)
		if !ok {
			return mismatch(OfType(t1), OfType(t2), outer1, outer2)
		}
		if err := unifyAt(OfType(a.Fun), OfType(b.Fun), ctx, outer1, outer2); err != nil {
			return err
		}
		return unifyAt(OfTerm(a.Arg), OfTerm(b.Arg), ctx, outer1, outer2)
	case TyAbsTy:
		b, ok := t2.(TyAbsTy)
		if !ok {
			return mismatch(OfType(t1), OfType(t2), outer1, outer2)
		}
		rKind := renameKind(b.Var, a.Var, b.Kind)
		rBody := renameType(b.Var, a.Var, b.Body)
		if err := unifyAt(OfKind(a.Kind), OfKind(rKind), ctx, outer1, outer2); err != nil {
			return err
		}
		return unifyAt(OfType(a.Body), OfType(rBody), ctx, outer1, outer2)
	case TyAppTy:
		b, ok := t2.(TyAppTy)
		if !ok {
			return mismatch(OfType(t1), OfType(t2), outer1, outer2)
		}
		if err := unifyAt(OfType(a.Fun), OfType(b.Fun), ctx, outer1, outer2); err != nil {
			return err
		}
		return unifyAt(OfType(a.Arg), OfType(b.Arg), ctx, outer1, outer2)
	case TyIota:
		b, ok := t2.(TyIota)
		if !ok {
			return mismatch(OfType(t1), OfType(t2), outer1, outer2)
		}
		rBody := renameType(b.Var, a.Var, b.Body)
		return unifyAt(OfType(a.Body), OfType(rBody), ctx, outer1, outer2)
	default:
		return mismatch(OfType(t1), OfType(t2), outer1, outer2)
	}
}

func unifyKind(k1, k2 Kind, ctx *Context, outer1, outer2 Expr) error {
	switch a := k1.(type) {
	case KdUnit:
		if _, ok := k2.(KdUnit); !ok {
			return mismatch(OfKind(k1), OfKind(k2), outer1, outer2)
		}
		return nil
	case KdAbsTm:
		b, ok := k2.(KdAbsTm)
		if !ok {
			return mismatch(OfKind(k1), OfKind(k2), outer1, outer2)
		}
		rAnn := renameType(b.Var, a.Var, b.Ann)
		rBody := renameKind(b.Var, a.Var, b.Body)
		if err := unifyAt(OfType(a.Ann), OfType(rAnn), ctx, outer1, outer2); err != nil {
			return err
		}
		return unifyAt(OfKind(a.Body), OfKind(rBody), ctx, outer1, outer2)
	case KdAbsTy:
		b, ok := k2.(KdAbsTy)
		if !ok {
			return mismatch(OfKind(k1), OfKind(k2), outer1, outer2)
		}
		rAnn := renameKind(b.Var, a.Var, b.Ann)
		rBody := renameKind(b.Var, a.Var, b.Body)
		if err := unifyAt(OfKind(a.Ann), OfKind(rAnn), ctx, outer1, outer2); err != nil {
			return err
		}
		return unifyAt(OfKind(a.Body), OfKind(rBody), ctx, outer1, outer2)
	default:
		return mismatch(OfKind(k1), OfKind(k2), outer1, outer2)
	}
}
