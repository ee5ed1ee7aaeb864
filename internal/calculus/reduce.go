package calculus

// ReduceStep performs the one-step weak-head β/δ reduction from spec
// §4.7. It returns the next expression and stepped=true when a step was
// taken; stepped=false (and a nil error) means e is already in whnf.
// An error is returned only when an application's operator evaluates to
// a head shape the applicable rule does not expect (an invalid
// applicant), exactly as spec §4.7 specifies per case.
func ReduceStep(e Expr, ctx *Context) (next Expr, stepped bool, err error) {
	switch e.Sort {
	case SortTerm:
		return reduceTerm(e.Term, ctx)
	case SortType:
		return reduceType(e.Type, ctx)
	case SortKind:
		// All kinds are already in whnf: Unit and the two Π-forms never
		// reduce.
		return Expr{}, false, nil
	default:
		return Expr{}, false, nil
	}
}

func reduceTerm(t Term, ctx *Context) (Expr, bool, error) {
	switch t := t.(type) {
	case TmRef:
		if def, _, ok := ctx.LookupTerm(t.Name); ok && def != nil {
			return OfTerm(def), true, nil
		}
		return Expr{}, false, nil
	case TmAppTm:
		fn, err := Evaluate(OfTerm(t.Fun), ctx)
		if err != nil {
			return Expr{}, false, err
		}
		abs, ok := fn.Term.(TmAbsTm)
		if !ok {
			return Expr{}, false, &InvalidApplicantError{Variant: "term-term", Applicant: fn}
		}
		return Substitute(abs.Var, OfTerm(t.Arg), OfTerm(abs.Body)), true, nil
	case TmAppTy:
		fn, err := Evaluate(OfTerm(t.Fun), ctx)
		if err != nil {
			return Expr{}, false, err
		}
		abs, ok := fn.Term.(TmAbsTy)
		if !ok {
			return Expr{}, false, &InvalidApplicantError{Variant: "term-type", Applicant: fn}
		}
		return Substitute(abs.Var, OfType(t.Arg), OfTerm(abs.Body)), true, nil
	default:
		// TmRef handled above; TmAbsTm and TmAbsTy are already whnf.
		return Expr{}, false, nil
	}
}

func reduceType(t Type, ctx *Context) (Expr, bool, error) {
	switch t := t.(type) {
	case TyRef:
		if def, _, ok := ctx.LookupType(t.Name); ok && def != nil {
			return OfType(def), true, nil
		}
		return Expr{}, false, nil
	case TyAppTm:
		fn, err := Evaluate(OfType(t.Fun), ctx)
		if err != nil {
			return Expr{}, false, err
		}
		abs, ok := fn.Type.(TyAbsTm)
		if !ok {
			return Expr{}, false, &InvalidApplicantError{Variant: "type-term", Applicant: fn}
		}
		return Substitute(abs.Var, OfTerm(t.Arg), OfType(abs.Body)), true, nil
	case TyAppTy:
		fn, err := Evaluate(OfType(t.Fun), ctx)
		if err != nil {
			return Expr{}, false, err
		}
		abs, ok := fn.Type.(TyAbsTy)
		if !ok {
			return Expr{}, false, &InvalidApplicantError{Variant: "type-type", Applicant: fn}
		}
		return Substitute(abs.Var, OfType(t.Arg), OfType(abs.Body)), true, nil
	default:
		// TyAbsTm, TyAbsTy, and Iota are already whnf.
		return Expr{}, false, nil
	}
}

// Evaluate drives ReduceStep to its fixed point and returns the whnf
// normal form, per spec §4.7. The fixed point itself is an iterative
// loop, so a long chain of successive reduction steps does not deepen
// the call stack. Evaluating an application's head inside ReduceStep is
// a recursive Evaluate call, so head-nested applications recurse, as do
// the structurally-recursive helpers (Substitute, Unify, free-name
// analysis); Go's growable goroutine stacks accommodate that recursion.
func Evaluate(e Expr, ctx *Context) (Expr, error) {
	cur := e
	for {
		next, stepped, err := ReduceStep(cur, ctx)
		if err != nil {
			return Expr{}, err
		}
		if !stepped {
			return cur, nil
		}
		cur = next
	}
}
