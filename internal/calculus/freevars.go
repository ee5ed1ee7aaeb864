package calculus

// FreeTermNames returns the free term-names occurring in e, per spec
// §4.1: every Ref(x) in the term namespace that is not shadowed by an
// enclosing term-binder (AbsTm at any level, Iota). No α-renaming is
// performed; this is a purely semantic traversal.
func FreeTermNames(e Expr) []Name {
	switch e.Sort {
	case SortTerm:
		return dedupeNames(freeNamesInTerm(e.Term, true))
	case SortType:
		return dedupeNames(freeNamesInType(e.Type, true))
	case SortKind:
		return dedupeNames(freeNamesInKind(e.Kind, true))
	default:
		return nil
	}
}

// FreeTypeNames returns the free type-names occurring in e, per spec
// §4.1: every Ref(X) in the type namespace not shadowed by an enclosing
// type-binder (AbsTy at any level).
func FreeTypeNames(e Expr) []Name {
	switch e.Sort {
	case SortTerm:
		return dedupeNames(freeNamesInTerm(e.Term, false))
	case SortType:
		return dedupeNames(freeNamesInType(e.Type, false))
	case SortKind:
		return dedupeNames(freeNamesInKind(e.Kind, false))
	default:
		return nil
	}
}

// wantTerm selects whether the traversal collects term-names (true) or
// type-names (false); the two passes share identical recursion shape so
// a single parameterized walk avoids duplicating it twice per sort.

func freeNamesInTerm(t Term, wantTerm bool) []Name {
	switch t := t.(type) {
	case TmRef:
		if wantTerm {
			return []Name{t.Name}
		}
		return nil
	case TmAbsTm:
		ann := freeNamesInType(t.Ann, wantTerm)
		body := freeNamesInTerm(t.Body, wantTerm)
		if wantTerm {
			body = removeName(body, t.Var)
		}
		return append(ann, body...)
	case TmAppTm:
		return append(freeNamesInTerm(t.Fun, wantTerm), freeNamesInTerm(t.Arg, wantTerm)...)
	case TmAbsTy:
		kind := freeNamesInKind(t.Kind, wantTerm)
		body := freeNamesInTerm(t.Body, wantTerm)
		if !wantTerm {
			body = removeName(body, t.Var)
		}
		return append(kind, body...)
	case TmAppTy:
		return append(freeNamesInTerm(t.Fun, wantTerm), freeNamesInType(t.Arg, wantTerm)...)
	default:
		return nil
	}
}

func freeNamesInType(t Type, wantTerm bool) []Name {
	switch t := t.(type) {
	case TyRef:
		if !wantTerm {
			return []Name{t.Name}
		}
		return nil
	case TyAbsTm:
		ann := freeNamesInType(t.Ann, wantTerm)
		body := freeNamesInType(t.Body, wantTerm)
		if wantTerm {
			body = removeName(body, t.Var)
		}
		return append(ann, body...)
	case TyAppTm:
		return append(freeNamesInType(t.Fun, wantTerm), freeNamesInTerm(t.Arg, wantTerm)...)
	case TyAbsTy:
		kind := freeNamesInKind(t.Kind, wantTerm)
		body := freeNamesInType(t.Body, wantTerm)
		if !wantTerm {
			body = removeName(body, t.Var)
		}
		return append(kind, body...)
	case TyAppTy:
		return append(freeNamesInType(t.Fun, wantTerm), freeNamesInType(t.Arg, wantTerm)...)
	case TyIota:
		body := freeNamesInType(t.Body, wantTerm)
		if wantTerm {
			body = removeName(body, t.Var)
		}
		return body
	default:
		return nil
	}
}

func freeNamesInKind(k Kind, wantTerm bool) []Name {
	switch k := k.(type) {
	case KdUnit:
		return nil
	case KdAbsTm:
		ann := freeNamesInType(k.Ann, wantTerm)
		body := freeNamesInKind(k.Body, wantTerm)
		if wantTerm {
			body = removeName(body, k.Var)
		}
		return append(ann, body...)
	case KdAbsTy:
		ann := freeNamesInKind(k.Ann, wantTerm)
		body := freeNamesInKind(k.Body, wantTerm)
		if !wantTerm {
			body = removeName(body, k.Var)
		}
		return append(ann, body...)
	default:
		return nil
	}
}

func removeName(names []Name, x Name) []Name {
	out := names[:0:0]
	for _, n := range names {
		if !n.Equal(x) {
			out = append(out, n)
		}
	}
	return out
}

func dedupeNames(names []Name) []Name {
	seen := make(map[Name]bool, len(names))
	out := make([]Name, 0, len(names))
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}

func containsName(names []Name, x Name) bool {
	for _, n := range names {
		if n.Equal(x) {
			return true
		}
	}
	return false
}
