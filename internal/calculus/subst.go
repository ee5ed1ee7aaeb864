package calculus

import (
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/iotalang/iotacheck/internal/config"
)

// Substitute implements [x ↦ e] E from spec §4.2: capture-*un*aware
// substitution, exactly as the source calculus specifies. x and e must
// be in the same namespace (Substitute panics otherwise — this is an
// internal invariant violation, not a user-facing error condition; spec
// §4.2 states substitution itself never fails).
//
// The source text is required to supply globally fresh binder names at
// every binder, so no α-renaming happens here: a binder B(y, …) simply
// stops descending into the sub-expressions it governs when x == y, per
// the shadowing rule in spec §4.2. Callers that cannot guarantee
// globally-unique binder names should use SubstituteFresh instead.
func Substitute(x Name, e Expr, target Expr) Expr {
	requireMatchingSort(x, e)
	c := &substCtx{x: x, e: e}
	return c.expr(target)
}

// SubstituteFresh is the capture-avoiding strengthening spec §4.2 and §9
// permit as an optional "MAY": whenever descending under a binder would
// let e's free names collide with that binder's variable, the binder
// (and its bound occurrences) is renamed to a globally fresh name first.
// Freshness is minted by suffixing the original identifier with a uuid,
// mirroring how the teacher corpus mints collision-free identifiers
// elsewhere. The default checker path never calls this; it exists for
// front-ends that cannot promise globally-unique source names.
func SubstituteFresh(x Name, e Expr, target Expr) Expr {
	requireMatchingSort(x, e)
	c := &substCtx{x: x, e: e, freshen: uuidFreshen}
	return c.expr(target)
}

func requireMatchingSort(x Name, e Expr) {
	var want Sort
	switch x.NS {
	case TermNS:
		want = SortTerm
	case TypeNS:
		want = SortType
	case KindNS:
		want = SortKind
	}
	if e.Sort != want {
		panic(fmt.Sprintf("calculus: Substitute namespace mismatch: name %s (%s) given replacement of sort %s", x, x.NS, e.Sort))
	}
}

// freshenCounter backs uuidFreshen's test-mode suffixes: a plain
// incrementing counter, so two runs of the same test produce identical
// renamed names instead of a different uuid suffix each time.
var freshenCounter uint64

// uuidFreshen mints a collision-free name by suffixing the original
// identifier. Under config.IsTestMode it suffixes with an incrementing
// counter instead of a random uuid, so golden-output assertions over
// SubstituteFresh stay deterministic across runs, matching the teacher's
// own TVar.String()/KVar.String() test-mode behavior.
func uuidFreshen(n Name) Name {
	if config.IsTestMode {
		next := atomic.AddUint64(&freshenCounter, 1)
		return Name{NS: n.NS, Ident: n.Ident + "$" + strconv.FormatUint(next, 10)}
	}
	return Name{NS: n.NS, Ident: n.Ident + "$" + uuid.NewString()[:8]}
}

type substCtx struct {
	x       Name
	e       Expr
	freshen func(Name) Name // nil disables capture avoidance
}

func (c *substCtx) expr(target Expr) Expr {
	switch target.Sort {
	case SortTerm:
		return OfTerm(c.term(target.Term))
	case SortType:
		return OfType(c.typ(target.Type))
	case SortKind:
		return OfKind(c.kind(target.Kind))
	default:
		return target
	}
}

// captures reports whether binder would be captured by e if the
// substitution descended under it unrenamed. It is called only for
// binders that do not shadow x, and always reports false when capture
// avoidance is disabled.
func (c *substCtx) captures(binder Name) bool {
	if c.freshen == nil {
		return false
	}
	switch binder.NS {
	case TermNS:
		return containsName(FreeTermNames(c.e), binder)
	case TypeNS:
		return containsName(FreeTypeNames(c.e), binder)
	default:
		return false
	}
}

func refExprFor(n Name) Expr {
	switch n.NS {
	case TermNS:
		return OfTerm(TmRef{Name: n})
	case TypeNS:
		return OfType(TyRef{Name: n})
	default:
		panic(fmt.Sprintf("calculus: cannot rename a binder in namespace %s", n.NS))
	}
}

// renameTerm, renameType, and renameKind perform the plain
// (capture-unaware) rename old -> new over a subtree; correctness relies
// only on new being fresh, so they delegate to ordinary Substitute.
func renameTerm(old, new_ Name, t Term) Term {
	c := &substCtx{x: old, e: refExprFor(new_)}
	return c.term(t)
}
func renameType(old, new_ Name, t Type) Type {
	c := &substCtx{x: old, e: refExprFor(new_)}
	return c.typ(t)
}
func renameKind(old, new_ Name, k Kind) Kind {
	c := &substCtx{x: old, e: refExprFor(new_)}
	return c.kind(k)
}

func (c *substCtx) term(t Term) Term {
	switch t := t.(type) {
	case TmRef:
		if c.x.NS == TermNS && c.x.Equal(t.Name) {
			return c.e.Term
		}
		return t
	case TmAbsTm:
		ann := c.typ(t.Ann)
		if c.x.NS == TermNS && c.x.Equal(t.Var) {
			return TmAbsTm{Var: t.Var, Ann: ann, Body: t.Body}
		}
		v, body := c.enterBinder(t.Var, t.Body)
		return TmAbsTm{Var: v, Ann: ann, Body: c.term(body.(Term))}
	case TmAppTm:
		return TmAppTm{Fun: c.term(t.Fun), Arg: c.term(t.Arg)}
	case TmAbsTy:
		kind := c.kind(t.Kind)
		if c.x.NS == TypeNS && c.x.Equal(t.Var) {
			return TmAbsTy{Var: t.Var, Kind: kind, Body: t.Body}
		}
		v, body := c.enterBinder(t.Var, t.Body)
		return TmAbsTy{Var: v, Kind: kind, Body: c.term(body.(Term))}
	case TmAppTy:
		return TmAppTy{Fun: c.term(t.Fun), Arg: c.typ(t.Arg)}
	default:
		return t
	}
}

func (c *substCtx) typ(t Type) Type {
	switch t := t.(type) {
	case TyRef:
		if c.x.NS == TypeNS && c.x.Equal(t.Name) {
			return c.e.Type
		}
		return t
	case TyAbsTm:
		ann := c.typ(t.Ann)
		if c.x.NS == TermNS && c.x.Equal(t.Var) {
			return TyAbsTm{Var: t.Var, Ann: ann, Body: t.Body}
		}
		v, body := c.enterBinder(t.Var, t.Body)
		return TyAbsTm{Var: v, Ann: ann, Body: c.typ(body.(Type))}
	case TyAppTm:
		return TyAppTm{Fun: c.typ(t.Fun), Arg: c.term(t.Arg)}
	case TyAbsTy:
		kind := c.kind(t.Kind)
		if c.x.NS == TypeNS && c.x.Equal(t.Var) {
			return TyAbsTy{Var: t.Var, Kind: kind, Body: t.Body}
		}
		v, body := c.enterBinder(t.Var, t.Body)
		return TyAbsTy{Var: v, Kind: kind, Body: c.typ(body.(Type))}
	case TyAppTy:
		return TyAppTy{Fun: c.typ(t.Fun), Arg: c.typ(t.Arg)}
	case TyIota:
		if c.x.NS == TermNS && c.x.Equal(t.Var) {
			return t
		}
		v, body := c.enterBinder(t.Var, t.Body)
		return TyIota{Var: v, Body: c.typ(body.(Type))}
	default:
		return t
	}
}

func (c *substCtx) kind(k Kind) Kind {
	switch k := k.(type) {
	case KdUnit:
		return k
	case KdAbsTm:
		ann := c.typ(k.Ann)
		if c.x.NS == TermNS && c.x.Equal(k.Var) {
			return KdAbsTm{Var: k.Var, Ann: ann, Body: k.Body}
		}
		v, body := c.enterBinder(k.Var, k.Body)
		return KdAbsTm{Var: v, Ann: ann, Body: c.kind(body.(Kind))}
	case KdAbsTy:
		ann := c.kind(k.Ann)
		if c.x.NS == TypeNS && c.x.Equal(k.Var) {
			return KdAbsTy{Var: k.Var, Ann: ann, Body: k.Body}
		}
		v, body := c.enterBinder(k.Var, k.Body)
		return KdAbsTy{Var: v, Ann: ann, Body: c.kind(body.(Kind))}
	default:
		return k
	}
}

// enterBinder applies capture avoidance (if enabled) before recursing
// under a binder that does not shadow x: if x's replacement e would
// capture v, v and its bound occurrences in body are renamed first.
func (c *substCtx) enterBinder(v Name, body interface{}) (Name, interface{}) {
	if !c.captures(v) {
		return v, body
	}
	fresh := c.freshen(v)
	switch b := body.(type) {
	case Term:
		return fresh, renameTerm(v, fresh, b)
	case Type:
		return fresh, renameType(v, fresh, b)
	case Kind:
		return fresh, renameKind(v, fresh, b)
	default:
		return fresh, body
	}
}
