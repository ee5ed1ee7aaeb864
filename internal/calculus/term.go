package calculus

import "fmt"

// Term is the interface satisfied by every term-level syntax node: the
// five variants enumerated in spec §3 (Ref, AbsTm, AppTm, AbsTy, AppTy).
type Term interface {
	isTerm()
	String() string
}

// TmRef is a reference to a term-bound variable, Ref(x).
type TmRef struct {
	Name Name // must be in TermNS
}

func (TmRef) isTerm() {}
func (t TmRef) String() string { return t.Name.String() }

// TmAbsTm is λ-abstraction over a term: λ(x : T). a.
type TmAbsTm struct {
	Var  Name // TermNS
	Ann  Type
	Body Term
}

func (TmAbsTm) isTerm() {}
func (t TmAbsTm) String() string {
	return fmt.Sprintf("(\\%s:%s. %s)", t.Var, t.Ann, t.Body)
}

// TmAppTm is term-to-term application: a b.
type TmAppTm struct {
	Fun Term
	Arg Term
}

func (TmAppTm) isTerm() {}
func (t TmAppTm) String() string {
	return fmt.Sprintf("(%s %s)", t.Fun, t.Arg)
}

// TmAbsTy is λ-abstraction over a type: Λ(X :: K). a.
type TmAbsTy struct {
	Var  Name // TypeNS
	Kind Kind
	Body Term
}

func (TmAbsTy) isTerm() {}
func (t TmAbsTy) String() string {
	return fmt.Sprintf("(/\\%s::%s. %s)", t.Var, t.Kind, t.Body)
}

// TmAppTy is term-to-type application: a [T].
type TmAppTy struct {
	Fun Term
	Arg Type
}

func (TmAppTy) isTerm() {}
func (t TmAppTy) String() string {
	return fmt.Sprintf("(%s [%s])", t.Fun, t.Arg)
}
