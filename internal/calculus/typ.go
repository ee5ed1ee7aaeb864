package calculus

import "fmt"

// Type is the interface satisfied by every type-level syntax node: the
// six variants enumerated in spec §3 (Ref, AbsTm, AppTm, AbsTy, AppTy,
// Iota).
type Type interface {
	isType()
	String() string
}

// TyRef is a reference to a type-bound variable, Ref(X).
type TyRef struct {
	Name Name // TypeNS
}

func (TyRef) isType() {}
func (t TyRef) String() string { return t.Name.String() }

// TyAbsTm is the dependent function type Π(x : S). T. It is also the
// classifier used for a term-level AbsTm, so it doubles as λ-at-the-type
// level and as the "Π-term" rule in spec §3's table.
type TyAbsTm struct {
	Var  Name // TermNS
	Ann  Type
	Body Type
}

func (TyAbsTm) isType() {}
func (t TyAbsTm) String() string {
	return fmt.Sprintf("(Pi %s:%s. %s)", t.Var, t.Ann, t.Body)
}

// TyAppTm is type-to-term application: T a.
type TyAppTm struct {
	Fun Type
	Arg Term
}

func (TyAppTm) isType() {}
func (t TyAppTm) String() string {
	return fmt.Sprintf("(%s %s)", t.Fun, t.Arg)
}

// TyAbsTy is λ-abstraction over a type at the type level: λ(X :: K). T.
type TyAbsTy struct {
	Var  Name // TypeNS
	Kind Kind
	Body Type
}

func (TyAbsTy) isType() {}
func (t TyAbsTy) String() string {
	return fmt.Sprintf("(\\%s::%s. %s)", t.Var, t.Kind, t.Body)
}

// TyAppTy is type-to-type application: S T.
type TyAppTy struct {
	Fun Type
	Arg Type
}

func (TyAppTy) isType() {}
func (t TyAppTy) String() string {
	return fmt.Sprintf("(%s [%s])", t.Fun, t.Arg)
}

// TyIota is the self type ι x. T: the type of terms a satisfying
// a : T[x := a]. Introduction and elimination both live in checkType.
type TyIota struct {
	Var  Name // TermNS
	Body Type
}

func (TyIota) isType() {}
func (t TyIota) String() string {
	return fmt.Sprintf("(iota %s. %s)", t.Var, t.Body)
}
