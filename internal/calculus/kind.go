package calculus

import "fmt"

// Kind is the interface satisfied by every kind-level syntax node: Unit
// (the kind ⋆) plus the two Π-forms enumerated in spec §3.
type Kind interface {
	isKind()
	String() string
}

// KdUnit is the kind of proper types, ⋆.
type KdUnit struct{}

func (KdUnit) isKind() {}
func (KdUnit) String() string { return "*" }

// KdAbsTm is Π(x : T). K, the kind of a type constructor depending on a
// term.
type KdAbsTm struct {
	Var  Name // TermNS
	Ann  Type
	Body Kind
}

func (KdAbsTm) isKind() {}
func (k KdAbsTm) String() string {
	return fmt.Sprintf("(Pi %s:%s. %s)", k.Var, k.Ann, k.Body)
}

// KdAbsTy is Π(X :: K). L, the kind of a type constructor depending on a
// type.
type KdAbsTy struct {
	Var  Name // TypeNS
	Ann  Kind
	Body Kind
}

func (KdAbsTy) isKind() {}
func (k KdAbsTy) String() string {
	return fmt.Sprintf("(Pi %s::%s. %s)", k.Var, k.Ann, k.Body)
}

// Star is the shared canonical instance of the kind ⋆.
var Star Kind = KdUnit{}
