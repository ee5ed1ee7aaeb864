// Package calculus implements the bidirectional type/kind checker and
// β-normalizing evaluator for the three-level dependently-typed calculus:
// terms, types (including the self type ι), and kinds.
package calculus

import "fmt"

// Namespace tags which of the three disjoint namespaces a Name inhabits.
// Substitution, lookup, and binder shadowing are all namespace-scoped:
// a term-name can never be confused with a type-name or a kind-name even
// when their Ident strings coincide.
type Namespace int

const (
	TermNS Namespace = iota
	TypeNS
	KindNS
)

func (ns Namespace) String() string {
	switch ns {
	case TermNS:
		return "term"
	case TypeNS:
		return "type"
	case KindNS:
		return "kind"
	default:
		return fmt.Sprintf("Namespace(%d)", int(ns))
	}
}

// Name is the single polymorphic name carrier described in spec §3: a
// namespace tag plus a user-supplied identifier string. Identity is
// structural equality of the whole value, so two Names are the same name
// iff both their namespace and their Ident agree.
type Name struct {
	NS    Namespace
	Ident string
}

// TermName, TypeName, and KindName construct Names in the respective
// namespace. The grammar collaborator is expected to mint Names through
// these constructors so namespace tagging can never be forgotten.
func TermName(ident string) Name { return Name{NS: TermNS, Ident: ident} }
func TypeName(ident string) Name { return Name{NS: TypeNS, Ident: ident} }
func KindName(ident string) Name { return Name{NS: KindNS, Ident: ident} }

// Equal reports whether two Names are the same namespace and identifier.
func (n Name) Equal(other Name) bool {
	return n.NS == other.NS && n.Ident == other.Ident
}

// String returns the printable form of a Name. Per the printer contract
// in spec §6, α-equivalent expressions with the same source-supplied
// names print identically — since we perform no internal renaming of
// user names, this is simply the identifier.
func (n Name) String() string {
	return n.Ident
}
