package calculus

// TermBinding is one entry of a closure's term-name association list: a
// closed term and its type.
type TermBinding struct {
	Name Name // TermNS
	Term Term
	Type Type
}

// TypeBinding is one entry of a closure's type-name association list: a
// type (closed in the closure's earlier entries) and its kind.
type TypeBinding struct {
	Name Name // TypeNS
	Type Type
	Kind Kind
}

// KindBinding is one entry of a closure's kind-name association list.
// No syntax in this calculus ever references a kind-name (Kind has no
// Ref variant), so this namespace is carried for fidelity to spec §3's
// closure definition but is otherwise inert.
type KindBinding struct {
	Name Name // KindNS
	Kind Kind
}

// Closure is a bundle of non-recursive, fully-elaborated definitions, as
// described in spec §3. Closure laws: no mutually recursive bindings;
// every bound term is closed; every bound type's free names lie within
// earlier entries of the same closure. Neither this type nor
// WellformedClosure enforces these laws: WellformedClosure only checks
// each binding's term against its type (or type against its kind) with
// the whole closure in scope.
type Closure struct {
	Terms []TermBinding
	Types []TypeBinding
	Kinds []KindBinding
}

// WithTerm returns a new closure with one more term binding appended.
// Closure values are never mutated in place, matching Context's
// persistent-structure discipline.
func (c *Closure) WithTerm(x Name, term Term, typ Type) *Closure {
	next := &Closure{Kinds: c.Kinds, Types: c.Types}
	next.Terms = append(append([]TermBinding{}, c.Terms...), TermBinding{Name: x, Term: term, Type: typ})
	return next
}

// WithType returns a new closure with one more type binding appended.
func (c *Closure) WithType(x Name, typ Type, kind Kind) *Closure {
	next := &Closure{Kinds: c.Kinds, Terms: c.Terms}
	next.Types = append(append([]TypeBinding{}, c.Types...), TypeBinding{Name: x, Type: typ, Kind: kind})
	return next
}

func (c *Closure) lookupTerm(x Name) (term Term, typ Type, found bool) {
	if c == nil {
		return nil, nil, false
	}
	for _, b := range c.Terms {
		if b.Name.Equal(x) {
			return b.Term, b.Type, true
		}
	}
	return nil, nil, false
}

func (c *Closure) lookupType(x Name) (typ Type, kind Kind, found bool) {
	if c == nil {
		return nil, nil, false
	}
	for _, b := range c.Types {
		if b.Name.Equal(x) {
			return b.Type, b.Kind, true
		}
	}
	return nil, nil, false
}

func (c *Closure) lookupKind(x Name) (kind Kind, found bool) {
	if c == nil {
		return nil, false
	}
	for _, b := range c.Kinds {
		if b.Name.Equal(x) {
			return b.Kind, true
		}
	}
	return nil, false
}
