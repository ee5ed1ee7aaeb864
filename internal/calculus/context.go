package calculus

// frameKind tags which of the four context frame shapes from spec §3 a
// Context node is: Empty | Typing | Kinding | Closure.
type frameKind int

const (
	frameEmpty frameKind = iota
	frameTyping
	frameKinding
	frameClosureFrame
)

// Context is the leftward-growing, immutable persistent stack described
// in spec §3: each value is one frame plus a pointer to its tail. Frames
// are pushed by Typing/Kinding/WithClosure and are never mutated in
// place; "popping" a frame is simply discarding the pushed Context and
// going back to holding its tail, which is exactly how checking under a
// binder works (push, recurse, let the pushed value go out of scope).
type Context struct {
	frame   frameKind
	name    Name
	typ     Type
	kind    Kind
	closure *Closure
	tail    *Context
}

// Empty is the bottom of every context.
var Empty = &Context{frame: frameEmpty}

// Typing pushes a term-name typing frame: Typing(x, T, ctx).
func (ctx *Context) Typing(x Name, t Type) *Context {
	return &Context{frame: frameTyping, name: x, typ: t, tail: ctx}
}

// Kinding pushes a type-name kinding frame: Kinding(X, K, ctx).
func (ctx *Context) Kinding(x Name, k Kind) *Context {
	return &Context{frame: frameKinding, name: x, kind: k, tail: ctx}
}

// WithClosure pushes a closure frame: Closure(clo, ctx).
func (ctx *Context) WithClosure(clo *Closure) *Context {
	return &Context{frame: frameClosureFrame, closure: clo, tail: ctx}
}

// Tail returns the frame beneath the top one; calling it on Empty
// returns Empty again (Empty has no tail to fall below).
func (ctx *Context) Tail() *Context {
	if ctx.frame == frameEmpty {
		return ctx
	}
	return ctx.tail
}

// AsTyping reports whether ctx's top frame is a Typing frame and, if so,
// returns its fields.
func (ctx *Context) AsTyping() (x Name, t Type, ok bool) {
	if ctx.frame != frameTyping {
		return Name{}, nil, false
	}
	return ctx.name, ctx.typ, true
}

// AsKinding reports whether ctx's top frame is a Kinding frame and, if
// so, returns its fields.
func (ctx *Context) AsKinding() (x Name, k Kind, ok bool) {
	if ctx.frame != frameKinding {
		return Name{}, nil, false
	}
	return ctx.name, ctx.kind, true
}

// AsClosure reports whether ctx's top frame is a Closure frame and, if
// so, returns it.
func (ctx *Context) AsClosure() (clo *Closure, ok bool) {
	if ctx.frame != frameClosureFrame {
		return nil, false
	}
	return ctx.closure, true
}

// IsEmpty reports whether ctx is the Empty frame.
func (ctx *Context) IsEmpty() bool {
	return ctx.frame == frameEmpty
}

// LookupTerm walks ctx innermost-first for a term-name x, per spec §4.3.
// A Closure frame consults its own map before falling through to its
// tail. The returned Term is non-nil only when x was bound by a closure
// (a defining term); a Typing frame yields only the type.
func (ctx *Context) LookupTerm(x Name) (def Term, typ Type, ok bool) {
	for c := ctx; c != nil && !c.IsEmpty(); c = c.tail {
		switch c.frame {
		case frameTyping:
			if c.name.Equal(x) {
				return nil, c.typ, true
			}
		case frameClosureFrame:
			if t, ty, found := c.closure.lookupTerm(x); found {
				return t, ty, true
			}
		}
	}
	return nil, nil, false
}

// LookupType walks ctx innermost-first for a type-name X, per spec §4.3.
func (ctx *Context) LookupType(x Name) (def Type, kind Kind, ok bool) {
	for c := ctx; c != nil && !c.IsEmpty(); c = c.tail {
		switch c.frame {
		case frameKinding:
			if c.name.Equal(x) {
				return nil, c.kind, true
			}
		case frameClosureFrame:
			if ty, k, found := c.closure.lookupType(x); found {
				return ty, k, true
			}
		}
	}
	return nil, nil, false
}

// LookupKind walks ctx innermost-first for a kind-name, consulting only
// Closure frames (no other frame shape binds kind-names).
func (ctx *Context) LookupKind(x Name) (kind Kind, ok bool) {
	for c := ctx; c != nil && !c.IsEmpty(); c = c.tail {
		if c.frame == frameClosureFrame {
			if k, found := c.closure.lookupKind(x); found {
				return k, true
			}
		}
	}
	return nil, false
}
