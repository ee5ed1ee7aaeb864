// Package iota is the public surface spec §6 "External Interfaces"
// describes: the parser, printer, and CLI front ends this repository
// excludes are expected to sit on top of exactly these entry points.
// Everything here is a thin re-export of internal/calculus — the
// package exists to give outside callers (and this repo's own
// integration tests) a stable import path that does not reach into
// internal/.
package iota

import (
	"github.com/iotalang/iotacheck/internal/calculus"
	"github.com/iotalang/iotacheck/internal/diag"
)

type (
	Name    = calculus.Name
	Term    = calculus.Term
	Type    = calculus.Type
	Kind    = calculus.Kind
	Expr    = calculus.Expr
	Context = calculus.Context
	Stmt    = calculus.Stmt
	Prgm    = calculus.Prgm
	DefnTm  = calculus.DefnTm
	DefnTy  = calculus.DefnTy
	Tracer  = diag.Tracer
)

// Star is the kind ⋆.
var Star = calculus.Star

// Empty is the bottom of every context.
var Empty = calculus.Empty

func TermName(ident string) Name { return calculus.TermName(ident) }
func TypeName(ident string) Name { return calculus.TypeName(ident) }
func KindName(ident string) Name { return calculus.KindName(ident) }

// ElaborateProgram runs the program driver (spec §4.9) and returns the
// final context, or the first error encountered.
func ElaborateProgram(prgm Prgm) (*Context, error) {
	return calculus.ElaborateProgram(prgm)
}

// ElaborateProgramTraced is ElaborateProgram with an optional
// diagnostic trace of each statement's judgement.
func ElaborateProgramTraced(prgm Prgm, tr *Tracer) (*Context, error) {
	return calculus.ElaborateProgramTraced(prgm, tr)
}

// Elaborate reports only success or failure, matching spec §6's
// elaborateProgram(Prgm) → Result<(), String> signature.
func Elaborate(prgm Prgm) error {
	return calculus.Elaborate(prgm)
}

func SynthesizeType(a Term, ctx *Context) (Type, error) { return calculus.SynthesizeType(a, ctx) }
func CheckType(a Term, t Type, ctx *Context) error      { return calculus.CheckType(a, t, ctx) }
func SynthesizeKind(t Type, ctx *Context) (Kind, error) { return calculus.SynthesizeKind(t, ctx) }
func CheckKind(t Type, k Kind, ctx *Context) error      { return calculus.CheckKind(t, k, ctx) }

func UnifyType(t1, t2 Type, ctx *Context) error { return calculus.UnifyType(t1, t2, ctx) }
func UnifyKind(k1, k2 Kind, ctx *Context) error { return calculus.UnifyKind(k1, k2, ctx) }
func Unify(e1, e2 Expr, ctx *Context) error     { return calculus.Unify(e1, e2, ctx) }

func Evaluate(e Expr, ctx *Context) (Expr, error) { return calculus.Evaluate(e, ctx) }

func Substitute(x Name, e Expr, target Expr) Expr { return calculus.Substitute(x, e, target) }
func SubstituteFresh(x Name, e Expr, target Expr) Expr {
	return calculus.SubstituteFresh(x, e, target)
}

func Print(e Expr) string                      { return calculus.Print(e) }
func AlphaEquivalent(t1, t2 Type) bool          { return calculus.AlphaEquivalent(t1, t2) }
func OfTerm(t Term) Expr                        { return calculus.OfTerm(t) }
func OfType(t Type) Expr                        { return calculus.OfType(t) }
func OfKind(k Kind) Expr                        { return calculus.OfKind(k) }
