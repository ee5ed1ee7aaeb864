package calculus

import "fmt"

// UndeclaredNameError is returned by lookup failure during synthesis,
// spec §4.5/§4.6: an undeclared type name or undeclared term name.
type UndeclaredNameError struct {
	NS   Namespace
	Name Name
}

func (e *UndeclaredNameError) Error() string {
	return fmt.Sprintf("undeclared %s name: %s", e.NS, e.Name)
}

// InvalidApplicantError covers the four applicant-shape mismatches spec
// §7 enumerates: term-term, term-type, type-term, type-type.
type InvalidApplicantError struct {
	Variant   string // "term-term", "term-type", "type-term", or "type-type"
	Applicant fmt.Stringer
}

func (e *InvalidApplicantError) Error() string {
	return fmt.Sprintf("invalid %s applicant: %s", e.Variant, e.Applicant)
}

// UnifyError reports a unification mismatch, spec §4.8 rule 5: it names
// both the innermost offending subexpressions and the outer expressions
// the caller was trying to unify.
type UnifyError struct {
	Inner1, Inner2 Expr
	Outer1, Outer2 Expr
}

func (e *UnifyError) Error() string {
	return fmt.Sprintf(
		"cannot unify subexpression %s with %s, in order to unify expression %s with %s",
		e.Inner1, e.Inner2, e.Outer1, e.Outer2,
	)
}

// IllKindedError wraps a well-formedness failure encountered while
// pushing a context or closure frame, spec §7's fourth error kind.
type IllKindedError struct {
	Where string
	Err   error
}

func (e *IllKindedError) Error() string {
	return fmt.Sprintf("ill-kinded %s: %v", e.Where, e.Err)
}

func (e *IllKindedError) Unwrap() error { return e.Err }
