package calculus

import "github.com/iotalang/iotacheck/internal/diag"

// Stmt is one top-level declaration a program elaborates, spec §4.9: a
// term definition or a type definition, each pairing a name with its
// declared classifier and its defining body.
type Stmt interface{ isStmt() }

// DefnTm declares a term name with its type annotation and body.
type DefnTm struct {
	Name Name
	Type Type
	Body Term
}

func (DefnTm) isStmt() {}

// DefnTy declares a type name with its kind annotation and body.
type DefnTy struct {
	Name Name
	Kind Kind
	Type Type
}

func (DefnTy) isStmt() {}

// Prgm is an ordered sequence of statements, elaborated left to right.
type Prgm []Stmt

// ElaborateProgram folds a program into a context, spec §4.9: for each
// statement, the declared annotation is pushed eagerly (so a term may
// reference its own type through a self type, or a type may reference
// its own name recursively) while its body is checked, and once checking
// succeeds the fully-elaborated definition is folded into a single,
// monotonically growing closure so later statements may reduce through
// it. Processing a program is never partial: the first failing
// statement aborts elaboration with that statement's error.
func ElaborateProgram(prgm Prgm) (*Context, error) {
	return ElaborateProgramTraced(prgm, nil)
}

// ElaborateProgramTraced is ElaborateProgram with an optional diagnostic
// tracer: tr may be nil, in which case no trace is recorded.
func ElaborateProgramTraced(prgm Prgm, tr *diag.Tracer) (*Context, error) {
	ctx := Empty
	clo := &Closure{}
	for _, stmt := range prgm {
		switch s := stmt.(type) {
		case DefnTm:
			checkCtx := ctx.Typing(s.Name, s.Type)
			err := CheckType(s.Body, s.Type, checkCtx)
			tr.Record(s.Name.String(), "CheckType", err)
			if err != nil {
				return nil, err
			}
			clo = clo.WithTerm(s.Name, s.Body, s.Type)
			ctx = Empty.WithClosure(clo)
		case DefnTy:
			checkCtx := ctx.Kinding(s.Name, s.Kind)
			err := CheckKind(s.Type, s.Kind, checkCtx)
			tr.Record(s.Name.String(), "CheckKind", err)
			if err != nil {
				return nil, err
			}
			clo = clo.WithType(s.Name, s.Type, s.Kind)
			ctx = Empty.WithClosure(clo)
		}
	}
	return ctx, nil
}

// Elaborate reports only whether prgm elaborates successfully, matching
// the external interface's elaborateProgram signature; callers that need
// the resulting context (e.g. to evaluate a further expression against
// it) should call ElaborateProgram directly.
func Elaborate(prgm Prgm) error {
	_, err := ElaborateProgram(prgm)
	return err
}
