// Package diag provides a minimal elaboration tracer: as ElaborateProgram
// folds statements into a context, it can optionally record each
// judgement it ran (which statement, which rule, what the verdict was)
// for a caller to print or inspect afterward. No third-party logging
// library is wired in here, matching how the teacher's own evaluator
// reports diagnostics: plain fmt.Fprintf to a caller-supplied writer
// (internal/evaluator/builtins.go's debug/trace builtins), never a
// structured-logging package.
package diag

import "fmt"

// Event is one recorded step of elaboration.
type Event struct {
	Statement string // the name being elaborated, e.g. "id" or "Nat"
	Judgement string // "CheckType", "CheckKind", etc.
	Verdict   string // "ok" or the error text
}

func (e Event) String() string {
	return fmt.Sprintf("[%s] %s: %s", e.Statement, e.Judgement, e.Verdict)
}

// Tracer accumulates Events in order. The zero value is ready to use; a
// nil *Tracer is valid too and simply discards every record, so callers
// that don't want tracing can pass one in without a nil check.
type Tracer struct {
	Events []Event
}

// Record appends an event. Safe to call on a nil *Tracer.
func (t *Tracer) Record(statement, judgement string, err error) {
	if t == nil {
		return
	}
	verdict := "ok"
	if err != nil {
		verdict = err.Error()
	}
	t.Events = append(t.Events, Event{Statement: statement, Judgement: judgement, Verdict: verdict})
}

// Dump renders the trace one event per line, in recording order.
func (t *Tracer) Dump() string {
	if t == nil {
		return ""
	}
	out := ""
	for i, e := range t.Events {
		if i > 0 {
			out += "\n"
		}
		out += e.String()
	}
	return out
}
