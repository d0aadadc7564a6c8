// Package filter compiles CEL expressions into record predicates. A
// filter never changes what gets generated; records are produced first
// and matched after, so determinism and paging are unaffected by any
// filter in front of them.
package filter

import (
	"fmt"

	"github.com/google/cel-go/cel"

	"github.com/hlynes/personagen/persona"
)

// Filter is a compiled predicate over generated records. A Filter is
// immutable after Compile and safe for concurrent use.
type Filter struct {
	expr string
	prog cel.Program
}

// Compile builds a predicate from a CEL expression. The expression sees
// a single `person` variable carrying the record's fields under their
// wire names, e.g. `person.height_cm >= 180 && person.eye_color == "Blue"`.
func Compile(expr string) (*Filter, error) {
	env, err := cel.NewEnv(
		cel.Variable("person", cel.DynType),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile error: %w", issues.Err())
	}

	// Cost limit keeps pathological expressions from running away.
	prog, err := env.Program(ast, cel.CostLimit(1000000))
	if err != nil {
		return nil, fmt.Errorf("program creation error: %w", err)
	}

	return &Filter{expr: expr, prog: prog}, nil
}

// Expression returns the source expression the filter was compiled from.
func (f *Filter) Expression() string { return f.expr }

// Keep reports whether the record satisfies the expression. Expressions
// that evaluate to a non-boolean keep nothing.
func (f *Filter) Keep(rec persona.Record) (bool, error) {
	out, _, err := f.prog.Eval(map[string]any{
		"person": recordVars(rec),
	})
	if err != nil {
		return false, fmt.Errorf("evaluating %q: %w", f.expr, err)
	}

	keep, ok := out.Value().(bool)
	if !ok {
		return false, nil
	}
	return keep, nil
}

// Apply returns the records that satisfy the expression, preserving
// order. A nil filter keeps everything.
func (f *Filter) Apply(records []persona.Record) ([]persona.Record, error) {
	if f == nil {
		return records, nil
	}

	kept := make([]persona.Record, 0, len(records))
	for _, rec := range records {
		ok, err := f.Keep(rec)
		if err != nil {
			return nil, err
		}
		if ok {
			kept = append(kept, rec)
		}
	}
	return kept, nil
}

// recordVars exposes a record to CEL under its JSON field names.
func recordVars(rec persona.Record) map[string]any {
	return map[string]any{
		"position":  rec.Position,
		"full_name": rec.FullName,
		"address":   rec.Address,
		"latitude":  rec.Latitude,
		"longitude": rec.Longitude,
		"height_cm": rec.HeightCm,
		"weight_kg": rec.WeightKg,
		"eye_color": rec.EyeColor,
		"phone":     rec.Phone,
		"email":     rec.Email,
	}
}
