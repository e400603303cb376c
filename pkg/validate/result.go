package validate

import "strings"

// FieldError aggregates every failure recorded for one field during a run.
// The Messages slice keeps the fixed order: required failure, type mismatch,
// then rule failures in schema-declared rule order.
type FieldError struct {
	Origin   Origin   `json:"origin"`
	Field    string   `json:"field"`
	Type     Type     `json:"type"`
	Value    any      `json:"value"`
	Messages []string `json:"message"`
}

// Result is the outcome of a validation run. Message joins every recorded
// message across all fields with "; " in first-reported order.
type Result struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

// Valid reports whether the data fully satisfied the schema.
func (r *Result) Valid() bool {
	return len(r.Errors) == 0
}

// resultBuilder accumulates errors keyed by field name while preserving
// first-seen order, so merging never rescans the error list.
type resultBuilder struct {
	byField map[string]*FieldError
	order   []string
}

func newResultBuilder() *resultBuilder {
	return &resultBuilder{byField: make(map[string]*FieldError)}
}

func (b *resultBuilder) add(origin Origin, field Field, value any, message string) {
	fe, ok := b.byField[field.Name]
	if !ok {
		fe = &FieldError{
			Origin: origin,
			Field:  field.Name,
			Type:   field.Type,
			Value:  value,
		}
		b.byField[field.Name] = fe
		b.order = append(b.order, field.Name)
	}
	fe.Messages = append(fe.Messages, message)
}

func (b *resultBuilder) result() *Result {
	res := &Result{Errors: make([]FieldError, 0, len(b.order))}
	parts := make([]string, 0, len(b.order))
	for _, name := range b.order {
		fe := b.byField[name]
		res.Errors = append(res.Errors, *fe)
		parts = append(parts, strings.Join(fe.Messages, "; "))
	}
	res.Message = strings.Join(parts, "; ")
	return res
}
