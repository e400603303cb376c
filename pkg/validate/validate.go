package validate

import (
	"context"
	"fmt"
	"reflect"
)

// Validator runs schemas against request data. The zero value is usable; New
// exists to apply options.
type Validator struct {
	lenientNumbers bool
}

// Option configures a Validator.
type Option func(*Validator)

// WithLenientNumbers makes the numeric type checks (double, decimal, int,
// long, timestamp) accept any value, including unparseable strings.
//
// This reproduces the behavior of systems whose number-parsing primitives
// return a not-a-number sentinel instead of failing: the mismatch is never
// observed, so the check is vacuous. The default is strict parsing, which
// rejects non-numeric strings.
func WithLenientNumbers() Option {
	return func(v *Validator) { v.lenientNumbers = true }
}

// New returns a Validator with the given options applied.
func New(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate checks data read from the given origin against the schema and
// returns the aggregated Result. It returns a non-nil error only when a
// rule's Check or MessageFunc fails; built-in check failures are always
// captured in the Result, never returned as errors.
func Validate(ctx context.Context, data map[string]any, origin Origin, schema Schema) (*Result, error) {
	return New().Validate(ctx, data, origin, schema)
}

// Validate checks data against the schema. Fields are processed strictly
// sequentially in schema order, and within a field rules run strictly
// sequentially, which makes message ordering deterministic.
func (v *Validator) Validate(ctx context.Context, data map[string]any, origin Origin, schema Schema) (*Result, error) {
	b := newResultBuilder()
	for _, field := range schema {
		if err := v.checkField(ctx, data, origin, field, b); err != nil {
			return nil, err
		}
	}
	return b.result(), nil
}

func (v *Validator) checkField(ctx context.Context, data map[string]any, origin Origin, field Field, b *resultBuilder) error {
	value := data[field.Name]
	required := field.IsRequired()

	if required && !filled(value) {
		msg := field.RequiredMessage
		if msg == "" {
			msg = fmt.Sprintf("The field `%s` is required", field.Name)
		}
		b.add(origin, field, value, msg)
	}

	// An absent value is never type-checked: optional+absent must stay silent,
	// and required+absent already produced the required error above.
	if value != nil && !v.typeOK(value, field.Type, origin) {
		msg := field.TypeMessage
		if msg == "" {
			msg = fmt.Sprintf("The value of `%s` must be a valid %s", field.Name, field.Type)
		}
		b.add(origin, field, value, msg)
	}

	// Rules are skipped only for a genuinely absent optional field. They are
	// never short-circuited: a later rule runs even after an earlier failure.
	if required || value != nil {
		for _, rule := range field.Rules {
			if rule.Check == nil {
				continue
			}
			ok, err := rule.Check(ctx, value, field, data)
			if err != nil {
				return err
			}
			if ok {
				continue
			}
			msg := rule.Message
			if rule.MessageFunc != nil {
				msg, err = rule.MessageFunc(ctx, value, field, data)
				if err != nil {
					return err
				}
			}
			if msg == "" {
				msg = fmt.Sprintf("`%s` value is not valid", field.Name)
			}
			b.add(origin, field, value, msg)
		}
	}
	return nil
}

// filled reports whether a value counts as present for the required check.
// Nil is empty, strings and sequences are empty at length zero, and every
// other value (numbers, booleans, objects) counts as filled.
func filled(value any) bool {
	if value == nil {
		return false
	}
	if s, ok := value.(string); ok {
		return s != ""
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Len() > 0
	}
	return true
}
