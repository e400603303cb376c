package validate

import "context"

// Origin identifies which part of an incoming request a field is read from.
type Origin string

const (
	OriginQuery  Origin = "query"
	OriginBody   Origin = "body"
	OriginParams Origin = "params"
)

// Type is the declared type of a schema field.
type Type string

const (
	TypeString Type = "string"
	// TypeObject accepts maps and structs. Sequences also satisfy the check,
	// mirroring the loose object test of dynamic host systems.
	TypeObject    Type = "object"
	TypeArray     Type = "array"
	TypeBool      Type = "bool"
	TypeDate      Type = "date"
	TypeTimestamp Type = "timestamp"
	TypeDouble    Type = "double"
	TypeInt       Type = "int"
	TypeLong      Type = "long"
	TypeDecimal   Type = "decimal"
)

// CheckFunc is a rule predicate. It receives the raw field value, the field's
// schema entry, and the full data object, and reports whether the value is
// acceptable. A returned error is not a validation failure; it aborts the run
// and propagates to the caller.
type CheckFunc func(ctx context.Context, value any, field Field, data map[string]any) (bool, error)

// MessageFunc produces a rule failure message from the same arguments a
// CheckFunc receives.
type MessageFunc func(ctx context.Context, value any, field Field, data map[string]any) (string, error)

// Rule is a custom, reusable predicate layered on top of the built-in type and
// required checks. MessageFunc takes precedence over Message when both are
// set; when neither is set a default message is used. Rules are stateless and
// safe to share across schemas and calls.
type Rule struct {
	Check       CheckFunc
	Message     string
	MessageFunc MessageFunc
}

// Field declares the expectations for a single request field.
type Field struct {
	// Name is the key the field is read under from the origin's data bucket.
	Name string

	// Type selects the built-in type check. The check is skipped entirely
	// when the value is absent, so an optional missing field never produces a
	// type error.
	Type Type

	// TypeMessage overrides the default type-mismatch message.
	TypeMessage string

	// Required marks the field as mandatory. A non-empty RequiredMessage
	// implies Required regardless of this flag.
	Required bool

	// RequiredMessage overrides the default required-failure message and
	// marks the field required.
	RequiredMessage string

	// Rules run in declared order after the built-in checks. They are never
	// short-circuited: every rule runs even if an earlier one failed, so one
	// field can accumulate several rule messages in a single run.
	Rules []Rule
}

// IsRequired reports whether the field must be filled.
func (f Field) IsRequired() bool {
	return f.Required || f.RequiredMessage != ""
}

// Schema is an ordered set of field declarations. Iteration order is the
// declaration order, which fixes the order of reported errors.
type Schema []Field
