package validate

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// typeOK dispatches the built-in type check for a present value. Each arm is
// a pure predicate over the raw value plus the declared origin.
func (v *Validator) typeOK(value any, t Type, origin Origin) bool {
	switch t {
	case TypeString:
		_, ok := value.(string)
		return ok
	case TypeArray:
		return isSequence(value)
	case TypeBool:
		return v.boolOK(value, origin)
	case TypeDate:
		return isDate(value)
	case TypeDouble, TypeDecimal:
		return v.floatOK(value)
	case TypeInt, TypeLong, TypeTimestamp:
		return v.intOK(value)
	case TypeObject:
		return isObject(value)
	}
	// A type outside the dispatch table performs no check.
	return true
}

// boolOK applies the origin-dependent boolean policy. Query and params values
// are string-encoded, so a non-empty value must be "true" or "false" in any
// casing; an empty string is the required check's business, not a mismatch.
// Body values must already be native booleans.
func (v *Validator) boolOK(value any, origin Origin) bool {
	if origin == OriginBody {
		_, ok := value.(bool)
		return ok
	}
	if _, ok := value.(bool); ok {
		return true
	}
	s, ok := value.(string)
	if !ok {
		return false
	}
	if s == "" {
		return true
	}
	return strings.EqualFold(s, "true") || strings.EqualFold(s, "false")
}

// floatOK checks double and decimal fields. Native numbers always pass.
// Strings must parse as floating point unless lenient numbers are enabled,
// in which case nothing ever fails the check.
func (v *Validator) floatOK(value any) bool {
	if v.lenientNumbers {
		return true
	}
	switch x := value.(type) {
	case json.Number:
		_, err := x.Float64()
		return err == nil
	case string:
		_, err := strconv.ParseFloat(x, 64)
		return err == nil
	}
	return isNumericKind(value)
}

// intOK checks int, long, and timestamp fields. Native numbers always pass,
// including floats with a fractional part: truncating integer parsers accept
// them, so declaring `int` never rejects a number. Strings must parse as
// base-10 integers unless lenient numbers are enabled.
func (v *Validator) intOK(value any) bool {
	if v.lenientNumbers {
		return true
	}
	switch x := value.(type) {
	case json.Number:
		_, err := x.Int64()
		return err == nil
	case string:
		_, err := strconv.ParseInt(x, 10, 64)
		return err == nil
	}
	return isNumericKind(value)
}

// dateLayouts are the string encodings accepted for date fields.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// isDate reports whether a value constructs a valid calendar date: a
// time.Time, a unix-seconds number, or a string in one of dateLayouts.
func isDate(value any) bool {
	switch x := value.(type) {
	case time.Time:
		return true
	case string:
		for _, layout := range dateLayouts {
			if _, err := time.Parse(layout, x); err == nil {
				return true
			}
		}
		return false
	case json.Number:
		_, err := x.Float64()
		return err == nil
	}
	return isNumericKind(value)
}

func isSequence(value any) bool {
	switch reflect.ValueOf(value).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

// isObject accepts maps and structs. Sequences pass too: the check mirrors a
// loose object-kind test where arrays are objects.
func isObject(value any) bool {
	switch reflect.ValueOf(value).Kind() {
	case reflect.Map, reflect.Struct, reflect.Slice, reflect.Array:
		return true
	case reflect.Pointer:
		elem := reflect.ValueOf(value).Elem()
		return elem.IsValid() && elem.Kind() == reflect.Struct
	}
	return false
}

func isNumericKind(value any) bool {
	switch reflect.ValueOf(value).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
