package validate

import (
	"context"
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"unicode/utf8"
)

// Stock rules for common constraints. Each constructor returns a plain Rule
// value; rules hold no state and can be shared across schemas. Values of an
// unexpected kind pass — rejecting them is the type check's job.

// MinLen requires a string of at least n characters or a sequence of at least
// n elements.
func MinLen(n int) Rule {
	return Rule{
		Check: func(_ context.Context, value any, _ Field, _ map[string]any) (bool, error) {
			if l, ok := length(value); ok {
				return l >= n, nil
			}
			return true, nil
		},
		MessageFunc: func(_ context.Context, _ any, field Field, _ map[string]any) (string, error) {
			return fmt.Sprintf("`%s` must have at least %d characters", field.Name, n), nil
		},
	}
}

// MaxLen requires a string of at most n characters or a sequence of at most
// n elements.
func MaxLen(n int) Rule {
	return Rule{
		Check: func(_ context.Context, value any, _ Field, _ map[string]any) (bool, error) {
			if l, ok := length(value); ok {
				return l <= n, nil
			}
			return true, nil
		},
		MessageFunc: func(_ context.Context, _ any, field Field, _ map[string]any) (string, error) {
			return fmt.Sprintf("`%s` must have at most %d characters", field.Name, n), nil
		},
	}
}

// OneOf requires a string value to equal one of the allowed values.
func OneOf(allowed ...string) Rule {
	return Rule{
		Check: func(_ context.Context, value any, _ Field, _ map[string]any) (bool, error) {
			s, ok := value.(string)
			if !ok {
				return true, nil
			}
			return slices.Contains(allowed, s), nil
		},
		MessageFunc: func(_ context.Context, _ any, field Field, _ map[string]any) (string, error) {
			return fmt.Sprintf("`%s` must be one of %v", field.Name, allowed), nil
		},
	}
}

// Matches requires a string value to match the pattern.
func Matches(re *regexp.Regexp) Rule {
	return Rule{
		Check: func(_ context.Context, value any, _ Field, _ map[string]any) (bool, error) {
			s, ok := value.(string)
			if !ok {
				return true, nil
			}
			return re.MatchString(s), nil
		},
		MessageFunc: func(_ context.Context, _ any, field Field, _ map[string]any) (string, error) {
			return fmt.Sprintf("`%s` has an invalid format", field.Name), nil
		},
	}
}

// Min requires a numeric value (or numeric string) of at least n.
func Min(n float64) Rule {
	return Rule{
		Check: func(_ context.Context, value any, _ Field, _ map[string]any) (bool, error) {
			if f, ok := toFloat(value); ok {
				return f >= n, nil
			}
			return true, nil
		},
		MessageFunc: func(_ context.Context, _ any, field Field, _ map[string]any) (string, error) {
			return fmt.Sprintf("`%s` must be at least %v", field.Name, n), nil
		},
	}
}

// Max requires a numeric value (or numeric string) of at most n.
func Max(n float64) Rule {
	return Rule{
		Check: func(_ context.Context, value any, _ Field, _ map[string]any) (bool, error) {
			if f, ok := toFloat(value); ok {
				return f <= n, nil
			}
			return true, nil
		},
		MessageFunc: func(_ context.Context, _ any, field Field, _ map[string]any) (string, error) {
			return fmt.Sprintf("`%s` must be at most %v", field.Name, n), nil
		},
	}
}

func length(value any) (int, bool) {
	if s, ok := value.(string); ok {
		return utf8.RuneCountInString(s), true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Len(), true
	}
	return 0, false
}

func toFloat(value any) (float64, bool) {
	switch x := value.(type) {
	case string:
		f, err := strconv.ParseFloat(x, 64)
		return f, err == nil
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
