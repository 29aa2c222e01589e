// Package payload gives best-effort access to loosely-typed provider
// responses. Every accessor reports absence instead of failing, so payload
// shape drift stays contained here.
package payload

import (
	"math"
	"strconv"
)

// Object is one decoded JSON document from a provider.
type Object map[string]any

// Value returns the raw field value and whether it is present and non-nil.
func (o Object) Value(key string) (any, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// String returns the field as a string.
func (o Object) String(key string) (string, bool) {
	v, ok := o.Value(key)
	if !ok {
		return "", false
	}
	return ToString(v)
}

// Int returns the field as an integer.
func (o Object) Int(key string) (int64, bool) {
	v, ok := o.Value(key)
	if !ok {
		return 0, false
	}
	return ToInt(v)
}

// Object returns a nested object, or nil when the field is absent or not an
// object.
func (o Object) Object(key string) Object {
	v, ok := o.Value(key)
	if !ok {
		return nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	return Object(m)
}

// List returns the field as a slice, nil when absent or not a list.
func (o Object) List(key string) []any {
	v, ok := o.Value(key)
	if !ok {
		return nil
	}
	l, ok := v.([]any)
	if !ok {
		return nil
	}
	return l
}

// ToInt converts a decoded JSON value to an integer. JSON numbers arrive as
// float64; providers also ship numbers as strings.
func ToInt(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// ToString converts a decoded JSON value to a string. Whole numbers format
// without an exponent so epoch timestamps survive the float64 decode.
func ToString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case float64:
		if s == math.Trunc(s) {
			return strconv.FormatInt(int64(s), 10), true
		}
		return strconv.FormatFloat(s, 'f', -1, 64), true
	default:
		return "", false
	}
}
