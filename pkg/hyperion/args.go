package hyperion

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Args holds named parameter values for one call. A nil value or nil pointer
// means the parameter is absent and is left out of the request.
type Args map[string]any

// String returns a pointer to v.
func String(v string) *string { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// coerce converts v into the Go type matching kind: string, int64 or bool.
// ok is false when the value is absent.
func coerce(kind Kind, v any) (out any, ok bool, err error) {
	v, ok = deref(v)
	if !ok {
		return nil, false, nil
	}
	switch kind {
	case KindInt:
		n, err := toInt(v)
		return n, true, err
	case KindBool:
		b, err := toBool(v)
		return b, true, err
	default:
		s, err := toString(v)
		return s, true, err
	}
}

func deref(v any) (any, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	return rv.Interface(), true
}

func toInt(v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, fmt.Errorf("%d overflows int64", n)
		}
		return int64(n), nil
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		if n > math.MaxInt64 {
			return 0, fmt.Errorf("%d overflows int64", n)
		}
		return int64(n), nil
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
			return 0, fmt.Errorf("%v is not an integer", n)
		}
		// float64(math.MaxInt64) rounds up to 2^63, which is out of range.
		if n < math.MinInt64 || n >= math.MaxInt64 {
			return 0, fmt.Errorf("%v overflows int64", n)
		}
		return int64(n), nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%q is not an integer", n)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("unsupported type %T for int parameter", v)
	}
}

func toBool(v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		if err != nil {
			return false, fmt.Errorf("%q is not a boolean", b)
		}
		return parsed, nil
	default:
		return false, fmt.Errorf("unsupported type %T for bool parameter", v)
	}
}

func toString(v any) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case bool:
		return strconv.FormatBool(s), nil
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), nil
	case fmt.Stringer:
		return s.String(), nil
	}
	if n, err := toInt(v); err == nil {
		return strconv.FormatInt(n, 10), nil
	}
	return "", fmt.Errorf("unsupported type %T for string parameter", v)
}

// formatValue renders a coerced value without any locale dependency.
func formatValue(v any) string {
	switch t := v.(type) {
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}

// ParseArg converts a textual value (CLI flag, config file) into the
// declared kind of the endpoint parameter.
func ParseArg(ep Endpoint, name, raw string) (any, error) {
	p, ok := ep.Param(name)
	if !ok {
		return nil, &ArgumentError{Endpoint: ep.Name, Param: name, Err: ErrUnknownParameter}
	}
	v, _, err := coerce(p.Kind, raw)
	if err != nil {
		return nil, &ArgumentError{Endpoint: ep.Name, Param: name, Err: ErrInvalidParameter, Detail: err.Error()}
	}
	return v, nil
}
