package stty

import "math"

// Truthy normalizes an arbitrary value to a boolean the way shell-style
// attribute toggling does: nil, numeric zero, and empty strings or byte
// slices mean false; anything else means true.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return len(t) > 0
	case []byte:
		return len(t) > 0
	case float32:
		return t != 0
	case float64:
		return t != 0
	default:
		if n, ok := toInt64(v); ok {
			return n != 0
		}
		return true
	}
}

// toInt64 converts integer-shaped values to int64. Floats are accepted only
// when integral so that JSON- and YAML-decoded numbers round-trip; all other
// shapes are rejected.
func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float32:
		return toInt64(float64(n))
	case float64:
		if math.IsInf(n, 0) || math.IsNaN(n) || n != math.Trunc(n) {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
}

// toUint64 is toInt64 restricted to nonnegative values.
func toUint64(v any) (uint64, bool) {
	if n, ok := v.(uint64); ok {
		return n, true
	}
	n, ok := toInt64(v)
	if !ok || n < 0 {
		return 0, false
	}
	return uint64(n), true
}
