package usecase

import (
	"encoding/json"
	"math"
	"strconv"
)

// Args are the raw, untyped arguments handed to a use case.
type Args map[string]any

// String returns the value under key when it is a string.
func (a Args) String(key string) (string, bool) {
	s, ok := a[key].(string)
	return s, ok
}

// Int64 returns the value under key as an integer. Strings, json.Number and
// integral floats are accepted; anything else reports false.
func (a Args) Int64(key string) (int64, bool) {
	switch v := a[key].(type) {
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		if v != math.Trunc(v) || v >= math.MaxInt64 || v < math.MinInt64 {
			return 0, false
		}
		return int64(v), true
	case json.Number:
		n, err := v.Int64()
		return n, err == nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

// Merge returns a new Args holding a's entries overlaid with b's.
func (a Args) Merge(b Args) Args {
	out := make(Args, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
