// Package extract locates usable values inside upstream JSON of unspecified
// shape. The store API wraps list responses inconsistently (bare array,
// {"data": [...]}, or a domain key like {"orders": [...]}) and spells record
// fields several ways, so callers pass ordered candidate keys and the first
// match wins. Nothing in this package ever panics on malformed input.
package extract

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Record is one upstream row of unknown schema.
type Record = map[string]any

// List returns an iterable slice for any JSON value. Arrays pass through
// unchanged; objects are probed with the candidate keys in order and the
// first key holding an array wins. Everything else yields an empty slice.
func List(v any, keys ...string) []any {
	switch t := v.(type) {
	case []any:
		return t
	case map[string]any:
		for _, key := range keys {
			if arr, ok := t[key].([]any); ok {
				return arr
			}
		}
	}
	return []any{}
}

// Records is List restricted to object-shaped elements, which is what the
// aggregation layer iterates over. Scalar elements are dropped.
func Records(v any, keys ...string) []Record {
	items := List(v, keys...)
	recs := make([]Record, 0, len(items))
	for _, item := range items {
		if rec, ok := item.(Record); ok {
			recs = append(recs, rec)
		}
	}
	return recs
}

// Path navigates a dot-separated key into nested objects and returns nil if
// any step is missing or not an object.
func Path(rec Record, path string) any {
	var cur any = rec
	for _, part := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur, ok = m[part]
		if !ok {
			return nil
		}
	}
	return cur
}

// Number resolves the first candidate path that holds a finite number.
// Numeric strings are accepted; anything that does not parse is skipped, so
// a found zero stays distinguishable from not-found.
func Number(rec Record, paths ...string) (float64, bool) {
	for _, path := range paths {
		if n, ok := asNumber(Path(rec, path)); ok {
			return n, true
		}
	}
	return 0, false
}

// Text resolves the first candidate path holding a non-empty trimmed string.
func Text(rec Record, paths ...string) (string, bool) {
	for _, path := range paths {
		if s, ok := Path(rec, path).(string); ok {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				return trimmed, true
			}
		}
	}
	return "", false
}

// When resolves the first candidate path holding a parseable timestamp.
// RFC 3339 and a couple of date-only layouts cover what the store emits.
func When(rec Record, paths ...string) (time.Time, bool) {
	for _, path := range paths {
		s, ok := Path(rec, path).(string)
		if !ok {
			continue
		}
		if ts, ok := parseTime(strings.TrimSpace(s)); ok {
			return ts, true
		}
	}
	return time.Time{}, false
}

// AgeHours computes how long ago a record's timestamp is, clamped at zero for
// clock skew. Not-found propagates as false and must render as "—", not 0.
func AgeHours(rec Record, now time.Time, paths ...string) (float64, bool) {
	ts, ok := When(rec, paths...)
	if !ok {
		return 0, false
	}
	hours := now.Sub(ts).Hours()
	if hours < 0 {
		hours = 0
	}
	return hours, true
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTime(s string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
