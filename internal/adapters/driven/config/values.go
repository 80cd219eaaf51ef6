// Package config holds the value coercions shared by the config stores.
// Values arrive from TOML decoding, from flags, or from tests, so each
// getter accepts every Go type those sources produce.
package config

import (
	"maps"
	"slices"
	"strings"
)

// String returns v as a string, or "" if it is not one.
func String(v any) string {
	s, _ := v.(string)
	return s
}

// Int returns v as an int. TOML integers decode as int64 and JSON numbers
// as float64; anything else yields 0.
func Int(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case uint64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}

// Bool returns v as a bool, or false if it is not one.
func Bool(v any) bool {
	b, _ := v.(bool)
	return b
}

// StringSlice returns v as a string slice. TOML arrays decode as []any;
// non-string elements are skipped.
func StringSlice(v any) []string {
	switch s := v.(type) {
	case []string:
		return slices.Clone(s)
	case []any:
		result := make([]string, 0, len(s))
		for _, item := range s {
			if str, ok := item.(string); ok {
				result = append(result, str)
			}
		}
		return result
	default:
		return nil
	}
}

// Flatten converts nested maps to dot-notation keys.
// E.g., {"a": {"b": 1}} becomes {"a.b": 1}.
func Flatten(m map[string]any) map[string]any {
	result := make(map[string]any)
	flattenInto(result, m, "")
	return result
}

func flattenInto(dst, m map[string]any, prefix string) {
	for key, value := range m {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}
		if nested, ok := value.(map[string]any); ok {
			flattenInto(dst, nested, fullKey)
			continue
		}
		dst[fullKey] = value
	}
}

// Nest is the inverse of Flatten. A key that is both a value and a prefix
// of another key keeps the value; the deeper keys are dropped.
func Nest(flat map[string]any) map[string]any {
	result := make(map[string]any)
	for _, key := range SortedKeys(flat) {
		parts := strings.Split(key, ".")
		node := result
		ok := true
		for _, part := range parts[:len(parts)-1] {
			child, exists := node[part]
			if !exists {
				next := make(map[string]any)
				node[part] = next
				node = next
				continue
			}
			next, isMap := child.(map[string]any)
			if !isMap {
				ok = false
				break
			}
			node = next
		}
		if ok {
			if _, exists := node[parts[len(parts)-1]]; !exists {
				node[parts[len(parts)-1]] = flat[key]
			}
		}
	}
	return result
}

// SortedKeys returns the keys of m in lexical order.
func SortedKeys(m map[string]any) []string {
	return slices.Sorted(maps.Keys(m))
}
