package configs

// Helpers for working with JSON-shaped documents: nested maps of strings to
// scalars, sequences, and further maps. Dotted paths like "app.title" address
// a location by concatenating successive keys.

import "strings"

// getNestedValue walks doc by the dot-separated keys in path.
// Returns the value and true, or nil and false if any key is absent or a
// non-map is indexed along the way.
func getNestedValue(doc map[string]any, path string) (any, bool) {
	keys := strings.Split(path, ".")
	var current any = doc
	for _, key := range keys {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// setNestedValue assigns value at the dot-separated path in doc, creating
// empty intermediate maps for missing keys. An intermediate key holding a
// non-map value is replaced by a map.
func setNestedValue(doc map[string]any, path string, value any) {
	keys := strings.Split(path, ".")
	current := doc
	for _, key := range keys[:len(keys)-1] {
		next, ok := current[key].(map[string]any)
		if !ok {
			next = map[string]any{}
			current[key] = next
		}
		current = next
	}
	current[keys[len(keys)-1]] = value
}

// mergeDocuments merges user values over defaults. Scalars and sequences in
// user replace the default at the same key; nested maps merge recursively, so
// a key present in defaults is never dropped by a partial user document.
func mergeDocuments(defaults, user map[string]any) map[string]any {
	result := deepCopyMap(defaults)
	for key, value := range user {
		if existing, ok := result[key].(map[string]any); ok {
			if userMap, ok := value.(map[string]any); ok {
				result[key] = mergeDocuments(existing, userMap)
				continue
			}
		}
		result[key] = deepCopyValue(value)
	}
	return result
}

func deepCopyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for key, value := range m {
		out[key] = deepCopyValue(value)
	}
	return out
}

func deepCopyValue(v any) any {
	switch value := v.(type) {
	case map[string]any:
		return deepCopyMap(value)
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = deepCopyValue(item)
		}
		return out
	default:
		return v
	}
}

// toInt converts JSON-decoded numeric values to int. JSON numbers arrive as
// float64; built-in defaults use int directly.
func toInt(v any) (int, bool) {
	switch value := v.(type) {
	case int:
		return value, true
	case int64:
		return int(value), true
	case float64:
		return int(value), true
	default:
		return 0, false
	}
}

// toString returns v as a non-empty string.
func toString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
