// Package jsonutil provides tolerant parsing for structured data stored as
// text. Columns that should hold JSON arrays or objects are sometimes written
// by upstream tools as double-encoded strings, or contain free text that was
// never JSON at all. These helpers try the expected shape first, then the
// string-wrapped shape, and fall back to a caller-supplied default. They never
// return an error.
package jsonutil

import (
	"encoding/json"
	"strings"
)

// StringOrDefault converts raw to a string. Handles the value being a JSON
// string, a double-encoded JSON string, or bare unquoted text. Returns def
// for null/empty input.
func StringOrDefault(raw json.RawMessage, def string) string {
	if isEmpty(raw) {
		return def
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		// Could itself be an encoded JSON string ("\"text\"").
		var inner string
		if json.Unmarshal([]byte(s), &inner) == nil && strings.HasPrefix(strings.TrimSpace(s), `"`) {
			return inner
		}
		return s
	}

	// Bare text that was stored without quoting is not valid JSON; take it
	// verbatim rather than losing it.
	return string(raw)
}

// StringListOrDefault converts raw to a list of strings. Already-structured
// input (a JSON array) passes through unchanged; a string containing an
// encoded array is unwrapped; anything else yields def.
func StringListOrDefault(raw json.RawMessage, def []string) []string {
	if isEmpty(raw) {
		return def
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}

	var wrapped string
	if err := json.Unmarshal(raw, &wrapped); err == nil {
		if err := json.Unmarshal([]byte(wrapped), &list); err == nil {
			return list
		}
	}

	return def
}

// FieldsOrNil converts raw to a map of field name to raw value. The input may
// be a JSON object or a string containing an encoded object. Returns nil when
// no object can be recovered, so each field can then be defaulted
// independently by the caller.
func FieldsOrNil(raw json.RawMessage) map[string]json.RawMessage {
	if isEmpty(raw) {
		return nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err == nil {
		return fields
	}

	var wrapped string
	if err := json.Unmarshal(raw, &wrapped); err == nil {
		if err := json.Unmarshal([]byte(wrapped), &fields); err == nil {
			return fields
		}
	}

	return nil
}

func isEmpty(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed == "" || trimmed == "null"
}
