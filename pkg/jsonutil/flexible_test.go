package jsonutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringListOrDefault(t *testing.T) {
	def := []string{"fallback"}

	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"structured array passes through", `["a","b"]`, []string{"a", "b"}},
		{"double-encoded array", `"[\"a\",\"b\"]"`, []string{"a", "b"}},
		{"empty array", `[]`, []string{}},
		{"null", `null`, def},
		{"empty input", ``, def},
		{"malformed text", `risks: none really`, def},
		{"plain string", `"just a sentence"`, def},
		{"number", `42`, def},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StringListOrDefault(json.RawMessage(tt.raw), def)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStringListOrDefaultIdempotent(t *testing.T) {
	// Re-encoding a parsed result and parsing again must give the same list.
	raw := json.RawMessage(`["x","y","z"]`)
	first := StringListOrDefault(raw, nil)
	reencoded, err := json.Marshal(first)
	assert.NoError(t, err)
	second := StringListOrDefault(reencoded, nil)
	assert.Equal(t, first, second)
}

func TestStringOrDefault(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		def  string
		want string
	}{
		{"plain json string", `"hello"`, "d", "hello"},
		{"double-encoded string", `"\"hello\""`, "d", "hello"},
		{"null", `null`, "d", "d"},
		{"empty", ``, "d", "d"},
		{"bare unquoted text", `not json at all`, "d", "not json at all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StringOrDefault(json.RawMessage(tt.raw), tt.def))
		})
	}
}

func TestFieldsOrNil(t *testing.T) {
	fields := FieldsOrNil(json.RawMessage(`{"problem":"p","constraints":["c1"]}`))
	assert.NotNil(t, fields)
	assert.Equal(t, `"p"`, string(fields["problem"]))

	wrapped := FieldsOrNil(json.RawMessage(`"{\"problem\":\"p\"}"`))
	assert.NotNil(t, wrapped)
	assert.Equal(t, `"p"`, string(wrapped["problem"]))

	assert.Nil(t, FieldsOrNil(json.RawMessage(`not an object`)))
	assert.Nil(t, FieldsOrNil(json.RawMessage(`null`)))
	assert.Nil(t, FieldsOrNil(nil))
}
