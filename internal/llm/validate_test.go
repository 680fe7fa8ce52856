package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		valid bool
	}{
		{"valid", `{"words":["pes"],"difficulty":"easy"}`, true},
		{"optional field omitted", `{"words":["pes","mačka"]}`, true},
		{"missing required", `{"difficulty":"easy"}`, false},
		{"wrong item type", `{"words":[1]}`, false},
		{"enum violation", `{"words":["pes"],"difficulty":"brutal"}`, false},
		{"empty array", `{"words":[]}`, false},
		{"not json", `words: pes`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(wordSchema(), json.RawMessage(tt.raw))
			if tt.valid {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var invalid *ErrInvalidResponse
			if !errors.As(err, &invalid) {
				t.Fatalf("err = %v, want ErrInvalidResponse", err)
			}
			if string(invalid.Content) != tt.raw {
				t.Fatalf("content = %s", invalid.Content)
			}
		})
	}
}

func TestValidateResponse_NilSchemaAcceptsAnything(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_CachesCompiledSchema(t *testing.T) {
	s := &Schema{Name: "test-cache", Definition: map[string]any{"type": "object"}}
	if err := validateResponse(s, json.RawMessage(`{}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := compiled.Load("test-cache"); !ok {
		t.Fatal("schema not cached")
	}
}
