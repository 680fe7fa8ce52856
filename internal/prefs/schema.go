package prefs

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// definitions holds the top-level shape each key must have. Element-level
// filtering (e.g. dropping non-string array entries) happens in the
// consuming component; a value that fails its schema is discarded whole.
var definitions = map[string]map[string]any{
	KeyActiveChars: {
		"type": "array",
	},
	KeyGameSettings: {
		"type": "object",
	},
	KeySpeechVoice: {
		"type":      "string",
		"minLength": 1,
	},
	KeyWordSetup: {
		"type": "object",
		"properties": map[string]any{
			"words":          map[string]any{"type": "array"},
			"confirmedWords": map[string]any{"type": "array"},
		},
	},
}

// schemaCache caches compiled schemas by key.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// validate checks v against the schema registered for key. Keys without a
// schema are accepted as-is.
func validate(key string, v any) error {
	def, ok := definitions[key]
	if !ok {
		return nil
	}
	compiled, err := compiledSchema(key, def)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", key, err)
	}
	return compiled.Validate(v)
}

func compiledSchema(key string, def map[string]any) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(key); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants a parsed JSON document, so normalise the Go map
	// through a marshal/unmarshal round trip first.
	b, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://prefs/%s.json", key)
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	schemaCache.Store(key, compiled)
	return compiled, nil
}
