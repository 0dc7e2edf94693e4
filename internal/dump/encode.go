package dump

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// JSON marshals v and pipes it through tidwall/pretty for indented,
// optionally ANSI-colored output (the teacher's Format(color bool)
// pattern in internal/errors.go, carried over to this wiring per
// SPEC_FULL.md's domain-stack section).
func JSON(v any, color bool) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("dump: marshal json: %w", err)
	}
	formatted := pretty.Pretty(raw)
	if color {
		formatted = pretty.Color(formatted, nil)
	}
	return string(formatted), nil
}

// YAML marshals v with goccy/go-yaml, the same library internal/config
// uses to load .kompilator.yaml.
func YAML(v any) (string, error) {
	raw, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("dump: marshal yaml: %w", err)
	}
	return string(raw), nil
}

// Query pulls a single field out of v's JSON encoding without a full
// unmarshal, using tidwall/gjson's path syntax (e.g. "idt.3.name",
// "art.1.size") — the `dump --query` flag's backing implementation.
func Query(v any, path string) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("dump: marshal json: %w", err)
	}
	result := gjson.GetBytes(raw, path)
	if !result.Exists() {
		return "", fmt.Errorf("dump: no value at query path %q", path)
	}
	return result.String(), nil
}
