// Package jsonx pulls structured data out of free-text model replies.
//
// Models asked for JSON frequently wrap it in a fenced code block, or
// leave stray fence markers around it. Extract recovers the payload;
// Unmarshal additionally validates it against a JSON Schema before any
// downstream component is allowed to trust it.
package jsonx

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var fencedJSON = regexp.MustCompile("(?is)```(?:json)?\\s*(.*?)\\s*```")

// Extract returns the JSON payload embedded in a model reply.
// It first looks for a fenced code block; failing that, it strips any
// stray fence markers and returns the trimmed remainder.
func Extract(raw string) string {
	if m := fencedJSON.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(strings.ReplaceAll(raw, "```", ""))
}

// Unmarshal extracts the JSON payload from raw, validates it against the
// named schema, and decodes it into v.
func Unmarshal(schema *Schema, raw string, v any) error {
	payload := Extract(raw)

	var parsed any
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := Validate(schema, parsed); err != nil {
		return err
	}

	return json.Unmarshal([]byte(payload), v)
}
