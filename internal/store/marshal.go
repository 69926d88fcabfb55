package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// MarshalRecord serializes a record for slot storage.
// Uses json.Encoder with HTML escaping disabled so URLs in product and
// image fields round-trip byte-stable ("&" stays "&" instead of
// becoming "&").
func MarshalRecord(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("marshal record: %w", err)
	}
	// Encoder adds a trailing newline, remove it
	return strings.TrimSpace(buf.String()), nil
}

// UnmarshalRecord parses a stored slot value into v.
func UnmarshalRecord(data string, v any) error {
	if err := json.Unmarshal([]byte(data), v); err != nil {
		return fmt.Errorf("unmarshal record: %w", err)
	}
	return nil
}
