package plan

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// LoadFile reads a plan file and decodes it into an untyped document.
// Validation always runs against this raw form so that type violations
// are reported instead of being silently coerced by struct decoding.
func LoadFile(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse plan file %s: %w", path, err)
	}

	return doc, nil
}

// Decode maps a validated document onto the typed Plan. It must only be
// called after Validate has accepted the document.
func Decode(doc any) (*Plan, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode plan document: %w", err)
	}

	var p Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to decode plan: %w", err)
	}

	return &p, nil
}

// Encode renders a plan as indented JSON, the on-disk format produced
// by `lexpr init`.
func Encode(p *Plan) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return nil, fmt.Errorf("failed to encode plan: %w", err)
	}
	return buf.Bytes(), nil
}
