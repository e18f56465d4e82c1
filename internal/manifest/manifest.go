package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ErrInvalidManifest is returned when a manifest is malformed (bad syntax, unknown
// fields, missing or duplicate names).
var ErrInvalidManifest = errors.New("invalid manifest")

// Format selects the manifest decoder.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFor picks the format from a file extension; anything but .json is YAML.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// CollectionSpec declares one sequence container.
type CollectionSpec struct {
	Name    string `json:"name" mapstructure:"name"`
	Type    string `json:"type" mapstructure:"type"`
	Mutable bool   `json:"mutable" mapstructure:"mutable"`
	Sorted  bool   `json:"sorted" mapstructure:"sorted"`
	Items   []any  `json:"items" mapstructure:"items"`
}

// EntrySpec is one key/value pair of a dictionary declaration.
type EntrySpec struct {
	Key   any `json:"key" mapstructure:"key"`
	Value any `json:"value" mapstructure:"value"`
}

// DictionarySpec declares one dictionary container.
type DictionarySpec struct {
	Name      string      `json:"name" mapstructure:"name"`
	KeyType   string      `json:"key_type" mapstructure:"key_type"`
	ValueType string      `json:"value_type" mapstructure:"value_type"`
	Mutable   bool        `json:"mutable" mapstructure:"mutable"`
	Entries   []EntrySpec `json:"entries" mapstructure:"entries"`
}

// Manifest is the root of a manifest file.
type Manifest struct {
	Collections  []CollectionSpec `json:"collections" mapstructure:"collections"`
	Dictionaries []DictionarySpec `json:"dictionaries" mapstructure:"dictionaries"`
}

// Load reads a manifest file (YAML or JSON, chosen by extension).
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	m, err := Parse(data, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes a manifest document.
func Parse(data []byte, format Format) (*Manifest, error) {
	var raw map[string]any

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: failed to parse json: %v", ErrInvalidManifest, err)
		}
		raw, _ = narrowNumbers(raw).(map[string]any)
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: failed to parse yaml: %v", ErrInvalidManifest, err)
		}
	}

	var m Manifest
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &m,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}

	if err := m.validateNames(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) validateNames() error {
	seen := make(map[string]bool)
	check := func(kind, name string) error {
		if name == "" {
			return fmt.Errorf("%w: %s without a name", ErrInvalidManifest, kind)
		}
		if seen[name] {
			return fmt.Errorf("%w: duplicate name %q", ErrInvalidManifest, name)
		}
		seen[name] = true
		return nil
	}
	for _, c := range m.Collections {
		if err := check("collection", c.Name); err != nil {
			return err
		}
	}
	for _, d := range m.Dictionaries {
		if err := check("dictionary", d.Name); err != nil {
			return err
		}
	}
	return nil
}

// narrowNumbers turns json.Number values into int when they are whole and fit,
// float64 otherwise, so JSON manifests type their numbers like YAML ones do.
func narrowNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil && !strings.ContainsAny(t.String(), ".eE") {
			return int(i)
		}
		f, _ := t.Float64()
		return f
	case map[string]any:
		for k, item := range t {
			t[k] = narrowNumbers(item)
		}
		return t
	case []any:
		for i, item := range t {
			t[i] = narrowNumbers(item)
		}
		return t
	}
	return v
}
