package catalog

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// record mirrors the on-disk shape of a catalog. The schema version travels
// under "version" in the interchange format.
type record struct {
	Name         string            `json:"name" yaml:"name"`
	Code         string            `json:"code" yaml:"code"`
	Version      int               `json:"version" yaml:"version"`
	Revision     int               `json:"revision" yaml:"revision"`
	Authors      []string          `json:"authors" yaml:"authors"`
	Contributors []string          `json:"contributors" yaml:"contributors"`
	Translations map[string]string `json:"translations" yaml:"translations"`
}

// requiredFields are the fields a version-1 document must carry besides
// "version" itself.
var requiredFields = []string{"name", "code", "revision", "authors", "contributors", "translations"}

// Parse decodes a JSON catalog document.
//
// A document that does not decode, lacks the "version" field, or lacks any
// other required field at version 1 fails with ErrInvalidFormat. A document
// declaring a version other than SupportedVersion fails with
// ErrUnsupportedVersion regardless of its remaining contents; newer schemas
// are rejected, not guessed at.
func Parse(data []byte) (*Catalog, error) {
	return parse(func(v any) error { return json.Unmarshal(data, v) })
}

// ParseYAML decodes a YAML catalog document under the same validation rules
// as Parse.
func ParseYAML(data []byte) (*Catalog, error) {
	return parse(func(v any) error { return yaml.Unmarshal(data, v) })
}

func parse(unmarshal func(any) error) (*Catalog, error) {
	var fields map[string]any
	if err := unmarshal(&fields); err != nil {
		return nil, fmt.Errorf("%w: decoding document: %s", ErrInvalidFormat, err)
	}

	version, ok := fields["version"]
	if !ok {
		return nil, fmt.Errorf("%w: missing field %q", ErrInvalidFormat, "version")
	}
	if !isSupportedVersion(version) {
		return nil, fmt.Errorf("%w: got %v, want %d", ErrUnsupportedVersion, version, SupportedVersion)
	}

	for _, field := range requiredFields {
		if _, ok := fields[field]; !ok {
			return nil, fmt.Errorf("%w: missing field %q", ErrInvalidFormat, field)
		}
	}

	var rec record
	if err := unmarshal(&rec); err != nil {
		return nil, fmt.Errorf("%w: decoding fields: %s", ErrInvalidFormat, err)
	}

	return &Catalog{
		Name:          rec.Name,
		Code:          rec.Code,
		FormatVersion: rec.Version,
		Revision:      rec.Revision,
		Authors:       rec.Authors,
		Contributors:  rec.Contributors,
		Translations:  rec.Translations,
	}, nil
}

// isSupportedVersion matches the decoded version against SupportedVersion.
// JSON numbers decode as float64 and YAML ones as int, so both are checked.
func isSupportedVersion(v any) bool {
	switch n := v.(type) {
	case float64:
		return n == SupportedVersion
	case int:
		return n == SupportedVersion
	case int64:
		return n == SupportedVersion
	default:
		return false
	}
}

// Serialize emits the catalog as a JSON document carrying all seven fields.
func (c *Catalog) Serialize() ([]byte, error) {
	return json.Marshal(c.record())
}

// SerializeYAML emits the catalog as a YAML document carrying all seven
// fields.
func (c *Catalog) SerializeYAML() ([]byte, error) {
	return yaml.Marshal(c.record())
}

func (c *Catalog) record() record {
	return record{
		Name:         c.Name,
		Code:         c.Code,
		Version:      c.FormatVersion,
		Revision:     c.Revision,
		Authors:      c.Authors,
		Contributors: c.Contributors,
		Translations: c.Translations,
	}
}
