package config

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"
)

// File is the configuration document shape accepted by hosts: the
// boundary options plus path rules.
type File struct {
	Config
	Rules []Rule `json:"rules,omitempty"`
}

// DecodeFile strictly decodes a JSON-encoded host configuration
// document. Empty input yields an empty File.
func DecodeFile(raw []byte) (*File, error) {
	f := &File{}
	if len(raw) == 0 {
		return f, nil
	}
	if err := decodeStrict(raw, f); err != nil {
		return nil, err
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	for i := range f.Rules {
		if err := f.Rules[i].Set.validate(); err != nil {
			return nil, fmt.Errorf("rule %q: %w", f.Rules[i].When, err)
		}
	}
	return f, nil
}

// Normalize converts a YAML or JSON configuration document to its
// canonical JSON encoding, ready for DecodeFile or MergeRaw.
func Normalize(data []byte) ([]byte, error) {
	out, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	return out, nil
}

// MergeRaw merges overlay onto base as an RFC 7386 merge patch. Both
// are JSON-encoded configuration documents; null values in overlay
// remove the corresponding base fields. An empty side passes the other
// through unchanged.
func MergeRaw(base, overlay []byte) ([]byte, error) {
	if len(base) == 0 {
		return overlay, nil
	}
	if len(overlay) == 0 {
		return base, nil
	}
	out, err := jsonpatch.MergePatch(base, overlay)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	return out, nil
}
