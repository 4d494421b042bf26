package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Config is the boundary configuration shape. Every field is optional;
// nil means the caller left the field to be resolved from path rules or
// built-in defaults.
type Config struct {
	IndentStyle   *IndentStyle   `json:"indent_style,omitempty"`
	IndentWidth   *int           `json:"indent_width,omitempty"`
	LineWidth     *int           `json:"line_width,omitempty"`
	LineEnding    *LineEnding    `json:"line_ending,omitempty"`
	QuoteStyle    *QuoteStyle    `json:"quote_style,omitempty"`
	TrailingComma *TrailingComma `json:"magic_trailing_comma,omitempty"`
}

// Resolved is a fully populated configuration with no unset fields.
// Engines only ever see Resolved values. Path is "" when the caller
// supplied no path.
type Resolved struct {
	IndentStyle   IndentStyle
	IndentWidth   int
	LineWidth     int
	LineEnding    LineEnding
	QuoteStyle    QuoteStyle
	TrailingComma TrailingComma
	Path          string
}

// Defaults returns the built-in base configuration: space indentation
// of width 4, line width 88, lf line endings, double quotes, and
// trailing commas respected.
func Defaults() Resolved {
	return Resolved{
		IndentStyle:   SpaceIndent,
		IndentWidth:   4,
		LineWidth:     88,
		LineEnding:    LFEnding,
		QuoteStyle:    DoubleQuote,
		TrailingComma: RespectTrailingComma,
	}
}

// Indent returns one level of indentation as text.
func (r Resolved) Indent() string {
	if r.IndentStyle.IsTab() {
		return "\t"
	}
	return strings.Repeat(" ", r.IndentWidth)
}

// Decode strictly decodes a boundary-encoded configuration. Unknown
// fields, invalid enum values, non-positive widths and trailing data
// are all rejected with errors wrapping ErrBadConfig.
func Decode(raw []byte) (*Config, error) {
	cfg := &Config{}
	if err := decodeStrict(raw, cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Encode returns the boundary JSON encoding of c. Unset fields are
// omitted, so Decode(Encode(c)) reproduces c.
func (c *Config) Encode() ([]byte, error) {
	return json.Marshal(c)
}

func decodeStrict(raw []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, ErrBadConfig) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: trailing data after configuration", ErrBadConfig)
	}
	return nil
}

func (c *Config) validate() error {
	if c.IndentWidth != nil && *c.IndentWidth <= 0 {
		return fmt.Errorf("%w: indent_width must be positive, got %d", ErrBadConfig, *c.IndentWidth)
	}
	if c.LineWidth != nil && *c.LineWidth <= 0 {
		return fmt.Errorf("%w: line_width must be positive, got %d", ErrBadConfig, *c.LineWidth)
	}
	return nil
}

// apply overlays the set fields of c onto r.
func (c *Config) apply(r *Resolved) {
	if c == nil {
		return
	}
	if c.IndentStyle != nil {
		r.IndentStyle = *c.IndentStyle
	}
	if c.IndentWidth != nil {
		r.IndentWidth = *c.IndentWidth
	}
	if c.LineWidth != nil {
		r.LineWidth = *c.LineWidth
	}
	if c.LineEnding != nil {
		r.LineEnding = *c.LineEnding
	}
	if c.QuoteStyle != nil {
		r.QuoteStyle = *c.QuoteStyle
	}
	if c.TrailingComma != nil {
		r.TrailingComma = *c.TrailingComma
	}
}

// overlay copies the set fields of c onto dst, replacing fields dst
// already has.
func (c *Config) overlay(dst *Config) {
	if c.IndentStyle != nil {
		dst.IndentStyle = c.IndentStyle
	}
	if c.IndentWidth != nil {
		dst.IndentWidth = c.IndentWidth
	}
	if c.LineWidth != nil {
		dst.LineWidth = c.LineWidth
	}
	if c.LineEnding != nil {
		dst.LineEnding = c.LineEnding
	}
	if c.QuoteStyle != nil {
		dst.QuoteStyle = c.QuoteStyle
	}
	if c.TrailingComma != nil {
		dst.TrailingComma = c.TrailingComma
	}
}

// Merge resolves precedence in one place: base is the fully populated
// starting point, derived holds path-derived values, and explicit holds
// the caller's fields. Explicit fields win over derived ones; both win
// over base.
func Merge(base Resolved, derived, explicit *Config) Resolved {
	res := base
	derived.apply(&res)
	explicit.apply(&res)
	return res
}
