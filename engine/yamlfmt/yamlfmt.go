// Package yamlfmt formats YAML documents.
//
// Documents are decoded into an ordered representation with their
// comments captured, then re-encoded under the resolved options.
// Key order and comments survive the round trip. indent_width,
// quote_style and line_ending apply; a tab indent_style is rejected
// because YAML forbids tabs in indentation, and line_width and
// magic_trailing_comma do not apply.
package yamlfmt

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/signadot/refmt/config"
	"github.com/signadot/refmt/engine"
)

type Engine struct{}

func New() *Engine { return &Engine{} }

func (e *Engine) Name() string { return "yaml" }

func (e *Engine) Format(src []byte, cfg config.Resolved) (*engine.Result, error) {
	if cfg.IndentStyle.IsTab() {
		return nil, fmt.Errorf("%w: yaml does not allow tab indentation", engine.ErrFormat)
	}
	cm := yaml.CommentMap{}
	var doc any
	if err := yaml.UnmarshalWithOptions(src, &doc,
		yaml.UseOrderedMap(),
		yaml.CommentToMap(cm)); err != nil {
		return nil, fmt.Errorf("%w: %w", engine.ErrFormat, err)
	}
	out, err := yaml.MarshalWithOptions(doc,
		yaml.Indent(cfg.IndentWidth),
		yaml.IndentSequence(true),
		yaml.UseSingleQuote(cfg.QuoteStyle == config.SingleQuote),
		yaml.UseLiteralStyleIfMultiline(true),
		yaml.WithComment(cm))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", engine.ErrFormat, err)
	}
	return engine.NewResult(src, engine.ApplyLineEnding(out, cfg.LineEnding)), nil
}
