// Package gofmt formats Go source.
//
// Formatting is delegated to golang.org/x/tools/imports, which
// generalizes go/format with indentation knobs and optional
// goimports-style import fixing. The line_width, quote_style and
// magic_trailing_comma options do not apply to Go and are ignored.
package gofmt

import (
	"fmt"

	"golang.org/x/tools/imports"

	"github.com/signadot/refmt/config"
	"github.com/signadot/refmt/engine"
)

type Engine struct {
	fixImports bool
}

type Option func(*Engine)

// FixImports makes the engine insert and remove import statements in
// addition to reformatting. This consults the build context and is
// therefore not free of file-system access; it is off by default.
func FixImports(v bool) Option {
	return func(e *Engine) { e.fixImports = v }
}

func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Name() string { return "go" }

func (e *Engine) Format(src []byte, cfg config.Resolved) (*engine.Result, error) {
	out, err := imports.Process(cfg.Path, src, &imports.Options{
		Comments:   true,
		TabIndent:  cfg.IndentStyle.IsTab(),
		TabWidth:   cfg.IndentWidth,
		FormatOnly: !e.fixImports,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", engine.ErrFormat, err)
	}
	return engine.NewResult(src, engine.ApplyLineEnding(out, cfg.LineEnding)), nil
}
