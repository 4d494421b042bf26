// Package jsonfmt formats JSON documents.
//
// Input is re-indented under the resolved indent options and
// terminated with a single newline. indent_style, indent_width and
// line_ending apply; quote_style, line_width and magic_trailing_comma
// are meaningless in JSON and are ignored.
package jsonfmt

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/signadot/refmt/config"
	"github.com/signadot/refmt/engine"
)

type Engine struct{}

func New() *Engine { return &Engine{} }

func (e *Engine) Name() string { return "json" }

func (e *Engine) Format(src []byte, cfg config.Resolved) (*engine.Result, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(src), "", cfg.Indent()); err != nil {
		return nil, fmt.Errorf("%w: %w", engine.ErrFormat, err)
	}
	buf.WriteByte('\n')
	return engine.NewResult(src, engine.ApplyLineEnding(buf.Bytes(), cfg.LineEnding)), nil
}
