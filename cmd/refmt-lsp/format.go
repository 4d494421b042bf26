package main

import (
	"bytes"
	"context"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/signadot/refmt/config"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}

	br, rawCfg := s.settings.snapshot()
	rawCfg, err := editorDefaults(rawCfg, params.Options)
	if err != nil {
		s.log.Warn("bad editor options", zap.Error(err))
		return nil, nil
	}

	res, err := br.FormatResult([]byte(doc.content), uriPath(doc.uri), rawCfg)
	if err != nil {
		// Diagnostics already surface the failure
		s.log.Debug("formatting failed",
			zap.String("uri", doc.uri),
			zap.Error(err))
		return nil, nil
	}

	// If content hasn't changed, return empty edits
	if !res.Changed() {
		return []protocol.TextEdit{}, nil
	}

	// Calculate line count for the range
	lines := bytes.Count([]byte(doc.content), []byte("\n"))
	if len(doc.content) > 0 && doc.content[len(doc.content)-1] != '\n' {
		lines++
	}

	// Return a single edit that replaces the entire document
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End: protocol.Position{
					Line:      uint32(lines),
					Character: 0,
				},
			},
			NewText: string(res.Code()),
		},
	}, nil
}

// editorDefaults layers the configured settings over the editor's tab
// preferences, so the editor only fills fields the settings leave
// unset.
func editorDefaults(rawCfg []byte, opts protocol.FormattingOptions) ([]byte, error) {
	c := &config.Config{}
	style := config.TabIndent
	if opts.InsertSpaces {
		style = config.SpaceIndent
	}
	c.IndentStyle = &style
	if opts.TabSize > 0 {
		width := int(opts.TabSize)
		c.IndentWidth = &width
	}
	editor, err := c.Encode()
	if err != nil {
		return nil, err
	}
	return config.MergeRaw(editor, rawCfg)
}
