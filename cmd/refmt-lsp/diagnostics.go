package main

import (
	"context"
	"regexp"
	"strconv"

	"go.lsp.dev/protocol"
)

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}

	diagnostics := s.validateDocument(doc)

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

// validateDocument runs the document through its engine and reports
// the failure, if any, as a diagnostic.
func (s *Server) validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}

	br, rawCfg := s.settings.snapshot()
	_, err := br.FormatResult([]byte(doc.content), uriPath(doc.uri), rawCfg)
	if err == nil {
		return diagnostics
	}

	diagnostic := protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   protocol.Position{Line: 0, Character: 0},
		},
		Severity: protocol.DiagnosticSeverityError,
		Message:  err.Error(),
		Source:   "refmt",
	}

	// Try to parse position from error string
	if pos := extractPosition(err.Error()); pos != nil {
		diagnostic.Range = protocol.Range{
			Start: protocol.Position{
				Line:      uint32(pos.line),
				Character: uint32(pos.col),
			},
			End: protocol.Position{
				Line:      uint32(pos.line),
				Character: uint32(pos.col + 1),
			},
		}
	}

	return append(diagnostics, diagnostic)
}

type position struct {
	line int
	col  int
}

var (
	// go/parser style: "file.go:3:5: expected ..."
	lineColRe = regexp.MustCompile(`(\d+):(\d+): `)
	// yaml style: "[3:5] unexpected ..."
	bracketRe = regexp.MustCompile(`\[(\d+):(\d+)\]`)
)

// extractPosition pulls a 1-based line:column out of a formatter error
// message, converted to 0-based.
func extractPosition(errMsg string) *position {
	m := lineColRe.FindStringSubmatch(errMsg)
	if m == nil {
		m = bracketRe.FindStringSubmatch(errMsg)
	}
	if m == nil {
		return nil
	}
	line, _ := strconv.Atoi(m[1])
	col, _ := strconv.Atoi(m[2])
	return &position{line: max(line-1, 0), col: max(col-1, 0)}
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}

	content := doc.content
	for _, change := range params.ContentChanges {
		content = spliceChange(content, change)
	}

	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

// spliceChange applies one content change. The server advertises full
// sync, so changes normally replace the whole document; ranged changes
// from clients that ignore that are spliced in.
func spliceChange(content string, change protocol.TextDocumentContentChangeEvent) string {
	r := change.Range
	if r.Start == (protocol.Position{}) && r.End == (protocol.Position{}) {
		return change.Text
	}
	start := offsetAt(content, int(r.Start.Line), int(r.Start.Character))
	end := offsetAt(content, int(r.End.Line), int(r.End.Character))
	if start > end {
		return change.Text
	}
	return content[:start] + change.Text + content[end:]
}

// offsetAt returns the byte offset of line:col, clamped to the
// document.
func offsetAt(content string, line, col int) int {
	off := 0
	for ; line > 0 && off < len(content); off++ {
		if content[off] == '\n' {
			line--
		}
	}
	return min(off+col, len(content))
}
