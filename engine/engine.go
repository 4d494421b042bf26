package engine

import (
	"bytes"
	"errors"

	"github.com/signadot/refmt/config"
)

// ErrFormat tags every formatting failure reported by an engine.
var ErrFormat = errors.New("format error")

// Engine reformats source text of one language family. Implementations
// delegate the actual work to an existing formatter library and must be
// safe for concurrent use.
type Engine interface {
	// Name identifies the engine in host listings and logs.
	Name() string
	// Format rewrites src according to cfg. It must not mutate or
	// retain src. Failures wrap ErrFormat and carry the underlying
	// library's message.
	Format(src []byte, cfg config.Resolved) (*Result, error)
}

// Result is what an engine hands back: the reformatted code plus
// whether it differs from the input.
type Result struct {
	code    []byte
	changed bool
}

// NewResult builds the Result for src reformatted to code.
func NewResult(src, code []byte) *Result {
	return &Result{code: code, changed: !bytes.Equal(src, code)}
}

// Code returns the reformatted source text.
func (r *Result) Code() []byte { return r.code }

// Changed reports whether formatting modified the source.
func (r *Result) Changed() bool { return r.changed }

// ApplyLineEnding rewrites the line terminators of code to e.
func ApplyLineEnding(code []byte, e config.LineEnding) []byte {
	norm := bytes.ReplaceAll(code, []byte("\r\n"), []byte("\n"))
	if e == config.CRLFEnding {
		return bytes.ReplaceAll(norm, []byte("\n"), []byte("\r\n"))
	}
	return norm
}
