package refmt

import (
	"errors"
	"strings"
	"testing"

	"github.com/signadot/refmt/config"
	"github.com/signadot/refmt/engine"
)

type stubEngine struct {
	name  string
	calls []config.Resolved
	err   error
}

func (s *stubEngine) Name() string { return s.name }

func (s *stubEngine) Format(src []byte, cfg config.Resolved) (*engine.Result, error) {
	s.calls = append(s.calls, cfg)
	if s.err != nil {
		return nil, s.err
	}
	return engine.NewResult(src, append([]byte(s.name+":"), src...)), nil
}

func stubBridge(opts ...Option) (*Bridge, *stubEngine, *stubEngine) {
	a := &stubEngine{name: "a"}
	b := &stubEngine{name: "b"}
	reg := engine.NewRegistry(
		engine.WithEngine(a, ".aaa"),
		engine.WithDefault(b),
	)
	return New(append([]Option{WithRegistry(reg)}, opts...)...), a, b
}

func TestFormatRoutesByExtension(t *testing.T) {
	br, a, b := stubBridge()
	out, err := br.Format([]byte("x"), "file.aaa", nil)
	if err != nil {
		t.Fatalf("Format(): %v", err)
	}
	if string(out) != "a:x" {
		t.Errorf("Format() = %q, want %q", out, "a:x")
	}
	if len(a.calls) != 1 || len(b.calls) != 0 {
		t.Errorf("calls = %d/%d, want 1/0", len(a.calls), len(b.calls))
	}
	if a.calls[0].Path != "file.aaa" {
		t.Errorf("engine saw path %q, want file.aaa", a.calls[0].Path)
	}
}

func TestFormatDefaultEngine(t *testing.T) {
	br, a, b := stubBridge()
	if _, err := br.Format([]byte("x"), "", nil); err != nil {
		t.Fatalf("Format(): %v", err)
	}
	if _, err := br.Format([]byte("x"), "file.zzz", nil); err != nil {
		t.Fatalf("Format(): %v", err)
	}
	if len(a.calls) != 0 || len(b.calls) != 2 {
		t.Errorf("calls = %d/%d, want 0/2", len(a.calls), len(b.calls))
	}
}

func TestFormatEmptyInput(t *testing.T) {
	br, a, _ := stubBridge()
	res, err := br.FormatResult(nil, "file.aaa", nil)
	if err != nil {
		t.Fatalf("FormatResult(): %v", err)
	}
	if len(res.Code()) != 0 {
		t.Errorf("Code() = %q, want empty", res.Code())
	}
	if res.Changed() {
		t.Error("Changed() = true for empty input")
	}
	if len(a.calls) != 0 {
		t.Error("engine invoked for empty input")
	}
}

func TestFormatBadConfigBeforeEngine(t *testing.T) {
	br, a, _ := stubBridge()
	_, err := br.FormatResult([]byte("x"), "file.aaa", []byte(`{"indent_width": 0}`))
	if err == nil {
		t.Fatal("FormatResult() succeeded, want error")
	}
	if !errors.Is(err, config.ErrBadConfig) {
		t.Errorf("FormatResult() error %v does not wrap ErrBadConfig", err)
	}
	if len(a.calls) != 0 {
		t.Error("engine invoked despite bad config")
	}

	// Bad config fails even when the input is empty
	if _, err := br.FormatResult(nil, "", []byte(`{`)); err == nil {
		t.Fatal("FormatResult() succeeded on bad config with empty input")
	}
}

func TestFormatFlattensErrors(t *testing.T) {
	br, a, _ := stubBridge()
	a.err = engine.ErrFormat

	_, err := br.FormatResult([]byte("x"), "file.aaa", nil)
	if !errors.Is(err, engine.ErrFormat) {
		t.Errorf("FormatResult() error %v does not wrap ErrFormat", err)
	}

	_, err = br.Format([]byte("x"), "file.aaa", nil)
	if err == nil {
		t.Fatal("Format() succeeded, want error")
	}
	if errors.Is(err, engine.ErrFormat) {
		t.Error("Format() error keeps its cause chain across the boundary")
	}
	if !strings.Contains(err.Error(), engine.ErrFormat.Error()) {
		t.Errorf("Format() error %q lost its message", err)
	}
}

func TestFormatResolvedReachesEngine(t *testing.T) {
	br, a, _ := stubBridge()
	_, err := br.Format([]byte("x"), "file.aaa", []byte(`{"indent_width": 7, "quote_style": "single"}`))
	if err != nil {
		t.Fatalf("Format(): %v", err)
	}
	cfg := a.calls[0]
	if cfg.IndentWidth != 7 || cfg.QuoteStyle != config.SingleQuote {
		t.Errorf("engine saw %+v, want width 7 and single quotes", cfg)
	}
	if cfg.LineWidth != 88 {
		t.Errorf("engine saw line width %d, want default 88", cfg.LineWidth)
	}
}

func TestBridgeRules(t *testing.T) {
	br, a, _ := stubBridge(WithRules(config.Rule{
		When: `ext == ".aaa"`,
		Set:  config.Config{IndentWidth: ptrInt(3)},
	}))
	if _, err := br.Format([]byte("x"), "file.aaa", nil); err != nil {
		t.Fatalf("Format(): %v", err)
	}
	if got := a.calls[0].IndentWidth; got != 3 {
		t.Errorf("engine saw width %d, want 3", got)
	}
}

func ptrInt(v int) *int { return &v }

func TestDefaultRegistryRouting(t *testing.T) {
	reg := DefaultRegistry()
	tests := []struct {
		path string
		want string
	}{
		{"main.go", "go"},
		{"app.yaml", "yaml"},
		{"app.yml", "yaml"},
		{"data.json", "json"},
		{"", "json"},
		{"unknown.xyz", "json"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := reg.Lookup(tt.path).Name(); got != tt.want {
				t.Errorf("Lookup(%q) = %s, want %s", tt.path, got, tt.want)
			}
		})
	}
}

func TestFormatGoSource(t *testing.T) {
	src := []byte("package main\n\nfunc main() {\nprintln(1)\n}\n")
	out, err := Format(src, "main.go", nil)
	if err != nil {
		t.Fatalf("Format(): %v", err)
	}
	if want := "package main\n\nfunc main() {\n\tprintln(1)\n}\n"; string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestFormatYAMLSource(t *testing.T) {
	out, err := Format([]byte("b:\n        c: 1\n"), "app.yaml", nil)
	if err != nil {
		t.Fatalf("Format(): %v", err)
	}
	if want := "b:\n  c: 1\n"; string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

// Without a path no rules run, so JSON indents with the built-in
// 4-space default rather than the .json rule's 2.
func TestFormatNoPath(t *testing.T) {
	out, err := Format([]byte(`{"a":1}`), "", nil)
	if err != nil {
		t.Fatalf("Format(): %v", err)
	}
	if want := "{\n    \"a\": 1\n}\n"; string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestFormatJSONPath(t *testing.T) {
	out, err := Format([]byte(`{"a":1}`), "data.json", nil)
	if err != nil {
		t.Fatalf("Format(): %v", err)
	}
	if want := "{\n  \"a\": 1\n}\n"; string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}
