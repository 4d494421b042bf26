package gofmt

import (
	"errors"
	"strings"
	"testing"

	"github.com/signadot/refmt/config"
	"github.com/signadot/refmt/engine"
)

func tabCfg() config.Resolved {
	r := config.Defaults()
	r.IndentStyle = config.TabIndent
	return r
}

func TestFormat(t *testing.T) {
	src := []byte("package main\n\nimport \"fmt\"\n\nfunc main() {\nfmt.Println(\"hi\")\n}\n")
	want := "package main\n\nimport \"fmt\"\n\nfunc main() {\n\tfmt.Println(\"hi\")\n}\n"
	res, err := New().Format(src, tabCfg())
	if err != nil {
		t.Fatalf("Format(): %v", err)
	}
	if got := string(res.Code()); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
	if !res.Changed() {
		t.Error("Changed() = false on reindented source")
	}
}

func TestFormatIdempotent(t *testing.T) {
	src := []byte("package main\n\nfunc main() {\nx:=1\n_=x\n}\n")
	res, err := New().Format(src, tabCfg())
	if err != nil {
		t.Fatalf("Format(): %v", err)
	}
	res2, err := New().Format(res.Code(), tabCfg())
	if err != nil {
		t.Fatalf("Format() again: %v", err)
	}
	if res2.Changed() {
		t.Errorf("second pass changed output: %q -> %q", res.Code(), res2.Code())
	}
}

func TestFormatSpaceIndent(t *testing.T) {
	cfg := config.Defaults()
	cfg.IndentWidth = 4
	src := []byte("package main\n\nfunc main() {\nprintln(1)\n}\n")
	res, err := New().Format(src, cfg)
	if err != nil {
		t.Fatalf("Format(): %v", err)
	}
	if got := string(res.Code()); !strings.Contains(got, "\n    println(1)\n") {
		t.Errorf("Format() = %q, want 4-space indent", got)
	}
}

func TestFormatSyntaxError(t *testing.T) {
	src := []byte("package main\n\nfunc (\n")
	_, err := New().Format(src, tabCfg())
	if err == nil {
		t.Fatal("Format() succeeded on bad source, want error")
	}
	if !errors.Is(err, engine.ErrFormat) {
		t.Errorf("error %v does not wrap ErrFormat", err)
	}
}

func TestFormatCRLF(t *testing.T) {
	cfg := tabCfg()
	cfg.LineEnding = config.CRLFEnding
	src := []byte("package main\n\nfunc main() {}\n")
	res, err := New().Format(src, cfg)
	if err != nil {
		t.Fatalf("Format(): %v", err)
	}
	if got := string(res.Code()); got != "package main\r\n\r\nfunc main() {}\r\n" {
		t.Errorf("Format() = %q, want crlf endings", got)
	}
}

func TestName(t *testing.T) {
	if got := New().Name(); got != "go" {
		t.Errorf("Name() = %q, want go", got)
	}
}
