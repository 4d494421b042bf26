package jsonfmt

import (
	"errors"
	"testing"

	"github.com/signadot/refmt/config"
	"github.com/signadot/refmt/engine"
)

func jsonCfg() config.Resolved {
	r := config.Defaults()
	r.IndentWidth = 2
	return r
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		in   string
		cfg  config.Resolved
		want string
	}{
		{
			name: "reindent",
			in:   `{"b":1,"a":[1,2]}`,
			cfg:  jsonCfg(),
			want: "{\n  \"b\": 1,\n  \"a\": [\n    1,\n    2\n  ]\n}\n",
		},
		{
			name: "tab indent",
			in:   `{"a":1}`,
			cfg: func() config.Resolved {
				r := jsonCfg()
				r.IndentStyle = config.TabIndent
				return r
			}(),
			want: "{\n\t\"a\": 1\n}\n",
		},
		{
			name: "scalar",
			in:   `  42  `,
			cfg:  jsonCfg(),
			want: "42\n",
		},
		{
			name: "crlf ending",
			in:   `{"a":1}`,
			cfg: func() config.Resolved {
				r := jsonCfg()
				r.LineEnding = config.CRLFEnding
				return r
			}(),
			want: "{\r\n  \"a\": 1\r\n}\r\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := New().Format([]byte(tt.in), tt.cfg)
			if err != nil {
				t.Fatalf("Format(%q): %v", tt.in, err)
			}
			if got := string(res.Code()); got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatIdempotent(t *testing.T) {
	res, err := New().Format([]byte(`{"a": {"b": [1]}}`), jsonCfg())
	if err != nil {
		t.Fatalf("Format(): %v", err)
	}
	res2, err := New().Format(res.Code(), jsonCfg())
	if err != nil {
		t.Fatalf("Format() again: %v", err)
	}
	if res2.Changed() {
		t.Errorf("second pass changed output: %q -> %q", res.Code(), res2.Code())
	}
}

func TestFormatBadInput(t *testing.T) {
	_, err := New().Format([]byte(`{"a": }`), jsonCfg())
	if err == nil {
		t.Fatal("Format() succeeded on bad input, want error")
	}
	if !errors.Is(err, engine.ErrFormat) {
		t.Errorf("error %v does not wrap ErrFormat", err)
	}
}

func TestName(t *testing.T) {
	if got := New().Name(); got != "json" {
		t.Errorf("Name() = %q, want json", got)
	}
}
