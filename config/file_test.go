package config

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeFile(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    *File
		wantErr bool
	}{
		{
			name: "empty",
			raw:  "",
			want: &File{},
		},
		{
			name: "options and rules",
			raw: `{"indent_width": 2, "rules": [
				{"when": "ext == \".go\"", "set": {"indent_style": "tab"}}
			]}`,
			want: &File{
				Config: Config{IndentWidth: ptr(2)},
				Rules: []Rule{
					{When: `ext == ".go"`, Set: Config{IndentStyle: ptr(TabIndent)}},
				},
			},
		},
		{name: "unknown field", raw: `{"indnet_width": 2}`, wantErr: true},
		{name: "bad option", raw: `{"line_width": 0}`, wantErr: true},
		{name: "bad rule set width", raw: `{"rules": [{"when": "true", "set": {"indent_width": -1}}]}`, wantErr: true},
		{name: "bad rule set enum", raw: `{"rules": [{"when": "true", "set": {"quote_style": "backtick"}}]}`, wantErr: true},
		{name: "unknown rule field", raw: `{"rules": [{"iff": "true"}]}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeFile([]byte(tt.raw))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("DecodeFile(%s) succeeded, want error", tt.raw)
				}
				if !errors.Is(err, ErrBadConfig) {
					t.Errorf("DecodeFile(%s) error %v does not wrap ErrBadConfig", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeFile(%s): %v", tt.raw, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DecodeFile(%s) mismatch (-want +got):\n%s", tt.raw, diff)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	yamlDoc := []byte(`indent_width: 2
quote_style: single
rules:
  - when: ext == ".go"
    set:
      indent_style: tab
`)
	raw, err := Normalize(yamlDoc)
	if err != nil {
		t.Fatalf("Normalize(): %v", err)
	}
	got, err := DecodeFile(raw)
	if err != nil {
		t.Fatalf("DecodeFile(Normalize()): %v", err)
	}
	want := &File{
		Config: Config{IndentWidth: ptr(2), QuoteStyle: ptr(SingleQuote)},
		Rules: []Rule{
			{When: `ext == ".go"`, Set: Config{IndentStyle: ptr(TabIndent)}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeJSONPassesThrough(t *testing.T) {
	raw, err := Normalize([]byte(`{"indent_width": 2}`))
	if err != nil {
		t.Fatalf("Normalize(): %v", err)
	}
	got, err := DecodeFile(raw)
	if err != nil {
		t.Fatalf("DecodeFile(Normalize()): %v", err)
	}
	want := &File{Config: Config{IndentWidth: ptr(2)}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeBadInput(t *testing.T) {
	if _, err := Normalize([]byte("a: [1,\n")); err == nil {
		t.Fatal("Normalize() succeeded on bad input, want error")
	} else if !errors.Is(err, ErrBadConfig) {
		t.Errorf("Normalize() error %v does not wrap ErrBadConfig", err)
	}
}

func TestMergeRaw(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		overlay string
		want    map[string]any
		wantErr bool
	}{
		{
			name:    "empty base",
			overlay: `{"indent_width": 2}`,
			want:    map[string]any{"indent_width": 2.0},
		},
		{
			name: "empty overlay",
			base: `{"indent_width": 2}`,
			want: map[string]any{"indent_width": 2.0},
		},
		{
			name:    "overlay wins",
			base:    `{"indent_width": 2, "line_width": 88}`,
			overlay: `{"indent_width": 8}`,
			want:    map[string]any{"indent_width": 8.0, "line_width": 88.0},
		},
		{
			name:    "null removes",
			base:    `{"indent_width": 2, "line_width": 88}`,
			overlay: `{"line_width": null}`,
			want:    map[string]any{"indent_width": 2.0},
		},
		{
			name:    "arrays replaced wholesale",
			base:    `{"rules": [{"when": "true", "set": {}}]}`,
			overlay: `{"rules": []}`,
			want:    map[string]any{"rules": []any{}},
		},
		{
			name:    "bad overlay",
			base:    `{}`,
			overlay: `{`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged, err := MergeRaw([]byte(tt.base), []byte(tt.overlay))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("MergeRaw() succeeded, want error")
				}
				if !errors.Is(err, ErrBadConfig) {
					t.Errorf("MergeRaw() error %v does not wrap ErrBadConfig", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("MergeRaw(): %v", err)
			}
			var got map[string]any
			if err := json.Unmarshal(merged, &got); err != nil {
				t.Fatalf("MergeRaw() produced bad JSON %s: %v", merged, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("MergeRaw() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
