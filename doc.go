// Package refmt routes source text to a formatting engine and returns
// the formatted text.
//
// A single call carries the input, an optional path and an optional
// raw JSON configuration. The configuration is resolved against
// built-in defaults and path rules, the path selects an engine, and
// the engine's output comes back as the formatted text or an error.
//
// # Usage
//
//	// Format with defaults
//	out, err := refmt.Format(src, "main.go", nil)
//
//	// Format with explicit options
//	out, err := refmt.Format(src, "app.yaml", []byte(`{"indent_width": 4}`))
//
//	// A long-lived bridge with custom rules
//	b := refmt.New(refmt.WithRules(config.Rule{
//		When: `ext == ".json"`,
//		Set:  config.Config{IndentWidth: ptr(2)},
//	}))
//	out, err := b.Format(src, "data.json", nil)
//
// # Related Packages
//
//   - github.com/signadot/refmt/config - Option resolution
//   - github.com/signadot/refmt/engine - Engine interface and registry
package refmt
