// Package config models formatting configuration and resolves it for
// engine consumption.
//
// # Usage
//
//	// Resolve the built-in defaults
//	cfg, err := config.Resolve(nil, "")
//
//	// Resolve a boundary-encoded configuration for a path
//	cfg, err := config.Resolve([]byte(`{"indent_width": 2}`), "deploy.yaml")
//
//	// Resolve with additional path rules
//	cfg, err := config.Resolve(raw, path, config.WithRules(rules...))
//
// Resolution merges three layers with fixed precedence: built-in
// defaults, then values derived from the path by matching rules, then
// the caller's explicit fields. Explicit fields always win.
//
// # Related Packages
//
//   - github.com/signadot/refmt/engine - Engines consuming Resolved values
package config
