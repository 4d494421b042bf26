// Package engine defines the formatting engine contract and routes
// paths to engines.
//
// # Usage
//
//	// Build a routing table
//	reg := engine.NewRegistry(
//	    engine.WithEngine(gofmt.New(), ".go"),
//	    engine.WithDefault(jsonfmt.New()),
//	)
//
//	// Route a path and format
//	eng := reg.Lookup("main.go")
//	res, err := eng.Format(src, cfg)
//
// Engines wrap existing formatter libraries; this package contains no
// formatting logic of its own. A Registry is immutable once
// constructed, so concurrent lookups need no locking.
//
// # Related Packages
//
//   - github.com/signadot/refmt/config - Resolved configuration consumed by engines
//   - github.com/signadot/refmt/engine/gofmt - Go sources
//   - github.com/signadot/refmt/engine/yamlfmt - YAML documents
//   - github.com/signadot/refmt/engine/jsonfmt - JSON documents
package engine
