package engine

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/signadot/refmt/debug"
)

// Registry routes paths to engines by file extension. It is immutable
// once constructed.
type Registry struct {
	byExt map[string]Engine
	dflt  Engine
}

type RegistryOption func(*Registry)

// WithEngine registers e for the given extensions. Extensions are
// matched case-insensitively and include the leading dot.
func WithEngine(e Engine, exts ...string) RegistryOption {
	return func(r *Registry) {
		for _, ext := range exts {
			r.byExt[normExt(ext)] = e
		}
	}
}

// WithDefault sets the engine used when the path is empty or its
// extension is not registered.
func WithDefault(e Engine) RegistryOption {
	return func(r *Registry) { r.dflt = e }
}

// NewRegistry builds a routing table from the given options. When no
// default engine is set, the default is the engine of the first
// registered extension in sorted order.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{byExt: map[string]Engine{}}
	for _, opt := range opts {
		opt(r)
	}
	if r.dflt == nil {
		exts := r.exts()
		if len(exts) > 0 {
			r.dflt = r.byExt[exts[0]]
		}
	}
	return r
}

// Lookup returns the engine for path. An empty path or an unknown
// extension selects the default engine.
func (r *Registry) Lookup(path string) Engine {
	e := r.dflt
	if path != "" {
		if byExt, ok := r.byExt[normExt(filepath.Ext(path))]; ok {
			e = byExt
		}
	}
	if debug.Engine() && e != nil {
		debug.Logf("engine %s for %q\n", e.Name(), path)
	}
	return e
}

// Default returns the engine used when no extension matches.
func (r *Registry) Default() Engine { return r.dflt }

// Engines lists the registered engines once each, ordered by name.
func (r *Registry) Engines() []Engine {
	seen := map[string]Engine{}
	for _, e := range r.byExt {
		seen[e.Name()] = e
	}
	if r.dflt != nil {
		seen[r.dflt.Name()] = r.dflt
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	res := make([]Engine, len(names))
	for i, name := range names {
		res[i] = seen[name]
	}
	return res
}

// Extensions returns the extensions routed to e, sorted.
func (r *Registry) Extensions(e Engine) []string {
	var res []string
	for ext, ee := range r.byExt {
		if ee == e {
			res = append(res, ext)
		}
	}
	sort.Strings(res)
	return res
}

func (r *Registry) exts() []string {
	res := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		res = append(res, ext)
	}
	sort.Strings(res)
	return res
}

func normExt(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && ext[0] != '.' {
		ext = "." + ext
	}
	return ext
}
