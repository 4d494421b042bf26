package config

import (
	"github.com/signadot/refmt/debug"
)

type resolveOpts struct {
	defaults Resolved
	rules    []Rule
}

type ResolveOption func(*resolveOpts)

// WithRules appends path rules evaluated after the built-in ones, so
// they win over the built-ins for fields the caller left unset.
func WithRules(rules ...Rule) ResolveOption {
	return func(o *resolveOpts) { o.rules = append(o.rules, rules...) }
}

// WithDefaults replaces the built-in base configuration.
func WithDefaults(r Resolved) ResolveOption {
	return func(o *resolveOpts) { o.defaults = r }
}

// NoDefaultRules drops the built-in per-language rules.
func NoDefaultRules() ResolveOption {
	return func(o *resolveOpts) { o.rules = nil }
}

// Resolve produces the fully populated configuration for one call.
// raw is the boundary-encoded configuration, or empty when the caller
// supplied none. An empty path means "no path": no rules run and
// Resolved.Path is "".
func Resolve(raw []byte, path string, opts ...ResolveOption) (Resolved, error) {
	o := &resolveOpts{defaults: Defaults(), rules: DefaultRules()}
	for _, opt := range opts {
		opt(o)
	}
	var explicit *Config
	if len(raw) > 0 {
		var err error
		explicit, err = Decode(raw)
		if err != nil {
			return Resolved{}, err
		}
	}
	var derived *Config
	if path != "" {
		var err error
		derived, err = derive(path, o.rules)
		if err != nil {
			return Resolved{}, err
		}
	}
	res := Merge(o.defaults, derived, explicit)
	res.Path = path
	if debug.Resolve() {
		debug.Logf("resolved %q: %s/%d width=%d %s %s %s\n",
			path, res.IndentStyle, res.IndentWidth, res.LineWidth,
			res.LineEnding, res.QuoteStyle, res.TrailingComma)
	}
	return res, nil
}
