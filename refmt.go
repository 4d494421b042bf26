package refmt

import (
	"errors"

	"github.com/signadot/refmt/config"
	"github.com/signadot/refmt/engine"
	"github.com/signadot/refmt/engine/gofmt"
	"github.com/signadot/refmt/engine/jsonfmt"
	"github.com/signadot/refmt/engine/yamlfmt"
)

// Bridge ties a configuration resolver to an engine registry.
type Bridge struct {
	registry *engine.Registry
	resolve  []config.ResolveOption
}

type Option func(*Bridge)

// WithRegistry replaces the default engine registry.
func WithRegistry(r *engine.Registry) Option {
	return func(b *Bridge) { b.registry = r }
}

// WithRules appends path rules to the built-in ones.
func WithRules(rules ...config.Rule) Option {
	return func(b *Bridge) { b.resolve = append(b.resolve, config.WithRules(rules...)) }
}

// WithDefaults replaces the built-in defaults.
func WithDefaults(d config.Resolved) Option {
	return func(b *Bridge) { b.resolve = append(b.resolve, config.WithDefaults(d)) }
}

// NoDefaultRules drops the built-in path rules.
func NoDefaultRules() Option {
	return func(b *Bridge) { b.resolve = append(b.resolve, config.NoDefaultRules()) }
}

func New(opts ...Option) *Bridge {
	b := &Bridge{}
	for _, opt := range opts {
		opt(b)
	}
	if b.registry == nil {
		b.registry = DefaultRegistry()
	}
	return b
}

// DefaultRegistry returns a registry with the built-in engines: Go,
// YAML and JSON, with JSON handling paths no engine claims.
func DefaultRegistry() *engine.Registry {
	jf := jsonfmt.New()
	return engine.NewRegistry(
		engine.WithEngine(gofmt.New(), ".go"),
		engine.WithEngine(yamlfmt.New(), ".yaml", ".yml"),
		engine.WithEngine(jf, ".json"),
		engine.WithDefault(jf),
	)
}

func (b *Bridge) Registry() *engine.Registry { return b.registry }

// FormatResult resolves rawCfg against path, routes src to an engine
// and returns the engine's result. Unlike Format, errors keep their
// cause chains, so callers can test against config.ErrBadConfig and
// engine.ErrFormat.
func (b *Bridge) FormatResult(src []byte, path string, rawCfg []byte) (*engine.Result, error) {
	res, err := config.Resolve(rawCfg, path, b.resolve...)
	if err != nil {
		return nil, err
	}
	if len(src) == 0 {
		// Nothing to format, and engines need not handle it.
		return engine.NewResult(src, src), nil
	}
	return b.registry.Lookup(path).Format(src, res)
}

// Format is the boundary form of FormatResult: it returns the
// formatted text, and errors are flattened to their messages.
func (b *Bridge) Format(src []byte, path string, rawCfg []byte) ([]byte, error) {
	res, err := b.FormatResult(src, path, rawCfg)
	if err != nil {
		return nil, translate(err)
	}
	return res.Code(), nil
}

// Format formats src with the default bridge. path may be empty when
// the input has no file identity, and rawCfg may be empty or nil when
// the caller has no explicit options.
func Format(src []byte, path string, rawCfg []byte) ([]byte, error) {
	return New().Format(src, path, rawCfg)
}

// translate strips the cause chain off err so that internal sentinels
// do not leak across the boundary.
func translate(err error) error {
	return errors.New(err.Error())
}
