package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/signadot/refmt/debug"
)

// Rule pairs a path predicate with configuration values to apply when
// the predicate holds. The predicate is an expr expression evaluated
// against the variables path, base, ext and dir; ext is lower case and
// includes the leading dot.
type Rule struct {
	When string `json:"when"`
	Set  Config `json:"set"`
}

// Match reports whether the rule applies to path. Compile and
// evaluation failures are configuration errors.
func (r *Rule) Match(path string) (bool, error) {
	env := pathEnv(path)
	prg, err := expr.Compile(r.When, expr.Env(env), expr.AsBool())
	if err != nil {
		return false, fmt.Errorf("%w: rule %q: %w", ErrBadConfig, r.When, err)
	}
	out, err := expr.Run(prg, env)
	if err != nil {
		return false, fmt.Errorf("%w: rule %q: %w", ErrBadConfig, r.When, err)
	}
	return out.(bool), nil
}

func pathEnv(path string) map[string]any {
	return map[string]any{
		"path": path,
		"base": filepath.Base(path),
		"ext":  strings.ToLower(filepath.Ext(path)),
		"dir":  filepath.Dir(path),
	}
}

// DefaultRules returns the built-in per-language rules: Go sources use
// tabs, YAML and JSON use 2-space indentation. Rules only ever fill
// fields the caller left unset.
func DefaultRules() []Rule {
	return []Rule{
		{When: `ext == ".go"`, Set: Config{IndentStyle: ptr(TabIndent)}},
		{When: `ext == ".yaml" || ext == ".yml"`, Set: Config{IndentWidth: ptr(2)}},
		{When: `ext == ".json"`, Set: Config{IndentWidth: ptr(2)}},
	}
}

// derive folds every rule matching path into one partial Config. Later
// matches overwrite earlier ones field by field.
func derive(path string, rules []Rule) (*Config, error) {
	acc := &Config{}
	for i := range rules {
		ok, err := rules[i].Match(path)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if debug.Rules() {
			debug.Logf("rule %q matched %q\n", rules[i].When, path)
		}
		rules[i].Set.overlay(acc)
	}
	return acc, nil
}

func ptr[T any](v T) *T { return &v }
