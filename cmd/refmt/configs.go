package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/signadot/refmt"
	"github.com/signadot/refmt/config"
	"github.com/signadot/refmt/engine"
	"github.com/signadot/refmt/engine/gofmt"
	"github.com/signadot/refmt/engine/jsonfmt"
	"github.com/signadot/refmt/engine/yamlfmt"
)

type MainConfig struct {
	Config  string `cli:"name=c aliases=config desc='configuration file (yaml or json)'"`
	Color   bool   `cli:"name=color desc='force colored diff output'"`
	NoColor bool   `cli:"name=nocolor desc='never color diff output'"`
	Imports bool   `cli:"name=goimports desc='also fix imports when formatting go sources'"`

	Settings []string

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) settingOpt(cc *cli.Context, a string) (any, error) {
	cfg.Settings = append(cfg.Settings, a)
	return a, nil
}

// loadConfig produces the layered raw configuration document: the -c
// file, normalized to JSON, with each -s overlay merged on in order.
func (cfg *MainConfig) loadConfig() ([]byte, error) {
	var raw []byte
	if cfg.Config != "" {
		data, err := os.ReadFile(cfg.Config)
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %w", cfg.Config, err)
		}
		raw, err = config.Normalize(data)
		if err != nil {
			return nil, fmt.Errorf("error in %s: %w", cfg.Config, err)
		}
	}
	for _, s := range cfg.Settings {
		overlay, err := config.Normalize([]byte(s))
		if err != nil {
			return nil, fmt.Errorf("error in -s %q: %w", s, err)
		}
		raw, err = config.MergeRaw(raw, overlay)
		if err != nil {
			return nil, fmt.Errorf("error overlaying -s %q: %w", s, err)
		}
	}
	return raw, nil
}

// bridge assembles the formatting bridge from the layered
// configuration, returning it together with the per-call options
// encoding.
func (cfg *MainConfig) bridge() (*refmt.Bridge, []byte, error) {
	raw, err := cfg.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	file, err := config.DecodeFile(raw)
	if err != nil {
		return nil, nil, err
	}
	var bOpts []refmt.Option
	if len(file.Rules) > 0 {
		bOpts = append(bOpts, refmt.WithRules(file.Rules...))
	}
	if cfg.Imports {
		bOpts = append(bOpts, refmt.WithRegistry(importsRegistry()))
	}
	rawCfg, err := file.Config.Encode()
	if err != nil {
		return nil, nil, err
	}
	if string(rawCfg) == "{}" {
		rawCfg = nil
	}
	return refmt.New(bOpts...), rawCfg, nil
}

// importsRegistry is the default registry with the go engine swapped
// for one that fixes imports.
func importsRegistry() *engine.Registry {
	jf := jsonfmt.New()
	return engine.NewRegistry(
		engine.WithEngine(gofmt.New(gofmt.FixImports(true)), ".go"),
		engine.WithEngine(yamlfmt.New(), ".yaml", ".yml"),
		engine.WithEngine(jf, ".json"),
		engine.WithDefault(jf),
	)
}

func (cfg *MainConfig) colorize(w io.Writer) bool {
	switch {
	case cfg.Color:
		color.NoColor = false
		return true
	case cfg.NoColor:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func readArg(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", arg, err)
	}
	return data, nil
}

// argPath is the path handed to the resolver for arg: the file path
// itself, or the -path hint for stdin.
func argPath(arg, hint string) string {
	if arg == "-" {
		return hint
	}
	return arg
}

type FmtConfig struct {
	*MainConfig
	Write bool   `cli:"name=w aliases=write desc='write results back to source files'"`
	Path  string `cli:"name=path desc='path hint for stdin input'"`

	Fmt *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Path string `cli:"name=path desc='path hint for stdin input'"`

	Check *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Path string `cli:"name=path desc='path hint for stdin input'"`

	Diff *cli.Command
}

type EnginesConfig struct {
	*MainConfig

	Engines *cli.Command
}
