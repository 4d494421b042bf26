package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "s",
			Aliases:     []string{"set"},
			Description: "overlay inline settings onto the configuration, e.g. -s '{indent_width: 2}'",
			Type:        cli.NamedFuncOpt(cfg.settingOpt, "(settings)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "refmt").
		WithSynopsis("refmt [opts] command [opts] [files]").
		WithDescription("refmt reformats source files through per-language engines.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return refmtMain(cfg, cc, args)
		}).
		WithSubs(
			FmtCommand(cfg),
			CheckCommand(cfg),
			DiffCommand(cfg),
			EnginesCommand(cfg))
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithAliases("f").
		WithSynopsis("fmt [-w] [-path hint] [files]").
		WithDescription("reformat files, or stdin when no files are given").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtFiles(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c", "ch").
		WithSynopsis("check [files]").
		WithDescription("list files whose formatting differs, exiting 1 if any do").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff [files]").
		WithDescription("show what fmt would change, exiting 1 if anything").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func EnginesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EnginesConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Engines, "engines").
		WithAliases("e", "en").
		WithSynopsis("engines").
		WithDescription("list the registered engines and their extensions").
		WithRun(func(cc *cli.Context, args []string) error {
			return engines(cfg, cc, args)
		})
}
