package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: check requires at least one file", cli.ErrUsage)
	}
	br, rawCfg, err := cfg.bridge()
	if err != nil {
		return err
	}
	dirty := 0
	for _, arg := range args {
		src, err := readArg(arg)
		if err != nil {
			return err
		}
		res, err := br.FormatResult(src, argPath(arg, cfg.Path), rawCfg)
		if err != nil {
			return fmt.Errorf("error formatting %s: %w", arg, err)
		}
		if res.Changed() {
			fmt.Fprintln(cc.Out, arg)
			dirty++
		}
	}
	if dirty > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
