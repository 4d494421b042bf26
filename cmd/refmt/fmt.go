package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func fmtFiles(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	br, rawCfg, err := cfg.bridge()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if cfg.Write && arg == "-" {
			return fmt.Errorf("%w: -w does not apply to stdin", cli.ErrUsage)
		}
		src, err := readArg(arg)
		if err != nil {
			return err
		}
		out, err := br.Format(src, argPath(arg, cfg.Path), rawCfg)
		if err != nil {
			return fmt.Errorf("error formatting %s: %w", arg, err)
		}
		if cfg.Write {
			if err := os.WriteFile(arg, out, 0644); err != nil {
				return fmt.Errorf("error writing %s: %w", arg, err)
			}
			continue
		}
		if _, err := cc.Out.Write(out); err != nil {
			return err
		}
	}
	return nil
}
