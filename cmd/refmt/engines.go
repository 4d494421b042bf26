package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"
)

func engines(cfg *EnginesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Engines.Parse(cc, args)
	if err != nil {
		cfg.Engines.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: engines takes no arguments", cli.ErrUsage)
	}
	br, _, err := cfg.bridge()
	if err != nil {
		return err
	}
	reg := br.Registry()
	for _, e := range reg.Engines() {
		mark := ""
		if e == reg.Default() {
			mark = " (default)"
		}
		fmt.Fprintf(cc.Out, "%s\t%s%s\n", e.Name(), strings.Join(reg.Extensions(e), " "), mark)
	}
	return nil
}
