package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	br, rawCfg, err := cfg.bridge()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	changed := 0
	for _, arg := range args {
		src, err := readArg(arg)
		if err != nil {
			return err
		}
		res, err := br.FormatResult(src, argPath(arg, cfg.Path), rawCfg)
		if err != nil {
			return fmt.Errorf("error formatting %s: %w", arg, err)
		}
		if !res.Changed() {
			continue
		}
		changed++
		if err := writeDiff(cc.Out, arg, string(src), string(res.Code()), cfg.colorize(cc.Out)); err != nil {
			return err
		}
	}
	if changed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func writeDiff(w io.Writer, name, from, to string, colorize bool) error {
	dmp := diffpatch.New()
	a, b, lineIndex := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineIndex)

	add, del, head := diffSprintfs(colorize)
	if _, err := fmt.Fprint(w, head("--- %s\n+++ %s formatted\n", name, name)); err != nil {
		return err
	}
	for i := range diffs {
		d := &diffs[i]
		if d.Text == "" || d.Type == diffpatch.DiffEqual {
			continue
		}
		paint, pre := add, "+"
		if d.Type == diffpatch.DiffDelete {
			paint, pre = del, "-"
		}
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			if _, err := fmt.Fprintln(w, paint("%s%s", pre, line)); err != nil {
				return err
			}
		}
	}
	return nil
}

func diffSprintfs(colorize bool) (add, del, head func(string, ...any) string) {
	if !colorize {
		return fmt.Sprintf, fmt.Sprintf, fmt.Sprintf
	}
	return color.GreenString, color.RedString, color.CyanString
}
