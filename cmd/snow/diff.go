package main

import (
	"fmt"
	"io"

	"github.com/signadot/snow-format/go-snow/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if cfg.Reverse {
		args[0], args[1] = args[1], args[0]
	}
	tool := cfg.tool()
	var srcs [2][]byte
	for i := range srcs {
		srcs[i], err = readInput(cc, args[i])
		if err != nil {
			return err
		}
	}
	from, err := tool.Parse(srcs[0])
	if err != nil {
		return explain(err, args[0], srcs[0])
	}
	to, err := tool.Parse(srcs[1])
	if err != nil {
		return explain(err, args[1], srcs[1])
	}
	var cs []libdiff.Change
	if cfg.Text {
		cs = libdiff.DiffText(from, to)
	} else {
		cs = libdiff.DiffChildren(from, to)
	}
	if !libdiff.Changed(cs) {
		return nil
	}
	if _, err := io.WriteString(cc.Out, libdiff.Format(cs, cfg.colors(cc.Out))); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
