package main

import (
	"fmt"

	"github.com/signadot/snow-format/go-snow/eval"

	"github.com/scott-cotton/cli"
)

func tags(cfg *TagsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tags.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: tags takes no arguments", cli.ErrUsage)
	}
	fmt.Fprintf(cc.Out, "available eval tags:\n")
	for _, s := range eval.Symbols() {
		fmt.Fprintf(cc.Out, "\t- %s\n", s)
	}
	return nil
}
