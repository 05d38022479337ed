package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	tool := cfg.tool()
	failed := 0
	for _, file := range args {
		src, err := readInput(cc, file)
		if err != nil {
			return err
		}
		if _, err := tool.Parse(src); err != nil {
			failed++
			if !cfg.Quiet {
				fmt.Fprintln(os.Stderr, explain(err, file, src))
			}
		}
	}
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
