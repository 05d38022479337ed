package main

import (
	"fmt"
	"io"

	"github.com/signadot/snow-format/go-snow/encode"
	"github.com/signadot/snow-format/go-snow/ir"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachDoc(cfg.MainConfig, cc, args, func(w io.Writer, doc *ir.Node) error {
		return encode.Encode(doc, w, cfg.encOpts(w)...)
	})
}

func mini(cfg *MiniConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Mini.Parse(cc, args)
	if err != nil {
		return err
	}
	tool := cfg.tool()
	return eachDoc(cfg.MainConfig, cc, args, func(w io.Writer, doc *ir.Node) error {
		opts := append(cfg.encOpts(w), encode.EncodeMini(tool.Tags()))
		return encode.Encode(doc, w, opts...)
	})
}

// eachDoc parses each file in args, or standard input if there are none,
// and calls f with the result.
func eachDoc(cfg *MainConfig, cc *cli.Context, args []string, f func(io.Writer, *ir.Node) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	tool := cfg.tool()
	for _, file := range args {
		src, err := readInput(cc, file)
		if err != nil {
			return err
		}
		doc, err := tool.Parse(src)
		if err != nil {
			return explain(err, file, src)
		}
		if err := f(cc.Out, doc); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}
