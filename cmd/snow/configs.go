package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/snow-format/go-snow"
	"github.com/signadot/snow-format/go-snow/encode"
	"github.com/signadot/snow-format/go-snow/eval"
	"github.com/signadot/snow-format/go-snow/format"
	"github.com/signadot/snow-format/go-snow/tagset"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`
	Eval  bool `cli:"name=eval desc='evaluate env, expr, file and exec tags'"`

	OutFormat *format.Format
	Env       eval.Env

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// tool returns a Tool using the eval tags when -eval is given and no tags
// otherwise.
func (cfg *MainConfig) tool() *snow.Tool {
	tool := snow.DefaultTool()
	tool.Env = cfg.Env
	if !cfg.Eval {
		tool.Tagset = tagset.New()
	}
	return tool
}

func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	fmat := cfg.outFormat()
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
		encode.EncodeNewline(true),
	}
	if cfg.colors(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// outFormat is -O when given, else the format named by the -o file's
// extension, else Snow.
func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	if cfg.Out != "" && cfg.Out != "-" {
		if f, ok := format.FromPath(cfg.Out); ok {
			return f
		}
	}
	return format.SnowFormat
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type MiniConfig struct {
	*MainConfig
	Mini *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='do not print errors'"`
	Check *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Text    bool `cli:"name=t desc='diff canonical text instead of top level children'"`
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Diff    *cli.Command
}

type TagsConfig struct {
	*MainConfig
	Tags *cli.Command
}

type ReplConfig struct {
	*MainConfig
	History string `cli:"name=history desc='history file (default ~/.snow_history)'"`
	Repl    *cli.Command
}
