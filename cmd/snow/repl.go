package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/signadot/snow-format/go-snow/encode"
	"github.com/signadot/snow-format/go-snow/format"
	"github.com/signadot/snow-format/go-snow/parse"

	"github.com/peterh/liner"
	"github.com/scott-cotton/cli"
)

const (
	promptMain  = "snow> "
	promptCont  = "....> "
	historyFile = ".snow_history"
)

func repl(cfg *ReplConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Repl.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: repl takes no arguments", cli.ErrUsage)
	}
	histPath := cfg.History
	if histPath == "" {
		home, _ := os.UserHomeDir()
		histPath = filepath.Join(home, historyFile)
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	tool := cfg.tool()
	mini := false
	for {
		src, err := readByParseProbe(ln, promptMain, promptCont)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(cc.Out)
			return nil
		}
		if err != nil {
			return fmt.Errorf("error reading input: %w", err)
		}
		cmd := strings.TrimSpace(src)
		switch cmd {
		case "":
			continue
		case ":quit", ":q":
			return nil
		case ":mini":
			mini = !mini
			fmt.Fprintf(cc.Out, "minimal form: %v\n", mini)
			continue
		case ":json", ":yaml", ":snow":
			f, _ := format.ParseFormat(cmd[1:])
			cfg.OutFormat = &f
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		doc, err := tool.Parse([]byte(src))
		if err != nil {
			fmt.Fprintln(os.Stderr, explain(err, "input", []byte(src)))
			continue
		}
		opts := cfg.encOpts(cc.Out)
		if mini {
			opts = append(opts, encode.EncodeMini(tool.Tags()))
		}
		if err := encode.Encode(doc, cc.Out, opts...); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

type prompter interface {
	Prompt(string) (string, error)
}

// readByParseProbe keeps reading lines while the input so far ends inside a
// tag, section or quoted text.  Errors from the prompt, including io.EOF,
// are returned as is.
func readByParseProbe(ln prompter, prompt, cont string) (string, error) {
	var b strings.Builder
	for {
		p := prompt
		if b.Len() != 0 {
			p = cont
		}
		line, err := ln.Prompt(p)
		if err != nil {
			return "", err
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		_, perr := parse.ParseString(src)
		if parse.IsIncomplete(perr) && strings.TrimSpace(line) != "" {
			continue
		}
		return src, nil
	}
}
