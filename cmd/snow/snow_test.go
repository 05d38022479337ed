package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/signadot/snow-format/go-snow/format"
	"github.com/signadot/snow-format/go-snow/parse"

	"github.com/google/go-cmp/cmp"
)

func TestEnvFunc(t *testing.T) {
	env := map[string]any{}
	for _, a := range []string{"n=3", "a.b=hello", "a.c=[1, 2]"} {
		if err := envFunc(env, a); err != nil {
			t.Fatal(err)
		}
	}
	a, ok := env["a"].(map[string]any)
	if !ok {
		t.Fatalf("got %v", env)
	}
	got := []string{fmt.Sprint(env["n"]), fmt.Sprint(a["b"]), fmt.Sprint(a["c"])}
	if diff := cmp.Diff([]string{"3", "hello", "[1 2]"}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if err := envFunc(env, "novalue"); err == nil {
		t.Error("expected usage error")
	}
	if err := envFunc(env, "n.x=1"); err == nil {
		t.Error("expected error descending into scalar")
	}
}

func TestExplain(t *testing.T) {
	src := []byte("ok\n{a:}")
	_, err := parse.Parse(src)
	err = explain(err, "in.snow", src)
	if !errors.Is(err, parse.ErrUnnamedAttr) {
		t.Fatalf("got %v", err)
	}
	msg := err.Error()
	if !strings.HasPrefix(msg, "in.snow: snow: ") || !strings.Contains(msg, "   2 | {a:}\n     |   ^\n") {
		t.Errorf("got %q", msg)
	}
}

type scriptedPrompter struct {
	lines   []string
	err     error
	prompts []string
}

func (s *scriptedPrompter) Prompt(p string) (string, error) {
	s.prompts = append(s.prompts, p)
	if len(s.lines) == 0 {
		return "", s.err
	}
	l := s.lines[0]
	s.lines = s.lines[1:]
	return l, nil
}

func TestReadByParseProbe(t *testing.T) {
	sp := &scriptedPrompter{lines: []string{"{a", "b}", "next"}, err: io.EOF}
	src, err := readByParseProbe(sp, "> ", ". ")
	if err != nil {
		t.Fatal(err)
	}
	if src != "{a\nb}" {
		t.Errorf("got %q", src)
	}
	if diff := cmp.Diff([]string{"> ", ". "}, sp.prompts); diff != "" {
		t.Errorf("prompts (-want +got):\n%s", diff)
	}

	src, err = readByParseProbe(sp, "> ", ". ")
	if err != nil || src != "next" {
		t.Errorf("got %q, %v", src, err)
	}
	if _, err := readByParseProbe(sp, "> ", ". "); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}

	broken := errors.New("terminal gone")
	sp = &scriptedPrompter{lines: []string{"{a"}, err: broken}
	if _, err := readByParseProbe(sp, "> ", ". "); !errors.Is(err, broken) {
		t.Errorf("expected prompt error, got %v", err)
	}
}

func TestOutFormat(t *testing.T) {
	yml := format.YAMLFormat
	tests := []struct {
		cfg  MainConfig
		want format.Format
	}{
		{MainConfig{}, format.SnowFormat},
		{MainConfig{Out: "-"}, format.SnowFormat},
		{MainConfig{Out: "out.json"}, format.JSONFormat},
		{MainConfig{Out: "out.txt"}, format.SnowFormat},
		{MainConfig{Out: "out.json", OutFormat: &yml}, format.YAMLFormat},
	}
	for _, tc := range tests {
		if got := tc.cfg.outFormat(); got != tc.want {
			t.Errorf("%+v: got %s", tc.cfg, got)
		}
	}
}
