package eval

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/signadot/snow-format/go-snow/encode"
	"github.com/signadot/snow-format/go-snow/parse"

	"github.com/google/go-cmp/cmp"
)

func evalDoc(t *testing.T, in string, env Env) string {
	t.Helper()
	doc, err := parse.ParseString(in, parse.ParseTagset(Tagset(env)))
	if err != nil {
		t.Fatal(err)
	}
	return encode.String(doc)
}

func TestEvalTags(t *testing.T) {
	t.Setenv("SNOW_EVAL_TEST", "from-os")
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(path, []byte("file body"), 0644); err != nil {
		t.Fatal(err)
	}
	env := Env{"n": 20, "who": "snow"}
	tests := []struct {
		in   string
		want string
	}{
		{in: "{env SNOW_EVAL_TEST}", want: "from-os"},
		{in: "{env who}", want: "snow"},
		{in: "{env SNOW_EVAL_UNSET_XYZ default:fallback}", want: "fallback"},
		{in: `{expr "n * 2 + 2"}`, want: "42"},
		{in: `{expr "who + '!'"}`, want: "snow!"},
		{in: `{expr "getenv('SNOW_EVAL_TEST')"}`, want: "from-os"},
		{in: `{expr "whoami()"}`, want: `\{expr whoami()}`},
		{in: "{file " + encode.Text(path) + "}", want: "file body"},
		{in: `{exec "printf %s $who"}`, want: "snow"},
		{in: "[{env who}]", want: "[snow]"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, evalDoc(t, tt.in, env)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	ts := Tagset(nil)
	for _, in := range []string{
		"{env}",
		"{env a b}",
		"{env SNOW_EVAL_UNSET_XYZ}",
		"{env [x]}",
		"{expr \"1 +\"}",
		"{file /nonexistent/snow/file}",
		"{exec false}",
		"{file x k:v}",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := parse.ParseString(in, parse.ParseTagset(ts))
			if !errors.Is(err, parse.ErrTagdef) {
				t.Errorf("got %v", err)
			}
		})
	}
}

func TestRegistry(t *testing.T) {
	names := []string{}
	for _, s := range Symbols() {
		names = append(names, s.String())
	}
	if diff := cmp.Diff([]string{"env", "exec", "expr", "file"}, names); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if err := Register(Exec()); !errors.Is(err, ErrSymbolExists) {
		t.Errorf("got %v", err)
	}
	if Lookup("expr") == nil || Lookup("nope") != nil {
		t.Error("Lookup")
	}
}
