package snow

import (
	"errors"
	"testing"

	"github.com/signadot/snow-format/go-snow/encode"
	"github.com/signadot/snow-format/go-snow/ir"
	"github.com/signadot/snow-format/go-snow/libdiff"
	"github.com/signadot/snow-format/go-snow/parse"
	"github.com/signadot/snow-format/go-snow/tagset"
)

func TestToolParse(t *testing.T) {
	tool := DefaultTool()
	tool.Env["name"] = "snow"
	doc, err := tool.Parse([]byte(`hi {env name}, {expr "1+1"}`))
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.String(doc); got != "hi snow, 2" {
		t.Errorf("got %q", got)
	}
	v, err := tool.ParseValue("{t {env name}}")
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.String(v); got != "{t snow}" {
		t.Errorf("got %q", got)
	}
}

func TestToolTagset(t *testing.T) {
	ts := tagset.New()
	ts.AddString("x", func(*ir.Node) (*ir.Node, error) { return nil, errors.New("no") })
	tool := &Tool{Tagset: ts}
	if _, err := tool.Parse([]byte("{x}")); !errors.Is(err, parse.ErrTagdef) {
		t.Errorf("got %v", err)
	}
	doc, err := tool.Parse([]byte("{env name}"))
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.String(doc); got != "{env name}" {
		t.Errorf("eval tags applied with custom tagset: %q", got)
	}
}

func TestToolDiff(t *testing.T) {
	cs, err := DefaultTool().Diff([]byte("a {b}"), []byte("a {c}"))
	if err != nil {
		t.Fatal(err)
	}
	if !libdiff.Changed(cs) || len(cs) != 3 {
		t.Errorf("got %s", libdiff.Format(cs, false))
	}
	if _, err := DefaultTool().Diff([]byte("{"), nil); !errors.Is(err, parse.ErrTagEOF) {
		t.Errorf("got %v", err)
	}
}
