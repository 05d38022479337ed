package snow

import (
	"fmt"

	"github.com/signadot/snow-format/go-snow/debug"
	"github.com/signadot/snow-format/go-snow/eval"
	"github.com/signadot/snow-format/go-snow/ir"
	"github.com/signadot/snow-format/go-snow/libdiff"
	"github.com/signadot/snow-format/go-snow/parse"
	"github.com/signadot/snow-format/go-snow/tagset"
)

// Tool parses Snow with a Tagset.
type Tool struct {
	Env eval.Env

	// Tagset, if set, is used in place of the eval tags.
	Tagset *tagset.Tagset
}

// DefaultTool evaluates the built-in eval tags with an empty Env.
func DefaultTool() *Tool {
	return &Tool{
		Env: eval.Env{},
	}
}

// Tags returns the Tagset Parse uses.
func (t *Tool) Tags() *tagset.Tagset {
	if t.Tagset != nil {
		return t.Tagset
	}
	return eval.Tagset(t.Env)
}

func (t *Tool) Parse(d []byte, opts ...parse.ParseOption) (*ir.Node, error) {
	opts = append([]parse.ParseOption{parse.ParseTagset(t.Tags())}, opts...)
	doc, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	if debug.Eval() {
		debug.Logf("tool parsed %s\n", debug.Snow{Node: doc})
	}
	return doc, nil
}

func (t *Tool) ParseValue(s string, opts ...parse.ParseOption) (*ir.Node, error) {
	opts = append([]parse.ParseOption{parse.ParseTagset(t.Tags())}, opts...)
	return parse.ParseValue(s, opts...)
}

// Diff parses from and to and aligns their top level children.
func (t *Tool) Diff(from, to []byte) ([]libdiff.Change, error) {
	a, err := t.Parse(from)
	if err != nil {
		return nil, fmt.Errorf("error parsing from: %w", err)
	}
	b, err := t.Parse(to)
	if err != nil {
		return nil, fmt.Errorf("error parsing to: %w", err)
	}
	return libdiff.DiffChildren(a, b), nil
}
