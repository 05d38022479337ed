package parse

import (
	"github.com/signadot/snow-format/go-snow/ir"
	"github.com/signadot/snow-format/go-snow/tagset"
	"github.com/signadot/snow-format/go-snow/token"
)

type parseOpts struct {
	tagset    *tagset.Tagset
	positions map[*ir.Node]*token.Pos
}

type ParseOption func(*parseOpts)

// ParseTagset causes each parsed tag whose name is registered in ts to be
// replaced by the result of its Tagdef.
func ParseTagset(ts *tagset.Tagset) ParseOption {
	return func(o *parseOpts) { o.tagset = ts }
}

// ParsePositions records the start position of every node produced by the
// parse in m.
func ParsePositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}

// GetPositions extracts the positions map from the provided options.
func GetPositions(opts ...ParseOption) map[*ir.Node]*token.Pos {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts.positions
}
