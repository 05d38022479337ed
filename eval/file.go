package eval

import (
	"os"

	"github.com/signadot/snow-format/go-snow/debug"
	"github.com/signadot/snow-format/go-snow/ir"
)

var fileSym = &fileSymbol{name: fileName}

func File() Symbol {
	return fileSym
}

const (
	fileName name = "file"
)

type fileSymbol struct {
	name
}

func (s fileSymbol) Instance(tag *ir.Node) (Op, error) {
	path, err := arg(s, tag)
	if err != nil {
		return nil, err
	}
	if err := noNamed(s, tag); err != nil {
		return nil, err
	}
	return &fileOp{op: op{name: s.name, tag: tag}, path: path}, nil
}

type fileOp struct {
	op
	path string
}

func (p fileOp) Eval(env Env) (*ir.Node, error) {
	if debug.Eval() {
		debug.Logf("file %s\n", p.path)
	}
	d, err := os.ReadFile(p.path)
	if err != nil {
		return nil, err
	}
	return ir.FromString(string(d)), nil
}
