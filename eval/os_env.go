package eval

import (
	"fmt"
	"os"

	"github.com/signadot/snow-format/go-snow/debug"
	"github.com/signadot/snow-format/go-snow/ir"
)

var osenvSym = &osenvSymbol{name: osenvName}

func OSEnv() Symbol {
	return osenvSym
}

const (
	osenvName name = "env"
)

type osenvSymbol struct {
	name
}

func (s osenvSymbol) Instance(tag *ir.Node) (Op, error) {
	v, err := arg(s, tag)
	if err != nil {
		return nil, err
	}
	if err := noNamed(s, tag, "default"); err != nil {
		return nil, err
	}
	return &osenvOp{op: op{name: s.name, tag: tag}, variable: v}, nil
}

type osenvOp struct {
	op
	variable string
}

func (p osenvOp) Eval(env Env) (*ir.Node, error) {
	if debug.Eval() {
		debug.Logf("env %s\n", p.variable)
	}
	if v, ok := env[p.variable]; ok {
		return ir.FromString(fmt.Sprint(v)), nil
	}
	if v, ok := os.LookupEnv(p.variable); ok {
		return ir.FromString(v), nil
	}
	if def := p.tag.GetString("default"); def != nil {
		return def, nil
	}
	return nil, fmt.Errorf("env: %s is not set", p.variable)
}
