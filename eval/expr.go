package eval

import (
	"fmt"
	"os"

	"github.com/signadot/snow-format/go-snow/debug"
	"github.com/signadot/snow-format/go-snow/encode"
	"github.com/signadot/snow-format/go-snow/ir"

	"github.com/expr-lang/expr"
)

var exprSym = &exprSymbol{name: exprName}

func Expr() Symbol {
	return exprSym
}

const (
	exprName name = "expr"
)

type exprSymbol struct {
	name
}

func (s exprSymbol) Instance(tag *ir.Node) (Op, error) {
	code, err := arg(s, tag)
	if err != nil {
		return nil, err
	}
	if err := noNamed(s, tag); err != nil {
		return nil, err
	}
	return &exprOp{op: op{name: s.name, tag: tag}, code: code}, nil
}

type exprOp struct {
	op
	code string
}

func (p exprOp) Eval(env Env) (*ir.Node, error) {
	if debug.Eval() {
		debug.Logf("expr %q\n", p.code)
	}
	if env == nil {
		env = Env{}
	}
	prg, err := expr.Compile(p.code, exprOpts(p.tag)...)
	if err != nil {
		return nil, err
	}
	res, err := expr.Run(prg, map[string]any(env))
	if err != nil {
		return nil, err
	}
	return ir.FromString(fmt.Sprint(res)), nil
}

func exprOpts(tag *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("whoami", func(params ...any) (any, error) {
			return encode.String(tag), nil
		},
			new(func() string)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
