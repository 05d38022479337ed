package eval

import (
	"github.com/signadot/snow-format/go-snow/ir"
	"github.com/signadot/snow-format/go-snow/tagset"
)

// Tagset returns a Tagset holding every registered symbol, evaluated in
// env.
func Tagset(env Env) *tagset.Tagset {
	ts := tagset.New()
	for _, s := range Symbols() {
		ts.AddString(s.String(), Tagdef(s, env))
	}
	return ts
}

func Tagdef(s Symbol, env Env) tagset.Tagdef {
	return func(tag *ir.Node) (*ir.Node, error) {
		op, err := s.Instance(tag)
		if err != nil {
			return nil, err
		}
		return op.Eval(env)
	}
}
