package eval

import (
	"fmt"

	"github.com/signadot/snow-format/go-snow/ir"
)

// Env holds variables visible to evaluated tags.  Lookups fall back to the
// process environment.
type Env map[string]any

type Op interface {
	Eval(env Env) (*ir.Node, error)
	String() string
}

type op struct {
	name name
	tag  *ir.Node
}

func (o op) String() string {
	return string(o.name)
}

// arg returns the single positional text argument of tag.
func arg(s Symbol, tag *ir.Node) (string, error) {
	if len(tag.Values) != 2 {
		return "", fmt.Errorf("%s expects one argument, got %d", s, len(tag.Values)-1)
	}
	a := tag.Values[1]
	if a.Type != ir.TextType {
		return "", fmt.Errorf("%s only applies to text, got %s", s, a.Type)
	}
	return a.String, nil
}

func noNamed(s Symbol, tag *ir.Node, allowed ...string) error {
	for _, f := range tag.Fields {
		ok := f.Type == ir.TextType
		if ok {
			ok = false
			for _, a := range allowed {
				if f.String == a {
					ok = true
				}
			}
		}
		if !ok {
			return fmt.Errorf("%s: unexpected named attribute", s)
		}
	}
	return nil
}
