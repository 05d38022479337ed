package eval

import "github.com/signadot/snow-format/go-snow/ir"

type Symbol interface {
	String() string
	// Instance checks tag's arguments.
	Instance(tag *ir.Node) (Op, error)
}

type name string

func (s name) String() string {
	return string(s)
}
