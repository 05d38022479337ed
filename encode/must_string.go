package encode

import (
	"bytes"

	"github.com/signadot/snow-format/go-snow/ir"
)

// MustString encodes node with opts, panicking on error.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
