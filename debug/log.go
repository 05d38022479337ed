package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/snow-format/go-snow/encode"
	"github.com/signadot/snow-format/go-snow/ir"
)

// Snow formats its node in canonical form when printed.
type Snow struct{ *ir.Node }

func (y Snow) String() string {
	return encode.String(y.Node)
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			if x == nil {
				args[i] = "<nil>"
				continue
			}
			args[i] = encode.String(x)
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
