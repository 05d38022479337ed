package eval

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"

	"github.com/signadot/snow-format/go-snow/debug"
	"github.com/signadot/snow-format/go-snow/ir"
)

var execSym = &execSymbol{name: execName}

func Exec() Symbol {
	return execSym
}

const (
	execName name = "exec"
)

type execSymbol struct {
	name
}

func (s execSymbol) Instance(tag *ir.Node) (Op, error) {
	cmd, err := arg(s, tag)
	if err != nil {
		return nil, err
	}
	if err := noNamed(s, tag); err != nil {
		return nil, err
	}
	return &execOp{op: op{name: s.name, tag: tag}, cmd: cmd}, nil
}

type execOp struct {
	op
	cmd string
}

func (p execOp) Eval(env Env) (*ir.Node, error) {
	if debug.Eval() {
		debug.Logf("exec %q\n", p.cmd)
	}
	cmd := exec.Command("sh", "-c", p.cmd)
	if len(env) != 0 {
		cmd.Env = os.Environ()
		for k, v := range env {
			cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%v", k, v))
		}
	}
	buf := bytes.NewBuffer(nil)
	cmd.Stdout = buf
	if err := cmd.Run(); err != nil {
		return nil, err
	}
	return ir.FromString(buf.String()), nil
}
