package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Tagset bool
	Eval   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("SNOW_DEBUG_PARSE")
	d.Tagset = boolEnv("SNOW_DEBUG_TAGSET")
	d.Eval = boolEnv("SNOW_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Tagset() bool {
	return d.Tagset
}
func Eval() bool {
	return d.Eval
}
