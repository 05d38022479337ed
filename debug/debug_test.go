package debug

import (
	"fmt"
	"testing"

	"github.com/signadot/snow-format/go-snow/ir"
)

func TestBoolEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"no", false},
		{"0", false},
	}
	for _, tc := range tests {
		t.Setenv("SNOW_DEBUG_TEST", tc.val)
		if got := boolEnv("SNOW_DEBUG_TEST"); got != tc.want {
			t.Errorf("%q: got %t", tc.val, got)
		}
	}
}

func TestSnowStringer(t *testing.T) {
	tag := ir.NewTag(ir.FromString("i"), ir.FromString("a b"))
	if got := fmt.Sprint(Snow{tag}); got != `{i "a b"}` {
		t.Errorf("got %s", got)
	}
}
