package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSnippet(t *testing.T) {
	src := "one\n\ttwo {\nthree"
	e := NewErr(errors.New("boom"), Pos{Line: 2, Col: 5})
	want := "snow: boom at 2:5\n\n" +
		"   1 | one\n" +
		"   2 | \ttwo {\n" +
		"     | \t   ^\n" +
		"   3 | three\n"
	if diff := cmp.Diff(want, e.Snippet(src)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestSnippetFirstLine(t *testing.T) {
	e := NewErr(errors.New("eof"), Pos{Line: 1, Col: 4})
	want := "snow: eof at 1:4\n\n" +
		"   1 | abc\n" +
		"     |    ^\n"
	if diff := cmp.Diff(want, e.Snippet("abc")); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
