package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var errTestEOF = errors.New("test eof")

func TestScannerNext(t *testing.T) {
	tests := []struct {
		in      string
		runes   []rune
		escaped []bool
	}{
		{in: "ab", runes: []rune("ab"), escaped: []bool{false, false}},
		{in: `a\{`, runes: []rune("a{"), escaped: []bool{false, true}},
		{in: `\\\"`, runes: []rune(`\"`), escaped: []bool{true, true}},
		{in: "a\r\nb", runes: []rune("a\rb"), escaped: []bool{false, false, false}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			s := NewScanner(tt.in)
			var runes []rune
			var escaped []bool
			for !s.EOF() {
				r, esc, err := s.Next(errTestEOF)
				if err != nil {
					t.Fatal(err)
				}
				runes = append(runes, r)
				escaped = append(escaped, esc)
			}
			if diff := cmp.Diff(tt.runes, runes); diff != "" {
				t.Errorf("runes (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.escaped, escaped); diff != "" {
				t.Errorf("escaped (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScannerTrailingEscape(t *testing.T) {
	s := NewScanner(`a\`)
	s.Next(nil)
	r, esc, err := s.Next(nil)
	if err != nil || esc || r != EOF {
		t.Errorf("swallow: got %q %v %v", r, esc, err)
	}

	s = NewScanner(`a\`)
	s.Next(errTestEOF)
	_, _, err = s.Next(errTestEOF)
	if !errors.Is(err, errTestEOF) {
		t.Fatalf("expected errTestEOF, got %v", err)
	}
	var tErr *Error
	if !errors.As(err, &tErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if tErr.Pos.Line != 1 || tErr.Pos.Col != 3 {
		t.Errorf("got %s", tErr.Pos)
	}
}

func TestScannerPos(t *testing.T) {
	tests := []struct {
		in   string
		line int
		col  int
	}{
		{in: "", line: 1, col: 1},
		{in: "abc", line: 1, col: 4},
		{in: "ab\ncd", line: 2, col: 3},
		{in: "ab\r\ncd", line: 2, col: 3},
		{in: "a\rb\vc\fd", line: 4, col: 2},
		{in: "a b\u0085c", line: 2, col: 2},
		{in: "a b\u3000c", line: 1, col: 6},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			s := NewScanner(tt.in)
			for !s.EOF() {
				if _, _, err := s.Next(nil); err != nil {
					t.Fatal(err)
				}
			}
			pos := s.Pos()
			if pos.Line != tt.line || pos.Col != tt.col {
				t.Errorf("got %d:%d want %d:%d", pos.Line, pos.Col, tt.line, tt.col)
			}
		})
	}
}

func TestScannerMarkReset(t *testing.T) {
	s := NewScanner("ab\ncd")
	s.Next(nil)
	m := s.Mark()
	p := s.Pos()
	s.Next(nil)
	s.Next(nil)
	s.Reset(m)
	if s.Pos() != p {
		t.Errorf("got %s want %s", s.Pos(), p)
	}
	if !s.Maybe('b') {
		t.Error("expected b")
	}
	if s.Maybe('x') {
		t.Error("unexpected x")
	}
}

func TestSkipSpace(t *testing.T) {
	s := NewScanner(" \t  \nx")
	if !s.SkipSpace() {
		t.Fatal("expected space to be skipped")
	}
	r, ok := s.Peek()
	if !ok || r != 'x' {
		t.Errorf("got %q", r)
	}
	if s.SkipSpace() {
		t.Error("skipped non-space")
	}
}

func TestIsSpace(t *testing.T) {
	for _, r := range " \t\n\v\f\r\u0085\u00a0\u1680\u2000\u200a\u2028\u2029\u202f\u205f\u3000" {
		if !IsSpace(r) {
			t.Errorf("%U should be space", r)
		}
	}
	for _, r := range "a{}\u200b\u1234" {
		if IsSpace(r) {
			t.Errorf("%U should not be space", r)
		}
	}
}
