package token

import (
	"fmt"
	"strings"
)

// Snippet renders the error with the offending source line, one line of
// context on either side and a caret under the column.
func (e *Error) Snippet(src string) string {
	return snippet(src, e.Pos.Line, e.Pos.Col, e.Err.Error())
}

func snippet(src string, line, col int, msg string) string {
	lines := splitLines(src)
	line = max(line, 1)
	col = max(col, 1)
	if line > len(lines) {
		line = len(lines)
	}
	cur := []rune(lines[line-1])

	var b strings.Builder
	fmt.Fprintf(&b, "snow: %s at %d:%d\n\n", msg, line, col)
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, string(cur))
	// keep tabs so the caret lines up with what the terminal shows
	pad := make([]rune, 0, col-1)
	for i := 0; i < col-1; i++ {
		if i < len(cur) && cur[i] == '\t' {
			pad = append(pad, '\t')
			continue
		}
		pad = append(pad, ' ')
	}
	fmt.Fprintf(&b, "     | %s^\n", string(pad))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}

// splitLines splits on the same line breaks the Scanner counts.
func splitLines(src string) []string {
	rs := []rune(src)
	res := []string{}
	start := 0
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		if !IsLineBreak(r) {
			continue
		}
		res = append(res, string(rs[start:i]))
		if r == '\r' && i+1 < len(rs) && rs[i+1] == '\n' {
			i++
		}
		start = i + 1
	}
	return append(res, string(rs[start:]))
}
