package main

import "unicode/utf16"

// LSP characters count UTF-16 code units; token positions count runes.

func splitLines(rs []rune) [][]rune {
	res := [][]rune{}
	start := 0
	for i, r := range rs {
		if r != '\n' {
			continue
		}
		end := i
		if end > start && rs[end-1] == '\r' {
			end--
		}
		res = append(res, rs[start:end])
		start = i + 1
	}
	return append(res, rs[start:])
}

func unitLen(r rune) int {
	return max(utf16.RuneLen(r), 1)
}

// utf16Col converts a 0-based rune column on line to UTF-16 units.  Columns
// past the end of line count one unit each.
func utf16Col(line []rune, col int) uint32 {
	n := 0
	for i := 0; i < col; i++ {
		if i < len(line) {
			n += unitLen(line[i])
			continue
		}
		n++
	}
	return uint32(n)
}

// runeCol converts a UTF-16 column on line to a 0-based rune column.
func runeCol(line []rune, u int) int {
	n := 0
	for i, r := range line {
		if n >= u {
			return i
		}
		n += unitLen(r)
	}
	return len(line) + max(u-n, 0)
}
