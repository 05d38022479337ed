package token

// Characters with meaning in Snow.
const (
	OpenTag      = '{'
	CloseTag     = '}'
	OpenSection  = '['
	CloseSection = ']'
	NamedAttr    = ':'
	Quote1       = '"'
	Quote2       = '\''
	Quote3       = '`'
	Escape       = '\\'
)

// EOF is returned by [Scanner.Next] when there is nothing left to read.
const EOF rune = -1

// IsQuote reports whether r is one of the three quote characters.
func IsQuote(r rune) bool {
	return r == Quote1 || r == Quote2 || r == Quote3
}

// IsReserved reports whether r terminates bare text.
func IsReserved(r rune) bool {
	switch r {
	case OpenTag, CloseTag, NamedAttr, Quote1, Quote2, Quote3, OpenSection, CloseSection:
		return true
	}
	return false
}

// IsSpace reports whether r is whitespace in Snow: ASCII space, tab, line
// feed, vertical tab, form feed, carriage return, and the Unicode space and
// line/paragraph separators.
func IsSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r',
		0x85, 0xA0, 0x1680,
		0x2028, 0x2029, 0x202F, 0x205F, 0x3000:
		return true
	}
	return r >= 0x2000 && r <= 0x200A
}

// IsLineBreak reports whether r ends a line.  A carriage return followed by
// a line feed is a single break; the scanner handles that pairing.
func IsLineBreak(r rune) bool {
	switch r {
	case '\n', '\v', '\f', '\r', 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}
