package token

// Scanner is a cursor over Snow source.  It reads runes, resolves escapes and
// keeps the line and column of the next unread rune up to date.
//
// A Scanner is not safe for concurrent use; each parse owns one.
type Scanner struct {
	src []rune
	cur Mark
}

// Mark is a saved cursor state, see [Scanner.Mark] and [Scanner.Reset].
type Mark struct {
	i    int
	line int
	// runes consumed on the current line
	col int
}

func NewScanner(src string) *Scanner {
	return &Scanner{
		src: []rune(src),
		cur: Mark{line: 1},
	}
}

// Pos returns the position of the next unread rune.  At the end of input it
// is one column past the last rune.
func (s *Scanner) Pos() Pos {
	return Pos{Offset: s.cur.i, Line: s.cur.line, Col: s.cur.col + 1}
}

func (s *Scanner) EOF() bool {
	return s.cur.i >= len(s.src)
}

func (s *Scanner) Peek() (rune, bool) {
	if s.EOF() {
		return EOF, false
	}
	return s.src[s.cur.i], true
}

// Maybe consumes the next rune if it is r.
func (s *Scanner) Maybe(r rune) bool {
	if c, ok := s.Peek(); ok && c == r {
		s.advance()
		return true
	}
	return false
}

func (s *Scanner) Mark() Mark {
	return s.cur
}

func (s *Scanner) Reset(m Mark) {
	s.cur = m
}

// SkipSpace consumes whitespace and reports whether anything was consumed.
func (s *Scanner) SkipSpace() bool {
	start := s.cur.i
	for {
		c, ok := s.Peek()
		if !ok || !IsSpace(c) {
			break
		}
		s.advance()
	}
	return s.cur.i != start
}

// Next consumes one logical character.  A backslash consumes the rune after
// it, which is returned with escaped set regardless of what it is.
//
// At end of input Next returns EOF.  A backslash with nothing after it is an
// error wrapping eof, unless eof is nil, in which case the backslash is
// dropped and EOF returned.
func (s *Scanner) Next(eof error) (r rune, escaped bool, err error) {
	if s.EOF() {
		return EOF, false, nil
	}
	r = s.advance()
	if r != Escape {
		return r, false, nil
	}
	if s.EOF() {
		if eof != nil {
			return EOF, false, NewErr(eof, s.Pos())
		}
		return EOF, false, nil
	}
	return s.advance(), true, nil
}

func (s *Scanner) advance() rune {
	r := s.src[s.cur.i]
	s.cur.i++
	switch {
	case r == '\r':
		if s.cur.i < len(s.src) && s.src[s.cur.i] == '\n' {
			s.cur.i++
		}
		s.cur.line++
		s.cur.col = 0
	case IsLineBreak(r):
		s.cur.line++
		s.cur.col = 0
	default:
		s.cur.col++
	}
	return r
}
