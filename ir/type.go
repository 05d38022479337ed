package ir

import "fmt"

// Type discriminates the variants of [Node].
type Type int

const (
	TextType Type = iota
	TagType
	SectionType
	DocumentType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		TextType:     "Text",
		TagType:      "Tag",
		SectionType:  "Section",
		DocumentType: "Document",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Text":     TextType,
		"Tag":      TagType,
		"Section":  SectionType,
		"Document": DocumentType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{TextType, TagType, SectionType, DocumentType}
}

// IsSectionLike reports whether nodes of type t hold an ordered child list.
func (t Type) IsSectionLike() bool {
	return t == SectionType || t == DocumentType
}

// Quote records how a Text node was written.
type Quote int

const (
	Bare Quote = iota
	DoubleQuote
	SingleQuote
	BacktickQuote
)

// Rune returns the quote character, or 0 for Bare.
func (q Quote) Rune() rune {
	switch q {
	case DoubleQuote:
		return '"'
	case SingleQuote:
		return '\''
	case BacktickQuote:
		return '`'
	}
	return 0
}

// QuoteOf returns the Quote for quote character r.
func QuoteOf(r rune) (Quote, bool) {
	switch r {
	case '"':
		return DoubleQuote, true
	case '\'':
		return SingleQuote, true
	case '`':
		return BacktickQuote, true
	}
	return Bare, false
}

func (q Quote) String() string {
	switch q {
	case Bare:
		return "bare"
	case DoubleQuote:
		return "double"
	case SingleQuote:
		return "single"
	case BacktickQuote:
		return "backtick"
	}
	return "<unknown quote>"
}

func (q Quote) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

func (q *Quote) UnmarshalText(d []byte) error {
	for _, c := range []Quote{Bare, DoubleQuote, SingleQuote, BacktickQuote} {
		if c.String() == string(d) {
			*q = c
			return nil
		}
	}
	return fmt.Errorf("unrecognized quote %q", d)
}
