package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/signadot/snow-format/go-snow/format"
	"github.com/signadot/snow-format/go-snow/ir"
	"github.com/signadot/snow-format/go-snow/tagset"
	"github.com/signadot/snow-format/go-snow/token"

	"github.com/goccy/go-yaml"
)

type EncState struct {
	format  format.Format
	mini    bool
	newline bool
	// tagset is the Tagset a minimal encoding is meant to be read with.
	// The current minimal form does not consult it.
	tagset *tagset.Tagset

	buf strings.Builder
	// last rune written, ignoring colour sequences
	last rune

	Color func(ir.Type, ColorAttr, string) string
}

// String returns the canonical Snow form of node.
func String(node *ir.Node) string {
	es := &EncState{}
	es.node(node, false)
	return es.buf.String()
}

// Mini returns the minimal Snow form of node.
func Mini(node *ir.Node, ts *tagset.Tagset) string {
	es := &EncState{mini: true, tagset: ts}
	es.node(node, false)
	return es.buf.String()
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	var d []byte
	switch es.format {
	case format.SnowFormat:
		es.node(node, false)
		d = []byte(es.buf.String())
	case format.JSONFormat:
		j, err := json.MarshalIndent(node, "", "  ")
		if err != nil {
			return fmt.Errorf("could not encode json: %w", err)
		}
		d = j
	case format.YAMLFormat:
		j, err := json.Marshal(node)
		if err != nil {
			return fmt.Errorf("could not encode json: %w", err)
		}
		y, err := yaml.JSONToYAML(j)
		if err != nil {
			return fmt.Errorf("could not encode yaml: %w", err)
		}
		d = y
	default:
		return fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
	}
	if es.newline && (len(d) == 0 || d[len(d)-1] != '\n') {
		d = append(d, '\n')
	}
	_, err := w.Write(d)
	return err
}

func (es *EncState) write(t ir.Type, a ColorAttr, s string) {
	if s == "" {
		return
	}
	es.last, _ = utf8.DecodeLastRuneInString(s)
	if es.Color != nil {
		s = es.Color(t, a, s)
	}
	es.buf.WriteString(s)
}

// node writes n.  inValue is set for values inside a tag, where a document
// needs brackets.
func (es *EncState) node(n *ir.Node, inValue bool) {
	switch n.Type {
	case ir.TextType:
		es.write(ir.TextType, ValueColor, Text(n.String))
	case ir.TagType:
		es.tag(n)
	case ir.SectionType:
		es.section(n)
	case ir.DocumentType:
		if inValue {
			es.section(n)
			return
		}
		es.children(n, ir.DocumentType)
	}
}

func (es *EncState) tag(n *ir.Node) {
	es.write(ir.TagType, SepColor, string(token.OpenTag))
	first := true
	sep := func() {
		if first {
			first = false
			return
		}
		if es.mini && isDelim(es.last) {
			return
		}
		es.buf.WriteByte(' ')
		es.last = ' '
	}
	if len(n.Values) > 0 {
		sep()
		if nm := n.Values[0]; nm.Type == ir.TextType {
			es.write(ir.TagType, TagColor, Text(nm.String))
		} else {
			es.value(nm)
		}
	}
	for i, k := range n.Fields {
		sep()
		if k.Type == ir.TextType {
			es.write(ir.TagType, FieldColor, Text(k.String))
		} else {
			es.value(k)
		}
		es.write(ir.TagType, SepColor, string(token.NamedAttr))
		es.value(n.Named[i])
	}
	for _, v := range n.Values[min(1, len(n.Values)):] {
		sep()
		es.value(v)
	}
	es.write(ir.TagType, SepColor, string(token.CloseTag))
}

// value writes a tag key or value.  Sections and documents are always
// canonical.
func (es *EncState) value(n *ir.Node) {
	if n.Type.IsSectionLike() && es.mini {
		mini := es.mini
		es.mini = false
		defer func() { es.mini = mini }()
	}
	es.node(n, true)
}

func (es *EncState) section(n *ir.Node) {
	mini := es.mini
	es.mini = false
	defer func() { es.mini = mini }()
	es.write(ir.SectionType, SepColor, string(token.OpenSection))
	es.children(n, ir.SectionType)
	es.write(ir.SectionType, SepColor, string(token.CloseSection))
}

func (es *EncState) children(n *ir.Node, t ir.Type) {
	if t == ir.DocumentType {
		mini := es.mini
		es.mini = false
		defer func() { es.mini = mini }()
	}
	for _, c := range n.Values {
		if c.Type != ir.TextType {
			es.node(c, true)
			continue
		}
		s := escapeRaw(c.String, t == ir.SectionType)
		es.write(ir.TextType, ValueColor, s)
	}
}

func escapeRaw(s string, inSection bool) string {
	buf := strings.Builder{}
	for _, r := range s {
		switch {
		case r == token.Escape, r == token.OpenTag, inSection && r == token.CloseSection:
			buf.WriteRune(token.Escape)
		}
		buf.WriteRune(r)
	}
	return buf.String()
}

// isDelim reports whether r ends a token on its own, so that no space is
// needed after it in the minimal form.
func isDelim(r rune) bool {
	switch r {
	case token.Quote1, token.Quote2, token.Quote3,
		token.OpenTag, token.CloseTag, token.OpenSection, token.CloseSection:
		return true
	}
	return false
}

// Text returns the canonical form of a text payload as it appears in a tag.
//
// Quoted text uses the quote character occurring most often in s, preferring
// double, then single, then backtick quotes on ties.
func Text(s string) string {
	if s == "" {
		return `""`
	}
	if isBare(s) {
		return s
	}
	q := quoteFor(s)
	buf := strings.Builder{}
	buf.WriteRune(q)
	for _, r := range s {
		if r == q || r == token.Escape {
			buf.WriteRune(token.Escape)
		}
		buf.WriteRune(r)
	}
	buf.WriteRune(q)
	return buf.String()
}

func isBare(s string) bool {
	for _, r := range s {
		if token.IsSpace(r) || token.IsReserved(r) || r == token.Escape {
			return false
		}
	}
	return true
}

func quoteFor(s string) rune {
	dq := strings.Count(s, string(token.Quote1))
	sq := strings.Count(s, string(token.Quote2))
	bq := strings.Count(s, string(token.Quote3))
	switch {
	case dq >= sq && dq >= bq:
		return token.Quote1
	case sq >= bq:
		return token.Quote2
	}
	return token.Quote3
}
