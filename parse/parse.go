package parse

import (
	"fmt"
	"strings"

	"github.com/signadot/snow-format/go-snow/debug"
	"github.com/signadot/snow-format/go-snow/ir"
	"github.com/signadot/snow-format/go-snow/token"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	return ParseString(string(d), opts...)
}

// ParseString parses src as a document.
func ParseString(src string, opts ...ParseOption) (*ir.Node, error) {
	p := newParser(src, opts)
	return p.document()
}

// ParseValue parses src as a single value, a text, tag or section, with
// optional surrounding whitespace.
func ParseValue(src string, opts ...ParseOption) (*ir.Node, error) {
	p := newParser(src, opts)
	p.s.SkipSpace()
	res, err := p.value(nil)
	if err != nil {
		return nil, err
	}
	p.s.SkipSpace()
	if !p.s.EOF() {
		return nil, token.NewErr(ErrTrailing, p.s.Pos())
	}
	return res, nil
}

type parser struct {
	s    *token.Scanner
	opts *parseOpts
}

func newParser(src string, opts []ParseOption) *parser {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return &parser{s: token.NewScanner(src), opts: pOpts}
}

func (p *parser) trackPos(node *ir.Node, pos token.Pos) {
	if p.opts.positions != nil {
		p.opts.positions[node] = &pos
	}
}

func (p *parser) document() (*ir.Node, error) {
	doc := &ir.Node{Type: ir.DocumentType}
	p.trackPos(doc, p.s.Pos())
	if err := p.children(doc, false); err != nil {
		return nil, err
	}
	if !p.s.EOF() {
		return nil, token.NewErr(ErrInternal, p.s.Pos())
	}
	if debug.Parse() {
		debug.Logf("parsed document with %d children\n", len(doc.Values))
	}
	return doc, nil
}

// children alternates free text and tags into c until neither advances.
func (p *parser) children(c *ir.Node, inSection bool) error {
	for {
		txt, err := p.freeText(inSection)
		if err != nil {
			return err
		}
		if txt != nil {
			c.Values = append(c.Values, txt)
		}
		start := p.s.Pos()
		tag, err := p.tag()
		if err != nil {
			return err
		}
		if tag != nil {
			if err := c.Add(tag); err != nil {
				return token.NewErr(fmt.Errorf("%w: %w", ErrTagdef, err), start)
			}
		}
		if txt == nil && tag == nil {
			return nil
		}
	}
}

// freeText reads document or section text up to an unescaped '{', or ']'
// within a section.  A trailing escape is dropped.
func (p *parser) freeText(inSection bool) (*ir.Node, error) {
	start := p.s.Pos()
	buf := strings.Builder{}
	for {
		m := p.s.Mark()
		r, esc, err := p.s.Next(nil)
		if err != nil {
			return nil, err
		}
		if r == token.EOF {
			break
		}
		if !esc && (r == token.OpenTag || (inSection && r == token.CloseSection)) {
			p.s.Reset(m)
			break
		}
		buf.WriteRune(r)
	}
	if buf.Len() == 0 {
		return nil, nil
	}
	res := ir.FromString(buf.String())
	p.trackPos(res, start)
	return res, nil
}

func (p *parser) tag() (*ir.Node, error) {
	start := p.s.Pos()
	if !p.s.Maybe(token.OpenTag) {
		return nil, nil
	}
	tag := ir.NewTag()
	p.trackPos(tag, start)
	for {
		p.s.SkipSpace()
		if p.s.Maybe(token.CloseTag) {
			break
		}
		if p.s.EOF() {
			return nil, token.NewErr(ErrTagEOF, p.s.Pos())
		}
		key, err := p.value(nil)
		if err != nil {
			return nil, err
		}
		p.s.SkipSpace()
		colon := p.s.Pos()
		if !p.s.Maybe(token.NamedAttr) {
			tag.Values = append(tag.Values, key)
			continue
		}
		p.s.SkipSpace()
		val, err := p.value(&colon)
		if err != nil {
			return nil, err
		}
		tag.MergeNamed(key, val)
	}
	return p.transform(tag, start)
}

func (p *parser) transform(tag *ir.Node, start token.Pos) (*ir.Node, error) {
	def := p.opts.tagset.Get(tag.Name())
	if def == nil {
		return tag, nil
	}
	if debug.Tagset() {
		debug.Logf("tagset: transforming %s at %s\n", debug.Snow{Node: tag}, start)
	}
	res, err := def(tag)
	if err != nil {
		return nil, token.NewErr(fmt.Errorf("%w: %w", ErrTagdef, err), start)
	}
	if res == nil {
		return tag, nil
	}
	p.trackPos(res, start)
	return res, nil
}

func (p *parser) section() (*ir.Node, error) {
	start := p.s.Pos()
	if !p.s.Maybe(token.OpenSection) {
		return nil, nil
	}
	sec := &ir.Node{Type: ir.SectionType}
	p.trackPos(sec, start)
	if err := p.children(sec, true); err != nil {
		return nil, err
	}
	if p.s.Maybe(token.CloseSection) {
		return sec, nil
	}
	if p.s.EOF() {
		return nil, token.NewErr(ErrSectionEOF, p.s.Pos())
	}
	return nil, token.NewErr(ErrExpectedCloseSection, p.s.Pos())
}

// value never returns a nil node without an error.  colon is the position
// of the ':' preceding a named value.
func (p *parser) value(colon *token.Pos) (*ir.Node, error) {
	txt, err := p.text()
	if err != nil || txt != nil {
		return txt, err
	}
	tag, err := p.tag()
	if err != nil || tag != nil {
		return tag, err
	}
	sec, err := p.section()
	if err != nil || sec != nil {
		return sec, err
	}
	pos := p.s.Pos()
	r, ok := p.s.Peek()
	switch {
	case !ok:
		return nil, token.NewErr(ErrTagEOF, pos)
	case r == token.CloseSection:
		return nil, token.NewErr(ErrUnexpectedCloseSection, pos)
	case r == token.CloseTag && colon != nil:
		return nil, token.NewErr(ErrUnnamedAttr, *colon)
	case r == token.NamedAttr:
		return nil, token.NewErr(ErrIllegalNamed, pos)
	case token.IsSpace(r):
		return nil, token.NewErr(ErrUnexpectedSpace, pos)
	}
	return nil, token.NewErr(ErrInternal, pos)
}

func (p *parser) text() (*ir.Node, error) {
	start := p.s.Pos()
	r, ok := p.s.Peek()
	if !ok {
		return nil, nil
	}
	var (
		res *ir.Node
		err error
	)
	if q, isQuote := ir.QuoteOf(r); isQuote {
		res, err = p.quoted(q)
	} else {
		res, err = p.bare()
	}
	if err != nil || res == nil {
		return nil, err
	}
	p.trackPos(res, start)
	return res, nil
}

func (p *parser) quoted(q ir.Quote) (*ir.Node, error) {
	p.s.Next(nil)
	buf := strings.Builder{}
	for {
		r, esc, err := p.s.Next(ErrQuotedEOF)
		if err != nil {
			return nil, err
		}
		if r == token.EOF {
			return nil, token.NewErr(ErrQuotedEOF, p.s.Pos())
		}
		if !esc && r == q.Rune() {
			break
		}
		buf.WriteRune(r)
	}
	return ir.FromQuoted(buf.String(), q), nil
}

func (p *parser) bare() (*ir.Node, error) {
	buf := strings.Builder{}
	n := 0
	for {
		m := p.s.Mark()
		r, esc, err := p.s.Next(ErrUnquotedEOF)
		if err != nil {
			return nil, err
		}
		if r == token.EOF {
			break
		}
		if !esc && (token.IsSpace(r) || token.IsReserved(r)) {
			p.s.Reset(m)
			break
		}
		buf.WriteRune(r)
		n++
	}
	if n == 0 {
		return nil, nil
	}
	return ir.FromString(buf.String()), nil
}
