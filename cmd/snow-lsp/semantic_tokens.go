package main

import (
	"context"
	"slices"

	"github.com/signadot/snow-format/go-snow/ir"
	"github.com/signadot/snow-format/go-snow/token"
	"go.lsp.dev/protocol"
)

type tokenInfo struct {
	line      uint32
	character uint32
	length    uint32
	tokenType protocol.SemanticTokenTypes
	modifiers []protocol.SemanticTokenModifiers
}

type tokenCollector struct {
	src       []rune
	lines     [][]rune
	positions map[*ir.Node]*token.Pos
	list      []tokenInfo
}

// add records a token of length runes at the position of n.
func (c *tokenCollector) add(n *ir.Node, length int, tt protocol.SemanticTokenTypes, mods ...protocol.SemanticTokenModifiers) {
	p := c.positions[n]
	if p == nil || length <= 0 {
		return
	}
	var line []rune
	if i := p.Line - 1; i < len(c.lines) {
		line = c.lines[i]
	}
	start := utf16Col(line, p.Col-1)
	c.list = append(c.list, tokenInfo{
		line:      uint32(p.Line - 1),
		character: start,
		length:    utf16Col(line, p.Col-1+length) - start,
		tokenType: tt,
		modifiers: mods,
	})
}

// text adds a token covering the source of the text n, up to the end of its
// first line.
func (c *tokenCollector) text(n *ir.Node, tt protocol.SemanticTokenTypes, mods ...protocol.SemanticTokenModifiers) {
	if n.Type != ir.TextType {
		c.walk(n)
		return
	}
	p := c.positions[n]
	if p == nil {
		return
	}
	c.add(n, textExtent(c.src, p.Offset), tt, mods...)
}

// walk visits tags below n.  Free text in sections and documents is left
// unhighlighted.
func (c *tokenCollector) walk(n *ir.Node) {
	switch n.Type {
	case ir.SectionType, ir.DocumentType:
		for _, child := range n.Values {
			if child.Type == ir.TagType {
				c.walk(child)
			}
		}
	case ir.TagType:
		c.add(n, 1, protocol.SemanticTokenOperator)
		for i, v := range n.Values {
			if i == 0 {
				c.text(v, protocol.SemanticTokenKeyword, protocol.SemanticTokenModifierDefinition)
				continue
			}
			c.text(v, protocol.SemanticTokenString)
		}
		for i, k := range n.Fields {
			c.text(k, protocol.SemanticTokenProperty)
			c.text(n.Named[i], protocol.SemanticTokenString)
		}
	}
}

// textExtent returns the number of runes of the text starting at off, stopping
// at a line break.
func textExtent(src []rune, off int) int {
	if off >= len(src) {
		return 0
	}
	q, quoted := rune(0), token.IsQuote(src[off])
	i := off
	if quoted {
		q = src[off]
		i++
	}
	for i < len(src) {
		r := src[i]
		if token.IsLineBreak(r) {
			break
		}
		if r == token.Escape {
			i += 2
			continue
		}
		if quoted && r == q {
			i++
			break
		}
		if !quoted && (token.IsSpace(r) || token.IsReserved(r)) {
			break
		}
		i++
	}
	return min(i, len(src)) - off
}

func (s *Server) collectSemanticTokens(doc *document) []uint32 {
	if doc.node == nil {
		return []uint32{}
	}
	c := &tokenCollector{src: []rune(doc.content), lines: doc.lines, positions: doc.positions}
	c.walk(doc.node)
	slices.SortStableFunc(c.list, func(a, b tokenInfo) int {
		if a.line != b.line {
			return int(a.line) - int(b.line)
		}
		return int(a.character) - int(b.character)
	})

	typeMap := map[protocol.SemanticTokenTypes]uint32{}
	for i, tt := range tokenTypes {
		typeMap[tt] = uint32(i)
	}
	modMap := map[protocol.SemanticTokenModifiers]uint32{}
	for i, tm := range tokenModifiers {
		modMap[tm] = uint32(i)
	}

	res := []uint32{}
	var prevLine, prevChar uint32
	for _, ti := range c.list {
		deltaLine := ti.line - prevLine
		deltaChar := ti.character
		if deltaLine == 0 {
			deltaChar = ti.character - prevChar
		}
		var bits uint32
		for _, m := range ti.modifiers {
			bits |= 1 << modMap[m]
		}
		res = append(res, deltaLine, deltaChar, ti.length, typeMap[ti.tokenType], bits)
		prevLine, prevChar = ti.line, ti.character
	}
	return res
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{Data: s.collectSemanticTokens(doc)}, nil
}

// SemanticTokensRange answers with the whole document.
func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{Data: s.collectSemanticTokens(doc)}, nil
}
