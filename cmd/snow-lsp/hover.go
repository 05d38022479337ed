package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/signadot/snow-format/go-snow/encode"
	"github.com/signadot/snow-format/go-snow/ir"
	"github.com/signadot/snow-format/go-snow/token"
	"go.lsp.dev/protocol"
)

const hoverMax = 60

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return nil, nil
	}
	pos := params.Position
	col := runeCol(doc.line(int(pos.Line)), int(pos.Character))
	node := findNodeAt(doc.node, doc.positions, int(pos.Line)+1, col+1)
	if node == nil {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText(node),
		},
	}, nil
}

// findNodeAt returns the node starting closest before line, col (1-based)
// on the same line.  Nested nodes win ties with their parents.
func findNodeAt(root *ir.Node, positions map[*ir.Node]*token.Pos, line, col int) *ir.Node {
	var (
		best    *ir.Node
		bestCol int
	)
	root.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		p := positions[n]
		if p == nil || n.Type == ir.DocumentType {
			return true, nil
		}
		pl, pc := p.LineCol()
		if pl == line && pc <= col && pc >= bestCol {
			best, bestCol = n, pc
		}
		return true, nil
	})
	return best
}

func hoverText(n *ir.Node) string {
	parts := []string{fmt.Sprintf("**Type:** %s", n.Type)}
	switch n.Type {
	case ir.TextType:
		parts = append(parts, fmt.Sprintf("**Quote:** %s", n.Quote))
	case ir.TagType:
		if name := n.Name(); name != nil {
			parts = append(parts, fmt.Sprintf("**Name:** `%s`", clip(encode.String(name))))
		}
		parts = append(parts, fmt.Sprintf("%d positional, %d named", len(n.Values), len(n.Fields)))
	case ir.SectionType:
		parts = append(parts, fmt.Sprintf("%d children", len(n.Values)))
	}
	parts = append(parts, fmt.Sprintf("**Value:** `%s`", clip(encode.String(n))))
	return strings.Join(parts, "\n\n")
}

func clip(s string) string {
	rs := []rune(s)
	if len(rs) > hoverMax {
		return string(rs[:hoverMax]) + "..."
	}
	return s
}
