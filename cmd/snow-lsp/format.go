package main

import (
	"context"
	"strings"

	"github.com/signadot/snow-format/go-snow/encode"
	"go.lsp.dev/protocol"
)

// Formatting replaces the whole document with its canonical form.  A
// document that does not parse gets no edits.
func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return nil, nil
	}
	formatted := encode.String(doc.node)
	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}
	lines := strings.Count(doc.content, "\n")
	if doc.content != "" && !strings.HasSuffix(doc.content, "\n") {
		lines++
	}
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   protocol.Position{Line: uint32(lines), Character: 0},
			},
			NewText: formatted,
		},
	}, nil
}
