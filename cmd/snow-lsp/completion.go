package main

import (
	"context"

	"github.com/signadot/snow-format/go-snow/eval"
	"github.com/signadot/snow-format/go-snow/token"
	"go.lsp.dev/protocol"
)

// Completion offers the eval tag names right after an unescaped '{'.
func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	rs := []rune(doc.content)
	off := lineColToOffset(rs, int(params.Position.Line), int(params.Position.Character))
	items := []protocol.CompletionItem{}
	if afterOpenTag(rs[:off]) {
		for _, sym := range eval.Symbols() {
			items = append(items, protocol.CompletionItem{
				Label:      sym.String(),
				Kind:       protocol.CompletionItemKindFunction,
				InsertText: sym.String() + " ",
				Detail:     "eval tag",
			})
		}
	}
	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

func afterOpenTag(rs []rune) bool {
	n := len(rs)
	if n == 0 || rs[n-1] != token.OpenTag {
		return false
	}
	esc := 0
	for i := n - 2; i >= 0 && rs[i] == token.Escape; i-- {
		esc++
	}
	return esc%2 == 0
}
