package main

import (
	"context"
	"errors"
	"sync"

	"github.com/signadot/snow-format/go-snow/ir"
	"github.com/signadot/snow-format/go-snow/parse"
	"github.com/signadot/snow-format/go-snow/token"
	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

// document is an open text.  node is nil when content does not parse, in
// which case err holds the failure.
type document struct {
	uri       string
	content   string
	version   int32
	node      *ir.Node
	positions map[*ir.Node]*token.Pos
	err       error
	lines     [][]rune
}

func (d *document) line(n int) []rune {
	if n < 0 || n >= len(d.lines) {
		return nil
	}
	return d.lines[n]
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

// put parses content without a tagset: an editor should never run the
// eval tags.
func (ds *documentStore) put(uri string, content string, version int32) *document {
	positions := map[*ir.Node]*token.Pos{}
	node, err := parse.ParseString(content, parse.ParsePositions(positions))
	doc := &document{
		uri:       uri,
		content:   content,
		version:   version,
		node:      node,
		positions: positions,
		err:       err,
		lines:     splitLines([]rune(content)),
	}
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, doc *document) {
	if s.conn == nil {
		return
	}
	s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(doc.uri),
		Diagnostics: diagnostics(doc),
	})
}

func diagnostics(doc *document) []protocol.Diagnostic {
	res := []protocol.Diagnostic{}
	if doc.err == nil {
		return res
	}
	d := protocol.Diagnostic{
		Severity: protocol.DiagnosticSeverityError,
		Message:  doc.err.Error(),
		Source:   "snow",
	}
	var tErr *token.Error
	if errors.As(doc.err, &tErr) && tErr.Pos.IsValid() {
		// token positions are 1-based runes
		line := doc.line(tErr.Pos.Line - 1)
		start := protocol.Position{
			Line:      uint32(tErr.Pos.Line - 1),
			Character: utf16Col(line, tErr.Pos.Col-1),
		}
		end := start
		end.Character = utf16Col(line, tErr.Pos.Col)
		d.Range = protocol.Range{Start: start, End: end}
		d.Message = tErr.Err.Error()
	}
	return append(res, d)
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	doc := s.docs.get(uri)
	if doc == nil {
		return nil
	}
	content := doc.content
	for _, change := range params.ContentChanges {
		r := change.Range
		if r == (protocol.Range{}) && change.RangeLength == 0 {
			content = change.Text
			continue
		}
		rs := []rune(content)
		start := lineColToOffset(rs, int(r.Start.Line), int(r.Start.Character))
		end := lineColToOffset(rs, int(r.End.Line), int(r.End.Character))
		if start > end {
			continue
		}
		content = string(rs[:start]) + change.Text + string(rs[end:])
	}
	doc = s.docs.put(uri, content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

// lineColToOffset converts a 0-based line and UTF-16 column to a rune
// offset in rs, clamped to the end of the line and of rs.
func lineColToOffset(rs []rune, line, col int) int {
	curLine, curCol := 0, 0
	for i, r := range rs {
		if curLine == line && curCol >= col {
			return i
		}
		if r == '\n' {
			if curLine == line {
				return i
			}
			curLine++
			curCol = 0
			continue
		}
		if curLine == line {
			curCol += unitLen(r)
		}
	}
	return len(rs)
}
