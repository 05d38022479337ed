package ir

import (
	"errors"
	"testing"
)

func txt(s string) *Node { return FromString(s) }

func TestFromStringNewlines(t *testing.T) {
	n := FromQuoted("a\r\nb\rc\nd", DoubleQuote)
	if n.String != "a\nb\nc\nd" {
		t.Errorf("got %q", n.String)
	}
	if n.Quote != DoubleQuote {
		t.Errorf("got quote %s", n.Quote)
	}
}

func TestTagAccessors(t *testing.T) {
	tag := NewTag(txt("i"), txt("World"))
	if !Equal(tag.Name(), txt("i")) {
		t.Errorf("name %v", tag.Name())
	}
	if tag.Set(txt("k"), txt("v")) {
		t.Error("k should be new")
	}
	if !tag.Set(txt("k"), txt("w")) {
		t.Error("k should exist")
	}
	if got := tag.GetString("k"); got == nil || got.String != "w" {
		t.Errorf("got %v", got)
	}
	if len(tag.Fields) != 1 {
		t.Errorf("set duplicated key: %d fields", len(tag.Fields))
	}
	if !tag.Has(txt("k")) || tag.Has(txt("x")) {
		t.Error("Has")
	}
	if tag.Len() != 2 || tag.At(1).String != "World" || tag.At(2) != nil {
		t.Error("positional access")
	}
	if !tag.SetAt(1, txt("There")) || tag.At(1).String != "There" {
		t.Error("SetAt")
	}
	if tag.SetAt(5, txt("x")) {
		t.Error("SetAt out of range")
	}
	if err := tag.Add(txt("more")); err != nil || tag.Len() != 3 {
		t.Errorf("Add: %v", err)
	}
}

func TestContainerPolicy(t *testing.T) {
	sec, err := NewSection(txt("a"), NewTag(txt("b")))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewDocument(txt("x"), sec); !errors.Is(err, ErrSectionChild) {
		t.Errorf("document accepted a section: %v", err)
	}
	if err := sec.Add(sec.Clone()); !errors.Is(err, ErrSectionChild) {
		t.Errorf("section accepted a section: %v", err)
	}
	doc, _ := NewDocument()
	if err := sec.Add(doc); !errors.Is(err, ErrSectionChild) {
		t.Errorf("section accepted a document: %v", err)
	}
	if sec.SetAt(0, doc) {
		t.Error("SetAt accepted a document")
	}
	if err := txt("a").Add(txt("b")); !errors.Is(err, ErrNotContainer) {
		t.Errorf("text Add: %v", err)
	}
	if !sec.Has(txt("a")) {
		t.Error("section membership")
	}
}

func TestMergeNamed(t *testing.T) {
	tag := NewTag(txt("t"))
	tag.MergeNamed(txt("k"), txt("a"))
	tag.MergeNamed(txt("k"), txt("b"))
	want, _ := NewSection(txt("a"), txt("b"))
	if !Equal(tag.GetString("k"), want) {
		t.Fatalf("got %v", tag.GetString("k"))
	}
	tag.MergeNamed(txt("k"), txt("c"))
	sec, _ := NewSection(txt("d"), NewTag(txt("e")))
	tag.MergeNamed(txt("k"), sec)
	want, _ = NewSection(txt("a"), txt("b"), txt("c"), txt("d"), NewTag(txt("e")))
	if !Equal(tag.GetString("k"), want) {
		t.Errorf("got %v", tag.GetString("k"))
	}
	if len(tag.Fields) != 1 {
		t.Errorf("got %d keys", len(tag.Fields))
	}
}

func TestClone(t *testing.T) {
	tag := NewTag(txt("t"))
	tag.Set(txt("k"), NewTag(txt("v")))
	c := tag.Clone()
	if !Equal(tag, c) {
		t.Fatal("clone differs")
	}
	c.GetString("k").Values[0].String = "w"
	if tag.GetString("k").Values[0].String != "v" {
		t.Error("clone shares nodes")
	}
}

func TestVisit(t *testing.T) {
	tag := NewTag(txt("t"), txt("p"))
	tag.Set(txt("k"), txt("v"))
	doc, _ := NewDocument(txt("a"), tag)
	var pre []string
	err := doc.Visit(func(n *Node, isPost bool) (bool, error) {
		if !isPost && n.Type == TextType {
			pre = append(pre, n.String)
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a", "t", "p", "k", "v"}
	if len(pre) != len(want) {
		t.Fatalf("got %v", pre)
	}
	for i := range want {
		if pre[i] != want[i] {
			t.Errorf("%d: got %q want %q", i, pre[i], want[i])
		}
	}
}

func TestJSON(t *testing.T) {
	tag := NewTag(txt("t"), FromQuoted("a b", SingleQuote))
	sec, _ := NewSection(txt("x "), NewTag(txt("y")))
	tag.Set(txt("k"), sec)
	doc, _ := NewDocument(txt("Hello "), tag)
	d, err := ToJSON(doc)
	if err != nil {
		t.Fatal(err)
	}
	back, err := FromJSON(d)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(doc, back) || back.Type != DocumentType {
		t.Errorf("json round trip: %s", d)
	}
	if back.Values[1].Values[1].Quote != SingleQuote {
		t.Error("quote lost")
	}
	if _, err := FromJSON([]byte(`{"type":"Section","values":[{"type":"Section"}]}`)); !errors.Is(err, ErrSectionChild) {
		t.Errorf("expected ErrSectionChild, got %v", err)
	}
}
