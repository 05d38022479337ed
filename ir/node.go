package ir

import (
	"slices"
	"strings"
	"unicode/utf8"
)

type Node struct {
	Type Type

	// Quote is the style a Text was written in.  It is presentation only.
	Quote  Quote
	String string

	// Values holds positional values of a tag and the children of a
	// section or document.
	Values []*Node

	// Fields[i] is the key for Named[i].  Tags only.
	Fields []*Node
	Named  []*Node
}

func FromString(v string) *Node {
	return FromQuoted(v, Bare)
}

// FromQuoted returns a Text with payload v written in style q.  CR and CR-LF
// are normalised to LF.
func FromQuoted(v string, q Quote) *Node {
	return &Node{
		Type:   TextType,
		Quote:  q,
		String: normalizeNewlines(v),
	}
}

func normalizeNewlines(v string) string {
	if !strings.ContainsRune(v, '\r') {
		return v
	}
	v = strings.ReplaceAll(v, "\r\n", "\n")
	return strings.ReplaceAll(v, "\r", "\n")
}

func NewTag(pos ...*Node) *Node {
	return &Node{
		Type:   TagType,
		Values: slices.Clone(pos),
	}
}

func NewSection(children ...*Node) (*Node, error) {
	return newContainer(SectionType, children)
}

// NewDocument builds a document programmatically; parsing is the usual
// source of documents.
func NewDocument(children ...*Node) (*Node, error) {
	return newContainer(DocumentType, children)
}

func newContainer(t Type, children []*Node) (*Node, error) {
	res := &Node{Type: t, Values: make([]*Node, 0, len(children))}
	for _, c := range children {
		if err := res.Add(c); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Name returns the first positional value of a tag, or nil.
func (y *Node) Name() *Node {
	if y.Type != TagType || len(y.Values) == 0 {
		return nil
	}
	return y.Values[0]
}

func (y *Node) fieldIndex(key *Node) int {
	for i, f := range y.Fields {
		if Equal(f, key) {
			return i
		}
	}
	return -1
}

// Get returns the value of named attribute key, or nil.
func (y *Node) Get(key *Node) *Node {
	if y.Type != TagType {
		return nil
	}
	if i := y.fieldIndex(key); i != -1 {
		return y.Named[i]
	}
	return nil
}

func (y *Node) GetString(key string) *Node {
	return y.Get(FromString(key))
}

// Set sets named attribute key to val on a tag, overwriting any existing
// value, and reports whether key was already present.  Set is a no-op on
// other node types.
func (y *Node) Set(key, val *Node) bool {
	if y.Type != TagType {
		return false
	}
	if i := y.fieldIndex(key); i != -1 {
		y.Named[i] = val
		return true
	}
	y.Fields = append(y.Fields, key)
	y.Named = append(y.Named, val)
	return false
}

// Has reports named key membership for tags and child membership for
// sections and documents.
func (y *Node) Has(key *Node) bool {
	switch y.Type {
	case TagType:
		return y.fieldIndex(key) != -1
	case SectionType, DocumentType:
		return slices.ContainsFunc(y.Values, func(c *Node) bool {
			return Equal(c, key)
		})
	}
	return false
}

func (y *Node) At(i int) *Node {
	if y.Type == TextType || i < 0 || i >= len(y.Values) {
		return nil
	}
	return y.Values[i]
}

// SetAt replaces the i'th positional value or child.
func (y *Node) SetAt(i int, v *Node) bool {
	if y.Type == TextType || i < 0 || i >= len(y.Values) {
		return false
	}
	if y.Type.IsSectionLike() && !isChild(v) {
		return false
	}
	y.Values[i] = v
	return true
}

// Len is the rune count of a text, the number of positional values of a tag
// and the number of children of a section or document.
func (y *Node) Len() int {
	if y.Type == TextType {
		return utf8.RuneCountInString(y.String)
	}
	return len(y.Values)
}

// Add appends a positional value to a tag or a child to a section or
// document.
func (y *Node) Add(v *Node) error {
	switch y.Type {
	case TagType:
	case SectionType, DocumentType:
		if !isChild(v) {
			return ErrSectionChild
		}
	default:
		return ErrNotContainer
	}
	y.Values = append(y.Values, v)
	return nil
}

func isChild(v *Node) bool {
	return v != nil && (v.Type == TextType || v.Type == TagType)
}

// MergeNamed records val under key the way the parser treats a repeated
// key: a first occurrence is set, later ones accumulate in a section.
// Section-like values contribute their children.
func (y *Node) MergeNamed(key, val *Node) {
	i := y.fieldIndex(key)
	if i == -1 {
		y.Fields = append(y.Fields, key)
		y.Named = append(y.Named, val)
		return
	}
	acc := y.Named[i]
	if !acc.Type.IsSectionLike() {
		acc = &Node{Type: SectionType, Values: []*Node{acc}}
		y.Named[i] = acc
	}
	if val.Type.IsSectionLike() {
		acc.Values = append(acc.Values, val.Values...)
		return
	}
	acc.Values = append(acc.Values, val)
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	return &Node{
		Type:   y.Type,
		Quote:  y.Quote,
		String: y.String,
		Values: cloneAll(y.Values),
		Fields: cloneAll(y.Fields),
		Named:  cloneAll(y.Named),
	}
}

func cloneAll(ns []*Node) []*Node {
	if ns == nil {
		return nil
	}
	res := make([]*Node, len(ns))
	for i, n := range ns {
		res[i] = n.Clone()
	}
	return res
}

// Visit walks the tree calling f before (isPost false) and after (isPost
// true) the children of each node.  Tag children are the positional values
// followed by each key and its value.  Returning false from the pre call
// skips the children.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
		for i, k := range y.Fields {
			if err := k.Visit(f); err != nil {
				return err
			}
			if err := y.Named[i].Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
