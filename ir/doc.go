// Package ir provides the in-memory tree for Snow documents.
//
// # Node Types
//
// A [Node] is a tagged union discriminated by its Type:
//
//   - TextType: a run of text in String, with the Quote it was written in
//   - TagType: positional values in Values, named values in Named keyed by
//     the node at the same index in Fields
//   - SectionType: an ordered list of Text and Tag children in Values
//   - DocumentType: like a section, but the root of a parse
//
// Sections and documents never contain sections or documents.  The
// constructors and [Node.Add] reject them with [ErrSectionChild].
//
// # Creating Nodes
//
//	txt := ir.FromString("hello")
//	tag := ir.NewTag(ir.FromString("i"), txt)
//	tag.Set(ir.FromString("k"), ir.FromQuoted("a b", ir.DoubleQuote))
//	sec, err := ir.NewSection(txt, tag)
//
// # Comparison and Hashing
//
// [Equal] is structural: tag keys are compared by value, not identity, and
// named attributes are unordered.  [Node.Hash] agrees with Equal.
//
// # JSON
//
// Nodes marshal to a type-tagged JSON form with [ToJSON] and back with
// [FromJSON].
//
// Nodes are not safe for concurrent mutation.
package ir
