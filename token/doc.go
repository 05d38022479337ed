// Package token provides the character-level scanning support for Snow.
//
// [Scanner] is an escape-aware cursor over a source string that tracks
// 1-based line and column information, and [Error] carries a parse failure
// together with the [Pos] at which it occurred.
//
// The set of characters with meaning in Snow is fixed: see [OpenTag],
// [CloseTag], [OpenSection], [CloseSection], [NamedAttr], the three quote
// characters and [Escape].
package token
