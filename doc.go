// Package snow ties the Snow parser to the built-in eval tags.
//
// Snow text mixes free text with tags and sections:
//
//	Hello {i World p:[Section test {with tags}]}
//
// The packages below do the work:
//
//   - github.com/signadot/snow-format/go-snow/parse - text to tree
//   - github.com/signadot/snow-format/go-snow/ir - the tree
//   - github.com/signadot/snow-format/go-snow/encode - tree to text
//   - github.com/signadot/snow-format/go-snow/tagset - parse time tag transforms
//   - github.com/signadot/snow-format/go-snow/eval - built-in tag definitions
//   - github.com/signadot/snow-format/go-snow/libdiff - tree comparison
package snow
