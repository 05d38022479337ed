// Package encode encodes IR nodes to Snow text.
//
// # Usage
//
//	doc, _ := parse.ParseString("Hello {i World}")
//	s := encode.String(doc)        // canonical form
//	m := encode.Mini(doc, nil)     // minimal form
//
//	// Encode to a writer, as JSON, with colours
//	err := encode.Encode(doc, os.Stdout,
//	    encode.EncodeFormat(format.JSONFormat),
//	    encode.EncodeColors(encode.NewColors()))
//
// The canonical form reparses to an equal tree.  The minimal form drops the
// space between tag attributes where a delimiter already separates them.
package encode
