// Package parse provides Snow parsing support.
//
// [Parse] and [ParseString] turn Snow text into an [ir.Node] of type
// DocumentType.  [ParseValue] parses a single value, the form tag keys and
// values take.
//
// Errors are [*token.Error] values carrying a 1-based line and column and
// wrapping one of the Err sentinels in this package:
//
//	_, err := parse.ParseString("{a:}")
//	var tErr *token.Error
//	if errors.As(err, &tErr) && errors.Is(err, parse.ErrUnnamedAttr) {
//		fmt.Println(tErr.Pos.Line, tErr.Pos.Col) // 1 3
//	}
//
// Parsing consults a [tagset.Tagset] given with [ParseTagset] each time a
// tag is closed.
package parse
