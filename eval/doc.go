// Package eval provides built-in tag definitions that evaluate their
// arguments while a document is parsed.
//
//	{env HOME default:/tmp}   the value of an environment variable
//	{expr "n * 2"}            the result of an expr-lang expression
//	{file notes.txt}          the contents of a file
//	{exec "date +%F"}         the standard output of a shell command
//
// Each is a [Symbol] in a process-wide registry; [Tagset] binds the
// registered symbols to an [Env] for use with parse.ParseTagset.
package eval
