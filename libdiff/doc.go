// Package libdiff compares Snow trees.
//
// [DiffChildren] aligns the children of two documents, sections or tags,
// treating structurally equal children as the same.  [DiffText] compares
// canonical forms character by character.  [Format] renders either result
// as a line-oriented listing.
package libdiff
