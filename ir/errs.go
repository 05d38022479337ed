package ir

import "errors"

var (
	ErrSectionChild = errors.New("sections and documents hold only text and tags")
	ErrNotContainer = errors.New("not a tag, section or document")
	ErrBadIR        = errors.New("malformed ir")
)
