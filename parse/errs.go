package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse = errors.New("parse error")

	ErrSectionEOF             = fmt.Errorf("%w: unterminated section", ErrParse)
	ErrUnquotedEOF            = fmt.Errorf("%w: unterminated unquoted text", ErrParse)
	ErrQuotedEOF              = fmt.Errorf("%w: unterminated quoted text", ErrParse)
	ErrTagEOF                 = fmt.Errorf("%w: unterminated tag", ErrParse)
	ErrExpectedCloseSection   = fmt.Errorf("%w: expected closing ]", ErrParse)
	ErrUnexpectedCloseSection = fmt.Errorf("%w: unexpected ]", ErrParse)
	ErrUnnamedAttr            = fmt.Errorf("%w: missing value after :", ErrParse)
	ErrIllegalNamed           = fmt.Errorf("%w: unexpected : in unquoted text", ErrParse)
	ErrUnexpectedSpace        = fmt.Errorf("%w: unexpected whitespace", ErrParse)
	ErrTrailing               = fmt.Errorf("%w: trailing input after value", ErrParse)
	ErrInternal               = fmt.Errorf("%w: internal parser error", ErrParse)
	ErrTagdef                 = fmt.Errorf("%w: tag definition failed", ErrParse)
)

// IsIncomplete reports whether err means the input ended inside a
// construct, so that more input could complete it.
func IsIncomplete(err error) bool {
	for _, e := range []error{ErrSectionEOF, ErrUnquotedEOF, ErrQuotedEOF, ErrTagEOF} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
