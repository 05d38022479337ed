package token

import "fmt"

// Error is a failure at a position in the source.  Err is usually one of the
// parse package's sentinel errors.
type Error struct {
	Err error
	Pos Pos
}

func NewErr(e error, p Pos) *Error {
	return &Error{Err: e, Pos: p}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}
