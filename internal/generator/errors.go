package generator

import "errors"

var (
	ErrInvalidYearRange = errors.New("invalid year range")
	ErrEmptyDirectory   = errors.New("no clients or business units")
)
