package buildconfig

import "errors"

var (
	// ErrEmptyDelimiter is returned when a delimiter marker is blank.
	ErrEmptyDelimiter = errors.New("delimiter markers must not be empty")
	// ErrDelimiterCollision is returned when escaped and raw delimiters are identical.
	ErrDelimiterCollision = errors.New("delimiters and unescape delimiters must differ")
	// ErrEmptyPath is returned when the template source or destination path is blank.
	ErrEmptyPath = errors.New("template paths must not be empty")
)
