package errs

import (
	"errors"
)

var (
	ErrDuplicateID     = errors.New("item with this id already exists")
	ErrNotFound        = errors.New("item not found")
	ErrAlreadyBorrowed = errors.New("item already borrowed")
	ErrInvalidDuration = errors.New("invalid duration format")
	ErrNotReturnable   = errors.New("item was not borrowed")
	ErrNotPeriodical   = errors.New("item is not a periodical")
	ErrNotPlayable     = errors.New("item is not playable")
)
