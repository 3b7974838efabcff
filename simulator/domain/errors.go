package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrNilQueryInput    = errors.New("query options is nil")
	ErrInvalidID        = errors.New("invalid simulation id")
	ErrTooManyProcesses = errors.New("too many processes")
	ErrWorkloadTooLong  = errors.New("total burst exceeds limit")
	ErrTokenDisabled    = errors.New("token authentication is disabled")
)
