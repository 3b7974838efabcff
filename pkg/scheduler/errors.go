package scheduler

import (
	"errors"
	"fmt"
)

// ErrConfiguration is wrapped by every error returned for an invalid run request.
// Callers can test for the whole family with errors.Is(err, ErrConfiguration).
var ErrConfiguration = errors.New("configuration error")

var (
	ErrEmptyProcessList   = fmt.Errorf("%w: process list is empty", ErrConfiguration)
	ErrNonPositiveBurst   = fmt.Errorf("%w: burst must be positive", ErrConfiguration)
	ErrInvalidQuantum     = fmt.Errorf("%w: round robin quantum must be positive", ErrConfiguration)
	ErrNegativeArrival    = fmt.Errorf("%w: arrival must not be negative", ErrConfiguration)
	ErrDuplicateProcessID = fmt.Errorf("%w: duplicate process id", ErrConfiguration)
	ErrUnknownAlgorithm   = fmt.Errorf("%w: unknown algorithm", ErrConfiguration)
)

// ErrEmptyResults is returned by Summarize when there is nothing to average.
var ErrEmptyResults = errors.New("no results to summarize")
