package scheduler

import (
	"github.com/pkg/errors"
)

func validate(processes []Process, algorithm Algorithm, quantum int) error {
	if !algorithm.Valid() {
		return errors.Wrapf(ErrUnknownAlgorithm, "%q", string(algorithm))
	}
	if len(processes) == 0 {
		return ErrEmptyProcessList
	}
	if algorithm == RR && quantum <= 0 {
		return errors.Wrapf(ErrInvalidQuantum, "got %d", quantum)
	}
	seen := make(map[string]struct{}, len(processes))
	for i, p := range processes {
		if p.Burst <= 0 {
			return errors.Wrapf(ErrNonPositiveBurst, "process %q (#%d) has burst %d", p.ID, i, p.Burst)
		}
		if p.Arrival < 0 {
			return errors.Wrapf(ErrNegativeArrival, "process %q (#%d) arrives at %d", p.ID, i, p.Arrival)
		}
		if _, ok := seen[p.ID]; ok {
			return errors.Wrapf(ErrDuplicateProcessID, "%q", p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}

// Validate checks a run request without computing anything.
func Validate(processes []Process, algorithm Algorithm, quantum int) error {
	return validate(processes, algorithm, quantum)
}
