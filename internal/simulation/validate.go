package simulation

import (
	"errors"
	"fmt"
)

var ErrInvalidParameters = errors.New("invalid simulation parameters")

func (p Params) Validate() error {
	if p.Samples <= 0 {
		return fmt.Errorf("%w: sample count must be positive, got %d", ErrInvalidParameters, p.Samples)
	}
	if p.N <= 0 {
		return fmt.Errorf("%w: population size must be positive, got %d", ErrInvalidParameters, p.N)
	}
	if p.M <= 0 || p.M > p.N {
		return fmt.Errorf("%w: selection size must be in [1, %d], got %d", ErrInvalidParameters, p.N, p.M)
	}
	if !(p.SigmaSqX > 0) {
		return fmt.Errorf("%w: population variance must be positive, got %v", ErrInvalidParameters, p.SigmaSqX)
	}
	if !(p.SigmaSq1 >= 0) || !(p.SigmaSq2 >= 0) {
		return fmt.Errorf("%w: noise variances must be non-negative, got %v and %v", ErrInvalidParameters, p.SigmaSq1, p.SigmaSq2)
	}
	return nil
}
