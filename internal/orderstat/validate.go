package orderstat

import (
	"errors"
	"fmt"
)

var ErrInvalidParameters = errors.New("invalid order statistic parameters")

func validateVariances(sigmaSqX, sigmaSqEps float64) error {
	if !(sigmaSqX > 0) {
		return fmt.Errorf("%w: population variance must be positive, got %v", ErrInvalidParameters, sigmaSqX)
	}
	if !(sigmaSqEps >= 0) {
		return fmt.Errorf("%w: noise variance must be non-negative, got %v", ErrInvalidParameters, sigmaSqEps)
	}
	return nil
}

func validateSelection(n, m int) error {
	if n <= 0 {
		return fmt.Errorf("%w: population size must be positive, got %d", ErrInvalidParameters, n)
	}
	if m <= 0 || m > n {
		return fmt.Errorf("%w: selection size must be in [1, %d], got %d", ErrInvalidParameters, n, m)
	}
	return nil
}

func validateRank(r, n int) error {
	if r < 1 || r > n {
		return fmt.Errorf("%w: rank must be in [1, %d], got %d", ErrInvalidParameters, n, r)
	}
	return nil
}
