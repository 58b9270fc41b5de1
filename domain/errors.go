package domain

import "errors"

var (
	// ErrInvalidFrequency is returned when a frequency specifier matches neither
	// a known name nor a known period count.
	ErrInvalidFrequency = errors.New("invalid repayment frequency")

	// ErrInconsistentInterestOnlyConfig is returned when exactly one of the
	// interest-only rate and interest-only period count is set.
	ErrInconsistentInterestOnlyConfig = errors.New("interest-only rate and periods must both be set")

	// ErrArithmeticDegenerate is returned for inputs the payment formula cannot
	// handle, such as a non-positive number of principal-paying periods.
	ErrArithmeticDegenerate = errors.New("degenerate payment calculation")

	ErrInvalidParameter = errors.New("invalid loan parameter")
	ErrNotFound         = errors.New("amortization not found")
)
