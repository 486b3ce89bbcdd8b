package coprime

import "errors"

var (
	// ErrTooFewPairs is returned when the number of pairs is not greater than MinPairs.
	ErrTooFewPairs = errors.New("pairs must be greater than 10")

	// ErrMaxNumberTooSmall is returned when the sampling bound is not greater than MinMaxNumber.
	ErrMaxNumberTooSmall = errors.New("maximum number must be greater than 10")

	// ErrNoCoprimePairs is returned when no sampled pair was coprime.
	// The estimate sqrt(6 / 0) is undefined, so no result is produced.
	ErrNoCoprimePairs = errors.New("no coprime pairs found: cannot estimate pi")

	// ErrInvalidFraction is returned for a coprime fraction outside (0, 1].
	ErrInvalidFraction = errors.New("coprime fraction must be in (0, 1]")
)
