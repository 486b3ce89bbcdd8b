package model

import (
	"math"
	"time"
)

// Result is the outcome of a single estimation run.
type Result struct {
	// Pairs is the number of sampled pairs.
	Pairs int64 `json:"pairs"`

	// MaxNumber is the inclusive upper bound of sampled integers.
	MaxNumber int64 `json:"max_number"`

	// CoprimeCount is the number of coprime pairs, 0 <= CoprimeCount <= Pairs.
	CoprimeCount int64 `json:"coprime_count"`

	// Fraction is CoprimeCount / Pairs.
	Fraction float64 `json:"fraction"`

	// Estimate is the approximation of pi, sqrt(6 / Fraction).
	Estimate float64 `json:"estimate"`

	// Reference is the true value of pi used for comparison.
	Reference float64 `json:"reference"`

	// PercentDifference is the absolute relative error of Estimate in percent.
	PercentDifference float64 `json:"percent_difference"`

	// StartedAt is when sampling began.
	StartedAt time.Time `json:"started_at"`

	// Elapsed is how long sampling and estimation took.
	Elapsed time.Duration `json:"elapsed"`
}

// NonCoprimeCount returns the number of sampled pairs that share a factor.
func (r *Result) NonCoprimeCount() int64 {
	return r.Pairs - r.CoprimeCount
}

// RoundedPercentDifference returns PercentDifference rounded to two decimals.
func (r *Result) RoundedPercentDifference() float64 {
	return math.Round(r.PercentDifference*100) / 100
}
