package coprime

import (
	"log/slog"
	"math"
	"time"

	"github.com/nao1215/coprimepi/internal/model"
)

const (
	// MinPairs is the exclusive lower bound for the number of sampled pairs.
	MinPairs = 10

	// MinMaxNumber is the exclusive lower bound for the sampling upper bound.
	MinMaxNumber = 10

	// coprimeDensityNumerator is the 6 in P(coprime) = 6/pi^2.
	coprimeDensityNumerator = 6.0
)

// TraceFunc receives every sampled pair in order.
// It observes the run and has no influence on the result.
type TraceFunc func(pair model.Pair)

// Estimator approximates pi by sampling random integer pairs.
type Estimator struct {
	// sampler produces the random integers.
	sampler Sampler

	// trace is called once per pair when set.
	trace TraceFunc

	// logger is used for structured logging of the run.
	logger *slog.Logger

	// now returns the current time; replaced in tests.
	now func() time.Time
}

// Option is a function that configures an Estimator.
type Option func(*Estimator)

// WithSampler sets the source of random integers.
// If not set, a crypto/rand backed sampler is used.
func WithSampler(s Sampler) Option {
	return func(e *Estimator) {
		e.sampler = s
	}
}

// WithTrace registers a callback invoked after each sampled pair.
func WithTrace(fn TraceFunc) Option {
	return func(e *Estimator) {
		e.trace = fn
	}
}

// WithLogger sets a custom logger for the estimator.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Estimator) {
		e.logger = logger
	}
}

// WithClock sets the time source used for StartedAt and Elapsed.
func WithClock(now func() time.Time) Option {
	return func(e *Estimator) {
		e.now = now
	}
}

// NewEstimator creates a new Estimator with the given options.
func NewEstimator(opts ...Option) *Estimator {
	e := &Estimator{}

	for _, opt := range opts {
		opt(e)
	}

	if e.sampler == nil {
		e.sampler = NewCryptoSampler()
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	if e.now == nil {
		e.now = time.Now
	}

	return e
}

// Estimate samples numPairs pairs in [1, maxNumber], counts the coprime
// ones and derives an approximation of pi.
//
// It returns ErrTooFewPairs or ErrMaxNumberTooSmall for out-of-range
// parameters, and ErrNoCoprimePairs when no sampled pair was coprime.
func (e *Estimator) Estimate(numPairs, maxNumber int64) (*model.Result, error) {
	if numPairs <= MinPairs {
		return nil, ErrTooFewPairs
	}
	if maxNumber <= MinMaxNumber {
		return nil, ErrMaxNumberTooSmall
	}

	e.logger.Debug("starting estimation",
		"pairs", numPairs,
		"maxNumber", maxNumber,
	)

	startedAt := e.now()

	var coprimeCount int64
	for i := int64(1); i <= numPairs; i++ {
		x := e.sampler.Draw(maxNumber)
		y := e.sampler.Draw(maxNumber)
		g := GCD(x, y)
		if g == 1 {
			coprimeCount++
		}

		if e.trace != nil {
			e.trace(model.Pair{
				Index:        i,
				X:            x,
				Y:            y,
				GCD:          g,
				CoprimeCount: coprimeCount,
			})
		}
	}

	fraction := float64(coprimeCount) / float64(numPairs)
	estimate, err := EstimateFromFraction(fraction)
	if err != nil {
		e.logger.Warn("estimation failed",
			"pairs", numPairs,
			"coprimeCount", coprimeCount,
			"error", err,
		)
		return nil, err
	}

	result := &model.Result{
		Pairs:             numPairs,
		MaxNumber:         maxNumber,
		CoprimeCount:      coprimeCount,
		Fraction:          fraction,
		Estimate:          estimate,
		Reference:         math.Pi,
		PercentDifference: PercentDifference(math.Pi, estimate),
		StartedAt:         startedAt,
		Elapsed:           e.now().Sub(startedAt),
	}

	e.logger.Debug("estimation finished",
		"coprimeCount", coprimeCount,
		"estimate", estimate,
		"percentDifference", result.PercentDifference,
		"elapsed", result.Elapsed,
	)

	return result, nil
}

// EstimateFromFraction returns sqrt(6 / fraction), the value of pi implied
// by the observed share of coprime pairs.
func EstimateFromFraction(fraction float64) (float64, error) {
	if fraction == 0 {
		return 0, ErrNoCoprimePairs
	}
	if !(fraction > 0 && fraction <= 1) {
		return 0, ErrInvalidFraction
	}
	return math.Sqrt(coprimeDensityNumerator / fraction), nil
}

// PercentDifference returns the absolute error of estimate relative to
// estimate itself, as a percentage.
func PercentDifference(reference, estimate float64) float64 {
	return math.Abs((reference - estimate) * 100 / estimate)
}
