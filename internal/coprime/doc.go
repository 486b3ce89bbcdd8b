// Package coprime estimates pi from the density of coprime integer pairs.
//
// Two positive integers chosen independently at random are coprime with
// probability 6/pi^2. The Estimator samples pairs from a Sampler, counts the
// pairs whose greatest common divisor is 1, and inverts the relation:
//
//	pi ≈ sqrt(6 / fraction)
//
// # Randomness
//
// The default Sampler reads from crypto/rand so that every run draws from
// the operating system's entropy pool. It is adapted to math/rand/v2 as a
// Source, which gives unbiased bounded integers through Rand.Int64N.
//
// # Usage
//
//	est := coprime.NewEstimator(coprime.WithLogger(logger))
//	result, err := est.Estimate(1_000_000, 1<<40)
//	if errors.Is(err, coprime.ErrNoCoprimePairs) {
//	    // no estimate is defined for this run
//	}
package coprime
