package model

// Pair is a single sampled pair of integers.
type Pair struct {
	// Index is the 1-based position of the pair in the run.
	Index int64 `json:"index"`

	// X and Y are the sampled integers, both in [1, MaxNumber].
	X int64 `json:"x"`
	Y int64 `json:"y"`

	// GCD is the greatest common divisor of X and Y.
	GCD int64 `json:"gcd"`

	// CoprimeCount is the running number of coprime pairs after this pair.
	CoprimeCount int64 `json:"coprime_count"`
}

// Coprime reports whether the pair is coprime.
func (p Pair) Coprime() bool {
	return p.GCD == 1
}
