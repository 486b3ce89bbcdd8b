package coprime

// GCD returns the greatest common divisor of a and b using Euclid's algorithm.
// Both arguments must be non-negative. GCD(a, 0) is a, and GCD(0, 0) is 0.
func GCD(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Coprime reports whether a and b share no common factor other than 1.
func Coprime(a, b int64) bool {
	return GCD(a, b) == 1
}
