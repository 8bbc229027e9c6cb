// Package prime provides the small primality helpers used to size bucket
// arrays. Trial division is plenty here: inputs are table sizes, not
// cryptographic moduli.
package prime

import "math"

// Primality is the result of a primality test.
type Primality int

const (
	// Undefined means primality is not defined for the input (x < 2).
	Undefined Primality = iota
	// Composite means the input has a nontrivial divisor.
	Composite
	// Prime means the input is prime.
	Prime
)

// IsPrime reports the primality of x by trial division.
func IsPrime(x int) Primality {
	if x < 2 {
		return Undefined
	}
	if x < 4 {
		return Prime
	}
	if x%2 == 0 {
		return Composite
	}
	limit := int(math.Sqrt(float64(x)))
	for i := 3; i <= limit; i += 2 {
		if x%i == 0 {
			return Composite
		}
	}
	return Prime
}

// NextPrime returns the smallest prime >= x.
func NextPrime(x int) int {
	for IsPrime(x) != Prime {
		x++
	}
	return x
}
