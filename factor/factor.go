/*
Package factor computes prime factorizations of unsigned integers by trial
division.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package factor

import (
	"fmt"
	"sort"
	"strings"
)

// Factors maps prime factors to their multiplicity.
type Factors map[uint64]int

// Factorize returns the prime factorization of n in O(√n).
// Factorizations of 0 and 1 are empty.
func Factorize(n uint64) Factors {
	result := make(Factors)
	if n < 2 {
		return result
	}
	for i := uint64(2); i <= n/i; i++ {
		for n%i == 0 {
			n /= i
			result[i]++
		}
	}
	if n > 1 {
		result[n]++
	}
	return result
}

// IsPrime reports whether n is prime.
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	for i := uint64(2); i <= n/i; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// Primes returns the prime factors in ascending order.
func (f Factors) Primes() []uint64 {
	primes := make([]uint64, 0, len(f))
	for p := range f {
		primes = append(primes, p)
	}
	sort.Slice(primes, func(i, j int) bool { return primes[i] < primes[j] })
	return primes
}

// Expand multiplies out the factorization. The empty factorization expands
// to 1.
func (f Factors) Expand() uint64 {
	n := uint64(1)
	for p, e := range f {
		for ; e > 0; e-- {
			n *= p
		}
	}
	return n
}

// String formats the factorization as "2^2 * 3^2", primes ascending.
func (f Factors) String() string {
	terms := make([]string, 0, len(f))
	for _, p := range f.Primes() {
		if f[p] == 1 {
			terms = append(terms, fmt.Sprintf("%d", p))
		} else {
			terms = append(terms, fmt.Sprintf("%d^%d", p, f[p]))
		}
	}
	return strings.Join(terms, " * ")
}
