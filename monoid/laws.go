package monoid

import "fmt"

// CheckLaws checks the identity and associativity laws of m for all
// combinations of sample values. eq decides equality of values of T.
//
// CheckLaws is intended for tests of monoid implementations. It returns an
// error wrapping ErrLawViolated for the first violation found.
func CheckLaws[T any](m Monoid[T], samples []T, eq func(a, b T) bool) error {
	zero := m.Zero()
	for _, x := range samples {
		if !eq(m.Add(zero, x), x) {
			return fmt.Errorf("%w: left identity for %v", ErrLawViolated, x)
		}
		if !eq(m.Add(x, zero), x) {
			return fmt.Errorf("%w: right identity for %v", ErrLawViolated, x)
		}
	}
	for _, a := range samples {
		for _, b := range samples {
			for _, c := range samples {
				l := m.Add(m.Add(a, b), c)
				r := m.Add(a, m.Add(b, c))
				if !eq(l, r) {
					return fmt.Errorf("%w: associativity for (%v, %v, %v): %v != %v",
						ErrLawViolated, a, b, c, l, r)
				}
			}
		}
	}
	return nil
}

// Equal is an equality function for comparable types, suitable for CheckLaws.
func Equal[T comparable](a, b T) bool {
	return a == b
}
