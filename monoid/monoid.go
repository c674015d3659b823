package monoid

// Monoid defines how values of type T are aggregated.
//
// For values s, t, u, Add must be associative:
//
//	Add(Add(s, t), u) == Add(s, Add(t, u))
//
// and Zero must be the neutral element:
//
//	Add(Zero(), s) == s == Add(s, Zero())
//
// Implementations must be total and must not have side effects. The laws
// are a contract for implementers; they are not checked at runtime (see
// CheckLaws for a test helper).
type Monoid[T any] interface {
	Zero() T
	Add(left, right T) T
}

// Fold combines values from left to right, starting with the neutral element.
// Fold of an empty list of values is m.Zero().
func Fold[T any](m Monoid[T], values ...T) T {
	acc := m.Zero()
	for _, v := range values {
		acc = m.Add(acc, v)
	}
	return acc
}

// --- Ad-hoc monoids --------------------------------------------------------

// Func is a monoid assembled from a neutral element and a combining function.
// It lets clients use closures where declaring a type would be overkill.
type Func[T any] struct {
	Identity T
	Combine  func(left, right T) T
}

// Of creates a monoid from a neutral element and an associative function.
func Of[T any](zero T, add func(left, right T) T) Func[T] {
	return Func[T]{Identity: zero, Combine: add}
}

// Zero returns the neutral element.
func (f Func[T]) Zero() T {
	return f.Identity
}

// Add combines two values using the client function.
func (f Func[T]) Add(left, right T) T {
	return f.Combine(left, right)
}

// --- Numeric monoids -------------------------------------------------------

// Max selects the larger of two values. Its neutral element is the minimum
// representable value of T.
type Max[T Bounded] struct{}

// Zero returns the minimum value of T.
func (Max[T]) Zero() T { return MinValue[T]() }

// Add returns the larger of two values.
func (Max[T]) Add(left, right T) T {
	if right > left {
		return right
	}
	return left
}

// Min selects the smaller of two values. Its neutral element is the maximum
// representable value of T.
type Min[T Bounded] struct{}

// Zero returns the maximum value of T.
func (Min[T]) Zero() T { return MaxValue[T]() }

// Add returns the smaller of two values.
func (Min[T]) Add(left, right T) T {
	if right < left {
		return right
	}
	return left
}

// Sum adds numbers. Overflow wraps around as usual for Go integers, which
// keeps Sum associative for integer types. For floating point types,
// associativity holds only up to rounding.
type Sum[T Number] struct{}

// Zero returns 0.
func (Sum[T]) Zero() T { return 0 }

// Add returns left+right.
func (Sum[T]) Add(left, right T) T { return left + right }

// Product multiplies numbers.
type Product[T Number] struct{}

// Zero returns 1, the neutral element of multiplication.
func (Product[T]) Zero() T { return 1 }

// Add returns left*right.
func (Product[T]) Add(left, right T) T { return left * right }

// GCD computes greatest common divisors. 0 is the neutral element, as
// gcd(0, x) == x for every unsigned x.
type GCD[T Unsigned] struct{}

// Zero returns 0.
func (GCD[T]) Zero() T { return 0 }

// Add returns the greatest common divisor of left and right.
func (GCD[T]) Add(left, right T) T {
	for right != 0 {
		left, right = right, left%right
	}
	return left
}
