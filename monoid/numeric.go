package monoid

import "unsafe"

// Signed is a constraint for signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint for unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is a constraint for all integer types.
type Integer interface {
	Signed | Unsigned
}

// Number is a constraint for types supporting + and *.
type Number interface {
	Integer | ~float32 | ~float64
}

// Bounded is a constraint for totally ordered types with a minimum and a
// maximum representable value.
type Bounded interface {
	Integer
}

// MinValue returns the minimum representable value of T.
func MinValue[T Bounded]() T {
	var zero T
	if ^zero > zero { // unsigned
		return zero
	}
	bits := uint(unsafe.Sizeof(zero)) * 8
	return T(1) << (bits - 1)
}

// MaxValue returns the maximum representable value of T.
func MaxValue[T Bounded]() T {
	return ^MinValue[T]()
}
