package modular

import "strconv"

// Mod is the prime modulus of all residues.
const Mod = 1_000_000_007

// Int is a residue modulo Mod, always normalized to [0, Mod).
//
// The zero value is the residue 0.
type Int struct {
	value int64
}

// New creates the residue of v. Negative values are mapped to their
// non-negative representative.
func New(v int64) Int {
	v %= Mod
	if v < 0 {
		v += Mod
	}
	return Int{value: v}
}

// Value returns the representative of x in [0, Mod).
func (x Int) Value() int64 {
	return x.value
}

func (x Int) String() string {
	return strconv.FormatInt(x.value, 10)
}

// Add returns x+y.
func (x Int) Add(y Int) Int {
	return New(x.value + y.value)
}

// Sub returns x-y.
func (x Int) Sub(y Int) Int {
	return New(x.value - y.value)
}

// Mul returns x·y. Both factors are < Mod < 2^30, so the product fits
// into 63 bits.
func (x Int) Mul(y Int) Int {
	return New(x.value * y.value)
}

// Pow returns x^n by repeated squaring. Negative exponents yield 1.
func (x Int) Pow(n int64) Int {
	result := New(1)
	accum := x
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(accum)
		}
		accum = accum.Mul(accum)
		n >>= 1
	}
	return result
}

// Inv returns the multiplicative inverse x^(Mod-2) of x.
// The inverse of 0 is reported as 0.
func (x Int) Inv() Int {
	return x.Pow(Mod - 2)
}

// Div returns x/y, i.e. x multiplied by the inverse of y.
func (x Int) Div(y Int) Int {
	return x.Mul(y.Inv())
}

// Cmp compares the representatives of x and y and returns -1, 0 or +1.
func (x Int) Cmp(y Int) int {
	switch {
	case x.value < y.value:
		return -1
	case x.value > y.value:
		return 1
	default:
		return 0
	}
}
