package modular

import "fmt"

// Combination answers binomial coefficient and permutation queries modulo
// Mod in O(1), after an O(n) pre-computation of factorial tables.
type Combination struct {
	fac  []int64 // n!
	inv  []int64 // 1/n
	finv []int64 // 1/n!
}

// NewCombination pre-computes tables for sets of up to size elements.
// size must be < Mod.
func NewCombination(size int) *Combination {
	if size < 1 {
		size = 1
	}
	c := &Combination{
		fac:  make([]int64, size+1),
		inv:  make([]int64, size+1),
		finv: make([]int64, size+1),
	}
	c.fac[0], c.fac[1] = 1, 1
	c.inv[1] = 1
	c.finv[0], c.finv[1] = 1, 1
	for i := int64(2); i <= int64(size); i++ {
		c.fac[i] = c.fac[i-1] * i % Mod
		c.inv[i] = Mod - c.inv[Mod%i]*(Mod/i)%Mod
		c.finv[i] = c.finv[i-1] * c.inv[i] % Mod
	}
	return c
}

// Size returns the largest n supported by the tables.
func (c *Combination) Size() int {
	return len(c.fac) - 1
}

// C returns the binomial coefficient n choose r, or 0 if n < r.
// Panics if n exceeds the table size.
func (c *Combination) C(n, r int) Int {
	c.check(n, r)
	if n < r {
		return Int{}
	}
	return Int{value: c.fac[n] * (c.finv[r] * c.finv[n-r] % Mod) % Mod}
}

// P returns the number of r-permutations of n elements, or 0 if n < r.
// Panics if n exceeds the table size.
func (c *Combination) P(n, r int) Int {
	c.check(n, r)
	if n < r {
		return Int{}
	}
	return Int{value: c.fac[n] * c.finv[n-r] % Mod}
}

// Factorial returns n!.
func (c *Combination) Factorial(n int) Int {
	c.check(n, 0)
	return Int{value: c.fac[n]}
}

func (c *Combination) check(n, r int) {
	if n < 0 || r < 0 || n > c.Size() {
		panic(fmt.Sprintf("modular: combination (%d, %d) exceeds table of size %d", n, r, c.Size()))
	}
}
