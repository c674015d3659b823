package modular

// SumMonoid adds residues. Its neutral element is 0.
// SumMonoid implements monoid.Monoid[Int].
type SumMonoid struct{}

// Zero returns the residue 0.
func (SumMonoid) Zero() Int { return Int{} }

// Add returns left+right.
func (SumMonoid) Add(left, right Int) Int { return left.Add(right) }

// ProductMonoid multiplies residues. Its neutral element is 1.
// ProductMonoid implements monoid.Monoid[Int].
type ProductMonoid struct{}

// Zero returns the residue 1.
func (ProductMonoid) Zero() Int { return Int{value: 1} }

// Add returns left·right.
func (ProductMonoid) Add(left, right Int) Int { return left.Mul(right) }
