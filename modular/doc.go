/*
Package modular provides arithmetic on residues modulo the prime 1e9+7 and
combinatorics tables built on top of it.

Division uses multiplicative inverses, which exist for every non-zero
residue because the modulus is prime (Fermat's little theorem).

Sums and products of residues form monoids (see package monoid) and may
therefore be aggregated in segment trees.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package modular
