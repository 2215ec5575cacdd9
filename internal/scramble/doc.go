// Package scramble maps monotonically increasing indices onto decimal
// identifiers that look pseudo-random while keeping roughly the same number
// of digits as the index.
//
// The mapping concatenates nine cyclic permutations, each generated by
// raising a primitive root to the index modulo a prime. Segments cover
// increasing decimal ranges, so a small counter yields a small-looking
// identifier without exposing the allocation order. The mapping is not
// reversible by design of this package and carries no cryptographic
// strength: the table is a public constant.
package scramble
