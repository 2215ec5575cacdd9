package scramble

import "math/big"

// Exponentiator computes base^exponent mod modulus. Implementations must be
// safe for concurrent use and must not overflow on intermediate products,
// which approach 10^19 for the largest segments.
type Exponentiator interface {
	ModPow(base, exponent, modulus int64) int64
}

// BigExponentiator implements Exponentiator on math/big, which keeps
// intermediate products exact regardless of the machine word size.
type BigExponentiator struct{}

// ModPow returns base^exponent mod modulus.
func (BigExponentiator) ModPow(base, exponent, modulus int64) int64 {
	result := new(big.Int).Exp(big.NewInt(base), big.NewInt(exponent), big.NewInt(modulus))
	return result.Int64()
}
