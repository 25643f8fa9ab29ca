package mathutil

import (
	"math"
	"math/big"
	"unsafe"
)

const (
	// LimbBits is the width of a full limb.
	LimbBits = 28
	// LimbMask keeps the low LimbBits bits.
	LimbMask = 1<<LimbBits - 1
)

var (
	bigFive = big.NewInt(5)
	bigTen  = big.NewInt(10)
)

// SplitLimb returns the low LimbBits bits of acc and the remaining carry.
func SplitLimb(acc uint64) (limb uint32, carry uint64) {
	return uint32(acc & LimbMask), acc >> LimbBits
}

// NormalizeLimbs propagates carries through acc in base 2^28, from acc[0] upward.
// Every element is left below 2^28, the carry out of the last element is returned.
func NormalizeLimbs(acc []uint64) (carry uint64) {
	for i := range acc {
		acc[i] += carry
		carry = acc[i] >> LimbBits
		acc[i] &= LimbMask
	}
	return carry
}

// FracBit extracts the integer part of f, which must be in [0, 2),
// and returns it with the doubled remaining fraction.
func FracBit(f float64) (bit uint32, rest float64) {
	integ := math.Floor(f)
	return uint32(integ), (f - integ) * 2
}

// Pow2 returns 2^n as a big integer.
func Pow2(n uint) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), n)
}

// Pow5 returns 5^n as a big integer.
func Pow5(n int64) *big.Int {
	return new(big.Int).Exp(bigFive, big.NewInt(n), nil)
}

// Pow10 returns 10^n as a big integer.
func Pow10(n int64) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(n), nil)
}

// ScaleDecimal returns floor(coef * 2^shift * 10^exp) for a non-negative coef.
func ScaleDecimal(coef *big.Int, exp int32, shift uint) *big.Int {
	n := new(big.Int).Lsh(coef, shift)
	if exp >= 0 {
		return n.Mul(n, Pow10(int64(exp)))
	}
	return n.Quo(n, Pow10(int64(-exp)))
}

func AbsInt(val int) int {
	mask := val >> (unsafe.Sizeof(int(0))*8 - 1)
	return (val + mask) ^ mask
}
