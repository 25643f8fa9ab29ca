// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ufixed

import (
	"fmt"

	mu "github.com/avdva/ufixed/internal/mathutil"
)

// Add returns (a + b) mod 2 and a carry, which is 1 if a + b >= 2.
func (v Value) Add(other Value) (sum Value, carry uint) {
	var acc uint64
	for i := 0; i < limbs; i++ {
		acc += uint64(v.w[i]) + uint64(other.w[i])
		sum.w[i], acc = mu.SplitLimb(acc)
	}
	// the top limb holds a single bit, the next one goes out.
	carry = uint(sum.w[topLimb]>>1) & 1
	sum.w[topLimb] &= 1
	return sum, carry
}

// Sub returns (a - b) mod 2 and a borrow, which is 1 if a < b.
func (v Value) Sub(other Value) (diff Value, borrow uint) {
	if v.Lt(other) {
		borrow = 1
	}
	diff, _ = v.Add(other.Neg())
	return diff, borrow
}

// Not returns the bitwise complement of v.
func (v Value) Not() Value {
	var r Value
	for i := 0; i < topLimb; i++ {
		r.w[i] = ^v.w[i] & limbMask
	}
	r.w[topLimb] = ^v.w[topLimb] & 1
	return r
}

// ArithInvert returns the two's complement of v, which is (2 - v) mod 2.
// The carry is 1 only for Zero.
func (v Value) ArithInvert() (Value, uint) {
	return v.Not().Add(Ulp)
}

// Neg returns (2 - v) mod 2.
func (v Value) Neg() Value {
	r, _ := v.ArithInvert()
	return r
}

// Mul returns a * b truncated to 112 fractional bits, and a carry, which is 1 if a * b >= 2.
func (v Value) Mul(other Value) (prod Value, carry uint) {
	// acc[k] accumulates a[i]*b[j] for i+j == k. Each product is less than 2^56,
	// and there are at most five of them per position, so uint64 can't overflow.
	// The product is less than 4, so nothing goes beyond acc[8].
	var acc [2*limbs - 1]uint64
	for i := 0; i < limbs; i++ {
		if v.w[i] == 0 {
			continue
		}
		for j := 0; j < limbs; j++ {
			acc[i+j] += uint64(v.w[i]) * uint64(other.w[j])
		}
	}
	mu.NormalizeLimbs(acc[:])
	// drop the lower 112 bits.
	for i := 0; i < limbs; i++ {
		prod.w[i] = uint32(acc[i+topLimb])
	}
	carry = uint(prod.w[topLimb]>>1) & 1
	prod.w[topLimb] &= 1
	return prod, carry
}

// Div returns a / b truncated to 112 fractional bits.
// The quotient is taken mod 2, so that 1 / 0.5 == 0.
// Returns ErrDivisionByZero if b == 0.
func (v Value) Div(other Value) (Value, error) {
	if other.IsZero() {
		return Zero, fmt.Errorf("%s / 0: %w", v.String(), ErrDivisionByZero)
	}
	a, aShift := v.Align()
	b, bShift := other.Align()
	shiftRight := aShift - bShift

	// restoring division for normalized operands, 1 <= b < 2.
	// when a doubling shifts out the top bit, the remainder is >= 2 > b,
	// and its difference with b fits back into 113 bits.
	var q Value
	var out uint
	for i := 0; i < NumBits; i++ {
		if out == 1 || a.Ge(b) {
			a, _ = a.Sub(b)
			q, _ = q.SingleShiftLeft(1)
		} else {
			q, _ = q.SingleShiftLeft(0)
		}
		a, out = a.SingleShiftLeft(0)
	}

	switch {
	case shiftRight > 0:
		q = q.LogicShiftRight(shiftRight)
	case shiftRight < 0:
		q = q.LogicShiftLeft(mu.AbsInt(shiftRight))
	}
	return q, nil
}

// MustDiv is like Div but panics if b == 0.
func (v Value) MustDiv(other Value) Value {
	q, err := v.Div(other)
	if err != nil {
		panic(err)
	}
	return q
}
