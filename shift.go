package ufixed

import "fmt"

// SingleShiftLeft shifts v left by one bit. carryIn (0 or 1) becomes the lowest bit.
// The integer bit shifted out of the value is returned as carryOut.
func (v Value) SingleShiftLeft(carryIn uint) (r Value, carryOut uint) {
	carry := uint32(carryIn & 1)
	for i := 0; i < topLimb; i++ {
		r.w[i] = (v.w[i]<<1)&limbMask | carry
		carry = v.w[i] >> (limbBits - 1) & 1
	}
	r.w[topLimb] = carry
	return r, uint(v.w[topLimb] & 1)
}

// SingleShiftRight shifts v right by one bit. carryIn (0 or 1) becomes the integer bit.
// The lowest bit shifted out of the value is returned as carryOut.
func (v Value) SingleShiftRight(carryIn uint) (r Value, carryOut uint) {
	r.w[topLimb] = uint32(carryIn & 1)
	for i := topLimb - 1; i >= 0; i-- {
		r.w[i] = (v.w[i+1]&1)<<(limbBits-1) | v.w[i]>>1
	}
	return r, uint(v.w[0] & 1)
}

// LogicShiftLeft returns v << n, the bits shifted out of the integer bit are lost.
// It panics if n <= 0.
func (v Value) LogicShiftLeft(n int) Value {
	if n <= 0 {
		panic(fmt.Errorf("left shift by %d: %w", n, ErrInvalidArgument))
	}
	if n >= NumBits {
		return Zero
	}
	for i := 0; i < n; i++ {
		v, _ = v.SingleShiftLeft(0)
	}
	return v
}

// LogicShiftRight returns v >> n, filling the integer bit with zeros.
// It panics if n < 0.
func (v Value) LogicShiftRight(n int) Value {
	if n < 0 {
		panic(fmt.Errorf("right shift by %d: %w", n, ErrInvalidArgument))
	}
	return v.shiftRight(n, 0)
}

// ArithShiftRight returns v >> n, replicating the integer bit of v.
// It panics if n < 0.
func (v Value) ArithShiftRight(n int) Value {
	if n < 0 {
		panic(fmt.Errorf("arithmetic right shift by %d: %w", n, ErrInvalidArgument))
	}
	return v.shiftRight(n, v.Msb())
}

func (v Value) shiftRight(n int, carryIn uint) Value {
	// after NumBits iterations every bit equals carryIn.
	if n > NumBits {
		n = NumBits
	}
	for i := 0; i < n; i++ {
		v, _ = v.SingleShiftRight(carryIn)
	}
	return v
}

// TruncateRight clears the lowest n bits of v.
// It panics if n < 0.
func (v Value) TruncateRight(n int) Value {
	if n < 0 {
		panic(fmt.Errorf("truncate %d bits: %w", n, ErrInvalidArgument))
	}
	if n >= NumBits {
		return Zero
	}
	blocks, bits := n/limbBits, n%limbBits
	for i := 0; i < blocks; i++ {
		v.w[i] = 0
	}
	v.w[blocks] &^= 1<<uint(bits) - 1
	return v
}

// Align shifts v left until its integer bit is 1, and returns the number of shifts.
// Zero is returned as is with a zero shift.
func (v Value) Align() (aligned Value, shift int) {
	if v.IsZero() {
		return v, 0
	}
	for v.Msb() == 0 {
		v, _ = v.SingleShiftLeft(0)
		shift++
	}
	return v, shift
}
