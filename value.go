// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package ufixed implements an unsigned fixed-point number in Q1.112 format.
// The value has a single integer bit and 112 fractional bits, so it
// covers [0, 2) with a resolution of 2^-112.
// It is used as an extended-precision mantissa, which gives more significant
// digits than a float64.
package ufixed

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"

	mu "github.com/avdva/ufixed/internal/mathutil"
)

const (
	// NumBits is the total width of a value.
	NumBits = 113

	limbs     = 5
	limbBits  = mu.LimbBits
	limbMask  = mu.LimbMask
	fracBits  = NumBits - 1
	byteLen   = (NumBits + 7) / 8
	topLimb   = limbs - 1
	hiByteBit = NumBits - 8*(byteLen-1) // bits used in the first byte of the encoding
)

var (
	// ErrInvalidArgument is returned for malformed limbs, encodings, or shift counts.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOverflow is returned when a number can't be represented in [0, 2).
	ErrOverflow = errors.New("value out of range")
	// ErrDivisionByZero is returned by Div for a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")
)

var (
	// Zero is 0.0.
	Zero = Value{}
	// One is 1.0.
	One = Value{w: [limbs]uint32{0, 0, 0, 0, 1}}
	// Ulp is the smallest positive value, 2^-112.
	Ulp = Value{w: [limbs]uint32{1, 0, 0, 0, 0}}
	// Max is the largest value, 2 - 2^-112.
	Max = Value{w: [limbs]uint32{limbMask, limbMask, limbMask, limbMask, 1}}
)

// Value is an unsigned fixed-point number.
// It is stored as five limbs, w[0] is the least significant one:
//
//	w[4]  w[3]     w[2]     w[1]     w[0]
//	i     fffffff  fffffff  fffffff  fffffff
//	1 bit 28 bits  28 bits  28 bits  28 bits
//
// The represented number is (w4*2^112 + w3*2^84 + w2*2^56 + w1*2^28 + w0) / 2^112.
// Values are comparable, so == is an exact structural equality.
type Value struct {
	w [limbs]uint32
}

func fromLimbs(w4, w3, w2, w1, w0 uint32) Value {
	return Value{w: [limbs]uint32{w0, w1, w2, w3, w4}}
}

func validLimbs(w [limbs]uint32) bool {
	for i := 0; i < topLimb; i++ {
		if w[i] > limbMask {
			return false
		}
	}
	return w[topLimb] <= 1
}

// FromLimbs returns a value for given limbs, the most significant one first.
// w3..w0 must be less than 2^28, and w4 must be 0 or 1.
func FromLimbs(w4, w3, w2, w1, w0 uint32) (Value, error) {
	v := fromLimbs(w4, w3, w2, w1, w0)
	if !validLimbs(v.w) {
		return Zero, fmt.Errorf("limbs %s: %w", v.String(), ErrInvalidArgument)
	}
	return v, nil
}

// FromSlice returns a value for five limbs starting at a[offset],
// where a[offset] is the least significant one.
func FromSlice(a []uint32, offset int) (Value, error) {
	if offset < 0 || len(a)-offset < limbs {
		return Zero, fmt.Errorf("need %d limbs at offset %d, slice has %d elements: %w",
			limbs, offset, len(a), ErrInvalidArgument)
	}
	var v Value
	copy(v.w[:], a[offset:offset+limbs])
	if !validLimbs(v.w) {
		return Zero, fmt.Errorf("limbs %s: %w", v.String(), ErrInvalidArgument)
	}
	return v, nil
}

// FromInt returns Zero for 0 and One for 1.
// Any other integer is out of range.
func FromInt(i int) (Value, error) {
	switch i {
	case 0:
		return Zero, nil
	case 1:
		return One, nil
	default:
		return Zero, fmt.Errorf("integer %d: %w", i, ErrOverflow)
	}
}

// FromBytes decodes the 15-byte big-endian encoding produced by Bytes.
func FromBytes(b []byte) (Value, error) {
	if len(b) != byteLen {
		return Zero, fmt.Errorf("need %d bytes, got %d: %w", byteLen, len(b), ErrInvalidArgument)
	}
	if b[0]>>hiByteBit != 0 {
		return Zero, fmt.Errorf("bits above %d are set: %w", NumBits, ErrInvalidArgument)
	}
	var buf [16]byte
	copy(buf[16-byteLen:], b)
	hi := binary.BigEndian.Uint64(buf[:8])
	lo := binary.BigEndian.Uint64(buf[8:])
	return fromHiLo(hi, lo), nil
}

// fromHiLo splits a 113-bit integer given as hi:lo into limbs.
func fromHiLo(hi, lo uint64) Value {
	return fromLimbs(
		uint32(hi>>48)&1,
		uint32(hi>>20)&limbMask,
		uint32(lo>>56|hi<<8)&limbMask,
		uint32(lo>>28)&limbMask,
		uint32(lo)&limbMask,
	)
}

func (v Value) hiLo() (hi, lo uint64) {
	lo = uint64(v.w[0]) | uint64(v.w[1])<<28 | uint64(v.w[2])<<56
	hi = uint64(v.w[2])>>8 | uint64(v.w[3])<<20 | uint64(v.w[4])<<48
	return hi, lo
}

// Bytes returns the 15-byte big-endian encoding of the raw 113-bit integer.
func (v Value) Bytes() []byte {
	var buf [16]byte
	hi, lo := v.hiLo()
	binary.BigEndian.PutUint64(buf[:8], hi)
	binary.BigEndian.PutUint64(buf[8:], lo)
	return buf[16-byteLen:]
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (v Value) MarshalBinary() ([]byte, error) {
	return v.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (v *Value) UnmarshalBinary(data []byte) error {
	value, err := FromBytes(data)
	if err != nil {
		return err
	}
	*v = value
	return nil
}

// Limbs returns the limbs, the least significant first.
func (v Value) Limbs() [5]uint32 {
	return v.w
}

// Msb returns the integer bit, which is 1 if v >= 1.
func (v Value) Msb() uint {
	return uint(v.w[topLimb])
}

// Lower64Bits returns w0, w1 and the low 8 bits of w2 packed into a uint64.
func (v Value) Lower64Bits() uint64 {
	_, lo := v.hiLo()
	return lo
}

// IsZero returns true if v == 0.
func (v Value) IsZero() bool {
	return v == Zero
}

// Eq returns true, if both values are equal.
func (v Value) Eq(other Value) bool {
	return v == other
}

// Cmp compares two values, the most significant limb first.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func (v Value) Cmp(other Value) int {
	for i := topLimb; i >= 0; i-- {
		if v.w[i] != other.w[i] {
			if v.w[i] > other.w[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// Gt returns a > b.
func (v Value) Gt(other Value) bool {
	return v.Cmp(other) > 0
}

// Ge returns a >= b.
func (v Value) Ge(other Value) bool {
	return v.Gt(other) || v == other
}

// Lt returns a < b.
func (v Value) Lt(other Value) bool {
	return other.Gt(v)
}

// Le returns a <= b.
func (v Value) Le(other Value) bool {
	return v.Lt(other) || v == other
}

// Hash returns a hash of the value. Equal values have equal hashes.
func (v Value) Hash() uint64 {
	return xxhash.Sum64(v.Bytes())
}

// String returns a hex dump of limbs: w4, then w3..w0 padded to 7 digits.
// It is intended for debugging, see Decimal for a numeric representation.
func (v Value) String() string {
	return fmt.Sprintf("%x %07x %07x %07x %07x", v.w[4], v.w[3], v.w[2], v.w[1], v.w[0])
}

// GoString returns debug string representation.
func (v Value) GoString() string {
	return fmt.Sprintf("ufixed.Value{%s} %s", v.String(), v.Decimal().String())
}
