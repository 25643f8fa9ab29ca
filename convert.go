// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ufixed

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"

	mu "github.com/avdva/ufixed/internal/mathutil"
)

var (
	two = decimal.New(2, 0)
	// 2^-112 == 5^112 * 10^-112, so every value has an exact decimal form.
	ulpDecimalCoef = mu.Pow5(fracBits)
	// raw integers must stay below 2^113.
	rawLimit = mu.Pow2(NumBits)
)

// float64 significand width, including the implicit bit.
const float64Bits = 53

// FromFloat64 returns a value for given float64 in the range [0, 2).
// The binary expansion of v is truncated to 112 fractional bits.
// Returns ErrOverflow for negative values, values >= 2, and not-a-numbers.
func FromFloat64(v float64) (Value, error) {
	if math.IsNaN(v) || v < 0 || v >= 2 {
		return Zero, fmt.Errorf("float %v: %w", v, ErrOverflow)
	}
	var result Value
	var bit uint32
	for i := 0; i < NumBits; i++ {
		bit, v = mu.FracBit(v)
		result, _ = result.SingleShiftLeft(uint(bit))
	}
	return result, nil
}

// Float64 returns v as a float64.
// Bits beyond the 53-bit significand are truncated, so the result is
// rounded toward zero and stays below 2.
func (v Value) Float64() float64 {
	x := v.Big()
	shift := x.BitLen() - float64Bits
	if shift < 0 {
		shift = 0
	}
	x.Rsh(x, uint(shift))
	return math.Ldexp(float64(x.Uint64()), shift-fracBits)
}

// Big returns the raw integer v * 2^112.
func (v Value) Big() *big.Int {
	return new(big.Int).SetBytes(v.Bytes())
}

// FromBig returns a value for the raw integer x, so that the result is x / 2^112.
// Returns ErrOverflow if x is negative or does not fit 113 bits.
func FromBig(x *big.Int) (Value, error) {
	if x.Sign() < 0 || x.Cmp(rawLimit) >= 0 {
		return Zero, fmt.Errorf("integer %s: %w", x.String(), ErrOverflow)
	}
	var buf [byteLen]byte
	return FromBytes(x.FillBytes(buf[:]))
}

// Decimal returns an exact decimal representation of v.
func (v Value) Decimal() decimal.Decimal {
	coef := v.Big()
	return decimal.NewFromBigInt(coef.Mul(coef, ulpDecimalCoef), -fracBits)
}

// FromDecimal returns a value for d, truncating the digits below 2^-112.
// Returns ErrOverflow if d is outside [0, 2).
func FromDecimal(d decimal.Decimal) (Value, error) {
	if d.Sign() < 0 || d.Cmp(two) >= 0 {
		return Zero, fmt.Errorf("decimal %s: %w", d.String(), ErrOverflow)
	}
	return FromBig(mu.ScaleDecimal(d.Coefficient(), d.Exponent(), fracBits))
}

// FromString parses a decimal number in [0, 2), like "1.25" or "3e-1".
func FromString(s string) (Value, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, fmt.Errorf("parsing failed: %v: %w", err, ErrInvalidArgument)
	}
	return FromDecimal(d)
}

// MarshalJSON marshals v as a string with its exact decimal value, like `"1.25"`.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Decimal().String())
}

// UnmarshalJSON unmarshals a string or a number into a value.
// A json null leaves v unchanged.
func (v *Value) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty json")
	}
	s := string(data)
	if s == "null" {
		return nil
	}
	if data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	}
	value, err := FromString(s)
	if err != nil {
		return err
	}
	*v = value
	return nil
}
