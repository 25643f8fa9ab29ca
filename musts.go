package ufixed

import "fmt"

// MustFromFloat64 is like FromFloat64 but panics on error.
func MustFromFloat64(v float64) Value {
	result, err := FromFloat64(v)
	if err != nil {
		panic(fmt.Sprintf("MustFromFloat64(%v) failed: %v", v, err))
	}
	return result
}

// MustFromString is like FromString but panics on error.
func MustFromString(s string) Value {
	result, err := FromString(s)
	if err != nil {
		panic(fmt.Sprintf("MustFromString(%q) failed: %v", s, err))
	}
	return result
}

// MustFromLimbs is like FromLimbs but panics on error.
func MustFromLimbs(w4, w3, w2, w1, w0 uint32) Value {
	result, err := FromLimbs(w4, w3, w2, w1, w0)
	if err != nil {
		panic(fmt.Sprintf("MustFromLimbs failed: %v", err))
	}
	return result
}
