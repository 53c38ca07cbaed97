package otp

import (
	"math/rand/v2"
	"strconv"
)

// Generator produces one-time verification codes.
type Generator interface {
	// Generate returns a new code as a decimal string.
	Generate() string
}

// Numeric generates uniform random 6-digit decimal codes.
//
// Codes are sampled from the inclusive range [100000, 999999], so the first
// digit is never zero and the string width is always six.
type Numeric struct{}

// NewNumeric returns a Numeric code generator.
func NewNumeric() *Numeric {
	return &Numeric{}
}

// Generate returns a 6-digit decimal code.
func (*Numeric) Generate() string {
	return strconv.Itoa(100000 + rand.IntN(900000))
}
