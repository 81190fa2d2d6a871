package ast

import (
	"math"
	"math/big"
)

type BigNumKind int

const (
	BigNumInt BigNumKind = iota
	BigNumFloat
)

// BigNum is the value of a number literal. Integers keep their magnitude in
// Int and their sign in Negative; floats keep the value in Float.
type BigNum struct {
	Kind     BigNumKind
	Negative bool
	Int      *big.Int
	Float    float64
}

func NewInt(v int64) *BigNum {
	mag := new(big.Int).SetInt64(v)
	return &BigNum{Kind: BigNumInt, Negative: v < 0, Int: mag.Abs(mag)}
}

// NewUint builds an integer from a magnitude and sign. The magnitude is
// copied and must not be negative.
func NewUint(magnitude *big.Int, negative bool) *BigNum {
	return &BigNum{Kind: BigNumInt, Negative: negative, Int: new(big.Int).Set(magnitude)}
}

func NewFloat(v float64) *BigNum {
	return &BigNum{Kind: BigNumFloat, Negative: math.Signbit(v), Float: v}
}
