// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package entities holds the value types the swap compiler computes over:
// currencies, exact-rational fractions, and non-negative currency amounts.
// Every type is immutable; arithmetic returns new values.
package entities

import (
	"math/big"
)

// Fraction is an exact rational number. The denominator is kept positive;
// constructors normalize the sign onto the numerator.
type Fraction struct {
	Num *big.Int
	Den *big.Int
}

// Percent is a fraction used for slippage tolerances and price-impact
// thresholds. 1/100 means 1%.
type Percent = Fraction

// NewFraction builds a fraction from int64 parts. den must be non-zero.
func NewFraction(num, den int64) Fraction {
	return NewFractionFromBig(big.NewInt(num), big.NewInt(den))
}

// NewFractionFromBig builds a fraction from big integer parts, copying both.
// A zero denominator yields the zero fraction; callers that care validate
// with Valid before use.
func NewFractionFromBig(num, den *big.Int) Fraction {
	f := Fraction{Num: new(big.Int).Set(num), Den: new(big.Int).Set(den)}
	if f.Den.Sign() < 0 {
		f.Num.Neg(f.Num)
		f.Den.Neg(f.Den)
	}
	return f
}

// NewPercent builds a percent tolerance, e.g. NewPercent(5, 1000) for 0.5%.
func NewPercent(num, den int64) Percent {
	return NewFraction(num, den)
}

// Valid reports whether the fraction has a usable positive denominator.
func (f Fraction) Valid() bool {
	return f.Num != nil && f.Den != nil && f.Den.Sign() > 0
}

// Add returns f + o.
func (f Fraction) Add(o Fraction) Fraction {
	if f.Den.Cmp(o.Den) == 0 {
		return NewFractionFromBig(new(big.Int).Add(f.Num, o.Num), f.Den)
	}
	num := new(big.Int).Mul(f.Num, o.Den)
	num.Add(num, new(big.Int).Mul(o.Num, f.Den))
	return NewFractionFromBig(num, new(big.Int).Mul(f.Den, o.Den))
}

// Sub returns f - o.
func (f Fraction) Sub(o Fraction) Fraction {
	if f.Den.Cmp(o.Den) == 0 {
		return NewFractionFromBig(new(big.Int).Sub(f.Num, o.Num), f.Den)
	}
	num := new(big.Int).Mul(f.Num, o.Den)
	num.Sub(num, new(big.Int).Mul(o.Num, f.Den))
	return NewFractionFromBig(num, new(big.Int).Mul(f.Den, o.Den))
}

// Mul returns f * o.
func (f Fraction) Mul(o Fraction) Fraction {
	return NewFractionFromBig(
		new(big.Int).Mul(f.Num, o.Num),
		new(big.Int).Mul(f.Den, o.Den),
	)
}

// Invert returns 1/f. Inverting a zero fraction returns an invalid fraction.
func (f Fraction) Invert() Fraction {
	return NewFractionFromBig(f.Den, f.Num)
}

// Quotient returns floor(Num / Den) as a fresh integer.
func (f Fraction) Quotient() *big.Int {
	q := new(big.Int)
	m := new(big.Int)
	q.DivMod(f.Num, f.Den, m)
	return q
}

// Cmp compares f against o. Denominators are positive by construction, so a
// cross-multiply preserves ordering.
func (f Fraction) Cmp(o Fraction) int {
	left := new(big.Int).Mul(f.Num, o.Den)
	right := new(big.Int).Mul(o.Num, f.Den)
	return left.Cmp(right)
}

// GreaterThan reports f > o.
func (f Fraction) GreaterThan(o Fraction) bool {
	return f.Cmp(o) > 0
}

// LessThan reports f < o.
func (f Fraction) LessThan(o Fraction) bool {
	return f.Cmp(o) < 0
}
