// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package entities

import (
	"errors"
	"math/big"

	"github.com/holiman/uint256"
)

var (
	ErrNegativeAmount   = errors.New("currency amount is negative")
	ErrAmountOverflow   = errors.New("currency amount exceeds uint256")
	ErrAmountUnderflow  = errors.New("currency amount subtraction underflows")
	ErrCurrencyMismatch = errors.New("currency amounts have different currencies")
)

// CurrencyAmount pairs a currency with a non-negative integer magnitude in
// the currency's base units. Amounts must fit a uint256 so they can always
// be ABI-encoded.
type CurrencyAmount struct {
	Currency Currency
	raw      *big.Int
}

// NewCurrencyAmount validates and builds an amount, copying raw.
func NewCurrencyAmount(currency Currency, raw *big.Int) (CurrencyAmount, error) {
	if raw.Sign() < 0 {
		return CurrencyAmount{}, ErrNegativeAmount
	}
	if _, overflow := uint256.FromBig(raw); overflow {
		return CurrencyAmount{}, ErrAmountOverflow
	}
	return CurrencyAmount{Currency: currency, raw: new(big.Int).Set(raw)}, nil
}

// Raw returns a copy of the magnitude.
func (a CurrencyAmount) Raw() *big.Int {
	if a.raw == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(a.raw)
}

// Add returns a + o. Both amounts must share a currency.
func (a CurrencyAmount) Add(o CurrencyAmount) (CurrencyAmount, error) {
	if !a.Currency.Equal(o.Currency) {
		return CurrencyAmount{}, ErrCurrencyMismatch
	}
	return NewCurrencyAmount(a.Currency, new(big.Int).Add(a.raw, o.raw))
}

// Sub returns a - o, failing with ErrAmountUnderflow when o exceeds a.
func (a CurrencyAmount) Sub(o CurrencyAmount) (CurrencyAmount, error) {
	if !a.Currency.Equal(o.Currency) {
		return CurrencyAmount{}, ErrCurrencyMismatch
	}
	diff := new(big.Int).Sub(a.raw, o.raw)
	if diff.Sign() < 0 {
		return CurrencyAmount{}, ErrAmountUnderflow
	}
	return NewCurrencyAmount(a.Currency, diff)
}

// Cmp compares magnitudes, ignoring currency.
func (a CurrencyAmount) Cmp(o CurrencyAmount) int {
	return a.raw.Cmp(o.raw)
}

// Wrapped returns the same magnitude denominated in the wrapped currency.
func (a CurrencyAmount) Wrapped() (CurrencyAmount, error) {
	wrapped, err := a.Currency.Wrapped()
	if err != nil {
		return CurrencyAmount{}, err
	}
	return CurrencyAmount{Currency: wrapped, raw: a.raw}, nil
}
