// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package entities

import (
	"errors"
	"math/big"
	"testing"

	"github.com/luxfi/geth/common"
	"github.com/stretchr/testify/require"
)

func testToken(t *testing.T, addr string) Currency {
	t.Helper()
	token, err := NewToken(1, common.HexToAddress(addr), 18, "TKN")
	require.NoError(t, err)
	return token
}

func TestNewCurrencyAmountValidation(t *testing.T) {
	token := testToken(t, "0x1111111111111111111111111111111111111111")

	_, err := NewCurrencyAmount(token, big.NewInt(-1))
	require.ErrorIs(t, err, ErrNegativeAmount)

	tooBig := new(big.Int).Lsh(big.NewInt(1), 256)
	_, err = NewCurrencyAmount(token, tooBig)
	require.ErrorIs(t, err, ErrAmountOverflow)

	max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	a, err := NewCurrencyAmount(token, max)
	require.NoError(t, err)
	require.Equal(t, 0, a.Raw().Cmp(max))
}

func TestCurrencyAmountImmutable(t *testing.T) {
	token := testToken(t, "0x1111111111111111111111111111111111111111")
	raw := big.NewInt(100)
	a, err := NewCurrencyAmount(token, raw)
	require.NoError(t, err)

	raw.SetInt64(999)
	require.Equal(t, int64(100), a.Raw().Int64())

	a.Raw().SetInt64(5)
	require.Equal(t, int64(100), a.Raw().Int64())
}

func TestCurrencyAmountArithmetic(t *testing.T) {
	token := testToken(t, "0x1111111111111111111111111111111111111111")
	other := testToken(t, "0x2222222222222222222222222222222222222222")

	a, _ := NewCurrencyAmount(token, big.NewInt(70))
	b, _ := NewCurrencyAmount(token, big.NewInt(30))
	c, _ := NewCurrencyAmount(other, big.NewInt(30))

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, int64(100), sum.Raw().Int64())

	diff, err := a.Sub(b)
	require.NoError(t, err)
	require.Equal(t, int64(40), diff.Raw().Int64())

	_, err = b.Sub(a)
	require.ErrorIs(t, err, ErrAmountUnderflow)

	_, err = a.Add(c)
	require.ErrorIs(t, err, ErrCurrencyMismatch)
}

func TestCurrencyWrapped(t *testing.T) {
	native := Native(1)
	wrapped, err := native.Wrapped()
	require.NoError(t, err)
	require.False(t, wrapped.IsNative())
	require.Equal(t, common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"), wrapped.Address)

	token := testToken(t, "0x1111111111111111111111111111111111111111")
	same, err := token.Wrapped()
	require.NoError(t, err)
	require.True(t, same.Equal(token))

	_, err = Native(999999).Wrapped()
	require.True(t, errors.Is(err, ErrNoWrappedNative))
}

func TestRegisterWrappedNative(t *testing.T) {
	wlux, err := NewToken(96369, common.HexToAddress("0x3333333333333333333333333333333333333333"), 18, "WLUX")
	require.NoError(t, err)
	RegisterWrappedNative(96369, wlux)

	wrapped, err := Native(96369).Wrapped()
	require.NoError(t, err)
	require.True(t, wrapped.Equal(wlux))
}

func TestNewTokenRejectsZeroAddress(t *testing.T) {
	_, err := NewToken(1, common.Address{}, 18, "BAD")
	require.ErrorIs(t, err, ErrZeroTokenAddress)
}
