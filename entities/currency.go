// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package entities

import (
	"errors"

	"github.com/luxfi/geth/common"
)

var (
	ErrZeroTokenAddress = errors.New("token address is zero")
	ErrNoWrappedNative  = errors.New("no wrapped native token registered for chain")
)

// Currency identifies either a chain's native asset or an ERC20 token.
// The zero address marks the native asset.
type Currency struct {
	ChainID  uint64
	Address  common.Address
	Decimals uint8
	Symbol   string
}

// Native returns the native asset of the given chain.
func Native(chainID uint64) Currency {
	return Currency{ChainID: chainID, Decimals: 18}
}

// NewToken builds an ERC20 currency. The zero address is reserved for the
// native asset.
func NewToken(chainID uint64, address common.Address, decimals uint8, symbol string) (Currency, error) {
	if address == (common.Address{}) {
		return Currency{}, ErrZeroTokenAddress
	}
	return Currency{ChainID: chainID, Address: address, Decimals: decimals, Symbol: symbol}, nil
}

// IsNative returns true for the chain's native asset.
func (c Currency) IsNative() bool {
	return c.Address == (common.Address{})
}

// Equal reports whether two currencies identify the same asset.
func (c Currency) Equal(o Currency) bool {
	return c.ChainID == o.ChainID && c.Address == o.Address
}

// Wrapped returns the ERC20 form of the currency: the registered wrapped
// native token for native assets, the currency itself otherwise.
func (c Currency) Wrapped() (Currency, error) {
	if !c.IsNative() {
		return c, nil
	}
	return WrappedNative(c.ChainID)
}

// wrappedNative maps chain id to that chain's canonical wrapped native token.
var wrappedNative = map[uint64]Currency{
	1:     {ChainID: 1, Address: common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"), Decimals: 18, Symbol: "WETH"},
	10:    {ChainID: 10, Address: common.HexToAddress("0x4200000000000000000000000000000000000006"), Decimals: 18, Symbol: "WETH"},
	56:    {ChainID: 56, Address: common.HexToAddress("0xbb4CdB9CBd36B01bD1cBaEF60aF814a3f6F0EE75"), Decimals: 18, Symbol: "WBNB"},
	137:   {ChainID: 137, Address: common.HexToAddress("0x0d500B1d8E8eF31E21C99d1Db9A6444d3ADf1270"), Decimals: 18, Symbol: "WMATIC"},
	8453:  {ChainID: 8453, Address: common.HexToAddress("0x4200000000000000000000000000000000000006"), Decimals: 18, Symbol: "WETH"},
	42161: {ChainID: 42161, Address: common.HexToAddress("0x82aF49447D8a07e3bd95BD0d56f35241523fBab1"), Decimals: 18, Symbol: "WETH"},
}

// WrappedNative returns the wrapped native token registered for a chain.
func WrappedNative(chainID uint64) (Currency, error) {
	c, ok := wrappedNative[chainID]
	if !ok {
		return Currency{}, ErrNoWrappedNative
	}
	return c, nil
}

// RegisterWrappedNative adds or replaces a chain's wrapped native token.
// Intended for init-time registration of chains not in the built-in table.
func RegisterWrappedNative(chainID uint64, token Currency) {
	wrappedNative[chainID] = token
}
