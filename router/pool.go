// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package router

import (
	"encoding/binary"

	"github.com/luxfi/routersdk/entities"
	"github.com/zeebo/blake3"
)

// Pool fee tiers (hundredths of a bip).
const (
	Fee001 uint32 = 100
	Fee005 uint32 = 500
	Fee030 uint32 = 3000
	Fee100 uint32 = 10000
)

// Pool is one hop a route traverses: a V2 pair or a V3 fee-tiered pool.
// Tokens are always the wrapped (ERC20) representation and are kept sorted
// by address.
type Pool struct {
	Protocol Protocol
	Token0   entities.Currency
	Token1   entities.Currency
	// Fee is the pool fee in hundredths of a bip. V3 only; zero for pairs.
	Fee uint32
}

// NewPair builds a V2 pair over two tokens, sorting them by address.
func NewPair(tokenA, tokenB entities.Currency) (*Pool, error) {
	t0, t1, err := sortTokens(tokenA, tokenB)
	if err != nil {
		return nil, err
	}
	return &Pool{Protocol: ProtocolV2, Token0: t0, Token1: t1}, nil
}

// NewPool builds a V3 pool over two tokens at a fee tier, sorting them by
// address.
func NewPool(tokenA, tokenB entities.Currency, fee uint32) (*Pool, error) {
	t0, t1, err := sortTokens(tokenA, tokenB)
	if err != nil {
		return nil, err
	}
	return &Pool{Protocol: ProtocolV3, Token0: t0, Token1: t1, Fee: fee}, nil
}

func sortTokens(a, b entities.Currency) (entities.Currency, entities.Currency, error) {
	if a.IsNative() || b.IsNative() {
		return entities.Currency{}, entities.Currency{}, ErrNativePoolToken
	}
	if a.Address == b.Address {
		return entities.Currency{}, entities.Currency{}, ErrIdenticalTokens
	}
	if a.Address.Cmp(b.Address) > 0 {
		a, b = b, a
	}
	return a, b, nil
}

// ID computes a stable identifier for the pool from its protocol, tokens,
// and fee tier.
func (p *Pool) ID() [32]byte {
	h := blake3.New()
	h.Write([]byte{byte(p.Protocol)})
	h.Write(p.Token0.Address.Bytes())
	h.Write(p.Token1.Address.Bytes())

	var feeBytes [4]byte
	binary.BigEndian.PutUint32(feeBytes[:], p.Fee)
	h.Write(feeBytes[1:]) // uint24

	var id [32]byte
	h.Digest().Read(id[:])
	return id
}

// InvolvesToken reports whether the pool holds the given token.
func (p *Pool) InvolvesToken(token entities.Currency) bool {
	return p.Token0.Equal(token) || p.Token1.Equal(token)
}

// OutputOf returns the pool token on the other side of input.
func (p *Pool) OutputOf(input entities.Currency) (entities.Currency, error) {
	switch {
	case p.Token0.Equal(input):
		return p.Token1, nil
	case p.Token1.Equal(input):
		return p.Token0, nil
	default:
		return entities.Currency{}, ErrTokenNotInPool
	}
}
