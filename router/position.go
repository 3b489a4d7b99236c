// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package router

import (
	"math/big"

	"github.com/luxfi/routersdk/entities"
)

// Position is a liquidity-deposit target: a V3 pool, a tick range, and the
// caller's desired mint amounts. Read-only to the compiler, which only
// derives a slippage-bounded minimal variant from it.
type Position struct {
	Pool           *Pool
	TickLower      int32
	TickUpper      int32
	Amount0Desired *big.Int
	Amount1Desired *big.Int
}

// NewPosition validates the deposit target.
func NewPosition(pool *Pool, tickLower, tickUpper int32, amount0, amount1 *big.Int) (*Position, error) {
	if pool == nil || pool.Protocol != ProtocolV3 {
		return nil, ErrPositionPoolProtocol
	}
	if tickLower >= tickUpper {
		return nil, ErrInvalidTickRange
	}
	if amount0 == nil || amount0.Sign() < 0 || amount1 == nil || amount1.Sign() < 0 {
		return nil, entities.ErrNegativeAmount
	}
	return &Position{
		Pool:           pool,
		TickLower:      tickLower,
		TickUpper:      tickUpper,
		Amount0Desired: new(big.Int).Set(amount0),
		Amount1Desired: new(big.Int).Set(amount1),
	}, nil
}

// minimalPosition is the worst-case deposit: the side fed by swap output
// holds the aggregate minimum output, the untouched side keeps the caller's
// desired amount.
type minimalPosition struct {
	amount0 *big.Int
	amount1 *big.Int
}

// amountsWithSlippage floors both sides by the tolerance, the bound the
// add-liquidity call enforces on-chain.
func (m minimalPosition) amountsWithSlippage(tolerance entities.Percent) (amount0Min, amount1Min *big.Int) {
	return applySlippageDown(m.amount0, tolerance), applySlippageDown(m.amount1, tolerance)
}

// applySlippageDown returns amount / (1 + tolerance), floored.
func applySlippageDown(amount *big.Int, tolerance entities.Percent) *big.Int {
	one := entities.NewFraction(1, 1)
	return one.Add(tolerance).Invert().Mul(entities.NewFractionFromBig(amount, big.NewInt(1))).Quotient()
}
