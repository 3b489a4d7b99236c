// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package router

import (
	"math/big"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/routersdk/entities"
	"github.com/luxfi/routersdk/routerabi"
)

// encodeApprove encodes a router-side approval of the position manager for
// one token. Callers skip this entirely for ApprovalNotRequired.
func encodeApprove(token entities.Currency, approvalType ApprovalType) ([]byte, error) {
	switch approvalType {
	case ApprovalMax:
		return routerabi.Pack("approveMax", token.Address)
	case ApprovalMaxMinusOne:
		return routerabi.Pack("approveMaxMinusOne", token.Address)
	case ApprovalZeroThenMax:
		return routerabi.Pack("approveZeroThenMax", token.Address)
	case ApprovalZeroThenMaxMinusOne:
		return routerabi.Pack("approveZeroThenMaxMinusOne", token.Address)
	default:
		return nil, ErrInvalidApprovalType
	}
}

type mintParams struct {
	Token0     common.Address
	Token1     common.Address
	Fee        *big.Int
	TickLower  *big.Int
	TickUpper  *big.Int
	Amount0Min *big.Int
	Amount1Min *big.Int
	Recipient  common.Address
}

type increaseLiquidityParams struct {
	Token0     common.Address
	Token1     common.Address
	TokenId    *big.Int
	Amount0Min *big.Int
	Amount1Min *big.Int
}

// encodeAddLiquidity encodes the deposit call, bounded by the minimal
// position's slippage-floored amounts: a mint when the options carry a
// recipient, an increase of an existing position when they carry a token id.
func encodeAddLiquidity(position *Position, minimal minimalPosition, addOpts AddLiquidityOptions, tolerance entities.Percent) ([]byte, error) {
	amount0Min, amount1Min := minimal.amountsWithSlippage(tolerance)

	switch {
	case addOpts.Recipient != nil && addOpts.TokenID == nil:
		return routerabi.Pack("mint", mintParams{
			Token0:     position.Pool.Token0.Address,
			Token1:     position.Pool.Token1.Address,
			Fee:        big.NewInt(int64(position.Pool.Fee)),
			TickLower:  big.NewInt(int64(position.TickLower)),
			TickUpper:  big.NewInt(int64(position.TickUpper)),
			Amount0Min: amount0Min,
			Amount1Min: amount1Min,
			Recipient:  *addOpts.Recipient,
		})
	case addOpts.TokenID != nil && addOpts.Recipient == nil:
		return routerabi.Pack("increaseLiquidity", increaseLiquidityParams{
			Token0:     position.Pool.Token0.Address,
			Token1:     position.Pool.Token1.Address,
			TokenId:    addOpts.TokenID,
			Amount0Min: amount0Min,
			Amount1Min: amount1Min,
		})
	default:
		return nil, ErrAddLiquidityTarget
	}
}
