// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package router

import (
	"math/big"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/routersdk/entities"
	"github.com/luxfi/routersdk/routerabi"
)

type exactInputSingleParams struct {
	TokenIn           common.Address
	TokenOut          common.Address
	Fee               *big.Int
	Recipient         common.Address
	Deadline          *big.Int
	AmountIn          *big.Int
	AmountOutMinimum  *big.Int
	SqrtPriceLimitX96 *big.Int
}

type exactInputParams struct {
	Path             []byte
	Recipient        common.Address
	Deadline         *big.Int
	AmountIn         *big.Int
	AmountOutMinimum *big.Int
}

type exactOutputSingleParams struct {
	TokenIn           common.Address
	TokenOut          common.Address
	Fee               *big.Int
	Recipient         common.Address
	Deadline          *big.Int
	AmountOut         *big.Int
	AmountInMaximum   *big.Int
	SqrtPriceLimitX96 *big.Int
}

type exactOutputParams struct {
	Path            []byte
	Recipient       common.Address
	Deadline        *big.Int
	AmountOut       *big.Int
	AmountInMaximum *big.Int
}

// encodeV3Swap encodes one call per internal swap of a V3 leg: the single
// variants for one-pool routes, the packed-path variants otherwise.
func encodeV3Swap(trade *Trade, opts *SwapOptions, recipient common.Address, aggregateSlippage bool) ([][]byte, error) {
	calldatas := make([][]byte, 0, len(trade.Swaps))
	for _, s := range trade.Swaps {
		amountIn := maximumAmountIn(trade.TradeType, opts.SlippageTolerance, s)
		amountOut := minimumAmountOut(trade.TradeType, opts.SlippageTolerance, s)
		minOut := amountOut
		if trade.TradeType == ExactInput && aggregateSlippage {
			minOut = big.NewInt(0)
		}

		if len(s.Route.Pools) == 1 {
			pool := s.Route.Pools[0]
			path := s.Route.TokenPath()
			var calldata []byte
			var err error
			if trade.TradeType == ExactInput {
				calldata, err = routerabi.Pack("exactInputSingle", exactInputSingleParams{
					TokenIn:           path[0].Address,
					TokenOut:          path[1].Address,
					Fee:               big.NewInt(int64(pool.Fee)),
					Recipient:         recipient,
					Deadline:          opts.Deadline,
					AmountIn:          amountIn,
					AmountOutMinimum:  minOut,
					SqrtPriceLimitX96: big.NewInt(0),
				})
			} else {
				calldata, err = routerabi.Pack("exactOutputSingle", exactOutputSingleParams{
					TokenIn:           path[0].Address,
					TokenOut:          path[1].Address,
					Fee:               big.NewInt(int64(pool.Fee)),
					Recipient:         recipient,
					Deadline:          opts.Deadline,
					AmountOut:         amountOut,
					AmountInMaximum:   amountIn,
					SqrtPriceLimitX96: big.NewInt(0),
				})
			}
			if err != nil {
				return nil, err
			}
			calldatas = append(calldatas, calldata)
			continue
		}

		exactOutput := trade.TradeType == ExactOutput
		packed := encodePath(s.Route.TokenPath(), poolFees(s.Route.Pools), exactOutput)
		var calldata []byte
		var err error
		if exactOutput {
			calldata, err = routerabi.Pack("exactOutput", exactOutputParams{
				Path:            packed,
				Recipient:       recipient,
				Deadline:        opts.Deadline,
				AmountOut:       amountOut,
				AmountInMaximum: amountIn,
			})
		} else {
			calldata, err = routerabi.Pack("exactInput", exactInputParams{
				Path:             packed,
				Recipient:        recipient,
				Deadline:         opts.Deadline,
				AmountIn:         amountIn,
				AmountOutMinimum: minOut,
			})
		}
		if err != nil {
			return nil, err
		}
		calldatas = append(calldatas, calldata)
	}
	return calldatas, nil
}

func poolFees(pools []*Pool) []uint32 {
	fees := make([]uint32, len(pools))
	for i, p := range pools {
		fees[i] = p.Fee
	}
	return fees
}

// encodePath packs a token path with its fee tiers into the V3 wire form:
// token (20 bytes) then fee (3 bytes) alternating, ending on a token.
// Exact-output paths are encoded in reverse.
func encodePath(tokens []entities.Currency, fees []uint32, exactOutput bool) []byte {
	n := len(tokens)
	packed := make([]byte, 0, n*20+len(fees)*3)
	if exactOutput {
		packed = append(packed, tokens[n-1].Address.Bytes()...)
		for i := len(fees) - 1; i >= 0; i-- {
			packed = appendFee(packed, fees[i])
			packed = append(packed, tokens[i].Address.Bytes()...)
		}
		return packed
	}
	packed = append(packed, tokens[0].Address.Bytes()...)
	for i, fee := range fees {
		packed = appendFee(packed, fee)
		packed = append(packed, tokens[i+1].Address.Bytes()...)
	}
	return packed
}

func appendFee(b []byte, fee uint32) []byte {
	return append(b, byte(fee>>16), byte(fee>>8), byte(fee))
}
