// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package router

import (
	"math/big"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/routersdk/routerabi"
)

// encodeV2Swap encodes the single call for a V2 leg. The function variant
// follows from the trade type and the nativeness of input and output.
// Under an aggregated slippage check the per-leg minimum output is zero; the
// bound is asserted once over the summed output by the settlement epilogue.
func encodeV2Swap(trade *Trade, opts *SwapOptions, recipient common.Address, aggregateSlippage bool) ([]byte, error) {
	s := trade.Swaps[0]
	amountIn := maximumAmountIn(trade.TradeType, opts.SlippageTolerance, s)
	amountOut := minimumAmountOut(trade.TradeType, opts.SlippageTolerance, s)
	path := s.Route.PathAddresses()

	nativeIn := trade.InputCurrency().IsNative()
	nativeOut := trade.OutputCurrency().IsNative()

	if trade.TradeType == ExactInput {
		minOut := amountOut
		if aggregateSlippage {
			minOut = big.NewInt(0)
		}
		switch {
		case nativeIn:
			return routerabi.Pack("swapExactETHForTokens", minOut, path, recipient, opts.Deadline)
		case nativeOut:
			return routerabi.Pack("swapExactTokensForETH", amountIn, minOut, path, recipient, opts.Deadline)
		default:
			return routerabi.Pack("swapExactTokensForTokens", amountIn, minOut, path, recipient, opts.Deadline)
		}
	}

	switch {
	case nativeIn:
		// The worst-case input rides in the attached value; the function has
		// no amountInMax slot.
		return routerabi.Pack("swapETHForExactTokens", amountOut, path, recipient, opts.Deadline)
	case nativeOut:
		return routerabi.Pack("swapTokensForExactETH", amountOut, amountIn, path, recipient, opts.Deadline)
	default:
		return routerabi.Pack("swapTokensForExactTokens", amountOut, amountIn, path, recipient, opts.Deadline)
	}
}
