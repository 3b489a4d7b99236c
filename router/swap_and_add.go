// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package router

import (
	"math/big"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/common/hexutil"
	"github.com/luxfi/routersdk/entities"
)

// SwapAndAddCallParameters compiles the combined swap-and-deposit flow: the
// swap legs settle into router custody, the shortfall and the position's
// input side are pulled or wrapped in, the position manager is approved as
// needed, liquidity is added under the slippage-bounded minimal position,
// and leftover dust on both tokens is swept back.
func SwapAndAddCallParameters(
	bundle TradeBundle,
	opts SwapAndAddOptions,
	position *Position,
	addOpts AddLiquidityOptions,
	tokenInApproval ApprovalType,
	tokenOutApproval ApprovalType,
) (MethodParameters, error) {
	es, err := encodeSwaps(bundle, &opts.SwapOptions, true)
	if err != nil {
		return MethodParameters{}, err
	}
	if position == nil {
		return MethodParameters{}, ErrPositionPoolProtocol
	}

	// On-chain custody always operates on the wrapped representation.
	tokenIn, err := es.sample.InputCurrency().Wrapped()
	if err != nil {
		return MethodParameters{}, err
	}
	tokenOut, err := es.sample.OutputCurrency().Wrapped()
	if err != nil {
		return MethodParameters{}, err
	}
	if !position.Pool.InvolvesToken(tokenIn) || !position.Pool.InvolvesToken(tokenOut) {
		return MethodParameters{}, ErrPositionTokenMismatch
	}

	// zeroForOne maps the swapped currencies onto the position's sides.
	zeroForOne := position.Pool.Token0.Equal(tokenIn)
	positionAmountIn, positionAmountOut := position.Amount0Desired, position.Amount1Desired
	if !zeroForOne {
		positionAmountIn, positionAmountOut = position.Amount1Desired, position.Amount0Desired
	}

	if opts.OutputTokenPermit != nil {
		if es.outputIsNative {
			return MethodParameters{}, ErrNonTokenPermitOutput
		}
		permitCall, err := encodePermit(tokenOut, opts.OutputTokenPermit)
		if err != nil {
			return MethodParameters{}, err
		}
		es.calldatas = append(es.calldatas, permitCall)
	}

	// Shortfall between what the position wants on the output side and what
	// the swap nominally produces. Negative means the swap covers it.
	amountOutRemaining := new(big.Int).Sub(positionAmountOut, es.quoteAmountOut)
	if amountOutRemaining.Sign() > 0 {
		var pullCall []byte
		if es.outputIsNative {
			pullCall, err = encodeWrapETH(amountOutRemaining)
		} else {
			pullCall, err = encodePull(tokenOut, amountOutRemaining)
		}
		if err != nil {
			return MethodParameters{}, err
		}
		es.calldatas = append(es.calldatas, pullCall)
	}

	var inCall []byte
	if es.inputIsNative {
		inCall, err = encodeWrapETH(positionAmountIn)
	} else {
		inCall, err = encodePull(tokenIn, positionAmountIn)
	}
	if err != nil {
		return MethodParameters{}, err
	}
	es.calldatas = append(es.calldatas, inCall)

	if tokenInApproval != ApprovalNotRequired {
		approveCall, err := encodeApprove(tokenIn, tokenInApproval)
		if err != nil {
			return MethodParameters{}, err
		}
		es.calldatas = append(es.calldatas, approveCall)
	}
	if tokenOutApproval != ApprovalNotRequired {
		approveCall, err := encodeApprove(tokenOut, tokenOutApproval)
		if err != nil {
			return MethodParameters{}, err
		}
		es.calldatas = append(es.calldatas, approveCall)
	}

	// Worst case for the swap-fed side; the untouched side is funded by a
	// direct pull of a caller-chosen amount and keeps its desired value.
	minimal := minimalPosition{amount0: es.minimumAmountOut, amount1: position.Amount1Desired}
	if zeroForOne {
		minimal = minimalPosition{amount0: position.Amount0Desired, amount1: es.minimumAmountOut}
	}
	addCall, err := encodeAddLiquidity(position, minimal, addOpts, opts.SlippageTolerance)
	if err != nil {
		return MethodParameters{}, err
	}
	es.calldatas = append(es.calldatas, addCall)

	// Zero-amount sweeps return any leftover dust on both sides.
	recipient, err := finalRecipient(opts.Recipient)
	if err != nil {
		return MethodParameters{}, err
	}
	sweepIn, err := encodeLeftoverSweep(tokenIn, es.inputIsNative, recipient)
	if err != nil {
		return MethodParameters{}, err
	}
	sweepOut, err := encodeLeftoverSweep(tokenOut, es.outputIsNative, recipient)
	if err != nil {
		return MethodParameters{}, err
	}
	es.calldatas = append(es.calldatas, sweepIn, sweepOut)

	value := new(big.Int)
	switch {
	case es.inputIsNative:
		value.Add(es.totalAmountIn, positionAmountIn)
	case es.outputIsNative && amountOutRemaining.Sign() > 0:
		value.Set(amountOutRemaining)
	}

	calldata, err := encodeMulticall(es.calldatas)
	if err != nil {
		return MethodParameters{}, err
	}
	return MethodParameters{
		Calldata: calldata,
		Value:    (*hexutil.Big)(value),
	}, nil
}

// encodeLeftoverSweep sweeps a zero-minimum token balance back to the
// recipient, unwrapping when the side entered as native.
func encodeLeftoverSweep(token entities.Currency, native bool, recipient common.Address) ([]byte, error) {
	if native {
		return encodeUnwrapWETH9(big.NewInt(0), recipient, nil)
	}
	return encodeSweepToken(token, big.NewInt(0), recipient, nil)
}
