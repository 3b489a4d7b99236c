// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package router

import (
	"math/big"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/common/hexutil"
)

// encodedSwaps is the result of encoding the normalized legs, before the
// settlement epilogue.
type encodedSwaps struct {
	calldatas         [][]byte
	trades            []*Trade
	sample            *Trade
	routerMustCustody bool
	inputIsNative     bool
	outputIsNative    bool

	// Aggregates across all legs at the configured tolerance.
	totalAmountIn    *big.Int
	minimumAmountOut *big.Int
	quoteAmountOut   *big.Int
}

// encodeSwaps normalizes the bundle, decides custody, resolves the swap
// recipient, prepends the input permit, and encodes every leg in input
// order.
func encodeSwaps(bundle TradeBundle, opts *SwapOptions, isSwapAndAdd bool) (*encodedSwaps, error) {
	trades, sample, legCount, err := normalizeTrades(bundle)
	if err != nil {
		return nil, err
	}
	if !opts.SlippageTolerance.Valid() || opts.SlippageTolerance.Num.Sign() < 0 {
		return nil, ErrInvalidSlippage
	}
	if opts.Deadline == nil {
		return nil, ErrMissingDeadline
	}
	if opts.Fee != nil && (!opts.Fee.Fee.Valid() || opts.Fee.Fee.Num.Sign() < 0) {
		return nil, ErrInvalidFee
	}

	inputIsNative := sample.InputCurrency().IsNative()
	outputIsNative := sample.OutputCurrency().IsNative()

	// The aggregated check trades per-leg strictness for one post-hoc
	// assertion over the summed output; worth the extra custody hop only on
	// longer exact-input routes.
	aggregateSlippage := sample.TradeType == ExactInput && legCount > 2

	routerMustCustody := outputIsNative || opts.Fee != nil || isSwapAndAdd || aggregateSlippage

	recipient, err := resolveRecipient(opts.Recipient, routerMustCustody)
	if err != nil {
		return nil, err
	}

	var calldatas [][]byte
	if opts.InputTokenPermit != nil {
		if inputIsNative {
			return nil, ErrNonTokenPermit
		}
		permitCall, err := encodePermit(sample.InputCurrency(), opts.InputTokenPermit)
		if err != nil {
			return nil, err
		}
		calldatas = append(calldatas, permitCall)
	}

	for _, trade := range trades {
		switch trade.Protocol() {
		case ProtocolV2:
			calldata, err := encodeV2Swap(trade, opts, recipient, aggregateSlippage)
			if err != nil {
				return nil, err
			}
			calldatas = append(calldatas, calldata)
		case ProtocolV3:
			swapCalls, err := encodeV3Swap(trade, opts, recipient, aggregateSlippage)
			if err != nil {
				return nil, err
			}
			calldatas = append(calldatas, swapCalls...)
		case ProtocolMixed:
			swapCalls, err := encodeMixedSwap(trade, opts, recipient, aggregateSlippage)
			if err != nil {
				return nil, err
			}
			calldatas = append(calldatas, swapCalls...)
		default:
			return nil, ErrUnsupportedProtocol
		}
	}

	totalAmountIn := new(big.Int)
	minimumOut := new(big.Int)
	quoteOut := new(big.Int)
	for _, trade := range trades {
		for _, s := range trade.Swaps {
			totalAmountIn.Add(totalAmountIn, maximumAmountIn(trade.TradeType, opts.SlippageTolerance, s))
			minimumOut.Add(minimumOut, minimumAmountOut(trade.TradeType, opts.SlippageTolerance, s))
			quoteOut.Add(quoteOut, s.OutputAmount.Raw())
		}
	}

	return &encodedSwaps{
		calldatas:         calldatas,
		trades:            trades,
		sample:            sample,
		routerMustCustody: routerMustCustody,
		inputIsNative:     inputIsNative,
		outputIsNative:    outputIsNative,
		totalAmountIn:     totalAmountIn,
		minimumAmountOut:  minimumOut,
		quoteAmountOut:    quoteOut,
	}, nil
}

// resolveRecipient picks where leg output lands: the router itself under
// custody, an explicit validated recipient, or the sender sentinel.
func resolveRecipient(recipient *common.Address, routerMustCustody bool) (common.Address, error) {
	if routerMustCustody {
		return AddressThis, nil
	}
	if recipient != nil {
		if *recipient == (common.Address{}) {
			return common.Address{}, ErrInvalidRecipient
		}
		return *recipient, nil
	}
	return MsgSender, nil
}

// finalRecipient is where settlement sweeps deliver: the explicit recipient
// or the sender.
func finalRecipient(recipient *common.Address) (common.Address, error) {
	if recipient == nil {
		return MsgSender, nil
	}
	if *recipient == (common.Address{}) {
		return common.Address{}, ErrInvalidRecipient
	}
	return *recipient, nil
}

// riskOfPartialFill flags any non-V2 leg whose price impact exceeds the
// refund threshold. V2 fills are all-or-nothing and carry no such risk.
func riskOfPartialFill(trades []*Trade) bool {
	for _, trade := range trades {
		if trade.Protocol() == ProtocolV2 {
			continue
		}
		if trade.PriceImpact.Valid() && trade.PriceImpact.GreaterThan(refundPriceImpactThreshold) {
			return true
		}
	}
	return false
}

// SwapCallParameters compiles the swap-only flow into the call parameters
// the settlement router executes.
func SwapCallParameters(bundle TradeBundle, opts SwapOptions) (MethodParameters, error) {
	es, err := encodeSwaps(bundle, &opts, false)
	if err != nil {
		return MethodParameters{}, err
	}

	if es.routerMustCustody {
		recipient, err := finalRecipient(opts.Recipient)
		if err != nil {
			return MethodParameters{}, err
		}
		var settle []byte
		if es.outputIsNative {
			settle, err = encodeUnwrapWETH9(es.minimumAmountOut, recipient, opts.Fee)
		} else {
			wrappedOut, werr := es.sample.OutputCurrency().Wrapped()
			if werr != nil {
				return MethodParameters{}, werr
			}
			settle, err = encodeSweepToken(wrappedOut, es.minimumAmountOut, recipient, opts.Fee)
		}
		if err != nil {
			return MethodParameters{}, err
		}
		es.calldatas = append(es.calldatas, settle)
	}

	// The full native value rides up front; refund whenever the consumed
	// amount is uncertain or bounded above.
	if es.inputIsNative && (es.sample.TradeType == ExactOutput || riskOfPartialFill(es.trades)) {
		refund, err := encodeRefundETH()
		if err != nil {
			return MethodParameters{}, err
		}
		es.calldatas = append(es.calldatas, refund)
	}

	value := new(big.Int)
	if es.inputIsNative {
		value.Set(es.totalAmountIn)
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
