// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package router

import (
	"math/big"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/routersdk/entities"
	"github.com/luxfi/routersdk/routerabi"
)

// feeBips converts a percent fee into on-chain bips, floored.
func feeBips(fee entities.Percent) *big.Int {
	return fee.Mul(entities.NewFraction(10000, 1)).Quotient()
}

// encodeUnwrapWETH9 unwraps custodied wrapped native and sends at least
// amountMinimum to recipient, routed through the fee variant when a fee is
// taken.
func encodeUnwrapWETH9(amountMinimum *big.Int, recipient common.Address, fee *FeeOptions) ([]byte, error) {
	if fee != nil {
		return routerabi.Pack("unwrapWETH9WithFee", amountMinimum, recipient, feeBips(fee.Fee), fee.Recipient)
	}
	return routerabi.Pack("unwrapWETH9", amountMinimum, recipient)
}

// encodeSweepToken sweeps a custodied token balance of at least
// amountMinimum to recipient, routed through the fee variant when a fee is
// taken.
func encodeSweepToken(token entities.Currency, amountMinimum *big.Int, recipient common.Address, fee *FeeOptions) ([]byte, error) {
	if fee != nil {
		return routerabi.Pack("sweepTokenWithFee", token.Address, amountMinimum, recipient, feeBips(fee.Fee), fee.Recipient)
	}
	return routerabi.Pack("sweepToken", token.Address, amountMinimum, recipient)
}

// encodeRefundETH returns unused attached native value to the sender.
func encodeRefundETH() ([]byte, error) {
	return routerabi.Pack("refundETH")
}

// encodeWrapETH wraps attached native value into the wrapped token, held by
// the router.
func encodeWrapETH(value *big.Int) ([]byte, error) {
	return routerabi.Pack("wrapETH", value)
}

// encodePull transfers a token balance from the caller into router custody.
func encodePull(token entities.Currency, value *big.Int) ([]byte, error) {
	return routerabi.Pack("pull", token.Address, value)
}
