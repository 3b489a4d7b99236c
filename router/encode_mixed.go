// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package router

import (
	"math/big"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/routersdk/entities"
	"github.com/luxfi/routersdk/routerabi"
)

// encodeMixedSwap encodes a mixed-route leg by partitioning its pools into
// consecutive same-protocol sections and chaining one call per section.
// Intermediate sections deliver to the router with a zero minimum; only the
// first section carries the input amount and only the last enforces the leg
// minimum at the real recipient. Exact output cannot be threaded backwards
// across protocol generations, so mixed legs are exact input only.
func encodeMixedSwap(trade *Trade, opts *SwapOptions, recipient common.Address, aggregateSlippage bool) ([][]byte, error) {
	if trade.TradeType != ExactInput {
		return nil, ErrMixedExactOutput
	}

	var calldatas [][]byte
	for _, s := range trade.Swaps {
		amountIn := maximumAmountIn(trade.TradeType, opts.SlippageTolerance, s)
		minOut := minimumAmountOut(trade.TradeType, opts.SlippageTolerance, s)
		if aggregateSlippage {
			minOut = big.NewInt(0)
		}

		sections := partitionByProtocol(s.Route.Pools)
		input, err := s.Route.Input.Wrapped()
		if err != nil {
			return nil, err
		}

		for i, section := range sections {
			last := i == len(sections)-1

			sectionRecipient := AddressThis
			if last {
				sectionRecipient = recipient
			}
			sectionIn := big.NewInt(0)
			if i == 0 {
				sectionIn = amountIn
			}
			sectionOut := big.NewInt(0)
			if last {
				sectionOut = minOut
			}

			tokens, err := sectionTokenPath(section, input)
			if err != nil {
				return nil, err
			}

			var calldata []byte
			if section[0].Protocol == ProtocolV3 {
				packed := encodePath(tokens, poolFees(section), false)
				calldata, err = routerabi.Pack("exactInput", exactInputParams{
					Path:             packed,
					Recipient:        sectionRecipient,
					Deadline:         opts.Deadline,
					AmountIn:         sectionIn,
					AmountOutMinimum: sectionOut,
				})
			} else {
				calldata, err = routerabi.Pack("swapExactTokensForTokens",
					sectionIn, sectionOut, tokenAddresses(tokens), sectionRecipient, opts.Deadline)
			}
			if err != nil {
				return nil, err
			}
			calldatas = append(calldatas, calldata)
			input = tokens[len(tokens)-1]
		}
	}
	return calldatas, nil
}

// partitionByProtocol splits a pool sequence into maximal runs sharing a
// protocol, preserving order.
func partitionByProtocol(pools []*Pool) [][]*Pool {
	var sections [][]*Pool
	var current []*Pool
	for _, pool := range pools {
		if len(current) > 0 && current[len(current)-1].Protocol != pool.Protocol {
			sections = append(sections, current)
			current = nil
		}
		current = append(current, pool)
	}
	if len(current) > 0 {
		sections = append(sections, current)
	}
	return sections
}

// sectionTokenPath walks a pool section from its input token and returns
// the token sequence it traverses.
func sectionTokenPath(section []*Pool, input entities.Currency) ([]entities.Currency, error) {
	tokens := make([]entities.Currency, 0, len(section)+1)
	tokens = append(tokens, input)
	current := input
	for _, pool := range section {
		next, err := pool.OutputOf(current)
		if err != nil {
			return nil, ErrRouteDiscontinuity
		}
		tokens = append(tokens, next)
		current = next
	}
	return tokens, nil
}

func tokenAddresses(tokens []entities.Currency) []common.Address {
	addrs := make([]common.Address, len(tokens))
	for i, t := range tokens {
		addrs[i] = t.Address
	}
	return addrs
}
