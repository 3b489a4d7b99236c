// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package router

import (
	"math/big"

	"github.com/luxfi/routersdk/entities"
)

// Swap is one leg: a route plus the amounts it moves. The trade type lives
// on the owning trade.
type Swap struct {
	Route        *Route
	InputAmount  entities.CurrencyAmount
	OutputAmount entities.CurrencyAmount
}

// Trade is a single-protocol trade. V3 and mixed trades may split across
// several swaps sharing currencies; a V2 trade is exactly one swap.
type Trade struct {
	TradeType   TradeType
	Swaps       []*Swap
	PriceImpact entities.Percent
}

// NewTrade validates swap homogeneity within the trade. PriceImpact is
// computed upstream by the route planner and consumed here as data.
func NewTrade(tradeType TradeType, swaps []*Swap, priceImpact entities.Percent) (*Trade, error) {
	if len(swaps) == 0 {
		return nil, ErrEmptyTrade
	}
	protocol := swaps[0].Route.Protocol
	for _, s := range swaps[1:] {
		if s.Route.Protocol != protocol {
			return nil, ErrProtocolMismatch
		}
		if !s.Route.Input.Equal(swaps[0].Route.Input) || !s.Route.Output.Equal(swaps[0].Route.Output) {
			return nil, ErrTradeCurrencyMismatch
		}
	}
	if protocol == ProtocolV2 && len(swaps) != 1 {
		return nil, ErrSplitV2Trade
	}
	return &Trade{TradeType: tradeType, Swaps: swaps, PriceImpact: priceImpact}, nil
}

// Protocol returns the protocol all of the trade's swaps execute on.
func (t *Trade) Protocol() Protocol {
	return t.Swaps[0].Route.Protocol
}

// InputCurrency returns the currency the trade spends.
func (t *Trade) InputCurrency() entities.Currency {
	return t.Swaps[0].Route.Input
}

// OutputCurrency returns the currency the trade produces.
func (t *Trade) OutputCurrency() entities.Currency {
	return t.Swaps[0].Route.Output
}

// AggregateTrade bundles heterogeneous-protocol swaps sharing one input
// currency, one output currency, and one trade type.
type AggregateTrade struct {
	TradeType   TradeType
	Swaps       []*Swap
	PriceImpact entities.Percent
}

// NewAggregateTrade builds an aggregate. Homogeneity across legs is enforced
// at compile time by the normalizer.
func NewAggregateTrade(tradeType TradeType, swaps []*Swap, priceImpact entities.Percent) (*AggregateTrade, error) {
	if len(swaps) == 0 {
		return nil, ErrEmptyTrade
	}
	return &AggregateTrade{TradeType: tradeType, Swaps: swaps, PriceImpact: priceImpact}, nil
}

// bundleKind discriminates the accepted trade shapes. Set at construction,
// never inspected via type switches downstream.
type bundleKind uint8

const (
	bundleSingle bundleKind = iota + 1
	bundleAggregate
	bundleLegs
)

// TradeBundle is the input union of the compile entry points: a single
// trade, an aggregate trade, or an explicit ordered list of single-protocol
// trades.
type TradeBundle struct {
	kind      bundleKind
	single    *Trade
	aggregate *AggregateTrade
	legs      []*Trade
}

// SingleTrade wraps one single-protocol trade.
func SingleTrade(t *Trade) TradeBundle {
	return TradeBundle{kind: bundleSingle, single: t}
}

// Aggregate wraps an aggregate multi-leg trade.
func Aggregate(t *AggregateTrade) TradeBundle {
	return TradeBundle{kind: bundleAggregate, aggregate: t}
}

// TradeLegs wraps an explicit ordered list of single-protocol trades.
func TradeLegs(trades ...*Trade) TradeBundle {
	return TradeBundle{kind: bundleLegs, legs: trades}
}

// normalizeTrades flattens any accepted shape into an ordered list of
// single-protocol trades, returning the first as the sample for
// shared-attribute checks, plus the leg count feeding the
// aggregated-slippage heuristic: V3 and mixed trades contribute one per
// internal swap, V2 trades contribute one.
func normalizeTrades(bundle TradeBundle) (trades []*Trade, sample *Trade, legCount int, err error) {
	switch bundle.kind {
	case bundleSingle:
		if bundle.single == nil {
			return nil, nil, 0, ErrNoTrades
		}
		trades = []*Trade{bundle.single}
	case bundleAggregate:
		if bundle.aggregate == nil || len(bundle.aggregate.Swaps) == 0 {
			return nil, nil, 0, ErrNoTrades
		}
		// Unbundle: every internal leg becomes an independent trade carrying
		// its own route and amounts, inheriting type and price impact.
		for _, s := range bundle.aggregate.Swaps {
			trades = append(trades, &Trade{
				TradeType:   bundle.aggregate.TradeType,
				Swaps:       []*Swap{s},
				PriceImpact: bundle.aggregate.PriceImpact,
			})
		}
	case bundleLegs:
		if len(bundle.legs) == 0 {
			return nil, nil, 0, ErrNoTrades
		}
		trades = bundle.legs
	default:
		return nil, nil, 0, ErrNoTrades
	}

	for _, t := range trades {
		if len(t.Swaps) == 0 {
			return nil, nil, 0, ErrEmptyTrade
		}
		for _, s := range t.Swaps {
			switch s.Route.Protocol {
			case ProtocolV2, ProtocolV3, ProtocolMixed:
			default:
				return nil, nil, 0, ErrUnsupportedProtocol
			}
		}
	}

	sample = trades[0]
	for _, t := range trades {
		if !t.InputCurrency().Equal(sample.InputCurrency()) {
			return nil, nil, 0, ErrTokenInMismatch
		}
		if !t.OutputCurrency().Equal(sample.OutputCurrency()) {
			return nil, nil, 0, ErrTokenOutMismatch
		}
		if t.TradeType != sample.TradeType {
			return nil, nil, 0, ErrTradeTypeMismatch
		}
	}

	for _, t := range trades {
		if t.Protocol() == ProtocolV2 {
			legCount++
		} else {
			legCount += len(t.Swaps)
		}
	}
	return trades, sample, legCount, nil
}

// maximumAmountIn is the worst-case input of one swap at the tolerance:
// the exact input for EXACT_INPUT, amountIn * (1 + tolerance) floored for
// EXACT_OUTPUT.
func maximumAmountIn(tradeType TradeType, tolerance entities.Percent, s *Swap) *big.Int {
	raw := s.InputAmount.Raw()
	if tradeType == ExactInput {
		return raw
	}
	one := entities.NewFraction(1, 1)
	adjusted := one.Add(tolerance).Mul(entities.NewFractionFromBig(raw, big.NewInt(1)))
	return adjusted.Quotient()
}

// minimumAmountOut is the worst-case output of one swap at the tolerance:
// the exact output for EXACT_OUTPUT, amountOut / (1 + tolerance) floored for
// EXACT_INPUT.
func minimumAmountOut(tradeType TradeType, tolerance entities.Percent, s *Swap) *big.Int {
	raw := s.OutputAmount.Raw()
	if tradeType == ExactOutput {
		return raw
	}
	one := entities.NewFraction(1, 1)
	adjusted := one.Add(tolerance).Invert().Mul(entities.NewFractionFromBig(raw, big.NewInt(1)))
	return adjusted.Quotient()
}
