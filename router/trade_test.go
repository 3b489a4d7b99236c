// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package router

import (
	"testing"

	"github.com/luxfi/routersdk/entities"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSingle(t *testing.T) {
	trade := v2Trade(t, ExactInput, tokenA(t), tokenB(t), 10000, 5000)

	trades, sample, legCount, err := normalizeTrades(SingleTrade(trade))
	require.NoError(t, err)
	require.Len(t, trades, 1)
	require.Same(t, trade, sample)
	require.Equal(t, 1, legCount)
}

func TestNormalizeAggregateIdempotence(t *testing.T) {
	a, b := tokenA(t), tokenB(t)
	routeDirect := mustRoute(t, ProtocolV2, []*Pool{mustPair(t, a, b)}, a, b)
	routeHop := mustRoute(t, ProtocolV2, []*Pool{mustPair(t, a, tokenC(t)), mustPair(t, tokenC(t), b)}, a, b)

	swaps := []*Swap{
		{Route: routeDirect, InputAmount: amount(t, a, 6000), OutputAmount: amount(t, b, 3000)},
		{Route: routeHop, InputAmount: amount(t, a, 4000), OutputAmount: amount(t, b, 1900)},
	}
	impact := entities.NewPercent(1, 1000)

	agg, err := NewAggregateTrade(ExactInput, swaps, impact)
	require.NoError(t, err)

	fromAggregate, aggSample, aggCount, err := normalizeTrades(Aggregate(agg))
	require.NoError(t, err)

	var legs []*Trade
	for _, s := range swaps {
		leg, err := NewTrade(ExactInput, []*Swap{s}, impact)
		require.NoError(t, err)
		legs = append(legs, leg)
	}
	fromLegs, legSample, legCountN, err := normalizeTrades(TradeLegs(legs...))
	require.NoError(t, err)

	require.Equal(t, aggCount, legCountN)
	require.Len(t, fromAggregate, len(fromLegs))
	for i := range fromAggregate {
		require.Same(t, fromAggregate[i].Swaps[0], fromLegs[i].Swaps[0])
		require.Equal(t, fromAggregate[i].TradeType, fromLegs[i].TradeType)
	}
	require.True(t, aggSample.InputCurrency().Equal(legSample.InputCurrency()))
	require.True(t, aggSample.OutputCurrency().Equal(legSample.OutputCurrency()))
	require.Equal(t, aggSample.TradeType, legSample.TradeType)
}

func TestNormalizeHomogeneity(t *testing.T) {
	base := v2Trade(t, ExactInput, tokenA(t), tokenB(t), 10000, 5000)

	badIn := v2Trade(t, ExactInput, tokenC(t), tokenB(t), 10000, 5000)
	_, _, _, err := normalizeTrades(TradeLegs(base, badIn))
	require.ErrorIs(t, err, ErrTokenInMismatch)

	badOut := v2Trade(t, ExactInput, tokenA(t), tokenC(t), 10000, 5000)
	_, _, _, err = normalizeTrades(TradeLegs(base, badOut))
	require.ErrorIs(t, err, ErrTokenOutMismatch)

	badType := v2Trade(t, ExactOutput, tokenA(t), tokenB(t), 10000, 5000)
	_, _, _, err = normalizeTrades(TradeLegs(base, badType))
	require.ErrorIs(t, err, ErrTradeTypeMismatch)
}

func TestNormalizeUnsupportedProtocol(t *testing.T) {
	trade := v2Trade(t, ExactInput, tokenA(t), tokenB(t), 10000, 5000)
	// Corrupt the protocol tag; the normalizer must reject it.
	trade.Swaps[0].Route.Protocol = Protocol(0)

	_, _, _, err := normalizeTrades(SingleTrade(trade))
	require.ErrorIs(t, err, ErrUnsupportedProtocol)
}

func TestNormalizeEmpty(t *testing.T) {
	_, _, _, err := normalizeTrades(TradeBundle{})
	require.ErrorIs(t, err, ErrNoTrades)

	_, _, _, err = normalizeTrades(TradeLegs())
	require.ErrorIs(t, err, ErrNoTrades)
}

func TestLegCountHeuristicInput(t *testing.T) {
	a, b, w := tokenA(t), tokenB(t), weth(t)

	v2 := v2Trade(t, ExactInput, a, b, 1000, 500)

	// One V3 trade split across two swaps counts twice.
	poolAB := mustPool(t, a, b, Fee030)
	poolAW := mustPool(t, a, w, Fee005)
	poolWB := mustPool(t, w, b, Fee030)
	direct := mustRoute(t, ProtocolV3, []*Pool{poolAB}, a, b)
	hop := mustRoute(t, ProtocolV3, []*Pool{poolAW, poolWB}, a, b)
	split, err := NewTrade(ExactInput, []*Swap{
		{Route: direct, InputAmount: amount(t, a, 600), OutputAmount: amount(t, b, 300)},
		{Route: hop, InputAmount: amount(t, a, 400), OutputAmount: amount(t, b, 190)},
	}, entities.NewPercent(1, 1000))
	require.NoError(t, err)

	_, _, legCount, err := normalizeTrades(TradeLegs(v2, split))
	require.NoError(t, err)
	require.Equal(t, 3, legCount)
}

func TestNewTradeValidation(t *testing.T) {
	a, b := tokenA(t), tokenB(t)

	_, err := NewTrade(ExactInput, nil, entities.Percent{})
	require.ErrorIs(t, err, ErrEmptyTrade)

	// V2 trades cannot split.
	route := mustRoute(t, ProtocolV2, []*Pool{mustPair(t, a, b)}, a, b)
	swap := &Swap{Route: route, InputAmount: amount(t, a, 1), OutputAmount: amount(t, b, 1)}
	_, err = NewTrade(ExactInput, []*Swap{swap, swap}, entities.Percent{})
	require.ErrorIs(t, err, ErrSplitV2Trade)

	// Swaps within a trade share a protocol.
	v3route := mustRoute(t, ProtocolV3, []*Pool{mustPool(t, a, b, Fee030)}, a, b)
	v3swap := &Swap{Route: v3route, InputAmount: amount(t, a, 1), OutputAmount: amount(t, b, 1)}
	_, err = NewTrade(ExactInput, []*Swap{swap, v3swap}, entities.Percent{})
	require.ErrorIs(t, err, ErrProtocolMismatch)
}

func TestRouteValidation(t *testing.T) {
	a, b, c := tokenA(t), tokenB(t), tokenC(t)

	_, err := NewRoute(ProtocolV2, nil, a, b)
	require.ErrorIs(t, err, ErrEmptyRoute)

	_, err = NewRoute(ProtocolV2, []*Pool{mustPair(t, b, c)}, a, b)
	require.ErrorIs(t, err, ErrRouteInputMismatch)

	_, err = NewRoute(ProtocolV2, []*Pool{mustPair(t, a, c)}, a, b)
	require.ErrorIs(t, err, ErrRouteOutputMismatch)

	// Single-protocol routes own their pools.
	_, err = NewRoute(ProtocolV2, []*Pool{mustPool(t, a, b, Fee030)}, a, b)
	require.ErrorIs(t, err, ErrMixedPoolInRoute)

	// A route may not cross the same pool twice, even when the token walk
	// stays continuous.
	ab := mustPair(t, a, b)
	_, err = NewRoute(ProtocolV2, []*Pool{ab, ab}, a, a)
	require.ErrorIs(t, err, ErrDuplicatePool)
}

func TestPoolIdentity(t *testing.T) {
	a, b := tokenA(t), tokenB(t)

	p1 := mustPool(t, a, b, Fee030)
	p2 := mustPool(t, b, a, Fee030)
	require.Equal(t, p1.ID(), p2.ID(), "sorted pools must share identity")

	p3 := mustPool(t, a, b, Fee005)
	require.NotEqual(t, p1.ID(), p3.ID(), "fee tier is part of identity")

	pair := mustPair(t, a, b)
	require.NotEqual(t, p1.ID(), pair.ID(), "protocol is part of identity")
}
