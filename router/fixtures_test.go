// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package router

import (
	"math/big"
	"testing"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/routersdk/entities"
	"github.com/luxfi/routersdk/routerabi"
	"github.com/stretchr/testify/require"
)

var (
	testDeadline  = big.NewInt(1_700_000_000)
	testTolerance = entities.NewPercent(1, 100) // 1%
	testRecipient = common.HexToAddress("0x9999999999999999999999999999999999999999")
)

func testToken(t *testing.T, addr string, symbol string) entities.Currency {
	t.Helper()
	token, err := entities.NewToken(1, common.HexToAddress(addr), 18, symbol)
	require.NoError(t, err)
	return token
}

func tokenA(t *testing.T) entities.Currency {
	return testToken(t, "0x1111111111111111111111111111111111111111", "AAA")
}

func tokenB(t *testing.T) entities.Currency {
	return testToken(t, "0x2222222222222222222222222222222222222222", "BBB")
}

func tokenC(t *testing.T) entities.Currency {
	return testToken(t, "0x3333333333333333333333333333333333333333", "CCC")
}

func weth(t *testing.T) entities.Currency {
	t.Helper()
	wrapped, err := entities.WrappedNative(1)
	require.NoError(t, err)
	return wrapped
}

func amount(t *testing.T, c entities.Currency, raw int64) entities.CurrencyAmount {
	t.Helper()
	a, err := entities.NewCurrencyAmount(c, big.NewInt(raw))
	require.NoError(t, err)
	return a
}

func mustPair(t *testing.T, a, b entities.Currency) *Pool {
	t.Helper()
	pool, err := NewPair(a, b)
	require.NoError(t, err)
	return pool
}

func mustPool(t *testing.T, a, b entities.Currency, fee uint32) *Pool {
	t.Helper()
	pool, err := NewPool(a, b, fee)
	require.NoError(t, err)
	return pool
}

func mustRoute(t *testing.T, protocol Protocol, pools []*Pool, input, output entities.Currency) *Route {
	t.Helper()
	route, err := NewRoute(protocol, pools, input, output)
	require.NoError(t, err)
	return route
}

// v2Trade builds a one-pair V2 trade between input and output.
func v2Trade(t *testing.T, tradeType TradeType, input, output entities.Currency, in, out int64) *Trade {
	t.Helper()
	wrappedIn, err := input.Wrapped()
	require.NoError(t, err)
	wrappedOut, err := output.Wrapped()
	require.NoError(t, err)
	route := mustRoute(t, ProtocolV2, []*Pool{mustPair(t, wrappedIn, wrappedOut)}, input, output)
	trade, err := NewTrade(tradeType, []*Swap{{
		Route:        route,
		InputAmount:  amount(t, input, in),
		OutputAmount: amount(t, output, out),
	}}, entities.NewPercent(1, 1000))
	require.NoError(t, err)
	return trade
}

// v3Trade builds a V3 trade over the given pools with one swap.
func v3Trade(t *testing.T, tradeType TradeType, pools []*Pool, input, output entities.Currency, in, out int64, priceImpact entities.Percent) *Trade {
	t.Helper()
	route := mustRoute(t, ProtocolV3, pools, input, output)
	trade, err := NewTrade(tradeType, []*Swap{{
		Route:        route,
		InputAmount:  amount(t, input, in),
		OutputAmount: amount(t, output, out),
	}}, priceImpact)
	require.NoError(t, err)
	return trade
}

func defaultOptions() SwapOptions {
	return SwapOptions{
		SlippageTolerance: testTolerance,
		Deadline:          testDeadline,
	}
}

// decodeCall resolves one encoded call back into its function name and
// unpacked arguments.
func decodeCall(t *testing.T, data []byte) (string, []interface{}) {
	t.Helper()
	method, err := routerabi.Router.MethodById(data[:4])
	require.NoError(t, err)
	args, err := method.Inputs.Unpack(data[4:])
	require.NoError(t, err)
	return method.Name, args
}

// unrollCalldata splits a compile result into its constituent calls,
// unwrapping multicall batching when present.
func unrollCalldata(t *testing.T, data []byte) [][]byte {
	t.Helper()
	name, args := decodeCall(t, data)
	if name != "multicall" {
		return [][]byte{data}
	}
	return args[0].([][]byte)
}

// callNames maps a compile result to its ordered function-name sequence.
func callNames(t *testing.T, data []byte) []string {
	t.Helper()
	calls := unrollCalldata(t, data)
	names := make([]string, len(calls))
	for i, call := range calls {
		names[i], _ = decodeCall(t, call)
	}
	return names
}
