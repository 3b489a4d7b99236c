// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package routerabi carries the settlement router's ABI fragments and the
// packing service over them. The fragments cover the V2-generation swap
// functions, the V3-generation swap functions, periphery payments
// (wrap/unwrap/sweep/refund/pull), self-permit, approve-and-call with
// position minting, and multicall batching.
package routerabi

import (
	"strings"

	"github.com/luxfi/geth/accounts/abi"
)

const routerJSON = `[
{"type":"function","stateMutability":"payable","name":"swapExactETHForTokens","inputs":[{"name":"amountOutMin","type":"uint256"},{"name":"path","type":"address[]"},{"name":"to","type":"address"},{"name":"deadline","type":"uint256"}]},
{"type":"function","stateMutability":"nonpayable","name":"swapTokensForExactETH","inputs":[{"name":"amountOut","type":"uint256"},{"name":"amountInMax","type":"uint256"},{"name":"path","type":"address[]"},{"name":"to","type":"address"},{"name":"deadline","type":"uint256"}]},
{"type":"function","stateMutability":"nonpayable","name":"swapExactTokensForETH","inputs":[{"name":"amountIn","type":"uint256"},{"name":"amountOutMin","type":"uint256"},{"name":"path","type":"address[]"},{"name":"to","type":"address"},{"name":"deadline","type":"uint256"}]},
{"type":"function","stateMutability":"payable","name":"swapETHForExactTokens","inputs":[{"name":"amountOut","type":"uint256"},{"name":"path","type":"address[]"},{"name":"to","type":"address"},{"name":"deadline","type":"uint256"}]},
{"type":"function","stateMutability":"nonpayable","name":"swapExactTokensForTokens","inputs":[{"name":"amountIn","type":"uint256"},{"name":"amountOutMin","type":"uint256"},{"name":"path","type":"address[]"},{"name":"to","type":"address"},{"name":"deadline","type":"uint256"}]},
{"type":"function","stateMutability":"nonpayable","name":"swapTokensForExactTokens","inputs":[{"name":"amountOut","type":"uint256"},{"name":"amountInMax","type":"uint256"},{"name":"path","type":"address[]"},{"name":"to","type":"address"},{"name":"deadline","type":"uint256"}]},
{"type":"function","stateMutability":"payable","name":"exactInputSingle","inputs":[{"name":"params","type":"tuple","components":[{"name":"tokenIn","type":"address"},{"name":"tokenOut","type":"address"},{"name":"fee","type":"uint24"},{"name":"recipient","type":"address"},{"name":"deadline","type":"uint256"},{"name":"amountIn","type":"uint256"},{"name":"amountOutMinimum","type":"uint256"},{"name":"sqrtPriceLimitX96","type":"uint160"}]}]},
{"type":"function","stateMutability":"payable","name":"exactInput","inputs":[{"name":"params","type":"tuple","components":[{"name":"path","type":"bytes"},{"name":"recipient","type":"address"},{"name":"deadline","type":"uint256"},{"name":"amountIn","type":"uint256"},{"name":"amountOutMinimum","type":"uint256"}]}]},
{"type":"function","stateMutability":"payable","name":"exactOutputSingle","inputs":[{"name":"params","type":"tuple","components":[{"name":"tokenIn","type":"address"},{"name":"tokenOut","type":"address"},{"name":"fee","type":"uint24"},{"name":"recipient","type":"address"},{"name":"deadline","type":"uint256"},{"name":"amountOut","type":"uint256"},{"name":"amountInMaximum","type":"uint256"},{"name":"sqrtPriceLimitX96","type":"uint160"}]}]},
{"type":"function","stateMutability":"payable","name":"exactOutput","inputs":[{"name":"params","type":"tuple","components":[{"name":"path","type":"bytes"},{"name":"recipient","type":"address"},{"name":"deadline","type":"uint256"},{"name":"amountOut","type":"uint256"},{"name":"amountInMaximum","type":"uint256"}]}]},
{"type":"function","stateMutability":"payable","name":"unwrapWETH9","inputs":[{"name":"amountMinimum","type":"uint256"},{"name":"recipient","type":"address"}]},
{"type":"function","stateMutability":"payable","name":"unwrapWETH9WithFee","inputs":[{"name":"amountMinimum","type":"uint256"},{"name":"recipient","type":"address"},{"name":"feeBips","type":"uint256"},{"name":"feeRecipient","type":"address"}]},
{"type":"function","stateMutability":"payable","name":"sweepToken","inputs":[{"name":"token","type":"address"},{"name":"amountMinimum","type":"uint256"},{"name":"recipient","type":"address"}]},
{"type":"function","stateMutability":"payable","name":"sweepTokenWithFee","inputs":[{"name":"token","type":"address"},{"name":"amountMinimum","type":"uint256"},{"name":"recipient","type":"address"},{"name":"feeBips","type":"uint256"},{"name":"feeRecipient","type":"address"}]},
{"type":"function","stateMutability":"payable","name":"refundETH","inputs":[]},
{"type":"function","stateMutability":"payable","name":"wrapETH","inputs":[{"name":"value","type":"uint256"}]},
{"type":"function","stateMutability":"payable","name":"pull","inputs":[{"name":"token","type":"address"},{"name":"value","type":"uint256"}]},
{"type":"function","stateMutability":"payable","name":"selfPermit","inputs":[{"name":"token","type":"address"},{"name":"value","type":"uint256"},{"name":"deadline","type":"uint256"},{"name":"v","type":"uint8"},{"name":"r","type":"bytes32"},{"name":"s","type":"bytes32"}]},
{"type":"function","stateMutability":"payable","name":"selfPermitAllowed","inputs":[{"name":"token","type":"address"},{"name":"nonce","type":"uint256"},{"name":"expiry","type":"uint256"},{"name":"v","type":"uint8"},{"name":"r","type":"bytes32"},{"name":"s","type":"bytes32"}]},
{"type":"function","stateMutability":"payable","name":"approveMax","inputs":[{"name":"token","type":"address"}]},
{"type":"function","stateMutability":"payable","name":"approveMaxMinusOne","inputs":[{"name":"token","type":"address"}]},
{"type":"function","stateMutability":"payable","name":"approveZeroThenMax","inputs":[{"name":"token","type":"address"}]},
{"type":"function","stateMutability":"payable","name":"approveZeroThenMaxMinusOne","inputs":[{"name":"token","type":"address"}]},
{"type":"function","stateMutability":"payable","name":"mint","inputs":[{"name":"params","type":"tuple","components":[{"name":"token0","type":"address"},{"name":"token1","type":"address"},{"name":"fee","type":"uint24"},{"name":"tickLower","type":"int24"},{"name":"tickUpper","type":"int24"},{"name":"amount0Min","type":"uint256"},{"name":"amount1Min","type":"uint256"},{"name":"recipient","type":"address"}]}]},
{"type":"function","stateMutability":"payable","name":"increaseLiquidity","inputs":[{"name":"params","type":"tuple","components":[{"name":"token0","type":"address"},{"name":"token1","type":"address"},{"name":"tokenId","type":"uint256"},{"name":"amount0Min","type":"uint256"},{"name":"amount1Min","type":"uint256"}]}]},
{"type":"function","stateMutability":"payable","name":"multicall","inputs":[{"name":"data","type":"bytes[]"}]}
]`

// Router is the parsed router interface. Parsing happens once at load.
var Router abi.ABI

func init() {
	parsed, err := abi.JSON(strings.NewReader(routerJSON))
	if err != nil {
		panic(err)
	}
	Router = parsed
}

// Pack encodes a router call: four-byte selector followed by the ABI-encoded
// arguments.
func Pack(name string, args ...interface{}) ([]byte, error) {
	return Router.Pack(name, args...)
}

// Selector returns the four-byte selector of a router function.
func Selector(name string) [4]byte {
	var sel [4]byte
	copy(sel[:], Router.Methods[name].ID)
	return sel
}
