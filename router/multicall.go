// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package router

import (
	"github.com/luxfi/routersdk/routerabi"
)

// encodeMulticall assembles the final transaction input: a single call is
// returned bare, several are batched through multicall in emission order.
func encodeMulticall(calldatas [][]byte) ([]byte, error) {
	if len(calldatas) == 1 {
		return calldatas[0], nil
	}
	return routerabi.Pack("multicall", calldatas)
}
