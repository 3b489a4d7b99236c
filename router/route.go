// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package router

import (
	"github.com/luxfi/geth/common"
	"github.com/luxfi/routersdk/entities"
)

// Route is an ordered pool path between an input and an output currency,
// tagged with the protocol generation it executes on. Immutable once
// constructed.
type Route struct {
	Protocol Protocol
	Pools    []*Pool
	Input    entities.Currency
	Output   entities.Currency

	// tokenPath is the wrapped token sequence along the pools, derived and
	// validated at construction.
	tokenPath []entities.Currency
}

// NewRoute validates path continuity and protocol consistency. Input and
// output may be native; the path itself runs over wrapped tokens.
func NewRoute(protocol Protocol, pools []*Pool, input, output entities.Currency) (*Route, error) {
	if len(pools) == 0 {
		return nil, ErrEmptyRoute
	}
	switch protocol {
	case ProtocolV2, ProtocolV3:
		for _, pool := range pools {
			if pool.Protocol != protocol {
				return nil, ErrMixedPoolInRoute
			}
		}
	case ProtocolMixed:
	default:
		return nil, ErrUnsupportedProtocol
	}

	wrappedIn, err := input.Wrapped()
	if err != nil {
		return nil, err
	}
	wrappedOut, err := output.Wrapped()
	if err != nil {
		return nil, err
	}
	if !pools[0].InvolvesToken(wrappedIn) {
		return nil, ErrRouteInputMismatch
	}

	tokenPath := make([]entities.Currency, 0, len(pools)+1)
	tokenPath = append(tokenPath, wrappedIn)
	current := wrappedIn
	seen := make(map[[32]byte]struct{}, len(pools))
	for _, pool := range pools {
		id := pool.ID()
		if _, dup := seen[id]; dup {
			return nil, ErrDuplicatePool
		}
		seen[id] = struct{}{}

		next, err := pool.OutputOf(current)
		if err != nil {
			return nil, ErrRouteDiscontinuity
		}
		tokenPath = append(tokenPath, next)
		current = next
	}
	if !current.Equal(wrappedOut) {
		return nil, ErrRouteOutputMismatch
	}

	return &Route{
		Protocol:  protocol,
		Pools:     pools,
		Input:     input,
		Output:    output,
		tokenPath: tokenPath,
	}, nil
}

// TokenPath returns the wrapped token sequence along the route.
func (r *Route) TokenPath() []entities.Currency {
	return r.tokenPath
}

// PathAddresses returns the token addresses along the route, the shape the
// V2 swap functions take.
func (r *Route) PathAddresses() []common.Address {
	addrs := make([]common.Address, len(r.tokenPath))
	for i, t := range r.tokenPath {
		addrs[i] = t.Address
	}
	return addrs
}
