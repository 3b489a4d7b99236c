// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package router

import (
	"github.com/luxfi/routersdk/entities"
	"github.com/luxfi/routersdk/routerabi"
)

// encodePermit encodes a pre-signed token permit as a router self-permit
// call. The token must be an ERC20; native currencies cannot be permitted.
func encodePermit(token entities.Currency, permit *PermitOptions) ([]byte, error) {
	switch permit.Kind {
	case PermitStandard:
		if permit.Value == nil || permit.Deadline == nil {
			return nil, ErrInvalidPermit
		}
		return routerabi.Pack("selfPermit",
			token.Address, permit.Value, permit.Deadline, permit.V, permit.R, permit.S)
	case PermitAllowed:
		if permit.Nonce == nil || permit.Expiry == nil {
			return nil, ErrInvalidPermit
		}
		return routerabi.Pack("selfPermitAllowed",
			token.Address, permit.Nonce, permit.Expiry, permit.V, permit.R, permit.S)
	default:
		return nil, ErrInvalidPermit
	}
}
