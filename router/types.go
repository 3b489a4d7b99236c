// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package router compiles already-computed swap trades into the call
// parameters a settlement router executes: it normalizes the accepted trade
// shapes into single-protocol legs, encodes one call per leg, applies the
// custody and settlement policy, and optionally extends the transaction with
// a liquidity-position deposit fed by the swap output.
package router

import (
	"errors"
	"math/big"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/common/hexutil"
	"github.com/luxfi/routersdk/entities"
)

// Protocol tags the exchange-protocol generation a route traverses.
type Protocol uint8

const (
	ProtocolV2 Protocol = iota + 1
	ProtocolV3
	ProtocolMixed
)

func (p Protocol) String() string {
	switch p {
	case ProtocolV2:
		return "V2"
	case ProtocolV3:
		return "V3"
	case ProtocolMixed:
		return "MIXED"
	default:
		return "UNKNOWN"
	}
}

// TradeType fixes which side of a trade is exact; the other side floats
// within the slippage tolerance.
type TradeType uint8

const (
	ExactInput TradeType = iota
	ExactOutput
)

// Recipient sentinels understood by the settlement router.
var (
	// MsgSender directs output to the transaction sender.
	MsgSender = common.HexToAddress("0x0000000000000000000000000000000000000001")
	// AddressThis directs output to the router itself for custody.
	AddressThis = common.HexToAddress("0x0000000000000000000000000000000000000002")
)

// refundPriceImpactThreshold is the price impact above which a non-V2 leg is
// treated as at risk of a partial fill, forcing a native refund call.
var refundPriceImpactThreshold = entities.NewPercent(50, 100)

// Errors - trade validation
var (
	ErrNoTrades              = errors.New("no trades to compile")
	ErrUnsupportedProtocol   = errors.New("unsupported protocol")
	ErrTokenInMismatch       = errors.New("trades have different input currencies")
	ErrTokenOutMismatch      = errors.New("trades have different output currencies")
	ErrTradeTypeMismatch     = errors.New("trades have different trade types")
	ErrMixedExactOutput      = errors.New("mixed-route trades support exact input only")
	ErrEmptyTrade            = errors.New("trade has no swaps")
	ErrSplitV2Trade          = errors.New("v2 trade must have exactly one swap")
	ErrProtocolMismatch      = errors.New("swaps in one trade must share a protocol")
	ErrTradeCurrencyMismatch = errors.New("swaps in one trade must share currencies")
)

// Errors - route and pool construction
var (
	ErrEmptyRoute          = errors.New("route has no pools")
	ErrRouteDiscontinuity  = errors.New("route path is not continuous")
	ErrRouteInputMismatch  = errors.New("route input not in first pool")
	ErrRouteOutputMismatch = errors.New("route output not at end of path")
	ErrNativePoolToken     = errors.New("pool tokens must be wrapped, not native")
	ErrIdenticalTokens     = errors.New("pool tokens are identical")
	ErrTokenNotInPool      = errors.New("token not in pool")
	ErrMixedPoolInRoute    = errors.New("single-protocol route contains foreign pool")
	ErrDuplicatePool       = errors.New("route traverses a pool twice")
)

// Errors - compile options
var (
	ErrInvalidSlippage      = errors.New("invalid slippage tolerance")
	ErrInvalidFee           = errors.New("invalid fee options")
	ErrMissingDeadline      = errors.New("deadline is required")
	ErrInvalidRecipient     = errors.New("invalid recipient address")
	ErrNonTokenPermit       = errors.New("input permit requires a token currency")
	ErrNonTokenPermitOutput = errors.New("output permit requires a token currency")
	ErrInvalidPermit        = errors.New("invalid permit options")
	ErrInvalidApprovalType  = errors.New("invalid approval type")
)

// Errors - positions
var (
	ErrPositionPoolProtocol  = errors.New("position pool must be a v3 pool")
	ErrInvalidTickRange      = errors.New("invalid tick range")
	ErrPositionTokenMismatch = errors.New("position pool does not involve trade currencies")
	ErrAddLiquidityTarget    = errors.New("exactly one of recipient or token id must be set")
)

// MethodParameters is the compile output: the transaction input data and the
// native value to attach.
type MethodParameters struct {
	Calldata hexutil.Bytes `json:"calldata"`
	Value    *hexutil.Big  `json:"value"`
}

// FeeOptions takes a cut of the output, expressed as a percent forwarded
// on-chain in bips.
type FeeOptions struct {
	Fee       entities.Percent
	Recipient common.Address
}

// PermitKind selects between the standard EIP-2612 permit and the DAI-style
// allowed permit.
type PermitKind uint8

const (
	PermitStandard PermitKind = iota
	PermitAllowed
)

// PermitOptions carries a pre-signed token permit. Standard permits use
// Value/Deadline, allowed permits use Nonce/Expiry.
type PermitOptions struct {
	Kind     PermitKind
	Value    *big.Int
	Deadline *big.Int
	Nonce    *big.Int
	Expiry   *big.Int
	V        uint8
	R        [32]byte
	S        [32]byte
}

// SwapOptions configures one compile call. Immutable for the call's duration.
type SwapOptions struct {
	SlippageTolerance entities.Percent
	// Recipient of the swap output. Nil means the transaction sender.
	Recipient        *common.Address
	Deadline         *big.Int
	InputTokenPermit *PermitOptions
	Fee              *FeeOptions
}

// SwapAndAddOptions extends SwapOptions for the swap-and-deposit flow.
type SwapAndAddOptions struct {
	SwapOptions
	OutputTokenPermit *PermitOptions
}

// ApprovalType selects how the router approves the position manager for a
// token it custodies. NotRequired skips the approval call.
type ApprovalType uint8

const (
	ApprovalNotRequired ApprovalType = iota
	ApprovalMax
	ApprovalMaxMinusOne
	ApprovalZeroThenMax
	ApprovalZeroThenMaxMinusOne
)

// AddLiquidityOptions targets the deposit: a fresh mint to Recipient, or an
// increase of the existing position TokenID. Exactly one must be set.
type AddLiquidityOptions struct {
	Recipient *common.Address
	TokenID   *big.Int
}
