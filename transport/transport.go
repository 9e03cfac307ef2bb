package transport

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// CallParams carries everything a node needs to execute or estimate one
// contract call. Value is nil when no native token is attached. Gas of 0
// lets the node pick its own limit (estimation and plain reads).
type CallParams struct {
	From  common.Address
	To    common.Address
	Value *big.Int
	Gas   uint64
	Data  []byte
}

// RequestTransport is the request/response side of the boundary: gas
// estimation, reads and transaction submission all go through it.
//
// Send submits the transaction, invokes onHashKnown as soon as the node
// reports the transaction hash (before mining) and then blocks until the
// receipt is available or ctx is done. The receipt is returned regardless
// of its on-chain status; interpreting the status field is the caller's
// job.
type RequestTransport interface {
	EstimateGas(ctx context.Context, params CallParams) (uint64, error)
	Call(ctx context.Context, params CallParams) ([]byte, error)
	Send(ctx context.Context, params CallParams, onHashKnown func(common.Hash)) (*types.Receipt, error)
}

// EventQuery selects logs of one contract. Topics follows the JSON-RPC
// position-wise convention: Topics[0] is the event signature, later
// positions constrain indexed arguments, an empty position matches any
// value.
type EventQuery struct {
	Contract common.Address
	Topics   [][]common.Hash
}

// SubscriptionTransport is the persistent side of the boundary used for
// live event delivery. Subscribe returns an opaque subscription id.
// ClearSubscriptions drops every subscription this transport currently
// tracks and reports an error when there is nothing to clear.
type SubscriptionTransport interface {
	Subscribe(ctx context.Context, query EventQuery, onLog func(types.Log), onError func(error)) (string, error)
	ClearSubscriptions() error
}
