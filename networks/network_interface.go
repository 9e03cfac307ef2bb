package networks

import (
	"time"
)

// Network describes one chain the proxy layer can talk to. The chain id is
// what keys deployment records inside an interface description, so every
// Network implementation must report the canonical id of its chain.
type Network interface {
	GetName() string
	GetChainID() uint64
	GetAlternativeNames() []string
	GetNativeTokenSymbol() string
	GetNativeTokenDecimal() uint64
	GetBlockTime() time.Duration

	// GetNodeVariableName returns the env var that overrides the default
	// JSON-RPC nodes for this network.
	GetNodeVariableName() string
	GetDefaultNodes() map[string]string

	// GetSubscriptionNodeVariableName returns the env var that overrides the
	// default websocket endpoint used for event subscriptions.
	GetSubscriptionNodeVariableName() string
	GetDefaultSubscriptionNode() string
}
