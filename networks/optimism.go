package networks

import (
	"time"
)

var Optimism Network = optimism{}

type optimism struct{}

func (n optimism) GetName() string {
	return "optimism"
}

func (n optimism) GetChainID() uint64 {
	return 10
}

func (n optimism) GetAlternativeNames() []string {
	return []string{"op-mainnet"}
}

func (n optimism) GetNativeTokenSymbol() string {
	return "ETH"
}

func (n optimism) GetNativeTokenDecimal() uint64 {
	return 18
}

func (n optimism) GetBlockTime() time.Duration {
	return 2 * time.Second
}

func (n optimism) GetNodeVariableName() string {
	return "OPTIMISM_NODE"
}

func (n optimism) GetDefaultNodes() map[string]string {
	return map[string]string{
		"optimism-official": "https://mainnet.optimism.io",
		"optimism-public":   "https://optimism-rpc.publicnode.com",
	}
}

func (n optimism) GetSubscriptionNodeVariableName() string {
	return "OPTIMISM_SUBSCRIPTION_NODE"
}

func (n optimism) GetDefaultSubscriptionNode() string {
	return "wss://optimism-rpc.publicnode.com"
}
