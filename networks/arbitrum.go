package networks

import (
	"time"
)

var ArbitrumOne Network = arbitrumOne{}

type arbitrumOne struct{}

func (n arbitrumOne) GetName() string {
	return "arbitrum"
}

func (n arbitrumOne) GetChainID() uint64 {
	return 42161
}

func (n arbitrumOne) GetAlternativeNames() []string {
	return []string{"arbitrum-one"}
}

func (n arbitrumOne) GetNativeTokenSymbol() string {
	return "ETH"
}

func (n arbitrumOne) GetNativeTokenDecimal() uint64 {
	return 18
}

func (n arbitrumOne) GetBlockTime() time.Duration {
	return 1 * time.Second
}

func (n arbitrumOne) GetNodeVariableName() string {
	return "ARBITRUM_ONE_NODE"
}

func (n arbitrumOne) GetDefaultNodes() map[string]string {
	return map[string]string{
		"arbitrum-official": "https://arb1.arbitrum.io/rpc",
		"arbitrum-public":   "https://arbitrum-one-rpc.publicnode.com",
	}
}

func (n arbitrumOne) GetSubscriptionNodeVariableName() string {
	return "ARBITRUM_ONE_SUBSCRIPTION_NODE"
}

func (n arbitrumOne) GetDefaultSubscriptionNode() string {
	return "wss://arbitrum-one-rpc.publicnode.com"
}
