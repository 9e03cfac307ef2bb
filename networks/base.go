package networks

import (
	"time"
)

var BaseMainnet Network = baseMainnet{}

type baseMainnet struct{}

func (n baseMainnet) GetName() string {
	return "base"
}

func (n baseMainnet) GetChainID() uint64 {
	return 8453
}

func (n baseMainnet) GetAlternativeNames() []string {
	return []string{}
}

func (n baseMainnet) GetNativeTokenSymbol() string {
	return "ETH"
}

func (n baseMainnet) GetNativeTokenDecimal() uint64 {
	return 18
}

func (n baseMainnet) GetBlockTime() time.Duration {
	return 2 * time.Second
}

func (n baseMainnet) GetNodeVariableName() string {
	return "BASE_MAINNET_NODE"
}

func (n baseMainnet) GetDefaultNodes() map[string]string {
	return map[string]string{
		"base-org":    "https://mainnet.base.org",
		"base-public": "https://base-rpc.publicnode.com",
	}
}

func (n baseMainnet) GetSubscriptionNodeVariableName() string {
	return "BASE_MAINNET_SUBSCRIPTION_NODE"
}

func (n baseMainnet) GetDefaultSubscriptionNode() string {
	return "wss://base-rpc.publicnode.com"
}
