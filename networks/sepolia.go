package networks

import (
	"time"
)

var Sepolia Network = sepolia{}

type sepolia struct{}

func (n sepolia) GetName() string {
	return "sepolia"
}

func (n sepolia) GetChainID() uint64 {
	return 11155111
}

func (n sepolia) GetAlternativeNames() []string {
	return []string{}
}

func (n sepolia) GetNativeTokenSymbol() string {
	return "ETH"
}

func (n sepolia) GetNativeTokenDecimal() uint64 {
	return 18
}

func (n sepolia) GetBlockTime() time.Duration {
	return 12 * time.Second
}

func (n sepolia) GetNodeVariableName() string {
	return "SEPOLIA_NODE"
}

func (n sepolia) GetDefaultNodes() map[string]string {
	return map[string]string{
		"sepolia-public": "https://ethereum-sepolia-rpc.publicnode.com",
	}
}

func (n sepolia) GetSubscriptionNodeVariableName() string {
	return "SEPOLIA_SUBSCRIPTION_NODE"
}

func (n sepolia) GetDefaultSubscriptionNode() string {
	return "wss://ethereum-sepolia-rpc.publicnode.com"
}
