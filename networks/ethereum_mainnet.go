package networks

import (
	"time"
)

var EthereumMainnet Network = ethereumMainnet{}

type ethereumMainnet struct{}

func (n ethereumMainnet) GetName() string {
	return "mainnet"
}

func (n ethereumMainnet) GetChainID() uint64 {
	return 1
}

func (n ethereumMainnet) GetAlternativeNames() []string {
	return []string{"ethereum"}
}

func (n ethereumMainnet) GetNativeTokenSymbol() string {
	return "ETH"
}

func (n ethereumMainnet) GetNativeTokenDecimal() uint64 {
	return 18
}

func (n ethereumMainnet) GetBlockTime() time.Duration {
	return 12 * time.Second
}

func (n ethereumMainnet) GetNodeVariableName() string {
	return "ETHEREUM_MAINNET_NODE"
}

func (n ethereumMainnet) GetDefaultNodes() map[string]string {
	return map[string]string{
		"mainnet-llama":  "https://eth.llamarpc.com",
		"mainnet-public": "https://ethereum-rpc.publicnode.com",
	}
}

func (n ethereumMainnet) GetSubscriptionNodeVariableName() string {
	return "ETHEREUM_MAINNET_SUBSCRIPTION_NODE"
}

func (n ethereumMainnet) GetDefaultSubscriptionNode() string {
	return "wss://ethereum-rpc.publicnode.com"
}
