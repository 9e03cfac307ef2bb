package networks

import (
	"time"
)

var BSCMainnet Network = bscMainnet{}

type bscMainnet struct{}

func (n bscMainnet) GetName() string {
	return "bsc"
}

func (n bscMainnet) GetChainID() uint64 {
	return 56
}

func (n bscMainnet) GetAlternativeNames() []string {
	return []string{"binance"}
}

func (n bscMainnet) GetNativeTokenSymbol() string {
	return "BNB"
}

func (n bscMainnet) GetNativeTokenDecimal() uint64 {
	return 18
}

func (n bscMainnet) GetBlockTime() time.Duration {
	return 3 * time.Second
}

func (n bscMainnet) GetNodeVariableName() string {
	return "BSC_MAINNET_NODE"
}

func (n bscMainnet) GetDefaultNodes() map[string]string {
	return map[string]string{
		"binance":  "https://bsc-dataseed.binance.org",
		"defibit":  "https://bsc-dataseed1.defibit.io",
		"ninicoin": "https://bsc-dataseed1.ninicoin.io",
	}
}

func (n bscMainnet) GetSubscriptionNodeVariableName() string {
	return "BSC_MAINNET_SUBSCRIPTION_NODE"
}

func (n bscMainnet) GetDefaultSubscriptionNode() string {
	return "wss://bsc-rpc.publicnode.com"
}
