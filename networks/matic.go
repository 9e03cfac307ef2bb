package networks

import (
	"time"
)

var Matic Network = matic{}

type matic struct{}

func (n matic) GetName() string {
	return "polygon"
}

func (n matic) GetChainID() uint64 {
	return 137
}

func (n matic) GetAlternativeNames() []string {
	return []string{"matic"}
}

func (n matic) GetNativeTokenSymbol() string {
	return "POL"
}

func (n matic) GetNativeTokenDecimal() uint64 {
	return 18
}

func (n matic) GetBlockTime() time.Duration {
	return 2 * time.Second
}

func (n matic) GetNodeVariableName() string {
	return "POLYGON_NODE"
}

func (n matic) GetDefaultNodes() map[string]string {
	return map[string]string{
		"polygon-rpc":    "https://polygon-rpc.com",
		"polygon-public": "https://polygon-bor-rpc.publicnode.com",
	}
}

func (n matic) GetSubscriptionNodeVariableName() string {
	return "POLYGON_SUBSCRIPTION_NODE"
}

func (n matic) GetDefaultSubscriptionNode() string {
	return "wss://polygon-bor-rpc.publicnode.com"
}
