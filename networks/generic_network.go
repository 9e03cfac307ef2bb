package networks

import (
	"encoding/json"
	"time"
)

// GenericNetworkConfig is the JSON representation of a user-defined network.
type GenericNetworkConfig struct {
	Name                string            `json:"name"`
	ChainID             uint64            `json:"chain_id"`
	AlternativeNames    []string          `json:"alternative_names"`
	NativeTokenSymbol   string            `json:"native_token_symbol"`
	NativeTokenDecimal  uint64            `json:"native_token_decimal"`
	BlockTimeSecond     uint64            `json:"block_time_second"`
	NodeVariableName    string            `json:"node_variable_name"`
	DefaultNodes        map[string]string `json:"default_nodes"`
	SubNodeVariableName string            `json:"sub_node_variable_name"`
	DefaultSubNode      string            `json:"default_sub_node"`
}

// GenericNetwork is a Network built from a GenericNetworkConfig. It lets
// callers register chains this package doesn't ship built in.
type GenericNetwork struct {
	config GenericNetworkConfig
}

func NewGenericNetwork(config GenericNetworkConfig) *GenericNetwork {
	return &GenericNetwork{config: config}
}

func NewNetworkFromJSON(content []byte) (Network, error) {
	config := GenericNetworkConfig{}
	if err := json.Unmarshal(content, &config); err != nil {
		return nil, err
	}
	return NewGenericNetwork(config), nil
}

func (n *GenericNetwork) GetName() string {
	return n.config.Name
}

func (n *GenericNetwork) GetChainID() uint64 {
	return n.config.ChainID
}

func (n *GenericNetwork) GetAlternativeNames() []string {
	return n.config.AlternativeNames
}

func (n *GenericNetwork) GetNativeTokenSymbol() string {
	return n.config.NativeTokenSymbol
}

func (n *GenericNetwork) GetNativeTokenDecimal() uint64 {
	return n.config.NativeTokenDecimal
}

func (n *GenericNetwork) GetBlockTime() time.Duration {
	return time.Duration(n.config.BlockTimeSecond) * time.Second
}

func (n *GenericNetwork) GetNodeVariableName() string {
	return n.config.NodeVariableName
}

func (n *GenericNetwork) GetDefaultNodes() map[string]string {
	return n.config.DefaultNodes
}

func (n *GenericNetwork) GetSubscriptionNodeVariableName() string {
	return n.config.SubNodeVariableName
}

func (n *GenericNetwork) GetDefaultSubscriptionNode() string {
	return n.config.DefaultSubNode
}

func (n *GenericNetwork) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.config)
}
