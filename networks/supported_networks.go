package networks

import (
	"fmt"
)

// Insert more Network implementations here to support more chains.
var supportedNetworks = []Network{
	EthereumMainnet,
	Sepolia,
	BSCMainnet,
	Matic,
	BaseMainnet,
	ArbitrumOne,
	Optimism,
}

var globalSupportedNetworks = newSupportedNetworks()

var ErrNetworkNotFound = fmt.Errorf("network not found")

type registry struct {
	networks     map[string]Network
	networksByID map[uint64]Network
}

func (r *registry) getSupportedNetworkNames() []string {
	res := []string{}
	for _, n := range r.networks {
		res = append(res, n.GetName())
		res = append(res, n.GetAlternativeNames()...)
	}
	return res
}

func (r *registry) getNetworkByID(id uint64) (Network, error) {
	res, found := r.networksByID[id]
	if !found {
		return nil, fmt.Errorf("network id %d: %w", id, ErrNetworkNotFound)
	}
	return res, nil
}

func (r *registry) getNetwork(name string) (Network, error) {
	res, found := r.networks[name]
	if !found {
		return nil, fmt.Errorf("network name '%s': %w", name, ErrNetworkNotFound)
	}
	return res, nil
}

func newSupportedNetworks() *registry {
	result := registry{
		map[string]Network{},
		map[uint64]Network{},
	}
	for _, n := range supportedNetworks {
		if _, found := result.networks[n.GetName()]; found {
			panic(fmt.Errorf("network with name or alternative name of '%s' already exists", n.GetName()))
		}
		result.networks[n.GetName()] = n
		result.networksByID[n.GetChainID()] = n
		for _, an := range n.GetAlternativeNames() {
			if _, found := result.networks[an]; found {
				panic(fmt.Errorf("network with name or alternative name of '%s' already exists", an))
			}
			result.networks[an] = n
		}
	}
	return &result
}

func GetSupportedNetworks() []Network {
	res := []Network{}
	for _, n := range globalSupportedNetworks.networksByID {
		res = append(res, n)
	}
	return res
}

func GetNetwork(name string) (Network, error) {
	return globalSupportedNetworks.getNetwork(name)
}

func GetNetworkByID(id uint64) (Network, error) {
	return globalSupportedNetworks.getNetworkByID(id)
}

func GetSupportedNetworkNames() []string {
	return globalSupportedNetworks.getSupportedNetworkNames()
}

// AddNetwork registers a custom network for the rest of the process lifetime.
func AddNetwork(network Network) error {
	if _, found := globalSupportedNetworks.networks[network.GetName()]; found {
		return fmt.Errorf("network with name '%s' already exists", network.GetName())
	}
	globalSupportedNetworks.networks[network.GetName()] = network
	globalSupportedNetworks.networksByID[network.GetChainID()] = network
	for _, an := range network.GetAlternativeNames() {
		if _, found := globalSupportedNetworks.networks[an]; found {
			return fmt.Errorf("network with alternative name '%s' already exists", an)
		}
		globalSupportedNetworks.networks[an] = network
	}
	return nil
}
