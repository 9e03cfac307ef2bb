package networks_test

import (
	"errors"
	"testing"

	"github.com/tranvictor/ethproxy/networks"
)

func TestGetNetworkByNameAndAlias(t *testing.T) {
	cases := map[string]uint64{
		"mainnet":  1,
		"ethereum": 1,
		"sepolia":  11155111,
		"bsc":      56,
		"matic":    137,
		"polygon":  137,
		"base":     8453,
		"arbitrum": 42161,
		"optimism": 10,
	}
	for name, chainID := range cases {
		network, err := networks.GetNetwork(name)
		if err != nil {
			t.Fatalf("%s: %s", name, err)
		}
		if network.GetChainID() != chainID {
			t.Errorf("%s: expected chain id %d, got %d", name, chainID, network.GetChainID())
		}
	}

	if _, err := networks.GetNetwork("hyperspace"); !errors.Is(err, networks.ErrNetworkNotFound) {
		t.Fatalf("expected ErrNetworkNotFound, got %v", err)
	}
}

func TestGetNetworkByID(t *testing.T) {
	network, err := networks.GetNetworkByID(8453)
	if err != nil {
		t.Fatalf("lookup: %s", err)
	}
	if network.GetName() != "base" {
		t.Fatalf("expected base, got %s", network.GetName())
	}
	if _, err := networks.GetNetworkByID(999_999); !errors.Is(err, networks.ErrNetworkNotFound) {
		t.Fatalf("expected ErrNetworkNotFound, got %v", err)
	}
}

func TestAddCustomNetwork(t *testing.T) {
	doc := `{
		"name": "devnet",
		"chain_id": 31337,
		"native_token_symbol": "ETH",
		"native_token_decimal": 18,
		"block_time_second": 1,
		"default_nodes": {"local": "http://localhost:8545"}
	}`
	network, err := networks.NewNetworkFromJSON([]byte(doc))
	if err != nil {
		t.Fatalf("parse: %s", err)
	}
	if err := networks.AddNetwork(network); err != nil {
		t.Fatalf("add: %s", err)
	}

	got, err := networks.GetNetworkByID(31337)
	if err != nil {
		t.Fatalf("lookup: %s", err)
	}
	if got.GetName() != "devnet" {
		t.Fatalf("expected devnet, got %s", got.GetName())
	}
	if got.GetDefaultNodes()["local"] != "http://localhost:8545" {
		t.Fatal("expected the node map to round trip")
	}
}
