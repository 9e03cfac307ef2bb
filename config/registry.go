package config

import (
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/tranvictor/ethproxy/networks"
	"github.com/tranvictor/ethproxy/transport"
)

// Registry is the shared configuration every proxy reads: which network
// deployment records are keyed by, which account signs on the node side,
// the two transport handles, and the two transaction lifecycle hooks.
//
// A Registry value is treated as an immutable snapshot: proxies capture it
// at construction and never observe later Setup calls. The two transports
// may be the same object when one endpoint serves both duties.
type Registry struct {
	Network               networks.Network
	Account               common.Address
	RequestTransport      transport.RequestTransport
	SubscriptionTransport transport.SubscriptionTransport

	// OnTxHashKnown fires as soon as a submitted transaction's hash is
	// known, before mining. OnTxConfirmed fires once the receipt is
	// available, whatever its status. Either may be nil.
	OnTxHashKnown func(common.Hash)
	OnTxConfirmed func(*types.Receipt)
}

var (
	mu      sync.RWMutex
	current Registry
	isSetup bool
)

// Setup installs the process-wide registry. It must be called before any
// proxy operation and replaces the previous registry wholesale; proxies
// built from the old one keep their snapshot.
func Setup(r Registry) error {
	if r.Network == nil {
		return fmt.Errorf("registry setup: network is required")
	}
	if r.RequestTransport == nil {
		return fmt.Errorf("registry setup: request transport is required")
	}
	mu.Lock()
	defer mu.Unlock()
	current = r
	isSetup = true
	return nil
}

// Current returns the process-wide registry installed by Setup. The bool
// is false when Setup has never been called.
func Current() (Registry, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return current, isSetup
}
