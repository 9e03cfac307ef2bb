package transport

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Endpoint is one upstream a Pool can talk to. *Node implements it; tests
// substitute in-memory fakes.
type Endpoint interface {
	NodeName() string
	EstimateGas(ctx context.Context, params CallParams) (uint64, error)
	Call(ctx context.Context, params CallParams) ([]byte, error)
	Send(ctx context.Context, params CallParams, onHashKnown func(common.Hash)) (*types.Receipt, error)
}

// Pool is a RequestTransport that fans read-only requests out to several
// endpoints at once and takes the first success; when every endpoint
// fails the errors are joined so the caller sees all of them.
//
// Send goes to the primary endpoint only: submission relies on the node
// managing the account's nonce, so replaying eth_sendTransaction against
// a second node would double-spend the call rather than rebroadcast it.
type Pool struct {
	endpoints []Endpoint
}

// NewPool builds a Pool of Nodes from a name → URL map. The primary
// endpoint is the one with the lexicographically smallest name, which
// keeps submission deterministic for a given configuration.
func NewPool(nodes map[string]string) *Pool {
	names := make([]string, 0, len(nodes))
	for name := range nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	endpoints := make([]Endpoint, 0, len(names))
	for _, name := range names {
		endpoints = append(endpoints, NewNode(name, nodes[name]))
	}
	return &Pool{endpoints: endpoints}
}

// NewPoolFromEndpoints builds a Pool over pre-constructed endpoints,
// primary first.
func NewPoolFromEndpoints(endpoints ...Endpoint) *Pool {
	return &Pool{endpoints: endpoints}
}

func wrapError(e error, name string) error {
	if e == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", name, e)
}

type estimateGasResult struct {
	Gas   uint64
	Error error
}

func (p *Pool) EstimateGas(ctx context.Context, params CallParams) (uint64, error) {
	if len(p.endpoints) == 0 {
		return 0, fmt.Errorf("no endpoints configured")
	}
	resCh := make(chan estimateGasResult, len(p.endpoints))
	for i := range p.endpoints {
		ep := p.endpoints[i]
		go func() {
			gas, err := ep.EstimateGas(ctx, params)
			resCh <- estimateGasResult{
				Gas:   gas,
				Error: wrapError(err, ep.NodeName()),
			}
		}()
	}
	errs := []error{}
	for i := 0; i < len(p.endpoints); i++ {
		result := <-resCh
		if result.Error == nil {
			return result.Gas, nil
		}
		errs = append(errs, result.Error)
	}
	return 0, fmt.Errorf("couldn't estimate gas on any node: %w", errors.Join(errs...))
}

type callResult struct {
	Data  []byte
	Error error
}

func (p *Pool) Call(ctx context.Context, params CallParams) ([]byte, error) {
	if len(p.endpoints) == 0 {
		return nil, fmt.Errorf("no endpoints configured")
	}
	resCh := make(chan callResult, len(p.endpoints))
	for i := range p.endpoints {
		ep := p.endpoints[i]
		go func() {
			data, err := ep.Call(ctx, params)
			resCh <- callResult{
				Data:  data,
				Error: wrapError(err, ep.NodeName()),
			}
		}()
	}
	errs := []error{}
	for i := 0; i < len(p.endpoints); i++ {
		result := <-resCh
		if result.Error == nil {
			return result.Data, nil
		}
		errs = append(errs, result.Error)
	}
	return nil, fmt.Errorf("couldn't call on any node: %w", errors.Join(errs...))
}

func (p *Pool) Send(ctx context.Context, params CallParams, onHashKnown func(common.Hash)) (*types.Receipt, error) {
	if len(p.endpoints) == 0 {
		return nil, fmt.Errorf("no endpoints configured")
	}
	primary := p.endpoints[0]
	receipt, err := primary.Send(ctx, params, onHashKnown)
	if err != nil {
		return nil, wrapError(err, primary.NodeName())
	}
	return receipt, nil
}
