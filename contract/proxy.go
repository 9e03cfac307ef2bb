package contract

import (
	"context"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/tranvictor/ethproxy/config"
	"github.com/tranvictor/ethproxy/transport"
)

// Kind classifies how a proxy operation executes.
type Kind int

const (
	// KindRead is a view or pure method, executed as an eth call.
	KindRead Kind = iota
	// KindWrite is a state-mutating method, executed through the
	// transaction pipeline.
	KindWrite
	// KindNative is a proxy-level operation, not part of the contract ABI.
	KindNative
)

func (k Kind) String() string {
	switch k {
	case KindRead:
		return "read"
	case KindWrite:
		return "write"
	case KindNative:
		return "native"
	}
	return "unknown"
}

// Method describes one dispatchable operation on a proxy.
type Method struct {
	Name  string
	Kind  Kind
	Arity int
}

// nativeOps are reserved names the proxy serves itself. An ABI method
// sharing one of these names is shadowed and unreachable by dispatch.
var nativeOps = map[string]bool{
	"bind":        true,
	"address":     true,
	"subscribe":   true,
	"unsubscribe": true,
}

type dispatchEntry struct {
	kind   Kind
	method abi.Method
}

// Proxy exposes one deployed contract through its interface description.
// Every ABI method becomes a dispatchable operation, classified read or
// write from its declared state mutability. The configuration in effect
// at construction is captured and used for the proxy's whole lifetime.
type Proxy struct {
	desc     *Description
	reg      config.Registry
	dispatch map[string]dispatchEntry

	mu      sync.Mutex
	bound   bool
	address common.Address
}

// NewProxy builds a proxy over desc using the current process
// configuration. When desc carries a deployment record for the configured
// network the proxy binds to that address immediately; otherwise it stays
// unbound until Bind is called.
func NewProxy(desc *Description) (*Proxy, error) {
	reg, ok := config.Current()
	if !ok {
		return nil, fmt.Errorf("configuration is not set up, call config.Setup first")
	}
	return NewProxyWithConfig(desc, reg)
}

// NewProxyWithConfig is NewProxy with an explicit configuration instead of
// the process-wide one.
func NewProxyWithConfig(desc *Description, reg config.Registry) (*Proxy, error) {
	if desc == nil {
		return nil, fmt.Errorf("nil contract description")
	}
	if reg.Network == nil {
		return nil, fmt.Errorf("configuration has no network")
	}
	if reg.RequestTransport == nil {
		return nil, fmt.Errorf("configuration has no request transport")
	}

	dispatch := map[string]dispatchEntry{}
	for name, method := range desc.ABI.Methods {
		if nativeOps[name] {
			continue
		}
		kind := KindWrite
		if method.IsConstant() {
			kind = KindRead
		}
		dispatch[name] = dispatchEntry{kind: kind, method: method}
	}

	p := &Proxy{
		desc:     desc,
		reg:      reg,
		dispatch: dispatch,
	}
	if addr, found := desc.DeployedAt(reg.Network.GetChainID()); found {
		p.bound = true
		p.address = addr
	}
	return p, nil
}

// Method looks up a dispatchable operation by name. The second return is
// false when the name resolves to nothing; lookups never error.
func (p *Proxy) Method(name string) (Method, bool) {
	if nativeOps[name] {
		return Method{Name: name, Kind: KindNative}, true
	}
	entry, found := p.dispatch[name]
	if !found {
		return Method{}, false
	}
	return Method{
		Name:  name,
		Kind:  entry.kind,
		Arity: len(entry.method.Inputs),
	}, true
}

// Methods lists every dispatchable ABI operation.
func (p *Proxy) Methods() []Method {
	result := make([]Method, 0, len(p.dispatch))
	for _, m := range p.desc.Methods() {
		if entry, found := p.dispatch[m.Name]; found {
			result = append(result, Method{
				Name:  m.Name,
				Kind:  entry.kind,
				Arity: len(entry.method.Inputs),
			})
		}
	}
	return result
}

// Description returns the interface description the proxy was built from.
func (p *Proxy) Description() *Description {
	return p.desc
}

// Bind points the proxy at addr, overriding any deployment record.
func (p *Proxy) Bind(addr common.Address) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.bound = true
	p.address = addr
}

// Address returns the bound contract address. The second return is false
// while the proxy is unbound.
func (p *Proxy) Address() (common.Address, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.address, p.bound
}

func (p *Proxy) boundAddress() (common.Address, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.bound {
		return common.Address{}, fmt.Errorf(
			"%s has no deployment record on %s and no address was bound",
			p.describe(), p.reg.Network.GetName(),
		)
	}
	return p.address, nil
}

func (p *Proxy) describe() string {
	if p.desc.Name == "" {
		return "contract"
	}
	return p.desc.Name
}

func (p *Proxy) entry(name string) (dispatchEntry, error) {
	entry, found := p.dispatch[name]
	if !found {
		if nativeOps[name] {
			return dispatchEntry{}, fmt.Errorf("%q is a reserved proxy operation, not an abi method", name)
		}
		return dispatchEntry{}, fmt.Errorf("%s has no method %q", p.describe(), name)
	}
	return entry, nil
}

// Call executes a read method and returns its decoded outputs in
// declaration order.
func (p *Proxy) Call(ctx context.Context, name string, args ...interface{}) ([]interface{}, error) {
	entry, err := p.entry(name)
	if err != nil {
		return nil, err
	}
	if entry.kind != KindRead {
		return nil, fmt.Errorf("%s.%s mutates state, use Transact", p.describe(), name)
	}
	return p.callMethod(ctx, entry.method, args)
}

func (p *Proxy) callMethod(ctx context.Context, method abi.Method, args []interface{}) ([]interface{}, error) {
	addr, err := p.boundAddress()
	if err != nil {
		return nil, err
	}
	data, err := p.desc.ABI.Pack(method.Name, args...)
	if err != nil {
		return nil, fmt.Errorf("couldn't pack %s params: %w", method.Name, err)
	}
	output, err := p.reg.RequestTransport.Call(ctx, transport.CallParams{
		From: p.reg.Account,
		To:   addr,
		Data: data,
	})
	if err != nil {
		return nil, fmt.Errorf("calling %s.%s: %w", p.describe(), method.Name, err)
	}
	values, err := method.Outputs.UnpackValues(output)
	if err != nil {
		return nil, fmt.Errorf("couldn't decode %s.%s output: %w", p.describe(), method.Name, err)
	}
	return values, nil
}

// CallInto executes a read method and decodes its outputs into v, which
// must be a pointer to a compatible value or struct.
func (p *Proxy) CallInto(ctx context.Context, v interface{}, name string, args ...interface{}) error {
	entry, err := p.entry(name)
	if err != nil {
		return err
	}
	if entry.kind != KindRead {
		return fmt.Errorf("%s.%s mutates state, use Transact", p.describe(), name)
	}
	addr, err := p.boundAddress()
	if err != nil {
		return err
	}
	data, err := p.desc.ABI.Pack(name, args...)
	if err != nil {
		return fmt.Errorf("couldn't pack %s params: %w", name, err)
	}
	output, err := p.reg.RequestTransport.Call(ctx, transport.CallParams{
		From: p.reg.Account,
		To:   addr,
		Data: data,
	})
	if err != nil {
		return fmt.Errorf("calling %s.%s: %w", p.describe(), name, err)
	}
	if err := p.desc.ABI.UnpackIntoInterface(v, name, output); err != nil {
		return fmt.Errorf("couldn't decode %s.%s output: %w", p.describe(), name, err)
	}
	return nil
}

// Outcome is the result of a generic Invoke: reads fill Values, writes
// fill Receipt.
type Outcome struct {
	Values  []interface{}
	Receipt *types.Receipt
}

// Invoke dispatches name by its classified kind: reads behave like Call,
// writes behave like Transact.
func (p *Proxy) Invoke(ctx context.Context, name string, args ...interface{}) (*Outcome, error) {
	entry, err := p.entry(name)
	if err != nil {
		return nil, err
	}
	switch entry.kind {
	case KindRead:
		values, err := p.callMethod(ctx, entry.method, args)
		if err != nil {
			return nil, err
		}
		return &Outcome{Values: values}, nil
	case KindWrite:
		receipt, err := p.transactMethod(ctx, entry.method, nil, args)
		if err != nil {
			return nil, err
		}
		return &Outcome{Receipt: receipt}, nil
	}
	return nil, fmt.Errorf("%s.%s is not dispatchable", p.describe(), name)
}
