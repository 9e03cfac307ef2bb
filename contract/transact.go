package contract

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/tranvictor/ethproxy/transport"
)

// gasMultiplier is applied to the node's gas estimate before dry-run and
// submission, absorbing state drift between estimation and inclusion.
const gasMultiplier = 2

// Transact executes a write method through the full transaction pipeline:
// estimate gas, dry-run the call with the final parameters, submit, then
// wait for the receipt. A failing dry-run aborts before anything reaches
// the network as a transaction. The configured OnTxHashKnown hook fires as
// soon as the node acknowledges the submission, OnTxConfirmed fires for
// every receipt regardless of status, and a reverted receipt is returned
// alongside a non-nil error.
func (p *Proxy) Transact(ctx context.Context, name string, args ...interface{}) (*types.Receipt, error) {
	return p.TransactWithValue(ctx, nil, name, args...)
}

// TransactWithValue is Transact with value wei of native token attached.
func (p *Proxy) TransactWithValue(ctx context.Context, value *big.Int, name string, args ...interface{}) (*types.Receipt, error) {
	entry, err := p.entry(name)
	if err != nil {
		return nil, err
	}
	if entry.kind != KindWrite {
		return nil, fmt.Errorf("%s.%s doesn't mutate state, use Call", p.describe(), name)
	}
	return p.transactMethod(ctx, entry.method, value, args)
}

func (p *Proxy) transactMethod(ctx context.Context, method abi.Method, value *big.Int, args []interface{}) (*types.Receipt, error) {
	addr, err := p.boundAddress()
	if err != nil {
		return nil, err
	}
	data, err := p.desc.ABI.Pack(method.Name, args...)
	if err != nil {
		return nil, fmt.Errorf("couldn't pack %s params: %w", method.Name, err)
	}

	params := transport.CallParams{
		From:  p.reg.Account,
		To:    addr,
		Value: value,
		Data:  data,
	}

	estimate, err := p.reg.RequestTransport.EstimateGas(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("estimating gas for %s.%s: %w", p.describe(), method.Name, err)
	}
	params.Gas = estimate * gasMultiplier

	if err := p.dryRun(ctx, method, params); err != nil {
		return nil, err
	}

	receipt, err := p.reg.RequestTransport.Send(ctx, params, p.notifyHash)
	if err != nil {
		return nil, fmt.Errorf("sending %s.%s: %w", p.describe(), method.Name, err)
	}
	p.notifyConfirmed(receipt)
	if receipt.Status == types.ReceiptStatusFailed {
		return receipt, fmt.Errorf("transaction %s failed", receipt.TxHash.Hex())
	}
	return receipt, nil
}

// dryRun executes the write as an eth call with the exact parameters the
// transaction will carry. A revert fails it outright; a method declaring a
// single anonymous bool output additionally fails when that bool decodes
// to false, the same convention token contracts use to signal rejection
// without reverting.
func (p *Proxy) dryRun(ctx context.Context, method abi.Method, params transport.CallParams) error {
	output, err := p.reg.RequestTransport.Call(ctx, params)
	if err != nil {
		return fmt.Errorf("dry run of %s.%s rejected the transaction: %w", p.describe(), method.Name, err)
	}
	if !expectsBoolSuccess(method) {
		return nil
	}
	values, err := method.Outputs.UnpackValues(output)
	if err != nil {
		return fmt.Errorf("dry run of %s.%s returned undecodable output: %w", p.describe(), method.Name, err)
	}
	success, ok := values[0].(bool)
	if !ok {
		return fmt.Errorf("dry run of %s.%s returned non-bool success flag", p.describe(), method.Name)
	}
	if !success {
		return fmt.Errorf("dry run of %s.%s returned false, the contract would reject this transaction", p.describe(), method.Name)
	}
	return nil
}

func expectsBoolSuccess(method abi.Method) bool {
	return len(method.Outputs) == 1 &&
		method.Outputs[0].Name == "" &&
		method.Outputs[0].Type.T == abi.BoolTy
}

func (p *Proxy) notifyHash(hash common.Hash) {
	if p.reg.OnTxHashKnown != nil {
		p.reg.OnTxHashKnown(hash)
	}
}

func (p *Proxy) notifyConfirmed(receipt *types.Receipt) {
	if p.reg.OnTxConfirmed != nil {
		p.reg.OnTxConfirmed(receipt)
	}
}
