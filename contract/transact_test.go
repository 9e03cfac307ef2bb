package contract_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/tranvictor/ethproxy/config"
	"github.com/tranvictor/ethproxy/transport"
)

func TestTransactPipeline(t *testing.T) {
	fake := &fakeTransport{estimate: 50_000, receipt: successReceipt()}
	var lifecycle []string
	reg := config.Registry{
		Account:          holder,
		RequestTransport: fake,
		OnTxHashKnown: func(hash ethcommon.Hash) {
			lifecycle = append(lifecycle, "hash:"+hash.Hex())
		},
		OnTxConfirmed: func(receipt *types.Receipt) {
			lifecycle = append(lifecycle, "confirmed")
		},
	}
	proxy := tokenProxy(t, reg)
	fake.callFn = func(params transport.CallParams) ([]byte, error) {
		return packOutputs(t, proxy, "transfer", true), nil
	}

	receipt, err := proxy.Transact(context.Background(), "transfer", recipient, big.NewInt(1000))
	if err != nil {
		t.Fatalf("transact: %s", err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		t.Fatal("expected a successful receipt")
	}

	// gas headroom is estimate doubled, on both the dry run and the send
	if len(fake.calls) != 1 || fake.calls[0].Gas != 100_000 {
		t.Fatalf("expected one dry run with gas 100000, got %+v", fake.calls)
	}
	if len(fake.sends) != 1 || fake.sends[0].Gas != 100_000 {
		t.Fatalf("expected one send with gas 100000, got %+v", fake.sends)
	}
	if !equalBytes(fake.calls[0].Data, fake.sends[0].Data) {
		t.Fatal("dry run and send must carry identical calldata")
	}

	want := []string{"hash:" + successReceipt().TxHash.Hex(), "confirmed"}
	if len(lifecycle) != 2 || lifecycle[0] != want[0] || lifecycle[1] != want[1] {
		t.Fatalf("expected lifecycle %v, got %v", want, lifecycle)
	}
}

func equalBytes(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDryRunFalseCancelsSubmission(t *testing.T) {
	fake := &fakeTransport{estimate: 50_000, receipt: successReceipt()}
	proxy := tokenProxy(t, config.Registry{Account: holder, RequestTransport: fake})
	fake.callFn = func(params transport.CallParams) ([]byte, error) {
		return packOutputs(t, proxy, "transfer", false), nil
	}

	_, err := proxy.Transact(context.Background(), "transfer", recipient, big.NewInt(1000))
	if err == nil {
		t.Fatal("expected a false dry run to fail the transaction")
	}
	if len(fake.sends) != 0 {
		t.Fatal("nothing must be submitted after a failing dry run")
	}
}

func TestDryRunRevertCancelsSubmission(t *testing.T) {
	fake := &fakeTransport{estimate: 50_000, receipt: successReceipt()}
	proxy := tokenProxy(t, config.Registry{Account: holder, RequestTransport: fake})
	revert := errors.New("execution reverted: insufficient balance")
	fake.callFn = func(params transport.CallParams) ([]byte, error) {
		return nil, revert
	}

	_, err := proxy.Transact(context.Background(), "transfer", recipient, big.NewInt(1000))
	if !errors.Is(err, revert) {
		t.Fatalf("expected the revert cause to be wrapped, got %v", err)
	}
	if len(fake.sends) != 0 {
		t.Fatal("nothing must be submitted after a reverting dry run")
	}
}

func TestDryRunSkipsBoolConventionForOtherShapes(t *testing.T) {
	// deposit has no outputs, so an empty dry-run result is acceptance
	fake := &fakeTransport{estimate: 21_000, receipt: successReceipt()}
	proxy := tokenProxy(t, config.Registry{Account: holder, RequestTransport: fake})
	fake.callFn = func(params transport.CallParams) ([]byte, error) {
		return []byte{}, nil
	}

	receipt, err := proxy.TransactWithValue(context.Background(), big.NewInt(1_000_000), "deposit")
	if err != nil {
		t.Fatalf("transact: %s", err)
	}
	if receipt == nil {
		t.Fatal("expected a receipt")
	}
	if fake.sends[0].Value.Cmp(big.NewInt(1_000_000)) != 0 {
		t.Fatalf("expected attached value to reach the send, got %s", fake.sends[0].Value)
	}
	if fake.calls[0].Value.Cmp(big.NewInt(1_000_000)) != 0 {
		t.Fatal("expected attached value on the dry run as well")
	}
}

func TestEstimationFailureCancelsEverything(t *testing.T) {
	fake := &fakeTransport{estimateErr: errors.New("always failing transaction")}
	proxy := tokenProxy(t, config.Registry{Account: holder, RequestTransport: fake})

	_, err := proxy.Transact(context.Background(), "transfer", recipient, big.NewInt(1))
	if err == nil {
		t.Fatal("expected estimation failure to fail the transaction")
	}
	if len(fake.calls) != 0 || len(fake.sends) != 0 {
		t.Fatal("neither dry run nor send may happen after estimation fails")
	}
}

func TestRevertedReceiptIsAnError(t *testing.T) {
	failed := successReceipt()
	failed.Status = types.ReceiptStatusFailed
	fake := &fakeTransport{estimate: 50_000, receipt: failed}

	confirmed := 0
	reg := config.Registry{
		Account:          holder,
		RequestTransport: fake,
		OnTxConfirmed:    func(receipt *types.Receipt) { confirmed++ },
	}
	proxy := tokenProxy(t, reg)
	fake.callFn = func(params transport.CallParams) ([]byte, error) {
		return packOutputs(t, proxy, "transfer", true), nil
	}

	receipt, err := proxy.Transact(context.Background(), "transfer", recipient, big.NewInt(1))
	if err == nil {
		t.Fatal("expected a reverted receipt to surface as an error")
	}
	if receipt == nil || receipt.Status != types.ReceiptStatusFailed {
		t.Fatal("the failed receipt must still be returned")
	}
	if confirmed != 1 {
		t.Fatalf("OnTxConfirmed must fire exactly once regardless of status, fired %d times", confirmed)
	}
}

func TestTransactRejectsReadMethods(t *testing.T) {
	proxy := tokenProxy(t, config.Registry{RequestTransport: &fakeTransport{}})
	if _, err := proxy.Transact(context.Background(), "balanceOf", holder); err == nil {
		t.Fatal("expected Transact on a read method to fail")
	}
}
