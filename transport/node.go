package transport

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
)

// RPCTimeout bounds every single request/response round trip to a node.
// Waiting for a receipt is not a single round trip and is bounded only by
// the caller's context.
const RPCTimeout time.Duration = 4 * time.Second

// DefaultReceiptPollInterval is how often Send checks whether a submitted
// transaction has been mined.
const DefaultReceiptPollInterval time.Duration = 5 * time.Second

// Node is a RequestTransport over a single JSON-RPC endpoint. The
// connection is dialed lazily on first use and kept for the lifetime of
// the Node.
//
// Send relies on the node managing the sending account (eth_sendTransaction);
// signing keys never pass through this layer.
type Node struct {
	nodeName string
	nodeURL  string

	mu        sync.Mutex
	client    *rpc.Client
	ethClient *ethclient.Client

	receiptPollInterval time.Duration
}

func NewNode(name, url string) *Node {
	return &Node{
		nodeName:            name,
		nodeURL:             url,
		receiptPollInterval: DefaultReceiptPollInterval,
	}
}

func (n *Node) NodeName() string {
	return n.nodeName
}

func (n *Node) NodeURL() string {
	return n.nodeURL
}

func (n *Node) connect() (*rpc.Client, *ethclient.Client, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.client != nil {
		return n.client, n.ethClient, nil
	}
	client, err := rpc.Dial(n.nodeURL)
	if err != nil {
		return nil, nil, fmt.Errorf("couldn't connect to %s: %w", n.nodeName, err)
	}
	n.client = client
	n.ethClient = ethclient.NewClient(client)
	return n.client, n.ethClient, nil
}

func callMsg(params CallParams) ethereum.CallMsg {
	to := params.To
	return ethereum.CallMsg{
		From:  params.From,
		To:    &to,
		Gas:   params.Gas,
		Value: params.Value,
		Data:  params.Data,
	}
}

func (n *Node) EstimateGas(ctx context.Context, params CallParams) (uint64, error) {
	_, ethcli, err := n.connect()
	if err != nil {
		return 0, err
	}
	timeout, cancel := context.WithTimeout(ctx, RPCTimeout)
	defer cancel()
	return ethcli.EstimateGas(timeout, callMsg(params))
}

func (n *Node) Call(ctx context.Context, params CallParams) ([]byte, error) {
	_, ethcli, err := n.connect()
	if err != nil {
		return nil, err
	}
	timeout, cancel := context.WithTimeout(ctx, RPCTimeout)
	defer cancel()
	return ethcli.CallContract(timeout, callMsg(params), nil)
}

// sendTxArgs is the wire form of eth_sendTransaction parameters.
type sendTxArgs struct {
	From  common.Address  `json:"from"`
	To    *common.Address `json:"to"`
	Gas   hexutil.Uint64  `json:"gas,omitempty"`
	Value *hexutil.Big    `json:"value,omitempty"`
	Data  hexutil.Bytes   `json:"data"`
}

func (n *Node) submit(ctx context.Context, params CallParams) (common.Hash, error) {
	cli, _, err := n.connect()
	if err != nil {
		return common.Hash{}, err
	}
	to := params.To
	args := sendTxArgs{
		From: params.From,
		To:   &to,
		Gas:  hexutil.Uint64(params.Gas),
		Data: params.Data,
	}
	if params.Value != nil {
		args.Value = (*hexutil.Big)(params.Value)
	}
	var hash common.Hash
	timeout, cancel := context.WithTimeout(ctx, RPCTimeout)
	defer cancel()
	if err := cli.CallContext(timeout, &hash, "eth_sendTransaction", args); err != nil {
		return common.Hash{}, fmt.Errorf("%s rejected the transaction: %w", n.nodeName, err)
	}
	return hash, nil
}

func (n *Node) waitForReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	_, ethcli, err := n.connect()
	if err != nil {
		return nil, err
	}
	ticker := time.NewTicker(n.receiptPollInterval)
	defer ticker.Stop()
	for {
		timeout, cancel := context.WithTimeout(ctx, RPCTimeout)
		receipt, err := ethcli.TransactionReceipt(timeout, hash)
		cancel()
		if err == nil && receipt != nil {
			return receipt, nil
		}
		if err != nil && !errors.Is(err, ethereum.NotFound) && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("gave up waiting for receipt of %s: %w", hash.Hex(), ctx.Err())
		case <-ticker.C:
		}
	}
}

func (n *Node) Send(ctx context.Context, params CallParams, onHashKnown func(common.Hash)) (*types.Receipt, error) {
	hash, err := n.submit(ctx, params)
	if err != nil {
		return nil, err
	}
	if onHashKnown != nil {
		onHashKnown(hash)
	}
	return n.waitForReceipt(ctx, hash)
}

// GasPriceSuggestion exposes the node's own gas price oracle. The proxy
// layer doesn't need it for the safety protocol (the node prices
// eth_sendTransaction itself) but operational tooling does.
func (n *Node) GasPriceSuggestion(ctx context.Context) (*big.Int, error) {
	_, ethcli, err := n.connect()
	if err != nil {
		return nil, err
	}
	timeout, cancel := context.WithTimeout(ctx, RPCTimeout)
	defer cancel()
	return ethcli.SuggestGasPrice(timeout)
}

// CurrentBlock returns the latest block number the node knows about.
func (n *Node) CurrentBlock(ctx context.Context) (uint64, error) {
	_, ethcli, err := n.connect()
	if err != nil {
		return 0, err
	}
	timeout, cancel := context.WithTimeout(ctx, RPCTimeout)
	defer cancel()
	header, err := ethcli.HeaderByNumber(timeout, nil)
	if err != nil {
		return 0, err
	}
	return header.Number.Uint64(), nil
}
