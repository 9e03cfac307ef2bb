package cmd

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tranvictor/ethproxy/config"
	"github.com/tranvictor/ethproxy/networks"
	"github.com/tranvictor/ethproxy/transport"
	"github.com/tranvictor/ethproxy/ui"
)

var (
	networkFlag      string
	fromFlag         string
	addressFlag      string
	nodeFlags        []string
	subscriptionFlag string
	verboseFlag      bool
)

// terminal is the UI every command prints through.
var terminal ui.UI = ui.NewTerminalUI()

var rootCmd = &cobra.Command{
	Use:   "ethproxy",
	Short: "Read and transact with any ethereum contract from its abi",
	Long: `ethproxy talks to deployed smart contracts without generated bindings:
give it a contract artifact (abi plus deployment addresses) and it exposes
every method as a read call or a guarded transaction.

Writes go through a safety pipeline: gas is estimated with headroom, the
exact transaction is dry-run as a call first, and nothing is submitted when
the dry run rejects it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verboseFlag {
			logrus.SetLevel(logrus.DebugLevel)
		}
		return setupFromFlags()
	},
}

// setupFromFlags translates the persistent flags into the process-wide
// configuration every proxy constructed by a command will snapshot.
func setupFromFlags() error {
	network, err := networks.GetNetwork(networkFlag)
	if err != nil {
		return fmt.Errorf("unsupported network %q, valid options: %v",
			networkFlag, networks.GetSupportedNetworkNames())
	}

	nodes := map[string]string{}
	switch {
	case len(nodeFlags) > 0:
		for i, url := range nodeFlags {
			nodes[fmt.Sprintf("node-%d", i)] = url
		}
	case os.Getenv(network.GetNodeVariableName()) != "":
		nodes["env"] = os.Getenv(network.GetNodeVariableName())
	default:
		nodes = network.GetDefaultNodes()
	}
	if len(nodes) == 0 {
		return fmt.Errorf("%s has no default nodes, pass --node", network.GetName())
	}
	pool := transport.NewPool(nodes)

	reg := config.Registry{
		Network:          network,
		RequestTransport: pool,
		OnTxHashKnown: func(hash common.Hash) {
			terminal.Info("tx submitted: %s", hash.Hex())
		},
		OnTxConfirmed: func(receipt *types.Receipt) {
			if receipt.Status == types.ReceiptStatusSuccessful {
				terminal.Success("mined in block %d, gas used %d",
					receipt.BlockNumber.Uint64(), receipt.GasUsed)
			} else {
				terminal.Error("reverted in block %d", receipt.BlockNumber.Uint64())
			}
		},
	}

	if fromFlag != "" {
		if !common.IsHexAddress(fromFlag) {
			return fmt.Errorf("--from %q is not a valid address", fromFlag)
		}
		reg.Account = common.HexToAddress(fromFlag)
	}

	wsEndpoint := subscriptionFlag
	if wsEndpoint == "" {
		wsEndpoint = os.Getenv(network.GetSubscriptionNodeVariableName())
	}
	if wsEndpoint == "" {
		wsEndpoint = network.GetDefaultSubscriptionNode()
	}
	if wsEndpoint != "" {
		reg.SubscriptionTransport = transport.NewSubscriber(network.GetName(), wsEndpoint)
	}

	return config.Setup(reg)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&networkFlag, "network", "n", "mainnet",
		"network to interact with",
	)
	rootCmd.PersistentFlags().StringVarP(
		&fromFlag, "from", "f", "",
		"account the node signs with, defaults to the node's first account",
	)
	rootCmd.PersistentFlags().StringVarP(
		&addressFlag, "address", "a", "",
		"contract address, overrides the artifact's deployment record",
	)
	rootCmd.PersistentFlags().StringArrayVar(
		&nodeFlags, "node", nil,
		"rpc node url, repeatable; defaults to the network's public nodes",
	)
	rootCmd.PersistentFlags().StringVar(
		&subscriptionFlag, "subscription-node", "",
		"websocket node url for event subscriptions",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verboseFlag, "verbose", "v", false,
		"enable debug logging",
	)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
