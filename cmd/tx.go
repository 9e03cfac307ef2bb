package cmd

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/spf13/cobra"

	ethcommon "github.com/tranvictor/ethproxy/common"
	"github.com/tranvictor/ethproxy/config"
	"github.com/tranvictor/ethproxy/contract"
)

var (
	txValueFlag string
	txYesFlag   bool
)

var txCmd = &cobra.Command{
	Use:   "tx <artifact> <method> [params...]",
	Short: "Send a transaction to a state-mutating method",
	Long: `tx runs the full write pipeline: gas estimation, a dry-run call with
the exact transaction parameters, submission through the node's managed
account, and receipt confirmation. A failing dry run cancels the
transaction before anything reaches the chain.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		proxy, err := loadProxy(args[0])
		if err != nil {
			return err
		}
		name := args[1]
		method, found := proxy.Method(name)
		if !found {
			return fmt.Errorf("no method %q, try the methods command", name)
		}
		if method.Kind != contract.KindWrite {
			return fmt.Errorf("%s is a %s method, use the read command", name, method.Kind)
		}

		entry := proxy.Description().ABI.Methods[name]
		params, err := convertArgs(entry.Inputs, args[2:])
		if err != nil {
			return err
		}

		value := big.NewInt(0)
		if txValueFlag != "" {
			value, err = parseValueFlag(txValueFlag)
			if err != nil {
				return fmt.Errorf("--amount: %w", err)
			}
		}

		addr, _ := proxy.Address()
		terminal.Section("confirm transaction")
		rows := [][2]string{
			{"Network", networkFlag},
			{"Contract", addr.Hex()},
			{"Method", name},
		}
		if value.Sign() > 0 {
			reg, _ := config.Current()
			rows = append(rows, [2]string{"Value", fmt.Sprintf(
				"%s %s (%s wei)",
				ethcommon.BigToFloatString(value, reg.Network.GetNativeTokenDecimal()),
				reg.Network.GetNativeTokenSymbol(),
				value.String(),
			)})
		}
		for i, input := range entry.Inputs {
			rows = append(rows, [2]string{input.Name, args[2+i]})
		}
		terminal.KeyValue(rows)

		if !txYesFlag && !terminal.Confirm("Send this transaction?", false) {
			terminal.Warn("cancelled")
			return nil
		}

		stop := terminal.Spinner(fmt.Sprintf("executing %s...", name))
		receipt, err := proxy.TransactWithValue(context.Background(), value, name, params...)
		stop()
		if err != nil {
			return err
		}

		terminal.KeyValue([][2]string{
			{"Tx", receipt.TxHash.Hex()},
			{"Block", receipt.BlockNumber.String()},
			{"Gas used", fmt.Sprintf("%d", receipt.GasUsed)},
		})
		return nil
	},
}

// parseValueFlag accepts "12000 wei" style amounts as well as a bare
// number, which is read as ether.
func parseValueFlag(s string) (*big.Int, error) {
	parts := strings.Fields(s)
	switch len(parts) {
	case 1:
		return ethcommon.ToBaseUnit(parts[0], ethcommon.DefaultUnit)
	case 2:
		return ethcommon.ToBaseUnit(parts[0], parts[1])
	}
	return nil, fmt.Errorf("expected an amount like %q or %q", "0.5", "12 gwei")
}

func init() {
	txCmd.Flags().StringVar(
		&txValueFlag, "amount", "",
		`native token amount to attach, e.g. "0.5" (ether) or "12 gwei"`,
	)
	txCmd.Flags().BoolVarP(
		&txYesFlag, "yes", "y", false,
		"skip the confirmation prompt",
	)
	rootCmd.AddCommand(txCmd)
}
