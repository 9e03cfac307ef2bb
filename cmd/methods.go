package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/tranvictor/ethproxy/contract"
)

var methodsCmd = &cobra.Command{
	Use:   "methods <artifact> [query]",
	Short: "List a contract's methods, optionally fuzzy-filtered",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		desc, err := contract.LoadDescription(args[0])
		if err != nil {
			return err
		}
		proxy, err := contract.NewProxy(desc)
		if err != nil {
			return err
		}

		methods := proxy.Methods()
		if len(args) == 2 {
			names := make([]string, len(methods))
			for i, m := range methods {
				names[i] = m.Name
			}
			matches := fuzzy.Find(args[1], names)
			if len(matches) == 0 {
				return fmt.Errorf("no method matches %q", args[1])
			}
			filtered := make([]contract.Method, 0, len(matches))
			for _, match := range matches {
				filtered = append(filtered, methods[match.Index])
			}
			methods = filtered
		}

		rows := make([][]string, 0, len(methods))
		for _, m := range methods {
			sig := desc.ABI.Methods[m.Name].Sig
			rows = append(rows, []string{m.Name, m.Kind.String(), sig})
		}
		terminal.Table([]string{"method", "kind", "signature"}, rows)

		events := make([]string, 0, len(desc.ABI.Events))
		for name := range desc.ABI.Events {
			events = append(events, name)
		}
		sort.Strings(events)
		if len(events) > 0 {
			terminal.Info("events: %s", strings.Join(events, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(methodsCmd)
}
