package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/spf13/cobra"

	"github.com/tranvictor/ethproxy/contract"
)

var watchCmd = &cobra.Command{
	Use:   "watch <artifact> <event> [field=value...]",
	Short: "Stream a contract's events until interrupted",
	Long: `watch subscribes to the named event and prints each occurrence as it
is emitted. Indexed parameters can be pinned with field=value pairs, e.g.

  ethproxy watch Token.json Transfer from=0x4838...5f97`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		proxy, err := loadProxy(args[0])
		if err != nil {
			return err
		}
		eventName := args[1]

		filters, err := eventFilters(proxy, eventName, args[2:])
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		handler := func(ev contract.Event) error {
			names := make([]string, 0, len(ev.Fields))
			for name := range ev.Fields {
				names = append(names, name)
			}
			sort.Strings(names)
			rows := [][2]string{
				{"event", ev.Name},
				{"block", fmt.Sprintf("%d", ev.Raw.BlockNumber)},
				{"tx", ev.Raw.TxHash.Hex()},
			}
			for _, name := range names {
				rows = append(rows, [2]string{name, formatValue(ev.Fields[name])})
			}
			terminal.KeyValue(rows)
			terminal.Info("")
			return nil
		}

		if !proxy.Subscribe(ctx, eventName, handler, filters...) {
			return fmt.Errorf(
				"couldn't subscribe to %s, check the event name and --subscription-node", eventName)
		}
		defer proxy.Unsubscribe()

		terminal.Info("watching %s, ctrl-c to stop", eventName)
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		return nil
	},
}

// eventFilters turns field=value pairs into the positional indexed-filter
// list Subscribe expects: one entry per indexed parameter in declaration
// order, nil for unpinned positions.
func eventFilters(proxy *contract.Proxy, eventName string, pairs []string) ([]interface{}, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	ev, found := proxy.Description().ABI.Events[eventName]
	if !found {
		return nil, fmt.Errorf("no event %q", eventName)
	}

	indexed := []string{}
	byName := map[string]int{}
	types := map[string]abi.Type{}
	for _, input := range ev.Inputs {
		if input.Indexed {
			byName[input.Name] = len(indexed)
			types[input.Name] = input.Type
			indexed = append(indexed, input.Name)
		}
	}

	filters := make([]interface{}, len(indexed))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("expected field=value, got %q", pair)
		}
		pos, found := byName[name]
		if !found {
			return nil, fmt.Errorf(
				"%s has no indexed parameter %q, indexed: %v", eventName, name, indexed)
		}
		converted, err := convertArg(types[name], value)
		if err != nil {
			return nil, fmt.Errorf("filter %s: %w", name, err)
		}
		filters[pos] = converted
	}
	return filters, nil
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
