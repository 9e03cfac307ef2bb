package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var readCmd = &cobra.Command{
	Use:   "read <artifact> <method> [params...]",
	Short: "Call a view or pure method and print its outputs",
	Args:  cobra.MinimumNArgs(2),
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

		entry := proxy.Description().ABI.Methods[name]
		params, err := convertArgs(entry.Inputs, args[2:])
		if err != nil {
			return err
		}

		stop := terminal.Spinner(fmt.Sprintf("calling %s...", name))
		values, err := proxy.Call(context.Background(), name, params...)
		stop()
		if err != nil {
			return err
		}

		terminal.Section(method.Name)
		printOutputs(entry.Outputs, values)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(readCmd)
}
