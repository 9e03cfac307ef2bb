package cmd

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	ethcommon "github.com/tranvictor/ethproxy/common"
	"github.com/tranvictor/ethproxy/contract"
)

// loadProxy builds a proxy from an artifact path, applying the --address
// override when given.
func loadProxy(artifactPath string) (*contract.Proxy, error) {
	desc, err := contract.LoadDescription(artifactPath)
	if err != nil {
		return nil, err
	}
	proxy, err := contract.NewProxy(desc)
	if err != nil {
		return nil, err
	}
	if addressFlag != "" {
		addr, err := ethcommon.HexToAddress(addressFlag)
		if err != nil {
			return nil, fmt.Errorf("--address: %w", err)
		}
		proxy.Bind(addr)
	}
	if _, bound := proxy.Address(); !bound {
		return nil, fmt.Errorf(
			"%s has no deployment on %s, pass --address", artifactPath, networkFlag)
	}
	return proxy, nil
}

// formatValue renders one decoded abi value for terminal output.
func formatValue(v interface{}) string {
	switch value := v.(type) {
	case common.Address:
		return value.Hex()
	case common.Hash:
		return value.Hex()
	case *big.Int:
		return value.String()
	case []byte:
		return hexutil.Encode(value)
	case [32]byte:
		return hexutil.Encode(value[:])
	case string:
		return fmt.Sprintf("%q", value)
	case bool:
		return fmt.Sprintf("%t", value)
	}

	if fields, err := ethcommon.TupleToSlice(v); err == nil {
		parts := make([]string, len(fields))
		for i, f := range fields {
			parts[i] = formatValue(f)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	}
	return fmt.Sprintf("%v", v)
}

// printOutputs renders decoded method outputs, labelled by their declared
// names where the abi has them.
func printOutputs(outputs abi.Arguments, values []interface{}) {
	for i, value := range values {
		label := fmt.Sprintf("output %d", i)
		if i < len(outputs) && outputs[i].Name != "" {
			label = outputs[i].Name
		}
		terminal.KeyValue([][2]string{{label, formatValue(value)}})
	}
}
