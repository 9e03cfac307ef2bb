package cmd

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	ethcommon "github.com/tranvictor/ethproxy/common"
)

// convertArgs turns the command line's string arguments into the Go values
// the abi encoder expects for the method's inputs.
func convertArgs(inputs abi.Arguments, raw []string) ([]interface{}, error) {
	if len(raw) != len(inputs) {
		return nil, fmt.Errorf("method takes %d params, got %d", len(inputs), len(raw))
	}
	converted := make([]interface{}, len(raw))
	for i, input := range inputs {
		value, err := convertArg(input.Type, raw[i])
		if err != nil {
			return nil, fmt.Errorf("param %d (%s %s): %w", i+1, input.Name, input.Type, err)
		}
		converted[i] = value
	}
	return converted, nil
}

func convertArg(t abi.Type, str string) (interface{}, error) {
	str = strings.TrimSpace(str)
	switch t.T {
	case abi.StringTy:
		return strings.Trim(str, `"`), nil
	case abi.IntTy:
		return convertInt(str, t.Size)
	case abi.UintTy:
		return convertUint(str, t.Size)
	case abi.BoolTy:
		return convertBool(str)
	case abi.AddressTy:
		return ethcommon.HexToAddress(str)
	case abi.HashTy:
		if !strings.HasPrefix(str, "0x") {
			return common.Hash{}, fmt.Errorf("hash must begin with 0x")
		}
		return common.HexToHash(str), nil
	case abi.BytesTy, abi.FunctionTy:
		return convertBytes(str)
	case abi.FixedBytesTy:
		return convertFixedBytes(str, t)
	case abi.TupleTy:
		return convertTuple(t, str)
	case abi.SliceTy, abi.ArrayTy:
		return convertArray(t, str)
	default:
		return nil, fmt.Errorf("unsupported type %s", t)
	}
}

// convertBig parses a big integer argument. Accepted forms: hex ("0x..."),
// a plain decimal integer, or an amount with a denomination suffix such as
// "1.5 ether" or "12 gwei".
func convertBig(str string) (*big.Int, error) {
	if str == "" {
		return nil, fmt.Errorf("empty integer")
	}
	if strings.HasPrefix(str, "0x") {
		return hexutil.DecodeBig(str)
	}
	parts := strings.Fields(str)
	if len(parts) == 2 {
		return ethcommon.ToBaseUnit(parts[0], parts[1])
	}
	result, ok := big.NewInt(0).SetString(str, 10)
	if !ok {
		return nil, fmt.Errorf("can't parse %q as an integer", str)
	}
	return result, nil
}

func convertInt(str string, size int) (interface{}, error) {
	switch size {
	case 8:
		res, err := strconv.ParseInt(str, 0, 8)
		return int8(res), err
	case 16:
		res, err := strconv.ParseInt(str, 0, 16)
		return int16(res), err
	case 32:
		res, err := strconv.ParseInt(str, 0, 32)
		return int32(res), err
	case 64:
		res, err := strconv.ParseInt(str, 0, 64)
		return int64(res), err
	default:
		return convertBig(str)
	}
}

func convertUint(str string, size int) (interface{}, error) {
	switch size {
	case 8:
		res, err := strconv.ParseUint(str, 0, 8)
		return uint8(res), err
	case 16:
		res, err := strconv.ParseUint(str, 0, 16)
		return uint16(res), err
	case 32:
		res, err := strconv.ParseUint(str, 0, 32)
		return uint32(res), err
	case 64:
		res, err := strconv.ParseUint(str, 0, 64)
		return uint64(res), err
	default:
		return convertBig(str)
	}
}

func convertBool(str string) (bool, error) {
	switch str {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf(`bool value must be "true" or "false"`)
}

func convertBytes(str string) ([]byte, error) {
	if str == "0x" {
		return []byte{}, nil
	}
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		return []byte(str[1 : len(str)-1]), nil
	}
	return hexutil.Decode(str)
}

// convertFixedBytes decodes a hex string into the exact [N]byte array type
// derived from t.GetType, right-padding short input with zeros.
func convertFixedBytes(str string, t abi.Type) (interface{}, error) {
	raw, err := convertBytes(str)
	if err != nil {
		return nil, err
	}
	arrType := t.GetType()
	if len(raw) > arrType.Len() {
		return nil, fmt.Errorf("%d bytes don't fit in %s", len(raw), t)
	}
	arr := reflect.New(arrType).Elem()
	reflect.Copy(arr, reflect.ValueOf(raw))
	return arr.Interface(), nil
}

func convertArray(t abi.Type, str string) (interface{}, error) {
	elems, err := splitBracketed(str)
	if err != nil {
		return nil, err
	}
	result := reflect.MakeSlice(reflect.SliceOf(t.Elem.GetType()), 0, len(elems))
	for i, elemStr := range elems {
		value, err := convertArg(*t.Elem, elemStr)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		result = reflect.Append(result, reflect.ValueOf(value))
	}
	return result.Interface(), nil
}

func convertTuple(t abi.Type, str string) (interface{}, error) {
	elems, err := splitBracketed(str)
	if err != nil {
		return nil, err
	}
	if len(elems) != t.TupleType.NumField() {
		return nil, fmt.Errorf("tuple takes %d fields, got %d", t.TupleType.NumField(), len(elems))
	}
	tuple := reflect.New(t.TupleType).Elem()
	for i := range elems {
		value, err := convertArg(*t.TupleElems[i], elems[i])
		if err != nil {
			return nil, fmt.Errorf("field %d (%s): %w", i, t.TupleRawNames[i], err)
		}
		tuple.Field(i).Set(reflect.ValueOf(value))
	}
	return tuple.Interface(), nil
}

// splitBracketed splits "[a, b, [c, d]]" into its top-level elements,
// keeping nested brackets and quoted strings intact.
func splitBracketed(str string) ([]string, error) {
	str = strings.TrimSpace(str)
	if len(str) < 2 || str[0] != '[' || str[len(str)-1] != ']' {
		return nil, fmt.Errorf("expected a [...] literal, got %q", str)
	}
	inner := str[1 : len(str)-1]
	if strings.TrimSpace(inner) == "" {
		return []string{}, nil
	}
	elems := []string{}
	depth := 0
	inQuote := false
	start := 0
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '"':
			inQuote = !inQuote
		case '[':
			if !inQuote {
				depth++
			}
		case ']':
			if !inQuote {
				depth--
				if depth < 0 {
					return nil, fmt.Errorf("unbalanced brackets in %q", str)
				}
			}
		case ',':
			if !inQuote && depth == 0 {
				elems = append(elems, strings.TrimSpace(inner[start:i]))
				start = i + 1
			}
		}
	}
	if depth != 0 || inQuote {
		return nil, fmt.Errorf("unbalanced brackets or quotes in %q", str)
	}
	elems = append(elems, strings.TrimSpace(inner[start:]))
	return elems, nil
}
