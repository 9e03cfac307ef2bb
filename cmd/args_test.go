package cmd

import (
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

func mustType(t *testing.T, def string) abi.Type {
	t.Helper()
	parsed, err := abi.NewType(def, "", nil)
	if err != nil {
		t.Fatalf("abi type %s: %s", def, err)
	}
	return parsed
}

func TestConvertArgScalars(t *testing.T) {
	addr, err := convertArg(mustType(t, "address"), "0x4838B106FCe9647Bdf1E7877BF73cE8B0BAD5f97")
	if err != nil {
		t.Fatalf("address: %s", err)
	}
	if addr.(common.Address) != common.HexToAddress("0x4838B106FCe9647Bdf1E7877BF73cE8B0BAD5f97") {
		t.Fatal("address mismatch")
	}

	v, err := convertArg(mustType(t, "uint256"), "1000000")
	if err != nil {
		t.Fatalf("uint256: %s", err)
	}
	if v.(*big.Int).Int64() != 1_000_000 {
		t.Fatal("uint256 mismatch")
	}

	v, err = convertArg(mustType(t, "uint256"), "0x10")
	if err != nil {
		t.Fatalf("hex uint256: %s", err)
	}
	if v.(*big.Int).Int64() != 16 {
		t.Fatal("hex uint256 mismatch")
	}

	v, err = convertArg(mustType(t, "uint8"), "255")
	if err != nil {
		t.Fatalf("uint8: %s", err)
	}
	if v.(uint8) != 255 {
		t.Fatal("uint8 mismatch")
	}

	v, err = convertArg(mustType(t, "bool"), "true")
	if err != nil {
		t.Fatalf("bool: %s", err)
	}
	if v.(bool) != true {
		t.Fatal("bool mismatch")
	}
	if _, err := convertArg(mustType(t, "bool"), "yes"); err == nil {
		t.Fatal("expected non true/false bool to be rejected")
	}

	v, err = convertArg(mustType(t, "string"), `"hello"`)
	if err != nil {
		t.Fatalf("string: %s", err)
	}
	if v.(string) != "hello" {
		t.Fatal("string mismatch")
	}
}

func TestConvertArgUnitSuffix(t *testing.T) {
	v, err := convertArg(mustType(t, "uint256"), "1.5 ether")
	if err != nil {
		t.Fatalf("unit amount: %s", err)
	}
	if v.(*big.Int).String() != "1500000000000000000" {
		t.Fatalf("expected 1.5e18, got %s", v.(*big.Int))
	}

	v, err = convertArg(mustType(t, "uint256"), "3 gwei")
	if err != nil {
		t.Fatalf("gwei amount: %s", err)
	}
	if v.(*big.Int).Int64() != 3_000_000_000 {
		t.Fatalf("expected 3e9, got %s", v.(*big.Int))
	}
}

func TestConvertArgBytes(t *testing.T) {
	v, err := convertArg(mustType(t, "bytes"), "0xdeadbeef")
	if err != nil {
		t.Fatalf("bytes: %s", err)
	}
	if got := v.([]byte); len(got) != 4 || got[0] != 0xde {
		t.Fatalf("bytes mismatch: %x", got)
	}

	v, err = convertArg(mustType(t, "bytes32"), "0x01")
	if err != nil {
		t.Fatalf("bytes32: %s", err)
	}
	arr := v.([32]byte)
	if arr[0] != 0x01 || arr[31] != 0x00 {
		t.Fatal("expected right-padded bytes32")
	}

	if _, err := convertArg(mustType(t, "bytes4"), "0x0102030405"); err == nil {
		t.Fatal("expected oversized fixed bytes to be rejected")
	}
}

func TestConvertArgArrays(t *testing.T) {
	v, err := convertArg(mustType(t, "uint256[]"), "[1, 2, 3]")
	if err != nil {
		t.Fatalf("array: %s", err)
	}
	values := v.([]*big.Int)
	if len(values) != 3 || values[2].Int64() != 3 {
		t.Fatalf("array mismatch: %v", values)
	}

	v, err = convertArg(mustType(t, "address[]"), "[]")
	if err != nil {
		t.Fatalf("empty array: %s", err)
	}
	if len(v.([]common.Address)) != 0 {
		t.Fatal("expected an empty slice")
	}

	if _, err := convertArg(mustType(t, "uint256[]"), "1, 2, 3"); err == nil {
		t.Fatal("expected a missing bracket literal to be rejected")
	}
}

func TestConvertArgsArityCheck(t *testing.T) {
	inputs := abi.Arguments{
		{Name: "to", Type: mustType(t, "address")},
		{Name: "value", Type: mustType(t, "uint256")},
	}
	if _, err := convertArgs(inputs, []string{"0x4838B106FCe9647Bdf1E7877BF73cE8B0BAD5f97"}); err == nil {
		t.Fatal("expected a param count mismatch to be rejected")
	}
	converted, err := convertArgs(inputs, []string{
		"0x4838B106FCe9647Bdf1E7877BF73cE8B0BAD5f97", "42",
	})
	if err != nil {
		t.Fatalf("convert: %s", err)
	}
	if len(converted) != 2 {
		t.Fatalf("expected 2 values, got %d", len(converted))
	}
}

func TestSplitBracketedNesting(t *testing.T) {
	elems, err := splitBracketed(`[[1, 2], [3, 4], "a, b"]`)
	if err != nil {
		t.Fatalf("split: %s", err)
	}
	want := []string{"[1, 2]", "[3, 4]", `"a, b"`}
	if len(elems) != 3 {
		t.Fatalf("expected 3 elements, got %v", elems)
	}
	for i := range want {
		if elems[i] != want[i] {
			t.Errorf("element %d: expected %q, got %q", i, want[i], elems[i])
		}
	}

	if _, err := splitBracketed("[1, [2]"); err == nil {
		t.Fatal("expected unbalanced brackets to be rejected")
	}
}

func TestParseValueFlag(t *testing.T) {
	v, err := parseValueFlag("0.5")
	if err != nil {
		t.Fatalf("bare amount: %s", err)
	}
	if v.String() != "500000000000000000" {
		t.Fatalf("expected 0.5 ether in wei, got %s", v)
	}

	v, err = parseValueFlag("12 gwei")
	if err != nil {
		t.Fatalf("unit amount: %s", err)
	}
	if v.Int64() != 12_000_000_000 {
		t.Fatalf("expected 12 gwei in wei, got %s", v)
	}

	if _, err := parseValueFlag("1 2 3"); err == nil {
		t.Fatal("expected malformed amount to be rejected")
	}
}

func TestFormatValue(t *testing.T) {
	if got := formatValue(big.NewInt(42)); got != "42" {
		t.Fatalf("big int: %s", got)
	}
	addr := common.HexToAddress("0x559432E18b281731c054cD703D4B49872BE4ed53")
	if got := formatValue(addr); !strings.EqualFold(got, addr.Hex()) {
		t.Fatalf("address: %s", got)
	}
	if got := formatValue([]byte{0xde, 0xad}); got != "0xdead" {
		t.Fatalf("bytes: %s", got)
	}
	if got := formatValue("abc"); got != `"abc"` {
		t.Fatalf("string: %s", got)
	}

	type pair struct {
		A *big.Int
		B bool
	}
	if got := formatValue(pair{big.NewInt(1), true}); got != "(1, true)" {
		t.Fatalf("tuple: %s", got)
	}
}
