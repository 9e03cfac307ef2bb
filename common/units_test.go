package common_test

import (
	"math/big"
	"testing"

	"github.com/tranvictor/ethproxy/common"
)

func TestToBaseUnit(t *testing.T) {
	cases := []struct {
		amount string
		unit   string
		want   string
	}{
		{"1", "ether", "1000000000000000000"},
		{"1.5", "ether", "1500000000000000000"},
		{"3", "", "3000000000000000000"}, // empty unit defaults to ether
		{"12", "gwei", "12000000000"},
		{"0.000000001", "ether", "1000000000"},
		{"7", "wei", "7"},
		{"2", "finney", "2000000000000000"},
	}

	for _, c := range cases {
		got, err := common.ToBaseUnit(c.amount, c.unit)
		if err != nil {
			t.Fatalf("ToBaseUnit(%q, %q): %s", c.amount, c.unit, err)
		}
		if got.String() != c.want {
			t.Errorf("ToBaseUnit(%q, %q) = %s, want %s", c.amount, c.unit, got, c.want)
		}
	}
}

func TestToBaseUnitRejectsFractionalWei(t *testing.T) {
	if _, err := common.ToBaseUnit("0.5", "wei"); err == nil {
		t.Fatal("expected fractional wei to be rejected")
	}
	if _, err := common.ToBaseUnit("0.0000000005", "gwei"); err == nil {
		t.Fatal("expected sub-wei gwei amount to be rejected")
	}
}

func TestToBaseUnitRejectsBadInput(t *testing.T) {
	if _, err := common.ToBaseUnit("one", "ether"); err == nil {
		t.Fatal("expected a non-numeric amount to be rejected")
	}
	if _, err := common.ToBaseUnit("1", "parsec"); err == nil {
		t.Fatal("expected an unknown denomination to be rejected")
	}
}

func TestFromBaseUnit(t *testing.T) {
	wei, _ := new(big.Int).SetString("1500000000000000000", 10)
	got, err := common.FromBaseUnit(wei, "ether")
	if err != nil {
		t.Fatalf("FromBaseUnit: %s", err)
	}
	if got != "1.5" {
		t.Fatalf("expected 1.5, got %s", got)
	}

	got, err = common.FromBaseUnit(big.NewInt(12_000_000_000), "gwei")
	if err != nil {
		t.Fatalf("FromBaseUnit: %s", err)
	}
	if got != "12" {
		t.Fatalf("expected 12, got %s", got)
	}
}

func TestRoundTripThroughBaseUnit(t *testing.T) {
	wei, err := common.ToBaseUnit("0.123456789012345678", "ether")
	if err != nil {
		t.Fatalf("ToBaseUnit: %s", err)
	}
	back, err := common.FromBaseUnit(wei, "ether")
	if err != nil {
		t.Fatalf("FromBaseUnit: %s", err)
	}
	if back != "0.123456789012345678" {
		t.Fatalf("round trip lost precision: %s", back)
	}
}

func TestBigToFloatString(t *testing.T) {
	cases := []struct {
		value    string
		decimals uint64
		want     string
	}{
		{"1500000000000000000", 18, "1.5"},
		{"2000000000000000000", 18, "2"},
		{"123456", 6, "0.123456"},
		{"42", 0, "42"},
		{"0", 18, "0"},
	}

	for _, c := range cases {
		value, _ := new(big.Int).SetString(c.value, 10)
		if got := common.BigToFloatString(value, c.decimals); got != c.want {
			t.Errorf("BigToFloatString(%s, %d) = %s, want %s", c.value, c.decimals, got, c.want)
		}
	}
}

func TestUnitNamesOrdering(t *testing.T) {
	names := common.UnitNames()
	if len(names) == 0 {
		t.Fatal("expected some denominations")
	}
	if names[0] != "wei" {
		t.Fatalf("expected wei first, got %s", names[0])
	}
	if names[len(names)-1] != "ether" {
		t.Fatalf("expected ether last, got %s", names[len(names)-1])
	}
}
