package common

import (
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// unitExponents maps denomination names to their power of ten in wei.
var unitExponents = map[string]int32{
	"wei":        0,
	"kwei":       3,
	"babbage":    3,
	"mwei":       6,
	"lovelace":   6,
	"gwei":       9,
	"shannon":    9,
	"szabo":      12,
	"microether": 12,
	"finney":     15,
	"milliether": 15,
	"ether":      18,
}

// DefaultUnit is assumed when a conversion is asked for with an empty
// unit name.
const DefaultUnit = "ether"

func unitExponent(unit string) (int32, error) {
	if unit == "" {
		unit = DefaultUnit
	}
	exp, found := unitExponents[strings.ToLower(unit)]
	if !found {
		return 0, fmt.Errorf("unknown denomination %q", unit)
	}
	return exp, nil
}

// UnitNames lists the supported denomination names sorted by magnitude.
func UnitNames() []string {
	names := make([]string, 0, len(unitExponents))
	for name := range unitExponents {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if unitExponents[names[i]] != unitExponents[names[j]] {
			return unitExponents[names[i]] < unitExponents[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}

// ToBaseUnit converts a human amount in the named denomination to wei.
// The amount must not carry more fractional digits than the denomination
// can represent in whole wei.
func ToBaseUnit(amount string, unit string) (*big.Int, error) {
	exp, err := unitExponent(unit)
	if err != nil {
		return nil, err
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("couldn't parse amount %q: %w", amount, err)
	}
	shifted := d.Shift(exp)
	if !shifted.IsInteger() {
		return nil, fmt.Errorf("%s %s is not a whole number of wei", amount, unit)
	}
	return shifted.BigInt(), nil
}

// FromBaseUnit renders a wei amount in the named denomination.
func FromBaseUnit(wei *big.Int, unit string) (string, error) {
	exp, err := unitExponent(unit)
	if err != nil {
		return "", err
	}
	return decimal.NewFromBigInt(wei, -exp).String(), nil
}

// BigToFloatString renders a raw integer amount scaled down by the given
// number of decimal digits. Unlike FromBaseUnit it takes the decimal count
// directly, so it works for any token, not just the native one.
func BigToFloatString(value *big.Int, decimals uint64) string {
	return decimal.NewFromBigInt(value, -int32(decimals)).String()
}
