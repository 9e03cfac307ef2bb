package common

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// StringToBytes32 right-pads s with zero bytes into a bytes32 value.
func StringToBytes32(s string) ([32]byte, error) {
	result := [32]byte{}
	if len(s) > 32 {
		return result, fmt.Errorf("%q doesn't fit in 32 bytes", s)
	}
	copy(result[:], s)
	return result, nil
}

// Bytes32ToString reverses StringToBytes32, dropping the zero padding.
func Bytes32ToString(b [32]byte) string {
	return string(bytes.TrimRight(b[:], "\x00"))
}

// BytesToString decodes b as text with trailing zero bytes stripped, the
// layout contracts use when they store short strings in fixed cells.
func BytesToString(b []byte) string {
	return string(bytes.TrimRight(b, "\x00"))
}

// IsZeroAddress reports whether addr is the all-zero address.
func IsZeroAddress(addr common.Address) bool {
	return addr == common.Address{}
}

// HexToAddress parses a 0x-prefixed address, rejecting malformed input
// instead of silently truncating it the way common.HexToAddress does.
func HexToAddress(hex string) (common.Address, error) {
	if !common.IsHexAddress(hex) {
		return common.Address{}, fmt.Errorf("%q is not a valid address", hex)
	}
	return common.HexToAddress(hex), nil
}
