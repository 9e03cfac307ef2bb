package common

import (
	"math/big"
	"time"
)

// TimestampToTime converts a unix timestamp from contract storage to a
// time.Time. Zero means unset and maps to the zero time.
func TimestampToTime(ts *big.Int) time.Time {
	if ts == nil || ts.Sign() == 0 {
		return time.Time{}
	}
	return time.Unix(ts.Int64(), 0).UTC()
}

// TimeToTimestamp reverses TimestampToTime: the zero time maps back to a
// zero timestamp.
func TimeToTimestamp(t time.Time) *big.Int {
	if t.IsZero() {
		return big.NewInt(0)
	}
	return big.NewInt(t.Unix())
}
