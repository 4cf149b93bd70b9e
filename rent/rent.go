// Package rent computes the lamport balance an account needs to be exempt
// from rent.
package rent

import (
	"context"
	"errors"
	"math"
)

const (
	// AccountStorageOverhead is charged on top of the data length of every account.
	AccountStorageOverhead = 128

	DefaultLamportsPerByteYear = 3480
	DefaultExemptionThreshold  = 2.0
)

var ErrBalanceOverflow = errors.New("rent: minimum balance overflows")

// Calculator answers the minimum rent exempt balance for a data length.
type Calculator interface {
	MinimumBalance(ctx context.Context, dataLen uint64) (uint64, error)
}

// Rent mirrors the runtime's rent sysvar.
type Rent struct {
	LamportsPerByteYear uint64
	ExemptionThreshold  float64
}

// DefaultRent is the rent configuration of every public cluster.
var DefaultRent = Rent{
	LamportsPerByteYear: DefaultLamportsPerByteYear,
	ExemptionThreshold:  DefaultExemptionThreshold,
}

// MinimumBalance returns
//
//	((AccountStorageOverhead + dataLen) * LamportsPerByteYear) * ExemptionThreshold
//
// truncated to whole lamports.
func (r Rent) MinimumBalance(_ context.Context, dataLen uint64) (uint64, error) {
	if dataLen > math.MaxUint64-AccountStorageOverhead {
		return 0, ErrBalanceOverflow
	}
	bytes := AccountStorageOverhead + dataLen
	if r.LamportsPerByteYear != 0 && bytes > math.MaxUint64/r.LamportsPerByteYear {
		return 0, ErrBalanceOverflow
	}
	balance := float64(bytes*r.LamportsPerByteYear) * r.ExemptionThreshold
	if balance >= math.MaxUint64 {
		return 0, ErrBalanceOverflow
	}
	return uint64(balance), nil
}
