package machine

import (
	"context"
	"fmt"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/datatrails/go-datatrails-common/logger"

	"github.com/forestrie/go-candymachine/ledger"
	"github.com/forestrie/go-candymachine/rent"
)

// Funding records what EnsureCapacity decided.
type Funding struct {
	// Required is the account size the balance was checked against.
	Required uint64
	// MinimumBalance is the rent exempt balance for Required. Zero when the
	// account was already large enough.
	MinimumBalance uint64
	// Deficit is the amount transferred, zero if nothing was.
	Deficit uint64
}

// Transferred reports whether a top up was made.
func (f Funding) Transferred() bool {
	return f.Deficit > 0
}

// StorageGrower funds accounts that are smaller than their layout requires.
type StorageGrower struct {
	Rent  rent.Calculator
	Funds Transferrer
	Log   logger.Logger
}

func NewStorageGrower(log logger.Logger, funds Transferrer, calc rent.Calculator) *StorageGrower {
	return &StorageGrower{
		Rent:  calc,
		Funds: funds,
		Log:   log,
	}
}

// EnsureCapacity tops up target so that it holds the minimum balance for an
// account of required bytes.
//
// Nothing happens if the data is already that large. Otherwise the deficit,
// clamped at zero, is transferred from payer. The data length is not changed.
func (g *StorageGrower) EnsureCapacity(
	ctx context.Context, target *ledger.Account, required uint64, payer common.PublicKey) (Funding, error) {

	f := Funding{Required: required}
	if target.DataLen() >= required {
		return f, nil
	}

	balance, err := g.Rent.MinimumBalance(ctx, required)
	if err != nil {
		return f, err
	}
	f.MinimumBalance = balance
	if balance <= target.Lamports {
		g.Log.Debugf("storage: %s funded for %d bytes, have %d need %d",
			target.Key.ToBase58(), required, target.Lamports, balance)
		return f, nil
	}

	deficit := balance - target.Lamports
	if err := g.Funds.Transfer(ctx, payer, target.Key, deficit); err != nil {
		return f, fmt.Errorf("funding %d lamports for %d bytes: %w", deficit, required, err)
	}
	f.Deficit = deficit
	g.Log.Infof("storage: %s topped up %d lamports for %d bytes (allocated %d)",
		target.Key.ToBase58(), deficit, required, target.DataLen())
	return f, nil
}
