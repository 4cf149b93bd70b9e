package machine

import (
	"context"
	"fmt"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/datatrails/go-datatrails-common/logger"

	"github.com/forestrie/go-candymachine/record"
)

// CollectionSeed prefixes the seeds of a machine's collection PDA.
const CollectionSeed = "collection"

type WithdrawRequest struct {
	Machine   common.PublicKey
	Authority common.PublicKey
	// CollectionPDA is closed along with the machine when set.
	CollectionPDA *common.PublicKey
}

// Withdrawer closes machine accounts and returns their lamports to the
// authority.
type Withdrawer struct {
	Log      logger.Logger
	Accounts Accounts
	Options  Options
}

func NewWithdrawer(log logger.Logger, accounts Accounts, opts ...Option) *Withdrawer {
	return &Withdrawer{
		Log:      log,
		Accounts: accounts,
		Options:  NewOptions(opts...),
	}
}

// CollectionPDA derives the collection PDA of machine under programID.
func CollectionPDA(machine, programID common.PublicKey) (common.PublicKey, error) {
	pda, _, err := common.FindProgramAddress(
		[][]byte{[]byte(CollectionSeed), machine.Bytes()}, programID)
	return pda, err
}

// Withdraw closes the machine, and its collection PDA if given, to the
// authority recorded in the machine header.
func (w *Withdrawer) Withdraw(ctx context.Context, req WithdrawRequest) error {

	acc, err := w.Accounts.Get(req.Machine)
	if err != nil {
		return err
	}
	if acc.Owner != w.Options.programID {
		return fmt.Errorf("%w: %s", ErrIncorrectOwner, acc.Owner.ToBase58())
	}
	rec, err := record.Decode(acc.Data)
	if err != nil {
		return err
	}
	if rec.Authority != req.Authority {
		return fmt.Errorf("%w: %s", ErrAuthorityMismatch, req.Authority.ToBase58())
	}

	if req.CollectionPDA != nil {
		want, err := CollectionPDA(req.Machine, w.Options.programID)
		if err != nil {
			return err
		}
		if *req.CollectionPDA != want {
			return fmt.Errorf("%w: got %s want %s",
				ErrMismatchedCollectionPDA, req.CollectionPDA.ToBase58(), want.ToBase58())
		}
		if err := w.Accounts.Close(ctx, want, req.Authority); err != nil {
			return err
		}
	}

	lamports := acc.Lamports
	if err := w.Accounts.Close(ctx, req.Machine, req.Authority); err != nil {
		return err
	}
	w.Log.Infof("withdraw: %s closed, %d lamports to %s",
		req.Machine.ToBase58(), lamports, req.Authority.ToBase58())
	return nil
}
