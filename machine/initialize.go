package machine

import (
	"context"
	"fmt"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/datatrails/go-datatrails-common/logger"

	"github.com/forestrie/go-candymachine/features"
	"github.com/forestrie/go-candymachine/layout"
	"github.com/forestrie/go-candymachine/ledger"
	"github.com/forestrie/go-candymachine/record"
)

// InitializeRequest carries the accounts and configuration for a new machine.
type InitializeRequest struct {
	// Machine is the allocated, zero filled machine account. Its data is
	// written in place.
	Machine   *ledger.Account
	Authority common.PublicKey
	// Wallet receives mint proceeds. It may equal Authority.
	Wallet common.PublicKey
	// Payer funds any rent shortfall.
	Payer common.PublicKey
	Data  record.ConfigurationData

	// PaymentMint, when set, makes minting payable in that token. The wallet
	// must then be a token account of the mint, supplied as WalletAccount.
	PaymentMint   *ledger.Account
	WalletAccount *ledger.Account
}

type InitializeResult struct {
	Record record.MachineRecord
	// HeaderLen is the number of bytes written at offset 0.
	HeaderLen int
	// Required is the full allocated size for the layout.
	Required uint64
	Funding  Funding
}

// Initializer writes new machine accounts.
type Initializer struct {
	Log     logger.Logger
	Grower  *StorageGrower
	Options Options
}

func NewInitializer(log logger.Logger, funds Transferrer, opts ...Option) *Initializer {
	options := NewOptions(opts...)
	return &Initializer{
		Log:     log,
		Grower:  NewStorageGrower(log, funds, options.rent),
		Options: options,
	}
}

// Initialize writes the header and, for indexed layouts, the empty line
// count into req.Machine.
//
// Every check runs before the first write to the account data. A funding
// transfer, if one is needed, happens before the writes. Any error means the
// whole attempt is void; callers that need the funding undone run Initialize
// inside ledger.Ledger.Atomic.
func (i *Initializer) Initialize(ctx context.Context, req InitializeRequest) (InitializeResult, error) {

	var res InitializeResult

	params := req.Data.LayoutParams()
	if err := layout.CheckCapacity(req.Machine.DataLen(), params); err != nil {
		return res, err
	}

	rec := record.MachineRecord{
		Authority:     req.Authority,
		Wallet:        req.Wallet,
		ItemsRedeemed: 0,
		Data:          req.Data,
	}
	rec.Data.Creators = append([]record.Creator(nil), req.Data.Creators...)
	// The identifier is not used to look machines up, it is reset so that it
	// can carry feature flags.
	rec.Data.UUID = features.DefaultIdentifier

	if req.PaymentMint != nil {
		if req.WalletAccount == nil {
			return res, ErrMissingWalletAccount
		}
		if req.WalletAccount.Key != req.Wallet {
			return res, fmt.Errorf("%w: %s vs %s",
				ErrWalletMismatch, req.WalletAccount.Key.ToBase58(), req.Wallet.ToBase58())
		}
		if err := i.Options.validator.ValidatePaymentMint(req.PaymentMint, req.WalletAccount); err != nil {
			return res, err
		}
		mint := req.PaymentMint.Key
		rec.TokenMint = &mint
	}

	symbol, err := record.PadSymbol(rec.Data.Symbol)
	if err != nil {
		return res, err
	}
	rec.Data.Symbol = symbol
	if err := record.CheckCreators(rec.Data.Creators); err != nil {
		return res, err
	}

	if params.Hidden {
		res.Required = layout.ConfigArrayStart
	} else {
		res.Required, err = layout.RequiredSize(params)
		if err != nil {
			return res, err
		}
		res.Funding, err = i.Grower.EnsureCapacity(ctx, req.Machine, res.Required, req.Payer)
		if err != nil {
			return res, err
		}
		if err := rec.Data.SetFeature(features.SwapRemove); err != nil {
			return res, err
		}
	}

	res.HeaderLen, err = record.EncodeTo(req.Machine.Data, rec)
	if err != nil {
		return res, err
	}

	if !params.Hidden {
		if err := InitIndex(req.Machine.Data, params.ItemsAvailable); err != nil {
			return res, err
		}
	}

	res.Record = rec
	i.Log.Debugf("initialize: %s items=%d hidden=%v header=%d required=%d allocated=%d funded=%d",
		req.Machine.Key.ToBase58(), params.ItemsAvailable, params.Hidden,
		res.HeaderLen, res.Required, req.Machine.DataLen(), res.Funding.Deficit)
	return res, nil
}
