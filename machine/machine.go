// Package machine initializes candy machine accounts and releases them.
//
// Initialization writes the header record at offset zero of a caller
// allocated, zero filled account and, unless the machine uses hidden
// settings, the line count that opens the trailing region. When the account
// was allocated with the smaller compatibility size, the rent for the full
// size is transferred in so that a later resize cannot fail for lack of
// funds. The account data is never resized here.
package machine

import (
	"context"
	"errors"

	"github.com/blocto/solana-go-sdk/common"

	"github.com/forestrie/go-candymachine/ledger"
)

var (
	ErrAuthorityMismatch       = errors.New("machine: signer is not the machine authority")
	ErrIncorrectOwner          = errors.New("machine: account is not owned by the machine program")
	ErrMismatchedCollectionPDA = errors.New("machine: collection PDA does not belong to this machine")
	ErrMissingWalletAccount    = errors.New("machine: a payment mint requires the wallet token account")
	ErrWalletMismatch          = errors.New("machine: wallet account does not match the wallet address")
)

// Transferrer moves lamports between accounts. Both ledger.Ledger and
// ledger.InstructionBatch implement it.
type Transferrer interface {
	Transfer(ctx context.Context, from, to common.PublicKey, lamports uint64) error
}

// PaymentMintValidator checks a token mint and the token account that will
// receive payments in it.
type PaymentMintValidator interface {
	ValidatePaymentMint(mint, wallet *ledger.Account) error
}

// Accounts is the account access needed to withdraw.
type Accounts interface {
	Get(key common.PublicKey) (*ledger.Account, error)
	Close(ctx context.Context, key, dest common.PublicKey) error
}
