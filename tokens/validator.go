// Package tokens checks SPL token accounts supplied alongside a machine.
package tokens

import (
	"errors"
	"fmt"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/program/token"

	"github.com/forestrie/go-candymachine/ledger"
)

var (
	ErrIncorrectOwner       = errors.New("tokens: account not owned by the token program")
	ErrUninitializedMint    = errors.New("tokens: mint is not initialized")
	ErrUninitializedAccount = errors.New("tokens: token account is not initialized")
	ErrInvalidAccountData   = errors.New("tokens: account data is not a valid token layout")
	ErrPaymentMintMismatch  = errors.New("tokens: wallet does not hold the payment mint")
)

const (
	// mint: COption<Pubkey> authority, u64 supply, u8 decimals, bool initialized
	mintInitializedOffset = 4 + 32 + 8 + 1
	// account: mint, owner, u64 amount, COption<Pubkey> delegate, u8 state
	accountStateOffset = 32 + 32 + 8 + 4 + 32
)

// Validator checks that a payment wallet is a token account for a given mint.
type Validator struct {
	ProgramID common.PublicKey
}

// NewValidator returns a Validator for the SPL token program.
func NewValidator() Validator {
	return Validator{ProgramID: common.TokenProgramID}
}

// ValidatePaymentMint requires mint to be an initialized mint and wallet to be
// an initialized token account of that mint, both owned by the token program.
func (v Validator) ValidatePaymentMint(mint, wallet *ledger.Account) error {
	if mint.Owner != v.ProgramID {
		return fmt.Errorf("%w: mint %s", ErrIncorrectOwner, mint.Key.ToBase58())
	}
	if wallet.Owner != v.ProgramID {
		return fmt.Errorf("%w: wallet %s", ErrIncorrectOwner, wallet.Key.ToBase58())
	}

	if uint64(len(mint.Data)) != token.MintAccountSize {
		return fmt.Errorf("%w: mint is %d bytes", ErrInvalidAccountData, len(mint.Data))
	}
	if mint.Data[mintInitializedOffset] == 0 {
		return fmt.Errorf("%w: %s", ErrUninitializedMint, mint.Key.ToBase58())
	}
	m, err := token.MintAccountFromData(mint.Data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAccountData, err)
	}
	if !m.IsInitialized {
		return fmt.Errorf("%w: %s", ErrUninitializedMint, mint.Key.ToBase58())
	}

	if uint64(len(wallet.Data)) != token.TokenAccountSize {
		return fmt.Errorf("%w: wallet is %d bytes", ErrInvalidAccountData, len(wallet.Data))
	}
	if wallet.Data[accountStateOffset] == 0 {
		return fmt.Errorf("%w: %s", ErrUninitializedAccount, wallet.Key.ToBase58())
	}
	ta, err := token.TokenAccountFromData(wallet.Data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAccountData, err)
	}
	if ta.Mint != mint.Key {
		return fmt.Errorf("%w: wallet mint %s, expected %s", ErrPaymentMintMismatch, ta.Mint.ToBase58(), mint.Key.ToBase58())
	}
	return nil
}
