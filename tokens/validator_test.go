package tokens

import (
	"testing"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/program/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-candymachine/ledger"
)

func pk(b byte) common.PublicKey {
	return common.PublicKeyFromBytes([]byte{b, 7, 7, 7})
}

func mintAccount(key common.PublicKey, initialized bool) *ledger.Account {
	a := ledger.NewAccount(key, common.TokenProgramID, 1461600, token.MintAccountSize)
	a.Data[44] = 6 // decimals
	if initialized {
		a.Data[mintInitializedOffset] = 1
	}
	return a
}

func walletAccount(key, mint, owner common.PublicKey, initialized bool) *ledger.Account {
	a := ledger.NewAccount(key, common.TokenProgramID, 2039280, token.TokenAccountSize)
	copy(a.Data[0:32], mint[:])
	copy(a.Data[32:64], owner[:])
	if initialized {
		a.Data[accountStateOffset] = 1
	}
	return a
}

func TestValidatePaymentMint(t *testing.T) {
	v := NewValidator()
	mintKey := pk(1)

	tests := []struct {
		name    string
		mint    *ledger.Account
		wallet  *ledger.Account
		wantErr error
	}{
		{
			name:   "matching mint",
			mint:   mintAccount(mintKey, true),
			wallet: walletAccount(pk(2), mintKey, pk(3), true),
		},
		{
			name:    "wallet holds another mint",
			mint:    mintAccount(mintKey, true),
			wallet:  walletAccount(pk(2), pk(9), pk(3), true),
			wantErr: ErrPaymentMintMismatch,
		},
		{
			name:    "uninitialized mint",
			mint:    mintAccount(mintKey, false),
			wallet:  walletAccount(pk(2), mintKey, pk(3), true),
			wantErr: ErrUninitializedMint,
		},
		{
			name:    "uninitialized wallet",
			mint:    mintAccount(mintKey, true),
			wallet:  walletAccount(pk(2), mintKey, pk(3), false),
			wantErr: ErrUninitializedAccount,
		},
		{
			name: "mint owned by system program",
			mint: func() *ledger.Account {
				a := mintAccount(mintKey, true)
				a.Owner = common.SystemProgramID
				return a
			}(),
			wallet:  walletAccount(pk(2), mintKey, pk(3), true),
			wantErr: ErrIncorrectOwner,
		},
		{
			name: "wallet owned by system program",
			mint: mintAccount(mintKey, true),
			wallet: func() *ledger.Account {
				a := walletAccount(pk(2), mintKey, pk(3), true)
				a.Owner = common.SystemProgramID
				return a
			}(),
			wantErr: ErrIncorrectOwner,
		},
		{
			name:    "wallet too short",
			mint:    mintAccount(mintKey, true),
			wallet:  ledger.NewAccount(pk(2), common.TokenProgramID, 0, 64),
			wantErr: ErrInvalidAccountData,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidatePaymentMint(tt.mint, tt.wallet)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
