// Package ledger holds accounts in memory and moves lamports between them.
//
// It stands in for the runtime at the edges of the machine: a caller
// allocated, zero filled account buffer and an atomic transfer primitive.
package ledger

import (
	"errors"

	"github.com/blocto/solana-go-sdk/common"
)

var (
	ErrAccountNotFound   = errors.New("ledger: account not found")
	ErrAccountExists     = errors.New("ledger: account already exists")
	ErrInsufficientFunds = errors.New("ledger: insufficient funds for transfer")
	ErrBalanceOverflow   = errors.New("ledger: balance overflow")
	ErrSelfTransfer      = errors.New("ledger: source and destination are the same account")
)

// Account is one account: its address, owning program, balance and data.
type Account struct {
	Key      common.PublicKey
	Owner    common.PublicKey
	Lamports uint64
	Data     []byte
}

// NewAccount allocates a zero filled account of space bytes.
func NewAccount(key, owner common.PublicKey, lamports uint64, space uint64) *Account {
	return &Account{
		Key:      key,
		Owner:    owner,
		Lamports: lamports,
		Data:     make([]byte, space),
	}
}

// Clone returns a deep copy of a.
func (a *Account) Clone() *Account {
	c := *a
	c.Data = append([]byte(nil), a.Data...)
	return &c
}

// DataLen returns the allocated data length.
func (a *Account) DataLen() uint64 {
	return uint64(len(a.Data))
}
