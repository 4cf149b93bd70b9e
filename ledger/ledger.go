package ledger

import (
	"context"
	"fmt"
	"sync"

	"github.com/blocto/solana-go-sdk/common"
)

// Ledger is an in-memory account store. All methods are safe for concurrent
// use; Atomic serializes whole units of work.
type Ledger struct {
	mu       sync.Mutex
	accounts map[common.PublicKey]*Account

	// held by Atomic for the duration of its callback
	unit sync.Mutex
}

func New() *Ledger {
	return &Ledger{accounts: map[common.PublicKey]*Account{}}
}

// Put adds a new account. The ledger takes ownership of a.
func (l *Ledger) Put(a *Account) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.accounts[a.Key]; ok {
		return fmt.Errorf("%w: %s", ErrAccountExists, a.Key.ToBase58())
	}
	l.accounts[a.Key] = a
	return nil
}

// Get returns the live account for key. Callers that write its Data must be
// running inside Atomic.
func (l *Ledger) Get(key common.PublicKey) (*Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, ok := l.accounts[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, key.ToBase58())
	}
	return a, nil
}

// Balance returns the lamports held by key.
func (l *Ledger) Balance(key common.PublicKey) (uint64, error) {
	a, err := l.Get(key)
	if err != nil {
		return 0, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return a.Lamports, nil
}

// Transfer moves lamports from one account to another. Either both balances
// change or neither does.
func (l *Ledger) Transfer(_ context.Context, from, to common.PublicKey, lamports uint64) error {
	if from == to {
		return ErrSelfTransfer
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	src, ok := l.accounts[from]
	if !ok {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, from.ToBase58())
	}
	dst, ok := l.accounts[to]
	if !ok {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, to.ToBase58())
	}
	if src.Lamports < lamports {
		return fmt.Errorf("%w: have %d need %d", ErrInsufficientFunds, src.Lamports, lamports)
	}
	if dst.Lamports+lamports < dst.Lamports {
		return ErrBalanceOverflow
	}
	src.Lamports -= lamports
	dst.Lamports += lamports
	return nil
}

// Close drains key into dest and removes it, the equivalent of closing an
// account and refunding its lamports.
func (l *Ledger) Close(_ context.Context, key, dest common.PublicKey) error {
	if key == dest {
		return ErrSelfTransfer
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.accounts[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, key.ToBase58())
	}
	d, ok := l.accounts[dest]
	if !ok {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, dest.ToBase58())
	}
	if d.Lamports+a.Lamports < d.Lamports {
		return ErrBalanceOverflow
	}
	d.Lamports += a.Lamports
	a.Lamports = 0
	clear(a.Data)
	delete(l.accounts, key)
	return nil
}

// Atomic runs fn as a single unit of work. If fn fails every account is
// restored to its state before the call, including its data.
func (l *Ledger) Atomic(fn func() error) error {
	l.unit.Lock()
	defer l.unit.Unlock()

	l.mu.Lock()
	snapshot := make(map[common.PublicKey]*Account, len(l.accounts))
	for k, a := range l.accounts {
		snapshot[k] = a.Clone()
	}
	l.mu.Unlock()

	err := fn()
	if err == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	// restore in place so pointers held by the caller see the rollback
	for k, saved := range snapshot {
		if live, ok := l.accounts[k]; ok {
			live.Lamports = saved.Lamports
			live.Owner = saved.Owner
			live.Data = saved.Data
			continue
		}
		l.accounts[k] = saved
	}
	for k := range l.accounts {
		if _, ok := snapshot[k]; !ok {
			delete(l.accounts, k)
		}
	}
	return err
}
