package ledger

import (
	"context"
	"sync"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/program/system"
	"github.com/blocto/solana-go-sdk/types"
)

// InstructionBatch collects transfers as system program instructions rather
// than executing them. The caller signs and sends them as one transaction,
// ahead of or together with the instruction that writes the account.
type InstructionBatch struct {
	mu           sync.Mutex
	instructions []types.Instruction
}

func (b *InstructionBatch) Transfer(_ context.Context, from, to common.PublicKey, lamports uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.instructions = append(b.instructions, system.Transfer(system.TransferParam{
		From:   from,
		To:     to,
		Amount: lamports,
	}))
	return nil
}

// Instructions returns the collected instructions in order.
func (b *InstructionBatch) Instructions() []types.Instruction {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]types.Instruction(nil), b.instructions...)
}
