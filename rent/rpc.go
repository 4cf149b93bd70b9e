package rent

import (
	"context"
	"fmt"

	"github.com/blocto/solana-go-sdk/client"
	"github.com/blocto/solana-go-sdk/rpc"
)

// RPCCalculator asks a cluster for the minimum balance.
type RPCCalculator struct {
	Client *client.Client
}

// NewRPCCalculator connects to endpoint, or devnet if endpoint is empty.
func NewRPCCalculator(endpoint string) *RPCCalculator {
	if endpoint == "" {
		endpoint = rpc.DevnetRPCEndpoint
	}
	return &RPCCalculator{Client: client.NewClient(endpoint)}
}

func (c *RPCCalculator) MinimumBalance(ctx context.Context, dataLen uint64) (uint64, error) {
	lamports, err := c.Client.GetMinimumBalanceForRentExemption(ctx, dataLen)
	if err != nil {
		return 0, fmt.Errorf("GetMinimumBalanceForRentExemption: %w", err)
	}
	return lamports, nil
}
