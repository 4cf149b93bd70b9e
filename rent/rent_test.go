package rent

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinimumBalance(t *testing.T) {
	ctx := context.Background()

	// 0 byte accounts still pay for the storage overhead
	zero, err := DefaultRent.MinimumBalance(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(890_880), zero)

	// the token program's 165 byte accounts
	tokenAccount, err := DefaultRent.MinimumBalance(ctx, 165)
	require.NoError(t, err)
	assert.Equal(t, uint64(2_039_280), tokenAccount)

	prev := zero
	for size := uint64(1); size < 2048; size++ {
		b, err := DefaultRent.MinimumBalance(ctx, size)
		require.NoError(t, err)
		require.Greater(t, b, prev)
		prev = b
	}
}

func TestMinimumBalance_Overflow(t *testing.T) {
	_, err := DefaultRent.MinimumBalance(context.Background(), math.MaxUint64)
	require.ErrorIs(t, err, ErrBalanceOverflow)
	_, err = DefaultRent.MinimumBalance(context.Background(), math.MaxUint64/1000)
	require.ErrorIs(t, err, ErrBalanceOverflow)
}

func TestRent_IsCalculator(t *testing.T) {
	var _ Calculator = DefaultRent
	var _ Calculator = &RPCCalculator{}
}
