package accountstore

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-candymachine/features"
	"github.com/forestrie/go-candymachine/layout"
	"github.com/forestrie/go-candymachine/ledger"
	"github.com/forestrie/go-candymachine/machine"
	"github.com/forestrie/go-candymachine/machinetesting"
)

var errPreconditionFailed = errors.New("precondition failed")

// memoryStore applies write conditions the way the blob service does.
type memoryStore struct {
	objects map[string]Object
	version int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{objects: map[string]Object{}}
}

func (s *memoryStore) Put(
	_ context.Context, path string, data []byte, tags map[string]string, cond WriteCondition) error {
	cur, exists := s.objects[path]
	if cond.FailIfExists && exists {
		return errPreconditionFailed
	}
	if cond.ETag != "" && (!exists || cur.ETag != cond.ETag) {
		return errPreconditionFailed
	}
	s.version++
	stored := map[string]string{}
	for k, v := range tags {
		stored[k] = v
	}
	s.objects[path] = Object{
		Data:          append([]byte(nil), data...),
		Tags:          stored,
		ETag:          fmt.Sprintf("etag-%d", s.version),
		LastModified:  time.Now(),
		ContentLength: int64(len(data)),
	}
	return nil
}

func (s *memoryStore) Read(_ context.Context, path string) (Object, error) {
	obj, ok := s.objects[path]
	if !ok {
		return Object{}, fmt.Errorf("%s: %w", path, ErrBlobNotFound)
	}
	return obj, nil
}

func newMachine(t *testing.T, tc *machinetesting.TestContext, items uint64, hidden bool) *ledger.Account {
	cfg := tc.NewConfigurationData(items, "ABC", 2)
	if hidden {
		cfg = tc.NewHiddenConfigurationData(items, "ABC")
	}
	size, err := layout.RequiredSize(cfg.LayoutParams())
	require.NoError(t, err)

	payer := tc.NewWallet(1_000_000_000)
	acc := tc.NewAllocatedAccount(machine.ProgramID, size, 0)
	i := machine.NewInitializer(tc.Log, tc.Ledger)
	_, err = i.Initialize(context.Background(), machine.InitializeRequest{
		Machine:   acc,
		Authority: payer.Key,
		Wallet:    payer.Key,
		Payer:     payer.Key,
		Data:      cfg,
	})
	require.NoError(t, err)
	return acc
}

func newTestContext(t *testing.T) machinetesting.TestContext {
	return machinetesting.NewTestContext(t, machinetesting.TestConfig{Seed: 42, TestLabelPrefix: t.Name()})
}

func TestNewAccountContext(t *testing.T) {
	tc := newTestContext(t)

	acc := newMachine(t, &tc, 100, false)
	ac, err := NewAccountContext(acc)
	require.NoError(t, err)

	assert.True(t, ac.Creating)
	assert.Equal(t, AccountBlobPath(acc.Key), ac.BlobPath)
	assert.Equal(t, acc.Data, ac.Data)
	assert.Equal(t, "100", ac.Tags[TagKeyItemsAvailable])
	assert.Equal(t, LayoutIndexed, ac.Tags[TagKeyLayout])
	assert.Equal(t, machine.ProgramID.ToBase58(), ac.Tags[TagKeyOwner])

	flags, err := FeatureFlags(ac.Tags)
	require.NoError(t, err)
	assert.True(t, flags.IsSet(features.SwapRemove))

	hidden := newMachine(t, &tc, 100, true)
	ac, err = NewAccountContext(hidden)
	require.NoError(t, err)
	assert.Equal(t, LayoutHidden, ac.Tags[TagKeyLayout])
	flags, err = FeatureFlags(ac.Tags)
	require.NoError(t, err)
	assert.False(t, flags.IsSet(features.SwapRemove))

	plain := tc.NewAllocatedAccount(machine.ProgramID, 64, 0)
	_, err = NewAccountContext(plain)
	assert.ErrorIs(t, err, ErrNotMachineData)
}

func TestCommitter_createReadUpdate(t *testing.T) {
	ctx := context.Background()
	tc := newTestContext(t)
	store := newMemoryStore()
	c := NewCommitter(tc.Log, store)

	acc := newMachine(t, &tc, 50, false)
	ac, err := NewAccountContext(acc)
	require.NoError(t, err)
	require.NoError(t, c.CommitContext(ctx, &ac))
	assert.False(t, ac.Creating)

	// a second create of the same account fails
	again, err := NewAccountContext(acc)
	require.NoError(t, err)
	assert.ErrorIs(t, c.CommitContext(ctx, &again), errPreconditionFailed)

	// an update without a read is refused before reaching the store
	assert.ErrorIs(t, c.CommitContext(ctx, &ac), ErrETagRequired)

	read, err := c.ReadContext(ctx, acc.Key)
	require.NoError(t, err)
	assert.Equal(t, acc.Data, read.Data)
	assert.NotEmpty(t, read.ETag)
	assert.False(t, read.LastRead.IsZero())

	restored, err := read.Account()
	require.NoError(t, err)
	assert.Equal(t, acc.Key, restored.Key)
	assert.Equal(t, acc.Owner, restored.Owner)
	assert.Equal(t, acc.Lamports, restored.Lamports)
	assert.Equal(t, acc.Data, restored.Data)

	acc.Data[len(acc.Data)-1] = 7
	require.NoError(t, read.Update(acc))
	stale := read
	require.NoError(t, c.CommitContext(ctx, &read))

	// the etag from before the update no longer matches
	assert.ErrorIs(t, c.CommitContext(ctx, &stale), errPreconditionFailed)

	latest, err := c.ReadContext(ctx, acc.Key)
	require.NoError(t, err)
	assert.Equal(t, byte(7), latest.Data[len(latest.Data)-1])
}

func TestCommitter_ReadContextErrors(t *testing.T) {
	ctx := context.Background()
	tc := newTestContext(t)
	store := newMemoryStore()
	c := NewCommitter(tc.Log, store)

	_, err := c.ReadContext(ctx, tc.NewKey())
	assert.ErrorIs(t, err, ErrBlobNotFound)
	assert.True(t, IsBlobNotFound(err))

	acc := newMachine(t, &tc, 20, false)
	ac, err := NewAccountContext(acc)
	require.NoError(t, err)
	ac.Tags[TagKeyItemsAvailable] = "21"
	require.NoError(t, c.CommitContext(ctx, &ac))
	_, err = c.ReadContext(ctx, acc.Key)
	assert.ErrorIs(t, err, ErrIncorrectTag)

	other := newMachine(t, &tc, 20, false)
	ac, err = NewAccountContext(other)
	require.NoError(t, err)
	delete(ac.Tags, TagKeyItemsAvailable)
	require.NoError(t, c.CommitContext(ctx, &ac))
	_, err = c.ReadContext(ctx, other.Key)
	assert.ErrorIs(t, err, ErrMissingTag)
}

func TestAccountContext_UpdateOtherAccount(t *testing.T) {
	tc := newTestContext(t)
	a := newMachine(t, &tc, 5, false)
	b := newMachine(t, &tc, 5, false)
	ac, err := NewAccountContext(a)
	require.NoError(t, err)
	assert.ErrorIs(t, ac.Update(b), ErrBadBlobPath)
}

func TestAccountKeyFromPath(t *testing.T) {
	key := common.PublicKeyFromString("cndy3Z4yapfJBmL3ShUp5exZKqR3z33thTzeNMm2gRZ")
	path := AccountBlobPath(key)
	assert.Equal(t, "v1/machines/cndy3Z4yapfJBmL3ShUp5exZKqR3z33thTzeNMm2gRZ.account", path)

	got, err := AccountKeyFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, key, got)

	for _, bad := range []string{
		"v1/mmrs/cndy3Z4yapfJBmL3ShUp5exZKqR3z33thTzeNMm2gRZ.account",
		"v1/machines/cndy3Z4yapfJBmL3ShUp5exZKqR3z33thTzeNMm2gRZ.log",
		"v1/machines/.account",
		"v1/machines/a/b.account",
	} {
		_, err := AccountKeyFromPath(bad)
		assert.ErrorIs(t, err, ErrBadBlobPath, bad)
	}
}

func TestCommitter_ReadContextNoSnapshot(t *testing.T) {
	ctx := context.Background()
	tc := newTestContext(t)
	c := NewCommitter(tc.Log, newMemoryStore())

	acc := newMachine(t, &tc, 10, false)
	_, err := c.ReadContext(ctx, acc.Key)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBlobNotFound))

	// once committed the same read succeeds
	ac, err := NewAccountContext(acc)
	require.NoError(t, err)
	require.NoError(t, c.CommitContext(ctx, &ac))
	_, err = c.ReadContext(ctx, acc.Key)
	require.NoError(t, err)
}

func TestWrapBlobNotFound(t *testing.T) {
	assert.NoError(t, WrapBlobNotFound(nil))
	assert.False(t, IsBlobNotFound(nil))

	other := errors.New("connection reset")
	assert.Equal(t, other, WrapBlobNotFound(other))
	assert.False(t, IsBlobNotFound(other))
	assert.False(t, IsBlobNotFound(WrapBlobNotFound(other)))

	assert.True(t, IsBlobNotFound(fmt.Errorf("v1/machines/x.account: %w", ErrBlobNotFound)))
}

func TestAccountContext_AccountTags(t *testing.T) {
	tc := newTestContext(t)
	acc := newMachine(t, &tc, 5, false)

	tests := []struct {
		name    string
		mutate  func(tags map[string]string)
		wantErr error
	}{
		{name: "intact", mutate: func(map[string]string) {}},
		{
			name:    "owner not base58",
			mutate:  func(tags map[string]string) { tags[TagKeyOwner] = "not-a-key!" },
			wantErr: ErrIncorrectTag,
		},
		{
			name:    "owner truncated",
			mutate:  func(tags map[string]string) { tags[TagKeyOwner] = tags[TagKeyOwner][:10] },
			wantErr: ErrIncorrectTag,
		},
		{
			name:    "owner missing",
			mutate:  func(tags map[string]string) { delete(tags, TagKeyOwner) },
			wantErr: ErrMissingTag,
		},
		{
			name:    "lamports not a number",
			mutate:  func(tags map[string]string) { tags[TagKeyLamports] = "lots" },
			wantErr: ErrIncorrectTag,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ac, err := NewAccountContext(acc)
			require.NoError(t, err)
			tt.mutate(ac.Tags)

			got, err := ac.Account()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, acc.Owner, got.Owner)
		})
	}
}
