package machinetesting

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/datatrails/go-datatrails-common/azblob"
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-candymachine/ledger"
)

type TestContext struct {
	Log    logger.Logger
	Ledger *ledger.Ledger
	Storer *azblob.Storer
	T      *testing.T

	rng *rand.Rand
}

type TestConfig struct {
	// Seeds the key generator. It is normal to force it to some fixed value
	// so that the generated keys are the same from run to run.
	Seed            int64
	TestLabelPrefix string
	Container       string // can be "" defaults to TestLabelPrefix
}

// NewTestContext returns a context with an empty ledger and no blob store.
func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	c := TestContext{
		T:      t,
		Ledger: ledger.New(),
		rng:    rand.New(rand.NewSource(cfg.Seed)),
	}
	logger.New("INFO")
	c.Log = logger.Sugar.WithServiceName(cfg.TestLabelPrefix)
	return c
}

// NewAzuriteTestContext is NewTestContext connected to the blob store
// emulator.
func NewAzuriteTestContext(t *testing.T, testLabelPrefix string) TestContext {
	cfg := TestConfig{
		Seed:            1698342521,
		TestLabelPrefix: testLabelPrefix,
		Container:       strings.ReplaceAll(strings.ToLower(testLabelPrefix), "_", ""),
	}
	c := NewTestContext(t, cfg)

	var err error
	c.Storer, err = azblob.NewDev(azblob.NewDevConfigFromEnv(), cfg.Container)
	if err != nil {
		t.Fatalf("failed to connect to blob store emulator: %v", err)
	}
	client := c.Storer.GetServiceClient()
	// Note: we expect a 'already exists' error here and  ignore it.
	_, _ = client.CreateContainer(context.Background(), cfg.Container, nil)

	return c
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

func (c *TestContext) GetStorer() *azblob.Storer {
	return c.Storer
}

// NewKey returns the next generated address.
func (c *TestContext) NewKey() common.PublicKey {
	var b [32]byte
	_, _ = c.rng.Read(b[:])
	return common.PublicKeyFromBytes(b[:])
}

// NewWallet adds a system owned account holding lamports and no data.
func (c *TestContext) NewWallet(lamports uint64) *ledger.Account {
	a := ledger.NewAccount(c.NewKey(), common.SystemProgramID, lamports, 0)
	require.NoError(c.T, c.Ledger.Put(a))
	return a
}

// NewAllocatedAccount adds a zero filled account of space bytes owned by
// owner, as the runtime leaves it after allocation.
func (c *TestContext) NewAllocatedAccount(owner common.PublicKey, space, lamports uint64) *ledger.Account {
	a := ledger.NewAccount(c.NewKey(), owner, lamports, space)
	require.NoError(c.T, c.Ledger.Put(a))
	return a
}

func (c *TestContext) DeleteBlobsByPrefix(blobPrefixPath string) {
	var err error
	var r *azblob.ListerResponse
	var blobs []string

	var marker azblob.ListMarker
	for {
		r, err = c.Storer.List(
			context.Background(),
			azblob.WithListPrefix(blobPrefixPath), azblob.WithListMarker(marker))

		require.NoError(c.T, err)

		for _, i := range r.Items {
			blobs = append(blobs, *i.Name)
		}
		if len(r.Items) == 0 || r.Marker == nil {
			break
		}
		marker = r.Marker
	}
	for _, blobPath := range blobs {
		err = c.Storer.Delete(context.Background(), blobPath)
		require.NoError(c.T, err)
	}
}
