package accountstore

import (
	"context"
	"fmt"
	"time"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/datatrails/go-datatrails-common/logger"
)

type Committer struct {
	Log   logger.Logger
	Store ObjectStore
}

func NewCommitter(log logger.Logger, store ObjectStore) *Committer {
	c := &Committer{
		Log:   log,
		Store: store,
	}
	return c
}

// CommitContext writes the account image.
//
// A new blob is written only if none exists at the path. An existing blob is
// replaced only if its etag still matches the one from the last read, so an
// update always requires a prior ReadContext.
func (c *Committer) CommitContext(ctx context.Context, ac *AccountContext) error {

	cond := WriteCondition{ETag: ac.ETag}
	if ac.ETag == "" && !ac.Creating {
		return fmt.Errorf("%w: %s", ErrETagRequired, ac.BlobPath)
	}
	if ac.Creating {
		cond.FailIfExists = true
	}

	if err := c.Store.Put(ctx, ac.BlobPath, ac.Data, ac.Tags, cond); err != nil {
		return err
	}
	c.Log.Debugf("accountstore: committed %s (%d bytes, creating=%v)", ac.BlobPath, len(ac.Data), ac.Creating)

	// The new etag is only known after a read.
	ac.Creating = false
	ac.ETag = ""
	return nil
}

// ReadContext reads the most recently committed image of the account at key.
// If none has been committed the error satisfies IsBlobNotFound.
func (c *Committer) ReadContext(ctx context.Context, key common.PublicKey) (AccountContext, error) {

	ac := AccountContext{
		Key:      key,
		BlobPath: AccountBlobPath(key),
	}
	obj, err := c.Store.Read(ctx, ac.BlobPath)
	if err != nil {
		return ac, err
	}
	ac.Data = obj.Data
	ac.Tags = obj.Tags
	if ac.Tags == nil {
		ac.Tags = map[string]string{}
	}
	ac.ETag = obj.ETag
	ac.LastModified = obj.LastModified
	ac.LastRead = time.Now()

	// The tags are written with the data, a mismatch means the blob was
	// written by something else.
	items, err := ItemsAvailable(ac.Tags)
	if err != nil {
		return ac, err
	}
	rec, err := ac.Record()
	if err != nil {
		return ac, fmt.Errorf("%w: %v", ErrNotMachineData, err)
	}
	if items != rec.Data.ItemsAvailable {
		return ac, fmt.Errorf("%w: %s %d vs %d", ErrIncorrectTag, TagKeyItemsAvailable, items, rec.Data.ItemsAvailable)
	}
	return ac, nil
}
