package accountstore

import (
	"context"
	"fmt"
	"io"

	"github.com/datatrails/go-datatrails-common/azblob"
)

// BlobStore keeps account images in azure blob storage.
type BlobStore struct {
	Store *azblob.Storer
}

func NewBlobStore(store *azblob.Storer) *BlobStore {
	return &BlobStore{Store: store}
}

func (s *BlobStore) Put(
	ctx context.Context, path string, data []byte, tags map[string]string, cond WriteCondition) error {

	opts := []azblob.Option{azblob.WithTags(tags)}
	if cond.ETag != "" {
		opts = append(opts, azblob.WithEtagMatch(cond.ETag))
	}
	// The way to spell 'fail without modifying if the blob exists' is to
	// require that no blob matches *any* etag.
	if cond.FailIfExists {
		opts = append(opts, azblob.WithEtagNoneMatch("*"))
	}
	_, err := s.Store.Put(ctx, path, azblob.NewBytesReaderCloser(data), opts...)
	return err
}

// Read reads the blob at path along with its tags.
func (s *BlobStore) Read(ctx context.Context, path string) (Object, error) {

	rr, err := s.Store.Reader(ctx, path, azblob.WithGetTags())
	if err != nil {
		return Object{}, WrapBlobNotFound(err)
	}
	defer rr.Reader.Close()

	data, err := io.ReadAll(rr.Reader)
	if err != nil {
		return Object{}, fmt.Errorf("reading %s: %w", path, err)
	}

	obj := Object{
		Data:          data,
		Tags:          rr.Tags,
		ContentLength: rr.ContentLength,
	}
	if rr.ETag != nil {
		obj.ETag = *rr.ETag
	}
	if rr.LastModified != nil {
		obj.LastModified = *rr.LastModified
	}
	return obj, nil
}
