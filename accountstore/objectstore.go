package accountstore

import (
	"context"
	"time"
)

// Object is a stored account image and its blob metadata.
type Object struct {
	Data          []byte
	Tags          map[string]string
	ETag          string
	LastModified  time.Time
	ContentLength int64
}

// WriteCondition guards a Put against racing writers.
type WriteCondition struct {
	// ETag, when set, requires the stored object to still carry it.
	ETag string
	// FailIfExists requires that no object exists at the path.
	FailIfExists bool
}

type ObjectReader interface {
	Read(ctx context.Context, path string) (Object, error)
}

type ObjectWriter interface {
	Put(ctx context.Context, path string, data []byte, tags map[string]string, cond WriteCondition) error
}

type ObjectStore interface {
	ObjectReader
	ObjectWriter
}
