package machine

import (
	"errors"
	"fmt"

	"github.com/forestrie/go-candymachine/cursor"
	"github.com/forestrie/go-candymachine/layout"
)

// InitIndex writes a zero line count at the start of the trailing region.
//
// The used bitmap and the index array that follow are left alone: the data is
// required to be zero filled when allocated.
func InitIndex(data []byte, itemsAvailable uint64) error {
	off, err := layout.UsedCountOffset(itemsAvailable)
	if err != nil {
		return err
	}
	w := cursor.NewWriter(data)
	err = w.Seek(off)
	if err == nil {
		err = w.WriteU32(0)
	}
	if errors.Is(err, cursor.ErrSeekRange) || errors.Is(err, cursor.ErrShortBuffer) {
		return fmt.Errorf("%w: line count at %d: %v", layout.ErrInsufficientBufferCapacity, off, err)
	}
	return err
}
