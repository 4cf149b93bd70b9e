package layout

import "fmt"

// BitmapReserveBytes returns the bytes reserved for the used bitmap: n/8 + 1.
//
// This is what both size formulas are built from. It is never less than
// UsedBitmapBytes(n).
func BitmapReserveBytes(itemsAvailable uint64) (uint64, error) {
	eighth, err := divChecked(itemsAvailable, 8)
	if err != nil {
		return 0, err
	}
	return addChecked(eighth, 1)
}

// UsedBitmapBytes returns ceil(n/8), the number of bitmap bytes that carry a
// bit for some item.
func UsedBitmapBytes(itemsAvailable uint64) uint64 {
	return itemsAvailable/8 + min(itemsAvailable%8, 1)
}

// LinesBytes returns n * ConfigLineSize.
func LinesBytes(itemsAvailable uint64) (uint64, error) {
	return mulChecked(itemsAvailable, ConfigLineSize)
}

// IndexArrayBytes returns n * IndexEntrySize.
func IndexArrayBytes(itemsAvailable uint64) (uint64, error) {
	return mulChecked(itemsAvailable, IndexEntrySize)
}

// MinimumCompatSize returns the smallest account that may be initialized.
//
// Without hidden settings:
//
//	ConfigArrayStart + 4 + n*ConfigLineSize + 8 + 2*(n/8 + 1)
//
// The index array is not required here so that accounts allocated by older
// clients remain acceptable. The shortfall is funded at initialization and
// made up by a later resize.
func MinimumCompatSize(p Params) (uint64, error) {
	if p.Hidden {
		return ConfigArrayStart, nil
	}
	lines, err := LinesBytes(p.ItemsAvailable)
	if err != nil {
		return 0, err
	}
	reserve, err := BitmapReserveBytes(p.ItemsAvailable)
	if err != nil {
		return 0, err
	}
	doubled, err := mulChecked(reserve, 2)
	if err != nil {
		return 0, err
	}
	return sumChecked(ConfigArrayStart, LineCountBytes, lines, UsedCountBytes+IndexLenBytes, doubled)
}

// FullAllocatedSize returns the size the account needs once the swap-remove
// index array is in place.
//
// Without hidden settings:
//
//	ConfigArrayStart + 4 + n*ConfigLineSize + 4 + (n/8 + 1) + 4 + n*4
func FullAllocatedSize(p Params) (uint64, error) {
	if p.Hidden {
		return ConfigArrayStart, nil
	}
	lines, err := LinesBytes(p.ItemsAvailable)
	if err != nil {
		return 0, err
	}
	reserve, err := BitmapReserveBytes(p.ItemsAvailable)
	if err != nil {
		return 0, err
	}
	index, err := IndexArrayBytes(p.ItemsAvailable)
	if err != nil {
		return 0, err
	}
	return sumChecked(
		ConfigArrayStart, LineCountBytes, lines, UsedCountBytes, reserve, IndexLenBytes, index)
}

// CheckStorageLimit fails if size is beyond what the runtime will allocate.
func CheckStorageLimit(size uint64) error {
	if size > MaxPermittedDataLength {
		return fmt.Errorf("%w: %d > %d", ErrExceedsStorageLimit, size, uint64(MaxPermittedDataLength))
	}
	return nil
}

// RequiredSize returns FullAllocatedSize, checked against the storage ceiling.
func RequiredSize(p Params) (uint64, error) {
	size, err := FullAllocatedSize(p)
	if err != nil {
		return 0, err
	}
	if err := CheckStorageLimit(size); err != nil {
		return 0, err
	}
	return size, nil
}

// CheckCapacity fails with ErrInsufficientBufferCapacity if an account of
// dataLen bytes cannot be initialized for p.
func CheckCapacity(dataLen uint64, p Params) error {
	need, err := MinimumCompatSize(p)
	if err != nil {
		return err
	}
	if dataLen < need {
		return fmt.Errorf("%w: have %d need %d", ErrInsufficientBufferCapacity, dataLen, need)
	}
	return nil
}
