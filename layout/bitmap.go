package layout

// The used bitmap numbers bits LSB0: item i is bit i&7 of byte i>>3.

// UsedBitmap returns the used bitmap region of an account's data, sized
// UsedBitmapBytes(n).
func UsedBitmap(data []byte, itemsAvailable uint64) ([]byte, error) {
	start, err := BitmapStart(itemsAvailable)
	if err != nil {
		return nil, err
	}
	end, err := addChecked(start, UsedBitmapBytes(itemsAvailable))
	if err != nil {
		return nil, err
	}
	if end > uint64(len(data)) {
		return nil, ErrBadRegionSize
	}
	return data[start:end], nil
}

// MarkUsed sets the bit for item i.
func MarkUsed(bitmap []byte, i uint64) error {
	byteIdx := i >> 3
	if byteIdx >= uint64(len(bitmap)) {
		return ErrIndexRange
	}
	bitmap[byteIdx] |= 1 << uint8(i&7)
	return nil
}

// IsUsed reports whether the bit for item i is set.
func IsUsed(bitmap []byte, i uint64) (bool, error) {
	byteIdx := i >> 3
	if byteIdx >= uint64(len(bitmap)) {
		return false, ErrIndexRange
	}
	return bitmap[byteIdx]&(1<<uint8(i&7)) != 0, nil
}
