package layout

// LineCountOffset is the u32 count of config lines appended so far.
const LineCountOffset = ConfigArrayStart

// LinesStart is the first byte of the config line array.
const LinesStart = ConfigArrayStart + LineCountBytes

// UsedCountOffset returns the offset of the u32 written by index
// initialization, immediately after the config line array.
func UsedCountOffset(itemsAvailable uint64) (uint64, error) {
	lines, err := LinesBytes(itemsAvailable)
	if err != nil {
		return 0, err
	}
	return addChecked(LinesStart, lines)
}

// BitmapStart returns the first byte of the used bitmap.
func BitmapStart(itemsAvailable uint64) (uint64, error) {
	off, err := UsedCountOffset(itemsAvailable)
	if err != nil {
		return 0, err
	}
	return addChecked(off, UsedCountBytes)
}

// IndexArrayStart returns the first byte of the swap-remove index array.
func IndexArrayStart(itemsAvailable uint64) (uint64, error) {
	off, err := BitmapStart(itemsAvailable)
	if err != nil {
		return 0, err
	}
	reserve, err := BitmapReserveBytes(itemsAvailable)
	if err != nil {
		return 0, err
	}
	return sumChecked(off, reserve, IndexLenBytes)
}
