package layout

import "math/bits"

func addChecked(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, ErrNumericalOverflow
	}
	return sum, nil
}

func mulChecked(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, ErrNumericalOverflow
	}
	return lo, nil
}

func divChecked(a, b uint64) (uint64, error) {
	if b == 0 {
		return 0, ErrNumericalOverflow
	}
	return a / b, nil
}

// sumChecked adds all terms, failing on the first wrap.
func sumChecked(terms ...uint64) (uint64, error) {
	var total uint64
	var err error
	for _, t := range terms {
		if total, err = addChecked(total, t); err != nil {
			return 0, err
		}
	}
	return total, nil
}
