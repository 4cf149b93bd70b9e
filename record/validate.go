package record

import (
	"fmt"
	"strings"

	"github.com/forestrie/go-candymachine/layout"
)

// PadSymbol right pads symbol with NUL bytes to MaxSymbolLength. A symbol
// already at the maximum is returned unchanged.
func PadSymbol(symbol string) (string, error) {
	if len(symbol) > layout.MaxSymbolLength {
		return "", fmt.Errorf("%w: %d > %d", ErrSymbolTooLong, len(symbol), layout.MaxSymbolLength)
	}
	return symbol + strings.Repeat("\x00", layout.MaxSymbolLength-len(symbol)), nil
}

// CheckCreators enforces the creator limit. One slot of MaxCreatorLimit is
// kept for the machine itself, which is added as a creator at mint time.
func CheckCreators(creators []Creator) error {
	if len(creators) > layout.MaxCreatorLimit-1 {
		return fmt.Errorf("%w: %d > %d", ErrTooManyCreators, len(creators), layout.MaxCreatorLimit-1)
	}
	return nil
}
