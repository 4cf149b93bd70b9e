// Package features reads and writes the feature bitset carried in the
// machine's fixed width identifier field.
//
// The identifier was once a unique id. Nothing depends on its uniqueness, so
// new machines have it reset to DefaultIdentifier and use its bytes as a flat
// LSB0 bitset: bit k is bit k&7 of byte k>>3. A clear bit is the legacy
// behaviour. Flags are never derived from other fields.
package features

import (
	"errors"
	"fmt"

	"github.com/forestrie/go-candymachine/layout"
)

// Bit is the index of a feature in the identifier bitset.
type Bit uint

const (
	// SwapRemove marks a machine whose mint index array is maintained with
	// swap-remove.
	SwapRemove Bit = 0
)

// DefaultIdentifier is written into every newly initialized machine before
// any flag is set.
//
// '0' is 0x30, so setting bit 0 turns the first character into '1'.
const DefaultIdentifier = "000000"

var (
	ErrBitIndexRange    = errors.New("features: bit index outside the identifier")
	ErrIdentifierLength = errors.New("features: identifier has the wrong length")
)

// FeatureFlags is the identifier field viewed as bits.
type FeatureFlags [layout.IdentifierLength]byte

// BitCount is the number of addressable bits.
const BitCount = layout.IdentifierLength * 8

// FromIdentifier interprets id as a bitset. id must be exactly
// IdentifierLength bytes.
func FromIdentifier(id string) (FeatureFlags, error) {
	var f FeatureFlags
	if len(id) != layout.IdentifierLength {
		return f, fmt.Errorf("%w: %d", ErrIdentifierLength, len(id))
	}
	copy(f[:], id)
	return f, nil
}

// Identifier returns the flags as the string stored in the record.
func (f FeatureFlags) Identifier() string {
	return string(f[:])
}

// Set returns a copy of f with bit set. All other bits are unchanged and
// setting an already set bit is a no-op.
func (f FeatureFlags) Set(bit Bit) (FeatureFlags, error) {
	if bit >= BitCount {
		return f, fmt.Errorf("%w: %d", ErrBitIndexRange, bit)
	}
	f[bit>>3] |= 1 << uint8(bit&7)
	return f, nil
}

// IsSet reports whether bit is set. Bits outside the field read as clear.
func (f FeatureFlags) IsSet(bit Bit) bool {
	if bit >= BitCount {
		return false
	}
	return f[bit>>3]&(1<<uint8(bit&7)) != 0
}

// SetIdentifierFlag sets bit in the identifier string id.
func SetIdentifierFlag(id string, bit Bit) (string, error) {
	f, err := FromIdentifier(id)
	if err != nil {
		return id, err
	}
	if f, err = f.Set(bit); err != nil {
		return id, err
	}
	return f.Identifier(), nil
}

// IsIdentifierFlagSet reports whether bit is set in id. Identifiers of the
// wrong length carry no flags.
func IsIdentifierFlagSet(id string, bit Bit) bool {
	f, err := FromIdentifier(id)
	if err != nil {
		return false
	}
	return f.IsSet(bit)
}
