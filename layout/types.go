package layout

import "errors"

const (
	DiscriminatorBytes = 8
	PublicKeyBytes     = 32

	MaxNameLength   = 32
	MaxSymbolLength = 10
	MaxURILength    = 200
	MaxCreatorLimit = 5
	// MaxCreatorLen is address + verified + share
	MaxCreatorLen = PublicKeyBytes + 1 + 1

	// IdentifierLength is the fixed width of the uuid field, which carries
	// the feature flags.
	IdentifierLength = 6

	// BorshLenPrefix is the u32 length prefix borsh puts ahead of strings and vectors.
	BorshLenPrefix = 4

	// ConfigArrayStart is the space reserved for the discriminator and the
	// largest possible MachineRecord. The sum is byte-exact with existing
	// accounts and must not change.
	ConfigArrayStart = DiscriminatorBytes +
		PublicKeyBytes + // authority
		PublicKeyBytes + // wallet
		1 + PublicKeyBytes + // token mint option
		BorshLenPrefix + IdentifierLength + // uuid
		8 + // price
		8 + // items available
		9 + // go live date option
		10 + // end settings option
		BorshLenPrefix + MaxSymbolLength + // symbol
		2 + // seller fee basis points
		BorshLenPrefix + MaxCreatorLimit*MaxCreatorLen + // creators
		8 + // max supply
		1 + // is mutable
		1 + // retain authority
		1 + // hidden settings option
		BorshLenPrefix + MaxNameLength + // hidden name
		BorshLenPrefix + MaxURILength + // hidden uri
		32 + // hidden hash
		4 + // max number of lines
		8 + // items redeemed
		1 + // whitelist option
		1 + // whitelist mode
		1 + // presale
		9 + // discount price option
		PublicKeyBytes + // whitelist mint
		1 + PublicKeyBytes + 1 // gatekeeper option

	// ConfigLineSize is one borsh (name, uri) pair at maximum length.
	ConfigLineSize = BorshLenPrefix + MaxNameLength + BorshLenPrefix + MaxURILength

	LineCountBytes = 4
	UsedCountBytes = 4
	IndexLenBytes  = 4
	IndexEntrySize = 4

	// MaxPermittedDataLength is the largest account the runtime allows.
	MaxPermittedDataLength = 10 * 1024 * 1024
)

var (
	ErrNumericalOverflow          = errors.New("layout: numerical overflow")
	ErrExceedsStorageLimit        = errors.New("layout: required size exceeds the maximum permitted account size")
	ErrInsufficientBufferCapacity = errors.New("layout: account buffer is smaller than the minimum required size")
	ErrIndexRange                 = errors.New("layout: item index out of range")
	ErrBadRegionSize              = errors.New("layout: region buffer too small")
)

// Params are the configuration values that drive the account size.
type Params struct {
	ItemsAvailable uint64
	Hidden         bool
}
