package record

import (
	"errors"

	"github.com/blocto/solana-go-sdk/common"

	"github.com/forestrie/go-candymachine/features"
	"github.com/forestrie/go-candymachine/layout"
)

var (
	ErrTooManyCreators  = errors.New("record: too many creators")
	ErrSymbolTooLong    = errors.New("record: symbol exceeds the maximum length")
	ErrBadDiscriminator = errors.New("record: account discriminator does not match")
	ErrHeaderTooLarge   = errors.New("record: encoded record exceeds the reserved header space")
	ErrRecordTruncated  = errors.New("record: account data too short for the record")
	ErrUnknownEnumValue = errors.New("record: unknown enum value")
)

// EndSettingType selects what EndSettings.Number measures.
type EndSettingType uint8

const (
	EndSettingDate EndSettingType = iota
	EndSettingAmount
)

// WhitelistMintMode selects whether whitelist tokens are burnt on mint.
type WhitelistMintMode uint8

const (
	WhitelistBurnEveryTime WhitelistMintMode = iota
	WhitelistNeverBurn
)

// The field order of every type in this file is the on-chain borsh order.

type Creator struct {
	Address  common.PublicKey
	Verified bool
	// Share is a percentage of the royalties.
	Share uint8
}

type EndSettings struct {
	Type   EndSettingType
	Number uint64
}

// HiddenSettings, when present, means items are not stored on the account.
// Every mint gets the same name and uri and the hash commits to the
// off-chain mapping.
type HiddenSettings struct {
	Name string
	URI  string
	Hash [32]byte
}

type WhitelistMintSettings struct {
	Mode          WhitelistMintMode
	Mint          common.PublicKey
	Presale       bool
	DiscountPrice *uint64
}

type GatekeeperConfig struct {
	Network     common.PublicKey
	ExpireOnUse bool
}

// ConfigurationData is the mint configuration held in the header.
type ConfigurationData struct {
	// UUID is the identifier field. On new machines it carries feature
	// flags, see package features.
	UUID                  string
	Price                 uint64
	Symbol                string
	SellerFeeBasisPoints  uint16
	MaxSupply             uint64
	IsMutable             bool
	RetainAuthority       bool
	GoLiveDate            *int64
	EndSettings           *EndSettings
	Creators              []Creator
	HiddenSettings        *HiddenSettings
	WhitelistMintSettings *WhitelistMintSettings
	ItemsAvailable        uint64
	Gatekeeper            *GatekeeperConfig
}

// MachineRecord is the header written at offset 0 of the account, after the
// discriminator.
type MachineRecord struct {
	Authority common.PublicKey
	Wallet    common.PublicKey
	// TokenMint is set when minting is paid in an SPL token rather than lamports.
	TokenMint     *common.PublicKey
	ItemsRedeemed uint64
	Data          ConfigurationData
}

// LayoutParams returns the values that size the account.
func (c ConfigurationData) LayoutParams() layout.Params {
	return layout.Params{
		ItemsAvailable: c.ItemsAvailable,
		Hidden:         c.HiddenSettings != nil,
	}
}

// HasFeature reports whether bit is set in the identifier.
func (c ConfigurationData) HasFeature(bit features.Bit) bool {
	return features.IsIdentifierFlagSet(c.UUID, bit)
}

// SetFeature sets bit in the identifier.
func (c *ConfigurationData) SetFeature(bit features.Bit) error {
	id, err := features.SetIdentifierFlag(c.UUID, bit)
	if err != nil {
		return err
	}
	c.UUID = id
	return nil
}
