package machinetesting

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-candymachine/layout"
	"github.com/forestrie/go-candymachine/record"
)

// NewIdentifier returns an identifier cut from a generated uuid, the way
// clients fill the field before initialization overwrites it.
func (c *TestContext) NewIdentifier() string {
	id, err := uuid.NewRandomFromReader(c.rng)
	require.NoError(c.T, err)
	return id.String()[:layout.IdentifierLength]
}

// NewConfigurationData returns a plain configuration for items with the
// given symbol and creators splitting the shares evenly, any remainder to
// the first.
func (c *TestContext) NewConfigurationData(items uint64, symbol string, creators int) record.ConfigurationData {
	cfg := record.ConfigurationData{
		UUID:                 c.NewIdentifier(),
		Price:                1_000_000_000,
		Symbol:               symbol,
		SellerFeeBasisPoints: 500,
		MaxSupply:            0,
		IsMutable:            true,
		RetainAuthority:      true,
		ItemsAvailable:       items,
	}
	for i := 0; i < creators; i++ {
		cfg.Creators = append(cfg.Creators, record.Creator{
			Address: c.NewKey(),
			Share:   uint8(100 / creators),
		})
	}
	if creators > 0 {
		cfg.Creators[0].Share += uint8(100 % creators)
	}
	return cfg
}

// NewHiddenConfigurationData is NewConfigurationData with hidden settings.
func (c *TestContext) NewHiddenConfigurationData(items uint64, symbol string) record.ConfigurationData {
	cfg := c.NewConfigurationData(items, symbol, 1)
	cfg.HiddenSettings = &record.HiddenSettings{
		Name: "Hidden",
		URI:  "https://example.com/hidden.json",
		Hash: [32]byte{1, 2, 3},
	}
	return cfg
}
