package record

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-candymachine/features"
	"github.com/forestrie/go-candymachine/layout"
)

func TestPadSymbol(t *testing.T) {
	for _, sym := range []string{"", "A", "ABC", "ABCDEFGHI"} {
		padded, err := PadSymbol(sym)
		require.NoError(t, err)
		require.Len(t, padded, layout.MaxSymbolLength)
		assert.Equal(t, sym+strings.Repeat("\x00", layout.MaxSymbolLength-len(sym)), padded)
	}

	full := "ABCDEFGHIJ"
	padded, err := PadSymbol(full)
	require.NoError(t, err)
	assert.Equal(t, full, padded)

	_, err = PadSymbol(full + "K")
	require.ErrorIs(t, err, ErrSymbolTooLong)
}

func TestCheckCreators(t *testing.T) {
	creators := make([]Creator, layout.MaxCreatorLimit)
	require.ErrorIs(t, CheckCreators(creators), ErrTooManyCreators)
	require.NoError(t, CheckCreators(creators[:layout.MaxCreatorLimit-1]))
	require.NoError(t, CheckCreators(nil))
}

func TestConfigurationData_LayoutParams(t *testing.T) {
	c := ConfigurationData{ItemsAvailable: 42}
	assert.Equal(t, layout.Params{ItemsAvailable: 42}, c.LayoutParams())

	c.HiddenSettings = &HiddenSettings{}
	assert.Equal(t, layout.Params{ItemsAvailable: 42, Hidden: true}, c.LayoutParams())
}

func TestConfigurationData_Features(t *testing.T) {
	c := ConfigurationData{UUID: features.DefaultIdentifier}
	assert.False(t, c.HasFeature(features.SwapRemove))

	require.NoError(t, c.SetFeature(features.SwapRemove))
	assert.True(t, c.HasFeature(features.SwapRemove))
	assert.Equal(t, "100000", c.UUID)

	c.UUID = "legacy-uuid"
	require.ErrorIs(t, c.SetFeature(features.SwapRemove), features.ErrIdentifierLength)
	assert.False(t, c.HasFeature(features.SwapRemove))
}
