package machine

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-candymachine/layout"
)

func TestInitIndex(t *testing.T) {
	size, err := layout.MinimumCompatSize(layout.Params{ItemsAvailable: 100})
	require.NoError(t, err)
	data := make([]byte, size)
	const at = 713 + 4 + 100*240
	binary.LittleEndian.PutUint32(data[at:], 0xffffffff)
	data[at+4] = 0xaa

	require.NoError(t, InitIndex(data, 100))
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(data[at:]))
	// the bitmap is not touched
	assert.Equal(t, byte(0xaa), data[at+4])
	for i, b := range data[:at] {
		if b != 0 {
			t.Fatalf("byte %d written", i)
		}
	}
}

func TestInitIndex_ZeroItems(t *testing.T) {
	data := make([]byte, layout.ConfigArrayStart+8)
	data[layout.ConfigArrayStart+4] = 9
	require.NoError(t, InitIndex(data, 0))
	assert.Equal(t, []byte{0, 0, 0, 0}, data[layout.ConfigArrayStart+4:layout.ConfigArrayStart+8])
}

func TestInitIndex_Errors(t *testing.T) {
	t.Run("short buffer", func(t *testing.T) {
		data := make([]byte, 713+4+10*240+2)
		assert.ErrorIs(t, InitIndex(data, 10), layout.ErrInsufficientBufferCapacity)
	})
	t.Run("offset past buffer", func(t *testing.T) {
		data := make([]byte, 100)
		assert.ErrorIs(t, InitIndex(data, 10), layout.ErrInsufficientBufferCapacity)
	})
	t.Run("overflow", func(t *testing.T) {
		assert.ErrorIs(t, InitIndex(nil, math.MaxUint64), layout.ErrNumericalOverflow)
	})
}
