package record

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/blocto/solana-go-sdk/common"

	"github.com/forestrie/go-candymachine/cursor"
	"github.com/forestrie/go-candymachine/layout"
)

// Discriminator is the 8 byte account tag: sha256("account:CandyMachine")[:8].
var Discriminator = func() [layout.DiscriminatorBytes]byte {
	var d [layout.DiscriminatorBytes]byte
	sum := sha256.Sum256([]byte("account:CandyMachine"))
	copy(d[:], sum[:layout.DiscriminatorBytes])
	return d
}()

// Encode returns the discriminator followed by the borsh encoding of rec.
func Encode(rec MachineRecord) ([]byte, error) {
	buf := make([]byte, layout.ConfigArrayStart)
	n, err := EncodeTo(buf, rec)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

// EncodeTo writes the discriminator and rec at offset 0 of data and returns
// the number of bytes written.
//
// Only the produced bytes are written. The record may not extend past
// ConfigArrayStart, where the config line count lives.
func EncodeTo(data []byte, rec MachineRecord) (int, error) {
	limit := min(len(data), layout.ConfigArrayStart)
	w := cursor.NewWriter(data[:limit])

	if err := encodeRecord(w, rec); err != nil {
		if errors.Is(err, cursor.ErrShortBuffer) && len(data) >= layout.ConfigArrayStart {
			return 0, fmt.Errorf("%w: %v", ErrHeaderTooLarge, err)
		}
		return 0, err
	}
	return int(w.Pos()), nil
}

func encodeRecord(w *cursor.Writer, rec MachineRecord) error {
	if err := w.WriteBytes(Discriminator[:]); err != nil {
		return err
	}
	if err := w.WriteBytes(rec.Authority[:]); err != nil {
		return err
	}
	if err := w.WriteBytes(rec.Wallet[:]); err != nil {
		return err
	}
	if err := writeOptionalKey(w, rec.TokenMint); err != nil {
		return err
	}
	if err := w.WriteU64(rec.ItemsRedeemed); err != nil {
		return err
	}
	return encodeData(w, rec.Data)
}

func encodeData(w *cursor.Writer, c ConfigurationData) error {
	if err := w.WriteString(c.UUID); err != nil {
		return err
	}
	if err := w.WriteU64(c.Price); err != nil {
		return err
	}
	if err := w.WriteString(c.Symbol); err != nil {
		return err
	}
	if err := w.WriteU16(c.SellerFeeBasisPoints); err != nil {
		return err
	}
	if err := w.WriteU64(c.MaxSupply); err != nil {
		return err
	}
	if err := w.WriteBool(c.IsMutable); err != nil {
		return err
	}
	if err := w.WriteBool(c.RetainAuthority); err != nil {
		return err
	}

	if err := w.WriteOption(c.GoLiveDate != nil); err != nil {
		return err
	}
	if c.GoLiveDate != nil {
		if err := w.WriteI64(*c.GoLiveDate); err != nil {
			return err
		}
	}

	if err := w.WriteOption(c.EndSettings != nil); err != nil {
		return err
	}
	if c.EndSettings != nil {
		if err := w.WriteU8(uint8(c.EndSettings.Type)); err != nil {
			return err
		}
		if err := w.WriteU64(c.EndSettings.Number); err != nil {
			return err
		}
	}

	if err := w.WriteU32(uint32(len(c.Creators))); err != nil {
		return err
	}
	for _, cr := range c.Creators {
		if err := w.WriteBytes(cr.Address[:]); err != nil {
			return err
		}
		if err := w.WriteBool(cr.Verified); err != nil {
			return err
		}
		if err := w.WriteU8(cr.Share); err != nil {
			return err
		}
	}

	if err := w.WriteOption(c.HiddenSettings != nil); err != nil {
		return err
	}
	if h := c.HiddenSettings; h != nil {
		if err := w.WriteString(h.Name); err != nil {
			return err
		}
		if err := w.WriteString(h.URI); err != nil {
			return err
		}
		if err := w.WriteBytes(h.Hash[:]); err != nil {
			return err
		}
	}

	if err := w.WriteOption(c.WhitelistMintSettings != nil); err != nil {
		return err
	}
	if wl := c.WhitelistMintSettings; wl != nil {
		if err := w.WriteU8(uint8(wl.Mode)); err != nil {
			return err
		}
		if err := w.WriteBytes(wl.Mint[:]); err != nil {
			return err
		}
		if err := w.WriteBool(wl.Presale); err != nil {
			return err
		}
		if err := w.WriteOption(wl.DiscountPrice != nil); err != nil {
			return err
		}
		if wl.DiscountPrice != nil {
			if err := w.WriteU64(*wl.DiscountPrice); err != nil {
				return err
			}
		}
	}

	if err := w.WriteU64(c.ItemsAvailable); err != nil {
		return err
	}

	if err := w.WriteOption(c.Gatekeeper != nil); err != nil {
		return err
	}
	if g := c.Gatekeeper; g != nil {
		if err := w.WriteBytes(g.Network[:]); err != nil {
			return err
		}
		if err := w.WriteBool(g.ExpireOnUse); err != nil {
			return err
		}
	}
	return nil
}

func writeOptionalKey(w *cursor.Writer, k *common.PublicKey) error {
	if err := w.WriteOption(k != nil); err != nil {
		return err
	}
	if k == nil {
		return nil
	}
	return w.WriteBytes(k[:])
}
