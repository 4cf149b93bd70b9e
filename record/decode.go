package record

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/blocto/solana-go-sdk/common"

	"github.com/forestrie/go-candymachine/cursor"
	"github.com/forestrie/go-candymachine/layout"
)

// Decode reads a MachineRecord from offset 0 of account data. Trailing bytes
// (padding and the config line region) are ignored.
func Decode(data []byte) (MachineRecord, error) {
	rec, _, err := DecodeFrom(data)
	return rec, err
}

// DecodeFrom is Decode, also returning the number of bytes consumed.
func DecodeFrom(data []byte) (MachineRecord, int, error) {
	var rec MachineRecord

	if len(data) < layout.DiscriminatorBytes {
		return rec, 0, ErrRecordTruncated
	}
	if !bytes.Equal(data[:layout.DiscriminatorBytes], Discriminator[:]) {
		return rec, 0, ErrBadDiscriminator
	}

	r := cursor.NewReader(data)
	if err := r.Seek(layout.DiscriminatorBytes); err != nil {
		return rec, 0, err
	}
	if err := decodeRecord(r, &rec); err != nil {
		if errors.Is(err, cursor.ErrShortBuffer) {
			return rec, 0, fmt.Errorf("%w: %v", ErrRecordTruncated, err)
		}
		return rec, 0, err
	}
	return rec, int(r.Pos()), nil
}

func decodeRecord(r *cursor.Reader, rec *MachineRecord) error {
	var err error
	if err = r.ReadBytes(rec.Authority[:]); err != nil {
		return err
	}
	if err = r.ReadBytes(rec.Wallet[:]); err != nil {
		return err
	}
	if rec.TokenMint, err = readOptionalKey(r); err != nil {
		return err
	}
	if rec.ItemsRedeemed, err = r.ReadU64(); err != nil {
		return err
	}
	return decodeData(r, &rec.Data)
}

func decodeData(r *cursor.Reader, c *ConfigurationData) error {
	var err error
	var present bool

	if c.UUID, err = r.ReadString(); err != nil {
		return err
	}
	if c.Price, err = r.ReadU64(); err != nil {
		return err
	}
	if c.Symbol, err = r.ReadString(); err != nil {
		return err
	}
	if c.SellerFeeBasisPoints, err = r.ReadU16(); err != nil {
		return err
	}
	if c.MaxSupply, err = r.ReadU64(); err != nil {
		return err
	}
	if c.IsMutable, err = r.ReadBool(); err != nil {
		return err
	}
	if c.RetainAuthority, err = r.ReadBool(); err != nil {
		return err
	}

	if present, err = r.ReadOption(); err != nil {
		return err
	}
	if present {
		v, err := r.ReadI64()
		if err != nil {
			return err
		}
		c.GoLiveDate = &v
	}

	if present, err = r.ReadOption(); err != nil {
		return err
	}
	if present {
		es := &EndSettings{}
		kind, err := r.ReadU8()
		if err != nil {
			return err
		}
		if kind > uint8(EndSettingAmount) {
			return fmt.Errorf("%w: end setting type %d", ErrUnknownEnumValue, kind)
		}
		es.Type = EndSettingType(kind)
		if es.Number, err = r.ReadU64(); err != nil {
			return err
		}
		c.EndSettings = es
	}

	count, err := r.ReadU32()
	if err != nil {
		return err
	}
	// each creator is MaxCreatorLen bytes, reject counts the data cannot hold
	if uint64(count)*layout.MaxCreatorLen > r.Remaining() {
		return fmt.Errorf("%w: %d creators", cursor.ErrShortBuffer, count)
	}
	if count > 0 {
		c.Creators = make([]Creator, count)
	}
	for i := range c.Creators {
		cr := &c.Creators[i]
		if err = r.ReadBytes(cr.Address[:]); err != nil {
			return err
		}
		if cr.Verified, err = r.ReadBool(); err != nil {
			return err
		}
		if cr.Share, err = r.ReadU8(); err != nil {
			return err
		}
	}

	if present, err = r.ReadOption(); err != nil {
		return err
	}
	if present {
		h := &HiddenSettings{}
		if h.Name, err = r.ReadString(); err != nil {
			return err
		}
		if h.URI, err = r.ReadString(); err != nil {
			return err
		}
		if err = r.ReadBytes(h.Hash[:]); err != nil {
			return err
		}
		c.HiddenSettings = h
	}

	if present, err = r.ReadOption(); err != nil {
		return err
	}
	if present {
		wl := &WhitelistMintSettings{}
		mode, err := r.ReadU8()
		if err != nil {
			return err
		}
		if mode > uint8(WhitelistNeverBurn) {
			return fmt.Errorf("%w: whitelist mode %d", ErrUnknownEnumValue, mode)
		}
		wl.Mode = WhitelistMintMode(mode)
		if err = r.ReadBytes(wl.Mint[:]); err != nil {
			return err
		}
		if wl.Presale, err = r.ReadBool(); err != nil {
			return err
		}
		if present, err = r.ReadOption(); err != nil {
			return err
		}
		if present {
			v, err := r.ReadU64()
			if err != nil {
				return err
			}
			wl.DiscountPrice = &v
		}
		c.WhitelistMintSettings = wl
	}

	if c.ItemsAvailable, err = r.ReadU64(); err != nil {
		return err
	}

	if present, err = r.ReadOption(); err != nil {
		return err
	}
	if present {
		g := &GatekeeperConfig{}
		if err = r.ReadBytes(g.Network[:]); err != nil {
			return err
		}
		if g.ExpireOnUse, err = r.ReadBool(); err != nil {
			return err
		}
		c.Gatekeeper = g
	}
	return nil
}

func readOptionalKey(r *cursor.Reader) (*common.PublicKey, error) {
	present, err := r.ReadOption()
	if err != nil || !present {
		return nil, err
	}
	var k common.PublicKey
	if err := r.ReadBytes(k[:]); err != nil {
		return nil, err
	}
	return &k, nil
}
