package accountstore

import (
	"fmt"
	"strconv"
	"time"

	"github.com/blocto/solana-go-sdk/common"

	"github.com/forestrie/go-candymachine/ledger"
	"github.com/forestrie/go-candymachine/record"
)

// AccountContext holds one account image and the blob state needed to write
// it back safely.
type AccountContext struct {
	Key      common.PublicKey
	BlobPath string
	ETag     string
	Tags     map[string]string
	// Creating is true until the blob has been committed once.
	Creating     bool
	Data         []byte
	LastRead     time.Time
	LastModified time.Time
}

// NewAccountContext prepares the first commit of acc. The account must hold
// an initialized machine.
func NewAccountContext(acc *ledger.Account) (AccountContext, error) {
	rec, err := record.Decode(acc.Data)
	if err != nil {
		return AccountContext{}, fmt.Errorf("%w: %v", ErrNotMachineData, err)
	}
	ac := AccountContext{
		Key:      acc.Key,
		BlobPath: AccountBlobPath(acc.Key),
		Creating: true,
		Data:     append([]byte(nil), acc.Data...),
		Tags:     map[string]string{},
	}
	ac.setAccountTags(acc.Owner, acc.Lamports)
	machineTags(rec, ac.Tags)
	return ac, nil
}

// Update replaces the image with the current state of acc, keeping the blob
// state from the last read or commit.
func (ac *AccountContext) Update(acc *ledger.Account) error {
	if acc.Key != ac.Key {
		return fmt.Errorf("%w: %s is not %s", ErrBadBlobPath, acc.Key.ToBase58(), ac.Key.ToBase58())
	}
	rec, err := record.Decode(acc.Data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotMachineData, err)
	}
	ac.Data = append(ac.Data[:0], acc.Data...)
	if ac.Tags == nil {
		ac.Tags = map[string]string{}
	}
	ac.setAccountTags(acc.Owner, acc.Lamports)
	machineTags(rec, ac.Tags)
	return nil
}

// Record decodes the machine header from the image.
func (ac *AccountContext) Record() (record.MachineRecord, error) {
	return record.Decode(ac.Data)
}

// Account rebuilds the ledger account the image was taken from.
func (ac *AccountContext) Account() (*ledger.Account, error) {
	owner, ok := ac.Tags[TagKeyOwner]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingTag, TagKeyOwner)
	}
	// PublicKeyFromString drops decode errors, so require an exact round trip.
	ownerKey := common.PublicKeyFromString(owner)
	if ownerKey.ToBase58() != owner {
		return nil, fmt.Errorf("%w: %s %q", ErrIncorrectTag, TagKeyOwner, owner)
	}
	lamports, err := getUintTag(ac.Tags, TagKeyLamports)
	if err != nil {
		return nil, err
	}
	return &ledger.Account{
		Key:      ac.Key,
		Owner:    ownerKey,
		Lamports: lamports,
		Data:     append([]byte(nil), ac.Data...),
	}, nil
}

func (ac *AccountContext) setAccountTags(owner common.PublicKey, lamports uint64) {
	ac.Tags[TagKeyOwner] = owner.ToBase58()
	ac.Tags[TagKeyLamports] = strconv.FormatUint(lamports, 10)
}
