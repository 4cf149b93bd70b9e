// Package accountstore persists snapshots of machine accounts to blob storage.
//
// Each account is stored as one blob holding its raw data, with the fields a
// reader needs to find and size it without decoding carried as blob tags.
// Writes are guarded by etags in the same way as any other append only blob:
// a blob is created only if absent and replaced only if unchanged since it was
// read.
package accountstore

import (
	"fmt"
	"strings"

	"github.com/blocto/solana-go-sdk/common"
)

const (
	V1MachinesPrefix = "v1/machines"
	AccountExt       = ".account"
)

// AccountBlobPath returns the blob path for the account at key.
func AccountBlobPath(key common.PublicKey) string {
	return fmt.Sprintf("%s/%s%s", V1MachinesPrefix, key.ToBase58(), AccountExt)
}

// AccountKeyFromPath recovers the account address from a blob path.
func AccountKeyFromPath(path string) (common.PublicKey, error) {
	name, ok := strings.CutPrefix(path, V1MachinesPrefix+"/")
	if !ok {
		return common.PublicKey{}, fmt.Errorf("%w: %s", ErrBadBlobPath, path)
	}
	name, ok = strings.CutSuffix(name, AccountExt)
	if !ok || name == "" || strings.Contains(name, "/") {
		return common.PublicKey{}, fmt.Errorf("%w: %s", ErrBadBlobPath, path)
	}
	key := common.PublicKeyFromString(name)
	if key.ToBase58() != name {
		return common.PublicKey{}, fmt.Errorf("%w: %s", ErrBadBlobPath, path)
	}
	return key, nil
}
