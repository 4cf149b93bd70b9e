package accountstore

import "errors"

var (
	ErrETagRequired   = errors.New("accountstore: etag is required when updating an account blob")
	ErrBadBlobPath    = errors.New("accountstore: not an account blob path")
	ErrMissingTag     = errors.New("accountstore: account blob is missing a tag")
	ErrIncorrectTag   = errors.New("accountstore: account blob tag does not match its data")
	ErrNotMachineData = errors.New("accountstore: account data is not a machine")
	ErrBlobNotFound   = errors.New("accountstore: no account blob at the path")
)
