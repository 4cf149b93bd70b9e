package accountstore

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/forestrie/go-candymachine/features"
	"github.com/forestrie/go-candymachine/record"
)

const (
	TagKeyOwner          = "owner"
	TagKeyLamports       = "lamports"
	TagKeyItemsAvailable = "itemsavailable"
	TagKeyFeatures       = "features"
	TagKeyLayout         = "layout"

	LayoutHidden  = "hidden"
	LayoutIndexed = "indexed"
)

// machineTags describes the machine header in a form blob tags accept.
// The identifier is hex encoded as flag bits need not be printable.
func machineTags(rec record.MachineRecord, tags map[string]string) {
	tags[TagKeyItemsAvailable] = strconv.FormatUint(rec.Data.ItemsAvailable, 10)
	tags[TagKeyFeatures] = hex.EncodeToString([]byte(rec.Data.UUID))
	if rec.Data.HiddenSettings != nil {
		tags[TagKeyLayout] = LayoutHidden
	} else {
		tags[TagKeyLayout] = LayoutIndexed
	}
}

// FeatureFlags returns the feature flags carried by the tags.
func FeatureFlags(tags map[string]string) (features.FeatureFlags, error) {
	v, ok := tags[TagKeyFeatures]
	if !ok {
		return features.FeatureFlags{}, fmt.Errorf("%w: %s", ErrMissingTag, TagKeyFeatures)
	}
	b, err := hex.DecodeString(v)
	if err != nil {
		return features.FeatureFlags{}, fmt.Errorf("%w: %s: %v", ErrIncorrectTag, TagKeyFeatures, err)
	}
	return features.FromIdentifier(string(b))
}

func getUintTag(tags map[string]string, key string) (uint64, error) {
	v, ok := tags[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingTag, key)
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrIncorrectTag, key, err)
	}
	return n, nil
}

// ItemsAvailable returns the item count carried by the tags.
func ItemsAvailable(tags map[string]string) (uint64, error) {
	return getUintTag(tags, TagKeyItemsAvailable)
}
