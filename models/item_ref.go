package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedItemRef is returned by [ParseItemRef] when the input is not in
// "type:id" form.
var ErrMalformedItemRef = errors.New("malformed item reference")

// ItemRef points at an item that is still owed to a device.
type ItemRef struct {
	ID   string   `json:"id"`
	Type ItemType `json:"type"`
}

// String encodes the reference as "type:id".
func (r ItemRef) String() string {
	return string(r.Type) + ":" + r.ID
}

// ParseItemRef decodes a reference produced by [ItemRef.String]. Item ids may
// contain colons, type names never do.
func ParseItemRef(s string) (ItemRef, error) {
	name, id, found := strings.Cut(s, ":")
	if !found || id == "" {
		return ItemRef{}, fmt.Errorf("%w: %q", ErrMalformedItemRef, s)
	}

	t, err := ParseItemType(name)
	if err != nil {
		return ItemRef{}, fmt.Errorf("%w: %w", ErrMalformedItemRef, err)
	}

	return ItemRef{ID: id, Type: t}, nil
}

// MergeRefs returns the ordered union of existing and incoming: every ref of
// existing in its original order followed by the refs of incoming not seen
// before.
func MergeRefs(existing, incoming []ItemRef) []ItemRef {
	seen := make(map[ItemRef]struct{}, len(existing)+len(incoming))
	merged := make([]ItemRef, 0, len(existing)+len(incoming))

	for _, list := range [][]ItemRef{existing, incoming} {
		for _, ref := range list {
			if _, ok := seen[ref]; ok {
				continue
			}
			seen[ref] = struct{}{}
			merged = append(merged, ref)
		}
	}

	return merged
}

// SubtractRefs returns the refs of set that are not in remove, preserving
// order.
func SubtractRefs(set, remove []ItemRef) []ItemRef {
	if len(remove) == 0 {
		return set
	}

	drop := make(map[ItemRef]struct{}, len(remove))
	for _, ref := range remove {
		drop[ref] = struct{}{}
	}

	rest := make([]ItemRef, 0, len(set))
	for _, ref := range set {
		if _, ok := drop[ref]; !ok {
			rest = append(rest, ref)
		}
	}

	return rest
}
