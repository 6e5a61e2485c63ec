package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrPayloadTooLarge is returned for items whose declared or actual
	// payload length exceeds models.MaxItemLength.
	ErrPayloadTooLarge = errors.New("item payload too large")
	// ErrUnsupportedAlgorithm is returned for an encryption algorithm outside
	// the allow-list.
	ErrUnsupportedAlgorithm = errors.New("unsupported encryption algorithm")
	ErrUnknownItemType      = errors.New("unknown item type")
	ErrEmptyItemID          = errors.New("item id is required")
	ErrNegativeLength       = errors.New("item length cannot be negative")
	// ErrInvalidDeviceID is returned for device ids that are empty, too long
	// or unusable as a single path segment.
	ErrInvalidDeviceID = errors.New("invalid device id")
	ErrInvalidOwnerID  = errors.New("invalid owner id")
)
