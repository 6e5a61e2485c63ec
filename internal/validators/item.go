// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-notes-sync/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the item identity.
	FieldID = "id"

	// FieldType targets the item collection.
	FieldType = "type"

	// FieldLength targets the declared and actual payload length.
	FieldLength = "length"

	// FieldAlgorithm targets the encryption algorithm allow-list.
	FieldAlgorithm = "alg"

	// FieldOwnerID targets the owner of a device key.
	FieldOwnerID = "owner_id"

	// FieldDeviceID targets the device of a device key.
	FieldDeviceID = "device_id"
)

// maxDeviceIDLength bounds device ids; they become directory names in the
// filesystem device backend.
const maxDeviceIDLength = 128

// allowedAlgorithms is the exhaustive set of encryption algorithm ids the
// server accepts.
var allowedAlgorithms = []string{
	"default",
	"xcha-argon2i13-7",
}

// ItemValidator implements Validator for sync payloads: models.Item,
// []models.Item, models.VaultKey and models.DeviceKey.
type ItemValidator struct{}

// NewItemValidator constructs a new ItemValidator and returns it as the
// Validator interface.
func NewItemValidator() Validator {
	return &ItemValidator{}
}

// Validate dispatches validation on the dynamic type of obj. Both value and
// pointer forms are accepted. A slice of items is validated element by
// element and the first failure is reported with its index.
func (v *ItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Item:
		return v.validateItem(ctx, value, fields...)
	case *models.Item:
		return v.validateItem(ctx, *value, fields...)

	case []models.Item:
		for i, item := range value {
			if err := v.validateItem(ctx, item, fields...); err != nil {
				return fmt.Errorf("validation error at index %d: %w", i, err)
			}
		}
		return nil

	case models.VaultKey:
		return v.validateVaultKey(ctx, value)
	case *models.VaultKey:
		return v.validateVaultKey(ctx, *value)

	case models.DeviceKey:
		return v.validateDeviceKey(ctx, value, fields...)
	case *models.DeviceKey:
		return v.validateDeviceKey(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ItemValidator) validateItem(_ context.Context, item models.Item, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldType, FieldLength, FieldAlgorithm}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if item.ID == "" {
				return ErrEmptyItemID
			}
		case FieldType:
			if !item.Type.Valid() {
				return fmt.Errorf("%w: %q", ErrUnknownItemType, item.Type)
			}
		case FieldLength:
			if err := checkLength(item.Length, item.Size()); err != nil {
				return err
			}
		case FieldAlgorithm:
			if !slices.Contains(allowedAlgorithms, item.Algorithm) {
				return fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, item.Algorithm)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ItemValidator) validateVaultKey(_ context.Context, key models.VaultKey) error {
	if err := checkLength(key.Length, max(key.Length, int64(len(key.Cipher)))); err != nil {
		return err
	}
	if !slices.Contains(allowedAlgorithms, key.Algorithm) {
		return fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, key.Algorithm)
	}

	return nil
}

func (v *ItemValidator) validateDeviceKey(_ context.Context, key models.DeviceKey, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwnerID, FieldDeviceID}
	}

	for _, f := range fields {
		switch f {
		case FieldOwnerID:
			if !isPathSegment(key.OwnerID) {
				return ErrInvalidOwnerID
			}
		case FieldDeviceID:
			if !isPathSegment(key.DeviceID) {
				return ErrInvalidDeviceID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func checkLength(declared, size int64) error {
	if declared < 0 {
		return ErrNegativeLength
	}
	if size > models.MaxItemLength {
		return fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, size)
	}

	return nil
}

// isPathSegment reports whether s can be used verbatim as one directory name.
func isPathSegment(s string) bool {
	if s == "" || s == "." || s == ".." || len(s) > maxDeviceIDLength {
		return false
	}

	return !strings.ContainsAny(s, "/\\\x00")
}
