// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"iter"

	"github.com/MKhiriev/go-notes-sync/models"
)

// ItemRepository persists items in one typed collection per [models.ItemType].
//
// Sequences returned by the read methods are lazy: every page is loaded by a
// separate query and no connection is held while the consumer processes
// items. Iteration stops at the first error, which is yielded once.
type ItemRepository interface {
	// UpsertItems writes items in the given order inside one transaction,
	// replacing any stored item with the same (owner, id). onAccepted, when
	// not nil, is called for each item right after its write and before the
	// commit. Either every item is committed or none is.
	UpsertItems(ctx context.Context, ownerID string, items []models.Item, syncVersion int64, onAccepted func(models.Item)) error

	// ItemsChangedAfter yields every item with SyncVersion > cursor, grouped
	// by type in [models.ItemTypes] order and ascending by SyncVersion within
	// a type.
	ItemsChangedAfter(ctx context.Context, ownerID string, cursor int64, pageSize int) iter.Seq2[models.Item, error]

	// CountChangedAfter returns how many items ItemsChangedAfter would yield.
	CountChangedAfter(ctx context.Context, ownerID string, cursor int64) (int, error)

	// ItemsByIDs yields the stored items of itemType whose ids are listed.
	// With resetAll the ids are ignored and every item of the type is
	// yielded.
	ItemsByIDs(ctx context.Context, ownerID string, itemType models.ItemType, ids []string, resetAll bool, pageSize int) iter.Seq2[models.Item, error]

	// DeleteAllForOwner removes every item of every type owned by ownerID.
	DeleteAllForOwner(ctx context.Context, ownerID string) error
}

// ItemStorage is the validating facade over [ItemRepository] used by the
// sync services. Invalid items are rejected before anything is written.
type ItemStorage interface {
	Upsert(ctx context.Context, ownerID string, item models.Item, syncVersion int64) error
	UpsertBatch(ctx context.Context, ownerID string, items []models.Item, syncVersion int64, onAccepted func(models.Item)) error

	ItemsChangedAfter(ctx context.Context, ownerID string, cursor int64) iter.Seq2[models.Item, error]
	CountChangedAfter(ctx context.Context, ownerID string, cursor int64) (int, error)
	ItemsByIDs(ctx context.Context, ownerID string, itemType models.ItemType, ids []string, resetAll bool) iter.Seq2[models.Item, error]

	DeleteAllForOwner(ctx context.Context, ownerID string) error
}

// SyncStateRepository persists the per-account sync state.
type SyncStateRepository interface {
	// GetSyncState returns the state of ownerID. An account without a record
	// has the zero state.
	GetSyncState(ctx context.Context, ownerID string) (models.SyncState, error)

	// AdvanceLastSynced raises LastSynced to cursor if it is lower and returns
	// the stored value. LastSynced never decreases.
	AdvanceLastSynced(ctx context.Context, ownerID string, cursor int64) (int64, error)

	SetVaultKey(ctx context.Context, ownerID string, key models.VaultKey) error
	DeleteSyncState(ctx context.Context, ownerID string) error
}

// DeviceStateStore persists the owed-queues of devices.
//
// Implementations serialize UpdateDevice per device; callers must not hold
// any other lock across network I/O while fn runs.
type DeviceStateStore interface {
	// CreateDevice stores state for key, replacing any previous state.
	CreateDevice(ctx context.Context, key models.DeviceKey, state models.DeviceState) error

	// GetDevice returns ErrDeviceNotFound for unknown devices. Missing queues
	// read as empty.
	GetDevice(ctx context.Context, key models.DeviceKey) (models.DeviceState, error)

	// UpdateDevice runs a read-modify-write of the device state under the
	// device lock. The state is persisted only when fn returns nil.
	UpdateDevice(ctx context.Context, key models.DeviceKey, fn func(state *models.DeviceState) error) error

	DeleteDevice(ctx context.Context, key models.DeviceKey) error
	ListDevices(ctx context.Context, ownerID string) ([]models.Device, error)
	DeleteOwner(ctx context.Context, ownerID string) error
}

// Pinger reports whether a storage backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ErrorClassificator decides whether a failed database call is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
