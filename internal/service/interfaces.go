// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"iter"

	"github.com/MKhiriev/go-notes-sync/models"
)

// Client-side method names used in server to client messages.
const (
	MethodSyncItem            = "SyncItem"
	MethodRemoteSyncCompleted = "RemoteSyncCompleted"
	MethodPushCompleted       = "PushCompleted"
	MethodSendVaultKey        = "SendVaultKey"
	MethodSendItems           = "SendItems"
)

type AuthService interface {
	CreateToken(ctx context.Context, accountID string, scopes ...string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// Authorize decides whether the holder of token may open a sync session.
	Authorize(ctx context.Context, token models.Token) models.AuthorizationDecision
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ClientCaller invokes a method on the connected client and waits for its
// boolean reply. Invoke returns ctx.Err() when ctx ends first.
type ClientCaller interface {
	Invoke(ctx context.Context, method string, args ...any) (bool, error)
}

// Notifier publishes best-effort notifications to the other sessions of an
// account. It is satisfied by *hub.Hub.
type Notifier interface {
	Publish(ctx context.Context, accountID, exceptConnection string, n models.Notification) int
}

// DeviceTracker keeps the owed-queue of every registered device.
//
// Every mutation is a read-modify-write under the lock of one device, never
// held across network I/O.
type DeviceTracker interface {
	// Register creates the device with a pending reset. Registering an
	// existing device resets it again.
	Register(ctx context.Context, ownerID, deviceID string) error
	Unregister(ctx context.Context, ownerID, deviceID string) error

	// Enqueue adds refs to the unsynced queue of every registered device of
	// ownerID except excludeDevice.
	Enqueue(ctx context.Context, ownerID, excludeDevice string, refs []models.ItemRef) error

	// ClaimPending moves the unsynced queue into pending and returns pending.
	// For a device with a pending reset it discards both queues and reports
	// reset instead.
	ClaimPending(ctx context.Context, ownerID, deviceID string) (refs []models.ItemRef, reset bool, err error)

	// AdvanceCursor replaces pending with the references still owed.
	AdvanceCursor(ctx context.Context, ownerID, deviceID string, stillOwed []models.ItemRef) error

	// CompleteFetch clears the reset flag and the pending queue.
	CompleteFetch(ctx context.Context, ownerID, deviceID string) error

	IsRegistered(ctx context.Context, ownerID, deviceID string) (bool, error)
	HasUnsynced(ctx context.Context, ownerID, deviceID string) (bool, error)
	HasPendingFetch(ctx context.Context, ownerID, deviceID string) (bool, error)
	IsResetRequested(ctx context.Context, ownerID, deviceID string) (bool, error)
	State(ctx context.Context, ownerID, deviceID string) (models.DeviceState, error)

	ListDevices(ctx context.Context, ownerID string) ([]models.Device, error)
	DeleteOwner(ctx context.Context, ownerID string) error
}

// CursorSyncService is the generation 1 protocol: pushes are broadcast live
// and devices catch up by fetching everything after their cursor.
type CursorSyncService interface {
	// PushBatch stores items and returns 1, or 0 when the batch was rejected
	// or another sync runs on the same connection.
	PushBatch(ctx context.Context, session models.Session, items []models.TransferItem, cursor int64) (int, error)

	// FetchAll streams every item changed after sinceCursor and ends with a
	// synced element carrying the account cursor.
	FetchAll(ctx context.Context, session models.Session, sinceCursor int64) iter.Seq2[models.FetchStreamItem, error]

	CompleteFetch(ctx context.Context, session models.Session, cursor int64) (bool, error)

	// Disconnect releases everything held by the session.
	Disconnect(ctx context.Context, session models.Session)
}

// DeviceSyncService is the generation 2 protocol: pushes are queued per
// device and each device fetches exactly what it is owed.
type DeviceSyncService interface {
	PushItems(ctx context.Context, session models.Session, deviceID string, req models.PushItemsRequest) (int, error)
	PushCompleted(ctx context.Context, session models.Session) bool

	// RequestFetch sends the backlog of deviceID through caller, one
	// acknowledged chunk at a time.
	RequestFetch(ctx context.Context, session models.Session, deviceID string, caller ClientCaller) (models.FetchResult, error)
}

// AccountService covers the REST management of devices and sync data.
type AccountService interface {
	ListDevices(ctx context.Context, accountID string) ([]models.Device, error)
	RegisterDevice(ctx context.Context, accountID, deviceID string) error
	UnregisterDevice(ctx context.Context, accountID, deviceID string) error

	SetVaultKey(ctx context.Context, accountID string, key models.VaultKey) error

	// DeleteSyncData removes every item, device and the sync state of the
	// account.
	DeleteSyncData(ctx context.Context, accountID string) error
}
