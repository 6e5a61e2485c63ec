package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/internal/validators"
	"github.com/MKhiriev/go-notes-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAccountService(env *testEnv) AccountService {
	return NewAccountService(env.items, env.syncStates, env.tracker, logger.Nop())
}

func TestAccountService_Devices(t *testing.T) {
	env := newTestEnv(t)
	svc := newTestAccountService(env)
	ctx := context.Background()

	require.NoError(t, svc.RegisterDevice(ctx, testAccount, "phone"))
	require.NoError(t, svc.RegisterDevice(ctx, testAccount, "laptop"))

	devices, err := svc.ListDevices(ctx, testAccount)
	require.NoError(t, err)
	require.Len(t, devices, 2)
	assert.Equal(t, "laptop", devices[0].ID)
	assert.True(t, devices[0].ResetRequested)

	require.NoError(t, svc.UnregisterDevice(ctx, testAccount, "phone"))
	devices, err = svc.ListDevices(ctx, testAccount)
	require.NoError(t, err)
	assert.Len(t, devices, 1)
}

func TestAccountService_InvalidIDs(t *testing.T) {
	env := newTestEnv(t)
	svc := newTestAccountService(env)
	ctx := context.Background()

	tests := []struct {
		name    string
		call    func() error
		wantErr error
	}{
		{
			name:    "register with path in device id",
			call:    func() error { return svc.RegisterDevice(ctx, testAccount, "a/b") },
			wantErr: validators.ErrInvalidDeviceID,
		},
		{
			name:    "unregister with empty device id",
			call:    func() error { return svc.UnregisterDevice(ctx, testAccount, "") },
			wantErr: validators.ErrInvalidDeviceID,
		},
		{
			name: "list with dot-dot account",
			call: func() error {
				_, err := svc.ListDevices(ctx, "..")
				return err
			},
			wantErr: validators.ErrInvalidOwnerID,
		},
		{
			name:    "delete with empty account",
			call:    func() error { return svc.DeleteSyncData(ctx, "") },
			wantErr: validators.ErrInvalidOwnerID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.call(), tt.wantErr)
		})
	}
}

func TestAccountService_SetVaultKey(t *testing.T) {
	env := newTestEnv(t)
	svc := newTestAccountService(env)
	ctx := context.Background()

	key := models.VaultKey{Cipher: "k", IV: "iv", Salt: "s", Algorithm: "default", Length: 1}
	require.NoError(t, svc.SetVaultKey(ctx, testAccount, key))

	state, err := env.syncStates.GetSyncState(ctx, testAccount)
	require.NoError(t, err)
	require.NotNil(t, state.VaultKey)
	assert.Equal(t, key, *state.VaultKey)

	err = svc.SetVaultKey(ctx, testAccount, models.VaultKey{Cipher: "k", Algorithm: "rot13"})
	assert.ErrorIs(t, err, validators.ErrUnsupportedAlgorithm)
}

func TestAccountService_DeleteSyncData(t *testing.T) {
	env := newTestEnv(t)
	svc := newTestAccountService(env)
	sync := env.deviceService()
	ctx := context.Background()

	syncedDevice(t, sync, "d1")
	pushItems(t, sync, "d1", models.Note, testItem("n1", models.Note, 10))
	require.NoError(t, svc.SetVaultKey(ctx, testAccount, models.VaultKey{Cipher: "k", Algorithm: "default"}))

	require.NoError(t, svc.DeleteSyncData(ctx, testAccount))

	total, err := env.items.CountChangedAfter(ctx, testAccount, 0)
	require.NoError(t, err)
	assert.Zero(t, total)

	devices, err := svc.ListDevices(ctx, testAccount)
	require.NoError(t, err)
	assert.Empty(t, devices)

	state, err := env.syncStates.GetSyncState(ctx, testAccount)
	require.NoError(t, err)
	assert.Nil(t, state.VaultKey)
}
