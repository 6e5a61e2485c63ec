package store

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileStore(t *testing.T) (DeviceStateStore, string) {
	t.Helper()
	root := filepath.Join(t.TempDir(), "devices")
	s, err := NewFileDeviceStateStore(root, logger.Nop())
	require.NoError(t, err)
	return s, root
}

func TestFileDeviceStateStore_CreateAndGet(t *testing.T) {
	s, root := newTestFileStore(t)
	ctx := context.Background()
	registeredAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	err := s.CreateDevice(ctx, testDeviceKey, models.DeviceState{RegisteredAt: registeredAt, ResetRequested: true})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(root, "owner-1", "d1", resetFileName))
	assert.NoFileExists(t, filepath.Join(root, "owner-1", "d1", unsyncedFileName))

	state, err := s.GetDevice(ctx, testDeviceKey)
	require.NoError(t, err)
	assert.True(t, state.ResetRequested)
	assert.Empty(t, state.Unsynced)
	assert.Empty(t, state.Pending)
	assert.True(t, registeredAt.Equal(state.RegisteredAt))
}

func TestFileDeviceStateStore_GetUnknownDevice(t *testing.T) {
	s, _ := newTestFileStore(t)

	_, err := s.GetDevice(context.Background(), testDeviceKey)
	require.ErrorIs(t, err, ErrDeviceNotFound)

	err = s.UpdateDevice(context.Background(), testDeviceKey, func(*models.DeviceState) error { return nil })
	require.ErrorIs(t, err, ErrDeviceNotFound)

	require.ErrorIs(t, s.DeleteDevice(context.Background(), testDeviceKey), ErrDeviceNotFound)
}

func TestFileDeviceStateStore_UpdatePersistsQueueFiles(t *testing.T) {
	s, root := newTestFileStore(t)
	ctx := context.Background()
	require.NoError(t, s.CreateDevice(ctx, testDeviceKey, models.DeviceState{}))

	refs := []models.ItemRef{{ID: "n1", Type: models.Note}, {ID: "a:b", Type: models.Relation}}
	err := s.UpdateDevice(ctx, testDeviceKey, func(state *models.DeviceState) error {
		state.Unsynced = refs
		return nil
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, "owner-1", "d1", unsyncedFileName))
	require.NoError(t, err)
	assert.Equal(t, "note:n1\nrelation:a:b\n", string(data))

	state, err := s.GetDevice(ctx, testDeviceKey)
	require.NoError(t, err)
	assert.Equal(t, refs, state.Unsynced)
	assert.False(t, state.ResetRequested)

	err = s.UpdateDevice(ctx, testDeviceKey, func(state *models.DeviceState) error {
		state.Pending = state.Unsynced
		state.Unsynced = nil
		return nil
	})
	require.NoError(t, err)
	assert.NoFileExists(t, filepath.Join(root, "owner-1", "d1", unsyncedFileName))
	assert.FileExists(t, filepath.Join(root, "owner-1", "d1", pendingFileName))
}

func TestFileDeviceStateStore_CallbackErrorKeepsState(t *testing.T) {
	s, _ := newTestFileStore(t)
	ctx := context.Background()
	require.NoError(t, s.CreateDevice(ctx, testDeviceKey, models.DeviceState{ResetRequested: true}))

	errAbort := assert.AnError
	err := s.UpdateDevice(ctx, testDeviceKey, func(state *models.DeviceState) error {
		state.ResetRequested = false
		return errAbort
	})
	require.ErrorIs(t, err, errAbort)

	state, err := s.GetDevice(ctx, testDeviceKey)
	require.NoError(t, err)
	assert.True(t, state.ResetRequested)
}

func TestFileDeviceStateStore_CorruptQueue(t *testing.T) {
	s, root := newTestFileStore(t)
	ctx := context.Background()
	require.NoError(t, s.CreateDevice(ctx, testDeviceKey, models.DeviceState{}))

	path := filepath.Join(root, "owner-1", "d1", pendingFileName)
	require.NoError(t, os.WriteFile(path, []byte("garbage\n"), 0o600))

	_, err := s.GetDevice(ctx, testDeviceKey)
	require.ErrorIs(t, err, ErrCorruptDeviceState)
}

func TestFileDeviceStateStore_ConcurrentUpdatesAreSerialized(t *testing.T) {
	s, _ := newTestFileStore(t)
	ctx := context.Background()
	require.NoError(t, s.CreateDevice(ctx, testDeviceKey, models.DeviceState{}))

	const writers = 20
	var wg sync.WaitGroup
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ref := models.ItemRef{ID: string(rune('a' + i)), Type: models.Note}
			err := s.UpdateDevice(ctx, testDeviceKey, func(state *models.DeviceState) error {
				state.Unsynced = models.MergeRefs(state.Unsynced, []models.ItemRef{ref})
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	state, err := s.GetDevice(ctx, testDeviceKey)
	require.NoError(t, err)
	assert.Len(t, state.Unsynced, writers)
}

func TestFileDeviceStateStore_ListAndDelete(t *testing.T) {
	s, root := newTestFileStore(t)
	ctx := context.Background()

	devices, err := s.ListDevices(ctx, "owner-1")
	require.NoError(t, err)
	assert.Empty(t, devices)

	require.NoError(t, s.CreateDevice(ctx, models.DeviceKey{OwnerID: "owner-1", DeviceID: "d1"}, models.DeviceState{ResetRequested: true}))
	require.NoError(t, s.CreateDevice(ctx, models.DeviceKey{OwnerID: "owner-1", DeviceID: "d2"}, models.DeviceState{
		Unsynced: []models.ItemRef{{ID: "n1", Type: models.Note}},
	}))

	devices, err = s.ListDevices(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, devices, 2)
	assert.Equal(t, "d1", devices[0].ID)
	assert.True(t, devices[0].ResetRequested)
	assert.Equal(t, 1, devices[1].Unsynced)

	require.NoError(t, s.DeleteDevice(ctx, models.DeviceKey{OwnerID: "owner-1", DeviceID: "d1"}))
	assert.NoDirExists(t, filepath.Join(root, "owner-1", "d1"))

	require.NoError(t, s.DeleteOwner(ctx, "owner-1"))
	assert.NoDirExists(t, filepath.Join(root, "owner-1"))
}

func TestFileDeviceStateStore_RejectsUnsafeKeys(t *testing.T) {
	s, _ := newTestFileStore(t)

	for _, key := range []models.DeviceKey{
		{OwnerID: "..", DeviceID: "d1"},
		{OwnerID: "owner-1", DeviceID: "../escape"},
		{OwnerID: "owner-1", DeviceID: ""},
		{OwnerID: "a/b", DeviceID: "d1"},
	} {
		err := s.CreateDevice(context.Background(), key, models.DeviceState{})
		assert.ErrorIs(t, err, ErrDeviceNotFound, "key %+v", key)
	}
}

func TestFileDeviceStateStore_Ping(t *testing.T) {
	s, root := newTestFileStore(t)
	pinger, ok := s.(Pinger)
	require.True(t, ok)

	require.NoError(t, pinger.Ping(context.Background()))

	require.NoError(t, os.RemoveAll(root))
	require.ErrorIs(t, pinger.Ping(context.Background()), ErrReadingDeviceFile)
}

func TestFileDeviceStateStore_LockOnRemovedDevice(t *testing.T) {
	s, root := newTestFileStore(t)

	called := false
	err := s.(*fileDeviceStateStore).withLock(context.Background(), filepath.Join(root, "acc", "gone"), func() error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrDeviceNotFound)
	assert.False(t, called)
}
