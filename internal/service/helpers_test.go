package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-sync/internal/config"
	"github.com/MKhiriev/go-notes-sync/internal/hub"
	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/internal/store"
	"github.com/MKhiriev/go-notes-sync/internal/validators"
	"github.com/MKhiriev/go-notes-sync/models"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

const testAccount = "acc-1"

var testStart = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// testEnv wires the services over the in-memory item store and the
// filesystem device store in a temporary directory.
type testEnv struct {
	clock      *clockwork.FakeClock
	items      store.ItemStorage
	syncStates store.SyncStateRepository
	devices    store.DeviceStateStore
	tracker    DeviceTracker
	cursorHub  *hub.Hub
	deviceHub  *hub.Hub
	leases     *FetchLeases
	syncCfg    config.Sync
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	devices, err := store.NewFileDeviceStateStore(t.TempDir(), logger.Nop())
	require.NoError(t, err)

	clock := clockwork.NewFakeClockAt(testStart)

	return &testEnv{
		clock:      clock,
		items:      store.NewItemStorage(store.NewMemoryItemRepository(), validators.NewItemValidator(), 2, logger.Nop()),
		syncStates: store.NewMemorySyncStateRepository(),
		devices:    devices,
		tracker:    NewDeviceTracker(devices, clock, logger.Nop()),
		cursorHub:  hub.New(CursorHubName, 16, logger.Nop()),
		deviceHub:  hub.New(DeviceHubName, 16, logger.Nop()),
		leases:     NewFetchLeases(clock, 10*time.Minute),
		syncCfg: config.Sync{
			ChunkBudget:  3000,
			ItemOverhead: 0,
			AckTimeout:   10 * time.Minute,
		},
	}
}

func (e *testEnv) cursorService() CursorSyncService {
	return NewCursorSyncService(e.items, e.syncStates, e.cursorHub, NewSingleFlight(), e.leases, e.clock, logger.Nop())
}

func (e *testEnv) deviceService() DeviceSyncService {
	return NewDeviceSyncService(e.items, e.syncStates, e.tracker, e.deviceHub, NewSingleFlight(), e.syncCfg, e.clock, logger.Nop())
}

func testItem(id string, itemType models.ItemType, length int64) models.Item {
	return models.Item{
		ID:            id,
		Type:          itemType,
		Cipher:        fmt.Sprintf("cipher-%s", id),
		IV:            "iv",
		Salt:          "salt",
		Algorithm:     "xcha-argon2i13-7",
		Length:        length,
		ClientVersion: 5,
	}
}

func session(connectionID string) models.Session {
	return models.Session{AccountID: testAccount, ConnectionID: connectionID}
}

// ─────────────────────────────────────────────
// Scripted client
// ─────────────────────────────────────────────

// scriptedClient answers server to client calls. ackFn decides the reply to
// every call; nil acknowledges everything.
type scriptedClient struct {
	mu     sync.Mutex
	calls  []string
	chunks []models.ItemsChunk
	keys   []models.VaultKey
	ackFn  func(method string, call int, arg any) (bool, error)
}

func (c *scriptedClient) Invoke(ctx context.Context, method string, args ...any) (bool, error) {
	c.mu.Lock()
	call := len(c.calls)
	c.calls = append(c.calls, method)
	switch arg := args[0].(type) {
	case models.ItemsChunk:
		c.chunks = append(c.chunks, arg)
	case models.VaultKey:
		c.keys = append(c.keys, arg)
	}
	ackFn := c.ackFn
	c.mu.Unlock()

	if ackFn == nil {
		return true, nil
	}
	return ackFn(method, call, args[0])
}

// receivedIDs returns the ids of every chunk item in delivery order.
func (c *scriptedClient) receivedIDs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var ids []string
	for _, chunk := range c.chunks {
		ids = append(ids, chunk.IDs()...)
	}
	return ids
}

func (c *scriptedClient) receivedTypes() []models.ItemType {
	c.mu.Lock()
	defer c.mu.Unlock()

	var types []models.ItemType
	for _, chunk := range c.chunks {
		for range chunk.Items {
			types = append(types, chunk.Type)
		}
	}
	return types
}

// ─────────────────────────────────────────────
// Recording notifier
// ─────────────────────────────────────────────

type recordingNotifier struct {
	mu   sync.Mutex
	sent []models.Notification
}

func (n *recordingNotifier) Publish(_ context.Context, _, _ string, notification models.Notification) int {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.sent = append(n.sent, notification)
	return 1
}

func (n *recordingNotifier) methods() []string {
	n.mu.Lock()
	defer n.mu.Unlock()

	methods := make([]string, 0, len(n.sent))
	for _, notification := range n.sent {
		methods = append(methods, notification.Method)
	}
	return methods
}
