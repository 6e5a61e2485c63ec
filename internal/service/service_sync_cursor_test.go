package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/internal/metrics"
	"github.com/MKhiriev/go-notes-sync/internal/validators"
	"github.com/MKhiriev/go-notes-sync/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func transfer(items ...models.Item) []models.TransferItem {
	out := make([]models.TransferItem, 0, len(items))
	for _, item := range items {
		out = append(out, models.TransferItem{Type: item.Type, Payload: item, Version: 5})
	}
	return out
}

func fetchAll(t *testing.T, svc CursorSyncService, s models.Session, since int64) []models.FetchStreamItem {
	t.Helper()

	var out []models.FetchStreamItem
	for element, err := range svc.FetchAll(context.Background(), s, since) {
		require.NoError(t, err)
		out = append(out, element)
	}
	return out
}

// ─────────────────────────────────────────────
// PushBatch
// ─────────────────────────────────────────────

func TestCursorSync_PushBatch_BroadcastsToOtherSessions(t *testing.T) {
	env := newTestEnv(t)
	svc := env.cursorService()
	ctx := context.Background()

	pusher := env.cursorHub.Subscribe(testAccount, "c1")
	defer pusher.Close()
	sibling := env.cursorHub.Subscribe(testAccount, "c2")
	defer sibling.Close()

	result, err := svc.PushBatch(ctx, session("c1"), transfer(testItem("n1", models.Note, 10)), 100)
	require.NoError(t, err)
	assert.Equal(t, 1, result)

	select {
	case n := <-sibling.C():
		assert.Equal(t, MethodSyncItem, n.Method)
		require.Len(t, n.Arguments, 1)
		item := n.Arguments[0].(models.TransferItem)
		assert.Equal(t, "n1", item.Payload.ID)
		assert.Equal(t, int64(100), item.Payload.SyncVersion)
	default:
		t.Fatal("sibling session got no notification")
	}

	assert.Empty(t, pusher.C(), "pusher does not hear its own items")
}

func TestCursorSync_PushBatch_VersionPerTypedItem(t *testing.T) {
	env := newTestEnv(t)
	svc := env.cursorService()

	sibling := env.cursorHub.Subscribe(testAccount, "c2")
	defer sibling.Close()

	batch := []models.TransferItem{
		{Type: models.Note, Payload: testItem("x1", models.Note, 1), Version: 3},
		{Type: models.Tag, Payload: testItem("x1", models.Tag, 1), Version: 7},
	}
	result, err := svc.PushBatch(context.Background(), session("c1"), batch, 10)
	require.NoError(t, err)
	require.Equal(t, 1, result)

	versions := make(map[models.ItemType]int)
	for range 2 {
		select {
		case n := <-sibling.C():
			item := n.Arguments[0].(models.TransferItem)
			versions[item.Type] = item.Version
		default:
			t.Fatal("sibling session missed a notification")
		}
	}
	assert.Equal(t, map[models.ItemType]int{models.Note: 3, models.Tag: 7}, versions)
}

func TestCursorSync_PushBatch_TagIsAtLeastLastSynced(t *testing.T) {
	env := newTestEnv(t)
	svc := env.cursorService()
	ctx := context.Background()

	_, err := env.syncStates.AdvanceLastSynced(ctx, testAccount, 500)
	require.NoError(t, err)

	_, err = svc.PushBatch(ctx, session("c1"), transfer(testItem("n1", models.Note, 10)), 100)
	require.NoError(t, err)

	items := fetchAll(t, svc, session("c2"), 0)
	require.Len(t, items, 2)
	assert.Equal(t, int64(500), items[0].Item.SyncVersion)
}

func TestCursorSync_PushBatch_RejectsWholeBatch(t *testing.T) {
	env := newTestEnv(t)
	notifier := &recordingNotifier{}
	svc := NewCursorSyncService(env.items, env.syncStates, notifier, NewSingleFlight(), env.leases, env.clock, logger.Nop())
	ctx := context.Background()

	tooLarge := testItem("big", models.Note, models.MaxItemLength+1)
	result, err := svc.PushBatch(ctx, session("c1"), transfer(testItem("ok", models.Note, 10), tooLarge), 100)

	assert.Equal(t, 0, result)
	assert.ErrorIs(t, err, validators.ErrPayloadTooLarge)
	assert.Empty(t, notifier.methods())

	total, err := env.items.CountChangedAfter(ctx, testAccount, 0)
	require.NoError(t, err)
	assert.Zero(t, total, "nothing of the batch is visible")
}

func TestCursorSync_PushBatch_BusyConnection(t *testing.T) {
	env := newTestEnv(t)
	guard := NewSingleFlight()
	svc := NewCursorSyncService(env.items, env.syncStates, env.cursorHub, guard, env.leases, env.clock, logger.Nop())

	require.True(t, guard.TryAcquire(testAccount, "c1", opPush))

	result, err := svc.PushBatch(context.Background(), session("c1"), transfer(testItem("n1", models.Note, 10)), 1)
	assert.Equal(t, 0, result)
	assert.ErrorIs(t, err, ErrSyncInProgress)

	result, err = svc.PushBatch(context.Background(), session("c2"), transfer(testItem("n1", models.Note, 10)), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, result, "other connections are not affected")
}

// ─────────────────────────────────────────────
// FetchAll
// ─────────────────────────────────────────────

func TestCursorSync_FetchAll_TypeGroupedWithProgress(t *testing.T) {
	env := newTestEnv(t)
	svc := env.cursorService()
	ctx := context.Background()

	_, err := svc.PushBatch(ctx, session("c1"), transfer(
		testItem("r1", models.Relation, 1),
		testItem("n1", models.Note, 1),
		testItem("t1", models.Tag, 1),
	), 10)
	require.NoError(t, err)
	_, err = svc.PushBatch(ctx, session("c1"), transfer(testItem("old", models.Note, 1)), 5)
	require.NoError(t, err)

	got := fetchAll(t, svc, session("c2"), 5)
	require.Len(t, got, 4)

	var types []models.ItemType
	for i, element := range got[:3] {
		types = append(types, element.ItemType)
		assert.Equal(t, i+1, element.Current)
		assert.Equal(t, 3, element.Total)
	}
	assert.Equal(t, []models.ItemType{models.Note, models.Tag, models.Relation}, types)

	last := got[3]
	assert.True(t, last.Synced)
	assert.Nil(t, last.Item)
	assert.Equal(t, 3, last.Current)
}

func TestCursorSync_FetchAll_StopsWhenConsumerStops(t *testing.T) {
	env := newTestEnv(t)
	svc := env.cursorService()
	ctx := context.Background()

	_, err := svc.PushBatch(ctx, session("c1"), transfer(
		testItem("n1", models.Note, 1),
		testItem("n2", models.Note, 1),
		testItem("n3", models.Note, 1),
	), 10)
	require.NoError(t, err)

	cancelled := fetches.WithLabelValues(generationCursor, metrics.Cancel)
	before := testutil.ToFloat64(cancelled)

	seen := 0
	for _, err := range svc.FetchAll(ctx, session("c2"), 0) {
		require.NoError(t, err)
		seen++
		break
	}
	assert.Equal(t, 1, seen)
	assert.Equal(t, before+1, testutil.ToFloat64(cancelled))

	// the guard was released
	got := fetchAll(t, svc, session("c2"), 0)
	assert.Len(t, got, 4)
}

func TestCursorSync_FetchAll_CancelledContext(t *testing.T) {
	env := newTestEnv(t)
	svc := env.cursorService()

	_, err := svc.PushBatch(context.Background(), session("c1"), transfer(testItem("n1", models.Note, 1)), 10)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var lastErr error
	for _, err := range svc.FetchAll(ctx, session("c2"), 0) {
		lastErr = err
	}
	assert.ErrorIs(t, lastErr, context.Canceled)
}

// ─────────────────────────────────────────────
// CompleteFetch
// ─────────────────────────────────────────────

func TestCursorSync_CompleteFetch_AdvancesCursor(t *testing.T) {
	env := newTestEnv(t)
	svc := env.cursorService()
	ctx := context.Background()

	sibling := env.cursorHub.Subscribe(testAccount, "c2")
	defer sibling.Close()

	fetchAll(t, svc, session("c1"), 0)
	ok, err := svc.CompleteFetch(ctx, session("c1"), 300)
	require.NoError(t, err)
	assert.True(t, ok)

	state, err := env.syncStates.GetSyncState(ctx, testAccount)
	require.NoError(t, err)
	assert.Equal(t, int64(300), state.LastSynced)

	n := <-sibling.C()
	assert.Equal(t, MethodRemoteSyncCompleted, n.Method)
	assert.Equal(t, []any{int64(300)}, n.Arguments)

	// the cursor never goes back
	_, err = svc.CompleteFetch(ctx, session("c1"), 100)
	require.NoError(t, err)
	state, err = env.syncStates.GetSyncState(ctx, testAccount)
	require.NoError(t, err)
	assert.Equal(t, int64(300), state.LastSynced)
}

func TestCursorSync_CompleteFetch_HeldBackBySlowSession(t *testing.T) {
	env := newTestEnv(t)
	svc := env.cursorService()
	ctx := context.Background()

	_, err := env.syncStates.AdvanceLastSynced(ctx, testAccount, 50)
	require.NoError(t, err)

	fetchAll(t, svc, session("slow"), 120)
	fetchAll(t, svc, session("fast"), 200)

	_, err = svc.CompleteFetch(ctx, session("fast"), 400)
	require.NoError(t, err)

	state, err := env.syncStates.GetSyncState(ctx, testAccount)
	require.NoError(t, err)
	assert.Equal(t, int64(120), state.LastSynced, "slow session still needs everything after 120")

	_, err = svc.CompleteFetch(ctx, session("slow"), 400)
	require.NoError(t, err)
	state, err = env.syncStates.GetSyncState(ctx, testAccount)
	require.NoError(t, err)
	assert.Equal(t, int64(400), state.LastSynced)
}

func TestCursorSync_CompleteFetch_IgnoresCrashedSession(t *testing.T) {
	env := newTestEnv(t)
	svc := env.cursorService()
	ctx := context.Background()

	fetchAll(t, svc, session("crashed"), 10)
	env.clock.Advance(11 * time.Minute)

	_, err := svc.CompleteFetch(ctx, session("c1"), 400)
	require.NoError(t, err)

	state, err := env.syncStates.GetSyncState(ctx, testAccount)
	require.NoError(t, err)
	assert.Equal(t, int64(400), state.LastSynced)
}

func TestCursorSync_Disconnect_ReleasesLeaseAndGuard(t *testing.T) {
	env := newTestEnv(t)
	svc := env.cursorService()
	ctx := context.Background()

	fetchAll(t, svc, session("gone"), 10)
	require.Equal(t, 1, env.leases.Active(testAccount))

	svc.Disconnect(ctx, session("gone"))
	assert.Zero(t, env.leases.Active(testAccount))

	_, err := svc.CompleteFetch(ctx, session("c1"), 400)
	require.NoError(t, err)
	state, err := env.syncStates.GetSyncState(ctx, testAccount)
	require.NoError(t, err)
	assert.Equal(t, int64(400), state.LastSynced)
}
