package service

import (
	"context"
	"fmt"
	"iter"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/internal/metrics"
	"github.com/MKhiriev/go-notes-sync/internal/store"
	"github.com/MKhiriev/go-notes-sync/models"
	"github.com/jonboulle/clockwork"
)

// cursorSyncService implements [CursorSyncService].
type cursorSyncService struct {
	items      store.ItemStorage
	syncStates store.SyncStateRepository
	notifier   Notifier

	// guard allows one push and one fetch per connection.
	guard *SingleFlight

	// leases hold back the account cursor for fetches still running.
	leases *FetchLeases

	clock  clockwork.Clock
	logger *logger.Logger
}

func NewCursorSyncService(
	items store.ItemStorage,
	syncStates store.SyncStateRepository,
	notifier Notifier,
	guard *SingleFlight,
	leases *FetchLeases,
	clock clockwork.Clock,
	logger *logger.Logger,
) CursorSyncService {
	logger.Debug().Msg("creating cursor sync service")

	return &cursorSyncService{
		items:      items,
		syncStates: syncStates,
		notifier:   notifier,
		guard:      guard,
		leases:     leases,
		clock:      clock,
		logger:     logger,
	}
}

// PushBatch tags the batch with max(cursor, lastSynced) and stores it as a
// unit. Every accepted item is published to the other sessions of the
// account before the commit; subscribers must not rely on it.
func (s *cursorSyncService) PushBatch(ctx context.Context, session models.Session, transferItems []models.TransferItem, cursor int64) (int, error) {
	log := logger.FromContext(ctx)

	if !s.guard.TryAcquire(session.AccountID, session.ConnectionID, opPush) {
		pushes.WithLabelValues(generationCursor, metrics.Busy).Inc()
		log.Warn().
			Str("func", "cursorSyncService.PushBatch").
			Str("account_id", session.AccountID).
			Str("connection_id", session.ConnectionID).
			Msg("push rejected, sync already running on connection")
		return 0, ErrSyncInProgress
	}
	defer s.guard.Release(session.AccountID, session.ConnectionID, opPush)

	state, err := s.syncStates.GetSyncState(ctx, session.AccountID)
	if err != nil {
		pushes.WithLabelValues(generationCursor, metrics.Fail).Inc()
		log.Err(err).
			Str("func", "cursorSyncService.PushBatch").
			Str("account_id", session.AccountID).
			Msg("failed to get sync state")
		return 0, fmt.Errorf("push batch: %w", err)
	}
	tag := max(cursor, state.LastSynced)

	items := make([]models.Item, 0, len(transferItems))
	versions := make(map[models.ItemRef]int, len(transferItems))
	for _, ti := range transferItems {
		item := ti.Payload
		item.Type = ti.Type
		if ti.Version != 0 {
			item.ClientVersion = ti.Version
		}
		items = append(items, item)
		versions[item.Ref()] = ti.Version
	}

	err = s.items.UpsertBatch(ctx, session.AccountID, items, tag, func(item models.Item) {
		s.notifier.Publish(ctx, session.AccountID, session.ConnectionID, models.Notification{
			Method: MethodSyncItem,
			Arguments: []any{models.TransferItem{
				Type:    item.Type,
				Payload: item,
				Version: versions[item.Ref()],
			}},
		})
	})
	pushes.WithLabelValues(generationCursor, metrics.Outcome(err)).Inc()
	if err != nil {
		log.Err(err).
			Str("func", "cursorSyncService.PushBatch").
			Str("account_id", session.AccountID).
			Int("items_count", len(items)).
			Msg("push batch rejected")
		return 0, fmt.Errorf("push batch: %w", err)
	}

	itemsStored.WithLabelValues(generationCursor).Add(float64(len(items)))
	log.Debug().
		Str("account_id", session.AccountID).
		Int("items_count", len(items)).
		Int64("sync_version", tag).
		Msg("push batch stored")

	return 1, nil
}

// FetchAll holds a fetch lease starting at sinceCursor until CompleteFetch
// or disconnect. The sequence stops early when ctx ends.
func (s *cursorSyncService) FetchAll(ctx context.Context, session models.Session, sinceCursor int64) iter.Seq2[models.FetchStreamItem, error] {
	return func(yield func(models.FetchStreamItem, error) bool) {
		log := logger.FromContext(ctx)

		if !s.guard.TryAcquire(session.AccountID, session.ConnectionID, opFetch) {
			fetches.WithLabelValues(generationCursor, metrics.Busy).Inc()
			yield(models.FetchStreamItem{}, ErrSyncInProgress)
			return
		}
		defer s.guard.Release(session.AccountID, session.ConnectionID, opFetch)

		start := s.clock.Now()
		var (
			err     error
			stopped bool
		)
		defer func() {
			outcome := metrics.Outcome(err)
			if stopped {
				outcome = metrics.Cancel
			}
			fetches.WithLabelValues(generationCursor, outcome).Inc()
			fetchDuration.WithLabelValues(generationCursor).Observe(s.clock.Since(start).Seconds())
		}()

		s.leases.Acquire(session.AccountID, session.ConnectionID, sinceCursor)

		total, err := s.items.CountChangedAfter(ctx, session.AccountID, sinceCursor)
		if err != nil {
			log.Err(err).
				Str("func", "cursorSyncService.FetchAll").
				Str("account_id", session.AccountID).
				Msg("failed to count changed items")
			yield(models.FetchStreamItem{}, err)
			return
		}

		current := 0
		for item, itemErr := range s.items.ItemsChangedAfter(ctx, session.AccountID, sinceCursor) {
			if itemErr != nil {
				err = itemErr
				log.Err(err).
					Str("func", "cursorSyncService.FetchAll").
					Str("account_id", session.AccountID).
					Int("current", current).
					Msg("fetch stopped")
				yield(models.FetchStreamItem{}, err)
				return
			}

			current++
			s.leases.Renew(session.AccountID, session.ConnectionID)
			itemsSent.WithLabelValues(generationCursor).Inc()

			if !yield(models.FetchStreamItem{
				Item:     &item,
				ItemType: item.Type,
				Current:  current,
				Total:    max(total, current),
			}, nil) {
				stopped = true
				return
			}
		}

		state, err := s.syncStates.GetSyncState(ctx, session.AccountID)
		if err != nil {
			yield(models.FetchStreamItem{}, err)
			return
		}

		yield(models.FetchStreamItem{
			Synced:  true,
			Cursor:  state.LastSynced,
			Current: current,
			Total:   max(total, current),
		}, nil)
	}
}

// CompleteFetch advances the account cursor to max(cursor, lastSynced) but
// not past the start cursor of any other live fetch of the account, and
// tells the other sessions.
func (s *cursorSyncService) CompleteFetch(ctx context.Context, session models.Session, cursor int64) (bool, error) {
	log := logger.FromContext(ctx)

	s.leases.Release(session.AccountID, session.ConnectionID)

	state, err := s.syncStates.GetSyncState(ctx, session.AccountID)
	if err != nil {
		log.Err(err).
			Str("func", "cursorSyncService.CompleteFetch").
			Str("account_id", session.AccountID).
			Msg("failed to get sync state")
		return false, fmt.Errorf("complete fetch: %w", err)
	}

	next := max(cursor, state.LastSynced)
	if lowest, ok := s.leases.MinOtherCursor(session.AccountID, session.ConnectionID); ok && lowest < next {
		next = max(lowest, state.LastSynced)
	}

	stored, err := s.syncStates.AdvanceLastSynced(ctx, session.AccountID, next)
	if err != nil {
		log.Err(err).
			Str("func", "cursorSyncService.CompleteFetch").
			Str("account_id", session.AccountID).
			Int64("cursor", next).
			Msg("failed to advance cursor")
		return false, fmt.Errorf("complete fetch: %w", err)
	}

	s.notifier.Publish(ctx, session.AccountID, session.ConnectionID, models.Notification{
		Method:    MethodRemoteSyncCompleted,
		Arguments: []any{stored},
	})

	return true, nil
}

func (s *cursorSyncService) Disconnect(_ context.Context, session models.Session) {
	s.guard.ReleaseScope(session.AccountID, session.ConnectionID)
	s.leases.Release(session.AccountID, session.ConnectionID)
}
