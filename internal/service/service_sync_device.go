// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-sync/internal/config"
	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/internal/metrics"
	"github.com/MKhiriev/go-notes-sync/internal/store"
	"github.com/MKhiriev/go-notes-sync/internal/validators"
	"github.com/MKhiriev/go-notes-sync/models"
	"github.com/jonboulle/clockwork"
)

// enqueueTimeout bounds the queueing of a committed push once it no longer
// follows the session context.
const enqueueTimeout = 30 * time.Second

// deviceSyncService implements [DeviceSyncService].
type deviceSyncService struct {
	items      store.ItemStorage
	syncStates store.SyncStateRepository
	tracker    DeviceTracker
	notifier   Notifier
	validator  validators.Validator

	// fetches allows one fetch per device in this process.
	fetches *SingleFlight

	// chunkBudget bounds the bytes of one SendItems chunk, counting
	// itemOverhead per item.
	chunkBudget  int64
	itemOverhead int64

	// ackTimeout bounds the wait for every client acknowledgment.
	ackTimeout time.Duration

	clock  clockwork.Clock
	logger *logger.Logger
}

func NewDeviceSyncService(
	items store.ItemStorage,
	syncStates store.SyncStateRepository,
	tracker DeviceTracker,
	notifier Notifier,
	fetches *SingleFlight,
	cfg config.Sync,
	clock clockwork.Clock,
	logger *logger.Logger,
) DeviceSyncService {
	logger.Debug().Msg("creating device sync service")

	return &deviceSyncService{
		items:        items,
		syncStates:   syncStates,
		tracker:      tracker,
		notifier:     notifier,
		validator:    validators.NewItemValidator(),
		fetches:      fetches,
		chunkBudget:  cfg.ChunkBudget,
		itemOverhead: cfg.ItemOverhead,
		ackTimeout:   cfg.AckTimeout,
		clock:        clock,
		logger:       logger,
	}
}

// PushItems stores the items with the current time in milliseconds as their
// sync version and queues them for every other device of the account.
func (s *deviceSyncService) PushItems(ctx context.Context, session models.Session, deviceID string, req models.PushItemsRequest) (int, error) {
	log := logger.FromContext(ctx)

	err := s.pushItems(ctx, session, deviceID, req)
	pushes.WithLabelValues(generationDevice, metrics.Outcome(err)).Inc()
	if err != nil {
		log.Err(err).
			Str("func", "deviceSyncService.PushItems").
			Str("account_id", session.AccountID).
			Str("device_id", deviceID).
			Str("item_type", req.Type.String()).
			Int("items_count", len(req.Items)).
			Msg("push rejected")
		return 0, err
	}

	itemsStored.WithLabelValues(generationDevice).Add(float64(len(req.Items)))
	return 1, nil
}

func (s *deviceSyncService) pushItems(ctx context.Context, session models.Session, deviceID string, req models.PushItemsRequest) error {
	if err := s.validator.Validate(ctx, models.DeviceKey{OwnerID: session.AccountID, DeviceID: deviceID}); err != nil {
		return err
	}
	if len(req.Items) == 0 {
		return nil
	}

	items := make([]models.Item, 0, len(req.Items))
	for _, item := range req.Items {
		item.Type = req.Type
		items = append(items, item)
	}

	syncVersion := s.clock.Now().UnixMilli()
	if err := s.items.UpsertBatch(ctx, session.AccountID, items, syncVersion, nil); err != nil {
		return fmt.Errorf("push items: %w", err)
	}

	// The items are committed; queue them even if the session goes away.
	enqueueCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), enqueueTimeout)
	defer cancel()

	if err := s.tracker.Enqueue(enqueueCtx, session.AccountID, deviceID, req.Refs()); err != nil {
		return fmt.Errorf("push items: %w", err)
	}

	return nil
}

func (s *deviceSyncService) PushCompleted(ctx context.Context, session models.Session) bool {
	s.notifier.Publish(ctx, session.AccountID, session.ConnectionID, models.Notification{Method: MethodPushCompleted})
	return true
}

// RequestFetch sends the device everything it is owed.
//
// The vault key goes first, then the owed items type by type in
// [models.ItemTypes] order, in chunks acknowledged one at a time. Every
// acknowledged chunk is removed from the pending queue at once, so an
// aborted fetch resumes after the last acknowledged chunk.
func (s *deviceSyncService) RequestFetch(ctx context.Context, session models.Session, deviceID string, caller ClientCaller) (models.FetchResult, error) {
	log := logger.FromContext(ctx).With().
		Str("account_id", session.AccountID).
		Str("device_id", deviceID).
		Logger()

	if err := s.validator.Validate(ctx, models.DeviceKey{OwnerID: session.AccountID, DeviceID: deviceID}); err != nil {
		return models.FetchResult{}, err
	}

	if !s.fetches.TryAcquire(session.AccountID, deviceID, opFetch) {
		fetches.WithLabelValues(generationDevice, metrics.Busy).Inc()
		log.Warn().Str("func", "deviceSyncService.RequestFetch").Msg("fetch already running for device")
		return models.FetchResult{}, ErrFetchInProgress
	}
	defer s.fetches.Release(session.AccountID, deviceID, opFetch)

	start := s.clock.Now()
	result, err := s.fetch(ctx, session, deviceID, caller)
	fetches.WithLabelValues(generationDevice, metrics.Outcome(err)).Inc()
	fetchDuration.WithLabelValues(generationDevice).Observe(s.clock.Since(start).Seconds())
	if err != nil {
		log.Err(err).Str("func", "deviceSyncService.RequestFetch").Msg("fetch aborted")
		return models.FetchResult{}, err
	}

	return result, nil
}

func (s *deviceSyncService) fetch(ctx context.Context, session models.Session, deviceID string, caller ClientCaller) (models.FetchResult, error) {
	ownerID := session.AccountID

	registered, err := s.tracker.IsRegistered(ctx, ownerID, deviceID)
	if err != nil {
		return models.FetchResult{}, err
	}
	if !registered {
		if err = s.tracker.Register(ctx, ownerID, deviceID); err != nil {
			return models.FetchResult{}, err
		}
	}

	state, err := s.tracker.State(ctx, ownerID, deviceID)
	if err != nil {
		return models.FetchResult{}, err
	}
	if !state.NeedsFetch() {
		return models.FetchResult{Synced: true}, nil
	}

	owed, reset, err := s.tracker.ClaimPending(ctx, ownerID, deviceID)
	if err != nil {
		return models.FetchResult{}, err
	}

	syncState, err := s.syncStates.GetSyncState(ctx, ownerID)
	if err != nil {
		return models.FetchResult{}, err
	}
	if syncState.VaultKey != nil {
		ok, err := s.invoke(ctx, caller, MethodSendVaultKey, *syncState.VaultKey)
		if err != nil {
			return models.FetchResult{}, fmt.Errorf("send vault key: %w", err)
		}
		if !ok {
			return models.FetchResult{}, ErrVaultKeyRejected
		}
	}

	f := &deviceFetch{
		service:  s,
		caller:   caller,
		ownerID:  ownerID,
		deviceID: deviceID,
		reset:    reset,
		owed:     owed,
	}
	for _, itemType := range models.ItemTypes {
		if err = f.drainType(ctx, itemType); err != nil {
			return models.FetchResult{}, err
		}
	}

	if err = s.tracker.CompleteFetch(ctx, ownerID, deviceID); err != nil {
		return models.FetchResult{}, err
	}

	logger.FromContext(ctx).Info().
		Str("account_id", ownerID).
		Str("device_id", deviceID).
		Bool("reset", reset).
		Int("chunks", f.sequenceNo).
		Msg("fetch completed")

	return models.FetchResult{Synced: true}, nil
}

// invoke calls method on the client and waits at most ackTimeout for the
// acknowledgment.
func (s *deviceSyncService) invoke(ctx context.Context, caller ClientCaller, method string, arg any) (bool, error) {
	callCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	type ack struct {
		ok  bool
		err error
	}
	done := make(chan ack, 1)
	go func() {
		ok, err := caller.Invoke(callCtx, method, arg)
		done <- ack{ok: ok, err: err}
	}()

	timer := s.clock.NewTimer(s.ackTimeout)
	defer timer.Stop()

	select {
	case a := <-done:
		return a.ok, a.err
	case <-timer.Chan():
		return false, ErrAckTimeout
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// deviceFetch is the state of one RequestFetch.
type deviceFetch struct {
	service  *deviceSyncService
	caller   ClientCaller
	ownerID  string
	deviceID string

	// reset sends every stored item instead of owed.
	reset bool

	// owed is the pending queue as persisted after the last acknowledged
	// chunk. It is unused in reset mode.
	owed []models.ItemRef

	// sequenceNo counts the chunks sent by this fetch.
	sequenceNo int
}

func (f *deviceFetch) drainType(ctx context.Context, itemType models.ItemType) error {
	var ids []string
	if !f.reset {
		for _, ref := range f.owed {
			if ref.Type == itemType {
				ids = append(ids, ref.ID)
			}
		}
		if len(ids) == 0 {
			return nil
		}
	}

	chunks := newChunker(f.service.chunkBudget, f.service.itemOverhead)
	for item, err := range f.service.items.ItemsByIDs(ctx, f.ownerID, itemType, ids, f.reset) {
		if err != nil {
			return fmt.Errorf("read %s items: %w", itemType, err)
		}
		if full, ok := chunks.Add(item); ok {
			if err = f.send(ctx, itemType, full); err != nil {
				return err
			}
		}
	}
	if last := chunks.Flush(); len(last) > 0 {
		if err := f.send(ctx, itemType, last); err != nil {
			return err
		}
	}

	if f.reset {
		return nil
	}

	// Whatever is still owed of this type no longer exists.
	rest := make([]models.ItemRef, 0, len(f.owed))
	for _, ref := range f.owed {
		if ref.Type != itemType {
			rest = append(rest, ref)
		}
	}
	if len(rest) == len(f.owed) {
		return nil
	}
	f.owed = rest

	return f.service.tracker.AdvanceCursor(ctx, f.ownerID, f.deviceID, f.owed)
}

func (f *deviceFetch) send(ctx context.Context, itemType models.ItemType, items []models.Item) error {
	chunk := models.ItemsChunk{Items: items, Type: itemType, SequenceNo: f.sequenceNo}

	ok, err := f.service.invoke(ctx, f.caller, MethodSendItems, chunk)
	switch {
	case err != nil:
		chunksSent.WithLabelValues(metrics.Fail).Inc()
		return fmt.Errorf("send chunk %d: %w", chunk.SequenceNo, err)
	case !ok:
		chunksSent.WithLabelValues(metrics.Fail).Inc()
		return fmt.Errorf("%w: chunk %d", ErrChunkRejected, chunk.SequenceNo)
	}

	chunksSent.WithLabelValues(metrics.OK).Inc()
	itemsSent.WithLabelValues(generationDevice).Add(float64(len(items)))
	f.sequenceNo++

	if f.reset {
		return nil
	}

	sent := make([]models.ItemRef, 0, len(items))
	for _, item := range items {
		sent = append(sent, models.ItemRef{ID: item.ID, Type: itemType})
	}
	f.owed = models.SubtractRefs(f.owed, sent)

	return f.service.tracker.AdvanceCursor(ctx, f.ownerID, f.deviceID, f.owed)
}
