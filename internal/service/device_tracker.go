// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"hash/maphash"
	"slices"
	"sync"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/internal/metrics"
	"github.com/MKhiriev/go-notes-sync/internal/store"
	"github.com/MKhiriev/go-notes-sync/models"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"
)

const (
	deviceLockStripes = 64

	// enqueueParallelism bounds the devices updated at once by Enqueue.
	enqueueParallelism = 8
)

// deviceTracker implements [DeviceTracker] over a [store.DeviceStateStore].
//
// The store serializes updates of one device across processes. The striped
// mutexes additionally keep goroutines of this process from contending on
// the store lock of the same device.
type deviceTracker struct {
	store store.DeviceStateStore
	clock clockwork.Clock

	seed  maphash.Seed
	locks [deviceLockStripes]sync.Mutex

	logger *logger.Logger
}

func NewDeviceTracker(devices store.DeviceStateStore, clock clockwork.Clock, logger *logger.Logger) DeviceTracker {
	logger.Debug().Msg("creating device tracker")

	return &deviceTracker{
		store:  devices,
		clock:  clock,
		seed:   maphash.MakeSeed(),
		logger: logger,
	}
}

func (t *deviceTracker) lock(key models.DeviceKey) func() {
	var h maphash.Hash
	h.SetSeed(t.seed)
	h.WriteString(key.OwnerID)
	h.WriteByte(0)
	h.WriteString(key.DeviceID)

	mu := &t.locks[h.Sum64()%deviceLockStripes]
	mu.Lock()

	return mu.Unlock
}

func (t *deviceTracker) update(ctx context.Context, op string, key models.DeviceKey, fn func(state *models.DeviceState) error) error {
	unlock := t.lock(key)
	defer unlock()

	err := t.store.UpdateDevice(ctx, key, fn)
	trackerOperations.WithLabelValues(op, metrics.Outcome(err)).Inc()

	return err
}

func (t *deviceTracker) Register(ctx context.Context, ownerID, deviceID string) error {
	log := logger.FromContext(ctx)
	key := models.DeviceKey{OwnerID: ownerID, DeviceID: deviceID}

	unlock := t.lock(key)
	defer unlock()

	err := t.store.CreateDevice(ctx, key, models.DeviceState{
		RegisteredAt:   t.clock.Now(),
		ResetRequested: true,
	})
	trackerOperations.WithLabelValues("register", metrics.Outcome(err)).Inc()
	if err != nil {
		log.Err(err).
			Str("func", "deviceTracker.Register").
			Str("owner_id", ownerID).
			Str("device_id", deviceID).
			Msg("failed to register device")
		return fmt.Errorf("register device: %w", err)
	}

	log.Info().Str("owner_id", ownerID).Str("device_id", deviceID).Msg("device registered")
	return nil
}

func (t *deviceTracker) Unregister(ctx context.Context, ownerID, deviceID string) error {
	key := models.DeviceKey{OwnerID: ownerID, DeviceID: deviceID}

	unlock := t.lock(key)
	defer unlock()

	err := t.store.DeleteDevice(ctx, key)
	trackerOperations.WithLabelValues("unregister", metrics.Outcome(err)).Inc()

	return err
}

func (t *deviceTracker) Enqueue(ctx context.Context, ownerID, excludeDevice string, refs []models.ItemRef) error {
	log := logger.FromContext(ctx)

	if len(refs) == 0 {
		return nil
	}

	devices, err := t.store.ListDevices(ctx, ownerID)
	if err != nil {
		log.Err(err).
			Str("func", "deviceTracker.Enqueue").
			Str("owner_id", ownerID).
			Msg("failed to list devices")
		return fmt.Errorf("enqueue: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enqueueParallelism)
	for _, device := range devices {
		if device.ID == excludeDevice {
			continue
		}

		key := models.DeviceKey{OwnerID: ownerID, DeviceID: device.ID}
		g.Go(func() error {
			err := t.update(gctx, "enqueue", key, func(state *models.DeviceState) error {
				state.Unsynced = models.MergeRefs(state.Unsynced, refs)
				return nil
			})
			// unregistered in the meantime
			if errors.Is(err, store.ErrDeviceNotFound) {
				return nil
			}
			if err != nil {
				log.Err(err).
					Str("func", "deviceTracker.Enqueue").
					Str("owner_id", ownerID).
					Str("device_id", key.DeviceID).
					Msg("failed to enqueue items")
				return fmt.Errorf("enqueue for device %s: %w", key.DeviceID, err)
			}
			return nil
		})
	}

	return g.Wait()
}

func (t *deviceTracker) ClaimPending(ctx context.Context, ownerID, deviceID string) ([]models.ItemRef, bool, error) {
	var (
		refs  []models.ItemRef
		reset bool
	)

	err := t.update(ctx, "claim", models.DeviceKey{OwnerID: ownerID, DeviceID: deviceID}, func(state *models.DeviceState) error {
		if state.ResetRequested {
			reset = true
			state.Unsynced, state.Pending = nil, nil
			return nil
		}

		state.Pending = models.MergeRefs(state.Pending, state.Unsynced)
		state.Unsynced = nil
		refs = slices.Clone(state.Pending)
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return refs, reset, nil
}

func (t *deviceTracker) AdvanceCursor(ctx context.Context, ownerID, deviceID string, stillOwed []models.ItemRef) error {
	return t.update(ctx, "advance", models.DeviceKey{OwnerID: ownerID, DeviceID: deviceID}, func(state *models.DeviceState) error {
		state.Pending = slices.Clone(stillOwed)
		return nil
	})
}

// CompleteFetch keeps the unsynced queue: references that arrived while the
// fetch ran belong to the next one.
func (t *deviceTracker) CompleteFetch(ctx context.Context, ownerID, deviceID string) error {
	return t.update(ctx, "complete", models.DeviceKey{OwnerID: ownerID, DeviceID: deviceID}, func(state *models.DeviceState) error {
		state.ResetRequested = false
		state.Pending = nil
		return nil
	})
}

func (t *deviceTracker) State(ctx context.Context, ownerID, deviceID string) (models.DeviceState, error) {
	return t.store.GetDevice(ctx, models.DeviceKey{OwnerID: ownerID, DeviceID: deviceID})
}

func (t *deviceTracker) IsRegistered(ctx context.Context, ownerID, deviceID string) (bool, error) {
	_, err := t.State(ctx, ownerID, deviceID)
	if errors.Is(err, store.ErrDeviceNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// The queries below read a missing device as an empty one.

func (t *deviceTracker) HasUnsynced(ctx context.Context, ownerID, deviceID string) (bool, error) {
	state, err := t.stateOrEmpty(ctx, ownerID, deviceID)
	return state.HasUnsynced(), err
}

func (t *deviceTracker) HasPendingFetch(ctx context.Context, ownerID, deviceID string) (bool, error) {
	state, err := t.stateOrEmpty(ctx, ownerID, deviceID)
	return state.HasPendingFetch(), err
}

func (t *deviceTracker) IsResetRequested(ctx context.Context, ownerID, deviceID string) (bool, error) {
	state, err := t.stateOrEmpty(ctx, ownerID, deviceID)
	return state.ResetRequested, err
}

func (t *deviceTracker) stateOrEmpty(ctx context.Context, ownerID, deviceID string) (models.DeviceState, error) {
	state, err := t.State(ctx, ownerID, deviceID)
	if errors.Is(err, store.ErrDeviceNotFound) {
		return models.DeviceState{}, nil
	}

	return state, err
}

func (t *deviceTracker) ListDevices(ctx context.Context, ownerID string) ([]models.Device, error) {
	return t.store.ListDevices(ctx, ownerID)
}

func (t *deviceTracker) DeleteOwner(ctx context.Context, ownerID string) error {
	err := t.store.DeleteOwner(ctx, ownerID)
	trackerOperations.WithLabelValues("delete_owner", metrics.Outcome(err)).Inc()

	return err
}
