// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"iter"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/internal/validators"
	"github.com/MKhiriev/go-notes-sync/models"
)

// itemStorage is the default implementation of [ItemStorage].
//
// It validates every item before anything is written and fixes the page
// size used for lazy reads, delegating persistence to an [ItemRepository].
type itemStorage struct {
	// repository provides the typed item tables.
	repository ItemRepository

	// validator enforces size, algorithm and item type limits.
	validator validators.Validator

	// pageSize is the number of rows loaded per query.
	pageSize int

	logger *logger.Logger
}

// NewItemStorage constructs an [ItemStorage] over repository.
func NewItemStorage(repository ItemRepository, validator validators.Validator, pageSize int, logger *logger.Logger) ItemStorage {
	logger.Debug().Msg("creating item storage")

	return &itemStorage{
		repository: repository,
		validator:  validator,
		pageSize:   pageSize,
		logger:     logger,
	}
}

// Upsert validates item and inserts or replaces it with the given
// syncVersion. A rejected item leaves the store unchanged.
func (s *itemStorage) Upsert(ctx context.Context, ownerID string, item models.Item, syncVersion int64) error {
	return s.UpsertBatch(ctx, ownerID, []models.Item{item}, syncVersion, nil)
}

// UpsertBatch validates every item first and writes the batch only when all
// of them pass.
func (s *itemStorage) UpsertBatch(ctx context.Context, ownerID string, items []models.Item, syncVersion int64, onAccepted func(models.Item)) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, items); err != nil {
		log.Warn().
			Err(err).
			Str("func", "itemStorage.UpsertBatch").
			Str("owner_id", ownerID).
			Int("items_count", len(items)).
			Msg("rejected invalid items")
		return fmt.Errorf("invalid items: %w", err)
	}

	return s.repository.UpsertItems(ctx, ownerID, items, syncVersion, onAccepted)
}

func (s *itemStorage) ItemsChangedAfter(ctx context.Context, ownerID string, cursor int64) iter.Seq2[models.Item, error] {
	return s.repository.ItemsChangedAfter(ctx, ownerID, cursor, s.pageSize)
}

func (s *itemStorage) CountChangedAfter(ctx context.Context, ownerID string, cursor int64) (int, error) {
	return s.repository.CountChangedAfter(ctx, ownerID, cursor)
}

func (s *itemStorage) ItemsByIDs(ctx context.Context, ownerID string, itemType models.ItemType, ids []string, resetAll bool) iter.Seq2[models.Item, error] {
	return s.repository.ItemsByIDs(ctx, ownerID, itemType, ids, resetAll, s.pageSize)
}

func (s *itemStorage) DeleteAllForOwner(ctx context.Context, ownerID string) error {
	return s.repository.DeleteAllForOwner(ctx, ownerID)
}
