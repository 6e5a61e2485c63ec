// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"iter"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/models"
)

// defaultPageSize is used when a caller passes a non-positive page size.
const defaultPageSize = 100

// itemRepository is the PostgreSQL-backed implementation of
// [ItemRepository]. Every item type lives in its own table, resolved through
// [tableFor].
type itemRepository struct {
	*DB
	logger *logger.Logger
}

// NewItemRepository constructs an [ItemRepository] backed by the provided
// database connection and logger.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		DB:     db,
		logger: logger,
	}
}

// UpsertItems writes items inside one transaction. One statement is prepared
// per table on first use and reused for later items of the same type.
func (r *itemRepository) UpsertItems(ctx context.Context, ownerID string, items []models.Item, syncVersion int64, onAccepted func(models.Item)) error {
	log := logger.FromContext(ctx)

	if len(items) == 0 {
		return nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.UpsertItems").
			Str("owner_id", ownerID).
			Int("items_count", len(items)).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	statements := make(map[models.ItemType]*sql.Stmt)
	defer func() {
		for _, stmt := range statements {
			stmt.Close()
		}
	}()

	for idx, item := range items {
		query, args, buildErr := buildUpsertItemQuery(ownerID, item, syncVersion)
		if buildErr != nil {
			log.Err(buildErr).
				Str("func", "itemRepository.UpsertItems").
				Int("iteration", idx+1).
				Str("item_type", item.Type.String()).
				Msg("failed to build upsert query")
			return buildErr
		}

		stmt, ok := statements[item.Type]
		if !ok {
			stmt, err = tx.PrepareContext(ctx, query)
			if err != nil {
				log.Err(err).
					Str("func", "itemRepository.UpsertItems").
					Str("item_type", item.Type.String()).
					Msg("failed to prepare upsert statement")
				return fmt.Errorf("%w: %w", ErrPreparingStatement, err)
			}
			statements[item.Type] = stmt
		}

		result, execErr := stmt.ExecContext(ctx, args...)
		if execErr != nil {
			log.Err(execErr).
				Str("func", "itemRepository.UpsertItems").
				Int("iteration", idx+1).
				Str("item_id", item.ID).
				Str("pg_code", postgresError(execErr)).
				Bool("retryable", r.retryable(execErr)).
				Msg("failed to upsert item")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}

		if rowsAffected, _ := result.RowsAffected(); rowsAffected == 0 {
			log.Error().
				Str("func", "itemRepository.UpsertItems").
				Str("item_id", item.ID).
				Msg("item was not saved")
			return ErrItemNotSaved
		}

		if onAccepted != nil {
			item.SyncVersion = syncVersion
			onAccepted(item)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "itemRepository.UpsertItems").
			Str("owner_id", ownerID).
			Int("items_count", len(items)).
			Bool("retryable", r.retryable(commitErr)).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Debug().
		Str("func", "itemRepository.UpsertItems").
		Str("owner_id", ownerID).
		Int("items_count", len(items)).
		Int64("sync_version", syncVersion).
		Msg("items upserted")

	return nil
}

// ItemsChangedAfter pages through every table in fetch order using a
// (sync_version, id) keyset.
func (r *itemRepository) ItemsChangedAfter(ctx context.Context, ownerID string, cursor int64, pageSize int) iter.Seq2[models.Item, error] {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	return func(yield func(models.Item, error) bool) {
		for _, itemType := range models.ItemTypes {
			var last *models.Item
			for {
				query, args, err := buildChangedAfterQuery(ownerID, itemType, cursor, last, pageSize)
				if err != nil {
					yield(models.Item{}, err)
					return
				}

				page, err := r.queryItems(ctx, itemType, query, args)
				if err != nil {
					yield(models.Item{}, err)
					return
				}

				for _, item := range page {
					if !yield(item, nil) {
						return
					}
				}

				if len(page) < pageSize {
					break
				}
				last = &page[len(page)-1]
			}
		}
	}
}

// CountChangedAfter sums the per-table counts.
func (r *itemRepository) CountChangedAfter(ctx context.Context, ownerID string, cursor int64) (int, error) {
	log := logger.FromContext(ctx)

	total := 0
	for _, itemType := range models.ItemTypes {
		query, args, err := buildCountChangedAfterQuery(ownerID, itemType, cursor)
		if err != nil {
			return 0, err
		}

		var count int
		if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
			log.Err(err).
				Str("func", "itemRepository.CountChangedAfter").
				Str("owner_id", ownerID).
				Str("item_type", itemType.String()).
				Msg("failed to count changed items")
			return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		total += count
	}

	return total, nil
}

// ItemsByIDs loads pageSize ids per query, or keyset pages ordered by id in
// reset mode.
func (r *itemRepository) ItemsByIDs(ctx context.Context, ownerID string, itemType models.ItemType, ids []string, resetAll bool, pageSize int) iter.Seq2[models.Item, error] {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if resetAll {
		return r.allItems(ctx, ownerID, itemType, pageSize)
	}

	return func(yield func(models.Item, error) bool) {
		for start := 0; start < len(ids); start += pageSize {
			batch := ids[start:min(start+pageSize, len(ids))]

			query, args, err := buildItemsByIDsQuery(ownerID, itemType, batch)
			if err != nil {
				yield(models.Item{}, err)
				return
			}

			page, err := r.queryItems(ctx, itemType, query, args)
			if err != nil {
				yield(models.Item{}, err)
				return
			}

			for _, item := range page {
				if !yield(item, nil) {
					return
				}
			}
		}
	}
}

func (r *itemRepository) allItems(ctx context.Context, ownerID string, itemType models.ItemType, pageSize int) iter.Seq2[models.Item, error] {
	return func(yield func(models.Item, error) bool) {
		afterID := ""
		for {
			query, args, err := buildItemsPageQuery(ownerID, itemType, afterID, pageSize)
			if err != nil {
				yield(models.Item{}, err)
				return
			}

			page, err := r.queryItems(ctx, itemType, query, args)
			if err != nil {
				yield(models.Item{}, err)
				return
			}

			for _, item := range page {
				if !yield(item, nil) {
					return
				}
			}

			if len(page) < pageSize {
				return
			}
			afterID = page[len(page)-1].ID
		}
	}
}

// queryItems runs one page query and reads it completely, so the rows are
// closed before any item reaches the consumer.
func (r *itemRepository) queryItems(ctx context.Context, itemType models.ItemType, query string, args []any) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.queryItems").
			Str("item_type", itemType.String()).
			Msg("failed to execute items query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	page := make([]models.Item, 0, 50)
	for rows.Next() {
		item := models.Item{Type: itemType}
		scanErr := rows.Scan(
			&item.ID,
			&item.Cipher,
			&item.IV,
			&item.Salt,
			&item.Algorithm,
			&item.Length,
			&item.SyncVersion,
			&item.ClientVersion,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "itemRepository.queryItems").
				Str("item_type", itemType.String()).
				Msg("failed to scan item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		page = append(page, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "itemRepository.queryItems").
			Str("item_type", itemType.String()).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return page, nil
}

// DeleteAllForOwner deletes from every table in one transaction.
func (r *itemRepository) DeleteAllForOwner(ctx context.Context, ownerID string) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.DeleteAllForOwner").
			Str("owner_id", ownerID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, itemType := range models.ItemTypes {
		query, args, buildErr := buildDeleteOwnerItemsQuery(ownerID, itemType)
		if buildErr != nil {
			return buildErr
		}

		if _, execErr := tx.ExecContext(ctx, query, args...); execErr != nil {
			log.Err(execErr).
				Str("func", "itemRepository.DeleteAllForOwner").
				Str("owner_id", ownerID).
				Str("item_type", itemType.String()).
				Msg("failed to delete items")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "itemRepository.DeleteAllForOwner").
			Str("owner_id", ownerID).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Info().
		Str("func", "itemRepository.DeleteAllForOwner").
		Str("owner_id", ownerID).
		Msg("deleted all items of owner")

	return nil
}
