package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/models"
)

// syncStateRepository is the PostgreSQL-backed implementation of
// [SyncStateRepository] over the "sync_states" table. The vault key is kept
// as a jsonb column.
type syncStateRepository struct {
	*DB
	logger *logger.Logger
}

// NewSyncStateRepository constructs a [SyncStateRepository] backed by the
// provided database connection and logger.
func NewSyncStateRepository(db *DB, logger *logger.Logger) SyncStateRepository {
	logger.Debug().Msg("creating sync state repository")
	return &syncStateRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *syncStateRepository) GetSyncState(ctx context.Context, ownerID string) (models.SyncState, error) {
	log := logger.FromContext(ctx)

	state := models.SyncState{OwnerID: ownerID}
	var vaultKey []byte

	err := r.DB.QueryRowContext(ctx, getSyncState, ownerID).Scan(&state.LastSynced, &vaultKey)
	if errors.Is(err, sql.ErrNoRows) {
		return state, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "syncStateRepository.GetSyncState").
			Str("owner_id", ownerID).
			Msg("failed to get sync state")
		return models.SyncState{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if len(vaultKey) > 0 {
		state.VaultKey = new(models.VaultKey)
		if err = json.Unmarshal(vaultKey, state.VaultKey); err != nil {
			log.Err(err).
				Str("func", "syncStateRepository.GetSyncState").
				Str("owner_id", ownerID).
				Msg("failed to decode vault key")
			return models.SyncState{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
	}

	return state, nil
}

func (r *syncStateRepository) AdvanceLastSynced(ctx context.Context, ownerID string, cursor int64) (int64, error) {
	log := logger.FromContext(ctx)

	var lastSynced int64
	if err := r.DB.QueryRowContext(ctx, advanceLastSynced, ownerID, cursor).Scan(&lastSynced); err != nil {
		log.Err(err).
			Str("func", "syncStateRepository.AdvanceLastSynced").
			Str("owner_id", ownerID).
			Int64("cursor", cursor).
			Bool("retryable", r.retryable(err)).
			Msg("failed to advance last synced cursor")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return lastSynced, nil
}

func (r *syncStateRepository) SetVaultKey(ctx context.Context, ownerID string, key models.VaultKey) error {
	log := logger.FromContext(ctx)

	encoded, err := json.Marshal(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, setVaultKey, ownerID, encoded); err != nil {
		log.Err(err).
			Str("func", "syncStateRepository.SetVaultKey").
			Str("owner_id", ownerID).
			Msg("failed to store vault key")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *syncStateRepository) DeleteSyncState(ctx context.Context, ownerID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, deleteSyncState, ownerID); err != nil {
		log.Err(err).
			Str("func", "syncStateRepository.DeleteSyncState").
			Str("owner_id", ownerID).
			Msg("failed to delete sync state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
