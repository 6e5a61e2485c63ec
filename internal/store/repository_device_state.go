package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/models"
)

// deviceStateRepository is the PostgreSQL implementation of
// [DeviceStateStore]: one row per device, queues kept as jsonb arrays.
// Read-modify-write runs under SELECT ... FOR UPDATE.
type deviceStateRepository struct {
	*DB
	logger *logger.Logger
}

// NewDeviceStateRepository constructs a [DeviceStateStore] backed by the
// "devices" table.
func NewDeviceStateRepository(db *DB, logger *logger.Logger) DeviceStateStore {
	logger.Debug().Msg("creating device state repository")
	return &deviceStateRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *deviceStateRepository) CreateDevice(ctx context.Context, key models.DeviceKey, state models.DeviceState) error {
	log := logger.FromContext(ctx)

	unsynced, pending, err := encodeQueues(state)
	if err != nil {
		return err
	}

	registeredAt := state.RegisteredAt
	if registeredAt.IsZero() {
		registeredAt = time.Now()
	}

	if _, err = r.DB.ExecContext(ctx, createDevice,
		key.OwnerID,
		key.DeviceID,
		registeredAt,
		state.ResetRequested,
		unsynced,
		pending,
	); err != nil {
		log.Err(err).
			Str("func", "deviceStateRepository.CreateDevice").
			Str("owner_id", key.OwnerID).
			Str("device_id", key.DeviceID).
			Str("pg_code", postgresError(err)).
			Msg("failed to create device")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *deviceStateRepository) GetDevice(ctx context.Context, key models.DeviceKey) (models.DeviceState, error) {
	log := logger.FromContext(ctx)

	state, err := scanDeviceState(r.DB.QueryRowContext(ctx, getDevice, key.OwnerID, key.DeviceID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.DeviceState{}, ErrDeviceNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "deviceStateRepository.GetDevice").
			Str("owner_id", key.OwnerID).
			Str("device_id", key.DeviceID).
			Msg("failed to get device")
		return models.DeviceState{}, err
	}

	return state, nil
}

func (r *deviceStateRepository) UpdateDevice(ctx context.Context, key models.DeviceKey, fn func(state *models.DeviceState) error) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "deviceStateRepository.UpdateDevice").
			Str("device_id", key.DeviceID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	state, err := scanDeviceState(tx.QueryRowContext(ctx, getDeviceForUpdate, key.OwnerID, key.DeviceID))
	if errors.Is(err, sql.ErrNoRows) {
		return ErrDeviceNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "deviceStateRepository.UpdateDevice").
			Str("device_id", key.DeviceID).
			Msg("failed to lock device row")
		return err
	}

	if err = fn(&state); err != nil {
		return err
	}

	unsynced, pending, err := encodeQueues(state)
	if err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, updateDevice,
		key.OwnerID,
		key.DeviceID,
		state.ResetRequested,
		unsynced,
		pending,
	); err != nil {
		log.Err(err).
			Str("func", "deviceStateRepository.UpdateDevice").
			Str("device_id", key.DeviceID).
			Bool("retryable", r.retryable(err)).
			Msg("failed to update device")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "deviceStateRepository.UpdateDevice").
			Str("device_id", key.DeviceID).
			Bool("retryable", r.retryable(err)).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *deviceStateRepository) DeleteDevice(ctx context.Context, key models.DeviceKey) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteDevice, key.OwnerID, key.DeviceID)
	if err != nil {
		log.Err(err).
			Str("func", "deviceStateRepository.DeleteDevice").
			Str("device_id", key.DeviceID).
			Msg("failed to delete device")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if rowsAffected, _ := result.RowsAffected(); rowsAffected == 0 {
		return ErrDeviceNotFound
	}

	return nil
}

func (r *deviceStateRepository) ListDevices(ctx context.Context, ownerID string) ([]models.Device, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listDevices, ownerID)
	if err != nil {
		log.Err(err).
			Str("func", "deviceStateRepository.ListDevices").
			Str("owner_id", ownerID).
			Msg("failed to list devices")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	devices := make([]models.Device, 0)
	for rows.Next() {
		var (
			deviceID          string
			state             models.DeviceState
			unsynced, pending []byte
		)
		if err = rows.Scan(&deviceID, &state.RegisteredAt, &state.ResetRequested, &unsynced, &pending); err != nil {
			log.Err(err).
				Str("func", "deviceStateRepository.ListDevices").
				Msg("failed to scan device row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if err = decodeQueues(&state, unsynced, pending); err != nil {
			return nil, err
		}

		devices = append(devices, models.NewDevice(deviceID, state))
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "deviceStateRepository.ListDevices").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return devices, nil
}

func (r *deviceStateRepository) DeleteOwner(ctx context.Context, ownerID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, deleteOwnerDevices, ownerID); err != nil {
		log.Err(err).
			Str("func", "deviceStateRepository.DeleteOwner").
			Str("owner_id", ownerID).
			Msg("failed to delete devices of owner")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// scanDeviceState reads one row of getDevice / getDeviceForUpdate.
// sql.ErrNoRows is returned unwrapped.
func scanDeviceState(row *sql.Row) (models.DeviceState, error) {
	var (
		state             models.DeviceState
		unsynced, pending []byte
	)

	err := row.Scan(&state.RegisteredAt, &state.ResetRequested, &unsynced, &pending)
	if errors.Is(err, sql.ErrNoRows) {
		return state, err
	}
	if err != nil {
		return state, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = decodeQueues(&state, unsynced, pending); err != nil {
		return state, err
	}

	return state, nil
}

func encodeQueues(state models.DeviceState) ([]byte, []byte, error) {
	unsynced, err := json.Marshal(nonNilRefs(state.Unsynced))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	pending, err := json.Marshal(nonNilRefs(state.Pending))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return unsynced, pending, nil
}

func decodeQueues(state *models.DeviceState, unsynced, pending []byte) error {
	if len(unsynced) > 0 {
		if err := json.Unmarshal(unsynced, &state.Unsynced); err != nil {
			return fmt.Errorf("%w: unsynced: %w", ErrCorruptDeviceState, err)
		}
	}
	if len(pending) > 0 {
		if err := json.Unmarshal(pending, &state.Pending); err != nil {
			return fmt.Errorf("%w: pending: %w", ErrCorruptDeviceState, err)
		}
	}

	return nil
}

func nonNilRefs(refs []models.ItemRef) []models.ItemRef {
	if refs == nil {
		return []models.ItemRef{}
	}
	return refs
}
