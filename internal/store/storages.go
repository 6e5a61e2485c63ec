package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-sync/internal/config"
	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/internal/validators"
)

// Storages groups every persistence dependency of the service layer.
type Storages struct {
	Items      ItemStorage
	SyncStates SyncStateRepository
	Devices    DeviceStateStore

	// Pingers are probed by the storage health worker.
	Pingers map[string]Pinger

	db *DB
}

// NewStorages opens the backends selected by cfg. The "memory" DSN keeps
// items and sync states in process; otherwise PostgreSQL is used and
// migrated.
func NewStorages(ctx context.Context, cfg config.Storage, pageSize int, log *logger.Logger) (*Storages, error) {
	s := &Storages{Pingers: make(map[string]Pinger)}

	var items ItemRepository
	if cfg.DB.DSN == config.MemoryDSN {
		log.Warn().Str("func", "NewStorages").Msg("using in-memory item store, data is lost on restart")
		items = NewMemoryItemRepository()
		s.SyncStates = NewMemorySyncStateRepository()
	} else {
		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		s.db = db
		s.Pingers["database"] = db
		items = NewItemRepository(db, log)
		s.SyncStates = NewSyncStateRepository(db, log)
	}
	s.Items = NewItemStorage(items, validators.NewItemValidator(), pageSize, log)

	switch cfg.Devices.Backend {
	case config.DevicesBackendPostgres:
		if s.db == nil {
			return nil, fmt.Errorf("%w: postgres device backend needs a database", ErrUnknownDevicesBackend)
		}
		s.Devices = NewDeviceStateRepository(s.db, log)
	case config.DevicesBackendFS, "":
		devices, err := NewFileDeviceStateStore(cfg.Devices.Dir, log)
		if err != nil {
			return nil, errors.Join(err, s.Close())
		}
		s.Devices = devices
		s.Pingers["devices"] = devices.(Pinger)
	default:
		return nil, errors.Join(fmt.Errorf("%w: %q", ErrUnknownDevicesBackend, cfg.Devices.Backend), s.Close())
	}

	return s, nil
}

// Close releases the database pool, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
