package service

import (
	"github.com/MKhiriev/go-notes-sync/internal/config"
	"github.com/MKhiriev/go-notes-sync/internal/hub"
	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/internal/store"
	"github.com/jonboulle/clockwork"
)

// Hub names, also used as metric labels.
const (
	CursorHubName = "v1"
	DeviceHubName = "v2"
)

type Services struct {
	AuthService       AuthService
	AppInfoService    AppInfoService
	AccountService    AccountService
	CursorSyncService CursorSyncService
	DeviceSyncService DeviceSyncService

	// CursorHub and DeviceHub carry the live notifications of each protocol
	// generation. Sessions subscribe to them directly.
	CursorHub *hub.Hub
	DeviceHub *hub.Hub

	// FetchLeases is swept by the lease worker.
	FetchLeases *FetchLeases
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, clock clockwork.Clock, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	cursorHub := hub.New(CursorHubName, cfg.Sync.NotificationBuffer, logger)
	deviceHub := hub.New(DeviceHubName, cfg.Sync.NotificationBuffer, logger)
	leases := NewFetchLeases(clock, cfg.Sync.FetchLeaseTimeout)
	tracker := NewDeviceTracker(storages.Devices, clock, logger)

	return &Services{
		AuthService:       NewAuthService(cfg.App, logger),
		AppInfoService:    appInfo,
		AccountService:    NewAccountService(storages.Items, storages.SyncStates, tracker, logger),
		CursorSyncService: NewCursorSyncService(storages.Items, storages.SyncStates, cursorHub, NewSingleFlight(), leases, clock, logger),
		DeviceSyncService: NewDeviceSyncService(storages.Items, storages.SyncStates, tracker, deviceHub, NewSingleFlight(), cfg.Sync, clock, logger),
		CursorHub:         cursorHub,
		DeviceHub:         deviceHub,
		FetchLeases:       leases,
	}, nil
}
