package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/internal/store"
	"github.com/MKhiriev/go-notes-sync/internal/validators"
	"github.com/MKhiriev/go-notes-sync/models"
)

// accountService implements [AccountService].
type accountService struct {
	items      store.ItemStorage
	syncStates store.SyncStateRepository
	tracker    DeviceTracker
	validator  validators.Validator

	logger *logger.Logger
}

func NewAccountService(items store.ItemStorage, syncStates store.SyncStateRepository, tracker DeviceTracker, logger *logger.Logger) AccountService {
	logger.Debug().Msg("creating account service")

	return &accountService{
		items:      items,
		syncStates: syncStates,
		tracker:    tracker,
		validator:  validators.NewItemValidator(),
		logger:     logger,
	}
}

func (s *accountService) ListDevices(ctx context.Context, accountID string) ([]models.Device, error) {
	if err := s.validator.Validate(ctx, models.DeviceKey{OwnerID: accountID}, validators.FieldOwnerID); err != nil {
		return nil, err
	}

	return s.tracker.ListDevices(ctx, accountID)
}

// RegisterDevice registers deviceID, or resets it when already registered.
func (s *accountService) RegisterDevice(ctx context.Context, accountID, deviceID string) error {
	if err := s.validator.Validate(ctx, models.DeviceKey{OwnerID: accountID, DeviceID: deviceID}); err != nil {
		return err
	}

	return s.tracker.Register(ctx, accountID, deviceID)
}

func (s *accountService) UnregisterDevice(ctx context.Context, accountID, deviceID string) error {
	if err := s.validator.Validate(ctx, models.DeviceKey{OwnerID: accountID, DeviceID: deviceID}); err != nil {
		return err
	}

	return s.tracker.Unregister(ctx, accountID, deviceID)
}

func (s *accountService) SetVaultKey(ctx context.Context, accountID string, key models.VaultKey) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, key); err != nil {
		return err
	}

	if err := s.syncStates.SetVaultKey(ctx, accountID, key); err != nil {
		log.Err(err).
			Str("func", "accountService.SetVaultKey").
			Str("account_id", accountID).
			Msg("failed to store vault key")
		return fmt.Errorf("set vault key: %w", err)
	}

	return nil
}

// DeleteSyncData removes items first so that a device fetching concurrently
// finds nothing more to send.
func (s *accountService) DeleteSyncData(ctx context.Context, accountID string) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, models.DeviceKey{OwnerID: accountID}, validators.FieldOwnerID); err != nil {
		return err
	}

	if err := s.items.DeleteAllForOwner(ctx, accountID); err != nil {
		log.Err(err).Str("func", "accountService.DeleteSyncData").Str("account_id", accountID).Msg("failed to delete items")
		return fmt.Errorf("delete sync data: %w", err)
	}
	if err := s.tracker.DeleteOwner(ctx, accountID); err != nil {
		log.Err(err).Str("func", "accountService.DeleteSyncData").Str("account_id", accountID).Msg("failed to delete devices")
		return fmt.Errorf("delete sync data: %w", err)
	}
	if err := s.syncStates.DeleteSyncState(ctx, accountID); err != nil {
		log.Err(err).Str("func", "accountService.DeleteSyncData").Str("account_id", accountID).Msg("failed to delete sync state")
		return fmt.Errorf("delete sync data: %w", err)
	}

	log.Info().Str("account_id", accountID).Msg("sync data deleted")
	return nil
}
