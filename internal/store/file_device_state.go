package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/models"
	"github.com/gofrs/flock"
	"github.com/natefinch/atomic"
)

// Files of one device directory. A missing queue file is an empty queue and
// the presence of the reset marker is the reset flag.
const (
	unsyncedFileName = "unsynced"
	pendingFileName  = "pending"
	resetFileName    = "reset"

	// lockFileName is flock'ed around every read-modify-write. Its
	// modification time records when the device was registered.
	lockFileName = ".lock"
)

const lockRetryDelay = 5 * time.Millisecond

// fileDeviceStateStore is the filesystem implementation of
// [DeviceStateStore]: one directory per account, one subdirectory per
// device. Queue files hold one "type:id" reference per line and are always
// replaced atomically, so a crash leaves either the old or the new queue.
type fileDeviceStateStore struct {
	root   string
	logger *logger.Logger
}

// NewFileDeviceStateStore creates root if needed and returns a
// [DeviceStateStore] persisting under it.
func NewFileDeviceStateStore(root string, logger *logger.Logger) (DeviceStateStore, error) {
	if err := os.MkdirAll(root, 0o700); err != nil {
		logger.Err(err).Str("func", "NewFileDeviceStateStore").Str("root", root).Msg("failed to create devices directory")
		return nil, fmt.Errorf("%w: %w", ErrWritingDeviceFile, err)
	}

	return &fileDeviceStateStore{
		root:   root,
		logger: logger,
	}, nil
}

func (s *fileDeviceStateStore) CreateDevice(ctx context.Context, key models.DeviceKey, state models.DeviceState) error {
	dir, err := s.deviceDir(key)
	if err != nil {
		return err
	}

	if err = os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingDeviceFile, err)
	}

	return s.withLock(ctx, dir, func() error {
		if err := writeDeviceState(dir, state); err != nil {
			return err
		}

		registeredAt := state.RegisteredAt
		if registeredAt.IsZero() {
			registeredAt = time.Now()
		}
		if err := os.Chtimes(filepath.Join(dir, lockFileName), registeredAt, registeredAt); err != nil {
			return fmt.Errorf("%w: %w", ErrWritingDeviceFile, err)
		}

		return nil
	})
}

func (s *fileDeviceStateStore) GetDevice(ctx context.Context, key models.DeviceKey) (models.DeviceState, error) {
	dir, err := s.existingDeviceDir(key)
	if err != nil {
		return models.DeviceState{}, err
	}

	var state models.DeviceState
	err = s.withLock(ctx, dir, func() error {
		state, err = readDeviceState(dir)
		return err
	})

	return state, err
}

func (s *fileDeviceStateStore) UpdateDevice(ctx context.Context, key models.DeviceKey, fn func(state *models.DeviceState) error) error {
	log := logger.FromContext(ctx)

	dir, err := s.existingDeviceDir(key)
	if err != nil {
		return err
	}

	return s.withLock(ctx, dir, func() error {
		state, err := readDeviceState(dir)
		if err != nil {
			log.Err(err).
				Str("func", "fileDeviceStateStore.UpdateDevice").
				Str("device_id", key.DeviceID).
				Msg("failed to read device state")
			return err
		}

		if err = fn(&state); err != nil {
			return err
		}

		if err = writeDeviceState(dir, state); err != nil {
			log.Err(err).
				Str("func", "fileDeviceStateStore.UpdateDevice").
				Str("device_id", key.DeviceID).
				Msg("failed to write device state")
			return err
		}

		return nil
	})
}

func (s *fileDeviceStateStore) DeleteDevice(ctx context.Context, key models.DeviceKey) error {
	dir, err := s.existingDeviceDir(key)
	if err != nil {
		return err
	}

	return s.withLock(ctx, dir, func() error {
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("%w: %w", ErrWritingDeviceFile, err)
		}
		return nil
	})
}

func (s *fileDeviceStateStore) ListDevices(ctx context.Context, ownerID string) ([]models.Device, error) {
	ownerDir, err := s.ownerDir(ownerID)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(ownerDir)
	if errors.Is(err, fs.ErrNotExist) {
		return []models.Device{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingDeviceFile, err)
	}

	devices := make([]models.Device, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		key := models.DeviceKey{OwnerID: ownerID, DeviceID: entry.Name()}
		state, err := s.GetDevice(ctx, key)
		if errors.Is(err, ErrDeviceNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}

		devices = append(devices, models.NewDevice(key.DeviceID, state))
	}

	return devices, nil
}

func (s *fileDeviceStateStore) DeleteOwner(_ context.Context, ownerID string) error {
	ownerDir, err := s.ownerDir(ownerID)
	if err != nil {
		return err
	}

	if err = os.RemoveAll(ownerDir); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingDeviceFile, err)
	}

	return nil
}

// Ping implements [Pinger] by checking that the root is still a directory.
func (s *fileDeviceStateStore) Ping(_ context.Context) error {
	info, err := os.Stat(s.root)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadingDeviceFile, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrReadingDeviceFile, s.root)
	}

	return nil
}

func (s *fileDeviceStateStore) ownerDir(ownerID string) (string, error) {
	if !isSafeSegment(ownerID) {
		return "", fmt.Errorf("%w: owner %q", ErrDeviceNotFound, ownerID)
	}

	return filepath.Join(s.root, ownerID), nil
}

func (s *fileDeviceStateStore) deviceDir(key models.DeviceKey) (string, error) {
	ownerDir, err := s.ownerDir(key.OwnerID)
	if err != nil {
		return "", err
	}
	if !isSafeSegment(key.DeviceID) {
		return "", fmt.Errorf("%w: device %q", ErrDeviceNotFound, key.DeviceID)
	}

	return filepath.Join(ownerDir, key.DeviceID), nil
}

func (s *fileDeviceStateStore) existingDeviceDir(key models.DeviceKey) (string, error) {
	dir, err := s.deviceDir(key)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrDeviceNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadingDeviceFile, err)
	}
	if !info.IsDir() {
		return "", ErrDeviceNotFound
	}

	return dir, nil
}

// withLock runs fn while holding the device lock file.
func (s *fileDeviceStateStore) withLock(ctx context.Context, dir string, fn func() error) error {
	fileLock := flock.New(filepath.Join(dir, lockFileName))

	locked, err := fileLock.TryLockContext(ctx, lockRetryDelay)
	// removed by another process after the existence check
	if errors.Is(err, fs.ErrNotExist) {
		return ErrDeviceNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLockingDevice, err)
	}
	if !locked {
		return ErrLockingDevice
	}
	defer fileLock.Unlock()

	return fn()
}

func readDeviceState(dir string) (models.DeviceState, error) {
	var state models.DeviceState

	info, err := os.Stat(filepath.Join(dir, lockFileName))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return state, fmt.Errorf("%w: %w", ErrReadingDeviceFile, err)
	}
	if info != nil {
		state.RegisteredAt = info.ModTime()
	}

	_, err = os.Stat(filepath.Join(dir, resetFileName))
	switch {
	case err == nil:
		state.ResetRequested = true
	case !errors.Is(err, fs.ErrNotExist):
		return state, fmt.Errorf("%w: %w", ErrReadingDeviceFile, err)
	}

	if state.Unsynced, err = readRefs(filepath.Join(dir, unsyncedFileName)); err != nil {
		return state, err
	}
	if state.Pending, err = readRefs(filepath.Join(dir, pendingFileName)); err != nil {
		return state, err
	}

	return state, nil
}

func writeDeviceState(dir string, state models.DeviceState) error {
	resetPath := filepath.Join(dir, resetFileName)
	if state.ResetRequested {
		if err := atomic.WriteFile(resetPath, strings.NewReader("")); err != nil {
			return fmt.Errorf("%w: %w", ErrWritingDeviceFile, err)
		}
	} else if err := removeIfExists(resetPath); err != nil {
		return err
	}

	if err := writeRefs(filepath.Join(dir, unsyncedFileName), state.Unsynced); err != nil {
		return err
	}

	return writeRefs(filepath.Join(dir, pendingFileName), state.Pending)
}

func readRefs(path string) ([]models.ItemRef, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingDeviceFile, err)
	}

	lines := strings.Split(string(data), "\n")
	refs := make([]models.ItemRef, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}

		ref, err := models.ParseItemRef(line)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrCorruptDeviceState, filepath.Base(path), err)
		}
		refs = append(refs, ref)
	}

	return refs, nil
}

// writeRefs replaces the queue file atomically. An empty queue removes it.
func writeRefs(path string, refs []models.ItemRef) error {
	if len(refs) == 0 {
		return removeIfExists(path)
	}

	var b strings.Builder
	for _, ref := range refs {
		b.WriteString(ref.String())
		b.WriteByte('\n')
	}

	if err := atomic.WriteFile(path, strings.NewReader(b.String())); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingDeviceFile, err)
	}

	return nil
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrWritingDeviceFile, err)
	}

	return nil
}

// isSafeSegment reports whether s names exactly one entry below its parent
// directory.
func isSafeSegment(s string) bool {
	return s != "" && filepath.IsLocal(s) && filepath.Base(s) == s && !strings.ContainsRune(s, '\\')
}
