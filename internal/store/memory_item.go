package store

import (
	"cmp"
	"context"
	"iter"
	"maps"
	"slices"
	"sync"

	"github.com/MKhiriev/go-notes-sync/models"
)

// memoryItemRepository is an in-process [ItemRepository] selected with the
// "memory" DSN. It keeps the same ordering guarantees as the SQL repository
// and is used for single-node development and tests.
type memoryItemRepository struct {
	mu    sync.RWMutex
	items map[string]map[models.ItemType]map[string]models.Item
}

// NewMemoryItemRepository returns an empty in-memory [ItemRepository].
func NewMemoryItemRepository() ItemRepository {
	return &memoryItemRepository{
		items: make(map[string]map[models.ItemType]map[string]models.Item),
	}
}

func (m *memoryItemRepository) UpsertItems(ctx context.Context, ownerID string, items []models.Item, syncVersion int64, onAccepted func(models.Item)) error {
	for _, item := range items {
		if _, err := tableFor(item.Type); err != nil {
			return err
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	byType, ok := m.items[ownerID]
	if !ok {
		byType = make(map[models.ItemType]map[string]models.Item)
		m.items[ownerID] = byType
	}

	for _, item := range items {
		table, ok := byType[item.Type]
		if !ok {
			table = make(map[string]models.Item)
			byType[item.Type] = table
		}

		item.OwnerID = ownerID
		item.SyncVersion = syncVersion
		table[item.ID] = item

		if onAccepted != nil {
			onAccepted(item)
		}
	}

	return nil
}

// snapshot copies the items of one type so iteration runs without the lock.
func (m *memoryItemRepository) snapshot(ownerID string, itemType models.ItemType) []models.Item {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Collect(maps.Values(m.items[ownerID][itemType]))
}

func (m *memoryItemRepository) ItemsChangedAfter(ctx context.Context, ownerID string, cursor int64, _ int) iter.Seq2[models.Item, error] {
	return func(yield func(models.Item, error) bool) {
		for _, itemType := range models.ItemTypes {
			items := slices.DeleteFunc(m.snapshot(ownerID, itemType), func(item models.Item) bool {
				return item.SyncVersion <= cursor
			})
			slices.SortFunc(items, func(a, b models.Item) int {
				return cmp.Or(cmp.Compare(a.SyncVersion, b.SyncVersion), cmp.Compare(a.ID, b.ID))
			})

			for _, item := range items {
				if err := ctx.Err(); err != nil {
					yield(models.Item{}, err)
					return
				}
				if !yield(item, nil) {
					return
				}
			}
		}
	}
}

func (m *memoryItemRepository) CountChangedAfter(_ context.Context, ownerID string, cursor int64) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := 0
	for _, table := range m.items[ownerID] {
		for _, item := range table {
			if item.SyncVersion > cursor {
				total++
			}
		}
	}

	return total, nil
}

func (m *memoryItemRepository) ItemsByIDs(ctx context.Context, ownerID string, itemType models.ItemType, ids []string, resetAll bool, _ int) iter.Seq2[models.Item, error] {
	return func(yield func(models.Item, error) bool) {
		if _, err := tableFor(itemType); err != nil {
			yield(models.Item{}, err)
			return
		}

		items := m.snapshot(ownerID, itemType)
		if !resetAll {
			wanted := make(map[string]struct{}, len(ids))
			for _, id := range ids {
				wanted[id] = struct{}{}
			}
			items = slices.DeleteFunc(items, func(item models.Item) bool {
				_, ok := wanted[item.ID]
				return !ok
			})
		}
		slices.SortFunc(items, func(a, b models.Item) int { return cmp.Compare(a.ID, b.ID) })

		for _, item := range items {
			if err := ctx.Err(); err != nil {
				yield(models.Item{}, err)
				return
			}
			if !yield(item, nil) {
				return
			}
		}
	}
}

func (m *memoryItemRepository) DeleteAllForOwner(_ context.Context, ownerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.items, ownerID)
	return nil
}

// memorySyncStateRepository is the in-process [SyncStateRepository] paired
// with [memoryItemRepository].
type memorySyncStateRepository struct {
	mu     sync.Mutex
	states map[string]models.SyncState
}

// NewMemorySyncStateRepository returns an empty in-memory
// [SyncStateRepository].
func NewMemorySyncStateRepository() SyncStateRepository {
	return &memorySyncStateRepository{
		states: make(map[string]models.SyncState),
	}
}

func (m *memorySyncStateRepository) GetSyncState(_ context.Context, ownerID string) (models.SyncState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state := m.states[ownerID]
	state.OwnerID = ownerID
	if state.VaultKey != nil {
		key := *state.VaultKey
		state.VaultKey = &key
	}

	return state, nil
}

func (m *memorySyncStateRepository) AdvanceLastSynced(_ context.Context, ownerID string, cursor int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state := m.states[ownerID]
	state.LastSynced = max(state.LastSynced, cursor)
	m.states[ownerID] = state

	return state.LastSynced, nil
}

func (m *memorySyncStateRepository) SetVaultKey(_ context.Context, ownerID string, key models.VaultKey) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	state := m.states[ownerID]
	state.VaultKey = &key
	m.states[ownerID] = state

	return nil
}

func (m *memorySyncStateRepository) DeleteSyncState(_ context.Context, ownerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.states, ownerID)
	return nil
}
