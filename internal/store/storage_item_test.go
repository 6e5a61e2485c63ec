package store

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/internal/validators"
	"github.com/MKhiriev/go-notes-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestItemStorage() (ItemStorage, ItemRepository) {
	repo := NewMemoryItemRepository()
	return NewItemStorage(repo, validators.NewItemValidator(), 10, logger.Nop()), repo
}

func TestItemStorage_Upsert(t *testing.T) {
	s, _ := newTestItemStorage()
	ctx := context.Background()

	item := testItem("n1", models.Note)
	require.NoError(t, s.Upsert(ctx, "owner-1", item, 5))
	require.NoError(t, s.Upsert(ctx, "owner-1", item, 6))

	items, err := collect(s.ItemsChangedAfter(ctx, "owner-1", 0))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(6), items[0].SyncVersion)
}

func TestItemStorage_RejectsInvalidWithoutMutation(t *testing.T) {
	oversized := testItem("big", models.Attachment)
	oversized.Length = models.MaxItemLength + 1

	oversizedCipher := testItem("big2", models.Note)
	oversizedCipher.Cipher = strings.Repeat("x", int(models.MaxItemLength)+1)
	oversizedCipher.Length = 1

	badAlg := testItem("alg", models.Note)
	badAlg.Algorithm = "rot13"

	tests := []struct {
		name    string
		items   []models.Item
		wantErr error
	}{
		{name: "length over 15 MiB", items: []models.Item{testItem("ok", models.Note), oversized}, wantErr: validators.ErrPayloadTooLarge},
		{name: "payload over 15 MiB", items: []models.Item{oversizedCipher}, wantErr: validators.ErrPayloadTooLarge},
		{name: "unsupported algorithm", items: []models.Item{badAlg}, wantErr: validators.ErrUnsupportedAlgorithm},
		{name: "unknown type", items: []models.Item{{ID: "x", Type: "trash", Algorithm: "default"}}, wantErr: validators.ErrUnknownItemType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, repo := newTestItemStorage()
			ctx := context.Background()

			accepted := 0
			err := s.UpsertBatch(ctx, "owner-1", tt.items, 1, func(models.Item) { accepted++ })
			require.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, accepted)

			count, err := repo.CountChangedAfter(ctx, "owner-1", 0)
			require.NoError(t, err)
			assert.Zero(t, count)
		})
	}
}

func TestItemStorage_ItemsByIDsUsesPageSize(t *testing.T) {
	s, _ := newTestItemStorage()
	ctx := context.Background()

	batch := make([]models.Item, 0, 25)
	idList := make([]string, 0, 25)
	for i := range 25 {
		id := string(rune('A' + i))
		batch = append(batch, testItem(id, models.Tag))
		idList = append(idList, id)
	}
	require.NoError(t, s.UpsertBatch(ctx, "owner-1", batch, 1, nil))

	items, err := collect(s.ItemsByIDs(ctx, "owner-1", models.Tag, idList, false))
	require.NoError(t, err)
	assert.Len(t, items, 25)

	require.NoError(t, s.DeleteAllForOwner(ctx, "owner-1"))
	count, err := s.CountChangedAfter(ctx, "owner-1", 0)
	require.NoError(t, err)
	assert.Zero(t, count)
}
