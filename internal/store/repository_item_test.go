package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"iter"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newDBFromSQL wraps a sqlmock connection into a store DB.
func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:                 db,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}
}

func newTestItemRepo(t *testing.T) (ItemRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewItemRepository(newDBFromSQL(db), logger.Nop()), mock
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// mustQuery turns a builder result into a sqlmock expectation pattern.
func mustQuery(query string, _ []any, err error) string {
	if err != nil {
		panic(err)
	}
	return regexp.QuoteMeta(query)
}

func testItem(id string, itemType models.ItemType) models.Item {
	return models.Item{
		ID:            id,
		Type:          itemType,
		Cipher:        "cipher-" + id,
		IV:            "iv",
		Salt:          "salt",
		Algorithm:     "xcha-argon2i13-7",
		Length:        int64(len("cipher-" + id)),
		ClientVersion: 5,
	}
}

func upsertArgs(owner string, item models.Item, syncVersion int64) []driver.Value {
	return []driver.Value{
		owner, item.ID, item.Cipher, item.IV, item.Salt, item.Algorithm,
		item.Length, syncVersion, int64(item.ClientVersion),
	}
}

func itemRows(items ...models.Item) *sqlmock.Rows {
	rows := sqlmock.NewRows(itemColumns)
	for _, item := range items {
		rows.AddRow(item.ID, item.Cipher, item.IV, item.Salt, item.Algorithm, item.Length, item.SyncVersion, item.ClientVersion)
	}
	return rows
}

func collect(seq iter.Seq2[models.Item, error]) ([]models.Item, error) {
	var items []models.Item
	for item, err := range seq {
		if err != nil {
			return items, err
		}
		items = append(items, item)
	}
	return items, nil
}

// ── UpsertItems ──

func TestUpsertItems_PreparesOncePerType(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	n1, n2, t1 := testItem("n1", models.Note), testItem("n2", models.Note), testItem("t1", models.Tag)
	noteQuery := mustQuery(buildUpsertItemQuery("owner-1", n1, 100))
	tagQuery := mustQuery(buildUpsertItemQuery("owner-1", t1, 100))

	mock.ExpectBegin()
	notes := mock.ExpectPrepare(noteQuery)
	notes.ExpectExec().WithArgs(upsertArgs("owner-1", n1, 100)...).WillReturnResult(sqlmock.NewResult(0, 1))
	notes.ExpectExec().WithArgs(upsertArgs("owner-1", n2, 100)...).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectPrepare(tagQuery).
		ExpectExec().WithArgs(upsertArgs("owner-1", t1, 100)...).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	var accepted []models.Item
	err := repo.UpsertItems(testContext(), "owner-1", []models.Item{n1, n2, t1}, 100, func(item models.Item) {
		accepted = append(accepted, item)
	})
	require.NoError(t, err)

	require.Len(t, accepted, 3)
	assert.Equal(t, []string{"n1", "n2", "t1"}, []string{accepted[0].ID, accepted[1].ID, accepted[2].ID})
	for _, item := range accepted {
		assert.Equal(t, int64(100), item.SyncVersion)
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertItems_EmptyBatch(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	require.NoError(t, repo.UpsertItems(testContext(), "owner-1", nil, 1, nil))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertItems_Errors(t *testing.T) {
	n1 := testItem("n1", models.Note)
	noteQuery := mustQuery(buildUpsertItemQuery("owner-1", n1, 1))

	tests := []struct {
		name    string
		items   []models.Item
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name:  "begin fails",
			items: []models.Item{n1},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(errors.New("conn refused"))
			},
			wantErr: ErrBeginningTransaction,
		},
		{
			name:  "unknown type rolls back",
			items: []models.Item{{ID: "x", Type: "trash"}},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			wantErr: ErrUnknownItemType,
		},
		{
			name:  "prepare fails",
			items: []models.Item{n1},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectPrepare(noteQuery).WillReturnError(errors.New("syntax"))
				mock.ExpectRollback()
			},
			wantErr: ErrPreparingStatement,
		},
		{
			name:  "exec fails",
			items: []models.Item{n1},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectPrepare(noteQuery).ExpectExec().WillReturnError(errors.New("disk full"))
				mock.ExpectRollback()
			},
			wantErr: ErrExecutingStatement,
		},
		{
			name:  "no rows affected",
			items: []models.Item{n1},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectPrepare(noteQuery).ExpectExec().WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
			},
			wantErr: ErrItemNotSaved,
		},
		{
			name:  "commit fails",
			items: []models.Item{n1},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectPrepare(noteQuery).ExpectExec().WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))
			},
			wantErr: ErrCommitingTransaction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestItemRepo(t)
			tt.setup(mock)

			err := repo.UpsertItems(testContext(), "owner-1", tt.items, 1, nil)
			require.ErrorIs(t, err, tt.wantErr)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

// ── ItemsChangedAfter ──

func TestItemsChangedAfter_PagesEveryTypeInFetchOrder(t *testing.T) {
	repo, mock := newTestItemRepo(t)
	const pageSize = 2

	n1 := testItem("n1", models.Note)
	n1.SyncVersion = 11
	n2 := testItem("n2", models.Note)
	n2.SyncVersion = 12
	n3 := testItem("n3", models.Note)
	n3.SyncVersion = 12
	r1 := testItem("r1", models.Relation)
	r1.SyncVersion = 10

	for _, itemType := range models.ItemTypes {
		first := mustQuery(buildChangedAfterQuery("owner-1", itemType, 9, nil, pageSize))
		switch itemType {
		case models.Note:
			mock.ExpectQuery(first).WithArgs("owner-1", int64(9)).WillReturnRows(itemRows(n1, n2))
			next := mustQuery(buildChangedAfterQuery("owner-1", itemType, 9, &n2, pageSize))
			mock.ExpectQuery(next).WithArgs("owner-1", int64(12), "n2").WillReturnRows(itemRows(n3))
		case models.Relation:
			mock.ExpectQuery(first).WithArgs("owner-1", int64(9)).WillReturnRows(itemRows(r1))
		default:
			mock.ExpectQuery(first).WithArgs("owner-1", int64(9)).WillReturnRows(itemRows())
		}
	}

	items, err := collect(repo.ItemsChangedAfter(testContext(), "owner-1", 9, pageSize))
	require.NoError(t, err)

	require.Len(t, items, 4)
	assert.Equal(t, []string{"n1", "n2", "n3", "r1"}, []string{items[0].ID, items[1].ID, items[2].ID, items[3].ID})
	assert.Equal(t, models.Note, items[0].Type)
	assert.Equal(t, models.Relation, items[3].Type)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestItemsChangedAfter_StopsWhenConsumerStops(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	s1 := testItem("s1", models.SettingItem)
	s2 := testItem("s2", models.SettingItem)
	first := mustQuery(buildChangedAfterQuery("owner-1", models.SettingItem, 0, nil, 100))
	mock.ExpectQuery(first).WillReturnRows(itemRows(s1, s2))

	for item, err := range repo.ItemsChangedAfter(testContext(), "owner-1", 0, 0) {
		require.NoError(t, err)
		assert.Equal(t, "s1", item.ID)
		break
	}

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestItemsChangedAfter_QueryError(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	first := mustQuery(buildChangedAfterQuery("owner-1", models.SettingItem, 0, nil, 100))
	mock.ExpectQuery(first).WillReturnError(errors.New("connection reset"))

	items, err := collect(repo.ItemsChangedAfter(testContext(), "owner-1", 0, 100))
	require.ErrorIs(t, err, ErrExecutingQuery)
	assert.Empty(t, items)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestItemsChangedAfter_ScanError(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	first := mustQuery(buildChangedAfterQuery("owner-1", models.SettingItem, 0, nil, 100))
	mock.ExpectQuery(first).WillReturnRows(
		sqlmock.NewRows(itemColumns).AddRow("s1", "c", "iv", "salt", "default", "not-a-number", 1, 0),
	)

	_, err := collect(repo.ItemsChangedAfter(testContext(), "owner-1", 0, 100))
	require.ErrorIs(t, err, ErrScanningRow)
}

// ── CountChangedAfter ──

func TestCountChangedAfter(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	for i, itemType := range models.ItemTypes {
		query := mustQuery(buildCountChangedAfterQuery("owner-1", itemType, 5))
		mock.ExpectQuery(query).WithArgs("owner-1", int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(i))
	}

	total, err := repo.CountChangedAfter(testContext(), "owner-1", 5)
	require.NoError(t, err)
	assert.Equal(t, 55, total)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountChangedAfter_Error(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	query := mustQuery(buildCountChangedAfterQuery("owner-1", models.SettingItem, 5))
	mock.ExpectQuery(query).WillReturnError(sql.ErrConnDone)

	_, err := repo.CountChangedAfter(testContext(), "owner-1", 5)
	require.ErrorIs(t, err, ErrExecutingQuery)
}

// ── ItemsByIDs ──

func TestItemsByIDs_BatchesIDs(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	a, c := testItem("a", models.Note), testItem("c", models.Note)
	mock.ExpectQuery(mustQuery(buildItemsByIDsQuery("owner-1", models.Note, []string{"a", "b"}))).
		WithArgs("owner-1", "a", "b").
		WillReturnRows(itemRows(a))
	mock.ExpectQuery(mustQuery(buildItemsByIDsQuery("owner-1", models.Note, []string{"c"}))).
		WithArgs("owner-1", "c").
		WillReturnRows(itemRows(c))

	items, err := collect(repo.ItemsByIDs(testContext(), "owner-1", models.Note, []string{"a", "b", "c"}, false, 2))
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].ID)
	assert.Equal(t, "c", items[1].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestItemsByIDs_NoIDs(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	items, err := collect(repo.ItemsByIDs(testContext(), "owner-1", models.Note, nil, false, 2))
	require.NoError(t, err)
	assert.Empty(t, items)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestItemsByIDs_ResetAllUsesKeysetPages(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	a, b, c := testItem("a", models.Tag), testItem("b", models.Tag), testItem("c", models.Tag)
	mock.ExpectQuery(mustQuery(buildItemsPageQuery("owner-1", models.Tag, "", 2))).
		WithArgs("owner-1").
		WillReturnRows(itemRows(a, b))
	mock.ExpectQuery(mustQuery(buildItemsPageQuery("owner-1", models.Tag, "b", 2))).
		WithArgs("owner-1", "b").
		WillReturnRows(itemRows(c))

	items, err := collect(repo.ItemsByIDs(testContext(), "owner-1", models.Tag, []string{"ignored"}, true, 2))
	require.NoError(t, err)

	require.Len(t, items, 3)
	assert.Equal(t, "c", items[2].ID)
	assert.Equal(t, models.Tag, items[2].Type)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestItemsByIDs_UnknownType(t *testing.T) {
	repo, _ := newTestItemRepo(t)

	_, err := collect(repo.ItemsByIDs(testContext(), "owner-1", "trash", []string{"a"}, false, 2))
	require.ErrorIs(t, err, ErrUnknownItemType)
}

// ── DeleteAllForOwner ──

func TestDeleteAllForOwner(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectBegin()
	for _, itemType := range models.ItemTypes {
		mock.ExpectExec(mustQuery(buildDeleteOwnerItemsQuery("owner-1", itemType))).
			WithArgs("owner-1").
			WillReturnResult(sqlmock.NewResult(0, 3))
	}
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteAllForOwner(testContext(), "owner-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAllForOwner_ExecErrorRollsBack(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(mustQuery(buildDeleteOwnerItemsQuery("owner-1", models.SettingItem))).
		WillReturnError(errors.New("lock timeout"))
	mock.ExpectRollback()

	err := repo.DeleteAllForOwner(testContext(), "owner-1")
	require.ErrorIs(t, err, ErrExecutingStatement)
	require.NoError(t, mock.ExpectationsWereMet())
}
