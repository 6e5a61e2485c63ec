package store

import (
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSyncStateRepo(t *testing.T) (SyncStateRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewSyncStateRepository(newDBFromSQL(db), logger.Nop()), mock
}

func TestGetSyncState(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		want    models.SyncState
		wantErr error
	}{
		{
			name: "missing record is zero state",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(getSyncState)).
					WithArgs("owner-1").
					WillReturnRows(sqlmock.NewRows([]string{"last_synced", "vault_key"}))
			},
			want: models.SyncState{OwnerID: "owner-1"},
		},
		{
			name: "without vault key",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(getSyncState)).
					WithArgs("owner-1").
					WillReturnRows(sqlmock.NewRows([]string{"last_synced", "vault_key"}).AddRow(int64(42), nil))
			},
			want: models.SyncState{OwnerID: "owner-1", LastSynced: 42},
		},
		{
			name: "with vault key",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(getSyncState)).
					WithArgs("owner-1").
					WillReturnRows(sqlmock.NewRows([]string{"last_synced", "vault_key"}).
						AddRow(int64(7), []byte(`{"cipher":"k","iv":"i","salt":"s","alg":"xcha-argon2i13-7","length":1}`)))
			},
			want: models.SyncState{
				OwnerID:    "owner-1",
				LastSynced: 7,
				VaultKey:   &models.VaultKey{Cipher: "k", IV: "i", Salt: "s", Algorithm: "xcha-argon2i13-7", Length: 1},
			},
		},
		{
			name: "corrupt vault key",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(getSyncState)).
					WillReturnRows(sqlmock.NewRows([]string{"last_synced", "vault_key"}).AddRow(int64(7), []byte(`{`)))
			},
			wantErr: ErrScanningRow,
		},
		{
			name: "query error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(getSyncState)).WillReturnError(errors.New("timeout"))
			},
			wantErr: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestSyncStateRepo(t)
			tt.setup(mock)

			got, err := repo.GetSyncState(testContext(), "owner-1")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAdvanceLastSynced(t *testing.T) {
	repo, mock := newTestSyncStateRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(advanceLastSynced)).
		WithArgs("owner-1", int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"last_synced"}).AddRow(int64(9)))

	got, err := repo.AdvanceLastSynced(testContext(), "owner-1", 5)
	require.NoError(t, err)
	assert.Equal(t, int64(9), got, "stored cursor is never lowered")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdvanceLastSynced_Error(t *testing.T) {
	repo, mock := newTestSyncStateRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(advanceLastSynced)).WillReturnError(errors.New("boom"))

	_, err := repo.AdvanceLastSynced(testContext(), "owner-1", 5)
	require.ErrorIs(t, err, ErrExecutingQuery)
}

func TestSetVaultKey(t *testing.T) {
	repo, mock := newTestSyncStateRepo(t)

	key := models.VaultKey{Cipher: "k", IV: "i", Salt: "s", Algorithm: "default", Length: 3}
	mock.ExpectExec(regexp.QuoteMeta(setVaultKey)).
		WithArgs("owner-1", []byte(`{"cipher":"k","iv":"i","salt":"s","alg":"default","length":3}`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SetVaultKey(testContext(), "owner-1", key))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteSyncState(t *testing.T) {
	repo, mock := newTestSyncStateRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(deleteSyncState)).
		WithArgs("owner-1").
		WillReturnError(errors.New("boom"))

	err := repo.DeleteSyncState(testContext(), "owner-1")
	require.ErrorIs(t, err, ErrExecutingStatement)
}
