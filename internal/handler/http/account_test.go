package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-notes-sync/internal/mock"
	"github.com/MKhiriev/go-notes-sync/internal/validators"
	"github.com/MKhiriev/go-notes-sync/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSetVaultKey_TableTest(t *testing.T) {
	key := models.VaultKey{Cipher: "c", IV: "iv", Salt: "s", Algorithm: "xcha-argon2i13-base64", Length: 1}

	tests := []struct {
		name       string
		body       string
		setup      func(accounts *mock.MockAccountService)
		wantStatus int
	}{
		{
			name: "stored",
			body: `{"cipher":"c","iv":"iv","salt":"s","alg":"xcha-argon2i13-base64","length":1}`,
			setup: func(accounts *mock.MockAccountService) {
				accounts.EXPECT().SetVaultKey(gomock.Any(), testAccount, key).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "unsupported algorithm",
			body: `{"cipher":"c","alg":"rot13"}`,
			setup: func(accounts *mock.MockAccountService) {
				accounts.EXPECT().SetVaultKey(gomock.Any(), testAccount, gomock.Any()).
					Return(validators.ErrUnsupportedAlgorithm)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid json",
			body:       `{"cipher":`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, accounts := newAccountRouter(t)
			if tt.setup != nil {
				tt.setup(accounts)
			}

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/api/sync/vault-key", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestDeleteSyncData_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "deleted", wantStatus: http.StatusNoContent},
		{
			name:       "storage failure",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"error deleting sync data"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, accounts := newAccountRouter(t)
			accounts.EXPECT().DeleteSyncData(gomock.Any(), testAccount).Return(tt.err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/sync/account", nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}
