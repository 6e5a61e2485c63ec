package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/internal/mock"
	"github.com/MKhiriev/go-notes-sync/internal/service"
	"github.com/MKhiriev/go-notes-sync/internal/utils"
	"github.com/MKhiriev/go-notes-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ---- getTokenFromRequest ----

func TestGetTokenFromRequest_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		query     string
		wantToken string
		wantErr   error
	}{
		{name: "bearer header", header: "Bearer my-jwt", wantToken: "my-jwt"},
		{name: "query parameter", query: "?access_token=from-query", wantToken: "from-query"},
		{name: "header wins over query", header: "Bearer from-header", query: "?access_token=from-query", wantToken: "from-header"},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader},
		{name: "scheme only", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "nothing", wantErr: ErrNoToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/hubs/sync"+tt.query, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := getTokenFromRequest(req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

// ---- auth middleware ----

func TestAuth_Middleware_TableTest(t *testing.T) {
	token := models.Token{AccountID: testAccount, Scopes: []string{"profile"}}

	tests := []struct {
		name       string
		header     string
		setup      func(auth *mock.MockAuthService)
		wantStatus int
		wantBody   string
		wantNext   bool
	}{
		{
			name:       "no token",
			wantStatus: http.StatusUnauthorized,
			wantBody:   ErrNoToken.Error(),
		},
		{
			name:   "invalid token",
			header: "Bearer broken",
			setup: func(auth *mock.MockAuthService) {
				auth.EXPECT().ParseToken(gomock.Any(), "broken").Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   service.ErrTokenIsExpiredOrInvalid.Error(),
		},
		{
			name:   "missing scope",
			header: "Bearer good",
			setup: func(auth *mock.MockAuthService) {
				auth.EXPECT().ParseToken(gomock.Any(), "good").Return(token, nil)
				auth.EXPECT().Authorize(gomock.Any(), token).
					Return(models.AuthorizationDecision{Reason: "token lacks the sync scope"})
			},
			wantStatus: http.StatusForbidden,
			wantBody:   "token lacks the sync scope",
		},
		{
			name:   "authorized",
			header: "Bearer good",
			setup: func(auth *mock.MockAuthService) {
				auth.EXPECT().ParseToken(gomock.Any(), "good").Return(token, nil)
				auth.EXPECT().Authorize(gomock.Any(), token).Return(models.AuthorizationDecision{Authorized: true})
			},
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := mock.NewMockAuthService(gomock.NewController(t))
			if tt.setup != nil {
				tt.setup(auth)
			}
			h := &Handler{services: &service.Services{AuthService: auth}, logger: logger.Nop()}

			var gotAccount string
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotAccount, _ = utils.GetAccountIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/devices", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
			if tt.wantBody != "" {
				assert.Contains(t, rr.Body.String(), tt.wantBody)
			}
			if tt.wantNext {
				assert.Equal(t, testAccount, gotAccount)
			}
		})
	}
}
