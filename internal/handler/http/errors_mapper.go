package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes-sync/internal/service"
	"github.com/MKhiriev/go-notes-sync/internal/store"
	"github.com/MKhiriev/go-notes-sync/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrNoToken:                    http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrNoAccountID:                http.StatusUnauthorized,
	ErrInvalidJSON:                http.StatusBadRequest,

	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrSyncNotAuthorized:       http.StatusForbidden,
	service.ErrVersionIsNotSpecified:   http.StatusInternalServerError,
	service.ErrSyncInProgress:          http.StatusConflict,
	service.ErrFetchInProgress:         http.StatusConflict,

	validators.ErrPayloadTooLarge:      http.StatusRequestEntityTooLarge,
	validators.ErrUnsupportedAlgorithm: http.StatusBadRequest,
	validators.ErrUnknownItemType:      http.StatusBadRequest,
	validators.ErrEmptyItemID:          http.StatusBadRequest,
	validators.ErrInvalidDeviceID:      http.StatusBadRequest,
	validators.ErrInvalidOwnerID:       http.StatusBadRequest,
	validators.ErrNegativeLength:       http.StatusBadRequest,

	store.ErrDeviceNotFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
