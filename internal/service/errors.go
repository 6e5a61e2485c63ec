package service

import "errors"

var (
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	// ErrSyncNotAuthorized is returned when a valid token does not grant the
	// sync scope.
	ErrSyncNotAuthorized = errors.New("sync is not authorized")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrSyncInProgress is returned when a generation 1 push or fetch is
	// already running on the same connection.
	ErrSyncInProgress = errors.New("sync already in progress on this connection")
	// ErrFetchInProgress is returned when a generation 2 fetch is already
	// running for the same device.
	ErrFetchInProgress = errors.New("fetch already in progress for this device")

	ErrVaultKeyRejected = errors.New("client rejected the vault key")
	ErrChunkRejected    = errors.New("client rejected an items chunk")
	ErrAckTimeout       = errors.New("client did not acknowledge in time")
)
