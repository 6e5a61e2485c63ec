// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when looking for the
// access token. Callers can match against them with [errors.Is].
var (
	// ErrNoToken is returned when the request carries neither an
	// "Authorization" header nor an access_token query parameter.
	ErrNoToken = errors.New("no access token given")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not a bearer token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrNoAccountID is returned by handlers behind the auth middleware when
	// the request context holds no account id.
	ErrNoAccountID = errors.New("no account id was given")

	// ErrInvalidJSON is returned for request bodies that cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")
)
