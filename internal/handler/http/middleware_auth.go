package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/internal/utils"
	"github.com/rs/zerolog"
)

// accessTokenParam carries the token of websocket clients that cannot set
// headers on the upgrade request.
const accessTokenParam = "access_token"

// auth is an HTTP middleware that enforces JWT-based authentication and the
// sync scope.
//
// The token is taken from the "Authorization: Bearer" header, or from the
// access_token query parameter when the header is absent. A missing or
// invalid token is answered with 401, a token without the sync scope with
// 403; both carry the reason in the body. On success the account id is
// stored in the request context under [utils.AccountIDCtxKey] and added to
// the request logger.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromRequest(r)
		if err != nil {
			log.Err(err).Str("func", "Handler.auth").Send()
			utils.WriteError(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Str("func", "Handler.auth").Msg("error occurred during parsing token")
			utils.WriteError(w, err.Error(), statusFromError(err))
			return
		}

		decision := h.services.AuthService.Authorize(ctx, token)
		if !decision.Authorized {
			log.Warn().
				Str("func", "Handler.auth").
				Str("account_id", token.AccountID).
				Str("reason", decision.Reason).
				Msg("sync not authorized")
			utils.WriteError(w, decision.Reason, http.StatusForbidden)
			return
		}

		l := logger.FromContext(ctx).GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("account_id", token.AccountID)
		})
		ctx = l.WithContext(context.WithValue(ctx, utils.AccountIDCtxKey, token.AccountID))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromRequest returns the bearer token of the "Authorization" header
// or, without a header, the access_token query parameter.
func getTokenFromRequest(r *http.Request) (string, error) {
	if header := r.Header.Get("Authorization"); header != "" {
		token, err := utils.ParseBearerToken(header)
		if err != nil {
			return "", ErrInvalidAuthorizationHeader
		}
		return token, nil
	}

	if token := r.URL.Query().Get(accessTokenParam); token != "" {
		return token, nil
	}

	return "", ErrNoToken
}
