package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-sync/internal/config"
	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/internal/utils"
	"github.com/MKhiriev/go-notes-sync/models"
)

// authService is the concrete implementation of AuthService.
// Accounts are managed by the identity service; the sync server only
// verifies the access tokens it issues and checks their scope.
type authService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// syncScope must be granted by a token to open a sync session.
	syncScope string

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with security
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		syncScope:     cfg.SyncScope,
		logger:        logger,
	}
}

// CreateToken issues a signed JWT for accountID with the given scopes.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, accountID string, scopes ...string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, accountID, scopes, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "authService.CreateToken").Msg("failed to sign token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "authService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// Authorize grants a sync session to tokens that name an account and carry
// the sync scope.
func (a *authService) Authorize(_ context.Context, token models.Token) models.AuthorizationDecision {
	switch {
	case token.AccountID == "":
		return models.AuthorizationDecision{Reason: "token has no subject"}
	case !token.HasScope(a.syncScope):
		return models.AuthorizationDecision{Reason: fmt.Sprintf("token lacks the %q scope", a.syncScope)}
	default:
		return models.AuthorizationDecision{Authorized: true}
	}
}
