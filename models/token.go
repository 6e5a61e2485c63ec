package models

import (
	"slices"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a parsed or freshly issued JWT access token.
//
// AccountID is a cached copy of the "sub" claim.
type Token struct {
	*jwt.Token `json:"-"`

	SignedString string `json:"-"`

	AccountID string `json:"-"`

	// Scopes are the space separated values of the "scope" claim.
	Scopes []string `json:"-"`
}

// HasScope reports whether the token grants scope.
func (t Token) HasScope(scope string) bool {
	return slices.Contains(t.Scopes, scope)
}

// String returns the compact serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}

// Claims is the claim set of access tokens accepted by the sync server.
type Claims struct {
	jwt.RegisteredClaims

	Scope string `json:"scope,omitempty"`
}

// ScopeList splits the scope claim.
func (c Claims) ScopeList() []string {
	return strings.Fields(c.Scope)
}

// AuthorizationDecision is the outcome of checking whether a caller may sync.
type AuthorizationDecision struct {
	Authorized bool
	Reason     string
}
