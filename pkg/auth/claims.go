package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessTokenClaims is the JWT payload issued by the storefront's auth
// service and verified here.
type AccessTokenClaims struct {
	UserID uuid.UUID `json:"uid"`
	Email  string    `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// AccessTokenPayload is the input for minting a token (used by dev tooling
// and tests; production tokens come from the external auth service).
type AccessTokenPayload struct {
	UserID uuid.UUID
	Email  string
	JTI    string
}
