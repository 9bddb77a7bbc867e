package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"dealerlot/internal/domain/entity"
)

// Claims defines the identity claims carried by a session token.
// DealerID is the scoping key consumed by the inventory layer.
type Claims struct {
	DealerID    int64  `json:"-"`
	Username    string `json:"name"`
	CompanyName string `json:"companyName"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating session tokens.
// Tokens are stateless: validity is determined purely by signature and expiry,
// there is no server-side revocation list.
type TokenService interface {
	// Issue creates a signed, time-bounded token for a dealer and returns it
	// together with its expiry time.
	Issue(dealer *entity.Dealer) (token string, expiresAt time.Time, err error)

	// Validate checks signature, issuer, audience and expiry of a token string.
	// Any failure mode collapses to a single error; no partial trust.
	Validate(token string) (*Claims, error)
}
