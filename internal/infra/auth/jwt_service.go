package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"dealerlot/config"
	"dealerlot/internal/domain/entity"
	"dealerlot/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret    []byte
	issuer    string
	audience  string
	expiresIn time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT == nil || cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret:    []byte(cfg.JWT.Secret),
		issuer:    cfg.JWT.Issuer,
		audience:  cfg.JWT.Audience,
		expiresIn: cfg.JWT.ExpiresIn,
	}, nil
}

// Issue creates a signed HS256 token carrying the dealer's identity claims.
func (s *jwtService) Issue(dealer *entity.Dealer) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.expiresIn)

	claims := &service.Claims{
		Username:    dealer.Username,
		CompanyName: dealer.CompanyName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(dealer.ID, 10),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign token")
	}

	return token, expiresAt, nil
}

// Validate verifies signature, signing method, issuer, audience and expiry.
// There is no clock-skew leeway; a token is rejected the moment it expires.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}

			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to validate token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	dealerID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject claim")
	}
	claims.DealerID = dealerID

	return claims, nil
}
