// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"dealerlot/internal/domain/entity"
)

// RegisterInput defines the data required to register a new dealer.
type RegisterInput struct {
	Username    string
	Password    string
	CompanyName string
}

// LoginInput defines the data required for a dealer to log in.
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput returns the issued session token after a successful login.
type LoginOutput struct {
	Token       string
	CompanyName string
	ExpiresAt   time.Time
}

// AuthUsecase defines the interface for dealer authentication operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a new dealer account. No token is issued on registration;
	// login is a separate step.
	Register(ctx context.Context, input *RegisterInput) (*entity.Dealer, error)

	// Login verifies credentials and issues a session token. Unknown usernames and
	// wrong passwords fail identically.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
