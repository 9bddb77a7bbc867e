// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"dealerlot/internal/domain/entity"
)

// ErrDealerNotFound is a domain-specific error returned when a dealer is not found.
var ErrDealerNotFound = errors.New("dealer not found")

// DealerRepository defines the standard operations for dealer persistence.
// The application layer depends on this interface, not the concrete implementation.
type DealerRepository interface {
	// FindByUsername retrieves a single dealer by their unique username.
	FindByUsername(ctx context.Context, username string) (*entity.Dealer, error)

	// Create persists a new dealer entity to the storage.
	Create(ctx context.Context, dealer *entity.Dealer) error
}
