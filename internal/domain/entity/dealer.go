// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Dealer is the sole principal type in the system. One dealer owns one inventory;
// every car query is scoped to the dealer's id.
type Dealer struct {
	ID           int64     // Auto-generated identifier, also the JWT subject.
	Username     string    // Unique login name.
	PasswordHash string    // bcrypt hash; the plaintext is never stored or logged.
	CompanyName  string    // Display name of the dealership.
	CreatedAt    time.Time // Timestamp of registration. Dealers are immutable afterwards.
}
