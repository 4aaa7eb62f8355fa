// Package store defines the durable storage interface and implementations.
package store

import (
	"context"

	"github.com/marklabs/mark/internal/domain"
)

// Store is the persistent key-value contract for the three state entries
// the application keeps across restarts. Absent values are reported as
// ("" / nil, false, nil), never as errors.
type Store interface {
	// Credential (the 6-digit PIN)
	LoadCredential(ctx context.Context) (string, bool, error)
	SaveCredential(ctx context.Context, pin string) error

	// Profile collection (ordered)
	LoadProfiles(ctx context.Context) ([]domain.Profile, error)
	SaveProfiles(ctx context.Context, profiles []domain.Profile) error

	// Active profile reference
	LoadActiveProfileID(ctx context.Context) (string, bool, error)
	SaveActiveProfileID(ctx context.Context, id string) error

	// Lifecycle
	Close() error
}
