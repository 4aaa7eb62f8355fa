// Package session holds the single source of truth for authentication and
// profile state, backed by durable storage so state survives restarts.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/marklabs/mark/internal/domain"
	"github.com/marklabs/mark/internal/store"
)

// ErrProfileNotFound is returned when switching to a profile id that is
// not in the collection.
var ErrProfileNotFound = errors.New("profile not found")

// PersistenceError reports a failed write to durable storage. When it is
// returned, in-memory state is unchanged for that call.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failed (%s): %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Store owns the credential, the authentication flag, the profile
// collection, and the active-profile reference. It is constructed
// explicitly and passed to whoever needs it; there is no ambient global.
// A single mutex guards every operation: addProfile's cap-then-append and
// check-then-set-active sequences are not safe under concurrent callers
// otherwise.
type Store struct {
	mu sync.Mutex

	persist store.Store

	pin           string
	hasPIN        bool
	authenticated bool
	profiles      []domain.Profile
	activeID      string
}

// New loads persisted state from durable storage and returns a populated
// session store. Missing entries default to absent/empty.
func New(ctx context.Context, persist store.Store) (*Store, error) {
	pin, hasPIN, err := persist.LoadCredential(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load credential: %w", err)
	}
	profiles, err := persist.LoadProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}
	activeID, _, err := persist.LoadActiveProfileID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load active profile: %w", err)
	}

	return &Store{
		persist:  persist,
		pin:      pin,
		hasPIN:   hasPIN,
		profiles: profiles,
		activeID: activeID,
	}, nil
}

// Credential returns the current PIN, reporting absence via the bool.
func (s *Store) Credential() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pin, s.hasPIN
}

// IsAuthenticated reports whether the session has been authenticated.
// The flag never transitions back to false within a running process;
// there is no logout operation.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// SetCredential persists a new PIN and marks the session authenticated:
// credential creation implies first login. Format validation (6 decimal
// digits) is the caller's responsibility; the authentication gate checks
// it before calling here.
func (s *Store) SetCredential(ctx context.Context, newPIN string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist.SaveCredential(ctx, newPIN); err != nil {
		return &PersistenceError{Op: "save credential", Err: err}
	}

	s.pin = newPIN
	s.hasPIN = true
	s.authenticated = true
	return nil
}

// Authenticate flips the session to authenticated iff a credential exists
// and candidate matches it. On failure nothing changes. Repeated calls
// with the correct PIN keep returning true.
func (s *Store) Authenticate(candidate string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasPIN || candidate != s.pin {
		return false
	}
	s.authenticated = true
	return true
}

// AddProfile appends a new profile with a fresh id. At the cap of
// domain.MaxProfiles the call is a silent no-op. The first profile ever
// added becomes active; later adds never reassign the active reference.
func (s *Store) AddProfile(ctx context.Context, name, niche, objective string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.profiles) >= domain.MaxProfiles {
		return nil
	}

	profile := domain.Profile{
		ID:        uuid.NewString(),
		Name:      name,
		Niche:     niche,
		Objective: objective,
	}

	updated := make([]domain.Profile, 0, len(s.profiles)+1)
	updated = append(updated, s.profiles...)
	updated = append(updated, profile)

	if err := s.persist.SaveProfiles(ctx, updated); err != nil {
		return &PersistenceError{Op: "save profiles", Err: err}
	}
	s.profiles = updated

	if s.activeID == "" {
		if err := s.persist.SaveActiveProfileID(ctx, profile.ID); err != nil {
			return &PersistenceError{Op: "save active profile", Err: err}
		}
		s.activeID = profile.ID
	}
	return nil
}

// SwitchActiveProfile points the active reference at the given profile.
// Unknown ids are rejected with ErrProfileNotFound so the reference can
// never dangle.
func (s *Store) SwitchActiveProfile(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for _, p := range s.profiles {
		if p.ID == id {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, id)
	}

	if err := s.persist.SaveActiveProfileID(ctx, id); err != nil {
		return &PersistenceError{Op: "save active profile", Err: err}
	}
	s.activeID = id
	return nil
}

// ActiveProfile returns a copy of the active profile, or nil when no
// profile is active.
func (s *Store) ActiveProfile() *domain.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.profiles {
		if p.ID == s.activeID {
			copied := p
			return &copied
		}
	}
	return nil
}

// Profiles returns a copy of the profile collection in insertion order.
func (s *Store) Profiles() []domain.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Profile, len(s.profiles))
	copy(out, s.profiles)
	return out
}
