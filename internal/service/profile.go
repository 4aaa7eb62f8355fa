package service

import (
	"context"

	"github.com/marklabs/mark/internal/domain"
)

// AddProfile creates a new marketing profile. At the cap the call is a
// silent no-op, matching the registry contract.
func (s *Service) AddProfile(ctx context.Context, name, niche, objective string) error {
	return s.sessions.AddProfile(ctx, name, niche, objective)
}

// Profiles returns the profile collection in insertion order.
func (s *Service) Profiles() []domain.Profile {
	return s.sessions.Profiles()
}

// SwitchProfile makes the given profile active.
func (s *Service) SwitchProfile(ctx context.Context, id string) error {
	return s.sessions.SwitchActiveProfile(ctx, id)
}

// ActiveProfile returns the active profile, or nil when none is set.
func (s *Service) ActiveProfile() *domain.Profile {
	return s.sessions.ActiveProfile()
}
