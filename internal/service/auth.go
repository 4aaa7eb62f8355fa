package service

import (
	"context"

	"github.com/marklabs/mark/internal/auth"
)

// AuthState returns the current step of the authentication flow.
func (s *Service) AuthState() auth.State {
	return s.gate.State()
}

// IsAuthenticated reports whether the session is authenticated.
func (s *Service) IsAuthenticated() bool {
	return s.sessions.IsAuthenticated()
}

// SubmitPIN advances the setup or login flow with a 6-digit entry.
func (s *Service) SubmitPIN(pin string) error {
	return s.gate.SubmitPIN(pin)
}

// ConfirmPIN completes credential setup with the re-entered PIN.
func (s *Service) ConfirmPIN(ctx context.Context, pin string) error {
	return s.gate.ConfirmPIN(ctx, pin)
}

// SubmitSecondFactor completes login with the second-factor code.
func (s *Service) SubmitSecondFactor(code string) error {
	return s.gate.SubmitSecondFactor(code)
}
