// Package auth drives the one-time credential-setup flow and the repeat
// login flow, including the fixed second factor.
package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/marklabs/mark/internal/session"
)

// State is a step of the authentication flow.
type State string

const (
	// Setup path, entered when no credential exists yet.
	StateSettingPIN    State = "SETTING_PIN"
	StateConfirmingPIN State = "CONFIRMING_PIN"

	// Login path, entered when a credential already exists.
	StateAwaitingPIN          State = "AWAITING_PIN"
	StateAwaitingSecondFactor State = "AWAITING_SECOND_FACTOR"

	// Terminal.
	StateAuthenticated State = "AUTHENTICATED"
)

// secondFactorCode is the fixed second-factor value. It is a deliberate
// simplification carried over from the original product, not a security
// boundary; a real deployment needs a one-time-code mechanism here.
const secondFactorCode = "123456"

var (
	// ErrInvalidPIN rejects input that is not exactly 6 decimal digits.
	ErrInvalidPIN = errors.New("pin must be 6 digits")
	// ErrPINMismatch signals a failed setup confirmation; the flow
	// restarts from StateSettingPIN.
	ErrPINMismatch = errors.New("pins do not match")
	// ErrInvalidSecondFactor signals a wrong second-factor code; the flow
	// stays in StateAwaitingSecondFactor.
	ErrInvalidSecondFactor = errors.New("invalid second-factor code")
	// ErrIncorrectPIN signals a wrong PIN discovered after the second
	// factor passed; the flow restarts from StateAwaitingPIN.
	ErrIncorrectPIN = errors.New("incorrect pin")
	// ErrWrongState rejects an operation submitted out of order.
	ErrWrongState = errors.New("operation not valid in current state")
)

// Gate is the authentication state machine. It holds the in-flight PIN
// entries and commits nothing to the session store until a flow completes.
type Gate struct {
	mu       sync.Mutex
	sessions *session.Store

	state      State
	pendingPIN string // first entry during setup
	enteredPIN string // entry awaiting second-factor verification
}

// NewGate builds a gate positioned at the start of the setup or login
// path depending on whether a credential already exists.
func NewGate(sessions *session.Store) *Gate {
	state := StateAwaitingPIN
	if _, ok := sessions.Credential(); !ok {
		state = StateSettingPIN
	}
	return &Gate{sessions: sessions, state: state}
}

// State returns the current step of the flow.
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// ValidPIN reports whether s is exactly 6 decimal digits. Each entry
// position accepts a single digit only, so anything else is rejected
// before it reaches the session store.
func ValidPIN(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// SubmitPIN advances the flow with a 6-digit entry. During setup it
// records the first entry and asks for confirmation; during login it is
// accepted without a correctness check and the second factor is requested.
func (g *Gate) SubmitPIN(pin string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !ValidPIN(pin) {
		return ErrInvalidPIN
	}

	switch g.state {
	case StateSettingPIN:
		g.pendingPIN = pin
		g.state = StateConfirmingPIN
		return nil
	case StateAwaitingPIN:
		g.enteredPIN = pin
		g.state = StateAwaitingSecondFactor
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrWrongState, g.state)
	}
}

// ConfirmPIN completes setup. A matching re-entry commits the credential,
// which also authenticates the session (no second factor on first setup).
// A mismatch clears both entries and restarts from StateSettingPIN.
func (g *Gate) ConfirmPIN(ctx context.Context, pin string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StateConfirmingPIN {
		return fmt.Errorf("%w: %s", ErrWrongState, g.state)
	}
	if !ValidPIN(pin) {
		return ErrInvalidPIN
	}

	if pin != g.pendingPIN {
		g.pendingPIN = ""
		g.state = StateSettingPIN
		return ErrPINMismatch
	}

	if err := g.sessions.SetCredential(ctx, pin); err != nil {
		return err
	}
	g.pendingPIN = ""
	g.state = StateAuthenticated
	return nil
}

// SubmitSecondFactor checks the fixed code, then the PIN. The ordering is
// intentional: a wrong PIN is only revealed after the second factor
// passes. A wrong code keeps the flow in StateAwaitingSecondFactor; a
// wrong PIN clears everything back to StateAwaitingPIN.
func (g *Gate) SubmitSecondFactor(code string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StateAwaitingSecondFactor {
		return fmt.Errorf("%w: %s", ErrWrongState, g.state)
	}

	if code != secondFactorCode {
		return ErrInvalidSecondFactor
	}

	if !g.sessions.Authenticate(g.enteredPIN) {
		g.enteredPIN = ""
		g.state = StateAwaitingPIN
		return ErrIncorrectPIN
	}

	g.enteredPIN = ""
	g.state = StateAuthenticated
	return nil
}
