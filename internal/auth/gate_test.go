package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marklabs/mark/internal/auth"
	"github.com/marklabs/mark/internal/session"
	"github.com/marklabs/mark/tests/helpers"
)

func newSession(t *testing.T) *session.Store {
	t.Helper()
	s, err := session.New(context.Background(), helpers.NewTestSQLiteStore(t))
	if err != nil {
		t.Fatalf("failed to create session store: %v", err)
	}
	return s
}

func newSessionWithPIN(t *testing.T, pin string) *session.Store {
	t.Helper()
	db := helpers.NewTestSQLiteStore(t)
	if err := db.SaveCredential(context.Background(), pin); err != nil {
		t.Fatalf("failed to seed credential: %v", err)
	}
	s, err := session.New(context.Background(), db)
	if err != nil {
		t.Fatalf("failed to create session store: %v", err)
	}
	return s
}

func TestSetupFlow(t *testing.T) {
	ctx := context.Background()
	sessions := newSession(t)
	gate := auth.NewGate(sessions)

	assert.Equal(t, auth.StateSettingPIN, gate.State())

	assert.NoError(t, gate.SubmitPIN("204060"))
	assert.Equal(t, auth.StateConfirmingPIN, gate.State())

	assert.NoError(t, gate.ConfirmPIN(ctx, "204060"))
	assert.Equal(t, auth.StateAuthenticated, gate.State())

	// No second factor on first setup.
	assert.True(t, sessions.IsAuthenticated())
	pin, ok := sessions.Credential()
	assert.True(t, ok)
	assert.Equal(t, "204060", pin)
}

func TestSetupMismatchRestarts(t *testing.T) {
	ctx := context.Background()
	sessions := newSession(t)
	gate := auth.NewGate(sessions)

	assert.NoError(t, gate.SubmitPIN("204060"))

	err := gate.ConfirmPIN(ctx, "204061")
	assert.ErrorIs(t, err, auth.ErrPINMismatch)
	assert.Equal(t, auth.StateSettingPIN, gate.State())
	assert.False(t, sessions.IsAuthenticated())

	// The flow restarts cleanly after a mismatch.
	assert.NoError(t, gate.SubmitPIN("204060"))
	assert.NoError(t, gate.ConfirmPIN(ctx, "204060"))
	assert.Equal(t, auth.StateAuthenticated, gate.State())
}

func TestLoginFlow(t *testing.T) {
	sessions := newSessionWithPIN(t, "204060")
	gate := auth.NewGate(sessions)

	assert.Equal(t, auth.StateAwaitingPIN, gate.State())

	// Any 6-digit entry advances; correctness is checked after the
	// second factor.
	assert.NoError(t, gate.SubmitPIN("204060"))
	assert.Equal(t, auth.StateAwaitingSecondFactor, gate.State())

	assert.NoError(t, gate.SubmitSecondFactor("123456"))
	assert.Equal(t, auth.StateAuthenticated, gate.State())
	assert.True(t, sessions.IsAuthenticated())
}

func TestLoginWrongSecondFactorStays(t *testing.T) {
	sessions := newSessionWithPIN(t, "204060")
	gate := auth.NewGate(sessions)

	assert.NoError(t, gate.SubmitPIN("204060"))

	err := gate.SubmitSecondFactor("000000")
	assert.ErrorIs(t, err, auth.ErrInvalidSecondFactor)
	assert.Equal(t, auth.StateAwaitingSecondFactor, gate.State())
	assert.False(t, sessions.IsAuthenticated())

	// Immediate retry with the right code succeeds.
	assert.NoError(t, gate.SubmitSecondFactor("123456"))
	assert.True(t, sessions.IsAuthenticated())
}

func TestLoginWrongPINRevealedAfterSecondFactor(t *testing.T) {
	sessions := newSessionWithPIN(t, "204060")
	gate := auth.NewGate(sessions)

	assert.NoError(t, gate.SubmitPIN("999999"))
	assert.Equal(t, auth.StateAwaitingSecondFactor, gate.State())

	err := gate.SubmitSecondFactor("123456")
	assert.ErrorIs(t, err, auth.ErrIncorrectPIN)
	assert.Equal(t, auth.StateAwaitingPIN, gate.State())
	assert.False(t, sessions.IsAuthenticated())

	// Full retry from the top.
	assert.NoError(t, gate.SubmitPIN("204060"))
	assert.NoError(t, gate.SubmitSecondFactor("123456"))
	assert.True(t, sessions.IsAuthenticated())
}

func TestRejectsMalformedPIN(t *testing.T) {
	gate := auth.NewGate(newSession(t))

	for _, pin := range []string{"", "12345", "1234567", "12a456", "12 456", "１２３４５６"} {
		err := gate.SubmitPIN(pin)
		assert.ErrorIs(t, err, auth.ErrInvalidPIN, "pin %q", pin)
	}
	assert.Equal(t, auth.StateSettingPIN, gate.State())
}

func TestOperationsOutOfOrder(t *testing.T) {
	ctx := context.Background()
	gate := auth.NewGate(newSession(t))

	// Setup path: confirm and second factor are not valid yet.
	assert.ErrorIs(t, gate.ConfirmPIN(ctx, "204060"), auth.ErrWrongState)
	assert.ErrorIs(t, gate.SubmitSecondFactor("123456"), auth.ErrWrongState)

	loginGate := auth.NewGate(newSessionWithPIN(t, "204060"))
	assert.ErrorIs(t, loginGate.ConfirmPIN(ctx, "204060"), auth.ErrWrongState)
	assert.ErrorIs(t, loginGate.SubmitSecondFactor("123456"), auth.ErrWrongState)
}

func TestValidPIN(t *testing.T) {
	assert.True(t, auth.ValidPIN("000000"))
	assert.True(t, auth.ValidPIN("987654"))
	assert.False(t, auth.ValidPIN("98765"))
	assert.False(t, auth.ValidPIN("9876543"))
	assert.False(t, auth.ValidPIN("98765x"))
}
