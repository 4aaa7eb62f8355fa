package policy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine(context.Background(), DefaultPolicy)
	if err != nil {
		t.Fatalf("failed to create policy engine: %v", err)
	}
	return engine
}

func TestAuthEndpointsAlwaysAllowed(t *testing.T) {
	engine := newEngine(t)

	for _, path := range []string{"/v1/auth/pin", "/v1/auth/confirm", "/v1/auth/code", "/v1/state"} {
		decision, err := engine.Evaluate(context.Background(), Input{Path: path})
		assert.NoError(t, err)
		assert.Equal(t, DecisionAllow, decision, "path %s", path)
	}
}

func TestUnauthenticatedDenied(t *testing.T) {
	engine := newEngine(t)

	for _, path := range []string{"/v1/profiles", "/v1/insights/dashboard", "/v1/mentor/messages"} {
		decision, err := engine.Evaluate(context.Background(), Input{Path: path})
		assert.NoError(t, err)
		assert.Equal(t, DecisionDeny, decision, "path %s", path)
	}
}

func TestAuthenticatedAllowed(t *testing.T) {
	engine := newEngine(t)

	decision, err := engine.Evaluate(context.Background(), Input{
		Path:          "/v1/insights/dashboard",
		Authenticated: true,
	})
	assert.NoError(t, err)
	assert.Equal(t, DecisionAllow, decision)
}

func TestProfileGatedEndpoints(t *testing.T) {
	engine := newEngine(t)

	for _, path := range []string{"/v1/campaigns/viral", "/v1/analysis/profile"} {
		decision, err := engine.Evaluate(context.Background(), Input{
			Path:          path,
			Authenticated: true,
		})
		assert.NoError(t, err)
		assert.Equal(t, DecisionDeny, decision, "path %s without active profile", path)

		decision, err = engine.Evaluate(context.Background(), Input{
			Path:             path,
			Authenticated:    true,
			HasActiveProfile: true,
		})
		assert.NoError(t, err)
		assert.Equal(t, DecisionAllow, decision, "path %s with active profile", path)
	}
}
