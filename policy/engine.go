// Package policy evaluates request access policy with OPA.
package policy

import (
	"context"
	"fmt"

	"github.com/open-policy-agent/opa/rego"
)

// Decision values returned by the policy.
const (
	DecisionAllow = "allow"
	DecisionDeny  = "deny"
)

// Engine is the OPA policy engine.
type Engine struct {
	query rego.PreparedEvalQuery
}

// NewEngine creates a new policy engine with the given policy content.
func NewEngine(ctx context.Context, policyContent string) (*Engine, error) {
	r := rego.New(
		rego.Query("data.access_policy.decision"),
		rego.Module("access_policy.rego", policyContent),
	)

	query, err := r.PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare rego: %w", err)
	}

	return &Engine{query: query}, nil
}

// Input describes one request for the access policy.
type Input struct {
	Path             string `json:"path"`
	Authenticated    bool   `json:"authenticated"`
	HasActiveProfile bool   `json:"has_active_profile"`
}

// Evaluate returns the access decision for the request.
func (e *Engine) Evaluate(ctx context.Context, input Input) (string, error) {
	results, err := e.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return "", fmt.Errorf("failed to evaluate policy: %w", err)
	}

	if len(results) == 0 || len(results[0].Expressions) == 0 {
		return DecisionDeny, nil
	}

	if s, ok := results[0].Expressions[0].Value.(string); ok {
		return s, nil
	}
	return DecisionDeny, nil
}

// DefaultPolicy is the default access policy: the authentication flow and
// the state snapshot are always reachable, everything else requires an
// authenticated session, and endpoints that read the active profile also
// require one to be set.
const DefaultPolicy = `
package access_policy

import rego.v1

default decision := "deny"

decision := "allow" if {
	startswith(input.path, "/v1/auth/")
}

decision := "allow" if {
	input.path == "/v1/state"
}

profile_gated := {"/v1/campaigns/viral", "/v1/analysis/profile"}

decision := "allow" if {
	input.authenticated
	not profile_gated[input.path]
}

decision := "allow" if {
	input.authenticated
	profile_gated[input.path]
	input.has_active_profile
}
`
