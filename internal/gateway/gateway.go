// Package gateway provides the AI gateway: stateless request/response
// calls that serialize a prompt, call the remote model, and parse the
// reply as plain text or JSON. All calls are fallible and non-streaming;
// callers substitute fallback text or surface an inline error.
package gateway

import (
	"context"

	"github.com/marklabs/mark/internal/domain"
)

// Client defines the AI gateway operations.
type Client interface {
	// DashboardInsight returns the daily strategic summary as free-form
	// formatted text.
	DashboardInsight(ctx context.Context) (string, error)

	// AnalyzeProfile returns a structured report for an Instagram handle
	// in the given niche: summary metrics, a follower estimate, and a
	// seven-day plan.
	AnalyzeProfile(ctx context.Context, username, niche string) (*domain.ProfileAnalysis, error)

	// ViralCampaign returns a complete campaign package for a niche and
	// objective.
	ViralCampaign(ctx context.Context, niche, objective string) (*domain.ViralCampaign, error)

	// AnalyzeCompetitors returns one report per competitor handle.
	AnalyzeCompetitors(ctx context.Context, handles []string) ([]domain.CompetitorAnalysis, error)

	// GenerateContent runs one of the plain-text tools over free text.
	GenerateContent(ctx context.Context, tool domain.ToolKind, text string) (string, error)

	// SendMentorMessage sends one turn of the mentor conversation and
	// returns the reply. The running conversation context is kept by the
	// client until StartChat resets it.
	SendMentorMessage(ctx context.Context, message string) (string, error)

	// StartChat resets the mentor conversation.
	StartChat(ctx context.Context) error
}
