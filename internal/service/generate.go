package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/marklabs/mark/internal/domain"
)

// ErrNoActiveProfile is returned by operations that read the active
// profile's niche and objective when no profile is active.
var ErrNoActiveProfile = errors.New("no active profile selected")

// Fallback text shown when a gateway call fails on endpoints that render
// free-form text. The user retries via the same control; there is no
// automatic retry.
const (
	dashboardFallback = "Unable to generate today's insight. Check your connection and API key, then try again."
	mentorFallback    = "Something went wrong reaching the mentor. Please try again."
)

// DashboardInsight returns the daily strategic summary, substituting
// fixed fallback text when the gateway fails.
func (s *Service) DashboardInsight(ctx context.Context) string {
	text, err := s.gateway.DashboardInsight(ctx)
	if err != nil {
		s.logger.Warn("dashboard insight failed", zap.Error(err))
		return dashboardFallback
	}
	return text
}

// AnalyzeProfile runs the structured profile analysis for the given
// handle using the active profile's niche.
func (s *Service) AnalyzeProfile(ctx context.Context, username string) (*domain.ProfileAnalysis, error) {
	profile := s.sessions.ActiveProfile()
	if profile == nil {
		return nil, ErrNoActiveProfile
	}

	report, err := s.gateway.AnalyzeProfile(ctx, username, profile.Niche)
	if err != nil {
		s.logger.Warn("profile analysis failed", zap.String("username", username), zap.Error(err))
		return nil, fmt.Errorf("profile analysis failed: %w", err)
	}
	return report, nil
}

// GenerateViralCampaign builds a campaign package for the active
// profile's niche and objective.
func (s *Service) GenerateViralCampaign(ctx context.Context) (*domain.ViralCampaign, error) {
	profile := s.sessions.ActiveProfile()
	if profile == nil {
		return nil, ErrNoActiveProfile
	}

	campaign, err := s.gateway.ViralCampaign(ctx, profile.Niche, profile.Objective)
	if err != nil {
		s.logger.Warn("viral campaign failed", zap.Error(err))
		return nil, fmt.Errorf("viral campaign generation failed: %w", err)
	}
	return campaign, nil
}

// AnalyzeCompetitors runs the competitor scan over the given handles.
func (s *Service) AnalyzeCompetitors(ctx context.Context, handles []string) ([]domain.CompetitorAnalysis, error) {
	reports, err := s.gateway.AnalyzeCompetitors(ctx, handles)
	if err != nil {
		s.logger.Warn("competitor analysis failed", zap.Int("handles", len(handles)), zap.Error(err))
		return nil, fmt.Errorf("competitor analysis failed: %w", err)
	}
	return reports, nil
}

// GenerateContent runs one content-generation tool and returns the tagged
// result: a campaign record for the viral-campaign tool, plain text for
// every other tool.
func (s *Service) GenerateContent(ctx context.Context, tool domain.ToolKind, text string) (*domain.GenerationResult, error) {
	if !domain.ValidTool(tool) {
		return nil, fmt.Errorf("unknown tool: %s", tool)
	}

	if tool == domain.ToolViralCampaign {
		campaign, err := s.GenerateViralCampaign(ctx)
		if err != nil {
			return nil, err
		}
		return &domain.GenerationResult{Tool: tool, Campaign: campaign}, nil
	}

	out, err := s.gateway.GenerateContent(ctx, tool, text)
	if err != nil {
		s.logger.Warn("content generation failed", zap.String("tool", string(tool)), zap.Error(err))
		return nil, fmt.Errorf("content generation failed: %w", err)
	}
	return &domain.GenerationResult{Tool: tool, Text: out}, nil
}

// MentorMessage sends one turn of the mentor conversation, substituting
// fixed fallback text when the gateway fails.
func (s *Service) MentorMessage(ctx context.Context, message string) string {
	reply, err := s.gateway.SendMentorMessage(ctx, message)
	if err != nil {
		s.logger.Warn("mentor message failed", zap.Error(err))
		return mentorFallback
	}
	return reply
}

// ResetMentor starts a fresh mentor conversation.
func (s *Service) ResetMentor(ctx context.Context) error {
	return s.gateway.StartChat(ctx)
}
