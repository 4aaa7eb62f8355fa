package gateway

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/marklabs/mark/internal/domain"
)

// MockClient is a deterministic gateway implementation for tests and
// offline development.
type MockClient struct {
	mu    sync.Mutex
	turns int
}

// NewMockClient creates a new mock gateway client.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Ensure MockClient implements the Client interface.
var _ Client = (*MockClient)(nil)

// DashboardInsight returns a canned daily summary.
func (m *MockClient) DashboardInsight(ctx context.Context) (string, error) {
	return "Metric in focus: Engagement Rate\nTarget: 5% average over the next 7 days\n" +
		"Trend: short-form video keeps outperforming static posts\n" +
		"Action of the day: post one Reel with a 3-second hook\n" +
		"Best window: 18h-21h", nil
}

// AnalyzeProfile returns a canned structured report.
func (m *MockClient) AnalyzeProfile(ctx context.Context, username, niche string) (*domain.ProfileAnalysis, error) {
	plan := make([]domain.PlanEntry, 7)
	for i := range plan {
		plan[i] = domain.PlanEntry{
			Day:      i + 1,
			Action:   fmt.Sprintf("Day %d action for @%s", i+1, username),
			Caption:  fmt.Sprintf("Caption %d for the %s niche", i+1, niche),
			Hashtags: "#mock #plan",
		}
	}
	return &domain.ProfileAnalysis{
		EngagementRate:  "4.2%",
		BestPostingTime: "18h - 21h",
		TopContentType:  "Reels",
		Summary: domain.AnalysisSummary{
			Last12Posts:   12,
			AvgEngagement: "4.2%",
			PeakHours:     "18h - 21h",
			TopContent:    "Reels",
		},
		Followers: domain.FollowerAnalysis{
			RealFollowerEstimation: "85%-90%",
			Insights:               "Engagement-to-follower ratio suggests a mostly real audience.",
		},
		SevenDayPlan: plan,
	}, nil
}

// ViralCampaign returns a canned campaign package.
func (m *MockClient) ViralCampaign(ctx context.Context, niche, objective string) (*domain.ViralCampaign, error) {
	return &domain.ViralCampaign{
		Title: fmt.Sprintf("Mock campaign for %s", niche),
		Script: domain.CampaignScript{
			Hook:    "Stop scrolling: this changes your " + niche + " game",
			Content: "Three quick wins toward " + objective,
			CTA:     "Follow for part two",
		},
		Caption:       "Mock caption",
		Hashtags:      "#mock #viral",
		TrendingMusic: "Trending audio #1",
		ThumbnailIdea: "Bold text over a surprised face",
	}, nil
}

// AnalyzeCompetitors returns one canned report per handle.
func (m *MockClient) AnalyzeCompetitors(ctx context.Context, handles []string) ([]domain.CompetitorAnalysis, error) {
	reports := make([]domain.CompetitorAnalysis, len(handles))
	for i, h := range handles {
		reports[i] = domain.CompetitorAnalysis{
			Competitor:           h,
			Strengths:            "Consistent posting cadence",
			Weaknesses:           "Weak calls to action",
			StrategyToOutperform: "Outpost them with daily Reels for 30 days",
		}
	}
	return reports, nil
}

// GenerateContent echoes the tool and input back as mock copy.
func (m *MockClient) GenerateContent(ctx context.Context, tool domain.ToolKind, text string) (string, error) {
	if _, ok := toolPrompts[tool]; !ok {
		return "", fmt.Errorf("unknown tool: %s", tool)
	}
	return fmt.Sprintf("[%s] generated content for: %s", tool, strings.TrimSpace(text)), nil
}

// StartChat resets the mock conversation counter.
func (m *MockClient) StartChat(ctx context.Context) error {
	m.mu.Lock()
	m.turns = 0
	m.mu.Unlock()
	return nil
}

// SendMentorMessage returns a canned mentor reply with a running turn
// counter so tests can observe resets.
func (m *MockClient) SendMentorMessage(ctx context.Context, message string) (string, error) {
	m.mu.Lock()
	m.turns++
	turn := m.turns
	m.mu.Unlock()
	return fmt.Sprintf("Mentor reply %d: focus on one metric this week (%s)", turn, message), nil
}
