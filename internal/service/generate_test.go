package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marklabs/mark/internal/auth"
	"github.com/marklabs/mark/internal/config"
	"github.com/marklabs/mark/internal/domain"
	"github.com/marklabs/mark/internal/gateway"
	"github.com/marklabs/mark/internal/session"
	"github.com/marklabs/mark/tests/helpers"
)

// failingGateway fails every call, like a network outage.
type failingGateway struct{}

var errGateway = errors.New("remote call failed")

func (failingGateway) DashboardInsight(ctx context.Context) (string, error) { return "", errGateway }
func (failingGateway) AnalyzeProfile(ctx context.Context, username, niche string) (*domain.ProfileAnalysis, error) {
	return nil, errGateway
}
func (failingGateway) ViralCampaign(ctx context.Context, niche, objective string) (*domain.ViralCampaign, error) {
	return nil, errGateway
}
func (failingGateway) AnalyzeCompetitors(ctx context.Context, handles []string) ([]domain.CompetitorAnalysis, error) {
	return nil, errGateway
}
func (failingGateway) GenerateContent(ctx context.Context, tool domain.ToolKind, text string) (string, error) {
	return "", errGateway
}
func (failingGateway) SendMentorMessage(ctx context.Context, message string) (string, error) {
	return "", errGateway
}
func (failingGateway) StartChat(ctx context.Context) error { return errGateway }

func newTestService(t *testing.T, gw gateway.Client) *Service {
	t.Helper()

	sessions, err := session.New(context.Background(), helpers.NewTestSQLiteStore(t))
	if err != nil {
		t.Fatalf("failed to create session store: %v", err)
	}
	gate := auth.NewGate(sessions)
	return New(&config.Config{}, sessions, gate, gw, nil)
}

func addActiveProfile(t *testing.T, svc *Service) {
	t.Helper()
	if err := svc.AddProfile(context.Background(), "studio", "fitness", "grow followers"); err != nil {
		t.Fatalf("failed to add profile: %v", err)
	}
}

func TestDashboardInsightFallback(t *testing.T) {
	svc := newTestService(t, failingGateway{})

	text := svc.DashboardInsight(context.Background())
	assert.Equal(t, dashboardFallback, text)
}

func TestDashboardInsight(t *testing.T) {
	svc := newTestService(t, gateway.NewMockClient())

	text := svc.DashboardInsight(context.Background())
	assert.NotEqual(t, dashboardFallback, text)
	assert.NotEmpty(t, text)
}

func TestMentorMessageFallback(t *testing.T) {
	svc := newTestService(t, failingGateway{})

	reply := svc.MentorMessage(context.Background(), "how do I grow?")
	assert.Equal(t, mentorFallback, reply)
}

func TestAnalyzeProfileRequiresActiveProfile(t *testing.T) {
	svc := newTestService(t, gateway.NewMockClient())

	_, err := svc.AnalyzeProfile(context.Background(), "somebrand")
	assert.ErrorIs(t, err, ErrNoActiveProfile)
}

func TestAnalyzeProfileUsesActiveNiche(t *testing.T) {
	svc := newTestService(t, gateway.NewMockClient())
	addActiveProfile(t, svc)

	report, err := svc.AnalyzeProfile(context.Background(), "somebrand")
	assert.NoError(t, err)
	assert.Len(t, report.SevenDayPlan, 7)
	assert.Equal(t, report.Summary.AvgEngagement, report.EngagementRate)
}

func TestGenerateViralCampaignRequiresActiveProfile(t *testing.T) {
	svc := newTestService(t, gateway.NewMockClient())

	_, err := svc.GenerateViralCampaign(context.Background())
	assert.ErrorIs(t, err, ErrNoActiveProfile)

	addActiveProfile(t, svc)
	campaign, err := svc.GenerateViralCampaign(context.Background())
	assert.NoError(t, err)
	assert.NotEmpty(t, campaign.Title)
	assert.NotEmpty(t, campaign.Script.Hook)
}

func TestAnalyzeCompetitorsSurfacesGatewayError(t *testing.T) {
	svc := newTestService(t, failingGateway{})

	_, err := svc.AnalyzeCompetitors(context.Background(), []string{"@a", "@b"})
	assert.ErrorIs(t, err, errGateway)
}

func TestGenerateContentTextCase(t *testing.T) {
	svc := newTestService(t, gateway.NewMockClient())

	result, err := svc.GenerateContent(context.Background(), domain.ToolHashtag, "vegan meal prep")
	assert.NoError(t, err)
	assert.Equal(t, domain.ToolHashtag, result.Tool)
	assert.NotEmpty(t, result.Text)
	assert.Nil(t, result.Campaign)
}

func TestGenerateContentCampaignCase(t *testing.T) {
	svc := newTestService(t, gateway.NewMockClient())
	addActiveProfile(t, svc)

	result, err := svc.GenerateContent(context.Background(), domain.ToolViralCampaign, "")
	assert.NoError(t, err)
	assert.Equal(t, domain.ToolViralCampaign, result.Tool)
	assert.Empty(t, result.Text)
	if assert.NotNil(t, result.Campaign) {
		assert.NotEmpty(t, result.Campaign.Title)
	}
}

func TestGenerateContentUnknownTool(t *testing.T) {
	svc := newTestService(t, gateway.NewMockClient())

	_, err := svc.GenerateContent(context.Background(), "time_machine", "1999")
	assert.Error(t, err)
}

func TestResetMentorRestartsConversation(t *testing.T) {
	svc := newTestService(t, gateway.NewMockClient())
	ctx := context.Background()

	first := svc.MentorMessage(ctx, "hello")
	second := svc.MentorMessage(ctx, "hello")
	assert.NotEqual(t, first, second)

	assert.NoError(t, svc.ResetMentor(ctx))
	afterReset := svc.MentorMessage(ctx, "hello")
	assert.Equal(t, first, afterReset)
}
