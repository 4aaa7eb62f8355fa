package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"google.golang.org/genai"

	"github.com/marklabs/mark/internal/domain"
)

// mentorSystemInstruction frames the mentor persona for the chat model.
const mentorSystemInstruction = "You are M.A.R.K., an elite marketing mentor working like a " +
	"top-tier agency. Speak like a marketing personal trainer: direct, strategic, empathetic " +
	"and motivating. Ground advice in industry studies, statistics and market trends. Avoid " +
	"generic answers. Act as a 24/7 consultant."

// GeminiClient implements Client against the Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  string

	mu   sync.Mutex
	chat *genai.Chat
}

// NewGeminiClient creates a Gemini-backed gateway client.
func NewGeminiClient(ctx context.Context, apiKey, model string, timeout time.Duration) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: timeout},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiClient{client: client, model: model}, nil
}

// Ensure GeminiClient implements the Client interface.
var _ Client = (*GeminiClient)(nil)

// generateText runs a single non-streaming completion.
func (g *GeminiClient) generateText(ctx context.Context, prompt string, cfg *genai.GenerateContentConfig) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned an empty response")
	}
	return text, nil
}

// generateJSON runs a completion in JSON response mode and decodes the
// reply into out.
func (g *GeminiClient) generateJSON(ctx context.Context, prompt string, out any) error {
	text, err := g.generateText(ctx, prompt, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(stripFences(text)), out); err != nil {
		return fmt.Errorf("malformed gemini response: %w", err)
	}
	return nil
}

// stripFences removes a markdown code fence the model sometimes wraps
// around JSON payloads.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

// DashboardInsight returns the daily strategic summary.
func (g *GeminiClient) DashboardInsight(ctx context.Context) (string, error) {
	prompt := "Act as M.A.R.K., a world-class marketing AI. Generate today's strategic " +
		"summary for a marketing dashboard: a metric in focus, a target, the current market " +
		"trend, one concrete action of the day and the best posting window. Keep it concise, " +
		"strategic and motivational, plain text without markdown."
	return g.generateText(ctx, prompt, nil)
}

// AnalyzeProfile returns the structured profile report.
func (g *GeminiClient) AnalyzeProfile(ctx context.Context, username, niche string) (*domain.ProfileAnalysis, error) {
	prompt := fmt.Sprintf("Act as M.A.R.K., an elite marketing AI. Analyze the Instagram "+
		"profile '@%s' in the '%s' niche: engagement summary over the last 12 posts, peak "+
		"hours, top content type, a real-follower estimation with insights, and a seven-day "+
		"content plan (day, action, caption, hashtags). Return ONLY a JSON object with keys "+
		"summary {last12Posts, avgEngagement, peakHours, topContent}, followerAnalysis "+
		"{realFollowerEstimation, insights} and sevenDayPlan [{day, action, caption, hashtags}] "+
		"with exactly 7 plan entries.", username, niche)

	var report domain.ProfileAnalysis
	if err := g.generateJSON(ctx, prompt, &report); err != nil {
		return nil, err
	}

	// Headline fields mirror the summary block.
	report.EngagementRate = report.Summary.AvgEngagement
	report.BestPostingTime = report.Summary.PeakHours
	report.TopContentType = report.Summary.TopContent
	return &report, nil
}

// ViralCampaign returns a complete campaign package.
func (g *GeminiClient) ViralCampaign(ctx context.Context, niche, objective string) (*domain.ViralCampaign, error) {
	prompt := fmt.Sprintf("Act as M.A.R.K., an elite marketing AI. Generate a complete viral "+
		"campaign package for the niche '%s' with the objective '%s'. Return ONLY a JSON "+
		"object with keys title, script {hook, content, cta}, caption, hashtags, "+
		"trendingMusic and thumbnailIdea.", niche, objective)

	var campaign domain.ViralCampaign
	if err := g.generateJSON(ctx, prompt, &campaign); err != nil {
		return nil, err
	}
	return &campaign, nil
}

// AnalyzeCompetitors returns one report per handle.
func (g *GeminiClient) AnalyzeCompetitors(ctx context.Context, handles []string) ([]domain.CompetitorAnalysis, error) {
	prompt := fmt.Sprintf("Act as M.A.R.K., an elite marketing AI. Analyze these "+
		"competitors: %s. For each, identify main strengths, weaknesses and a concise "+
		"strategy to outperform them. Return ONLY a JSON array of objects with keys "+
		"competitor, strengths, weaknesses and strategyToOutperform.",
		strings.Join(handles, ", "))

	var reports []domain.CompetitorAnalysis
	if err := g.generateJSON(ctx, prompt, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// toolPrompts maps each plain-text tool to its instruction template.
var toolPrompts = map[domain.ToolKind]string{
	domain.ToolScript:         "As M.A.R.K., write a 15-second Instagram Reel script about '%s' with a hook, main content, a clear call to action and visual suggestions.",
	domain.ToolThumbnail:      "As M.A.R.K., propose 3 high-converting thumbnail ideas for a video titled '%s', each described in detail.",
	domain.ToolPersuasive:     "As M.A.R.K., write persuasive marketing copy for '%s' using scarcity, social proof and authority triggers.",
	domain.ToolAd:             "As M.A.R.K., write a Facebook/Instagram ad for '%s' with a headline, body, call to action and a detailed target audience.",
	domain.ToolHashtag:        "As M.A.R.K., generate 15 optimized hashtags for a post about '%s', mixing niche, mid-reach and broad tags.",
	domain.ToolBio:            "As M.A.R.K., write a professional, optimized Instagram bio for '%s': clear, concise, authoritative, with a call to action.",
	domain.ToolNicheExplosion: "As M.A.R.K., run a niche explosion for the keyword '%s': 5 original content ideas, each with a title, format and short summary.",
	domain.ToolContract:       "As M.A.R.K., draft a simple influencer/service contract template based on: '%s'. Include scope, term, payment and confidentiality, plus a note that a lawyer must review it.",
	domain.ToolInfiltrate:     "As M.A.R.K., run infiltrate mode for the niche '%s': list 5 micro-influencer profiles worth approaching, each with a rationale and a personalized outreach message.",
}

// GenerateContent runs one of the plain-text tools over free text.
func (g *GeminiClient) GenerateContent(ctx context.Context, tool domain.ToolKind, text string) (string, error) {
	template, ok := toolPrompts[tool]
	if !ok {
		return "", fmt.Errorf("unknown tool: %s", tool)
	}
	return g.generateText(ctx, fmt.Sprintf(template, text), nil)
}

// StartChat resets the mentor conversation.
func (g *GeminiClient) StartChat(ctx context.Context) error {
	chat, err := g.client.Chats.Create(ctx, g.model, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(mentorSystemInstruction, genai.RoleUser),
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to start chat: %w", err)
	}

	g.mu.Lock()
	g.chat = chat
	g.mu.Unlock()
	return nil
}

// SendMentorMessage sends one conversation turn, starting a chat lazily
// if none is running.
func (g *GeminiClient) SendMentorMessage(ctx context.Context, message string) (string, error) {
	g.mu.Lock()
	chat := g.chat
	g.mu.Unlock()

	if chat == nil {
		if err := g.StartChat(ctx); err != nil {
			return "", err
		}
		g.mu.Lock()
		chat = g.chat
		g.mu.Unlock()
	}

	resp, err := chat.SendMessage(ctx, genai.Part{Text: message})
	if err != nil {
		return "", fmt.Errorf("mentor chat failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("mentor returned an empty response")
	}
	return text, nil
}
