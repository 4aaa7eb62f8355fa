package v1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/marklabs/mark/internal/domain"
	"github.com/marklabs/mark/internal/service"
)

// AnalyzeProfileRequest is the request for a profile analysis.
type AnalyzeProfileRequest struct {
	Username string `json:"username"`
}

// AnalyzeCompetitorsRequest is the request for a competitor scan.
type AnalyzeCompetitorsRequest struct {
	Competitors []string `json:"competitors"`
}

// GenerateContentRequest is the request for the content-generation tools.
type GenerateContentRequest struct {
	Tool domain.ToolKind `json:"tool"`
	Text string          `json:"text"`
}

// DashboardInsight returns the daily strategic summary. Gateway failures
// surface as fallback text, never as an error status.
// POST /v1/insights/dashboard
func (h *Handler) DashboardInsight(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"insight": h.svc.DashboardInsight(c.Request().Context()),
	})
}

// AnalyzeProfile runs the structured profile analysis.
// POST /v1/analysis/profile
func (h *Handler) AnalyzeProfile(c echo.Context) error {
	var req AnalyzeProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.Username == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "username is required"})
	}

	report, err := h.svc.AnalyzeProfile(c.Request().Context(), req.Username)
	if err != nil {
		return h.generateError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}

// AnalyzeCompetitors runs the competitor scan.
// POST /v1/analysis/competitors
func (h *Handler) AnalyzeCompetitors(c echo.Context) error {
	var req AnalyzeCompetitorsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if len(req.Competitors) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "competitors are required"})
	}

	reports, err := h.svc.AnalyzeCompetitors(c.Request().Context(), req.Competitors)
	if err != nil {
		return h.generateError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"results": reports,
	})
}

// GenerateViralCampaign builds a campaign package for the active profile.
// POST /v1/campaigns/viral
func (h *Handler) GenerateViralCampaign(c echo.Context) error {
	campaign, err := h.svc.GenerateViralCampaign(c.Request().Context())
	if err != nil {
		return h.generateError(c, err)
	}
	return c.JSON(http.StatusOK, campaign)
}

// GenerateContent runs one content-generation tool and returns the
// tagged result.
// POST /v1/tools/generate
func (h *Handler) GenerateContent(c echo.Context) error {
	var req GenerateContentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if !domain.ValidTool(req.Tool) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown tool"})
	}

	result, err := h.svc.GenerateContent(c.Request().Context(), req.Tool, req.Text)
	if err != nil {
		return h.generateError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// generateError maps generation failures to inline JSON responses. The
// result slot stays empty and the user retries via the same control.
func (h *Handler) generateError(c echo.Context, err error) error {
	if errors.Is(err, service.ErrNoActiveProfile) {
		return c.JSON(http.StatusConflict, map[string]string{"error": "an active profile is required"})
	}
	return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
}
