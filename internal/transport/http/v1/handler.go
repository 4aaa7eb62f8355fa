// Package v1 contains the v1 API handlers.
package v1

import (
	"github.com/labstack/echo/v4"

	"github.com/marklabs/mark/internal/service"
)

// Handler holds the v1 API handlers.
type Handler struct {
	svc *service.Service
}

// NewHandler creates a new v1 handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers the v1 routes.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/v1/state", h.GetState)

	e.POST("/v1/auth/pin", h.SubmitPIN)
	e.POST("/v1/auth/confirm", h.ConfirmPIN)
	e.POST("/v1/auth/code", h.SubmitSecondFactor)

	e.GET("/v1/profiles", h.ListProfiles)
	e.POST("/v1/profiles", h.CreateProfile)
	e.POST("/v1/profiles/:profile_id/activate", h.ActivateProfile)
	e.GET("/v1/profiles/active", h.GetActiveProfile)

	e.POST("/v1/insights/dashboard", h.DashboardInsight)
	e.POST("/v1/analysis/profile", h.AnalyzeProfile)
	e.POST("/v1/analysis/competitors", h.AnalyzeCompetitors)
	e.POST("/v1/campaigns/viral", h.GenerateViralCampaign)
	e.POST("/v1/tools/generate", h.GenerateContent)

	e.POST("/v1/mentor/messages", h.MentorMessage)
	e.POST("/v1/mentor/reset", h.ResetMentor)
}
