package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// MentorMessageRequest is one turn of the mentor conversation.
type MentorMessageRequest struct {
	Message string `json:"message"`
}

// MentorMessage sends a message to the mentor and returns the reply.
// Gateway failures surface as fallback text, never as an error status.
// POST /v1/mentor/messages
func (h *Handler) MentorMessage(c echo.Context) error {
	var req MentorMessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.Message == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "message is required"})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"reply": h.svc.MentorMessage(c.Request().Context(), req.Message),
	})
}

// ResetMentor starts a fresh mentor conversation.
// POST /v1/mentor/reset
func (h *Handler) ResetMentor(c echo.Context) error {
	if err := h.svc.ResetMentor(c.Request().Context()); err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
