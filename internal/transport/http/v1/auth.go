package v1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/marklabs/mark/internal/auth"
	"github.com/marklabs/mark/internal/session"
)

// PINRequest carries a 6-digit PIN entry.
type PINRequest struct {
	PIN string `json:"pin"`
}

// CodeRequest carries a second-factor code entry.
type CodeRequest struct {
	Code string `json:"code"`
}

// GetState returns the session and flow snapshot the UI renders from.
// GET /v1/state
func (h *Handler) GetState(c echo.Context) error {
	var activeID string
	if p := h.svc.ActiveProfile(); p != nil {
		activeID = p.ID
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"auth_state":        h.svc.AuthState(),
		"is_authenticated":  h.svc.IsAuthenticated(),
		"profiles":          h.svc.Profiles(),
		"active_profile_id": activeID,
	})
}

// SubmitPIN advances the setup or login flow with a PIN entry.
// POST /v1/auth/pin
func (h *Handler) SubmitPIN(c echo.Context) error {
	var req PINRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if err := h.svc.SubmitPIN(req.PIN); err != nil {
		return h.authError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"state": h.svc.AuthState(),
	})
}

// ConfirmPIN completes credential setup with the re-entered PIN.
// POST /v1/auth/confirm
func (h *Handler) ConfirmPIN(c echo.Context) error {
	var req PINRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if err := h.svc.ConfirmPIN(c.Request().Context(), req.PIN); err != nil {
		return h.authError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"state":            h.svc.AuthState(),
		"is_authenticated": h.svc.IsAuthenticated(),
	})
}

// SubmitSecondFactor completes login with the second-factor code.
// POST /v1/auth/code
func (h *Handler) SubmitSecondFactor(c echo.Context) error {
	var req CodeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if err := h.svc.SubmitSecondFactor(req.Code); err != nil {
		return h.authError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"state":            h.svc.AuthState(),
		"is_authenticated": h.svc.IsAuthenticated(),
	})
}

// authError maps gate errors to inline JSON responses. Every failure is
// retryable via the same endpoint; the current flow state is included so
// the UI knows which step to render.
func (h *Handler) authError(c echo.Context, err error) error {
	status := http.StatusUnauthorized
	switch {
	case errors.Is(err, auth.ErrInvalidPIN):
		status = http.StatusBadRequest
	case errors.Is(err, auth.ErrWrongState):
		status = http.StatusConflict
	default:
		var perr *session.PersistenceError
		if errors.As(err, &perr) {
			status = http.StatusInternalServerError
		}
	}

	return c.JSON(status, map[string]interface{}{
		"error": err.Error(),
		"state": h.svc.AuthState(),
	})
}
