package v1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/marklabs/mark/internal/session"
)

// ProfileCreateRequest is the request to create a profile.
type ProfileCreateRequest struct {
	Name      string `json:"name"`
	Niche     string `json:"niche"`
	Objective string `json:"objective"`
}

// ListProfiles lists the profile collection.
// GET /v1/profiles
func (h *Handler) ListProfiles(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"profiles": h.svc.Profiles(),
	})
}

// CreateProfile adds a new profile. At the cap of three the call
// succeeds without appending, matching the registry contract.
// POST /v1/profiles
func (h *Handler) CreateProfile(c echo.Context) error {
	var req ProfileCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
	}
	if req.Niche == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "niche is required"})
	}

	if err := h.svc.AddProfile(c.Request().Context(), req.Name, req.Niche, req.Objective); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	var activeID string
	if p := h.svc.ActiveProfile(); p != nil {
		activeID = p.ID
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"profiles":          h.svc.Profiles(),
		"active_profile_id": activeID,
	})
}

// ActivateProfile switches the active profile.
// POST /v1/profiles/:profile_id/activate
func (h *Handler) ActivateProfile(c echo.Context) error {
	id := c.Param("profile_id")

	if err := h.svc.SwitchProfile(c.Request().Context(), id); err != nil {
		if errors.Is(err, session.ErrProfileNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "profile not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"active_profile_id": id,
	})
}

// GetActiveProfile returns the active profile.
// GET /v1/profiles/active
func (h *Handler) GetActiveProfile(c echo.Context) error {
	profile := h.svc.ActiveProfile()
	if profile == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "no active profile"})
	}
	return c.JSON(http.StatusOK, profile)
}
