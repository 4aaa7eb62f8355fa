// Package http provides the HTTP server for the mark API.
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/marklabs/mark/internal/service"
	v1 "github.com/marklabs/mark/internal/transport/http/v1"
	"github.com/marklabs/mark/policy"
)

// NewServer creates and configures the HTTP server.
func NewServer(svc *service.Service, engine *policy.Engine) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(AccessPolicy(svc, engine))

	// Handlers
	v1Handler := v1.NewHandler(svc)
	v1Handler.RegisterRoutes(e)

	return e
}

// AccessPolicy enforces the access policy on every request. Denied
// requests get an inline JSON error and can be retried immediately after
// authenticating.
func AccessPolicy(svc *service.Service, engine *policy.Engine) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			input := policy.Input{
				Path:             c.Request().URL.Path,
				Authenticated:    svc.IsAuthenticated(),
				HasActiveProfile: svc.ActiveProfile() != nil,
			}

			decision, err := engine.Evaluate(c.Request().Context(), input)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, map[string]string{"error": "policy evaluation failed"})
			}
			if decision != policy.DecisionAllow {
				if !input.Authenticated {
					return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
				}
				return c.JSON(http.StatusForbidden, map[string]string{"error": "an active profile is required"})
			}

			return next(c)
		}
	}
}
