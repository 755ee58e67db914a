package http

import (
	nethttp "net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/lajubus/lajubus/internal/pkg/models"
	"github.com/lajubus/lajubus/internal/utils"
	"github.com/lajubus/lajubus/services/ticketing"
)

// AuthHandler handles HTTP requests for login and token validation
type AuthHandler struct {
	authUC ticketing.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC ticketing.AuthUC) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
	}
}

// Login handles role-keyed login requests
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.authUC.Login(c.Request().Context(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Login successful", resp)
}

// Validate reports whether the presented bearer token is a live session.
// It always answers 200; validity is in the body.
func (h *AuthHandler) Validate(c echo.Context) error {
	authHeader := c.Request().Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return utils.SuccessResponse(c, nethttp.StatusOK, "Token validated",
			&models.ValidateResponse{Authenticated: false})
	}

	resp := h.authUC.Validate(parts[1])
	return utils.SuccessResponse(c, nethttp.StatusOK, "Token validated", resp)
}

// Logout acknowledges the end of a session. Sessions are stateless bearer
// tokens, so the client discards the token; nothing is revoked server-side.
func (h *AuthHandler) Logout(c echo.Context) error {
	return utils.SuccessResponse(c, nethttp.StatusOK, "Logged out successfully", nil)
}
