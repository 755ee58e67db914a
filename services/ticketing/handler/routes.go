// Package handler wires the HTTP surface of the ticketing service onto an
// Echo instance.
package handler

import (
	"strings"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/lajubus/lajubus/internal/pkg/jwt"
	"github.com/lajubus/lajubus/internal/pkg/middleware"
	"github.com/lajubus/lajubus/internal/pkg/models"
	"github.com/lajubus/lajubus/services/ticketing/handler/http"
)

// Handler coordinates the HTTP handlers of the ticketing service
type Handler struct {
	authHandler      *http.AuthHandler
	agencyHandler    *http.AgencyHandler
	busHandler       *http.BusHandler
	routeHandler     *http.RouteHandler
	conductorHandler *http.ConductorHandler
	ticketHandler    *http.TicketHandler
	cfg              *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *http.AuthHandler,
	agencyHandler *http.AgencyHandler,
	busHandler *http.BusHandler,
	routeHandler *http.RouteHandler,
	conductorHandler *http.ConductorHandler,
	ticketHandler *http.TicketHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler:      authHandler,
		agencyHandler:    agencyHandler,
		busHandler:       busHandler,
		routeHandler:     routeHandler,
		conductorHandler: conductorHandler,
		ticketHandler:    ticketHandler,
		cfg:              cfg,
	}
}

// GetJWTMiddleware returns the configured JWT middleware for HTTP requests.
// echo-jwt verifies the signature; the success handler re-parses the token
// with our own claims mapping so downstream code sees a models.AuthUser.
func (h *Handler) GetJWTMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(h.cfg.JWT.Secret),
		SuccessHandler: func(c echo.Context) {
			authHeader := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				return
			}
			claims, err := jwtpkg.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "), h.cfg.JWT.Secret)
			if err != nil {
				return
			}
			middleware.SetAuthUser(c, jwtpkg.UserFromClaims(claims))
		},
	})
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public routes (no authentication required)
	authGroup := e.Group("/auth")
	authGroup.POST("/login", h.authHandler.Login)
	authGroup.GET("/validate", h.authHandler.Validate)
	authGroup.POST("/logout", h.authHandler.Logout)

	e.POST("/agencies/register", h.agencyHandler.Register)

	// Protected routes with JWT middleware
	protected := e.Group("", h.GetJWTMiddleware())

	// Agency lifecycle is admin territory except self-update
	agencyGroup := protected.Group("/agencies")
	agencyGroup.GET("", h.agencyHandler.List, middleware.RequireRoles(models.RoleAdmin))
	agencyGroup.GET("/pending", h.agencyHandler.ListPending, middleware.RequireRoles(models.RoleAdmin))
	agencyGroup.POST("", h.agencyHandler.Create, middleware.RequireRoles(models.RoleAdmin))
	agencyGroup.PUT("/:id/approve", h.agencyHandler.Approve, middleware.RequireRoles(models.RoleAdmin))
	agencyGroup.PUT("/:id/reject", h.agencyHandler.Reject, middleware.RequireRoles(models.RoleAdmin))
	agencyGroup.PUT("/:id", h.agencyHandler.Update, middleware.RequireRoles(models.RoleAdmin, models.RoleAgency))
	agencyGroup.DELETE("/:id", h.agencyHandler.Delete, middleware.RequireRoles(models.RoleAdmin))

	// Fleet management for agencies, read access for admins
	fleetRoles := middleware.RequireRoles(models.RoleAdmin, models.RoleAgency)

	busGroup := protected.Group("/buses", fleetRoles)
	busGroup.POST("", h.busHandler.Create)
	busGroup.GET("", h.busHandler.List)
	busGroup.PUT("/:id", h.busHandler.Update)
	busGroup.DELETE("/:id", h.busHandler.Delete)

	routeGroup := protected.Group("/routes", fleetRoles)
	routeGroup.POST("", h.routeHandler.Create)
	routeGroup.GET("", h.routeHandler.List)
	routeGroup.PUT("/:id", h.routeHandler.Update)
	routeGroup.DELETE("/:id", h.routeHandler.Delete)

	conductorGroup := protected.Group("/conductors", fleetRoles)
	conductorGroup.POST("", h.conductorHandler.Create)
	conductorGroup.GET("", h.conductorHandler.List)
	conductorGroup.PUT("/:id", h.conductorHandler.Update)
	conductorGroup.DELETE("/:id", h.conductorHandler.Delete)

	// Ticket issuance is the conductor's job; agencies and admins can read
	ticketGroup := protected.Group("/tickets")
	ticketGroup.POST("", h.ticketHandler.Issue, middleware.RequireRoles(models.RoleConductor, models.RoleAgency))
	ticketGroup.GET("", h.ticketHandler.List, middleware.RequireRoles(models.RoleAdmin, models.RoleAgency, models.RoleConductor))
}
