package http

import (
	nethttp "net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/lajubus/lajubus/internal/pkg/models"
	"github.com/lajubus/lajubus/internal/utils"
	"github.com/lajubus/lajubus/services/ticketing"
)

// RouteHandler handles HTTP requests for route operations
type RouteHandler struct {
	routeUC ticketing.RouteUC
}

// NewRouteHandler creates a new route handler
func NewRouteHandler(routeUC ticketing.RouteUC) *RouteHandler {
	return &RouteHandler{
		routeUC: routeUC,
	}
}

// Create handles route creation requests
func (h *RouteHandler) Create(c echo.Context) error {
	var route models.Route
	if err := c.Bind(&route); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	agencyID, err := ownAgencyID(c, route.AgencyID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	route.AgencyID = agencyID

	created, err := h.routeUC.Create(c.Request().Context(), &route)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Route created successfully", created)
}

// List handles route listing, scoped to the caller's agency
func (h *RouteHandler) List(c echo.Context) error {
	agencyID, err := scopeAgencyID(c)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	routes, err := h.routeUC.List(c.Request().Context(), agencyID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Routes retrieved successfully", routes)
}

// Update handles partial route updates
func (h *RouteHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid route ID")
	}

	var updates models.RouteUpdate
	if err := c.Bind(&updates); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	route, err := h.routeUC.Update(c.Request().Context(), id, &updates)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Route updated successfully", route)
}

// Delete handles route deletion
func (h *RouteHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid route ID")
	}

	if err := h.routeUC.Delete(c.Request().Context(), id); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Route deleted successfully", nil)
}
